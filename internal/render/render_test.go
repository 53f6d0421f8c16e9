package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func testMetadata(jurisdictions ...domain.Jurisdiction) domain.DisclaimerMetadata {
	return domain.DisclaimerMetadata{
		GeneratedAt:      testNow,
		Jurisdictions:    jurisdictions,
		OrgName:          "Acme Analytics Inc.",
		Version:          "1.2.0",
		RequirementCount: 14,
	}
}

func testSections() []domain.DisclaimerSection {
	return []domain.DisclaimerSection{
		{
			ID:      domain.SectionPreamble,
			Heading: "Privacy Policy",
			Order:   1,
			Paragraphs: []domain.SectionParagraph{
				{Text: "**Effective Date:** March 15, 2026", Emphasis: domain.EmphasisNormal},
				{Text: "**IMPORTANT NOTICE:** Not legal advice.", Emphasis: domain.EmphasisBold},
			},
		},
		{
			ID:      domain.SectionDataSubjectRights,
			Heading: "Your Rights",
			Order:   2,
			Paragraphs: []domain.SectionParagraph{
				{Text: "You have certain rights.", Emphasis: domain.EmphasisNormal},
			},
			JurisdictionCallouts: []domain.JurisdictionCallout{
				{
					Jurisdiction: domain.JurisdictionGDPR,
					Heading:      "For Individuals Subject to GDPR (General Data Protection Regulation — EU)",
					Body:         "- Right of access.",
				},
			},
			Citations: []domain.StatutoryCitation{
				{Jurisdiction: domain.JurisdictionGDPR, Reference: "GDPR Art. 15"},
				{Jurisdiction: domain.JurisdictionGDPR, Reference: "GDPR Art. 15"},
				{Jurisdiction: domain.JurisdictionPIPEDA, Reference: "PIPEDA Schedule 1, Principle 4.9"},
			},
		},
	}
}

func TestForReturnsRendererPerFormat(t *testing.T) {
	t.Parallel()

	md, ok := For(domain.FormatMarkdown)
	require.True(t, ok)
	assert.Equal(t, domain.FormatMarkdown, md.Format())
	assert.Equal(t, ".md", md.Ext())

	docx, ok := For(domain.FormatDOCX)
	require.True(t, ok)
	assert.Equal(t, ".docx", docx.Ext())
	assert.Nil(t, docx.Render(testSections(), testMetadata(domain.JurisdictionGDPR)))

	html, ok := For(domain.FormatHTML)
	require.True(t, ok)
	assert.Equal(t, ".html", html.Ext())
	assert.Nil(t, html.Render(testSections(), testMetadata(domain.JurisdictionGDPR)))

	_, ok = For(domain.OutputFormat("pdf"))
	assert.False(t, ok)
}

func TestMarkdownFrontMatter(t *testing.T) {
	t.Parallel()

	md, _ := For(domain.FormatMarkdown)
	out := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR, domain.JurisdictionPIPEDA)))

	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Contains(t, out, `title: "Privacy Policy — Acme Analytics Inc."`)
	assert.Contains(t, out, `effective_date: "March 15, 2026"`)
	assert.Contains(t, out, `generated: "2026-03-15T10:30:00.000Z"`)
	assert.Contains(t, out, `version: "1.2.0"`)
	assert.Contains(t, out, "jurisdictions:\n  - \"GDPR\"\n  - \"PIPEDA\"")
	assert.Contains(t, out, "requirement_count: 14")
}

func TestMarkdownTableOfContents(t *testing.T) {
	t.Parallel()

	md, _ := For(domain.FormatMarkdown)
	out := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR)))

	assert.Contains(t, out, "## Table of Contents")
	assert.Contains(t, out, "1. [Privacy Policy](#privacy-policy)")
	assert.Contains(t, out, "2. [Your Rights](#your-rights)")
}

func TestMarkdownHeadingsAndEmphasis(t *testing.T) {
	t.Parallel()

	md, _ := For(domain.FormatMarkdown)
	out := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR)))

	// Preamble renders as the document title; every other section is H2
	assert.Contains(t, out, "\n# Privacy Policy\n")
	assert.Contains(t, out, "\n## Your Rights\n")

	// Bold emphasis wraps the whole paragraph
	assert.Contains(t, out, "**"+"**IMPORTANT NOTICE:** Not legal advice."+"**")
}

func TestMarkdownCalloutsOnlyWithMultipleJurisdictions(t *testing.T) {
	t.Parallel()

	md, _ := For(domain.FormatMarkdown)

	single := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR)))
	assert.NotContains(t, single, "### For Individuals Subject to")

	multi := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR, domain.JurisdictionPIPEDA)))
	assert.Contains(t, multi, "### For Individuals Subject to GDPR (General Data Protection Regulation — EU)")
	assert.Contains(t, multi, "- Right of access.")
}

func TestMarkdownStatutoryReferencesDeduped(t *testing.T) {
	t.Parallel()

	md, _ := For(domain.FormatMarkdown)
	out := string(md.Render(testSections(), testMetadata(domain.JurisdictionGDPR, domain.JurisdictionPIPEDA)))

	assert.Contains(t, out, "## Statutory References")
	assert.Equal(t, 1, strings.Count(out, "- **GDPR Art. 15** (GDPR (General Data Protection Regulation — EU))"))
	assert.Contains(t, out, "- **PIPEDA Schedule 1, Principle 4.9** (PIPEDA (Canada — Federal))")
}

func TestMarkdownOmitsReferencesWithoutCitations(t *testing.T) {
	t.Parallel()

	sections := testSections()
	sections[1].Citations = nil

	md, _ := For(domain.FormatMarkdown)
	out := string(md.Render(sections, testMetadata(domain.JurisdictionGDPR)))
	assert.NotContains(t, out, "## Statutory References")
}

func TestAnchorSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		heading string
		want    string
	}{
		{"Privacy Policy", "privacy-policy"},
		{"Children's Privacy", "children-s-privacy"},
		{"Cookies and Tracking Technologies", "cookies-and-tracking-technologies"},
		{"Changes to This Privacy Policy", "changes-to-this-privacy-policy"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, anchorSlug(tt.heading), tt.heading)
	}
}
