package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

type markdownRenderer struct{}

func (markdownRenderer) Format() domain.OutputFormat { return domain.FormatMarkdown }
func (markdownRenderer) Ext() string                 { return ".md" }

var nonAnchorChars = regexp.MustCompile(`[^a-z0-9]+`)

// anchorSlug derives the GitHub-style anchor for a section heading.
func anchorSlug(heading string) string {
	slug := nonAnchorChars.ReplaceAllString(strings.ToLower(heading), "-")
	return strings.TrimSuffix(slug, "-")
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func (markdownRenderer) Render(sections []domain.DisclaimerSection, metadata domain.DisclaimerMetadata) []byte {
	var lines []string
	push := func(s string) { lines = append(lines, s) }

	// YAML front matter
	push("---")
	push(fmt.Sprintf("title: %q", "Privacy Policy — "+metadata.OrgName))
	push(fmt.Sprintf("effective_date: %q", formatDate(metadata.GeneratedAt)))
	push(fmt.Sprintf("generated: %q", metadata.GeneratedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")))
	push(fmt.Sprintf("version: %q", metadata.Version))
	push("jurisdictions:")
	for _, j := range metadata.Jurisdictions {
		push(fmt.Sprintf("  - %q", string(j)))
	}
	push(fmt.Sprintf("requirement_count: %d", metadata.RequirementCount))
	push("---")
	push("")

	// Table of contents, numbered over the sections actually present
	push("## Table of Contents")
	push("")
	for i, section := range sections {
		push(fmt.Sprintf("%d. [%s](#%s)", i+1, section.Heading, anchorSlug(section.Heading)))
	}
	push("")
	push("---")
	push("")

	for _, section := range sections {
		heading := "## "
		if section.ID == domain.SectionPreamble {
			heading = "# "
		}
		push(heading + section.Heading)
		push("")

		for _, para := range section.Paragraphs {
			switch para.Emphasis {
			case domain.EmphasisBold:
				push("**" + para.Text + "**")
			case domain.EmphasisItalic:
				push("*" + para.Text + "*")
			default:
				push(para.Text)
			}
			push("")
		}

		// Callouts carry per-jurisdiction content; with a single
		// jurisdiction that content is already inline in the body.
		if len(metadata.Jurisdictions) > 1 {
			for _, callout := range section.JurisdictionCallouts {
				push("### " + callout.Heading)
				push("")
				push(callout.Body)
				push("")
			}
		}

		push("---")
		push("")
	}

	var all []domain.StatutoryCitation
	for _, section := range sections {
		all = append(all, section.Citations...)
	}
	if len(all) > 0 {
		push("## Statutory References")
		push("")
		push("This policy has been prepared with reference to the following statutory provisions:")
		push("")

		seen := make(map[string]struct{})
		for _, cit := range all {
			key := string(cit.Jurisdiction) + "-" + cit.Reference
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			push(fmt.Sprintf("- **%s** (%s)", cit.Reference, cit.Jurisdiction.Label()))
		}
		push("")
	}

	return []byte(strings.Join(lines, "\n"))
}
