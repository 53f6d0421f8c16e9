package tools

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestBuildMinimalInput(t *testing.T) {
	t.Parallel()

	recipients := []domain.ThirdPartyRecipient{
		{Category: "Cloud hosting", Purpose: "Infrastructure", DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers}},
	}
	input := BuildMinimalInput(MinimalInputOptions{
		Jurisdictions:  []domain.Jurisdiction{domain.JurisdictionPIPEDA, domain.JurisdictionGDPR},
		DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers, domain.CategoryBehavioral},
		Recipients:     recipients,
	})

	assert.Equal(t, "Organization", input.OrgProfile.LegalName)
	assert.Equal(t, domain.EntityController, input.OrgProfile.EntityType)
	assert.Equal(t, "privacy@organization.example", input.OrgProfile.DpoContact.Email)

	dp := input.DataPractices
	require.Len(t, dp.RetentionSchedule, 2)
	assert.Equal(t, "As required for the stated purpose", dp.RetentionSchedule[0].Period)
	assert.True(t, dp.ThirdPartySharing.Shares)
	assert.Equal(t, recipients, dp.ThirdPartySharing.Recipients)

	// The expanded input drives the regulation modules without further checks
	reqs := regulations.NewPIPEDA().MapRequirements(input)
	assert.NotEmpty(t, reqs)

	noSharing := BuildMinimalInput(MinimalInputOptions{
		Jurisdictions:  []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers},
	})
	assert.False(t, noSharing.DataPractices.ThirdPartySharing.Shares)
}

func TestFilterThirdParty(t *testing.T) {
	t.Parallel()

	reqs := []domain.MappedRequirement{
		{ID: "A", Topic: domain.TopicThirdParty},
		{ID: "B", Topic: domain.TopicDataManagement},
		{ID: "C", Topic: domain.TopicThirdParty},
	}
	filtered := FilterThirdParty(reqs)
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].ID)
	assert.Equal(t, "C", filtered[1].ID)
}

func TestRenderProcessorDisclosure(t *testing.T) {
	t.Parallel()

	out := string(RenderProcessorDisclosure(ProcessorDisclosureInput{
		Recipients: []domain.ThirdPartyRecipient{
			{
				Category:       "Cloud hosting providers",
				Purpose:        "Infrastructure and storage",
				DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers, domain.CategoryDeviceTechnical},
				Country:        "United States",
			},
			{Category: "Payment processors", Purpose: "Billing"},
		},
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		Requirements: []domain.MappedRequirement{
			{
				Jurisdiction:       domain.JurisdictionPIPEDA,
				Topic:              domain.TopicThirdParty,
				StatutoryReference: "PIPEDA Schedule 1, Principle 4.1.3",
				DisclaimerLanguage: "We remain accountable for transferred information.",
			},
			{
				Jurisdiction:       domain.JurisdictionPIPEDA,
				Topic:              domain.TopicThirdParty,
				StatutoryReference: "PIPEDA Schedule 1, Principle 4.1.3",
				DisclaimerLanguage: "Comparable protection is required.",
			},
		},
		GeneratedAt: testNow,
	}))

	assert.Contains(t, out, `title: "Third-Party Processor Disclosure"`)
	assert.Contains(t, out, `generated: "2026-03-15T10:30:00.000Z"`)
	assert.Contains(t, out, "processor_count: 2")

	// Category labels are truncated at their parenthetical
	assert.Contains(t, out, "  - Data categories: Personal identifiers, Device and technical data")
	assert.Contains(t, out, "- **Cloud hosting providers**: Infrastructure and storage")
	assert.Contains(t, out, "  - Location: United States")
	assert.Contains(t, out, "| Payment processors | Billing |  | Not specified |")

	assert.Contains(t, out, "### PIPEDA (Canada — Federal)")
	assert.Contains(t, out, "We remain accountable for transferred information.")

	// Duplicate statutory references collapse to one appendix line
	assert.Equal(t, 1, strings.Count(out, "- **PIPEDA Schedule 1, Principle 4.1.3** (PIPEDA (Canada — Federal))"))

	assert.Contains(t, out, "*This document does not constitute legal advice.")
}

func TestRenderProcessorDisclosureEmpty(t *testing.T) {
	t.Parallel()

	out := string(RenderProcessorDisclosure(ProcessorDisclosureInput{
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		GeneratedAt:   testNow,
	}))
	assert.Contains(t, out, "No third-party service providers identified.")
	assert.Contains(t, out, "No processors registered.")
	assert.NotContains(t, out, "## Regulatory Disclosure Requirements")
}

func TestWalkRoleTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answers []bool
		want    domain.EntityType
		steps   int
	}{
		{"controller", []bool{true, true, false}, domain.EntityController, 3},
		{"processor via instruction", []bool{false, true}, domain.EntityProcessor, 2},
		{"processor via no shared decisions", []bool{false, false, false}, domain.EntityProcessor, 3},
		{"joint via shared means", []bool{true, false}, domain.EntityJointController, 2},
		{"joint via shared purposes", []bool{true, true, true}, domain.EntityJointController, 3},
		{"joint via co-determination", []bool{false, false, true}, domain.EntityJointController, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome, path, err := WalkRoleTree(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome.EntityType)
			require.Len(t, path, tt.steps)
			for i, entry := range path {
				assert.Equal(t, i+1, entry.QuestionNumber)
				wantAnswer := "No"
				if tt.answers[i] {
					wantAnswer = "Yes"
				}
				assert.Equal(t, wantAnswer, entry.Answer)
			}
		})
	}
}

func TestWalkRoleTreeIncompleteAnswers(t *testing.T) {
	t.Parallel()

	_, _, err := WalkRoleTree([]bool{true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assessment incomplete")
}

func TestRoleImplicationCoversEveryJurisdiction(t *testing.T) {
	t.Parallel()

	for _, j := range domain.AllJurisdictions {
		for _, et := range []domain.EntityType{domain.EntityController, domain.EntityProcessor, domain.EntityJointController} {
			assert.NotEmpty(t, RoleImplication(j, et), "%s/%s", j, et)
		}
	}
	assert.Empty(t, RoleImplication(domain.Jurisdiction("LGPD"), domain.EntityController))
}

func TestRenderRoleDeterminationMemo(t *testing.T) {
	t.Parallel()

	outcome, path, err := WalkRoleTree([]bool{true, true, false})
	require.NoError(t, err)

	out := string(RenderRoleDeterminationMemo(RoleDeterminationInput{
		EntityType:         outcome.EntityType,
		OutcomeLabel:       outcome.Label,
		OutcomeExplanation: outcome.Explanation,
		DecisionPath:       path,
		Jurisdictions:      []domain.Jurisdiction{domain.JurisdictionGDPR, domain.JurisdictionPIPEDA},
		GeneratedAt:        testNow,
	}))

	assert.Contains(t, out, `determined_role: "controller"`)
	assert.Contains(t, out, "the organization is classified as a **Data Controller**.")
	assert.Contains(t, out, "## Decision Path")
	assert.Contains(t, out, "1. **Does your organization determine why personal data is collected?**")
	assert.Contains(t, out, "   - Answer: Yes")
	assert.Contains(t, out, "### GDPR (General Data Protection Regulation — EU)")
	assert.Contains(t, out, "Art. 24")
	assert.Contains(t, out, "### PIPEDA (Canada — Federal)")
	assert.Contains(t, out, "Principle 4.1")
	assert.Contains(t, out, "*This memo does not constitute legal advice.")
}

func TestDefaultConsentModel(t *testing.T) {
	t.Parallel()

	gdpr := DefaultConsentModel(domain.JurisdictionGDPR)
	assert.Equal(t, domain.JurisdictionGDPR, gdpr.Jurisdiction)
	assert.Equal(t, ConsentModelOptIn, gdpr.Model)
	assert.True(t, gdpr.GranularByCategory)
	assert.True(t, gdpr.RejectAllRequired)
	assert.True(t, gdpr.CookieWallProhibited)

	ccpa := DefaultConsentModel(domain.JurisdictionCCPA)
	assert.Equal(t, ConsentModelOptOut, ccpa.Model)
	assert.False(t, ccpa.GranularByCategory)

	// Unknown jurisdictions fall back to strict opt-in
	unknown := DefaultConsentModel(domain.Jurisdiction("LGPD"))
	assert.Equal(t, ConsentModelOptIn, unknown.Model)
}

func TestRenderCookiePolicy(t *testing.T) {
	t.Parallel()

	var cookies []CookieEntry
	cookies = append(cookies, CommonCookies[CookieStrictlyNecessary]...)
	cookies = append(cookies, CommonCookies[CookiePerformance]...)
	cookies = append(cookies, CookieEntry{
		Name:     "custom_pref",
		Provider: "First Party",
		Purpose:  "Stores a custom preference",
		Type:     FirstPartyCookie,
		Category: CookieFunctionality,
	})

	out := string(RenderCookiePolicy(CookiePolicyInput{
		WebsiteURL:    "https://acme.example",
		OrgName:       "Acme Analytics Inc.",
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionGDPR, domain.JurisdictionPIPEDA},
		Cookies:       cookies,
		ConsentModels: []ConsentModel{
			DefaultConsentModel(domain.JurisdictionGDPR),
			DefaultConsentModel(domain.JurisdictionPIPEDA),
			DefaultConsentModel(domain.JurisdictionCCPA),
		},
		BannerPosition: BannerBottom,
		GeneratedAt:    testNow,
	}))

	assert.Contains(t, out, `title: "Cookie Disclaimer"`)
	assert.Contains(t, out, "cookie_count: 7")
	assert.Contains(t, out, `website: "https://acme.example"`)
	assert.Contains(t, out, "**Effective Date:** 2026-03-15")

	assert.Contains(t, out, "- **Strictly Necessary Cookies** (3 cookies)")
	assert.Contains(t, out, "- **Functionality Cookies** (1 cookie)")
	assert.Contains(t, out, "### Performance / Analytics Cookies")
	assert.Contains(t, out, "| _ga | Google Analytics |")

	// Missing durations render as a dash
	assert.Contains(t, out, "| custom_pref | First Party | Stores a custom preference | — | First Party |")

	assert.Contains(t, out, "cookie consent bottom bar")
	assert.Contains(t, out, "Strictly necessary cookies do not require your consent")

	assert.Contains(t, out, "### Consent Requirements by Jurisdiction")
	assert.Contains(t, out, "- Consent model: Opt-In (prior consent required)")
	assert.Contains(t, out, `- A "Reject All" option is provided with equal prominence`)
	// Consent models for unselected jurisdictions are dropped
	assert.NotContains(t, out, "CCPA (California Consumer Privacy Act)")

	assert.Contains(t, out, "## Third-Party Cookies")
	assert.Equal(t, 1, strings.Count(out, "- Google Analytics"))
	assert.Contains(t, out, "*This cookie policy does not constitute legal advice.")
}

func TestRenderCookiePolicyNoCookies(t *testing.T) {
	t.Parallel()

	out := string(RenderCookiePolicy(CookiePolicyInput{
		OrgName:       "Acme Analytics Inc.",
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		GeneratedAt:   testNow,
	}))

	assert.Contains(t, out, "No specific cookies have been documented at this time.")
	assert.NotContains(t, out, "## Third-Party Cookies")
	assert.NotContains(t, out, "Strictly necessary cookies do not require your consent")
	// Unknown banner position falls back to a generic banner
	assert.Contains(t, out, "cookie consent banner that allows you")
}
