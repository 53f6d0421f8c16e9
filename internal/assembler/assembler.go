// Package assembler arranges mapped requirements into the fixed section
// structure of a disclosure document. Section order is fixed; whether a
// section appears depends on the input's practice gates and on whether any
// requirement routes to it.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var dataSourceLabels = map[domain.DataSource]string{
	domain.SourceDirectlyFromSubject: "directly from you",
	domain.SourceThirdPartyProviders: "from third-party providers",
	domain.SourceAutomatedCollection: "through automated collection technologies",
	domain.SourcePublicSources:       "from publicly available sources",
	domain.SourceSocialMedia:         "from social media platforms",
}

type sectionBuilder func(input domain.ValidatedInput, reqs []domain.MappedRequirement, now time.Time) *domain.DisclaimerSection

var sectionBuilders = map[domain.SectionID]sectionBuilder{
	domain.SectionPreamble:             buildPreamble,
	domain.SectionDataCollection:       buildDataCollection,
	domain.SectionLegalBasis:           buildLegalBasis,
	domain.SectionUseOfData:            buildUseOfData,
	domain.SectionDataSharing:          buildDataSharing,
	domain.SectionCrossBorder:          buildCrossBorder,
	domain.SectionRetention:            buildRetention,
	domain.SectionDataSubjectRights:    buildDataSubjectRights,
	domain.SectionSecurityMeasures:     buildSecurityMeasures,
	domain.SectionChildren:             buildChildren,
	domain.SectionCookies:              buildCookies,
	domain.SectionAutomatedDecisions:   buildAutomatedDecisions,
	domain.SectionChangesToPolicy:      buildChangesToPolicy,
	domain.SectionContact:              buildContact,
	domain.SectionJurisdictionSpecific: buildJurisdictionSpecific,
}

// Assemble runs every section builder in master order and returns the
// sections that are present, with 1-based order indices dense across them.
// The generation time is injected so the preamble dates are reproducible.
func Assemble(requirements []domain.MappedRequirement, input domain.ValidatedInput, now time.Time) []domain.DisclaimerSection {
	var sections []domain.DisclaimerSection
	for _, id := range domain.SectionOrder {
		section := sectionBuilders[id](input, requirements, now)
		if section == nil {
			continue
		}
		section.Order = len(sections) + 1
		sections = append(sections, *section)
	}
	return sections
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func buildPreamble(input domain.ValidatedInput, _ []domain.MappedRequirement, now time.Time) *domain.DisclaimerSection {
	labels := make([]string, 0, len(input.Jurisdictions))
	for _, j := range input.Jurisdictions {
		labels = append(labels, j.Label())
	}

	org := input.OrgProfile
	var intro strings.Builder
	intro.WriteString("This Privacy Policy describes how ")
	intro.WriteString(org.LegalName)
	if org.TradingName != "" {
		fmt.Fprintf(&intro, " (doing business as %q)", org.TradingName)
	}
	intro.WriteString(` ("we," "us," or "our") collects, uses, discloses, and protects your personal information`)
	if org.WebsiteURL != "" {
		fmt.Fprintf(&intro, " in connection with our website at %s and", org.WebsiteURL)
	}
	intro.WriteString(" our products and services.")

	return &domain.DisclaimerSection{
		ID:      domain.SectionPreamble,
		Heading: "Privacy Policy",
		Paragraphs: []domain.SectionParagraph{
			p("**Effective Date:** " + formatDate(now)),
			p("**Last Updated:** " + formatDate(now)),
			p(intro.String()),
			p("This policy has been prepared to comply with the following privacy legislation: " + strings.Join(labels, "; ") + "."),
			pb("**IMPORTANT NOTICE:** This document does not constitute legal advice. It has been generated as a starting point and should be reviewed by qualified legal counsel before publication or reliance."),
		},
	}
}

func buildDataCollection(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	dp := input.DataPractices

	categoryLines := make([]string, 0, len(dp.DataCategories))
	for _, cat := range dp.DataCategories {
		categoryLines = append(categoryLines, "- "+cat.Label())
	}
	sources := make([]string, 0, len(dp.DataSources))
	for _, src := range dp.DataSources {
		sources = append(sources, dataSourceLabels[src])
	}

	collectionReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicDataManagement && r.Subtopic == domain.SubtopicLimitingCollection
	})

	paragraphs := []domain.SectionParagraph{
		p("We collect the following categories of personal information:"),
		p(strings.Join(categoryLines, "\n")),
		p("We collect this information " + strings.Join(sources, ", ") + "."),
	}
	paragraphs = append(paragraphs, disclaimerParagraphs(collectionReqs)...)

	return &domain.DisclaimerSection{
		ID:         domain.SectionDataCollection,
		Heading:    "Information We Collect",
		Paragraphs: paragraphs,
		Citations:  citations(collectionReqs),
	}
}

func buildLegalBasis(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	consentReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicEnterpriseRequirements && r.Subtopic.MentionsConsent()
	})

	paragraphs := []domain.SectionParagraph{
		p("We process your personal information on the following legal bases:"),
	}
	for _, pp := range input.DataPractices.ProcessingPurposes {
		line := fmt.Sprintf("- **%s**: %s", humanize(string(pp.Purpose)), humanize(string(pp.LegalBasis)))
		if pp.Description != "" {
			line += " — " + pp.Description
		}
		paragraphs = append(paragraphs, p(line))
	}
	paragraphs = append(paragraphs, disclaimerParagraphs(consentReqs)...)

	return &domain.DisclaimerSection{
		ID:                   domain.SectionLegalBasis,
		Heading:              "Legal Basis for Processing",
		Paragraphs:           paragraphs,
		JurisdictionCallouts: jurisdictionCallouts(consentReqs),
		Citations:            citations(consentReqs),
	}
}

func buildUseOfData(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	purposeReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic == domain.SubtopicIdentifyingPurposes || r.Subtopic == domain.SubtopicPurposeSpecification
	})

	paragraphs := []domain.SectionParagraph{
		p("We use your personal information for the following purposes:"),
	}
	for _, pp := range input.DataPractices.ProcessingPurposes {
		line := "- **" + humanize(string(pp.Purpose)) + "**"
		if pp.Description != "" {
			line += ": " + pp.Description
		}
		paragraphs = append(paragraphs, p(line))
	}
	// Prose comes only from the general purpose-identification requirements;
	// the per-purpose specification requirements contribute citations alone.
	for _, r := range purposeReqs {
		if r.Subtopic == domain.SubtopicIdentifyingPurposes {
			paragraphs = append(paragraphs, p(r.DisclaimerLanguage))
		}
	}

	return &domain.DisclaimerSection{
		ID:         domain.SectionUseOfData,
		Heading:    "How We Use Your Information",
		Paragraphs: paragraphs,
		Citations:  citations(purposeReqs),
	}
}

func buildDataSharing(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	dp := input.DataPractices
	if !dp.ThirdPartySharing.Shares {
		return &domain.DisclaimerSection{
			ID:      domain.SectionDataSharing,
			Heading: "Disclosure of Your Information",
			Paragraphs: []domain.SectionParagraph{
				p("We do not sell, trade, or otherwise transfer your personal information to third parties."),
			},
		}
	}

	sharingReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicThirdParty
	})

	paragraphs := []domain.SectionParagraph{
		p("We may disclose your personal information to the following categories of third parties:"),
	}
	for _, rec := range dp.ThirdPartySharing.Recipients {
		line := fmt.Sprintf("- **%s**: %s", rec.Category, rec.Purpose)
		if rec.Country != "" {
			line += fmt.Sprintf(" (located in %s)", rec.Country)
		}
		paragraphs = append(paragraphs, p(line))
	}
	paragraphs = append(paragraphs, disclaimerParagraphs(sharingReqs)...)

	return &domain.DisclaimerSection{
		ID:                   domain.SectionDataSharing,
		Heading:              "Disclosure of Your Information",
		Paragraphs:           paragraphs,
		JurisdictionCallouts: jurisdictionCallouts(sharingReqs),
		Citations:            citations(sharingReqs),
	}
}

func buildCrossBorder(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	if !input.DataPractices.CrossBorderTransfers.Transfers {
		return nil
	}

	transferReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic.MatchesCrossBorder()
	})

	return &domain.DisclaimerSection{
		ID:                   domain.SectionCrossBorder,
		Heading:              "International Data Transfers",
		Paragraphs:           disclaimerParagraphs(transferReqs),
		JurisdictionCallouts: jurisdictionCallouts(transferReqs),
		Citations:            citations(transferReqs),
	}
}

func buildRetention(_ domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	retentionReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic == domain.SubtopicLimitingUseRetention
	})
	periodReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic == domain.SubtopicRetentionPeriod
	})

	paragraphs := disclaimerParagraphs(retentionReqs)
	if len(periodReqs) > 0 {
		paragraphs = append(paragraphs, p("Our retention periods for specific categories of personal information are as follows:"))
		for _, r := range periodReqs {
			paragraphs = append(paragraphs, p("- "+r.DisclaimerLanguage))
		}
	}

	return &domain.DisclaimerSection{
		ID:         domain.SectionRetention,
		Heading:    "Data Retention",
		Paragraphs: paragraphs,
		Citations:  citations(append(append([]domain.MappedRequirement{}, retentionReqs...), periodReqs...)),
	}
}

func buildDataSubjectRights(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	rightsReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicDataSubjectRights
	})
	single := len(input.Jurisdictions) == 1

	var paragraphs []domain.SectionParagraph
	var callouts []domain.JurisdictionCallout

	if single {
		paragraphs = append(paragraphs,
			p("You have certain rights regarding the personal information we hold about you."),
			p(fmt.Sprintf("Under %s, you have the right to:", input.Jurisdictions[0].Label())),
		)
		for _, r := range rightsReqs {
			paragraphs = append(paragraphs, p("- "+r.DisclaimerLanguage))
		}
	} else {
		paragraphs = append(paragraphs,
			p("You have certain rights regarding the personal information we hold about you. These rights vary depending on your jurisdiction of residence."),
		)
		for _, group := range groupByJurisdiction(rightsReqs) {
			lines := make([]string, 0, len(group.reqs))
			for _, r := range group.reqs {
				lines = append(lines, "- "+r.DisclaimerLanguage)
			}
			callouts = append(callouts, domain.JurisdictionCallout{
				Jurisdiction: group.jurisdiction,
				Heading:      "For Individuals Subject to " + group.jurisdiction.Label(),
				Body:         strings.Join(lines, "\n"),
				Citations:    citations(group.reqs),
			})
		}
	}

	return &domain.DisclaimerSection{
		ID:                   domain.SectionDataSubjectRights,
		Heading:              "Your Rights",
		Paragraphs:           paragraphs,
		JurisdictionCallouts: callouts,
		Citations:            citations(rightsReqs),
	}
}

func buildSecurityMeasures(_ domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	secReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicDataProtection
	})

	return &domain.DisclaimerSection{
		ID:         domain.SectionSecurityMeasures,
		Heading:    "Data Security",
		Paragraphs: disclaimerParagraphs(secReqs),
		Citations:  citations(secReqs),
	}
}

func buildChildren(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	if !input.DataPractices.CollectsChildrensData {
		return nil
	}

	childReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic.MentionsChildren()
	})

	return &domain.DisclaimerSection{
		ID:         domain.SectionChildren,
		Heading:    "Children's Privacy",
		Paragraphs: disclaimerParagraphs(childReqs),
		Citations:  citations(childReqs),
	}
}

func buildCookies(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	if !input.DataPractices.UsesCookies {
		return nil
	}

	cookieReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic.MentionsCookies()
	})

	return &domain.DisclaimerSection{
		ID:         domain.SectionCookies,
		Heading:    "Cookies and Tracking Technologies",
		Paragraphs: disclaimerParagraphs(cookieReqs),
		Citations:  citations(cookieReqs),
	}
}

func buildAutomatedDecisions(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	if !input.DataPractices.UsesAutomatedDecisionMaking {
		return nil
	}

	admReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic.MentionsAutomated()
	})

	return &domain.DisclaimerSection{
		ID:         domain.SectionAutomatedDecisions,
		Heading:    "Automated Decision-Making",
		Paragraphs: disclaimerParagraphs(admReqs),
		Citations:  citations(admReqs),
	}
}

func buildChangesToPolicy(input domain.ValidatedInput, _ []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	org := input.OrgProfile
	var first strings.Builder
	first.WriteString(org.LegalName)
	first.WriteString(` reserves the right to update or modify this Privacy Policy at any time. When we make material changes, we will notify you by updating the "Last Updated" date at the top of this policy`)
	if org.WebsiteURL != "" {
		first.WriteString(" and, where required by applicable law, by providing additional notice (such as a notice on our website or direct communication)")
	}
	first.WriteString(".")

	return &domain.DisclaimerSection{
		ID:      domain.SectionChangesToPolicy,
		Heading: "Changes to This Privacy Policy",
		Paragraphs: []domain.SectionParagraph{
			p(first.String()),
			p("We encourage you to review this Privacy Policy periodically to stay informed about how we are protecting your personal information."),
		},
	}
}

func buildContact(input domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	dpo := input.OrgProfile.DpoContact
	challengeReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Subtopic == domain.SubtopicChallengingCompliance
	})

	var block strings.Builder
	block.WriteString("**" + dpo.Title + "**")
	if dpo.Name != "" {
		block.WriteString("\n" + dpo.Name)
	}
	block.WriteString("\nEmail: " + dpo.Email)
	if dpo.Phone != "" {
		block.WriteString("\nPhone: " + dpo.Phone)
	}
	if dpo.Address != "" {
		block.WriteString("\nAddress: " + dpo.Address)
	}

	paragraphs := []domain.SectionParagraph{
		p("If you have questions or concerns about this Privacy Policy or our data practices, or if you wish to exercise any of your rights, please contact us:"),
		p(block.String()),
	}
	paragraphs = append(paragraphs, disclaimerParagraphs(challengeReqs)...)

	if rep := input.OrgProfile.EuRepresentative; rep != nil {
		paragraphs = append(paragraphs, p(fmt.Sprintf(
			"**EU Representative (GDPR Article 27)**\n%s\nEmail: %s\nAddress: %s",
			rep.Name, rep.Email, rep.Address,
		)))
	}

	return &domain.DisclaimerSection{
		ID:         domain.SectionContact,
		Heading:    "Contact Us",
		Paragraphs: paragraphs,
		Citations:  citations(challengeReqs),
	}
}

func buildJurisdictionSpecific(_ domain.ValidatedInput, reqs []domain.MappedRequirement, _ time.Time) *domain.DisclaimerSection {
	specificReqs := filter(reqs, func(r domain.MappedRequirement) bool {
		return r.Topic == domain.TopicEnforcement && r.Subtopic != domain.SubtopicChallengingCompliance
	})
	if len(specificReqs) == 0 {
		return nil
	}

	return &domain.DisclaimerSection{
		ID:      domain.SectionJurisdictionSpecific,
		Heading: "Jurisdiction-Specific Provisions",
		Paragraphs: []domain.SectionParagraph{
			p("The following provisions apply to residents of specific jurisdictions:"),
		},
		JurisdictionCallouts: jurisdictionCallouts(specificReqs),
		Citations:            citations(specificReqs),
	}
}

func p(text string) domain.SectionParagraph {
	return domain.SectionParagraph{Text: text, Emphasis: domain.EmphasisNormal}
}

func pb(text string) domain.SectionParagraph {
	return domain.SectionParagraph{Text: text, Emphasis: domain.EmphasisBold}
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func filter(reqs []domain.MappedRequirement, keep func(domain.MappedRequirement) bool) []domain.MappedRequirement {
	var out []domain.MappedRequirement
	for _, r := range reqs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func disclaimerParagraphs(reqs []domain.MappedRequirement) []domain.SectionParagraph {
	out := make([]domain.SectionParagraph, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, p(r.DisclaimerLanguage))
	}
	return out
}

func citations(reqs []domain.MappedRequirement) []domain.StatutoryCitation {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.StatutoryCitation, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Citation())
	}
	return out
}

type jurisdictionGroup struct {
	jurisdiction domain.Jurisdiction
	reqs         []domain.MappedRequirement
}

// groupByJurisdiction buckets requirements by jurisdiction, preserving the
// order each jurisdiction first appears in the requirement list.
func groupByJurisdiction(reqs []domain.MappedRequirement) []jurisdictionGroup {
	index := make(map[domain.Jurisdiction]int)
	var groups []jurisdictionGroup
	for _, r := range reqs {
		i, ok := index[r.Jurisdiction]
		if !ok {
			i = len(groups)
			index[r.Jurisdiction] = i
			groups = append(groups, jurisdictionGroup{jurisdiction: r.Jurisdiction})
		}
		groups[i].reqs = append(groups[i].reqs, r)
	}
	return groups
}

func jurisdictionCallouts(reqs []domain.MappedRequirement) []domain.JurisdictionCallout {
	var callouts []domain.JurisdictionCallout
	for _, group := range groupByJurisdiction(reqs) {
		bodies := make([]string, 0, len(group.reqs))
		for _, r := range group.reqs {
			bodies = append(bodies, r.DisclaimerLanguage)
		}
		callouts = append(callouts, domain.JurisdictionCallout{
			Jurisdiction: group.jurisdiction,
			Heading:      group.jurisdiction.Label(),
			Body:         strings.Join(bodies, "\n\n"),
			Citations:    citations(group.reqs),
		})
	}
	return callouts
}
