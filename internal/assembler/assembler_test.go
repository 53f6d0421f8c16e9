package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func testInput(jurisdictions ...domain.Jurisdiction) domain.ValidatedInput {
	return domain.ValidatedInput{
		Jurisdictions: jurisdictions,
		OrgProfile: domain.OrgProfile{
			LegalName:           "Acme Analytics Inc.",
			EntityType:          domain.EntityController,
			IndustrySector:      "Technology",
			HeadquartersCountry: "Canada",
			DpoContact: domain.DpoContact{
				Title: "Privacy Officer",
				Email: "privacy@acme.example",
			},
		},
		DataPractices: domain.DataPractices{
			DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers},
			DataSources:    []domain.DataSource{domain.SourceDirectlyFromSubject},
			ProcessingPurposes: []domain.ProcessingPurposeEntry{
				{Purpose: domain.PurposeServiceDelivery, LegalBasis: domain.BasisContract},
			},
			ConsentMechanisms: []domain.ConsentMechanism{domain.ConsentOptIn},
		},
	}
}

func sectionIDs(sections []domain.DisclaimerSection) []domain.SectionID {
	ids := make([]domain.SectionID, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func find(t *testing.T, sections []domain.DisclaimerSection, id domain.SectionID) domain.DisclaimerSection {
	t.Helper()
	for _, s := range sections {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("section %s not present", id)
	return domain.DisclaimerSection{}
}

func rightsReq(j domain.Jurisdiction, id, language string) domain.MappedRequirement {
	return domain.MappedRequirement{
		ID:                 id,
		Jurisdiction:       j,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: id + " ref",
		ObligationType:     domain.ObligationRight,
		DisclaimerLanguage: language,
	}
}

func TestAssembleGatesConditionalSections(t *testing.T) {
	t.Parallel()

	sections := Assemble(nil, testInput(domain.JurisdictionPIPEDA), testNow)
	ids := sectionIDs(sections)

	assert.NotContains(t, ids, domain.SectionCrossBorder)
	assert.NotContains(t, ids, domain.SectionChildren)
	assert.NotContains(t, ids, domain.SectionCookies)
	assert.NotContains(t, ids, domain.SectionAutomatedDecisions)
	assert.NotContains(t, ids, domain.SectionJurisdictionSpecific)

	assert.Contains(t, ids, domain.SectionPreamble)
	assert.Contains(t, ids, domain.SectionDataCollection)
	assert.Contains(t, ids, domain.SectionChangesToPolicy)
	assert.Contains(t, ids, domain.SectionContact)

	input := testInput(domain.JurisdictionPIPEDA)
	input.DataPractices.CollectsChildrensData = true
	input.DataPractices.UsesCookies = true
	input.DataPractices.UsesAutomatedDecisionMaking = true
	input.DataPractices.CrossBorderTransfers.Transfers = true

	ids = sectionIDs(Assemble(nil, input, testNow))
	assert.Contains(t, ids, domain.SectionCrossBorder)
	assert.Contains(t, ids, domain.SectionChildren)
	assert.Contains(t, ids, domain.SectionCookies)
	assert.Contains(t, ids, domain.SectionAutomatedDecisions)
}

func TestAssembleOrderIsDenseAndOneBased(t *testing.T) {
	t.Parallel()

	input := testInput(domain.JurisdictionPIPEDA)
	input.DataPractices.UsesCookies = true

	sections := Assemble(nil, input, testNow)
	require.NotEmpty(t, sections)
	for i, s := range sections {
		assert.Equal(t, i+1, s.Order, "section %s", s.ID)
	}

	// Master order is preserved over the present subset
	master := make(map[domain.SectionID]int, len(domain.SectionOrder))
	for i, id := range domain.SectionOrder {
		master[id] = i
	}
	for i := 1; i < len(sections); i++ {
		assert.Less(t, master[sections[i-1].ID], master[sections[i].ID])
	}
}

func TestPreambleDatesAndNotice(t *testing.T) {
	t.Parallel()

	input := testInput(domain.JurisdictionPIPEDA, domain.JurisdictionGDPR)
	input.OrgProfile.TradingName = "Acme"
	input.OrgProfile.WebsiteURL = "https://acme.example"

	preamble := find(t, Assemble(nil, input, testNow), domain.SectionPreamble)
	require.Len(t, preamble.Paragraphs, 5)

	assert.Equal(t, "**Effective Date:** March 15, 2026", preamble.Paragraphs[0].Text)
	assert.Equal(t, "**Last Updated:** March 15, 2026", preamble.Paragraphs[1].Text)
	assert.Contains(t, preamble.Paragraphs[2].Text, `(doing business as "Acme")`)
	assert.Contains(t, preamble.Paragraphs[2].Text, "our website at https://acme.example")
	assert.Contains(t, preamble.Paragraphs[3].Text, "PIPEDA (Canada — Federal); GDPR (General Data Protection Regulation — EU).")
	assert.Equal(t, domain.EmphasisBold, preamble.Paragraphs[4].Emphasis)
	assert.Contains(t, preamble.Paragraphs[4].Text, "IMPORTANT NOTICE")
}

func TestDataSharingShortCircuitsWhenNotShared(t *testing.T) {
	t.Parallel()

	sharing := find(t, Assemble(nil, testInput(domain.JurisdictionPIPEDA), testNow), domain.SectionDataSharing)
	require.Len(t, sharing.Paragraphs, 1)
	assert.Equal(t, "We do not sell, trade, or otherwise transfer your personal information to third parties.", sharing.Paragraphs[0].Text)
	assert.Empty(t, sharing.Citations)
}

func TestDataSharingListsRecipients(t *testing.T) {
	t.Parallel()

	input := testInput(domain.JurisdictionPIPEDA)
	input.DataPractices.ThirdPartySharing = domain.ThirdPartySharing{
		Shares: true,
		Recipients: []domain.ThirdPartyRecipient{
			{Category: "Cloud hosting providers", Purpose: "Infrastructure and storage", Country: "United States"},
			{Category: "Payment processors", Purpose: "Billing"},
		},
	}

	sharing := find(t, Assemble(nil, input, testNow), domain.SectionDataSharing)
	require.GreaterOrEqual(t, len(sharing.Paragraphs), 3)
	assert.Equal(t, "- **Cloud hosting providers**: Infrastructure and storage (located in United States)", sharing.Paragraphs[1].Text)
	assert.Equal(t, "- **Payment processors**: Billing", sharing.Paragraphs[2].Text)
}

func TestDataCollectionSection(t *testing.T) {
	t.Parallel()

	input := testInput(domain.JurisdictionPIPEDA)
	input.DataPractices.DataCategories = []domain.DataCategory{
		domain.CategoryPersonalIdentifiers,
		domain.CategoryBehavioral,
	}
	input.DataPractices.DataSources = []domain.DataSource{
		domain.SourceDirectlyFromSubject,
		domain.SourceAutomatedCollection,
	}

	collection := find(t, Assemble(nil, input, testNow), domain.SectionDataCollection)
	require.GreaterOrEqual(t, len(collection.Paragraphs), 3)
	assert.Equal(t, "- Personal identifiers (name, email, phone, address)\n- Behavioral data (browsing history, purchase history, preferences)", collection.Paragraphs[1].Text)
	assert.Equal(t, "We collect this information directly from you, through automated collection technologies.", collection.Paragraphs[2].Text)
}

func TestDataSubjectRightsSingleJurisdictionInline(t *testing.T) {
	t.Parallel()

	reqs := []domain.MappedRequirement{
		rightsReq(domain.JurisdictionPIPEDA, "R1", "You have the right to request access."),
		rightsReq(domain.JurisdictionPIPEDA, "R2", "You have the right to challenge accuracy."),
	}

	rights := find(t, Assemble(reqs, testInput(domain.JurisdictionPIPEDA), testNow), domain.SectionDataSubjectRights)
	assert.Empty(t, rights.JurisdictionCallouts)
	require.Len(t, rights.Paragraphs, 4)
	assert.Equal(t, "Under PIPEDA (Canada — Federal), you have the right to:", rights.Paragraphs[1].Text)
	assert.Equal(t, "- You have the right to request access.", rights.Paragraphs[2].Text)
	assert.Equal(t, "- You have the right to challenge accuracy.", rights.Paragraphs[3].Text)
}

func TestDataSubjectRightsMultiJurisdictionCallouts(t *testing.T) {
	t.Parallel()

	reqs := []domain.MappedRequirement{
		rightsReq(domain.JurisdictionGDPR, "R1", "Right of access."),
		rightsReq(domain.JurisdictionPIPEDA, "R2", "Access on request."),
		rightsReq(domain.JurisdictionGDPR, "R3", "Right to erasure."),
	}

	rights := find(t, Assemble(reqs, testInput(domain.JurisdictionGDPR, domain.JurisdictionPIPEDA), testNow), domain.SectionDataSubjectRights)
	require.Len(t, rights.Paragraphs, 1)
	require.Len(t, rights.JurisdictionCallouts, 2)

	// Grouping preserves first-seen order, and a jurisdiction's requirements
	// stay together even when interleaved.
	first := rights.JurisdictionCallouts[0]
	assert.Equal(t, domain.JurisdictionGDPR, first.Jurisdiction)
	assert.Equal(t, "For Individuals Subject to GDPR (General Data Protection Regulation — EU)", first.Heading)
	assert.Equal(t, "- Right of access.\n- Right to erasure.", first.Body)

	second := rights.JurisdictionCallouts[1]
	assert.Equal(t, domain.JurisdictionPIPEDA, second.Jurisdiction)
	assert.Equal(t, "- Access on request.", second.Body)
}

func TestRetentionSection(t *testing.T) {
	t.Parallel()

	reqs := []domain.MappedRequirement{
		{
			ID:                 "RET-GENERAL",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicLimitingUseRetention,
			StatutoryReference: "Principle 4.5",
			DisclaimerLanguage: "We retain personal information only as long as necessary.",
		},
		{
			ID:                 "RET-IDS",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "Principle 4.5.2",
			DisclaimerLanguage: "personal identifiers: 7 years",
		},
	}

	retention := find(t, Assemble(reqs, testInput(domain.JurisdictionPIPEDA), testNow), domain.SectionRetention)
	require.Len(t, retention.Paragraphs, 3)
	assert.Equal(t, "We retain personal information only as long as necessary.", retention.Paragraphs[0].Text)
	assert.Equal(t, "Our retention periods for specific categories of personal information are as follows:", retention.Paragraphs[1].Text)
	assert.Equal(t, "- personal identifiers: 7 years", retention.Paragraphs[2].Text)
	assert.Len(t, retention.Citations, 2)
}

func TestContactSection(t *testing.T) {
	t.Parallel()

	input := testInput(domain.JurisdictionGDPR)
	input.OrgProfile.DpoContact = domain.DpoContact{
		Name:    "Jordan Lee",
		Title:   "Data Protection Officer",
		Email:   "privacy@acme.example",
		Phone:   "+1 555 0100",
		Address: "100 King St W, Toronto",
	}
	input.OrgProfile.EuRepresentative = &domain.EuRepresentative{
		Name:    "EU Rep GmbH",
		Email:   "rep@acme.example",
		Address: "Berlin, Germany",
	}

	contact := find(t, Assemble(nil, input, testNow), domain.SectionContact)
	require.GreaterOrEqual(t, len(contact.Paragraphs), 3)
	assert.Equal(t, "**Data Protection Officer**\nJordan Lee\nEmail: privacy@acme.example\nPhone: +1 555 0100\nAddress: 100 King St W, Toronto", contact.Paragraphs[1].Text)

	last := contact.Paragraphs[len(contact.Paragraphs)-1]
	assert.Equal(t, "**EU Representative (GDPR Article 27)**\nEU Rep GmbH\nEmail: rep@acme.example\nAddress: Berlin, Germany", last.Text)
}

func TestJurisdictionSpecificSection(t *testing.T) {
	t.Parallel()

	challenge := domain.MappedRequirement{
		ID:                 "E1",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "Principle 4.10",
		DisclaimerLanguage: "You may challenge our compliance.",
	}

	// Challenging-compliance requirements route to the contact section, not
	// here; alone they leave the section absent.
	ids := sectionIDs(Assemble([]domain.MappedRequirement{challenge}, testInput(domain.JurisdictionPIPEDA), testNow))
	assert.NotContains(t, ids, domain.SectionJurisdictionSpecific)

	enforcement := domain.MappedRequirement{
		ID:                 "E2",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.Subtopic("Enforcement and penalties"),
		StatutoryReference: "Cal. Civ. Code §1798.155",
		DisclaimerLanguage: "The CCPA is enforced by the California Attorney General.",
	}

	sections := Assemble([]domain.MappedRequirement{challenge, enforcement}, testInput(domain.JurisdictionCCPA), testNow)
	specific := find(t, sections, domain.SectionJurisdictionSpecific)
	require.Len(t, specific.JurisdictionCallouts, 1)
	assert.Equal(t, domain.JurisdictionCCPA, specific.JurisdictionCallouts[0].Jurisdiction)
	assert.Equal(t, "The CCPA is enforced by the California Attorney General.", specific.JurisdictionCallouts[0].Body)
}

func TestCrossBorderSectionPerDestination(t *testing.T) {
	t.Parallel()

	reqs := []domain.MappedRequirement{
		{
			ID:                 "GDPR-TRANSFER-United_States",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "GDPR Art. 44-49",
			DisclaimerLanguage: "We transfer personal data to United States on the basis of standard contractual clauses.",
		},
		{
			ID:                 "GDPR-TRANSFER-Japan",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "GDPR Art. 44-49",
			DisclaimerLanguage: "We transfer personal data to Japan on the basis of an adequacy decision.",
		},
	}

	input := testInput(domain.JurisdictionGDPR)
	input.DataPractices.CrossBorderTransfers.Transfers = true

	crossBorder := find(t, Assemble(reqs, input, testNow), domain.SectionCrossBorder)
	require.Len(t, crossBorder.Paragraphs, 2)
	assert.Contains(t, crossBorder.Paragraphs[0].Text, "United States")
	assert.Contains(t, crossBorder.Paragraphs[1].Text, "Japan")
}

func TestChangesToPolicyWebsiteClause(t *testing.T) {
	t.Parallel()

	changes := find(t, Assemble(nil, testInput(domain.JurisdictionPIPEDA), testNow), domain.SectionChangesToPolicy)
	require.Len(t, changes.Paragraphs, 2)
	assert.NotContains(t, changes.Paragraphs[0].Text, "additional notice")

	input := testInput(domain.JurisdictionPIPEDA)
	input.OrgProfile.WebsiteURL = "https://acme.example"
	changes = find(t, Assemble(nil, input, testNow), domain.SectionChangesToPolicy)
	assert.Contains(t, changes.Paragraphs[0].Text, "additional notice")
}
