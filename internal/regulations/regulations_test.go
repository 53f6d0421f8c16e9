package regulations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

func baseInput(jurisdictions ...domain.Jurisdiction) domain.ValidatedInput {
	return domain.ValidatedInput{
		Jurisdictions: jurisdictions,
		OrgProfile: domain.OrgProfile{
			LegalName:           "Acme Analytics Inc.",
			EntityType:          domain.EntityController,
			IndustrySector:      "Technology",
			HeadquartersCountry: "Canada",
			DpoContact: domain.DpoContact{
				Name:  "Jordan Lee",
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
			RetentionSchedule: []domain.RetentionEntry{
				{DataCategory: domain.CategoryPersonalIdentifiers, Period: "7 years"},
			},
			ConsentMechanisms: []domain.ConsentMechanism{domain.ConsentOptIn},
		},
	}
}

func requirementIDs(reqs []domain.MappedRequirement) []string {
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRegistrySupportsEveryJurisdiction(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, j := range domain.AllJurisdictions {
		assert.True(t, reg.IsSupported(j), "jurisdiction %s", j)
		mod, ok := reg.Module(j)
		require.True(t, ok)
		assert.Equal(t, j, mod.ID())
		assert.NotEmpty(t, mod.FullName())
		assert.NotEmpty(t, mod.EffectiveDate())
		assert.NotEmpty(t, mod.SourceURL())
	}

	assert.Equal(t, []domain.Jurisdiction{
		domain.JurisdictionPIPEDA,
		domain.JurisdictionQuebecLaw25,
		domain.JurisdictionAlbertaPIPA,
		domain.JurisdictionBCPIPA,
		domain.JurisdictionGDPR,
		domain.JurisdictionCCPA,
		domain.JurisdictionCPRA,
	}, reg.Supported())
}

func TestRegistrySkipsDuplicateModules(t *testing.T) {
	t.Parallel()

	reg := newRegistry(NewPIPEDA(), NewPIPEDA(), NewGDPR())
	assert.Equal(t, []domain.Jurisdiction{domain.JurisdictionPIPEDA, domain.JurisdictionGDPR}, reg.Supported())
}

func TestModulesEmitOnlyTheirOwnJurisdiction(t *testing.T) {
	t.Parallel()

	input := baseInput(domain.AllJurisdictions...)
	input.DataPractices.CollectsChildrensData = true
	input.DataPractices.UsesCookies = true
	input.DataPractices.UsesAutomatedDecisionMaking = true
	input.DataPractices.ConductsDPIA = true
	input.DataPractices.ThirdPartySharing = domain.ThirdPartySharing{
		Shares:                   true,
		SellsData:                true,
		SharesForCrossBehavioral: true,
		Recipients: []domain.ThirdPartyRecipient{
			{Category: "Cloud hosting", Purpose: "Infrastructure", DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers}},
		},
	}
	input.DataPractices.CrossBorderTransfers = domain.CrossBorderTransfers{
		Transfers: true,
		Destinations: []domain.CrossBorderDestination{
			{Country: "United States", Mechanism: domain.MechanismSCCs, DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers}},
		},
	}

	reg := NewRegistry()
	for _, j := range reg.Supported() {
		mod, _ := reg.Module(j)
		for _, req := range mod.MapRequirements(input) {
			assert.Equal(t, j, req.Jurisdiction, "requirement %s", req.ID)
			assert.NotEmpty(t, req.ID)
			assert.NotEmpty(t, req.StatutoryReference)
			assert.NotEmpty(t, req.DisclaimerLanguage)
			assert.NoError(t, req.Topic.Validate(), "requirement %s", req.ID)
		}
	}
}

func TestMappingIsDeterministic(t *testing.T) {
	t.Parallel()

	input := baseInput(domain.JurisdictionPIPEDA)
	mod := NewPIPEDA()
	assert.Equal(t, mod.MapRequirements(input), mod.MapRequirements(input))
}

func TestPIPEDAConditionalRequirements(t *testing.T) {
	t.Parallel()

	mod := NewPIPEDA()

	ids := requirementIDs(mod.MapRequirements(baseInput(domain.JurisdictionPIPEDA)))
	assert.Contains(t, ids, "PIPEDA-P4.1")
	assert.Contains(t, ids, "PIPEDA-P4.2-service_delivery")
	assert.Contains(t, ids, "PIPEDA-P4.5-RET-personal_identifiers")
	assert.NotContains(t, ids, "PIPEDA-P4.3-SENSITIVE")
	assert.NotContains(t, ids, "PIPEDA-P4.3-CHILDREN")
	assert.NotContains(t, ids, "PIPEDA-P4.1.3")
	assert.NotContains(t, ids, "PIPEDA-CROSS-BORDER")
	assert.NotContains(t, ids, "PIPEDA-COOKIES")
	assert.NotContains(t, ids, "PIPEDA-ADM")

	input := baseInput(domain.JurisdictionPIPEDA)
	input.DataPractices.DataCategories = append(input.DataPractices.DataCategories, domain.CategoryHealth)
	input.DataPractices.CollectsChildrensData = true
	input.DataPractices.UsesCookies = true
	input.DataPractices.UsesAutomatedDecisionMaking = true
	input.DataPractices.ThirdPartySharing.Shares = true
	input.DataPractices.CrossBorderTransfers = domain.CrossBorderTransfers{
		Transfers: true,
		Destinations: []domain.CrossBorderDestination{
			{Country: "United States", Mechanism: domain.MechanismComparableProtection},
		},
	}

	ids = requirementIDs(mod.MapRequirements(input))
	assert.Contains(t, ids, "PIPEDA-P4.3-SENSITIVE")
	assert.Contains(t, ids, "PIPEDA-P4.3-CHILDREN")
	assert.Contains(t, ids, "PIPEDA-P4.1.3")
	assert.Contains(t, ids, "PIPEDA-CROSS-BORDER")
	assert.Contains(t, ids, "PIPEDA-COOKIES")
	assert.Contains(t, ids, "PIPEDA-ADM")
}

func TestPIPEDAChildrenAgeThreshold(t *testing.T) {
	t.Parallel()

	input := baseInput(domain.JurisdictionPIPEDA)
	input.DataPractices.CollectsChildrensData = true

	find := func(reqs []domain.MappedRequirement) domain.MappedRequirement {
		for _, r := range reqs {
			if r.ID == "PIPEDA-P4.3-CHILDREN" {
				return r
			}
		}
		t.Fatal("PIPEDA-P4.3-CHILDREN not emitted")
		return domain.MappedRequirement{}
	}

	req := find(NewPIPEDA().MapRequirements(input))
	assert.Contains(t, req.DisclaimerLanguage, "under the age of 13")

	input.DataPractices.MinimumAgeThreshold = 16
	req = find(NewPIPEDA().MapRequirements(input))
	assert.Contains(t, req.DisclaimerLanguage, "under the age of 16")
}

func TestGDPRRepresentativeAndTransfers(t *testing.T) {
	t.Parallel()

	mod := NewGDPR()

	ids := requirementIDs(mod.MapRequirements(baseInput(domain.JurisdictionGDPR)))
	assert.Contains(t, ids, "GDPR-ART5")
	assert.Contains(t, ids, "GDPR-ART15")
	assert.Contains(t, ids, "GDPR-ART17")
	assert.NotContains(t, ids, "GDPR-ART27")
	assert.NotContains(t, ids, "GDPR-ART28")

	input := baseInput(domain.JurisdictionGDPR)
	input.OrgProfile.EuRepresentative = &domain.EuRepresentative{
		Name:    "EU Rep GmbH",
		Email:   "rep@acme.example",
		Address: "Berlin, Germany",
	}
	input.DataPractices.ThirdPartySharing.Shares = true
	input.DataPractices.CrossBorderTransfers = domain.CrossBorderTransfers{
		Transfers: true,
		Destinations: []domain.CrossBorderDestination{
			{Country: "United States", Mechanism: domain.MechanismSCCs},
			{Country: "United Kingdom", Mechanism: domain.MechanismAdequacyDecision},
		},
	}

	ids = requirementIDs(mod.MapRequirements(input))
	assert.Contains(t, ids, "GDPR-ART27")
	assert.Contains(t, ids, "GDPR-ART28")
	// One transfer requirement per destination country
	assert.Contains(t, ids, "GDPR-TRANSFER-United_States")
	assert.Contains(t, ids, "GDPR-TRANSFER-United_Kingdom")
}

func TestCCPASaleAndSharingGates(t *testing.T) {
	t.Parallel()

	mod := NewCCPA()

	ids := requirementIDs(mod.MapRequirements(baseInput(domain.JurisdictionCCPA)))
	assert.Contains(t, ids, "CCPA-100")
	assert.Contains(t, ids, "CCPA-120")
	assert.NotContains(t, ids, "CCPA-120-LINK")
	assert.NotContains(t, ids, "CCPA-115")

	input := baseInput(domain.JurisdictionCCPA)
	input.DataPractices.ThirdPartySharing.Shares = true
	input.DataPractices.ThirdPartySharing.SellsData = true

	ids = requirementIDs(mod.MapRequirements(input))
	assert.Contains(t, ids, "CCPA-120-LINK")
	assert.Contains(t, ids, "CCPA-115")
}

func TestCPRAGates(t *testing.T) {
	t.Parallel()

	mod := NewCPRA()

	ids := requirementIDs(mod.MapRequirements(baseInput(domain.JurisdictionCPRA)))
	assert.Contains(t, ids, "CPRA-100")
	assert.Contains(t, ids, "CPRA-106")
	assert.NotContains(t, ids, "CPRA-120-BEHAVIORAL")
	assert.NotContains(t, ids, "CPRA-135-LINK")
	assert.NotContains(t, ids, "CPRA-121")
	assert.NotContains(t, ids, "CPRA-RISK-ASSESSMENT")

	input := baseInput(domain.JurisdictionCPRA)
	input.DataPractices.ThirdPartySharing.SharesForCrossBehavioral = true
	input.DataPractices.DataCategories = append(input.DataPractices.DataCategories, domain.CategoryGeolocation)
	input.DataPractices.ConductsDPIA = true

	ids = requirementIDs(mod.MapRequirements(input))
	assert.Contains(t, ids, "CPRA-120-BEHAVIORAL")
	assert.Contains(t, ids, "CPRA-135-LINK")
	assert.Contains(t, ids, "CPRA-121")
	assert.Contains(t, ids, "CPRA-RISK-ASSESSMENT")

	// Selling alone also triggers the link requirement
	input = baseInput(domain.JurisdictionCPRA)
	input.DataPractices.ThirdPartySharing.SellsData = true
	ids = requirementIDs(mod.MapRequirements(input))
	assert.Contains(t, ids, "CPRA-135-LINK")
}

func TestProvincialSensitiveAndCookieGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		module      domain.RegulationModule
		sensitiveID string
		cookiesID   string
	}{
		{"quebec", NewQuebecLaw25(), "QC-LAW25-SENSITIVE", "QC-LAW25-COOKIES"},
		{"alberta", NewAlbertaPIPA(), "AB-PIPA-S8-SENSITIVE", "AB-PIPA-COOKIES"},
		{"bc", NewBCPIPA(), "BC-PIPA-S8-SENSITIVE", "BC-PIPA-COOKIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ids := requirementIDs(tt.module.MapRequirements(baseInput(tt.module.ID())))
			assert.NotContains(t, ids, tt.sensitiveID)
			assert.NotContains(t, ids, tt.cookiesID)

			input := baseInput(tt.module.ID())
			input.DataPractices.DataCategories = append(input.DataPractices.DataCategories, domain.CategoryHealth)
			input.DataPractices.UsesCookies = true

			ids = requirementIDs(tt.module.MapRequirements(input))
			assert.Contains(t, ids, tt.sensitiveID)
			assert.Contains(t, ids, tt.cookiesID)
		})
	}
}

func TestPurposeAndRetentionHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "To support service delivery.", purposeDisclaimer(domain.ProcessingPurposeEntry{
		Purpose: domain.PurposeServiceDelivery,
	}))
	assert.Equal(t, "We deliver the service you signed up for.", purposeDisclaimer(domain.ProcessingPurposeEntry{
		Purpose:     domain.PurposeServiceDelivery,
		Description: "We deliver the service you signed up for.",
	}))

	assert.Equal(t, "personal identifiers: 7 years", retentionDisclaimer(domain.RetentionEntry{
		DataCategory: domain.CategoryPersonalIdentifiers,
		Period:       "7 years",
	}))
	assert.Equal(t, "financial: 7 years (Tax records)", retentionDisclaimer(domain.RetentionEntry{
		DataCategory:  domain.CategoryFinancial,
		Period:        "7 years",
		Justification: "Tax records",
	}))
}
