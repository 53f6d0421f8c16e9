package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

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

func TestMapConcatenatesInSelectionOrder(t *testing.T) {
	t.Parallel()

	reg := regulations.NewRegistry()
	input := testInput(domain.JurisdictionGDPR, domain.JurisdictionPIPEDA)

	reqs := Map(reg, input)
	require.NotEmpty(t, reqs)

	// GDPR was selected first, so every GDPR requirement precedes every
	// PIPEDA requirement.
	lastGDPR := -1
	firstPIPEDA := len(reqs)
	for i, r := range reqs {
		switch r.Jurisdiction {
		case domain.JurisdictionGDPR:
			lastGDPR = i
		case domain.JurisdictionPIPEDA:
			if i < firstPIPEDA {
				firstPIPEDA = i
			}
		default:
			t.Fatalf("unexpected jurisdiction %s", r.Jurisdiction)
		}
	}
	assert.Less(t, lastGDPR, firstPIPEDA)
}

func TestMapMatchesPerModuleOutput(t *testing.T) {
	t.Parallel()

	reg := regulations.NewRegistry()
	input := testInput(domain.JurisdictionPIPEDA, domain.JurisdictionCCPA)

	pipeda, _ := reg.Module(domain.JurisdictionPIPEDA)
	ccpa, _ := reg.Module(domain.JurisdictionCCPA)
	want := append(pipeda.MapRequirements(input), ccpa.MapRequirements(input)...)

	assert.Equal(t, want, Map(reg, input))
}

func TestMapSkipsUnregisteredJurisdictions(t *testing.T) {
	t.Parallel()

	reg := regulations.NewRegistry()
	input := testInput(domain.JurisdictionPIPEDA, domain.Jurisdiction("LGPD"))

	reqs := Map(reg, input)
	require.NotEmpty(t, reqs)
	for _, r := range reqs {
		assert.Equal(t, domain.JurisdictionPIPEDA, r.Jurisdiction)
	}
}

func TestMapEmptySelection(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Map(regulations.NewRegistry(), testInput()))
}
