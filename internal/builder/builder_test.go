package builder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/mapper"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

func testInput() domain.ValidatedInput {
	return domain.ValidatedInput{
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
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

func TestBuildAttachesMetadata(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	input := testInput()
	requirements := mapper.Map(regulations.NewRegistry(), input)

	doc := Build(requirements, input, "1.2.0", now)

	assert.NotEqual(t, uuid.Nil, doc.GenerationID)
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, now, doc.Metadata.GeneratedAt)
	assert.Equal(t, input.Jurisdictions, doc.Metadata.Jurisdictions)
	assert.Equal(t, "Acme Analytics Inc.", doc.Metadata.OrgName)
	assert.Equal(t, "1.2.0", doc.Metadata.Version)
	assert.Equal(t, len(requirements), doc.Metadata.RequirementCount)
}

func TestBuildSectionsAreDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	input := testInput()
	requirements := mapper.Map(regulations.NewRegistry(), input)

	a := Build(requirements, input, "1.0.0", now)
	b := Build(requirements, input, "1.0.0", now)

	// The generation id is fresh per build; everything else is identical.
	assert.NotEqual(t, a.GenerationID, b.GenerationID)
	assert.Equal(t, a.Sections, b.Sections)
	assert.Equal(t, a.Metadata, b.Metadata)
}
