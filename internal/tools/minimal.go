// Package tools implements the peripheral document generators that work
// from a reduced input: the third-party processor disclosure, the entity
// role determination memo, and the standalone cookie policy.
package tools

import (
	"github.com/privacykit-dev/privacykit/internal/domain"
)

// MinimalInputOptions is the reduced input the peripheral tools collect.
type MinimalInputOptions struct {
	Jurisdictions  []domain.Jurisdiction
	DataCategories []domain.DataCategory
	Recipients     []domain.ThirdPartyRecipient
}

// BuildMinimalInput expands the reduced input into a full validated input
// with fixed neutral defaults, so the regulation modules can run over it.
func BuildMinimalInput(opts MinimalInputOptions) domain.ValidatedInput {
	retention := make([]domain.RetentionEntry, 0, len(opts.DataCategories))
	for _, cat := range opts.DataCategories {
		retention = append(retention, domain.RetentionEntry{
			DataCategory: cat,
			Period:       "As required for the stated purpose",
		})
	}

	return domain.ValidatedInput{
		Jurisdictions: opts.Jurisdictions,
		OrgProfile: domain.OrgProfile{
			LegalName:           "Organization",
			EntityType:          domain.EntityController,
			IndustrySector:      "Technology",
			HeadquartersCountry: "Canada",
			DpoContact: domain.DpoContact{
				Title: "Privacy Officer",
				Email: "privacy@organization.example",
			},
		},
		DataPractices: domain.DataPractices{
			DataCategories: opts.DataCategories,
			DataSources:    []domain.DataSource{domain.SourceDirectlyFromSubject},
			ProcessingPurposes: []domain.ProcessingPurposeEntry{
				{
					Purpose:    domain.PurposeServiceDelivery,
					LegalBasis: domain.BasisLegitimateInterest,
				},
			},
			RetentionSchedule: retention,
			ThirdPartySharing: domain.ThirdPartySharing{
				Shares:     len(opts.Recipients) > 0,
				Recipients: opts.Recipients,
			},
			ConsentMechanisms: []domain.ConsentMechanism{domain.ConsentOptIn},
		},
	}
}
