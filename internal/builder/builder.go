// Package builder combines assembled sections with generation metadata into
// a complete document ready for rendering.
package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/privacykit-dev/privacykit/internal/assembler"
	"github.com/privacykit-dev/privacykit/internal/domain"
)

// Document is an assembled disclosure document before rendering.
type Document struct {
	// GenerationID tags one build for log correlation. It is never rendered
	// into the document, which stays byte-identical for identical inputs.
	GenerationID uuid.UUID
	Sections     []domain.DisclaimerSection
	Metadata     domain.DisclaimerMetadata
}

// Build assembles the document sections and attaches metadata. The caller
// supplies the generation time and document version.
func Build(requirements []domain.MappedRequirement, input domain.ValidatedInput, version string, now time.Time) Document {
	sections := assembler.Assemble(requirements, input, now)

	return Document{
		GenerationID: uuid.New(),
		Sections:     sections,
		Metadata: domain.DisclaimerMetadata{
			GeneratedAt:      now,
			Jurisdictions:    input.Jurisdictions,
			OrgName:          input.OrgProfile.LegalName,
			Version:          version,
			RequirementCount: len(requirements),
		},
	}
}
