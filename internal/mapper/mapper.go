// Package mapper turns a validated input document into the flat list of
// requirements that apply to it, by consulting one regulation module per
// selected jurisdiction.
package mapper

import (
	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

// Map runs every selected jurisdiction's module against the input and
// concatenates the results in selection order. Jurisdictions without a
// registered module are skipped.
func Map(reg *regulations.Registry, input domain.ValidatedInput) []domain.MappedRequirement {
	var all []domain.MappedRequirement
	for _, j := range input.Jurisdictions {
		mod, ok := reg.Module(j)
		if !ok {
			continue
		}
		all = append(all, mod.MapRequirements(input)...)
	}
	return all
}
