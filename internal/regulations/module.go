// Package regulations holds one requirement mapper per supported
// jurisdiction plus the registry that exposes them. Each mapper is a pure
// function of the validated input: it emits requirements in a fixed order,
// never consults another module, and never fails.
package regulations

import (
	"strings"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// staticInfo carries a module's fixed statutory metadata.
type staticInfo struct {
	id            domain.Jurisdiction
	fullName      string
	shortName     string
	effectiveDate string
	sourceURL     string
}

func (s staticInfo) ID() domain.Jurisdiction { return s.id }
func (s staticInfo) FullName() string        { return s.fullName }
func (s staticInfo) ShortName() string       { return s.shortName }
func (s staticInfo) EffectiveDate() string   { return s.effectiveDate }
func (s staticInfo) SourceURL() string       { return s.sourceURL }

// humanize turns a snake_case vocabulary value into display text.
func humanize[T ~string](v T) string {
	return strings.ReplaceAll(string(v), "_", " ")
}

// ageThreshold returns the configured minimum age, or the jurisdiction's
// default when the input leaves it unset.
func ageThreshold(dp domain.DataPractices, fallback int) int {
	if dp.MinimumAgeThreshold > 0 {
		return dp.MinimumAgeThreshold
	}
	return fallback
}

// destinationCountries joins cross-border destination countries for
// disclosure text, preserving input order.
func destinationCountries(dp domain.DataPractices) string {
	countries := make([]string, 0, len(dp.CrossBorderTransfers.Destinations))
	for _, d := range dp.CrossBorderTransfers.Destinations {
		countries = append(countries, d.Country)
	}
	return strings.Join(countries, ", ")
}

// purposeFallback is the generated disclosure line for a processing purpose
// entry that carries no description of its own.
func purposeFallback(p domain.ProcessingPurpose) string {
	return "To support " + humanize(p) + "."
}

// purposeDisclaimer prefers the entry's own description over the generated
// fallback line.
func purposeDisclaimer(entry domain.ProcessingPurposeEntry) string {
	if entry.Description != "" {
		return entry.Description
	}
	return purposeFallback(entry.Purpose)
}

// retentionDisclaimer renders one retention schedule entry as a list line.
func retentionDisclaimer(entry domain.RetentionEntry) string {
	line := humanize(entry.DataCategory) + ": " + entry.Period
	if entry.Justification != "" {
		line += " (" + entry.Justification + ")"
	}
	return line
}
