package domain

// MappedRequirement is one concrete obligation a regulation module derived
// from the input. Requirements are flat and jurisdiction-scoped; the
// assembler never merges requirements across jurisdictions.
type MappedRequirement struct {
	ID                 string
	Jurisdiction       Jurisdiction
	Topic              TopicCategory
	Subtopic           Subtopic
	StatutoryReference string
	ObligationType     ObligationType
	RequirementText    string
	DisclaimerLanguage string
	ConditionalOn      []string
	Priority           Priority
}

// Citation derives the statutory citation carried into document sections.
func (r MappedRequirement) Citation() StatutoryCitation {
	return StatutoryCitation{
		Jurisdiction: r.Jurisdiction,
		Reference:    r.StatutoryReference,
		Description:  r.RequirementText,
	}
}

// RegulationModule is one jurisdiction's requirement mapper. Mapping is a
// pure function of the input: same input, same requirements, same order.
type RegulationModule interface {
	ID() Jurisdiction
	FullName() string
	ShortName() string
	EffectiveDate() string
	SourceURL() string
	MapRequirements(input ValidatedInput) []MappedRequirement
}
