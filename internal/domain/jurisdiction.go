// Package domain contains the core domain model for the disclosure
// generation pipeline: the enumerated regulatory vocabulary, the validated
// organization input, mapped requirements, and the assembled document
// structure. These are pure domain types with no infrastructure
// dependencies.
package domain

import "fmt"

// Jurisdiction identifies a privacy-law regime with its own obligation set.
type Jurisdiction string

const (
	JurisdictionPIPEDA      Jurisdiction = "PIPEDA"
	JurisdictionQuebecLaw25 Jurisdiction = "QUEBEC_LAW25"
	JurisdictionAlbertaPIPA Jurisdiction = "ALBERTA_PIPA"
	JurisdictionBCPIPA      Jurisdiction = "BC_PIPA"
	JurisdictionGDPR        Jurisdiction = "GDPR"
	JurisdictionCCPA        Jurisdiction = "CCPA"
	JurisdictionCPRA        Jurisdiction = "CPRA"
)

// AllJurisdictions lists every jurisdiction the input schema accepts, in
// canonical display order.
var AllJurisdictions = []Jurisdiction{
	JurisdictionPIPEDA,
	JurisdictionQuebecLaw25,
	JurisdictionAlbertaPIPA,
	JurisdictionBCPIPA,
	JurisdictionGDPR,
	JurisdictionCCPA,
	JurisdictionCPRA,
}

var jurisdictionLabels = map[Jurisdiction]string{
	JurisdictionPIPEDA:      "PIPEDA (Canada — Federal)",
	JurisdictionQuebecLaw25: "Quebec Law 25 (An Act to modernize legislative provisions as regards the protection of personal information)",
	JurisdictionAlbertaPIPA: "Alberta PIPA (Personal Information Protection Act)",
	JurisdictionBCPIPA:      "BC PIPA (Personal Information Protection Act)",
	JurisdictionGDPR:        "GDPR (General Data Protection Regulation — EU)",
	JurisdictionCCPA:        "CCPA (California Consumer Privacy Act)",
	JurisdictionCPRA:        "CPRA (California Privacy Rights Act)",
}

// Label returns the canonical human-readable label for the jurisdiction.
func (j Jurisdiction) Label() string {
	if label, ok := jurisdictionLabels[j]; ok {
		return label
	}
	return string(j)
}

// Validate returns an error if the jurisdiction value is not part of the
// accepted vocabulary. Acceptance here does not imply a regulation module
// is registered for it.
func (j Jurisdiction) Validate() error {
	if _, ok := jurisdictionLabels[j]; !ok {
		return fmt.Errorf("invalid jurisdiction: %s", string(j))
	}
	return nil
}

func (j Jurisdiction) String() string {
	return string(j)
}
