package domain

import "fmt"

// LegalBasis is the lawful ground an organization relies on for a given
// processing purpose.
type LegalBasis string

const (
	BasisConsent            LegalBasis = "consent"
	BasisContract           LegalBasis = "contract"
	BasisLegalObligation    LegalBasis = "legal_obligation"
	BasisVitalInterests     LegalBasis = "vital_interests"
	BasisPublicInterest     LegalBasis = "public_interest"
	BasisLegitimateInterest LegalBasis = "legitimate_interest"
)

var legalBasisLabels = map[LegalBasis]string{
	BasisConsent:            "Consent of the data subject",
	BasisContract:           "Performance of a contract",
	BasisLegalObligation:    "Compliance with a legal obligation",
	BasisVitalInterests:     "Protection of vital interests",
	BasisPublicInterest:     "Performance of a task in the public interest",
	BasisLegitimateInterest: "Legitimate interests of the controller",
}

// Label returns the canonical human-readable label for the legal basis.
func (b LegalBasis) Label() string {
	if label, ok := legalBasisLabels[b]; ok {
		return label
	}
	return string(b)
}

// Validate returns an error if the legal basis is not part of the vocabulary.
func (b LegalBasis) Validate() error {
	if _, ok := legalBasisLabels[b]; !ok {
		return fmt.Errorf("invalid legal basis: %s", string(b))
	}
	return nil
}

func (b LegalBasis) String() string {
	return string(b)
}
