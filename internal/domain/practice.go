package domain

import "fmt"

// TransferMechanism is the legal vehicle relied on for a cross-border
// transfer of personal data.
type TransferMechanism string

const (
	MechanismAdequacyDecision     TransferMechanism = "adequacy_decision"
	MechanismSCCs                 TransferMechanism = "sccs"
	MechanismBCRs                 TransferMechanism = "bcrs"
	MechanismExplicitConsent      TransferMechanism = "explicit_consent"
	MechanismContractualNecessity TransferMechanism = "contractual_necessity"
	MechanismComparableProtection TransferMechanism = "comparable_protection"
)

var transferMechanisms = map[TransferMechanism]struct{}{
	MechanismAdequacyDecision:     {},
	MechanismSCCs:                 {},
	MechanismBCRs:                 {},
	MechanismExplicitConsent:      {},
	MechanismContractualNecessity: {},
	MechanismComparableProtection: {},
}

// Validate returns an error if the mechanism is not part of the vocabulary.
func (m TransferMechanism) Validate() error {
	if _, ok := transferMechanisms[m]; !ok {
		return fmt.Errorf("invalid transfer mechanism: %s", string(m))
	}
	return nil
}

func (m TransferMechanism) String() string {
	return string(m)
}

// DataSource describes where collected personal data originates.
type DataSource string

const (
	SourceDirectlyFromSubject DataSource = "directly_from_subject"
	SourceThirdPartyProviders DataSource = "third_party_providers"
	SourceAutomatedCollection DataSource = "automated_collection"
	SourcePublicSources       DataSource = "public_sources"
	SourceSocialMedia         DataSource = "social_media"
)

var dataSources = map[DataSource]struct{}{
	SourceDirectlyFromSubject: {},
	SourceThirdPartyProviders: {},
	SourceAutomatedCollection: {},
	SourcePublicSources:       {},
	SourceSocialMedia:         {},
}

// Validate returns an error if the source is not part of the vocabulary.
func (s DataSource) Validate() error {
	if _, ok := dataSources[s]; !ok {
		return fmt.Errorf("invalid data source: %s", string(s))
	}
	return nil
}

func (s DataSource) String() string {
	return string(s)
}

// ConsentMechanism describes how the organization obtains consent.
type ConsentMechanism string

const (
	ConsentOptIn        ConsentMechanism = "opt_in"
	ConsentOptOut       ConsentMechanism = "opt_out"
	ConsentGranular     ConsentMechanism = "granular_consent"
	ConsentCookieBanner ConsentMechanism = "cookie_consent_banner"
	ConsentDoubleOptIn  ConsentMechanism = "double_opt_in"
)

var consentMechanisms = map[ConsentMechanism]struct{}{
	ConsentOptIn:        {},
	ConsentOptOut:       {},
	ConsentGranular:     {},
	ConsentCookieBanner: {},
	ConsentDoubleOptIn:  {},
}

// Validate returns an error if the mechanism is not part of the vocabulary.
func (c ConsentMechanism) Validate() error {
	if _, ok := consentMechanisms[c]; !ok {
		return fmt.Errorf("invalid consent mechanism: %s", string(c))
	}
	return nil
}

func (c ConsentMechanism) String() string {
	return string(c)
}
