package domain

import "fmt"

// DataCategory classifies the kinds of personal information an organization
// collects. Several regulation modules treat a subset of these as sensitive.
type DataCategory string

const (
	CategoryPersonalIdentifiers DataCategory = "personal_identifiers"
	CategoryFinancial           DataCategory = "financial"
	CategoryHealth              DataCategory = "health"
	CategoryBiometric           DataCategory = "biometric"
	CategoryGeolocation         DataCategory = "geolocation"
	CategoryBehavioral          DataCategory = "behavioral"
	CategoryEmployment          DataCategory = "employment"
	CategoryEducation           DataCategory = "education"
	CategorySensitivePersonal   DataCategory = "sensitive_personal"
	CategoryChildrens           DataCategory = "childrens"
	CategoryDeviceTechnical     DataCategory = "device_technical"
	CategoryUserGenerated       DataCategory = "user_generated"
)

// AllDataCategories lists every accepted data category in display order.
var AllDataCategories = []DataCategory{
	CategoryPersonalIdentifiers,
	CategoryFinancial,
	CategoryHealth,
	CategoryBiometric,
	CategoryGeolocation,
	CategoryBehavioral,
	CategoryEmployment,
	CategoryEducation,
	CategorySensitivePersonal,
	CategoryChildrens,
	CategoryDeviceTechnical,
	CategoryUserGenerated,
}

var dataCategoryLabels = map[DataCategory]string{
	CategoryPersonalIdentifiers: "Personal identifiers (name, email, phone, address)",
	CategoryFinancial:           "Financial information (payment details, bank information)",
	CategoryHealth:              "Health and medical data",
	CategoryBiometric:           "Biometric data (fingerprints, facial recognition)",
	CategoryGeolocation:         "Geolocation data (GPS, IP-based location)",
	CategoryBehavioral:          "Behavioral data (browsing history, purchase history, preferences)",
	CategoryEmployment:          "Employment information",
	CategoryEducation:           "Educational records",
	CategorySensitivePersonal:   "Sensitive personal information (race, religion, sexual orientation, political opinions)",
	CategoryChildrens:           "Children's data (individuals under 16/13)",
	CategoryDeviceTechnical:     "Device and technical data (device IDs, browser info, cookies)",
	CategoryUserGenerated:       "User-generated content (reviews, feedback, posts)",
}

// Label returns the canonical human-readable label for the category.
func (c DataCategory) Label() string {
	if label, ok := dataCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Validate returns an error if the category is not part of the vocabulary.
func (c DataCategory) Validate() error {
	if _, ok := dataCategoryLabels[c]; !ok {
		return fmt.Errorf("invalid data category: %s", string(c))
	}
	return nil
}

func (c DataCategory) String() string {
	return string(c)
}
