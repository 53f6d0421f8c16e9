package domain

import "fmt"

// ProcessingPurpose names why the organization processes personal data.
type ProcessingPurpose string

const (
	PurposeServiceDelivery     ProcessingPurpose = "service_delivery"
	PurposeAccountManagement   ProcessingPurpose = "account_management"
	PurposeMarketingDirect     ProcessingPurpose = "marketing_direct"
	PurposeMarketingThirdParty ProcessingPurpose = "marketing_third_party"
	PurposeAnalytics           ProcessingPurpose = "analytics"
	PurposePersonalization     ProcessingPurpose = "personalization"
	PurposeLegalCompliance     ProcessingPurpose = "legal_compliance"
	PurposeSecurityFraud       ProcessingPurpose = "security_fraud"
	PurposeResearch            ProcessingPurpose = "research"
	PurposeEmploymentAdmin     ProcessingPurpose = "employment_admin"
)

var processingPurposeLabels = map[ProcessingPurpose]string{
	PurposeServiceDelivery:     "Service delivery and fulfillment",
	PurposeAccountManagement:   "Account creation and management",
	PurposeMarketingDirect:     "Direct marketing communications",
	PurposeMarketingThirdParty: "Third-party marketing",
	PurposeAnalytics:           "Analytics and performance measurement",
	PurposePersonalization:     "Personalization and recommendations",
	PurposeLegalCompliance:     "Legal and regulatory compliance",
	PurposeSecurityFraud:       "Security and fraud prevention",
	PurposeResearch:            "Research and development",
	PurposeEmploymentAdmin:     "Employment administration",
}

// Label returns the canonical human-readable label for the purpose.
func (p ProcessingPurpose) Label() string {
	if label, ok := processingPurposeLabels[p]; ok {
		return label
	}
	return string(p)
}

// Validate returns an error if the purpose is not part of the vocabulary.
func (p ProcessingPurpose) Validate() error {
	if _, ok := processingPurposeLabels[p]; !ok {
		return fmt.Errorf("invalid processing purpose: %s", string(p))
	}
	return nil
}

func (p ProcessingPurpose) String() string {
	return string(p)
}
