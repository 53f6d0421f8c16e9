package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var quebecSensitiveCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategoryFinancial,
	domain.CategorySensitivePersonal,
	domain.CategoryChildrens,
}

type quebecModule struct{ staticInfo }

// NewQuebecLaw25 returns the requirement mapper for Quebec's modernized
// private sector privacy law.
func NewQuebecLaw25() domain.RegulationModule {
	return quebecModule{staticInfo{
		id:            domain.JurisdictionQuebecLaw25,
		fullName:      "An Act to modernize legislative provisions as regards the protection of personal information (Quebec Law 25)",
		shortName:     "Quebec Law 25",
		effectiveDate: "2023-09-22",
		sourceURL:     "https://www.legisquebec.gouv.qc.ca/en/document/cs/P-39.1",
	}}
}

func (m quebecModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-S3.1",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "Quebec Law 25, s. 3.1 (amending Quebec Privacy Act)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The person carrying on an enterprise must designate a person responsible for the protection of personal information. By default, this is the person having the highest authority within the enterprise.",
		DisclaimerLanguage: fmt.Sprintf("%s has designated a person responsible for the protection of personal information as required by Quebec Law 25, s. 3.1. Our %s, %s, can be reached at %s.", org.LegalName, org.DpoContact.Title, org.DpoContact.Name, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-CONSENT",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicConsent,
		StatutoryReference: "Quebec Law 25, s. 8.1-8.3",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Consent must be manifest, free, and enlightened. It must be given for specific purposes and requested in clear and simple language, separately from any other information.",
		DisclaimerLanguage: "We obtain your manifest, free, and enlightened consent for the collection, use, and disclosure of your personal information. Consent is requested for specific purposes in clear and simple language, separately from any other information (Quebec Law 25, s. 8.1-8.3).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.HasAnyCategory(quebecSensitiveCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-SENSITIVE",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicExpressConsentSensitive,
			StatutoryReference: "Quebec Law 25, s. 12-13",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Express consent is required for the collection, use, or disclosure of sensitive personal information, which by its nature — medical, biometric, or otherwise intimate — calls for a high degree of reasonable expectation of privacy.",
			DisclaimerLanguage: "For sensitive personal information — including health, biometric, or financial data — we obtain your express consent as required by Quebec Law 25 (s. 12-13). Sensitive information is that which, by its nature, calls for a high degree of reasonable expectation of privacy.",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-CHILDREN",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "Quebec Law 25, s. 4.1 (Civil Code of Quebec)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "For minors under 14, consent must be given by the person having parental authority or the tutor.",
			DisclaimerLanguage: "For individuals under the age of 14, we obtain consent from a parent or tutor as required by Quebec law. For minors aged 14 and over, the minor may consent independently (Quebec Law 25, s. 4.1).",
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-PURPOSE",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "Quebec Law 25, s. 4-5",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A person carrying on an enterprise must determine the purposes for which personal information is collected before collection.",
		DisclaimerLanguage: "We determine and communicate the purposes for which personal information is collected before or at the time of collection, as required by Quebec Law 25.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("QC-LAW25-PURPOSE-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "Quebec Law 25, s. 4-5",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-COLLECTION",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "Quebec Law 25, s. 4",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Only personal information necessary for the identified purposes may be collected.",
		DisclaimerLanguage: "We collect only the personal information necessary for the purposes we have identified, in accordance with Quebec Law 25 (s. 4).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-RETENTION",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "Quebec Law 25, s. 12",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal information must be destroyed or anonymized once the purpose for which it was collected has been achieved, unless retention is required by law.",
		DisclaimerLanguage: "We destroy or anonymize personal information once the purposes for which it was collected have been achieved, unless retention is required by law. Our de-identification and anonymization practices comply with Quebec Law 25 (s. 12, 23).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("QC-LAW25-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "Quebec Law 25, s. 12",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-SAFEGUARDS",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "Quebec Law 25, s. 10",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A person carrying on an enterprise must take reasonable security measures to ensure the protection of personal information.",
		DisclaimerLanguage: "We implement reasonable security measures to protect your personal information, including physical, organizational, and technological safeguards (Quebec Law 25, s. 10).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-BREACH",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "Quebec Law 25, s. 3.5",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "In the event of a confidentiality incident involving personal information that presents a risk of serious injury, the person responsible must notify the Commission and affected individuals with diligence.",
		DisclaimerLanguage: "In the event of a confidentiality incident involving your personal information that presents a risk of serious injury, we will notify the Commission d'accès à l'information du Québec (CAI) and you with diligence, as required by Quebec Law 25 (s. 3.5).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-ACCESS",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "Quebec Law 25, s. 27-28",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "Any person who makes a request in writing may have access to their personal information and be informed of its use and disclosure.",
		DisclaimerLanguage: "You have the right to access your personal information held by us and to be informed of its use and communication to third parties. We will respond within 30 days of receiving your request (Quebec Law 25, s. 27-28).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-RECTIFICATION",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "Quebec Law 25, s. 28",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual has the right to request the rectification of personal information that is inaccurate, incomplete, or equivocal.",
		DisclaimerLanguage: "You have the right to request rectification of personal information that is inaccurate, incomplete, or equivocal. Where appropriate, you may also request deletion of information collected in contravention of the law (Quebec Law 25, s. 28).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-PORTABILITY",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightDataPortability,
		StatutoryReference: "Quebec Law 25, s. 27 (effective Sept 2024)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A person may request that personal information collected be communicated in a structured, commonly used technological format or that it be communicated to another person.",
		DisclaimerLanguage: "You have the right to receive your personal information in a structured, commonly used technological format, or to have it communicated to another person or organization you designate, subject to applicable conditions (Quebec Law 25, s. 27).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-ADM",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "Quebec Law 25, s. 12.1",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where a decision based exclusively on automated processing is made about an individual, the individual must be informed. The individual has the right to submit observations to a person in the enterprise who is in a position to review the decision.",
			DisclaimerLanguage: "Where we make decisions based exclusively on automated processing of your personal information, we will inform you at the time of or before the decision. You have the right to submit observations to a designated person who can review the decision (Quebec Law 25, s. 12.1).",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-ANONYMIZATION",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicAccuracy,
		StatutoryReference: "Quebec Law 25, s. 23",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Information is anonymized when it irreversibly no longer allows the person to be identified. De-identified information must use generally accepted best practices and criteria and standards that may be determined by regulation.",
		DisclaimerLanguage: "When we anonymize or de-identify personal information, we apply generally accepted best practices to ensure the information can no longer allow an individual to be identified, directly or indirectly, in accordance with Quebec Law 25 (s. 23).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares || dp.CrossBorderTransfers.Transfers {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-THIRD-PARTY",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "Quebec Law 25, s. 18.2-18.3",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Before communicating personal information to a third party, the enterprise must enter into a written agreement ensuring the recipient provides protection equivalent to that afforded under Quebec law.",
			DisclaimerLanguage: fmt.Sprintf("When we communicate your personal information to third parties, %s enters into written agreements ensuring the recipient provides protection equivalent to that under Quebec law (Quebec Law 25, s. 18.2-18.3).", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CrossBorderTransfers.Transfers && len(dp.CrossBorderTransfers.Destinations) > 0 {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-CROSS-BORDER",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "Quebec Law 25, s. 17",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Before communicating personal information outside Quebec, the enterprise must conduct a privacy impact assessment and ensure the information will be afforded equivalent protection.",
			DisclaimerLanguage: fmt.Sprintf("Your personal information may be communicated outside Quebec to jurisdictions including %s. Before any such transfer, we conduct a privacy impact assessment and ensure the information is afforded equivalent protection. We will inform you if the information may be communicated outside Quebec (Quebec Law 25, s. 17).", destinationCountries(dp)),
			ConditionalOn:      []string{"crossBorderTransfers.transfers"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.ConductsDPIA {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-PIA",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicDPIA,
			StatutoryReference: "Quebec Law 25, s. 3.3",
			ObligationType:     domain.ObligationProcess,
			RequirementText:    "A confidentiality impact assessment must be carried out for any project involving the collection, use, communication, storage, or destruction of personal information.",
			DisclaimerLanguage: "We conduct confidentiality impact assessments for projects involving the collection, use, communication, storage, or destruction of personal information, as required by Quebec Law 25 (s. 3.3). These assessments evaluate risks and ensure appropriate safeguards are in place.",
			ConditionalOn:      []string{"conductsDPIA"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "QC-LAW25-COOKIES",
			Jurisdiction:       domain.JurisdictionQuebecLaw25,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "Quebec Law 25, s. 8.1-8.3",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations must obtain manifest, free, and enlightened consent for the use of cookies and tracking technologies that collect personal information.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies to collect information about your interactions with our services. In accordance with Quebec Law 25 consent requirements, we obtain your manifest, free, and enlightened consent before deploying non-essential cookies (s. 8.1-8.3).",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "QC-LAW25-COMPLAINTS",
		Jurisdiction:       domain.JurisdictionQuebecLaw25,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "Quebec Law 25, s. 81-82",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A person may file a complaint with the Commission d'accès à l'information du Québec regarding any matter related to the protection of personal information.",
		DisclaimerLanguage: fmt.Sprintf("You may challenge our compliance with Quebec Law 25 by contacting our %s at %s. If you are not satisfied with our response, you have the right to file a complaint with the Commission d'accès à l'information du Québec (CAI) at www.cai.gouv.qc.ca.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	return reqs
}
