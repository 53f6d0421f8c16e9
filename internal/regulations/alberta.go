package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var albertaSensitiveCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategoryFinancial,
	domain.CategorySensitivePersonal,
	domain.CategoryChildrens,
}

type albertaModule struct{ staticInfo }

// NewAlbertaPIPA returns the requirement mapper for Alberta's Personal
// Information Protection Act.
func NewAlbertaPIPA() domain.RegulationModule {
	return albertaModule{staticInfo{
		id:            domain.JurisdictionAlbertaPIPA,
		fullName:      "Personal Information Protection Act (Alberta)",
		shortName:     "Alberta PIPA",
		effectiveDate: "2004-01-01",
		sourceURL:     "https://www.qp.alberta.ca/documents/Acts/P06P5.pdf",
	}}
}

func (m albertaModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S4",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "Alberta PIPA, s. 4-5",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization is responsible for personal information that is in its custody or under its control. The organization must designate one or more individuals to be responsible for ensuring compliance.",
		DisclaimerLanguage: fmt.Sprintf("%s is responsible for personal information in its custody or under its control. Our %s, %s, is accountable for our compliance with Alberta PIPA and can be reached at %s.", org.LegalName, org.DpoContact.Title, org.DpoContact.Name, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S7",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicConsent,
		StatutoryReference: "Alberta PIPA, s. 7-8",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must not collect, use, or disclose personal information without the consent of the individual unless authorized by this Act.",
		DisclaimerLanguage: "We obtain your consent before collecting, using, or disclosing your personal information, except where authorized by Alberta PIPA without consent (s. 7-8). Consent may be express, deemed, or opt-out depending on the nature and sensitivity of the information.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.HasAnyCategory(albertaSensitiveCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-S8-SENSITIVE",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicExpressConsentSensitive,
			StatutoryReference: "Alberta PIPA, s. 8(1)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Express consent is required for the collection, use, or disclosure of sensitive personal information.",
			DisclaimerLanguage: "Where we collect sensitive personal information — including health, biometric, or financial information — we obtain your express consent as required by Alberta PIPA s. 8(1).",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-S7-CHILDREN",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "Alberta PIPA, s. 7(2)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where an individual is a minor, consent may be given by a parent or guardian.",
			DisclaimerLanguage: fmt.Sprintf("Where we collect personal information from individuals under the age of %d, we obtain verifiable consent from a parent or guardian in accordance with Alberta PIPA s. 7(2).", ageThreshold(dp, 13)),
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S11",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "Alberta PIPA, s. 11",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization may collect personal information only for purposes that are reasonable and only to the extent that is reasonable for meeting those purposes.",
		DisclaimerLanguage: "We limit the collection of personal information to that which is reasonable for the purposes we have identified, as required by Alberta PIPA s. 11.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S16",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "Alberta PIPA, s. 16",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Before or at the time of collecting personal information, the organization must identify the purposes for the collection.",
		DisclaimerLanguage: "We identify the purposes for which we collect your personal information at or before the time of collection, as required by Alberta PIPA s. 16.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("AB-PIPA-S16-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "Alberta PIPA, s. 16-17",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S35",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "Alberta PIPA, s. 35",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must destroy, erase, or make anonymous personal information that is no longer required for the identified purpose or a legal or business purpose.",
		DisclaimerLanguage: "We retain personal information only for as long as necessary for the purposes for which it was collected, or as required for legal or business purposes. When personal information is no longer required, we destroy, erase, or anonymize it (Alberta PIPA s. 35).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("AB-PIPA-S35-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "Alberta PIPA, s. 35",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S34",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "Alberta PIPA, s. 34",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must protect personal information by making reasonable security arrangements against such risks as unauthorized access, collection, use, disclosure, copying, modification, disposal, or destruction.",
		DisclaimerLanguage: "We protect your personal information with reasonable security arrangements, including physical, organizational, and technological safeguards appropriate to the sensitivity of the information (Alberta PIPA s. 34).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S34.1",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "Alberta PIPA, s. 34.1",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization having personal information under its control must, without unreasonable delay, provide notice to the Commissioner of a loss of or unauthorized access to or disclosure of the personal information where a reasonable person would consider that there exists a real risk of significant harm to an individual.",
		DisclaimerLanguage: "In the event of a breach of security safeguards involving your personal information that poses a real risk of significant harm, we will notify the Office of the Information and Privacy Commissioner of Alberta and you without unreasonable delay, in accordance with Alberta PIPA s. 34.1.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S24",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "Alberta PIPA, s. 24-28",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual has a right to request access to their personal information in the custody or under the control of an organization.",
		DisclaimerLanguage: "You have the right to request access to your personal information held by us. Upon receipt of a written request and sufficient identification, we will respond within 45 days, as required by Alberta PIPA s. 24-28.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S36",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "Alberta PIPA, s. 36",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual may request correction of an error or omission in their personal information.",
		DisclaimerLanguage: "You have the right to request correction of any errors or omissions in your personal information. If we disagree with the correction, we will annotate the information with the substance of the unresolved correction request (Alberta PIPA s. 36).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares || dp.CrossBorderTransfers.Transfers {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-S20",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "Alberta PIPA, s. 20-21",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "An organization may disclose personal information only for purposes that are reasonable. Disclosure to service providers requires contractual protection.",
			DisclaimerLanguage: fmt.Sprintf("When we disclose your personal information to third parties, %s ensures that contractual arrangements provide comparable protection (Alberta PIPA s. 20-21).", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CrossBorderTransfers.Transfers && len(dp.CrossBorderTransfers.Destinations) > 0 {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-S13.1",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "Alberta PIPA, s. 13.1",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "An organization must notify individuals that their personal information may be stored or accessed outside of Canada, and that it may be subject to the laws of that jurisdiction.",
			DisclaimerLanguage: fmt.Sprintf("Your personal information may be transferred to, stored, and processed in jurisdictions outside of Canada, including %s. We notify you that personal information stored or accessed outside Canada may be subject to the laws of that jurisdiction and may be accessible to law enforcement authorities (Alberta PIPA s. 13.1).", destinationCountries(dp)),
			ConditionalOn:      []string{"crossBorderTransfers.transfers"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "AB-PIPA-S46",
		Jurisdiction:       domain.JurisdictionAlbertaPIPA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "Alberta PIPA, s. 46",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An individual may ask the Commissioner to review any matter specified in the Act, including a complaint about the collection, use, or disclosure of personal information.",
		DisclaimerLanguage: fmt.Sprintf("You may challenge our compliance with Alberta PIPA by contacting our %s at %s. If you are not satisfied with our response, you have the right to file a complaint with the Office of the Information and Privacy Commissioner of Alberta (OIPC) at www.oipc.ab.ca.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-ADM",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "Alberta PIPA, s. 7, 16 (OIPC Guidance)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations using automated decision-making systems should be transparent about their use, consistent with consent and purpose limitation requirements.",
			DisclaimerLanguage: "We use automated decision-making systems in the processing of your personal information. In accordance with Alberta PIPA transparency and consent requirements, we disclose the use of these systems and will provide meaningful information about the logic involved upon request.",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "AB-PIPA-COOKIES",
			Jurisdiction:       domain.JurisdictionAlbertaPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "Alberta PIPA, s. 7-8 (OIPC Guidance on Online Tracking)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations must inform individuals of the use of cookies and tracking technologies and obtain consent where required.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies to collect information about your interactions with our services. In accordance with Alberta PIPA consent requirements, we obtain your consent before deploying non-essential cookies.",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	return reqs
}
