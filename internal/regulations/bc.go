package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

var bcSensitiveCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategoryFinancial,
	domain.CategorySensitivePersonal,
	domain.CategoryChildrens,
}

type bcModule struct{ staticInfo }

// NewBCPIPA returns the requirement mapper for British Columbia's Personal
// Information Protection Act.
func NewBCPIPA() domain.RegulationModule {
	return bcModule{staticInfo{
		id:            domain.JurisdictionBCPIPA,
		fullName:      "Personal Information Protection Act (British Columbia)",
		shortName:     "BC PIPA",
		effectiveDate: "2004-01-01",
		sourceURL:     "https://www.bclaws.gov.bc.ca/civix/document/id/complete/statreg/03063_01",
	}}
}

func (m bcModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S4",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "BC PIPA, s. 4",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization is responsible for personal information under its control, including personal information that is not in its custody. The organization must designate one or more individuals to be responsible for ensuring compliance.",
		DisclaimerLanguage: fmt.Sprintf("%s is responsible for personal information under its control. Our %s, %s, is accountable for our compliance with BC PIPA and can be reached at %s.", org.LegalName, org.DpoContact.Title, org.DpoContact.Name, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S6",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicConsent,
		StatutoryReference: "BC PIPA, s. 6-8",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must not collect, use, or disclose personal information without the consent of the individual unless authorized by this Act.",
		DisclaimerLanguage: "We obtain your consent before collecting, using, or disclosing your personal information, except where authorized by BC PIPA without consent (s. 6-8). Consent may be express or implied depending on the nature and sensitivity of the information.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.HasAnyCategory(bcSensitiveCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-S8-SENSITIVE",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicExpressConsentSensitive,
			StatutoryReference: "BC PIPA, s. 8",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Express consent is generally required for the collection, use, or disclosure of sensitive personal information.",
			DisclaimerLanguage: "Where we collect sensitive personal information — including health, biometric, or financial information — we obtain your express consent as required by BC PIPA s. 8.",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-CHILDREN",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "BC PIPA, s. 6 (OIPC BC Guidance)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where an individual is a minor, consent may be given by a parent or guardian on behalf of the minor.",
			DisclaimerLanguage: fmt.Sprintf("Where we collect personal information from individuals under the age of %d, we obtain verifiable consent from a parent or guardian in accordance with BC PIPA requirements.", ageThreshold(dp, 13)),
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S11",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "BC PIPA, s. 11",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization may collect personal information only for purposes that a reasonable person would consider appropriate in the circumstances.",
		DisclaimerLanguage: "We identify the purposes for which we collect your personal information at or before the time of collection, and collect only for purposes a reasonable person would consider appropriate (BC PIPA s. 11).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("BC-PIPA-S11-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "BC PIPA, s. 11-14",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S11-LIMIT",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "BC PIPA, s. 11",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must collect personal information only to the extent reasonable for the identified purposes.",
		DisclaimerLanguage: "We limit the collection of personal information to that which is reasonable for the purposes we have identified (BC PIPA s. 11).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S14",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "BC PIPA, s. 14",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization may use personal information only for the purposes for which it was collected or for a use consistent with that purpose.",
		DisclaimerLanguage: "We use your personal information only for the purposes for which it was collected or for a use consistent with those purposes. We retain personal information only for as long as necessary (BC PIPA s. 14, 35).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("BC-PIPA-S35-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "BC PIPA, s. 35",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S34",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "BC PIPA, s. 34",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must protect personal information in its custody or under its control by making reasonable security arrangements to prevent unauthorized access, collection, use, disclosure, copying, modification or disposal.",
		DisclaimerLanguage: "We protect your personal information with reasonable security arrangements, including physical, organizational, and technological safeguards appropriate to the sensitivity of the information (BC PIPA s. 34).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-BREACH",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "BC PIPA, s. 29.1-29.4",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization must report breaches of security safeguards involving personal information that pose a real risk of significant harm to the Commissioner and affected individuals.",
		DisclaimerLanguage: "In the event of a breach of security safeguards involving your personal information that poses a real risk of significant harm, we will notify the Office of the Information and Privacy Commissioner for British Columbia and you without unreasonable delay, in accordance with BC PIPA s. 29.1-29.4.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S23",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "BC PIPA, s. 23",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual has a right to request access to their personal information in the custody or under the control of an organization.",
		DisclaimerLanguage: "You have the right to request access to your personal information held by us. Upon receipt of a written request and sufficient identification, we will respond within 30 business days, as required by BC PIPA s. 23.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-S29",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "BC PIPA, s. 29",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual may request correction of an error or omission in their personal information.",
		DisclaimerLanguage: "You have the right to request correction of any errors or omissions in your personal information. If we disagree with the correction, we will annotate the information accordingly (BC PIPA s. 29).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares || dp.CrossBorderTransfers.Transfers {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-S17",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "BC PIPA, s. 17-18",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "An organization may disclose personal information only for purposes that are reasonable and with appropriate contractual arrangements.",
			DisclaimerLanguage: fmt.Sprintf("When we disclose your personal information to third parties, %s ensures that contractual arrangements provide comparable protection (BC PIPA s. 17-18).", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CrossBorderTransfers.Transfers && len(dp.CrossBorderTransfers.Destinations) > 0 {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-S33",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "BC PIPA, s. 33",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "An organization must ensure personal information stored outside Canada is afforded a comparable level of protection. Individuals must be notified.",
			DisclaimerLanguage: fmt.Sprintf("Your personal information may be transferred to, stored, and processed in jurisdictions outside of Canada, including %s. We notify you that personal information stored or accessed outside Canada may be subject to the laws of that jurisdiction (BC PIPA s. 33).", destinationCountries(dp)),
			ConditionalOn:      []string{"crossBorderTransfers.transfers"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "BC-PIPA-COMPLAINTS",
		Jurisdiction:       domain.JurisdictionBCPIPA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "BC PIPA, s. 47",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An individual may ask the Commissioner to review any matter related to the organization's compliance with BC PIPA.",
		DisclaimerLanguage: fmt.Sprintf("You may challenge our compliance with BC PIPA by contacting our %s at %s. If you are not satisfied with our response, you have the right to file a complaint with the Office of the Information and Privacy Commissioner for British Columbia (OIPC BC) at www.oipc.bc.ca.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-ADM",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "BC PIPA, s. 6, 11 (OIPC Guidance)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations using automated decision-making systems should be transparent about their use, consistent with consent and purpose limitation requirements.",
			DisclaimerLanguage: "We use automated decision-making systems in the processing of your personal information. In accordance with BC PIPA transparency and consent requirements, we disclose the use of these systems and will provide meaningful information about the logic involved upon request.",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "BC-PIPA-COOKIES",
			Jurisdiction:       domain.JurisdictionBCPIPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "BC PIPA, s. 6-8 (OIPC Guidance on Online Tracking)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations must inform individuals of the use of cookies and tracking technologies and obtain consent where required.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies to collect information about your interactions with our services. In accordance with BC PIPA consent requirements, we obtain your consent before deploying non-essential cookies.",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	return reqs
}
