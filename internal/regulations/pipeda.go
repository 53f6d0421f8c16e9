package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// pipedaSensitiveCategories are treated as sensitive under OPC guidance and
// trigger the express-consent disclosure.
var pipedaSensitiveCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategoryFinancial,
	domain.CategorySensitivePersonal,
	domain.CategoryChildrens,
}

type pipedaModule struct{ staticInfo }

// NewPIPEDA returns the requirement mapper for Canada's federal private
// sector privacy law.
func NewPIPEDA() domain.RegulationModule {
	return pipedaModule{staticInfo{
		id:            domain.JurisdictionPIPEDA,
		fullName:      "Personal Information Protection and Electronic Documents Act",
		shortName:     "PIPEDA",
		effectiveDate: "2000-01-01",
		sourceURL:     "https://laws-lois.justice.gc.ca/eng/acts/P-8.6/",
	}}
}

func (m pipedaModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.1",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.1",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization is responsible for personal information under its control and shall designate an individual or individuals who are accountable for the organization's compliance.",
		DisclaimerLanguage: fmt.Sprintf("%s is responsible for personal information under its control. Our %s, %s, is accountable for our compliance with PIPEDA and can be reached at %s.", org.LegalName, org.DpoContact.Title, org.DpoContact.Name, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares || dp.CrossBorderTransfers.Transfers {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-P4.1.3",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "PIPEDA Schedule 1, Principle 4.1.3",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "An organization is responsible for personal information that has been transferred to a third party for processing. The organization shall use contractual or other means to provide a comparable level of protection while the information is being processed by a third party.",
			DisclaimerLanguage: fmt.Sprintf("When we transfer your personal information to third parties for processing, %s remains accountable for its protection. We use contractual agreements to ensure that third-party service providers afford a comparable level of protection to the personal information in their custody (PIPEDA Principle 4.1.3).", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares", "crossBorderTransfers.transfers"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.2",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.2",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The purposes for which personal information is collected shall be identified by the organization at or before the time the information is collected.",
		DisclaimerLanguage: "We identify the purposes for which we collect your personal information at or before the time of collection, as required by PIPEDA Principle 4.2. The purposes for which we collect personal information are set out below.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("PIPEDA-P4.2-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "PIPEDA Schedule 1, Principle 4.2.1",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.3",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicConsent,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.3",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The knowledge and consent of the individual are required for the collection, use, or disclosure of personal information, except where inappropriate.",
		DisclaimerLanguage: "We obtain your knowledge and consent for the collection, use, or disclosure of your personal information, except where exempted by law (PIPEDA Principle 4.3).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.HasAnyCategory(pipedaSensitiveCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-P4.3-SENSITIVE",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicExpressConsentSensitive,
			StatutoryReference: "PIPEDA Schedule 1, Principle 4.3.4",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Express consent shall be obtained when the information is likely to be considered sensitive.",
			DisclaimerLanguage: "Where we collect sensitive personal information — including health information, biometric data, or financial information — we obtain your express consent, as required by PIPEDA Principle 4.3.4. Sensitive personal information requires a higher degree of protection, and we apply additional safeguards to this category of data.",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-P4.3-CHILDREN",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "PIPEDA Schedule 1, Principle 4.3 (OPC Guidelines for obtaining meaningful consent)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations must consider the capacity of individuals to provide meaningful consent. For children, consent of a parent or guardian may be required.",
			DisclaimerLanguage: fmt.Sprintf("Where we collect personal information from individuals under the age of %d, we obtain verifiable consent from a parent or guardian, in accordance with OPC guidelines for obtaining meaningful consent from minors.", ageThreshold(dp, 13)),
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.4",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.4",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The collection of personal information shall be limited to that which is necessary for the purposes identified by the organization.",
		DisclaimerLanguage: "We limit the collection of personal information to that which is necessary for the purposes we have identified (PIPEDA Principle 4.4). We collect personal information by fair and lawful means.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.5",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.5",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal information shall not be used or disclosed for purposes other than those for which it was collected, except with the consent of the individual or as required by law. Personal information shall be retained only as long as necessary for the fulfillment of those purposes.",
		DisclaimerLanguage: "We do not use or disclose your personal information for purposes other than those for which it was collected, except with your consent or as permitted or required by law. We retain personal information only for as long as necessary to fulfill the purposes for which it was collected (PIPEDA Principle 4.5).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("PIPEDA-P4.5-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "PIPEDA Schedule 1, Principle 4.5.2",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.6",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicAccuracy,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.6",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal information shall be as accurate, complete, and up-to-date as is necessary for the purposes for which it is to be used.",
		DisclaimerLanguage: "We take reasonable steps to ensure that personal information in our custody is accurate, complete, and up-to-date as is necessary for the purposes for which it is used (PIPEDA Principle 4.6).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.7",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.7",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal information shall be protected by security safeguards appropriate to the sensitivity of the information.",
		DisclaimerLanguage: "We protect your personal information with security safeguards appropriate to the sensitivity of the information, including physical, organizational, and technological measures (PIPEDA Principle 4.7). The nature of the safeguards varies depending on the sensitivity of the information, the amount, distribution, format of the information, and the method of storage.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.8",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicOpenness,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.8",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An organization shall make readily available to individuals specific information about its policies and practices relating to the management of personal information.",
		DisclaimerLanguage: "This privacy policy describes our policies and practices for the management of personal information. This policy is readily available to individuals upon request and is published on our website (PIPEDA Principle 4.8).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.9",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.9",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "Upon request, an individual shall be informed of the existence, use, and disclosure of his or her personal information and shall be given access to that information.",
		DisclaimerLanguage: "You have the right to request access to your personal information held by us. Upon receipt of a written request and sufficient identification, we will inform you of the existence, use, and disclosure of your personal information and provide you with access to that information within 30 days (PIPEDA Principle 4.9).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.9.5",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.9.5",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "An individual shall be able to challenge the accuracy and completeness of the information and have it amended as appropriate.",
		DisclaimerLanguage: "You have the right to challenge the accuracy and completeness of your personal information and to have it amended as appropriate. If we disagree with your challenge, we will record the substance of your challenge and, where appropriate, transmit the existence of the unresolved challenge to third parties with access to the information (PIPEDA Principle 4.9.5).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-P4.10",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "PIPEDA Schedule 1, Principle 4.10",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "An individual shall be able to address a challenge concerning compliance with the above principles to the designated individual or individuals accountable for the organization's compliance.",
		DisclaimerLanguage: fmt.Sprintf("You may challenge our compliance with PIPEDA by contacting our %s at %s. If you are not satisfied with our response, you have the right to file a complaint with the Office of the Privacy Commissioner of Canada (OPC) at www.priv.gc.ca.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.CrossBorderTransfers.Transfers && len(dp.CrossBorderTransfers.Destinations) > 0 {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-CROSS-BORDER",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicCrossBorderTransfers,
			StatutoryReference: "PIPEDA Principle 4.1.3; OPC Guidelines for Processing Personal Data Across Borders",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations transferring personal information to another jurisdiction for processing must ensure that comparable protection is provided. Individuals must be notified that their information may be transferred and may be accessible to law enforcement and national security authorities of that jurisdiction.",
			DisclaimerLanguage: fmt.Sprintf("Your personal information may be transferred to, stored, and processed in jurisdictions outside of Canada, including %s. When we transfer personal information outside of Canada, we ensure that the information is protected by contractual obligations requiring the recipient to provide a comparable level of protection. Please be aware that personal information transferred outside of Canada may be accessible to law enforcement and national security authorities in those jurisdictions under their laws.", destinationCountries(dp)),
			ConditionalOn:      []string{"crossBorderTransfers.transfers"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "PIPEDA-S10.1",
		Jurisdiction:       domain.JurisdictionPIPEDA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "PIPEDA s. 10.1",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Organizations must report breaches of security safeguards involving personal information that pose a real risk of significant harm to the OPC and affected individuals.",
		DisclaimerLanguage: "In the event of a breach of security safeguards involving your personal information that poses a real risk of significant harm, we will notify the Office of the Privacy Commissioner of Canada and you as soon as feasible, in accordance with PIPEDA s. 10.1. We will also notify any other organization or government institution that may be able to reduce the risk of harm.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-ADM",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "PIPEDA Principles 4.2, 4.3, 4.8 (OPC Guidelines on Automated Decision-Making)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations using automated decision-making systems should be transparent about their use and provide meaningful explanations of how decisions are made.",
			DisclaimerLanguage: "We use automated decision-making systems in the processing of your personal information. In accordance with PIPEDA principles of openness and transparency, we disclose the use of these systems and will provide meaningful information about the logic involved upon request.",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "PIPEDA-COOKIES",
			Jurisdiction:       domain.JurisdictionPIPEDA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "PIPEDA Principles 4.2, 4.3 (OPC Position on Online Tracking)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Organizations must inform individuals of the use of cookies and tracking technologies and obtain meaningful consent.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies to collect information about your interactions with our services. In accordance with PIPEDA consent requirements, we obtain your meaningful consent before deploying non-essential cookies and provide you with information about the types of cookies used and their purposes.",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	return reqs
}
