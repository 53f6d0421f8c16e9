package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// californiaSensitiveCategories is shared by the CCPA and CPRA mappers.
var californiaSensitiveCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategoryFinancial,
	domain.CategorySensitivePersonal,
	domain.CategoryGeolocation,
}

type ccpaModule struct{ staticInfo }

// NewCCPA returns the requirement mapper for the California Consumer
// Privacy Act.
func NewCCPA() domain.RegulationModule {
	return ccpaModule{staticInfo{
		id:            domain.JurisdictionCCPA,
		fullName:      "California Consumer Privacy Act",
		shortName:     "CCPA",
		effectiveDate: "2020-01-01",
		sourceURL:     "https://leginfo.legislature.ca.gov/faces/codes_displayText.xhtml?division=3.&part=4.&lawCode=CIV&title=1.81.5",
	}}
}

func (m ccpaModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-100",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "Cal. Civ. Code §1798.100",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business that collects a consumer's personal information shall, at or before the point of collection, inform consumers as to the categories of personal information to be collected and the purposes for which the categories of personal information shall be used.",
		DisclaimerLanguage: fmt.Sprintf("%s discloses the categories of personal information collected and the purposes for which such information is used, in accordance with the California Consumer Privacy Act (Cal. Civ. Code §1798.100).", org.LegalName),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-100-PURPOSES",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "Cal. Civ. Code §1798.100(b)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business shall not collect additional categories of personal information or use personal information collected for additional purposes without providing the consumer with notice consistent with this section.",
		DisclaimerLanguage: "We do not collect additional categories of personal information or use collected information for additional purposes beyond those disclosed below, without first providing you with notice (Cal. Civ. Code §1798.100(b)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("CCPA-100-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "Cal. Civ. Code §1798.100(b)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-100-ACCESS",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "Cal. Civ. Code §1798.100(a), §1798.110",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to request that a business that collects personal information about the consumer disclose the categories and specific pieces of personal information the business has collected.",
		DisclaimerLanguage: "You have the right to request that we disclose the categories and specific pieces of personal information we have collected about you, the categories of sources, the business or commercial purpose for collecting, and the categories of third parties with whom we share the information. We will respond within 45 days of receiving a verifiable consumer request (Cal. Civ. Code §1798.100, §1798.110).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-105",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightDeletion,
		StatutoryReference: "Cal. Civ. Code §1798.105",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to request that a business delete any personal information about the consumer which the business has collected from the consumer.",
		DisclaimerLanguage: "You have the right to request deletion of your personal information that we have collected, subject to certain exceptions set forth in the CCPA (Cal. Civ. Code §1798.105). Upon receiving a verifiable consumer request, we will delete the information and direct our service providers to delete the information.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-120",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightOptOutSale,
		StatutoryReference: "Cal. Civ. Code §1798.120",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right, at any time, to direct a business that sells personal information about the consumer to third parties not to sell the consumer's personal information.",
		DisclaimerLanguage: "You have the right to opt out of the sale of your personal information to third parties. You may exercise this right at any time (Cal. Civ. Code §1798.120).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.SellsData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CCPA-120-LINK",
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicDataSubjectRights,
			Subtopic:           domain.SubtopicDoNotSellLink,
			StatutoryReference: "Cal. Civ. Code §1798.135(a)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business that sells consumers' personal information shall provide a clear and conspicuous link on its website titled \"Do Not Sell My Personal Information.\"",
			DisclaimerLanguage: "We sell certain categories of personal information as defined by the CCPA. You may opt out of the sale of your personal information by using the \"Do Not Sell My Personal Information\" link available on our website (Cal. Civ. Code §1798.135(a)).",
			ConditionalOn:      []string{"thirdPartySharing.sellsData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-125",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicNonDiscrimination,
		StatutoryReference: "Cal. Civ. Code §1798.125",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A business shall not discriminate against a consumer because the consumer exercised any of the consumer's rights under this title.",
		DisclaimerLanguage: "We will not discriminate against you for exercising any of your rights under the CCPA. We will not deny you goods or services, charge you a different price, or provide a different quality of goods or services because you exercised your rights (Cal. Civ. Code §1798.125).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CCPA-115",
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "Cal. Civ. Code §1798.115",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business shall disclose the categories of personal information that the business sold or disclosed for a business purpose in the preceding 12 months.",
			DisclaimerLanguage: fmt.Sprintf("%s discloses the categories of personal information sold or disclosed for a business purpose in the preceding 12 months, as required by Cal. Civ. Code §1798.115.", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-VERIFICATION",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicRequestVerification,
		StatutoryReference: "Cal. Civ. Code §1798.100(c)",
		ObligationType:     domain.ObligationProcess,
		RequirementText:    "A business shall verify the identity of the consumer making a request and the consumer's right to access the information.",
		DisclaimerLanguage: "To protect your privacy, we will verify your identity before responding to requests to know, delete, or exercise other rights. You may be required to provide sufficient information for us to reasonably verify that you are the person about whom we collected personal information (Cal. Civ. Code §1798.100(c)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CCPA-CHILDREN",
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "Cal. Civ. Code §1798.120(c)-(d)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business shall not sell the personal information of consumers if the business has actual knowledge that the consumer is less than 16 years of age, unless the consumer has affirmatively authorized the sale. For consumers under 13, a parent or guardian must opt in.",
			DisclaimerLanguage: "We do not sell the personal information of consumers under 16 without affirmative authorization. For consumers under 13, we require opt-in consent from a parent or guardian (Cal. Civ. Code §1798.120(c)-(d)).",
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-COLLECTION",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "Cal. Civ. Code §1798.100(b)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business shall not collect personal information for additional purposes beyond those disclosed at or before collection.",
		DisclaimerLanguage: "We limit the collection of personal information to that which is disclosed in this policy and do not collect additional categories without providing notice (Cal. Civ. Code §1798.100(b)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-RETENTION",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "Cal. Civ. Code §1798.100(a)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business must disclose the length of time it intends to retain each category of personal information, or if that is not possible, the criteria used to determine such period.",
		DisclaimerLanguage: "We retain personal information for no longer than is reasonably necessary for the disclosed purposes. The retention periods for each category of personal information are set out below (Cal. Civ. Code §1798.100(a)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("CCPA-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "Cal. Civ. Code §1798.100(a)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-SAFEGUARDS",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "Cal. Civ. Code §1798.150 (implied duty)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business shall implement and maintain reasonable security procedures and practices appropriate to the nature of the personal information.",
		DisclaimerLanguage: "We implement and maintain reasonable security procedures and practices appropriate to the nature of the personal information we collect, to protect it from unauthorized access, destruction, use, modification, or disclosure (Cal. Civ. Code §1798.150).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-BREACH",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "Cal. Civ. Code §1798.150",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A consumer whose nonencrypted and nonredacted personal information is subject to an unauthorized access and exfiltration, theft, or disclosure as a result of the business's violation of the duty to implement and maintain reasonable security procedures and practices may institute a civil action.",
		DisclaimerLanguage: "In the event of a data breach resulting from our failure to maintain reasonable security practices, affected consumers may have the right to seek statutory damages under the CCPA (Cal. Civ. Code §1798.150).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CCPA-COOKIES",
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "Cal. Civ. Code §1798.100, §1798.140(e)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "The use of cookies and similar tracking technologies that collect personal information must be disclosed, including the categories of information collected and purposes.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies that may collect personal information as defined by the CCPA. We disclose the categories of personal information collected through these technologies and the purposes for their use (Cal. Civ. Code §1798.100, §1798.140(e)).",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CCPA-ADM",
			Jurisdiction:       domain.JurisdictionCCPA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "Cal. Civ. Code §1798.140 (CCPA/AG Regulations)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Businesses should disclose the use of automated decision-making and profiling technologies in their privacy policies.",
			DisclaimerLanguage: "We use automated decision-making and profiling technologies in the processing of personal information. We disclose the use of these technologies in accordance with CCPA requirements.",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CCPA-ENFORCEMENT",
		Jurisdiction:       domain.JurisdictionCCPA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "Cal. Civ. Code §1798.155-§1798.199",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The CCPA is enforced by the California Attorney General. Consumers have a limited private right of action for data breaches.",
		DisclaimerLanguage: fmt.Sprintf("You may contact our %s at %s regarding any concerns about our CCPA compliance. The CCPA is enforced by the California Attorney General at oag.ca.gov.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	return reqs
}
