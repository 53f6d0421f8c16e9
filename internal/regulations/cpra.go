package regulations

import (
	"fmt"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

type cpraModule struct{ staticInfo }

// NewCPRA returns the requirement mapper for the California Privacy
// Rights Act, which amends and extends the CCPA.
func NewCPRA() domain.RegulationModule {
	return cpraModule{staticInfo{
		id:            domain.JurisdictionCPRA,
		fullName:      "California Privacy Rights Act",
		shortName:     "CPRA",
		effectiveDate: "2023-01-01",
		sourceURL:     "https://leginfo.legislature.ca.gov/faces/codes_displayText.xhtml?division=3.&part=4.&lawCode=CIV&title=1.81.5",
	}}
}

func (m cpraModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-100",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "Cal. Civ. Code §1798.100 (as amended by CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business that controls the collection of a consumer's personal information shall, at or before the point of collection, inform consumers as to the categories of personal information to be collected, the purposes, and the length of time the business intends to retain each category.",
		DisclaimerLanguage: fmt.Sprintf("%s discloses the categories of personal information collected, the purposes for which such information is used, and the retention periods, in accordance with the California Privacy Rights Act (Cal. Civ. Code §1798.100, as amended by CPRA).", org.LegalName),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-100C",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "Cal. Civ. Code §1798.100(c) (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business's collection, use, retention, and sharing of a consumer's personal information shall be reasonably necessary and proportionate to achieve the purposes for which the personal information was collected or processed.",
		DisclaimerLanguage: "Our collection, use, retention, and sharing of your personal information is reasonably necessary and proportionate to achieve the disclosed purposes. We do not collect or process personal information in a manner incompatible with those purposes (Cal. Civ. Code §1798.100(c)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-100D",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "Cal. Civ. Code §1798.100(d) (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business shall not retain a consumer's personal information for longer than is reasonably necessary for each disclosed purpose.",
		DisclaimerLanguage: "We do not retain your personal information for longer than is reasonably necessary for each disclosed purpose. Our retention periods are set forth below (Cal. Civ. Code §1798.100(d)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("CPRA-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "Cal. Civ. Code §1798.100(d)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-PURPOSES",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "Cal. Civ. Code §1798.100(a)-(b) (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business must disclose the purposes for which categories of personal information are collected and the length of retention.",
		DisclaimerLanguage: "We disclose the purposes for which we collect each category of personal information and the length of retention, as required by the CPRA (Cal. Civ. Code §1798.100(a)-(b)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("CPRA-PURPOSE-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: "Cal. Civ. Code §1798.100(a)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Purpose identified: %s. %s", entry.Purpose, entry.Description),
			DisclaimerLanguage: purposeDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-ACCESS",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "Cal. Civ. Code §1798.100(a), §1798.110 (CPRA)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to request that a business disclose the categories and specific pieces of personal information it has collected.",
		DisclaimerLanguage: "You have the right to request that we disclose the categories and specific pieces of personal information we have collected about you, including the categories of sources, purposes, and third parties. We will respond within 45 days (Cal. Civ. Code §1798.100, §1798.110).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-105",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightDeletion,
		StatutoryReference: "Cal. Civ. Code §1798.105 (CPRA)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to request that a business delete any personal information about the consumer.",
		DisclaimerLanguage: "You have the right to request deletion of your personal information, subject to certain exceptions. Upon a verifiable request, we and our service providers and contractors will delete the information (Cal. Civ. Code §1798.105).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-106",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "Cal. Civ. Code §1798.106 (CPRA)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to request a business that maintains inaccurate personal information about the consumer to correct that inaccurate personal information.",
		DisclaimerLanguage: "You have the right to request correction of inaccurate personal information that we maintain about you. We will use commercially reasonable efforts to correct the information as directed (Cal. Civ. Code §1798.106).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-120",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightOptOutSale,
		StatutoryReference: "Cal. Civ. Code §1798.120 (CPRA)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A consumer shall have the right to direct a business that sells or shares personal information not to sell or share the consumer's personal information.",
		DisclaimerLanguage: "You have the right to opt out of the sale or sharing of your personal information (Cal. Civ. Code §1798.120).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.SharesForCrossBehavioral {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-120-BEHAVIORAL",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicDataSubjectRights,
			Subtopic:           domain.SubtopicOptOutBehavioralAds,
			StatutoryReference: "Cal. Civ. Code §1798.120, §1798.140(ah) (CPRA)",
			ObligationType:     domain.ObligationRight,
			RequirementText:    "The CPRA expands the opt-out right to include the sharing of personal information for cross-context behavioral advertising.",
			DisclaimerLanguage: "We share personal information for cross-context behavioral advertising as defined by the CPRA. You have the right to opt out of this sharing. Use the \"Do Not Sell or Share My Personal Information\" link on our website (Cal. Civ. Code §1798.120, §1798.140(ah)).",
			ConditionalOn:      []string{"thirdPartySharing.sharesForCrossBehavioral"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.ThirdPartySharing.SellsData || dp.ThirdPartySharing.SharesForCrossBehavioral {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-135-LINK",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicDataSubjectRights,
			Subtopic:           domain.SubtopicDoNotSellOrShareLink,
			StatutoryReference: "Cal. Civ. Code §1798.135(a) (CPRA)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business that sells or shares personal information shall provide a clear and conspicuous link on its website titled \"Do Not Sell or Share My Personal Information.\"",
			DisclaimerLanguage: "We provide a \"Do Not Sell or Share My Personal Information\" link on our website through which you may exercise your opt-out rights (Cal. Civ. Code §1798.135(a)).",
			ConditionalOn:      []string{"thirdPartySharing.sellsData", "thirdPartySharing.sharesForCrossBehavioral"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.HasAnyCategory(californiaSensitiveCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-121",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicDataSubjectRights,
			Subtopic:           domain.SubtopicRightLimitSensitiveUse,
			StatutoryReference: "Cal. Civ. Code §1798.121 (CPRA)",
			ObligationType:     domain.ObligationRight,
			RequirementText:    "A consumer shall have the right to direct a business that collects sensitive personal information to limit its use to that which is necessary to perform the services or provide the goods reasonably expected.",
			DisclaimerLanguage: "You have the right to limit our use of your sensitive personal information to that which is necessary to perform the services or provide the goods you expect. We provide a \"Limit the Use of My Sensitive Personal Information\" link on our website (Cal. Civ. Code §1798.121).",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-125",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicNonDiscrimination,
		StatutoryReference: "Cal. Civ. Code §1798.125 (CPRA)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "A business shall not discriminate against a consumer for exercising any of their rights under the CPRA.",
		DisclaimerLanguage: "We will not discriminate against you for exercising any of your rights under the CPRA, including by denying goods or services, charging different prices, or providing a different quality (Cal. Civ. Code §1798.125).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ThirdPartySharing.Shares {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-THIRD-PARTY",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "Cal. Civ. Code §1798.100(d), §1798.140(ag) (CPRA)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business must contractually obligate service providers and contractors to comply with the CPRA and limit the use of personal information to the purposes specified in the contract.",
			DisclaimerLanguage: fmt.Sprintf("%s contractually obligates service providers and contractors to comply with the CPRA and to limit their use of personal information to the purposes specified in our agreements (Cal. Civ. Code §1798.100(d), §1798.140(ag)).", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.ConductsDPIA {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-RISK-ASSESSMENT",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicDPIA,
			StatutoryReference: "Cal. Civ. Code §1798.185(a)(15) (CPRA)",
			ObligationType:     domain.ObligationProcess,
			RequirementText:    "The CPRA directs the California Privacy Protection Agency to issue regulations requiring businesses whose processing presents significant risk to consumer privacy to perform cybersecurity audits and risk assessments.",
			DisclaimerLanguage: "We conduct regular risk assessments of our processing activities that present significant risk to consumer privacy, in accordance with CPRA requirements (Cal. Civ. Code §1798.185(a)(15)).",
			ConditionalOn:      []string{"conductsDPIA"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-ADM",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "Cal. Civ. Code §1798.185(a)(16) (CPRA)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "The CPRA directs the CPPA to issue regulations governing access and opt-out rights related to businesses' use of automated decisionmaking technology, including profiling.",
			DisclaimerLanguage: "We use automated decision-making technology, including profiling. You may have the right to opt out of such processing and to request information about the logic involved, in accordance with CPRA regulations (Cal. Civ. Code §1798.185(a)(16)).",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-SAFEGUARDS",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "Cal. Civ. Code §1798.100(e) (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "A business shall implement reasonable security procedures and practices appropriate to the nature of the personal information.",
		DisclaimerLanguage: "We implement reasonable security procedures and practices appropriate to the nature of the personal information we collect (Cal. Civ. Code §1798.100(e)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-BREACH",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "Cal. Civ. Code §1798.150 (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Consumers have a private right of action for data breaches involving certain personal information categories resulting from a business's failure to maintain reasonable security.",
		DisclaimerLanguage: "In the event of a data breach resulting from our failure to maintain reasonable security practices, affected consumers may seek statutory damages under the CPRA (Cal. Civ. Code §1798.150).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-CHILDREN",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "Cal. Civ. Code §1798.120(c)-(d) (CPRA)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "A business shall not sell or share the personal information of consumers under 16 without affirmative authorization. For consumers under 13, parental consent is required.",
			DisclaimerLanguage: "We do not sell or share the personal information of consumers under 16 without affirmative authorization. For consumers under 13, we require opt-in consent from a parent or guardian (Cal. Civ. Code §1798.120(c)-(d)).",
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "CPRA-COOKIES",
			Jurisdiction:       domain.JurisdictionCPRA,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "Cal. Civ. Code §1798.100, §1798.140(e) (CPRA)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "The use of cookies and tracking technologies that collect personal information must be disclosed, and sharing of such data for cross-context behavioral advertising triggers opt-out rights.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies. Where such technologies are used for cross-context behavioral advertising, you have the right to opt out under the CPRA (Cal. Civ. Code §1798.100, §1798.140(e)).",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "CPRA-ENFORCEMENT",
		Jurisdiction:       domain.JurisdictionCPRA,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "Cal. Civ. Code §1798.199.10-§1798.199.100 (CPRA)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The CPRA established the California Privacy Protection Agency (CPPA) to implement and enforce the CPRA.",
		DisclaimerLanguage: fmt.Sprintf("You may contact our %s at %s regarding any concerns about our CPRA compliance. The CPRA is enforced by the California Privacy Protection Agency (CPPA) at cppa.ca.gov.", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	return reqs
}
