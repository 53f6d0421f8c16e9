package regulations

import (
	"fmt"
	"strings"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// gdprSpecialCategories are the Art. 9 special categories representable in
// the input vocabulary.
var gdprSpecialCategories = []domain.DataCategory{
	domain.CategoryHealth,
	domain.CategoryBiometric,
	domain.CategorySensitivePersonal,
}

var gdprLegalBasisArticles = map[domain.LegalBasis]string{
	domain.BasisConsent:            "Art. 6(1)(a)",
	domain.BasisContract:           "Art. 6(1)(b)",
	domain.BasisLegalObligation:    "Art. 6(1)(c)",
	domain.BasisVitalInterests:     "Art. 6(1)(d)",
	domain.BasisPublicInterest:     "Art. 6(1)(e)",
	domain.BasisLegitimateInterest: "Art. 6(1)(f)",
}

var gdprTransferMechanismLabels = map[domain.TransferMechanism]string{
	domain.MechanismAdequacyDecision:     "an adequacy decision (Art. 45)",
	domain.MechanismSCCs:                 "Standard Contractual Clauses (Art. 46(2)(c))",
	domain.MechanismBCRs:                 "Binding Corporate Rules (Art. 47)",
	domain.MechanismExplicitConsent:      "the explicit consent of the data subject (Art. 49(1)(a))",
	domain.MechanismContractualNecessity: "contractual necessity (Art. 49(1)(b)-(c))",
	domain.MechanismComparableProtection: "appropriate safeguards (Art. 46)",
}

type gdprModule struct{ staticInfo }

// NewGDPR returns the requirement mapper for the EU General Data
// Protection Regulation.
func NewGDPR() domain.RegulationModule {
	return gdprModule{staticInfo{
		id:            domain.JurisdictionGDPR,
		fullName:      "General Data Protection Regulation",
		shortName:     "GDPR",
		effectiveDate: "2018-05-25",
		sourceURL:     "https://eur-lex.europa.eu/eli/reg/2016/679/oj",
	}}
}

func (m gdprModule) MapRequirements(input domain.ValidatedInput) []domain.MappedRequirement {
	var reqs []domain.MappedRequirement
	dp := input.DataPractices
	org := input.OrgProfile

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART5",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicAccountability,
		StatutoryReference: "GDPR Art. 5",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal data shall be processed lawfully, fairly, and in a transparent manner in relation to the data subject. The controller shall be responsible for, and be able to demonstrate compliance with, these principles.",
		DisclaimerLanguage: fmt.Sprintf("%s processes personal data in accordance with the principles set forth in Article 5 of the GDPR: lawfulness, fairness, and transparency; purpose limitation; data minimisation; accuracy; storage limitation; integrity and confidentiality; and accountability.", org.LegalName),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART6",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicConsent,
		StatutoryReference: "GDPR Art. 6",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Processing shall be lawful only if and to the extent that at least one of the six legal bases under Article 6(1) applies.",
		DisclaimerLanguage: "We process your personal data on the basis of one or more lawful grounds set forth in GDPR Art. 6. The legal basis for each processing purpose is identified below.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.ProcessingPurposes {
		artRef, ok := gdprLegalBasisArticles[entry.LegalBasis]
		if !ok {
			artRef = "Art. 6(1)"
		}
		description := entry.Description
		if description == "" {
			description = "To support " + humanize(entry.Purpose)
		}
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("GDPR-ART6-%s", entry.Purpose),
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicPurposeSpecification,
			StatutoryReference: fmt.Sprintf("GDPR %s", artRef),
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Processing purpose: %s. Legal basis: %s (%s). %s", entry.Purpose, entry.LegalBasis, artRef, entry.Description),
			DisclaimerLanguage: fmt.Sprintf("%s — legal basis: %s (GDPR %s).", description, humanize(entry.LegalBasis), artRef),
			ConditionalOn:      []string{fmt.Sprintf("processingPurposes.%s", entry.Purpose)},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART13",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicEnterpriseRequirements,
		Subtopic:           domain.SubtopicIdentifyingPurposes,
		StatutoryReference: "GDPR Art. 13-14",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Where personal data are collected from the data subject, the controller shall provide specified information at the time when personal data are obtained.",
		DisclaimerLanguage: "This privacy policy provides you with the information required under GDPR Art. 13-14, including the identity and contact details of the controller, the purposes of processing, the legal basis, the recipients, and your rights as a data subject.",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART5B",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingCollection,
		StatutoryReference: "GDPR Art. 5(1)(b)-(c)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal data shall be collected for specified, explicit and legitimate purposes and not further processed in a manner incompatible with those purposes. Personal data shall be adequate, relevant, and limited to what is necessary.",
		DisclaimerLanguage: "We collect personal data only for specified, explicit, and legitimate purposes and do not process it in a manner incompatible with those purposes. We ensure that personal data collected is adequate, relevant, and limited to what is necessary (GDPR Art. 5(1)(b)-(c)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART5E",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataManagement,
		Subtopic:           domain.SubtopicLimitingUseRetention,
		StatutoryReference: "GDPR Art. 5(1)(e)",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Personal data shall be kept in a form which permits identification of data subjects for no longer than is necessary for the purposes for which the personal data are processed.",
		DisclaimerLanguage: "We retain personal data only for as long as necessary for the purposes for which it was collected. When personal data is no longer required, we securely delete or anonymize it (GDPR Art. 5(1)(e)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	for _, entry := range dp.RetentionSchedule {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 fmt.Sprintf("GDPR-RET-%s", entry.DataCategory),
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicRetentionPeriod,
			StatutoryReference: "GDPR Art. 5(1)(e), Art. 13(2)(a)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    fmt.Sprintf("Retention period for %s: %s", entry.DataCategory, entry.Period),
			DisclaimerLanguage: retentionDisclaimer(entry),
			ConditionalOn:      []string{fmt.Sprintf("retentionSchedule.%s", entry.DataCategory)},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.HasAnyCategory(gdprSpecialCategories...) {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART9",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicExpressConsentSensitive,
			StatutoryReference: "GDPR Art. 9",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Processing of special categories of personal data (revealing racial or ethnic origin, political opinions, religious beliefs, health data, biometric data, data concerning sex life or sexual orientation) is prohibited unless one of the conditions in Art. 9(2) applies.",
			DisclaimerLanguage: "We process special categories of personal data only where one of the conditions under GDPR Art. 9(2) is met, such as explicit consent, employment law obligations, or reasons of substantial public interest. Where we rely on explicit consent, you may withdraw that consent at any time.",
			ConditionalOn:      []string{"dataCategories.sensitive"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CollectsChildrensData {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART8",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicDataManagement,
			Subtopic:           domain.SubtopicConsentForChildren,
			StatutoryReference: "GDPR Art. 8",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where consent is the legal basis and information society services are offered directly to a child, consent is lawful only if the child is at least 16 years old. Where the child is below 16, consent must be given or authorized by the holder of parental responsibility.",
			DisclaimerLanguage: fmt.Sprintf("Where we offer information society services directly to children and rely on consent as the legal basis, we require that the child is at least %d years of age. For children below this threshold, consent must be given or authorized by the holder of parental responsibility (GDPR Art. 8).", ageThreshold(dp, 16)),
			ConditionalOn:      []string{"collectsChildrensData"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART15",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicIndividualAccess,
		StatutoryReference: "GDPR Art. 15",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to obtain from the controller confirmation as to whether or not personal data concerning him or her are being processed, and, where that is the case, access to the personal data.",
		DisclaimerLanguage: "You have the right to obtain confirmation as to whether we process personal data concerning you, and to access that data along with information about the purposes, categories, recipients, retention periods, and your rights. We will respond within one month (GDPR Art. 15).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART16",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightChallengeAccuracy,
		StatutoryReference: "GDPR Art. 16",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to obtain from the controller without undue delay the rectification of inaccurate personal data concerning him or her.",
		DisclaimerLanguage: "You have the right to obtain the rectification of inaccurate personal data concerning you without undue delay, and to have incomplete personal data completed (GDPR Art. 16).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART17",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightErasure,
		StatutoryReference: "GDPR Art. 17",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to obtain from the controller the erasure of personal data concerning him or her without undue delay where one of the specified grounds applies.",
		DisclaimerLanguage: "You have the right to obtain the erasure of your personal data without undue delay where the data is no longer necessary, you withdraw consent, you object to the processing, or the data has been unlawfully processed, among other grounds (GDPR Art. 17).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART18",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightRestrictProcessing,
		StatutoryReference: "GDPR Art. 18",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to obtain from the controller restriction of processing where one of the specified conditions applies.",
		DisclaimerLanguage: "You have the right to restrict the processing of your personal data where you contest the accuracy, the processing is unlawful, we no longer need the data, or you have objected to the processing pending verification (GDPR Art. 18).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART20",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightDataPortability,
		StatutoryReference: "GDPR Art. 20",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to receive the personal data concerning him or her in a structured, commonly used and machine-readable format and have the right to transmit those data to another controller.",
		DisclaimerLanguage: "You have the right to receive your personal data in a structured, commonly used, and machine-readable format, and to transmit it to another controller where technically feasible. This right applies where the processing is based on consent or contract and is carried out by automated means (GDPR Art. 20).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART21",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightObject,
		StatutoryReference: "GDPR Art. 21",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to object, on grounds relating to his or her particular situation, at any time to processing of personal data which is based on Art. 6(1)(e) or (f).",
		DisclaimerLanguage: "You have the right to object to the processing of your personal data on grounds relating to your particular situation, where the processing is based on public interest or legitimate interests. Where you object to processing for direct marketing purposes, we will cease processing for such purposes immediately (GDPR Art. 21).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.UsesAutomatedDecisionMaking {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART22",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicAutomatedDecisionMaking,
			StatutoryReference: "GDPR Art. 22",
			ObligationType:     domain.ObligationRight,
			RequirementText:    "The data subject shall have the right not to be subject to a decision based solely on automated processing, including profiling, which produces legal effects concerning him or her or similarly significantly affects him or her.",
			DisclaimerLanguage: "You have the right not to be subject to a decision based solely on automated processing, including profiling, which produces legal effects or similarly significantly affects you. Where we use automated decision-making, we implement suitable measures to safeguard your rights, including the right to obtain human intervention, express your point of view, and contest the decision (GDPR Art. 22).",
			ConditionalOn:      []string{"usesAutomatedDecisionMaking"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART32",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicSafeguards,
		StatutoryReference: "GDPR Art. 32",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The controller and the processor shall implement appropriate technical and organisational measures to ensure a level of security appropriate to the risk.",
		DisclaimerLanguage: "We implement appropriate technical and organisational measures to ensure a level of security appropriate to the risk, including pseudonymisation and encryption, the ability to ensure ongoing confidentiality, integrity, availability, and resilience of processing systems, and regular testing and evaluation of the effectiveness of these measures (GDPR Art. 32).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART33",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicBreachNotification,
		StatutoryReference: "GDPR Art. 33-34",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "In the case of a personal data breach, the controller shall without undue delay and, where feasible, not later than 72 hours after having become aware of it, notify the personal data breach to the supervisory authority. Where the breach is likely to result in a high risk to the rights and freedoms of natural persons, the controller shall communicate the breach to the data subject without undue delay.",
		DisclaimerLanguage: "In the event of a personal data breach, we will notify the relevant supervisory authority without undue delay and, where feasible, within 72 hours of becoming aware of the breach (GDPR Art. 33). Where the breach is likely to result in a high risk to your rights and freedoms, we will communicate the breach to you without undue delay (GDPR Art. 34).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	dpoLine := fmt.Sprintf("Our %s, %s, can be contacted at %s", org.DpoContact.Title, org.DpoContact.Name, org.DpoContact.Email)
	if org.DpoContact.Address != "" {
		dpoLine += fmt.Sprintf(" or by post at %s", org.DpoContact.Address)
	}
	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART37",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataProtection,
		Subtopic:           domain.SubtopicDataProtectionOfficer,
		StatutoryReference: "GDPR Art. 37-39",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "The controller and the processor shall designate a data protection officer in any case where their core activities require regular and systematic monitoring of data subjects on a large scale, or consist of processing on a large scale of special categories of data.",
		DisclaimerLanguage: dpoLine + " (GDPR Art. 37-39).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	if dp.ConductsDPIA {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART35",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicDPIA,
			StatutoryReference: "GDPR Art. 35",
			ObligationType:     domain.ObligationProcess,
			RequirementText:    "Where a type of processing is likely to result in a high risk to the rights and freedoms of natural persons, the controller shall, prior to the processing, carry out an assessment of the impact of the envisaged processing operations on the protection of personal data.",
			DisclaimerLanguage: "We carry out Data Protection Impact Assessments (DPIAs) for processing operations that are likely to result in a high risk to the rights and freedoms of individuals, as required by GDPR Art. 35. These assessments evaluate the necessity, proportionality, and risks of the processing, and identify measures to mitigate those risks.",
			ConditionalOn:      []string{"conductsDPIA"},
			Priority:           domain.PriorityRequired,
		})
	}

	if rep := org.EuRepresentative; rep != nil {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART27",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicEURepresentative,
			StatutoryReference: "GDPR Art. 27",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where a controller or processor not established in the Union processes personal data of data subjects in the Union, a representative in the Union shall be designated.",
			DisclaimerLanguage: fmt.Sprintf("As we are not established in the European Union, we have designated an EU representative in accordance with GDPR Art. 27: %s, reachable at %s, %s.", rep.Name, rep.Email, rep.Address),
			ConditionalOn:      []string{"always"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.CrossBorderTransfers.Transfers {
		for _, dest := range dp.CrossBorderTransfers.Destinations {
			mechanismLabel, ok := gdprTransferMechanismLabels[dest.Mechanism]
			if !ok {
				mechanismLabel = "appropriate safeguards"
			}
			reqs = append(reqs, domain.MappedRequirement{
				ID:                 fmt.Sprintf("GDPR-TRANSFER-%s", strings.ReplaceAll(dest.Country, " ", "_")),
				Jurisdiction:       domain.JurisdictionGDPR,
				Topic:              domain.TopicDataManagement,
				Subtopic:           domain.SubtopicCrossBorderTransfers,
				StatutoryReference: "GDPR Art. 44-49",
				ObligationType:     domain.ObligationDisclosure,
				RequirementText:    fmt.Sprintf("Transfer to %s based on %s.", dest.Country, mechanismLabel),
				DisclaimerLanguage: fmt.Sprintf("We transfer personal data to %s on the basis of %s. We ensure that appropriate safeguards are in place to protect your personal data in accordance with GDPR Art. 44-49.", dest.Country, mechanismLabel),
				ConditionalOn:      []string{"crossBorderTransfers.transfers"},
				Priority:           domain.PriorityRequired,
			})
		}
	}

	if dp.ThirdPartySharing.Shares {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-ART28",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicThirdParty,
			Subtopic:           domain.SubtopicAccountabilityTransfers,
			StatutoryReference: "GDPR Art. 28",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "Where processing is to be carried out on behalf of a controller, the controller shall use only processors providing sufficient guarantees to implement appropriate technical and organisational measures.",
			DisclaimerLanguage: fmt.Sprintf("%s uses only data processors that provide sufficient guarantees to implement appropriate technical and organisational measures in accordance with the GDPR. We enter into data processing agreements with all processors as required by GDPR Art. 28.", org.LegalName),
			ConditionalOn:      []string{"thirdPartySharing.shares"},
			Priority:           domain.PriorityRequired,
		})
	}

	if dp.UsesCookies {
		reqs = append(reqs, domain.MappedRequirement{
			ID:                 "GDPR-COOKIES",
			Jurisdiction:       domain.JurisdictionGDPR,
			Topic:              domain.TopicEnterpriseRequirements,
			Subtopic:           domain.SubtopicCookiesTracking,
			StatutoryReference: "GDPR Art. 6-7; ePrivacy Directive Art. 5(3)",
			ObligationType:     domain.ObligationDisclosure,
			RequirementText:    "The storing of information, or the gaining of access to information already stored in the terminal equipment of a subscriber or user, is only allowed on condition that the subscriber or user concerned has given his or her consent, having been provided with clear and comprehensive information.",
			DisclaimerLanguage: "We use cookies and similar tracking technologies in accordance with the ePrivacy Directive (Art. 5(3)) and the GDPR. Non-essential cookies require your prior consent, which must be freely given, specific, informed, and unambiguous. You may withdraw your consent at any time through our cookie preference settings (GDPR Art. 7; ePrivacy Directive Art. 5(3)).",
			ConditionalOn:      []string{"usesCookies"},
			Priority:           domain.PriorityRequired,
		})
	}

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART77",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicEnforcement,
		Subtopic:           domain.SubtopicChallengingCompliance,
		StatutoryReference: "GDPR Art. 77",
		ObligationType:     domain.ObligationDisclosure,
		RequirementText:    "Every data subject shall have the right to lodge a complaint with a supervisory authority, in particular in the Member State of his or her habitual residence, place of work, or place of the alleged infringement.",
		DisclaimerLanguage: fmt.Sprintf("You may contact our %s at %s regarding any concerns about our processing of your personal data. You also have the right to lodge a complaint with a supervisory authority, in particular in the EU/EEA Member State of your habitual residence, place of work, or place of the alleged infringement (GDPR Art. 77).", org.DpoContact.Title, org.DpoContact.Email),
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	reqs = append(reqs, domain.MappedRequirement{
		ID:                 "GDPR-ART7",
		Jurisdiction:       domain.JurisdictionGDPR,
		Topic:              domain.TopicDataSubjectRights,
		Subtopic:           domain.SubtopicRightWithdrawConsent,
		StatutoryReference: "GDPR Art. 7(3)",
		ObligationType:     domain.ObligationRight,
		RequirementText:    "The data subject shall have the right to withdraw his or her consent at any time. The withdrawal of consent shall not affect the lawfulness of processing based on consent before its withdrawal.",
		DisclaimerLanguage: "Where we rely on your consent as the legal basis for processing, you have the right to withdraw that consent at any time. Withdrawal of consent does not affect the lawfulness of processing carried out before the withdrawal (GDPR Art. 7(3)).",
		ConditionalOn:      []string{"always"},
		Priority:           domain.PriorityRequired,
	})

	return reqs
}
