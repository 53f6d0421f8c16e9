package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// The role determination tree. Each question node names the node reached on
// a yes or no answer; leaves carry the determined entity type.

// RoleQuestion is one interior node of the determination tree.
type RoleQuestion struct {
	ID       string
	Question string
	HelpText string
	Yes      string
	No       string
}

// RoleOutcome is one leaf of the determination tree.
type RoleOutcome struct {
	ID          string
	EntityType  domain.EntityType
	Label       string
	Explanation string
}

// RoleTreeRoot is the node the assessment starts from.
const RoleTreeRoot = "q1"

var roleQuestions = map[string]RoleQuestion{
	"q1": {
		ID:       "q1",
		Question: "Does your organization determine why personal data is collected?",
		HelpText: "You decide the purposes of processing — e.g., you chose to collect emails for marketing, or payment details for billing.",
		Yes:      "q2",
		No:       "q3",
	},
	"q2": {
		ID:       "q2",
		Question: "Does your organization determine how personal data is processed?",
		HelpText: "You decide the means of processing — e.g., which systems store the data, what security measures apply, how long data is retained.",
		Yes:      "q3a",
		No:       "outcome_joint",
	},
	"q3": {
		ID:       "q3",
		Question: "Does another organization instruct you on what personal data to collect and how to process it?",
		HelpText: "Another organization defines the purposes and provides instructions — e.g., a client tells you to process their customer records according to their specifications.",
		Yes:      "outcome_processor",
		No:       "q4",
	},
	"q3a": {
		ID:       "q3a",
		Question: "Do you share these decisions about purposes and means with another organization?",
		HelpText: "You and another organization jointly decide why and how data is processed — e.g., co-managing a loyalty program with a partner.",
		Yes:      "outcome_joint",
		No:       "outcome_controller",
	},
	"q4": {
		ID:       "q4",
		Question: "Do you share decision-making about data processing purposes with another organization?",
		HelpText: "Even though you don't fully determine purposes alone, you may co-determine them with a partner organization.",
		Yes:      "outcome_joint",
		No:       "outcome_processor",
	},
}

var roleOutcomes = map[string]RoleOutcome{
	"outcome_controller": {
		ID:          "outcome_controller",
		EntityType:  domain.EntityController,
		Label:       "Data Controller",
		Explanation: "Your organization independently determines the purposes and means of processing personal data. You bear primary accountability for compliance with privacy regulations.",
	},
	"outcome_processor": {
		ID:          "outcome_processor",
		EntityType:  domain.EntityProcessor,
		Label:       "Data Processor",
		Explanation: "Your organization processes personal data on behalf of, and under the instructions of, another organization (the controller). You must follow the controller's instructions and have a data processing agreement in place.",
	},
	"outcome_joint": {
		ID:          "outcome_joint",
		EntityType:  domain.EntityJointController,
		Label:       "Joint Controller",
		Explanation: "Your organization jointly determines the purposes and/or means of processing with one or more other organizations. A joint controller arrangement under GDPR Art. 26 (or equivalent) should be documented.",
	},
}

// RoleQuestionNode returns the question node with the given id.
func RoleQuestionNode(id string) (RoleQuestion, bool) {
	q, ok := roleQuestions[id]
	return q, ok
}

// RoleOutcomeNode returns the outcome node with the given id.
func RoleOutcomeNode(id string) (RoleOutcome, bool) {
	o, ok := roleOutcomes[id]
	return o, ok
}

// DecisionPathEntry records one answered question of an assessment.
type DecisionPathEntry struct {
	QuestionNumber int
	Question       string
	Answer         string // "Yes" or "No"
}

// WalkRoleTree runs the determination tree against a sequence of yes/no
// answers and returns the outcome with the recorded decision path. It fails
// when the answers run out before a leaf is reached.
func WalkRoleTree(answers []bool) (RoleOutcome, []DecisionPathEntry, error) {
	node := RoleTreeRoot
	var path []DecisionPathEntry
	for i := 0; ; i++ {
		if outcome, ok := roleOutcomes[node]; ok {
			return outcome, path, nil
		}
		q, ok := roleQuestions[node]
		if !ok {
			return RoleOutcome{}, nil, fmt.Errorf("role tree references unknown node %q", node)
		}
		if i >= len(answers) {
			return RoleOutcome{}, nil, fmt.Errorf("assessment incomplete: no answer for question %q", q.Question)
		}
		answer := "No"
		next := q.No
		if answers[i] {
			answer = "Yes"
			next = q.Yes
		}
		path = append(path, DecisionPathEntry{
			QuestionNumber: i + 1,
			Question:       q.Question,
			Answer:         answer,
		})
		node = next
	}
}

type roleImplication struct {
	controller      string
	processor       string
	jointController string
}

var roleImplications = map[domain.Jurisdiction]roleImplication{
	domain.JurisdictionGDPR: {
		controller:      "As a Data Controller under the GDPR, your organization independently determines the purposes and means of processing personal data. You bear primary accountability under Art. 24, including obligations to implement appropriate technical and organizational measures, maintain records of processing activities (Art. 30), conduct data protection impact assessments where required (Art. 35), and ensure a lawful basis for all processing (Art. 6). You must appoint a Data Protection Officer where required (Art. 37) and serve as the primary point of contact for data subjects exercising their rights.",
		processor:       "As a Data Processor under the GDPR, your organization processes personal data on behalf of and under the instructions of a controller. You must enter into a data processing agreement per Art. 28, implement appropriate security measures (Art. 32), maintain records of processing activities carried out on behalf of the controller (Art. 30(2)), and assist the controller in fulfilling data subject access requests and DPIAs. You may not engage a sub-processor without prior written authorization from the controller.",
		jointController: "As a Joint Controller under the GDPR, your organization jointly determines the purposes and means of processing with one or more other controllers. Under Art. 26, you must enter into a transparent arrangement defining each party's responsibilities for compliance, including obligations to data subjects. The arrangement must reflect the respective roles and relationships of the joint controllers vis-a-vis data subjects, and its essence must be made available to data subjects.",
	},
	domain.JurisdictionPIPEDA: {
		controller:      "Under PIPEDA, your organization is accountable for personal information under its control (Principle 4.1). You must designate an individual accountable for compliance, establish policies and practices to give effect to the principles, and ensure that third-party service providers afford a comparable level of protection (Principle 4.1.3). Accountability continues even when personal information is transferred to a third party for processing.",
		processor:       "Under PIPEDA, as a processor acting on behalf of another organization, you process personal information under contractual agreements that require comparable protection. The transferring organization (controller) retains accountability under Principle 4.1.3. You must comply with contractual obligations regarding the use, disclosure, and protection of the personal information entrusted to you.",
		jointController: "Under PIPEDA, where organizations jointly determine the purposes and means of processing, each organization retains accountability under Principle 4.1. Both parties should establish clear agreements defining their respective roles, responsibilities, and accountability for compliance with the PIPEDA principles, particularly regarding consent, purpose limitation, and access requests.",
	},
	domain.JurisdictionQuebecLaw25: {
		controller:      "Under Quebec Law 25, your organization exercises control over the collection, holding, use, and communication of personal information. You must designate a person responsible for the protection of personal information (s. 3.1), conduct privacy impact assessments for information systems projects (s. 3.3), establish governance policies and practices (s. 3.2), and maintain a register of confidentiality incidents. You must inform individuals when personal information is communicated outside Quebec (s. 17).",
		processor:       "Under Quebec Law 25, when processing personal information on behalf of another organization, you must enter into a written agreement ensuring equivalent protection (s. 18.3). You may only use the information for the purposes specified in the agreement and must implement security measures consistent with the Act. You must notify the mandating organization of any confidentiality incident without delay.",
		jointController: "Under Quebec Law 25, where organizations share responsibility for determining the purposes and means of processing, each organization must comply with its obligations under the Act. Written agreements should define responsibilities for governance, privacy impact assessments, incident management, and the exercise of access and rectification rights by the persons concerned.",
	},
	domain.JurisdictionAlbertaPIPA: {
		controller:      "Under Alberta PIPA, your organization is responsible for personal information under its control (s. 5). You must designate one or more individuals to ensure compliance, develop and follow policies and practices, and ensure that personal information transferred to a service provider is subject to comparable protection through contractual or other means.",
		processor:       "Under Alberta PIPA, as a service provider processing personal information on behalf of another organization, you must comply with the terms of your service agreement and apply appropriate safeguards. The organization that collected the information retains overall responsibility for its protection under s. 5.",
		jointController: "Under Alberta PIPA, where organizations share control over personal information, each organization bears responsibility under s. 5. Clear agreements should be established to delineate each party's obligations for collection, use, disclosure, and protection of personal information.",
	},
	domain.JurisdictionBCPIPA: {
		controller:      "Under BC PIPA, your organization is responsible for personal information under its control (s. 4). You must designate an individual to ensure compliance, develop policies and practices to meet obligations, and ensure that service providers to whom you transfer personal information are subject to comparable safeguards through contractual or other means.",
		processor:       "Under BC PIPA, as a service provider processing personal information on behalf of another organization, you must comply with the terms of your service agreement and apply appropriate safeguards. The originating organization retains primary responsibility under s. 4.",
		jointController: "Under BC PIPA, where organizations jointly control personal information, each party bears responsibility under s. 4. Agreements should clearly define responsibilities for compliance, including consent management, access requests, and security safeguards.",
	},
	domain.JurisdictionCCPA: {
		controller:      "Under the CCPA, your organization qualifies as a \"business\" that determines the purposes and means of processing consumers' personal information (Cal. Civ. Code §1798.140(d)). You must provide notice at collection, honor opt-out requests for the sale of personal information, respond to verifiable consumer requests for access and deletion, and maintain reasonable security procedures.",
		processor:       "Under the CCPA, your organization qualifies as a \"service provider\" processing personal information on behalf of a business (Cal. Civ. Code §1798.140(v)). You must process information only for the business purposes specified in your service agreement and are prohibited from selling or retaining the information for your own commercial purposes. You must assist the business in responding to consumer rights requests.",
		jointController: "Under the CCPA, where organizations jointly determine the purposes and means of processing, each party may be classified as a \"business\" with independent obligations. Both parties should establish agreements defining their respective compliance responsibilities, particularly regarding consumer notice, opt-out mechanisms, and responding to access and deletion requests.",
	},
	domain.JurisdictionCPRA: {
		controller:      "Under the CPRA, your organization qualifies as a \"business\" that determines the purposes and means of processing consumers' personal information (Cal. Civ. Code §1798.140(d)). You must contractually obligate service providers and contractors to comply with the CPRA (§1798.100(d)), honor opt-out rights for both sales and sharing for cross-context behavioral advertising, conduct cybersecurity audits and risk assessments where required, and respond to requests regarding automated decision-making technology.",
		processor:       "Under the CPRA, your organization qualifies as a \"service provider\" or \"contractor\" processing personal information on behalf of a business. You must comply with contractual restrictions per §1798.100(d) and §1798.140(ag), limit processing to specified purposes, implement reasonable security, assist the business with consumer rights requests, and refrain from selling or sharing the information for cross-context behavioral advertising.",
		jointController: "Under the CPRA, where organizations jointly determine purposes and means of processing, each may qualify as a \"business\" with independent obligations under the Act. Joint arrangements should define responsibilities for consumer notice, contractual obligations to service providers, opt-out mechanisms for sales and sharing, and handling of sensitive personal information.",
	},
}

// RoleImplication returns the obligations summary for the entity type under
// the jurisdiction, or "" when none is on record.
func RoleImplication(j domain.Jurisdiction, entityType domain.EntityType) string {
	entry, ok := roleImplications[j]
	if !ok {
		return ""
	}
	switch entityType {
	case domain.EntityController:
		return entry.controller
	case domain.EntityProcessor:
		return entry.processor
	case domain.EntityJointController:
		return entry.jointController
	default:
		return ""
	}
}

var entityTypeDisplay = map[domain.EntityType]string{
	domain.EntityController:      "Data Controller",
	domain.EntityProcessor:       "Data Processor",
	domain.EntityJointController: "Joint Controller",
}

func displayEntityType(et domain.EntityType) string {
	if display, ok := entityTypeDisplay[et]; ok {
		return display
	}
	return string(et)
}

// RoleDeterminationInput feeds the role determination memo renderer.
type RoleDeterminationInput struct {
	EntityType         domain.EntityType
	OutcomeLabel       string
	OutcomeExplanation string
	DecisionPath       []DecisionPathEntry
	Jurisdictions      []domain.Jurisdiction
	GeneratedAt        time.Time
}

// RenderRoleDeterminationMemo renders the determination memo as Markdown.
func RenderRoleDeterminationMemo(input RoleDeterminationInput) []byte {
	var lines []string
	push := func(s string) { lines = append(lines, s) }

	push("---")
	push(`title: "Entity Role Determination Memo"`)
	push(`document_type: "role_determination"`)
	push(fmt.Sprintf("determined_role: %q", string(input.EntityType)))
	push(fmt.Sprintf("generated: %q", isoTimestamp(input.GeneratedAt)))
	push("jurisdictions:")
	for _, j := range input.Jurisdictions {
		push(fmt.Sprintf("  - %q", string(j)))
	}
	push("---")
	push("")

	push("# Entity Role Determination Memo")
	push("")
	push("Date: " + isoDate(input.GeneratedAt))
	push("")

	push("## Conclusion")
	push("")
	push(fmt.Sprintf("Based on the assessment below, the organization is classified as a **%s**.", displayEntityType(input.EntityType)))
	push("")
	push(input.OutcomeExplanation)
	push("")

	if len(input.DecisionPath) > 0 {
		push("## Decision Path")
		push("")
		push("The following questions were assessed to arrive at the determination:")
		push("")
		for _, entry := range input.DecisionPath {
			push(fmt.Sprintf("%d. **%s**", entry.QuestionNumber, entry.Question))
			push("   - Answer: " + entry.Answer)
		}
		push("")
	}

	if len(input.Jurisdictions) > 0 {
		push("## Regulatory Implications")
		push("")
		push(fmt.Sprintf("The following outlines the obligations of a %s under each applicable jurisdiction:", displayEntityType(input.EntityType)))
		push("")

		for _, j := range input.Jurisdictions {
			push("### " + j.Label())
			push("")
			if text := RoleImplication(j, input.EntityType); text != "" {
				push(text)
			} else {
				push("Regulatory implications not available for this jurisdiction.")
			}
			push("")
		}
	}

	push("---")
	push("")
	push("*This memo does not constitute legal advice. The role determination is based on the responses provided and should be validated by qualified legal counsel. Regulatory obligations may vary based on specific circumstances not captured in this assessment.*")
	push("")

	return []byte(strings.Join(lines, "\n"))
}
