package domain

import "fmt"

// TopicCategory groups mapped requirements by regulatory concern. The
// assembler routes requirements into document sections by topic first,
// then by subtopic.
type TopicCategory string

const (
	TopicDefinitions            TopicCategory = "definitions"
	TopicScope                  TopicCategory = "scope"
	TopicDataSubjectRights      TopicCategory = "data_subject_rights"
	TopicEnterpriseRequirements TopicCategory = "enterprise_requirements"
	TopicDataProtection         TopicCategory = "data_protection"
	TopicDataManagement         TopicCategory = "data_management"
	TopicEnforcement            TopicCategory = "enforcement"
	TopicThirdParty             TopicCategory = "third_party_considerations"
)

var topicCategories = map[TopicCategory]struct{}{
	TopicDefinitions:            {},
	TopicScope:                  {},
	TopicDataSubjectRights:      {},
	TopicEnterpriseRequirements: {},
	TopicDataProtection:         {},
	TopicDataManagement:         {},
	TopicEnforcement:            {},
	TopicThirdParty:             {},
}

// Validate returns an error if the topic is not part of the vocabulary.
func (t TopicCategory) Validate() error {
	if _, ok := topicCategories[t]; !ok {
		return fmt.Errorf("invalid topic category: %s", string(t))
	}
	return nil
}

func (t TopicCategory) String() string {
	return string(t)
}

// ObligationType classifies what kind of duty a requirement imposes.
type ObligationType string

const (
	ObligationDisclosure  ObligationType = "disclosure"
	ObligationRight       ObligationType = "right"
	ObligationSafeguard   ObligationType = "safeguard"
	ObligationProcess     ObligationType = "process"
	ObligationRestriction ObligationType = "restriction"
)

// Priority states how firmly a requirement applies to the organization.
type Priority string

const (
	PriorityRequired    Priority = "required"
	PriorityRecommended Priority = "recommended"
	PriorityConditional Priority = "conditional"
)
