package domain

// EntityType states the organization's role with respect to the personal
// data it handles.
type EntityType string

const (
	EntityController      EntityType = "controller"
	EntityProcessor       EntityType = "processor"
	EntityJointController EntityType = "joint_controller"
)

// DpoContact identifies the privacy officer or equivalent contact point.
type DpoContact struct {
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Title   string `yaml:"title" json:"title"`
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
}

// EuRepresentative is the Article 27 representative for organizations
// outside the EU that are subject to the GDPR.
type EuRepresentative struct {
	Name    string `yaml:"name" json:"name"`
	Email   string `yaml:"email" json:"email"`
	Address string `yaml:"address" json:"address"`
}

// OrgProfile describes the organization the document is generated for.
type OrgProfile struct {
	LegalName            string            `yaml:"legalName" json:"legalName"`
	TradingName          string            `yaml:"tradingName,omitempty" json:"tradingName,omitempty"`
	EntityType           EntityType        `yaml:"entityType" json:"entityType"`
	IndustrySector       string            `yaml:"industrySector" json:"industrySector"`
	WebsiteURL           string            `yaml:"websiteUrl,omitempty" json:"websiteUrl,omitempty"`
	HeadquartersCountry  string            `yaml:"headquartersCountry" json:"headquartersCountry"`
	HeadquartersProvince string            `yaml:"headquartersProvince,omitempty" json:"headquartersProvince,omitempty"`
	DpoContact           DpoContact        `yaml:"dpoContact" json:"dpoContact"`
	EuRepresentative     *EuRepresentative `yaml:"euRepresentative,omitempty" json:"euRepresentative,omitempty"`
}

// ProcessingPurposeEntry pairs a processing purpose with its legal basis.
type ProcessingPurposeEntry struct {
	Purpose     ProcessingPurpose `yaml:"purpose" json:"purpose"`
	LegalBasis  LegalBasis        `yaml:"legalBasis" json:"legalBasis"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// RetentionEntry states how long a category of data is kept, and why.
type RetentionEntry struct {
	DataCategory  DataCategory `yaml:"dataCategory" json:"dataCategory"`
	Period        string       `yaml:"period" json:"period"`
	Justification string       `yaml:"justification,omitempty" json:"justification,omitempty"`
}

// ThirdPartyRecipient describes a category of external recipient.
type ThirdPartyRecipient struct {
	Category       string         `yaml:"category" json:"category"`
	Purpose        string         `yaml:"purpose" json:"purpose"`
	DataCategories []DataCategory `yaml:"dataCategories" json:"dataCategories"`
	Country        string         `yaml:"country,omitempty" json:"country,omitempty"`
}

// ThirdPartySharing captures whether and how data leaves the organization.
type ThirdPartySharing struct {
	Shares                   bool                  `yaml:"shares" json:"shares"`
	Recipients               []ThirdPartyRecipient `yaml:"recipients,omitempty" json:"recipients,omitempty"`
	SellsData                bool                  `yaml:"sellsData" json:"sellsData"`
	SharesForCrossBehavioral bool                  `yaml:"sharesForCrossBehavioral" json:"sharesForCrossBehavioral"`
}

// CrossBorderDestination is one country data is transferred to, with the
// transfer mechanism relied on.
type CrossBorderDestination struct {
	Country        string            `yaml:"country" json:"country"`
	Mechanism      TransferMechanism `yaml:"mechanism" json:"mechanism"`
	DataCategories []DataCategory    `yaml:"dataCategories" json:"dataCategories"`
}

// CrossBorderTransfers captures whether data crosses borders and where.
type CrossBorderTransfers struct {
	Transfers    bool                     `yaml:"transfers" json:"transfers"`
	Destinations []CrossBorderDestination `yaml:"destinations,omitempty" json:"destinations,omitempty"`
}

// DataPractices is the complete description of an organization's handling
// of personal data. Boolean gates here drive requirement emission and
// section presence downstream.
type DataPractices struct {
	DataCategories             []DataCategory           `yaml:"dataCategories" json:"dataCategories"`
	DataSources                []DataSource             `yaml:"dataSources" json:"dataSources"`
	ProcessingPurposes         []ProcessingPurposeEntry `yaml:"processingPurposes" json:"processingPurposes"`
	RetentionSchedule          []RetentionEntry         `yaml:"retentionSchedule" json:"retentionSchedule"`
	ThirdPartySharing          ThirdPartySharing        `yaml:"thirdPartySharing" json:"thirdPartySharing"`
	CrossBorderTransfers       CrossBorderTransfers     `yaml:"crossBorderTransfers" json:"crossBorderTransfers"`
	ConsentMechanisms          []ConsentMechanism       `yaml:"consentMechanisms" json:"consentMechanisms"`
	CollectsChildrensData      bool                     `yaml:"collectsChildrensData" json:"collectsChildrensData"`
	MinimumAgeThreshold        int                      `yaml:"minimumAgeThreshold,omitempty" json:"minimumAgeThreshold,omitempty"`
	UsesCookies                bool                     `yaml:"usesCookies" json:"usesCookies"`
	UsesAutomatedDecisionMaking bool                    `yaml:"usesAutomatedDecisionMaking" json:"usesAutomatedDecisionMaking"`
	ConductsDPIA               bool                     `yaml:"conductsDPIA" json:"conductsDPIA"`
}

// HasCategory reports whether the organization collects the given category.
func (dp DataPractices) HasCategory(c DataCategory) bool {
	for _, have := range dp.DataCategories {
		if have == c {
			return true
		}
	}
	return false
}

// HasAnyCategory reports whether any of the given categories is collected.
func (dp DataPractices) HasAnyCategory(cats ...DataCategory) bool {
	for _, c := range cats {
		if dp.HasCategory(c) {
			return true
		}
	}
	return false
}

// ValidatedInput is the root input document after schema validation. Every
// stage past the validator treats it as total: no stage re-checks fields.
type ValidatedInput struct {
	Jurisdictions []Jurisdiction `yaml:"jurisdictions" json:"jurisdictions"`
	OrgProfile    OrgProfile     `yaml:"orgProfile" json:"orgProfile"`
	DataPractices DataPractices  `yaml:"dataPractices" json:"dataPractices"`
}

// HasJurisdiction reports whether the jurisdiction was selected.
func (in ValidatedInput) HasJurisdiction(j Jurisdiction) bool {
	for _, have := range in.Jurisdictions {
		if have == j {
			return true
		}
	}
	return false
}
