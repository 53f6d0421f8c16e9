package domain

import "time"

// SectionID identifies one of the fixed document sections.
type SectionID string

const (
	SectionPreamble             SectionID = "preamble"
	SectionDataCollection       SectionID = "data-collection"
	SectionLegalBasis           SectionID = "legal-basis"
	SectionUseOfData            SectionID = "use-of-data"
	SectionDataSharing          SectionID = "data-sharing"
	SectionCrossBorder          SectionID = "cross-border"
	SectionRetention            SectionID = "retention"
	SectionDataSubjectRights    SectionID = "data-subject-rights"
	SectionSecurityMeasures     SectionID = "security-measures"
	SectionChildren             SectionID = "children"
	SectionCookies              SectionID = "cookies"
	SectionAutomatedDecisions   SectionID = "automated-decisions"
	SectionChangesToPolicy      SectionID = "changes-to-policy"
	SectionContact              SectionID = "contact"
	SectionJurisdictionSpecific SectionID = "jurisdiction-specific"
)

// SectionOrder is the master ordering of document sections. Assembled
// documents contain a subset of these, always in this order.
var SectionOrder = []SectionID{
	SectionPreamble,
	SectionDataCollection,
	SectionLegalBasis,
	SectionUseOfData,
	SectionDataSharing,
	SectionCrossBorder,
	SectionRetention,
	SectionDataSubjectRights,
	SectionSecurityMeasures,
	SectionChildren,
	SectionCookies,
	SectionAutomatedDecisions,
	SectionChangesToPolicy,
	SectionContact,
	SectionJurisdictionSpecific,
}

// Emphasis controls how a paragraph is rendered.
type Emphasis string

const (
	EmphasisNormal Emphasis = "normal"
	EmphasisBold   Emphasis = "bold"
	EmphasisItalic Emphasis = "italic"
)

// SectionParagraph is one paragraph of section body text.
type SectionParagraph struct {
	Text             string
	Emphasis         Emphasis
	JurisdictionScope []Jurisdiction // nil means all jurisdictions
}

// JurisdictionCallout is a sub-block of a section addressed to residents of
// one jurisdiction.
type JurisdictionCallout struct {
	Jurisdiction Jurisdiction
	Heading      string
	Body         string
	Citations    []StatutoryCitation
}

// StatutoryCitation points at the legal provision behind a statement.
type StatutoryCitation struct {
	Jurisdiction Jurisdiction
	Reference    string
	Description  string
}

// DisclaimerSection is one assembled document section. Order is 1-based and
// dense across the sections actually present in a document.
type DisclaimerSection struct {
	ID                   SectionID
	Heading              string
	Order                int
	Paragraphs           []SectionParagraph
	JurisdictionCallouts []JurisdictionCallout
	Citations            []StatutoryCitation
}

// DisclaimerMetadata describes a generated document.
type DisclaimerMetadata struct {
	GeneratedAt      time.Time
	Jurisdictions    []Jurisdiction
	OrgName          string
	Version          string
	RequirementCount int
}

// GeneratedOutput is one rendered artifact.
type GeneratedOutput struct {
	Format   OutputFormat
	FilePath string
	Content  []byte
}

// GeneratedDisclaimer bundles the assembled sections, the rendered outputs,
// and the generation metadata.
type GeneratedDisclaimer struct {
	Sections []DisclaimerSection
	Outputs  []GeneratedOutput
	Metadata DisclaimerMetadata
}
