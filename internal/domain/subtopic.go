package domain

import "strings"

// Subtopic is the fine-grained concern a requirement addresses within its
// topic. The section assembler routes on subtopics two ways: a small set of
// keys matched exactly, and a set of keyword matches applied case-insensitively
// to the whole subtopic text. The two kinds are deliberately kept separate.
type Subtopic string

// Exact-match routing keys. The assembler compares these byte-for-byte.
const (
	SubtopicLimitingCollection    Subtopic = "Limiting collection"
	SubtopicIdentifyingPurposes   Subtopic = "Identifying purposes"
	SubtopicPurposeSpecification  Subtopic = "Purpose specification"
	SubtopicLimitingUseRetention  Subtopic = "Limiting use, disclosure, and retention"
	SubtopicRetentionPeriod       Subtopic = "Retention period"
	SubtopicChallengingCompliance Subtopic = "Challenging compliance"
	SubtopicCrossBorderTransfers  Subtopic = "Cross-border transfers"
)

// Remaining subtopics emitted by the regulation modules. These never drive
// exact-match routing on their own; some are picked up by keyword matching.
const (
	SubtopicAccountability             Subtopic = "Accountability"
	SubtopicConsent                    Subtopic = "Consent"
	SubtopicAccuracy                   Subtopic = "Accuracy"
	SubtopicSafeguards                 Subtopic = "Safeguards"
	SubtopicOpenness                   Subtopic = "Openness"
	SubtopicIndividualAccess           Subtopic = "Individual access"
	SubtopicBreachNotification         Subtopic = "Breach notification"
	SubtopicAccountabilityTransfers    Subtopic = "Accountability for transfers"
	SubtopicConsentForChildren         Subtopic = "Consent for children"
	SubtopicCookiesTracking            Subtopic = "Cookies and tracking technologies"
	SubtopicAutomatedDecisionMaking    Subtopic = "Automated decision-making"
	SubtopicExpressConsentSensitive    Subtopic = "Express consent for sensitive information"
	SubtopicRightChallengeAccuracy     Subtopic = "Right to challenge accuracy"
	SubtopicRightWithdrawConsent       Subtopic = "Right to withdraw consent"
	SubtopicRightErasure               Subtopic = "Right to erasure"
	SubtopicRightRestrictProcessing    Subtopic = "Right to restrict processing"
	SubtopicRightObject                Subtopic = "Right to object"
	SubtopicRightDataPortability       Subtopic = "Right to data portability"
	SubtopicRightDeletion              Subtopic = "Right to deletion"
	SubtopicRightOptOutSale            Subtopic = "Right to opt out of sale"
	SubtopicNonDiscrimination          Subtopic = "Non-discrimination"
	SubtopicDPIA                       Subtopic = "Data protection impact assessment"
	SubtopicDataProtectionOfficer      Subtopic = "Data Protection Officer"
	SubtopicEURepresentative           Subtopic = "EU Representative"
	SubtopicRequestVerification        Subtopic = "Consumer request verification"
	SubtopicRightLimitSensitiveUse     Subtopic = "Right to limit use of sensitive personal information"
	SubtopicOptOutBehavioralAds        Subtopic = "Opt out of cross-context behavioral advertising"
	SubtopicDoNotSellLink              Subtopic = "Do not sell link"
	SubtopicDoNotSellOrShareLink       Subtopic = "Do not sell or share link"
)

func (s Subtopic) String() string {
	return string(s)
}

func (s Subtopic) containsFold(keyword string) bool {
	return strings.Contains(strings.ToLower(string(s)), keyword)
}

// MentionsConsent reports whether the subtopic text mentions consent,
// matched case-insensitively.
func (s Subtopic) MentionsConsent() bool {
	return s.containsFold("consent")
}

// MentionsChildren reports whether the subtopic text mentions children or
// an age threshold, matched case-insensitively.
func (s Subtopic) MentionsChildren() bool {
	return s.containsFold("children") || s.containsFold("age")
}

// MentionsCookies reports whether the subtopic text mentions cookies or
// tracking, matched case-insensitively.
func (s Subtopic) MentionsCookies() bool {
	return s.containsFold("cookie") || s.containsFold("tracking")
}

// MentionsAutomated reports whether the subtopic text mentions automated
// decision-making, matched case-insensitively.
func (s Subtopic) MentionsAutomated() bool {
	return s.containsFold("automated")
}

// MatchesCrossBorder reports whether the subtopic is the canonical
// cross-border key or embeds the lowercase "cross-border" phrase. The
// substring check is case-sensitive.
func (s Subtopic) MatchesCrossBorder() bool {
	return s == SubtopicCrossBorderTransfers || strings.Contains(string(s), "cross-border")
}
