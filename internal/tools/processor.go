package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// ProcessorDisclosureInput feeds the third-party processor disclosure
// renderer. Requirements are expected to be pre-filtered to the
// third-party topic.
type ProcessorDisclosureInput struct {
	Recipients    []domain.ThirdPartyRecipient
	Jurisdictions []domain.Jurisdiction
	Requirements  []domain.MappedRequirement
	GeneratedAt   time.Time
}

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// shortLabel truncates a data category label at its parenthetical.
func shortLabel(cat domain.DataCategory) string {
	label, _, _ := strings.Cut(cat.Label(), "(")
	return strings.TrimSpace(label)
}

func shortLabels(cats []domain.DataCategory) string {
	labels := make([]string, 0, len(cats))
	for _, cat := range cats {
		labels = append(labels, shortLabel(cat))
	}
	return strings.Join(labels, ", ")
}

// RenderProcessorDisclosure renders the processor disclosure document as
// Markdown.
func RenderProcessorDisclosure(input ProcessorDisclosureInput) []byte {
	var lines []string
	push := func(s string) { lines = append(lines, s) }

	push("---")
	push(`title: "Third-Party Processor Disclosure"`)
	push(`document_type: "processor_disclosure"`)
	push(fmt.Sprintf("generated: %q", isoTimestamp(input.GeneratedAt)))
	push("jurisdictions:")
	for _, j := range input.Jurisdictions {
		push(fmt.Sprintf("  - %q", string(j)))
	}
	push(fmt.Sprintf("processor_count: %d", len(input.Recipients)))
	push("---")
	push("")

	push("# Third-Party Processor Disclosure")
	push("")
	push("This document identifies the categories of third-party service providers with whom personal information may be shared, the purposes of such sharing, and the applicable regulatory requirements.")
	push("")

	push("## Third-Party Service Providers")
	push("")
	if len(input.Recipients) == 0 {
		push("No third-party service providers identified.")
	} else {
		push("The following categories of third-party service providers may receive personal information in connection with the stated purposes:")
		push("")
		for _, r := range input.Recipients {
			push(fmt.Sprintf("- **%s**: %s", r.Category, r.Purpose))
			if r.Country != "" {
				push("  - Location: " + r.Country)
			}
			if len(r.DataCategories) > 0 {
				push("  - Data categories: " + shortLabels(r.DataCategories))
			}
		}
	}
	push("")

	push("## Processor Registry")
	push("")
	if len(input.Recipients) > 0 {
		push("| Category | Purpose | Data Categories | Country |")
		push("|----------|---------|-----------------|---------|")
		for _, r := range input.Recipients {
			country := r.Country
			if country == "" {
				country = "Not specified"
			}
			push(fmt.Sprintf("| %s | %s | %s | %s |", r.Category, r.Purpose, shortLabels(r.DataCategories), country))
		}
	} else {
		push("No processors registered.")
	}
	push("")

	if len(input.Requirements) > 0 {
		push("## Regulatory Disclosure Requirements")
		push("")
		for _, group := range groupRequirements(input.Requirements) {
			push("### " + group.jurisdiction.Label())
			push("")
			for _, req := range group.reqs {
				push(req.DisclaimerLanguage)
				push("")
			}
		}

		push("## Statutory References")
		push("")
		seen := make(map[string]struct{})
		for _, req := range input.Requirements {
			key := string(req.Jurisdiction) + "-" + req.StatutoryReference
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			push(fmt.Sprintf("- **%s** (%s)", req.StatutoryReference, req.Jurisdiction.Label()))
		}
		push("")
	}

	push("---")
	push("")
	push("*This document does not constitute legal advice. It is generated as a reference tool and should be reviewed by qualified legal counsel before use in regulatory filings, data processing agreements, or public-facing disclosures.*")
	push("")

	return []byte(strings.Join(lines, "\n"))
}

type requirementGroup struct {
	jurisdiction domain.Jurisdiction
	reqs         []domain.MappedRequirement
}

func groupRequirements(reqs []domain.MappedRequirement) []requirementGroup {
	index := make(map[domain.Jurisdiction]int)
	var groups []requirementGroup
	for _, r := range reqs {
		i, ok := index[r.Jurisdiction]
		if !ok {
			i = len(groups)
			index[r.Jurisdiction] = i
			groups = append(groups, requirementGroup{jurisdiction: r.Jurisdiction})
		}
		groups[i].reqs = append(groups[i].reqs, r)
	}
	return groups
}

// FilterThirdParty keeps only the requirements routed to the third-party
// topic, for the processor disclosure.
func FilterThirdParty(reqs []domain.MappedRequirement) []domain.MappedRequirement {
	var out []domain.MappedRequirement
	for _, r := range reqs {
		if r.Topic == domain.TopicThirdParty {
			out = append(out, r)
		}
	}
	return out
}
