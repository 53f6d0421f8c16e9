// Package engine orchestrates the generation pipeline: map requirements,
// assemble the document, render each requested format, and write the
// artifacts to disk.
package engine

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/privacykit-dev/privacykit/internal/builder"
	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/mapper"
	"github.com/privacykit-dev/privacykit/internal/regulations"
	"github.com/privacykit-dev/privacykit/internal/render"
)

// DefaultVersion is the document version used when the caller supplies none.
const DefaultVersion = "0.1.0"

// Options control one generation run.
type Options struct {
	Formats   []domain.OutputFormat
	OutputDir string
	// Version is the document version recorded in the metadata and front
	// matter. Must be valid semver. Defaults to DefaultVersion.
	Version string
	// Now is the generation timestamp. Defaults to time.Now. Injecting it
	// makes output byte-reproducible.
	Now func() time.Time
	// Logger receives orchestration logs. Defaults to slog.Default().
	Logger *slog.Logger
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func orgSlug(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.TrimSuffix(slug, "-")
}

// Generate runs the full pipeline for a validated input and writes one file
// per implemented output format. Formats whose renderer is not implemented
// are skipped without error.
func Generate(reg *regulations.Registry, input domain.ValidatedInput, opts Options) (domain.GeneratedDisclaimer, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	if _, err := semver.NewVersion(version); err != nil {
		return domain.GeneratedDisclaimer{}, fmt.Errorf("invalid document version %q: %w", version, err)
	}

	if input.HasJurisdiction(domain.JurisdictionGDPR) && input.OrgProfile.EuRepresentative == nil {
		log.Warn("GDPR selected without an EU representative; Article 27 disclosures will be omitted",
			"org", input.OrgProfile.LegalName)
	}

	requirements := mapper.Map(reg, input)
	doc := builder.Build(requirements, input, version, now)

	log.Info("document assembled",
		"generation_id", doc.GenerationID,
		"jurisdictions", len(input.Jurisdictions),
		"requirements", len(requirements),
		"sections", len(doc.Sections))

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return domain.GeneratedDisclaimer{}, fmt.Errorf("creating output directory: %w", err)
	}

	slug := orgSlug(doc.Metadata.OrgName)
	dateStamp := now.UTC().Format("2006-01-02")

	var outputs []domain.GeneratedOutput
	for _, format := range opts.Formats {
		r, ok := render.For(format)
		if !ok {
			return domain.GeneratedDisclaimer{}, fmt.Errorf("unknown output format: %s", format)
		}
		content := r.Render(doc.Sections, doc.Metadata)
		if content == nil {
			log.Debug("skipping format without a renderer", "format", format)
			continue
		}
		filePath := filepath.Join(opts.OutputDir, fmt.Sprintf("privacy-policy-%s-%s%s", slug, dateStamp, r.Ext()))
		if err := os.WriteFile(filePath, content, 0o644); err != nil {
			return domain.GeneratedDisclaimer{}, fmt.Errorf("writing %s output: %w", format, err)
		}
		log.Info("output written", "format", format, "path", filePath, "bytes", len(content))
		outputs = append(outputs, domain.GeneratedOutput{
			Format:   format,
			FilePath: filePath,
			Content:  content,
		})
	}

	return domain.GeneratedDisclaimer{
		Sections: doc.Sections,
		Outputs:  outputs,
		Metadata: doc.Metadata,
	}, nil
}
