package engine

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func testInput() domain.ValidatedInput {
	return domain.ValidatedInput{
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		OrgProfile: domain.OrgProfile{
			LegalName:           "Acme Analytics Inc.",
			EntityType:          domain.EntityController,
			IndustrySector:      "Technology",
			HeadquartersCountry: "Canada",
			DpoContact: domain.DpoContact{
				Title: "Privacy Officer",
				Email: "privacy@acme.example",
			},
		},
		DataPractices: domain.DataPractices{
			DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers},
			DataSources:    []domain.DataSource{domain.SourceDirectlyFromSubject},
			ProcessingPurposes: []domain.ProcessingPurposeEntry{
				{Purpose: domain.PurposeServiceDelivery, LegalBasis: domain.BasisContract},
			},
			ConsentMechanisms: []domain.ConsentMechanism{domain.ConsentOptIn},
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGenerateWritesMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	result, err := Generate(regulations.NewRegistry(), testInput(), Options{
		Formats:   []domain.OutputFormat{domain.FormatMarkdown},
		OutputDir: dir,
		Now:       func() time.Time { return testNow },
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	require.Len(t, result.Outputs, 1)
	output := result.Outputs[0]
	assert.Equal(t, domain.FormatMarkdown, output.Format)
	assert.Equal(t, filepath.Join(dir, "privacy-policy-acme-analytics-inc-2026-03-15.md"), output.FilePath)

	onDisk, err := os.ReadFile(output.FilePath)
	require.NoError(t, err)
	assert.Equal(t, output.Content, onDisk)

	assert.Equal(t, "0.1.0", result.Metadata.Version)
	assert.NotEmpty(t, result.Sections)
	assert.Positive(t, result.Metadata.RequirementCount)
}

func TestGenerateIsByteReproducible(t *testing.T) {
	t.Parallel()

	opts := func(dir string) Options {
		return Options{
			Formats:   []domain.OutputFormat{domain.FormatMarkdown},
			OutputDir: dir,
			Now:       func() time.Time { return testNow },
			Logger:    quietLogger(),
		}
	}

	first, err := Generate(regulations.NewRegistry(), testInput(), opts(t.TempDir()))
	require.NoError(t, err)
	second, err := Generate(regulations.NewRegistry(), testInput(), opts(t.TempDir()))
	require.NoError(t, err)

	require.Len(t, first.Outputs, 1)
	require.Len(t, second.Outputs, 1)
	assert.Equal(t, first.Outputs[0].Content, second.Outputs[0].Content)
}

func TestGenerateSkipsUnimplementedFormats(t *testing.T) {
	t.Parallel()

	result, err := Generate(regulations.NewRegistry(), testInput(), Options{
		Formats:   []domain.OutputFormat{domain.FormatMarkdown, domain.FormatDOCX, domain.FormatHTML},
		OutputDir: t.TempDir(),
		Now:       func() time.Time { return testNow },
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	require.Len(t, result.Outputs, 1)
	assert.Equal(t, domain.FormatMarkdown, result.Outputs[0].Format)
}

func TestGenerateRejectsInvalidVersion(t *testing.T) {
	t.Parallel()

	_, err := Generate(regulations.NewRegistry(), testInput(), Options{
		Formats:   []domain.OutputFormat{domain.FormatMarkdown},
		OutputDir: t.TempDir(),
		Version:   "not-semver",
		Logger:    quietLogger(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid document version "not-semver"`)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Generate(regulations.NewRegistry(), testInput(), Options{
		Formats:   []domain.OutputFormat{domain.OutputFormat("pdf")},
		OutputDir: t.TempDir(),
		Logger:    quietLogger(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format: pdf")
}

func TestGeneratePIPEDAOnlyDocument(t *testing.T) {
	t.Parallel()

	input := domain.ValidatedInput{
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionPIPEDA},
		OrgProfile: domain.OrgProfile{
			LegalName:           "Acme Inc",
			EntityType:          domain.EntityController,
			IndustrySector:      "Retail",
			HeadquartersCountry: "Canada",
			DpoContact: domain.DpoContact{
				Title: "Privacy Officer",
				Email: "privacy@acme.example",
			},
		},
		DataPractices: domain.DataPractices{
			DataCategories: []domain.DataCategory{domain.CategoryPersonalIdentifiers},
			DataSources:    []domain.DataSource{domain.SourceDirectlyFromSubject},
			ProcessingPurposes: []domain.ProcessingPurposeEntry{
				{Purpose: domain.PurposeServiceDelivery, LegalBasis: domain.BasisContract},
			},
			RetentionSchedule: []domain.RetentionEntry{
				{DataCategory: domain.CategoryPersonalIdentifiers, Period: "2 years"},
			},
			ConsentMechanisms: []domain.ConsentMechanism{domain.ConsentOptIn},
		},
	}

	result, err := Generate(regulations.NewRegistry(), input, Options{
		Formats:   []domain.OutputFormat{domain.FormatMarkdown},
		OutputDir: t.TempDir(),
		Now:       func() time.Time { return testNow },
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	got := make([]domain.SectionID, 0, len(result.Sections))
	for _, s := range result.Sections {
		got = append(got, s.ID)
	}
	assert.Equal(t, []domain.SectionID{
		domain.SectionPreamble,
		domain.SectionDataCollection,
		domain.SectionLegalBasis,
		domain.SectionUseOfData,
		domain.SectionDataSharing,
		domain.SectionRetention,
		domain.SectionDataSubjectRights,
		domain.SectionSecurityMeasures,
		domain.SectionChangesToPolicy,
		domain.SectionContact,
	}, got)

	out := string(result.Outputs[0].Content)
	assert.Contains(t, out, "We do not sell, trade, or otherwise transfer your personal information to third parties.")
	assert.Contains(t, out, "Under PIPEDA (Canada — Federal), you have the right to:")
	assert.NotContains(t, out, "International Data Transfers")
}

func TestOrgSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Acme Analytics Inc.", "acme-analytics-inc"},
		{"Dös & Söhne GmbH", "d-s-s-hne-gmbh"},
		{"simple", "simple"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, orgSlug(tt.name), tt.name)
	}
}
