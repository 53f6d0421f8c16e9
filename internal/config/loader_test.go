package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

const validInputYAML = `
jurisdictions:
  - PIPEDA
  - GDPR
orgProfile:
  legalName: Acme Analytics Inc.
  tradingName: Acme
  entityType: controller
  industrySector: Technology
  websiteUrl: https://acme.example
  headquartersCountry: Canada
  headquartersProvince: Ontario
  dpoContact:
    name: Jordan Lee
    title: Privacy Officer
    email: privacy@acme.example
dataPractices:
  dataCategories:
    - personal_identifiers
    - behavioral
  dataSources:
    - directly_from_subject
    - automated_collection
  processingPurposes:
    - purpose: service_delivery
      legalBasis: contract
    - purpose: analytics
      legalBasis: legitimate_interest
      description: Usage analytics to improve the product.
  retentionSchedule:
    - dataCategory: personal_identifiers
      period: 7 years
      justification: Tax records
  thirdPartySharing:
    shares: true
    recipients:
      - category: Cloud hosting providers
        purpose: Infrastructure and storage
        dataCategories:
          - personal_identifiers
        country: United States
    sellsData: false
    sharesForCrossBehavioral: false
  crossBorderTransfers:
    transfers: true
    destinations:
      - country: United States
        mechanism: sccs
        dataCategories:
          - personal_identifiers
  consentMechanisms:
    - opt_in
  collectsChildrensData: false
  usesCookies: true
  usesAutomatedDecisionMaking: false
  conductsDPIA: false
`

func TestValidateInputAcceptsValidDocument(t *testing.T) {
	t.Parallel()

	input, err := ValidateInput([]byte(validInputYAML))
	require.NoError(t, err)

	assert.Equal(t, []domain.Jurisdiction{domain.JurisdictionPIPEDA, domain.JurisdictionGDPR}, input.Jurisdictions)
	assert.Equal(t, "Acme Analytics Inc.", input.OrgProfile.LegalName)
	assert.Equal(t, domain.EntityController, input.OrgProfile.EntityType)
	assert.Equal(t, "privacy@acme.example", input.OrgProfile.DpoContact.Email)
	assert.Nil(t, input.OrgProfile.EuRepresentative)

	dp := input.DataPractices
	assert.Equal(t, []domain.DataCategory{domain.CategoryPersonalIdentifiers, domain.CategoryBehavioral}, dp.DataCategories)
	require.Len(t, dp.ProcessingPurposes, 2)
	assert.Equal(t, domain.PurposeAnalytics, dp.ProcessingPurposes[1].Purpose)
	assert.Equal(t, domain.BasisLegitimateInterest, dp.ProcessingPurposes[1].LegalBasis)
	assert.True(t, dp.ThirdPartySharing.Shares)
	require.Len(t, dp.ThirdPartySharing.Recipients, 1)
	assert.Equal(t, "United States", dp.ThirdPartySharing.Recipients[0].Country)
	assert.True(t, dp.CrossBorderTransfers.Transfers)
	require.Len(t, dp.CrossBorderTransfers.Destinations, 1)
	assert.Equal(t, domain.MechanismSCCs, dp.CrossBorderTransfers.Destinations[0].Mechanism)
	assert.True(t, dp.UsesCookies)
	assert.False(t, dp.CollectsChildrensData)
}

func TestValidateInputRejectsUnknownJurisdiction(t *testing.T) {
	t.Parallel()

	doc := `
jurisdictions:
  - LGPD
orgProfile:
  legalName: Acme
  entityType: controller
  industrySector: Technology
  headquartersCountry: Brazil
  dpoContact:
    title: Privacy Officer
    email: privacy@acme.example
dataPractices:
  dataCategories: [personal_identifiers]
  dataSources: [directly_from_subject]
  processingPurposes:
    - purpose: service_delivery
      legalBasis: contract
  retentionSchedule: []
  thirdPartySharing: {shares: false, sellsData: false, sharesForCrossBehavioral: false}
  crossBorderTransfers: {transfers: false}
  consentMechanisms: [opt_in]
  collectsChildrensData: false
  usesCookies: false
  usesAutomatedDecisionMaking: false
  conductsDPIA: false
`
	_, err := ValidateInput([]byte(doc))
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	assert.Equal(t, "jurisdictions.0", verrs[0].Path)
}

func TestValidateInputReportsMissingFieldsWithDotPaths(t *testing.T) {
	t.Parallel()

	doc := `
jurisdictions: [PIPEDA]
orgProfile:
  legalName: Acme
  entityType: controller
  industrySector: Technology
  headquartersCountry: Canada
  dpoContact:
    title: Privacy Officer
dataPractices:
  dataCategories: [personal_identifiers]
  dataSources: [directly_from_subject]
  processingPurposes:
    - purpose: service_delivery
      legalBasis: contract
  retentionSchedule: []
  thirdPartySharing: {shares: false, sellsData: false, sharesForCrossBehavioral: false}
  crossBorderTransfers: {transfers: false}
  consentMechanisms: [opt_in]
  collectsChildrensData: false
  usesCookies: false
  usesAutomatedDecisionMaking: false
  conductsDPIA: false
`
	_, err := ValidateInput([]byte(doc))
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	assert.Equal(t, "orgProfile.dpoContact", verrs[0].Path)
	assert.Contains(t, err.Error(), "input validation failed")
}

func TestValidateInputRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ValidateInput([]byte("jurisdictions: [PIPEDA\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse input document")
}

func TestLoadInputFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validInputYAML), 0o644))

	input, err := LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Analytics Inc.", input.OrgProfile.LegalName)

	_, err = LoadInput(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input document")
}

func TestPointerToDotPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pointer string
		want    string
	}{
		{"", "(root)"},
		{"/", "(root)"},
		{"/jurisdictions/0", "jurisdictions.0"},
		{"/orgProfile/dpoContact/email", "orgProfile.dpoContact.email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pointerToDotPath(tt.pointer), tt.pointer)
	}
}
