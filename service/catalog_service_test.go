package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financing-agent/domain"
	"financing-agent/repository"
)

func newCatalog() *CatalogService {
	return NewCatalogService(repository.NewCatalogRepository())
}

func TestCatalogService_Case(t *testing.T) {
	catalog := newCatalog()

	c, err := catalog.Case(5)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", c.Device.Type)

	_, err = catalog.Case(42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCatalogService_CasesByIDs_SkipsUnknown(t *testing.T) {
	cases := newCatalog().CasesByIDs([]int{8, 42, 1})

	require.Len(t, cases, 2)
	assert.Equal(t, 8, cases[0].ID)
	assert.Equal(t, 1, cases[1].ID)
}

func TestCatalogService_CasesByCreditScore(t *testing.T) {
	catalog := newCatalog()

	cases, err := catalog.CasesByCreditScore(700, 850)
	require.NoError(t, err)

	ids := []int{}
	for _, c := range cases {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{1, 3, 6, 7}, ids)

	// Bounds are inclusive.
	cases, err = catalog.CasesByCreditScore(580, 580)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, 4, cases[0].ID)
}

func TestCatalogService_CasesByCreditScore_InvalidRange(t *testing.T) {
	catalog := newCatalog()

	for _, r := range [][2]int{{200, 700}, {600, 900}, {750, 700}} {
		_, err := catalog.CasesByCreditScore(r[0], r[1])
		assert.True(t, errors.Is(err, ErrInvalidRange), "range %v", r)
	}
}

func TestCatalogService_CasesByDeviceType(t *testing.T) {
	catalog := newCatalog()

	assert.Len(t, catalog.CasesByDeviceType("Smartphone"), 3)
	assert.Len(t, catalog.CasesByDeviceType("tablet"), 2)
	assert.Empty(t, catalog.CasesByDeviceType("Desktop"))
}

func TestCatalogService_SplitCases(t *testing.T) {
	catalog := newCatalog()

	train, test := catalog.SplitCases(6)
	assert.Len(t, train, 6)
	require.Len(t, test, 2)
	assert.Equal(t, 7, test[0].ID)

	train, test = catalog.SplitCases(20)
	assert.Len(t, train, 8)
	assert.Empty(t, test)

	train, test = catalog.SplitCases(-1)
	assert.Empty(t, train)
	assert.Len(t, test, 8)
}

func TestCatalogService_ExportTrainingData(t *testing.T) {
	data := newCatalog().ExportTrainingData()

	assert.Equal(t, 8, data.TotalCases)
	require.Len(t, data.Cases, 8)

	first := data.Cases[0]
	assert.Equal(t, "OPT-1B", first.ExpectedOutput.Recommendation)
	assert.Equal(t, "iPhone 15 Pro Max", first.Input.Device.Model)
	assert.Len(t, first.Input.Options, 3)
	assert.NotEmpty(t, first.ExpectedOutput.DecisionFactors)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, "poor", CategorizeCreditScore(550))
	assert.Equal(t, "fair", CategorizeCreditScore(650))
	assert.Equal(t, "good", CategorizeCreditScore(720))
	assert.Equal(t, "very-good", CategorizeCreditScore(780))
	assert.Equal(t, "excellent", CategorizeCreditScore(800))

	assert.Equal(t, "budget", CategorizeDevice(149))
	assert.Equal(t, "mid-range", CategorizeDevice(449))
	assert.Equal(t, "premium", CategorizeDevice(1199))
	assert.Equal(t, "flagship", CategorizeDevice(3499))
}
