package repository

import (
	"strings"

	"github.com/pkg/errors"

	"financing-agent/domain"
)

// CaseRepositoryMemory is an in-memory implementation of CaseRepository.
// The slice is never mutated after construction; every accessor hands out
// copies.
type CaseRepositoryMemory struct {
	data []domain.Case
}

// NewCaseRepositoryMemory creates a repository over the given cases.
func NewCaseRepositoryMemory(cases []domain.Case) *CaseRepositoryMemory {
	data := make([]domain.Case, len(cases))
	for i, c := range cases {
		data[i] = cloneCase(c)
	}
	return &CaseRepositoryMemory{data: data}
}

// NewCatalogRepository creates a repository over the built-in reference cases.
func NewCatalogRepository() *CaseRepositoryMemory {
	return NewCaseRepositoryMemory(referenceCases())
}

func (r *CaseRepositoryMemory) All() []domain.Case {
	return r.filter(func(domain.Case) bool { return true })
}

func (r *CaseRepositoryMemory) GetByID(id int) (domain.Case, error) {
	for _, c := range r.data {
		if c.ID == id {
			return cloneCase(c), nil
		}
	}
	return domain.Case{}, errors.Wrapf(domain.ErrNotFound, "case with ID %d", id)
}

// ByDeviceType matches the device type case-insensitively.
func (r *CaseRepositoryMemory) ByDeviceType(deviceType string) []domain.Case {
	return r.filter(func(c domain.Case) bool {
		return strings.EqualFold(c.Device.Type, deviceType)
	})
}

// ByCreditScoreRange returns cases whose customer score lies in [min, max].
func (r *CaseRepositoryMemory) ByCreditScoreRange(min, max int) []domain.Case {
	return r.filter(func(c domain.Case) bool {
		return c.Customer.CreditScore >= min && c.Customer.CreditScore <= max
	})
}

func (r *CaseRepositoryMemory) filter(keep func(domain.Case) bool) []domain.Case {
	result := []domain.Case{}
	for _, c := range r.data {
		if keep(c) {
			result = append(result, cloneCase(c))
		}
	}
	return result
}

func cloneCase(c domain.Case) domain.Case {
	c.Options = append([]domain.FinancingOption(nil), c.Options...)
	c.DecisionFactors = append([]string(nil), c.DecisionFactors...)
	c.MarketContext.CompetitorOffers = append([]string(nil), c.MarketContext.CompetitorOffers...)
	return c
}
