package repository

import "financing-agent/domain"

// CaseRepository gives read-only access to reference financing cases.
type CaseRepository interface {
	All() []domain.Case
	GetByID(id int) (domain.Case, error)
	ByDeviceType(deviceType string) []domain.Case
	ByCreditScoreRange(min, max int) []domain.Case
}
