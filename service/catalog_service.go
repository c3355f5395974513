package service

import (
	"github.com/pkg/errors"

	"financing-agent/domain"
	"financing-agent/repository"
)

// ErrInvalidRange is returned for credit score ranges outside 300-850 or
// with min above max.
var ErrInvalidRange = errors.New("invalid credit score range (must be 300-850, min <= max)")

type CatalogService struct {
	repo repository.CaseRepository
}

func NewCatalogService(repo repository.CaseRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Cases() []domain.Case {
	return s.repo.All()
}

func (s *CatalogService) Case(id int) (domain.Case, error) {
	return s.repo.GetByID(id)
}

// CasesByIDs resolves ids in order. Unknown ids are skipped.
func (s *CatalogService) CasesByIDs(ids []int) []domain.Case {
	cases := []domain.Case{}
	for _, id := range ids {
		c, err := s.repo.GetByID(id)
		if err != nil {
			continue
		}
		cases = append(cases, c)
	}
	return cases
}

func (s *CatalogService) CasesByDeviceType(deviceType string) []domain.Case {
	return s.repo.ByDeviceType(deviceType)
}

func (s *CatalogService) CasesByCreditScore(min, max int) ([]domain.Case, error) {
	if min < MinCreditScore || max > MaxCreditScore || min > max {
		return nil, errors.Wrapf(ErrInvalidRange, "%d-%d", min, max)
	}
	return s.repo.ByCreditScoreRange(min, max), nil
}

// SplitCases returns the default train/test split: the first trainSize
// cases for training and the rest for testing.
func (s *CatalogService) SplitCases(trainSize int) (train, test []domain.Case) {
	all := s.repo.All()
	if trainSize < 0 {
		trainSize = 0
	}
	if trainSize > len(all) {
		trainSize = len(all)
	}
	return all[:trainSize], all[trainSize:]
}

type TrainingInput struct {
	Device   domain.Device            `json:"device"`
	Customer domain.Customer          `json:"customer"`
	Scenario string                   `json:"scenario"`
	Options  []domain.FinancingOption `json:"options"`
	Context  domain.MarketContext     `json:"context"`
}

type TrainingOutput struct {
	Recommendation  string   `json:"recommendation"`
	Reasoning       string   `json:"reasoning"`
	DecisionFactors []string `json:"decisionFactors"`
}

type TrainingExample struct {
	Input          TrainingInput  `json:"input"`
	ExpectedOutput TrainingOutput `json:"expectedOutput"`
}

type TrainingData struct {
	TotalCases int               `json:"totalCases"`
	Cases      []TrainingExample `json:"cases"`
}

// ExportTrainingData reshapes the catalog into input/expected-output pairs.
func (s *CatalogService) ExportTrainingData() TrainingData {
	cases := s.repo.All()
	examples := make([]TrainingExample, 0, len(cases))
	for _, c := range cases {
		examples = append(examples, TrainingExample{
			Input: TrainingInput{
				Device:   c.Device,
				Customer: c.Customer,
				Scenario: c.UserScenario,
				Options:  c.Options,
				Context:  c.MarketContext,
			},
			ExpectedOutput: TrainingOutput{
				Recommendation:  c.OptimalChoice,
				Reasoning:       c.Reasoning,
				DecisionFactors: c.DecisionFactors,
			},
		})
	}
	return TrainingData{TotalCases: len(cases), Cases: examples}
}

// CategorizeCreditScore returns the credit band of score.
func CategorizeCreditScore(score int) string {
	switch {
	case score < 580:
		return "poor"
	case score < 670:
		return "fair"
	case score < 740:
		return "good"
	case score < 800:
		return "very-good"
	default:
		return "excellent"
	}
}

// CategorizeDevice returns the price band of a device.
func CategorizeDevice(price float64) string {
	switch {
	case price < 300:
		return "budget"
	case price < 800:
		return "mid-range"
	case price < 1500:
		return "premium"
	default:
		return "flagship"
	}
}
