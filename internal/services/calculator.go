package services

import (
	"fmt"
	"time"

	"liquido-calc/internal/currency"
	"liquido-calc/internal/logger"
	"liquido-calc/internal/models"
)

// CalculatorService turns the text of the amount field into display values
type CalculatorService struct {
	repository *models.ResultRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewCalculatorService creates a calculator backed by repo
func NewCalculatorService(repo *models.ResultRepository, log logger.Logger) *CalculatorService {
	return &CalculatorService{
		repository: repo,
		logger:     log,
		now:        time.Now,
	}
}

// Calculate parses input, derives base and final and formats both as reais.
// The returned error wraps models.ErrEmptyInput or models.ErrInvalidInput;
// nothing is stored when it is non-nil.
func (cs *CalculatorService) Calculate(input string) (models.Result, error) {
	x, err := models.ParseAmount(input)
	if err != nil {
		return models.Result{}, fmt.Errorf("parse amount: %w", err)
	}

	calc := models.Calculate(x)
	result := models.Result{
		Calculation: calc,
		BaseText:    currency.FormatBRL(calc.Base),
		FinalText:   currency.FormatBRL(calc.Final),
		ComputedAt:  cs.now(),
	}
	cs.repository.Store(result)

	cs.logger.Debug("Calculator", "amount calculated", map[string]interface{}{
		"input": calc.Input,
		"base":  calc.Base,
		"final": calc.Final,
	})

	return result, nil
}

// RecordRejected notes an input the user could not get calculated
func (cs *CalculatorService) RecordRejected() {
	cs.repository.RecordRejected()
}

// Reset forgets the current result
func (cs *CalculatorService) Reset() {
	cs.repository.Reset()
}

// Stats reports what happened during this session
func (cs *CalculatorService) Stats() models.SessionStats {
	return cs.repository.Stats()
}
