package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantBase  float64
		wantFinal float64
	}{
		{"hundred", 100, 2200, 1540},
		{"zero", 0, 0, 0},
		{"one", 1, 22, 15.4},
		{"fraction", 2.5, 55, 38.5},
		{"keeps sub-cent precision", 0.0125, 0.275, 0.1925},
		{"tiny", 0.0003, 0.0066, 0.00462},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Calculate(tt.x)
			assert.Equal(t, tt.x, c.Input)
			assert.InDelta(t, tt.wantBase, c.Base, 1e-9)
			assert.InDelta(t, tt.wantFinal, c.Final, 1e-9)
		})
	}
}

func TestResultRepository(t *testing.T) {
	repo := NewResultRepository()
	assert.Nil(t, repo.Last())

	repo.Store(Result{Calculation: Calculate(100), BaseText: "R$ 2.200,00", FinalText: "R$ 1.540,00"})
	repo.RecordRejected()

	last := repo.Last()
	if assert.NotNil(t, last) {
		assert.Equal(t, "R$ 2.200,00", last.BaseText)
	}

	// Last hands out a copy
	last.BaseText = "changed"
	assert.Equal(t, "R$ 2.200,00", repo.Last().BaseText)

	repo.Reset()
	assert.Nil(t, repo.Last())

	stats := repo.Stats()
	assert.Equal(t, 1, stats.Calculations)
	assert.Equal(t, 1, stats.Rejected)
	assert.Nil(t, stats.LastResult)
}
