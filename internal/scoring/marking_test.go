package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrongSaturates(t *testing.T) {
	assert.Equal(t, uint(2), Wrong(8, 6))
	assert.Equal(t, uint(0), Wrong(5, 8))
	assert.Equal(t, uint(0), Wrong(0, 0))
	assert.Equal(t, uint(0), Wrong(3, 3))
}

func TestRawScore(t *testing.T) {
	neg := Marking{CorrectPoints: 4, WrongPoints: 1, Negative: true}
	flat := Marking{CorrectPoints: 4, WrongPoints: 1}

	tests := []struct {
		name string
		c    Counts
		m    Marking
		want float64
	}{
		{"negative marking deducts wrong answers", Counts{Total: 10, Attempted: 8, Correct: 6}, neg, 22},
		{"flat marking ignores wrong answers", Counts{Total: 10, Attempted: 8, Correct: 6}, flat, 24},
		{"correct above attempted deducts nothing", Counts{Total: 10, Attempted: 5, Correct: 8}, neg, 32},
		{"score may go below zero", Counts{Total: 10, Attempted: 10, Correct: 0}, neg, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RawScore(tt.c, tt.m))
		})
	}
}

func TestRatioPctZeroDenominator(t *testing.T) {
	for _, x := range []float64{0, 1, -5, 1e9} {
		assert.Equal(t, 0.0, RatioPct(x, 0))
	}
	assert.Equal(t, 0.0, RatioPct(3, -2))
	assert.Equal(t, 75.0, RatioPct(6, 8))
}

func TestMarkingDisplay(t *testing.T) {
	assert.Equal(t, "+4/-1", Marking{CorrectPoints: 4, WrongPoints: 1, Negative: true}.Display())
	assert.Equal(t, "+3/-0.25", Marking{CorrectPoints: 3, WrongPoints: 0.25, Negative: true}.Display())
	assert.Equal(t, "Flat 1", Marking{CorrectPoints: 1, WrongPoints: 1}.Display())
}
