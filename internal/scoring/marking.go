// Package scoring turns raw per-subject question counts into score and
// accuracy percentages under a flat or negative marking scheme.
//
// Everything here is a pure function of its inputs. The record store relies
// on that: it recomputes the cached test-level percentages inside the same
// transaction as the write that changed their inputs, and recomputes the
// subject-level percentages on every read.
package scoring

import "strconv"

// Marking is how raw scores are computed for one test.
type Marking struct {
	CorrectPoints float64
	WrongPoints   float64
	Negative      bool
}

// Display renders the scheme the way history lists show it: "+4/-1" when
// wrong answers are penalised, "Flat 4" otherwise.
func (m Marking) Display() string {
	if m.Negative {
		return "+" + formatPoints(m.CorrectPoints) + "/-" + formatPoints(m.WrongPoints)
	}
	return "Flat " + formatPoints(m.CorrectPoints)
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Counts are the raw question counts recorded for one subject.
type Counts struct {
	Total     uint
	Attempted uint
	Correct   uint
}

// Wrong is attempted minus correct, floored at zero.
func Wrong(attempted, correct uint) uint {
	if correct >= attempted {
		return 0
	}
	return attempted - correct
}

// RawScore awards CorrectPoints per correct answer and, under negative
// marking, deducts WrongPoints per wrong one. The result may be negative.
func RawScore(c Counts, m Marking) float64 {
	score := float64(c.Correct) * m.CorrectPoints
	if m.Negative {
		score -= float64(Wrong(c.Attempted, c.Correct)) * m.WrongPoints
	}
	return score
}

// MaxScore is the score for answering every question correctly.
func MaxScore(total uint, m Marking) float64 {
	return float64(total) * m.CorrectPoints
}

// RatioPct returns numerator/denominator as a percentage, or exactly 0 when
// the denominator is not positive.
func RatioPct(numerator, denominator float64) float64 {
	if denominator > 0 {
		return (numerator / denominator) * 100
	}
	return 0
}
