package scoring

// SubjectStats are the derived percentages for one subject.
type SubjectStats struct {
	AttemptsPct float64
	AccuracyPct float64
	ScorePct    float64
}

// Subject derives a single subject's percentages.
func Subject(c Counts, m Marking) SubjectStats {
	return SubjectStats{
		AttemptsPct: RatioPct(float64(c.Attempted), float64(c.Total)),
		AccuracyPct: RatioPct(float64(c.Correct), float64(c.Attempted)),
		ScorePct:    RatioPct(RawScore(c, m), MaxScore(c.Total, m)),
	}
}

// Summary is the result of folding every subject of a test.
type Summary struct {
	// Subjects is index-aligned with the counts passed to Aggregate.
	Subjects []SubjectStats

	RawScore  float64
	MaxScore  float64
	Correct   uint64
	Attempted uint64

	ScorePct    float64
	AccuracyPct float64
}

// Aggregate derives per-subject stats and the grand totals for a test.
// Grand percentages are ratios of sums, not averages of subject percentages.
func Aggregate(m Marking, counts []Counts) Summary {
	sum := Summary{Subjects: make([]SubjectStats, 0, len(counts))}
	for _, c := range counts {
		sum.Subjects = append(sum.Subjects, Subject(c, m))
		sum.RawScore += RawScore(c, m)
		sum.MaxScore += MaxScore(c.Total, m)
		sum.Correct += uint64(c.Correct)
		sum.Attempted += uint64(c.Attempted)
	}
	sum.ScorePct = RatioPct(sum.RawScore, sum.MaxScore)
	sum.AccuracyPct = RatioPct(float64(sum.Correct), float64(sum.Attempted))
	return sum
}
