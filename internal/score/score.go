// Package score holds the five-level grade value model shared by every
// evaluation axis and the deterministic speed scoring.
package score

import (
	"fmt"
	"math"
	"time"
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// rank orders grades best to worst: A > B > C > D > E.
var rank = map[Grade]int{
	GradeA: 5,
	GradeB: 4,
	GradeC: 3,
	GradeD: 2,
	GradeE: 1,
}

// ForScore maps an integer score in [0,100] onto a grade:
// A=81-100, B=61-80, C=41-60, D=21-40, E=0-20.
// An out-of-range score is a programmer error and is rejected, not clamped.
func ForScore(score int) (Grade, error) {
	if score < 0 || score > 100 {
		return "", fmt.Errorf("score %d out of range [0,100]", score)
	}

	switch {
	case score >= 81:
		return GradeA, nil
	case score >= 61:
		return GradeB, nil
	case score >= 41:
		return GradeC, nil
	case score >= 21:
		return GradeD, nil
	default:
		return GradeE, nil
	}
}

// Compare returns a negative value if g is worse than other, zero if
// equal, positive if better.
func (g Grade) Compare(other Grade) int {
	return rank[g] - rank[other]
}

func (g Grade) Valid() bool {
	_, ok := rank[g]
	return ok
}

// Average averages raw scores (rounding half away from zero) and grades
// the rounded result. Grades are never averaged directly.
func Average(scores []int) (int, Grade, error) {
	if len(scores) == 0 {
		return 0, "", fmt.Errorf("no scores to average")
	}

	sum := 0
	for _, s := range scores {
		if s < 0 || s > 100 {
			return 0, "", fmt.Errorf("score %d out of range [0,100]", s)
		}
		sum += s
	}

	avg := int(math.Round(float64(sum) / float64(len(scores))))
	grade, err := ForScore(avg)
	if err != nil {
		return 0, "", err
	}

	return avg, grade, nil
}

// SpeedForDuration scores how fast an issue was closed, by whole days:
// within 2 days scores 100 (A), 3 days 80 (B), 4 days 60 (C),
// 5 days 40 (D), anything slower 20 (E).
func SpeedForDuration(createdAt, closedAt time.Time) (int, Grade) {
	days := closedAt.Sub(createdAt).Hours() / 24

	switch {
	case days <= 2:
		return 100, GradeA
	case days <= 3:
		return 80, GradeB
	case days <= 4:
		return 60, GradeC
	case days <= 5:
		return 40, GradeD
	default:
		return 20, GradeE
	}
}
