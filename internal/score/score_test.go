package score_test

import (
	"testing"
	"time"

	"sprintpulse/internal/score"

	"github.com/stretchr/testify/require"
)

func TestForScore(t *testing.T) {
	tests := []struct {
		score int
		want  score.Grade
	}{
		{100, score.GradeA},
		{81, score.GradeA},
		{80, score.GradeB},
		{61, score.GradeB},
		{60, score.GradeC},
		{41, score.GradeC},
		{40, score.GradeD},
		{21, score.GradeD},
		{20, score.GradeE},
		{0, score.GradeE},
	}

	for _, tt := range tests {
		grade, err := score.ForScore(tt.score)
		require.NoError(t, err)
		require.Equal(t, tt.want, grade, "score %d", tt.score)
	}
}

func TestForScore_OutOfRange(t *testing.T) {
	_, err := score.ForScore(-1)
	require.Error(t, err)

	_, err = score.ForScore(101)
	require.Error(t, err)
}

func TestGrade_Compare(t *testing.T) {
	require.Positive(t, score.GradeA.Compare(score.GradeB))
	require.Negative(t, score.GradeE.Compare(score.GradeD))
	require.Zero(t, score.GradeC.Compare(score.GradeC))
}

func TestAverage(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		avg, grade, err := score.Average([]int{80, 81})
		require.NoError(t, err)
		require.Equal(t, 81, avg)
		require.Equal(t, score.GradeA, grade)
	})

	t.Run("single score", func(t *testing.T) {
		avg, grade, err := score.Average([]int{60})
		require.NoError(t, err)
		require.Equal(t, 60, avg)
		require.Equal(t, score.GradeC, grade)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := score.Average(nil)
		require.Error(t, err)
	})

	t.Run("out of range score", func(t *testing.T) {
		_, _, err := score.Average([]int{50, 120})
		require.Error(t, err)
	})
}

func TestSpeedForDuration(t *testing.T) {
	createdAt := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		closed    time.Duration
		wantScore int
		wantGrade score.Grade
	}{
		{"closed within 2 days", 30 * time.Hour, 100, score.GradeA},
		{"exactly 2 days", 48 * time.Hour, 100, score.GradeA},
		{"closed within 3 days", 60 * time.Hour, 80, score.GradeB},
		{"closed within 4 days", 90 * time.Hour, 60, score.GradeC},
		{"closed within 5 days", 100 * time.Hour, 40, score.GradeD},
		{"slower than 5 days", 121 * time.Hour, 20, score.GradeE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, g := score.SpeedForDuration(createdAt, createdAt.Add(tt.closed))
			require.Equal(t, tt.wantScore, s)
			require.Equal(t, tt.wantGrade, g)
		})
	}
}
