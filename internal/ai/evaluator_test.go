package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sprintpulse/internal/ai"

	"github.com/stretchr/testify/require"
)

// chatServer answers every chat completion request with content.
func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newEvaluator(t *testing.T, srv *httptest.Server) *ai.Evaluator {
	t.Helper()

	client := ai.NewChatClient(ai.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	return ai.NewEvaluator(client)
}

const qualityResponse = `{
  "categories": [
    {"category_id": "context_goal", "score": 25, "feedback": "clear goal"},
    {"category_id": "implementation_details", "score": 20, "feedback": "mostly there"},
    {"category_id": "acceptance_criteria", "score": 28, "feedback": "testable"},
    {"category_id": "structure_clarity", "score": 15, "feedback": "readable"}
  ],
  "overall_feedback": "solid issue",
  "improvement_suggestions": ["add rollout notes"]
}`

func TestEvaluator_EvaluateQuality(t *testing.T) {
	srv := chatServer(t, http.StatusOK, qualityResponse)
	defer srv.Close()

	res, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{
		Title: "Add pagination to the issues endpoint",
		Body:  "We need cursor pagination because offset scans get slow.",
	})
	require.NoError(t, err)
	require.Len(t, res.Categories, 4)
	require.Equal(t, 88, res.TotalScore())
	require.Equal(t, "solid issue", res.OverallFeedback)
	require.Equal(t, []string{"add rollout notes"}, res.ImprovementSuggestions)
}

func TestEvaluator_EvaluateQuality_MarkdownFences(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Here is the evaluation:\n```json\n"+qualityResponse+"\n```\nDone.")
	defer srv.Close()

	res, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.NoError(t, err)
	require.Equal(t, 88, res.TotalScore())
}

func TestEvaluator_EvaluateQuality_MissingCategory(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
	  "categories": [
	    {"category_id": "context_goal", "score": 25, "feedback": "ok"}
	  ],
	  "overall_feedback": "incomplete"
	}`)
	defer srv.Close()

	_, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "categories")
}

func TestEvaluator_EvaluateQuality_ScoreOutOfRange(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
	  "categories": [
	    {"category_id": "context_goal", "score": 40, "feedback": "over max"},
	    {"category_id": "implementation_details", "score": 20, "feedback": ""},
	    {"category_id": "acceptance_criteria", "score": 28, "feedback": ""},
	    {"category_id": "structure_clarity", "score": 15, "feedback": ""}
	  ]
	}`)
	defer srv.Close()

	_, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestEvaluator_EvaluateQuality_UnknownCategory(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
	  "categories": [
	    {"category_id": "made_up", "score": 10, "feedback": ""}
	  ]
	}`)
	defer srv.Close()

	_, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown category")
}

func TestEvaluator_EvaluateQuality_Malformed(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "I cannot evaluate this issue.")
	defer srv.Close()

	_, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.Error(t, err)
}

func TestEvaluator_RateLimited(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	_, err := newEvaluator(t, srv).EvaluateQuality(context.Background(), ai.QualityInput{Title: "x"})
	require.ErrorIs(t, err, ai.ErrRateLimited)
}

func TestCriteria_MaxScoresSumTo100(t *testing.T) {
	for name, catalog := range map[string][]ai.Category{
		"quality":     ai.QualityCriteria(),
		"consistency": ai.ConsistencyCriteria(),
	} {
		sum := 0
		for _, c := range catalog {
			sum += c.MaxScore
		}
		require.Equal(t, 100, sum, "catalog %s", name)
	}
}
