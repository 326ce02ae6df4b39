package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"sprintpulse/internal/tracker"
)

type QualityInput struct {
	Title    string
	Body     string
	Assignee string
}

type ConsistencyInput struct {
	IssueTitle string
	IssueBody  string
}

// CategoryScore is one scored category from an evaluation response.
type CategoryScore struct {
	ID       string
	Name     string
	Score    int
	MaxScore int
	Feedback string
}

// Result is the parsed, validated outcome of one evaluation call.
type Result struct {
	Categories             []CategoryScore
	OverallFeedback        string
	ImprovementSuggestions []string
}

// TotalScore sums the category scores. The catalogs are built so the
// maxes sum to 100, which makes the total directly gradable.
func (r *Result) TotalScore() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Score
	}
	return total
}

// Evaluator runs quality and consistency evaluations over a chat client.
type Evaluator struct {
	client *ChatClient
}

func NewEvaluator(client *ChatClient) *Evaluator {
	return &Evaluator{client: client}
}

// EvaluateQuality scores how well one issue is written.
func (e *Evaluator) EvaluateQuality(ctx context.Context, in QualityInput) (*Result, error) {
	criteria := QualityCriteria()

	var b strings.Builder
	b.WriteString("Evaluate the quality of the following issue description.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", in.Title)
	fmt.Fprintf(&b, "Assignee: %s\n", valueOrNone(in.Assignee))
	fmt.Fprintf(&b, "Body:\n%s\n\n", truncate(in.Body, 6000))
	writeCriteria(&b, criteria)
	writeResponseContract(&b)

	messages := []Message{
		{Role: "system", Content: "You are a strict engineering-process reviewer. You score issue descriptions against fixed criteria. Reply with pure JSON, no markdown."},
		{Role: "user", Content: b.String()},
	}

	response, err := e.client.Chat(ctx, messages, 0.2, 1500)
	if err != nil {
		return nil, err
	}

	return parseResult(response, criteria)
}

// EvaluateConsistency scores how well the merged pull requests fulfil
// the issue they closed.
func (e *Evaluator) EvaluateConsistency(ctx context.Context, in ConsistencyInput, prs []*tracker.LinkedPullRequest) (*Result, error) {
	criteria := ConsistencyCriteria()

	var b strings.Builder
	b.WriteString("Evaluate how consistently the merged pull requests below implement the issue they closed.\n\n")
	fmt.Fprintf(&b, "Issue title: %s\n", in.IssueTitle)
	fmt.Fprintf(&b, "Issue body:\n%s\n\n", truncate(in.IssueBody, 4000))

	b.WriteString("Merged pull requests:\n")
	for _, pr := range prs {
		fmt.Fprintf(&b, "- #%d %s (%s)\n", pr.Number, pr.Title, pr.DiffSummary)
		if body := strings.TrimSpace(pr.Body); body != "" {
			fmt.Fprintf(&b, "  Description: %s\n", truncate(body, 1500))
		}
	}
	b.WriteString("\n")
	writeCriteria(&b, criteria)
	writeResponseContract(&b)

	messages := []Message{
		{Role: "system", Content: "You are a strict engineering-process reviewer. You score issue/PR alignment against fixed criteria. Reply with pure JSON, no markdown."},
		{Role: "user", Content: b.String()},
	}

	response, err := e.client.Chat(ctx, messages, 0.2, 1500)
	if err != nil {
		return nil, err
	}

	return parseResult(response, criteria)
}

func writeCriteria(b *strings.Builder, criteria []Category) {
	b.WriteString("Score each category from 0 to its max:\n")
	for _, c := range criteria {
		fmt.Fprintf(b, "- %s (id: %s, max: %d)\n", c.Name, c.ID, c.MaxScore)
	}
	b.WriteString("\n")
}

func writeResponseContract(b *strings.Builder) {
	b.WriteString(`Return JSON in exactly this shape (no markdown fences):
{
  "categories": [
    {"category_id": "...", "score": 0, "feedback": "one or two sentences"}
  ],
  "overall_feedback": "short paragraph",
  "improvement_suggestions": ["concrete suggestion"]
}
`)
}

type rawResult struct {
	Categories []struct {
		CategoryID string `json:"category_id"`
		Score      int    `json:"score"`
		Feedback   string `json:"feedback"`
	} `json:"categories"`
	OverallFeedback        string   `json:"overall_feedback"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// parseResult validates the model's response against the criteria
// catalog: every category must be present exactly once with a score in
// range. A malformed response is an error the caller counts per item.
func parseResult(response string, criteria []Category) (*Result, error) {
	var raw rawResult
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &raw); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}

	byID := make(map[string]Category, len(criteria))
	for _, c := range criteria {
		byID[c.ID] = c
	}

	result := &Result{
		OverallFeedback:        raw.OverallFeedback,
		ImprovementSuggestions: raw.ImprovementSuggestions,
	}

	seen := make(map[string]bool, len(criteria))
	for _, rc := range raw.Categories {
		c, ok := byID[rc.CategoryID]
		if !ok {
			return nil, fmt.Errorf("unknown category %q in response", rc.CategoryID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate category %q in response", rc.CategoryID)
		}
		if rc.Score < 0 || rc.Score > c.MaxScore {
			return nil, fmt.Errorf("category %q score %d out of range [0,%d]", c.ID, rc.Score, c.MaxScore)
		}

		seen[c.ID] = true
		result.Categories = append(result.Categories, CategoryScore{
			ID:       c.ID,
			Name:     c.Name,
			Score:    rc.Score,
			MaxScore: c.MaxScore,
			Feedback: rc.Feedback,
		})
	}

	if len(seen) != len(criteria) {
		return nil, fmt.Errorf("response covered %d of %d categories", len(seen), len(criteria))
	}

	return result, nil
}

// cleanJSONResponse strips markdown fences and surrounding prose some
// models wrap around the JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.Contains(response, "```") {
		start := strings.Index(response, "```json")
		if start == -1 {
			start = strings.Index(response, "```")
		}
		if start != -1 {
			if nl := strings.Index(response[start:], "\n"); nl != -1 {
				response = response[start+nl+1:]
			}
		}
		if end := strings.LastIndex(response, "```"); end != -1 {
			response = response[:end]
		}
	}

	response = strings.TrimSpace(response)
	if idx := strings.Index(response, "{"); idx > 0 {
		response = response[idx:]
	}
	if idx := strings.LastIndex(response, "}"); idx != -1 && idx < len(response)-1 {
		response = response[:idx+1]
	}

	return strings.TrimSpace(response)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back off to a rune boundary so the cut never splits a
	// multi-byte character.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n... (truncated)"
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
