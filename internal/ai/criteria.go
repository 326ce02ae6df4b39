package ai

// Category is one weighted sub-criterion of an evaluation axis. The max
// scores of each axis's catalog sum to 100, so the axis total is the
// plain sum of category scores.
type Category struct {
	ID       string
	Name     string
	MaxScore int
}

// QualityCriteria scores how well an issue is written.
func QualityCriteria() []Category {
	return []Category{
		{ID: "context_goal", Name: "Context & Goal", MaxScore: 25},
		{ID: "implementation_details", Name: "Implementation Details", MaxScore: 25},
		{ID: "acceptance_criteria", Name: "Acceptance Criteria", MaxScore: 30},
		{ID: "structure_clarity", Name: "Structure & Clarity", MaxScore: 20},
	}
}

// ConsistencyCriteria scores how well the merged PRs match the issue.
func ConsistencyCriteria() []Category {
	return []Category{
		{ID: "issue_evaluability", Name: "Issue Evaluability", MaxScore: 20},
		{ID: "requirement_coverage", Name: "Requirement Coverage", MaxScore: 30},
		{ID: "scope_appropriateness", Name: "Scope Appropriateness", MaxScore: 20},
		{ID: "acceptance_criteria_achievement", Name: "Acceptance Criteria Achievement", MaxScore: 20},
		{ID: "pr_description_clarity", Name: "PR Description Clarity", MaxScore: 10},
	}
}
