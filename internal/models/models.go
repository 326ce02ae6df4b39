package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

type PullRequestState string

const (
	PullRequestStateOpen   PullRequestState = "open"
	PullRequestStateClosed PullRequestState = "closed"
	PullRequestStateMerged PullRequestState = "merged"
)

// Repository is a tracked external project with its sprint settings.
type Repository struct {
	ID                   uuid.UUID
	OwnerName            string
	RepoName             string
	SprintStartDayOfWeek int
	SprintDurationWeeks  int
	TrackingStartDate    time.Time
}

// Collaborator is a tracker-side user scoped to one repository,
// created lazily the first time its username is seen during sync.
type Collaborator struct {
	ID           uuid.UUID
	RepositoryID uuid.UUID
	UserName     string
}

// TrackedCollaborator marks a collaborator as in scope for reporting.
// An empty tracked set for a repository means everyone is in scope.
type TrackedCollaborator struct {
	ID             uuid.UUID
	RepositoryID   uuid.UUID
	CollaboratorID uuid.UUID
}

type Issue struct {
	ID                     uuid.UUID
	RepositoryID           uuid.UUID
	TrackerNumber          int
	Title                  string
	Body                   string
	State                  IssueState
	AuthorCollaboratorID   uuid.UUID
	AssigneeCollaboratorID *uuid.UUID
	SprintNumber           int
	TrackerCreatedAt       time.Time
	TrackerClosedAt        *time.Time
}

type PullRequest struct {
	ID                   uuid.UUID
	RepositoryID         uuid.UUID
	TrackerNumber        int
	Title                string
	State                PullRequestState
	AuthorCollaboratorID *uuid.UUID
	LinkedIssueID        *uuid.UUID
	TrackerCreatedAt     time.Time
	TrackerMergedAt      *time.Time
}

// CategoryScore is one weighted sub-criterion of an AI-scored axis.
type CategoryScore struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Score        int    `json:"score"`
	MaxScore     int    `json:"max_score"`
	Feedback     string `json:"feedback"`
}

// EvaluationDetails is the stored payload for an AI-scored axis.
type EvaluationDetails struct {
	Categories             []CategoryScore `json:"categories"`
	OverallFeedback        string          `json:"overall_feedback"`
	ImprovementSuggestions []string        `json:"improvement_suggestions"`
}

// Evaluation holds one row per issue. Each axis is nullable and is
// written independently; updating one axis never touches another.
type Evaluation struct {
	ID      uuid.UUID
	IssueID uuid.UUID

	SpeedScore *int
	SpeedGrade *string

	QualityScore   *int
	QualityGrade   *string
	QualityDetails *EvaluationDetails

	ConsistencyScore   *int
	ConsistencyGrade   *string
	ConsistencyDetails *EvaluationDetails
}

type SyncMetadata struct {
	RepositoryID uuid.UUID
	LastSyncAt   time.Time
}
