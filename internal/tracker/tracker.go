// Package tracker talks to the issue tracker (GitHub). Listing goes
// through the REST API; linked-PR resolution uses the GraphQL closing
// references connection, which is the tracker's authoritative record of
// "closes #N" links.
package tracker

import (
	"time"
)

// Issue is a tracker issue reduced to the fields sync needs.
// Pull-request-shaped listing entries are filtered out before this type
// is produced.
type Issue struct {
	Number    int
	Title     string
	Body      string
	State     string
	Creator   string
	Assignee  string
	CreatedAt time.Time
	ClosedAt  *time.Time
}

// LinkedPullRequest is a merged pull request that closed an issue.
type LinkedPullRequest struct {
	Number       int
	Title        string
	URL          string
	Body         string
	DiffSummary  string
	ChangedFiles int
	Additions    int
	Deletions    int
	Creator      string
	CreatedAt    time.Time
	MergedAt     time.Time
}
