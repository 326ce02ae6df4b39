package tracker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// GitHubClient implements issue listing and linked-PR resolution
// against the GitHub API.
type GitHubClient struct {
	rest     *github.Client
	graphql  *githubv4.Client
	pageSize int
}

func NewGitHubClient(token string, pageSize int) *GitHubClient {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	return &GitHubClient{
		rest:     github.NewClient(hc),
		graphql:  githubv4.NewClient(hc),
		pageSize: pageSize,
	}
}

// ListIssues lists the repository's issues, all of them when since is
// nil, otherwise only those updated after since. The GitHub issue
// listing also returns pull requests; those are dropped here. Pages are
// fetched until one comes back shorter than the page size.
func (c *GitHubClient) ListIssues(ctx context.Context, owner, repo string, since *time.Time) ([]*Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:     "all",
		Sort:      "created",
		Direction: "asc",
		ListOptions: github.ListOptions{
			PerPage: c.pageSize,
		},
	}
	if since != nil {
		opts.Since = *since
	}

	var issues []*Issue
	for page := 1; ; page++ {
		opts.Page = page

		batch, _, err := c.rest.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list issues %s/%s page %d: %w", owner, repo, page, err)
		}

		for _, gh := range batch {
			if gh.IsPullRequest() {
				continue
			}
			issues = append(issues, convertIssue(gh))
		}

		if len(batch) < c.pageSize {
			break
		}
	}

	return issues, nil
}

func convertIssue(gh *github.Issue) *Issue {
	var closedAt *time.Time
	if gh.ClosedAt != nil {
		t := gh.ClosedAt.Time
		closedAt = &t
	}

	return &Issue{
		Number:    gh.GetNumber(),
		Title:     gh.GetTitle(),
		Body:      gh.GetBody(),
		State:     gh.GetState(),
		Creator:   gh.GetUser().GetLogin(),
		Assignee:  gh.GetAssignee().GetLogin(),
		CreatedAt: gh.GetCreatedAt().Time,
		ClosedAt:  closedAt,
	}
}

// ListLinkedMergedPullRequests returns the merged pull requests that
// closed the given issue, via the GraphQL closing references connection.
func (c *GitHubClient) ListLinkedMergedPullRequests(ctx context.Context, owner, repo string, issueNumber int) ([]*LinkedPullRequest, error) {
	var query struct {
		Repository struct {
			Issue struct {
				ClosedByPullRequestsReferences struct {
					Nodes []struct {
						Number       githubv4.Int
						Title        githubv4.String
						URL          githubv4.URI `graphql:"url"`
						Body         githubv4.String
						Additions    githubv4.Int
						Deletions    githubv4.Int
						ChangedFiles githubv4.Int
						Merged       githubv4.Boolean
						CreatedAt    githubv4.DateTime
						MergedAt     *githubv4.DateTime
						Author       struct {
							Login githubv4.String
						}
					}
				} `graphql:"closedByPullRequestsReferences(first: 20)"`
			} `graphql:"issue(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(issueNumber),
	}

	if err := c.graphql.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("query closing PRs for %s/%s#%d: %w", owner, repo, issueNumber, err)
	}

	var prs []*LinkedPullRequest
	for _, node := range query.Repository.Issue.ClosedByPullRequestsReferences.Nodes {
		if !bool(node.Merged) || node.MergedAt == nil {
			continue
		}

		prs = append(prs, &LinkedPullRequest{
			Number: int(node.Number),
			Title:  string(node.Title),
			URL:    node.URL.String(),
			Body:   string(node.Body),
			DiffSummary: fmt.Sprintf("%d files changed, +%d -%d",
				int(node.ChangedFiles), int(node.Additions), int(node.Deletions)),
			ChangedFiles: int(node.ChangedFiles),
			Additions:    int(node.Additions),
			Deletions:    int(node.Deletions),
			Creator:      string(node.Author.Login),
			CreatedAt:    node.CreatedAt.Time,
			MergedAt:     node.MergedAt.Time,
		})
	}

	return prs, nil
}
