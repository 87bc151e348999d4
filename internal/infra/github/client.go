// Package github implements the repository gateway on the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v72/github"

	"labelport/internal/domain"
)

// Ensure Client implements domain.RepoGateway.
var _ domain.RepoGateway = (*Client)(nil)

// Client is a RepoGateway for one GitHub repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a gateway for owner/repo. An empty token yields an
// unauthenticated client, which works for reads on public repositories.
func NewClient(token, owner, repo string) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Client{gh: gh, owner: owner, repo: repo}
}

// NewClientWithHTTP creates a gateway using a custom HTTP client and
// base URL. This is useful for testing against a local server. The
// base URL must end with a trailing slash.
func NewClientWithHTTP(httpClient *http.Client, baseURL, owner, repo string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	gh := github.NewClient(httpClient)
	gh.BaseURL = u
	return &Client{gh: gh, owner: owner, repo: repo}, nil
}

// GetPullRequest retrieves a pull request with its body and labels.
func (c *Client) GetPullRequest(ctx context.Context, number int) (*domain.PullRequest, error) {
	pr, resp, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("get pull request #%d: %w", number, asDomainErr(resp, err))
	}
	return &domain.PullRequest{
		Number: number,
		Body:   pr.GetBody(),
		Labels: labelNames(pr.Labels),
	}, nil
}

// GetIssueLabels retrieves the label names of an issue.
func (c *Client) GetIssueLabels(ctx context.Context, number int) ([]string, error) {
	issue, resp, err := c.gh.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("get issue #%d: %w", number, asDomainErr(resp, err))
	}
	return labelNames(issue.Labels), nil
}

// AddLabels adds labels to an issue or pull request in one batched call.
func (c *Client) AddLabels(ctx context.Context, number int, labels []string) error {
	_, resp, err := c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, labels)
	if err != nil {
		return fmt.Errorf("add labels to #%d: %w", number, asDomainErr(resp, err))
	}
	return nil
}

// RemoveLabel removes one label. A label that is already absent is not
// an error.
func (c *Client) RemoveLabel(ctx context.Context, number int, label string) error {
	resp, err := c.gh.Issues.RemoveLabelForIssue(ctx, c.owner, c.repo, number, label)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("remove label %q from #%d: %w", label, number, err)
	}
	return nil
}

// labelNames normalizes the API label objects to plain names. The rest
// of the program never sees the raw shape.
func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if name := l.GetName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// asDomainErr maps a 404 response to domain.ErrNotFound.
func asDomainErr(resp *github.Response, err error) error {
	var ghErr *github.ErrorResponse
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return err
}
