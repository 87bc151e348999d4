// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"labelport/internal/domain"
)

// issueFetchLimit bounds concurrent issue-label fetches per PR.
const issueFetchLimit = 4

// ReconcilePRInput contains the parameters for reconciling one PR.
type ReconcilePRInput struct {
	Number int  // Pull request number (required)
	DryRun bool // Compute the diff but skip mutations
}

// ReconcilePROutput contains the result of one reconciliation.
// Fields are ordered to minimize memory padding.
type ReconcilePROutput struct {
	Added   []string // Labels added to the PR
	Removed []string // Labels removed from the PR
	Issues  []int    // Issue numbers referenced by the PR body
}

// ReconcilePR is the use case for reconciling one pull request's
// triage labels against the issues it closes.
type ReconcilePR struct {
	gateway    domain.RepoGateway
	logger     *slog.Logger
	owner      string
	repo       string
	categories domain.Categories
}

// NewReconcilePR creates a new ReconcilePR use case.
func NewReconcilePR(gateway domain.RepoGateway, categories domain.Categories, owner, repo string, logger *slog.Logger) *ReconcilePR {
	return &ReconcilePR{
		gateway:    gateway,
		categories: categories,
		owner:      owner,
		repo:       repo,
		logger:     logger,
	}
}

// Execute reconciles the labels of one pull request.
func (uc *ReconcilePR) Execute(ctx context.Context, in ReconcilePRInput) (*ReconcilePROutput, error) {
	pr, err := uc.gateway.GetPullRequest(ctx, in.Number)
	if err != nil {
		return nil, err
	}

	issues := domain.FindReferencedIssues(pr.Body, uc.owner, uc.repo)
	union, err := uc.fetchLabelUnion(ctx, issues)
	if err != nil {
		return nil, err
	}

	own := domain.NewLabelSet(pr.Labels...)
	res := domain.ResolveAll(uc.categories, union, own)
	diff := domain.Reconcile(pr.Labels, uc.categories, res)

	out := &ReconcilePROutput{
		Added:   diff.Adds,
		Removed: diff.Removes,
		Issues:  issues,
	}

	if diff.Empty() {
		uc.logger.Debug("labels already up to date", "pr", in.Number)
		return out, nil
	}
	if in.DryRun {
		uc.logger.Info("dry run, skipping mutations", "pr", in.Number, "adds", diff.Adds, "removes", diff.Removes)
		return out, nil
	}

	if err := uc.applyDiff(ctx, in.Number, diff); err != nil {
		return nil, err
	}
	uc.logger.Info("labels reconciled", "pr", in.Number, "adds", diff.Adds, "removes", diff.Removes)
	return out, nil
}

// fetchLabelUnion fetches each referenced issue's labels concurrently
// and unions the results. Order does not matter since union is
// commutative.
func (uc *ReconcilePR) fetchLabelUnion(ctx context.Context, issues []int) (domain.LabelSet, error) {
	union := make(domain.LabelSet)
	if len(issues) == 0 {
		return union, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(issueFetchLimit)
	for _, number := range issues {
		g.Go(func() error {
			labels, err := uc.gateway.GetIssueLabels(ctx, number)
			if err != nil {
				return err
			}
			mu.Lock()
			union.Merge(domain.NewLabelSet(labels...))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return union, nil
}

// applyDiff performs the label mutations. Every removal and the one
// batched addition are each attempted exactly once; failures are
// collected and joined so a partial failure never hides the rest.
func (uc *ReconcilePR) applyDiff(ctx context.Context, number int, diff domain.LabelDiff) error {
	var errs []error
	for _, label := range diff.Removes {
		if err := uc.gateway.RemoveLabel(ctx, number, label); err != nil {
			errs = append(errs, err)
		}
	}
	if len(diff.Adds) > 0 {
		if err := uc.gateway.AddLabels(ctx, number, diff.Adds); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("apply label diff to #%d: %w", number, errors.Join(errs...))
	}
	return nil
}
