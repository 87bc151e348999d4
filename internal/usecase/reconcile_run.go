package usecase

import (
	"context"
	"log/slog"

	"labelport/internal/domain"
)

// ReconcileRunInput contains the parameters for one reconciliation run.
type ReconcileRunInput struct {
	PRs    []int // Explicit PR numbers; empty = derive from the trigger event
	DryRun bool
}

// PRResult is the outcome for one pull request in a run.
// Fields are ordered to minimize memory padding.
type PRResult struct {
	Err     error
	Added   []string
	Removed []string
	Number  int
}

// ReconcileRunOutput contains the per-PR results of a run.
type ReconcileRunOutput struct {
	Results []PRResult
}

// Failed reports whether any PR in the run failed.
func (o *ReconcileRunOutput) Failed() bool {
	for _, r := range o.Results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// ReconcileRun is the use case for reconciling one or more pull
// requests. Each PR is an isolated unit of work; one failure never
// aborts the others.
type ReconcileRun struct {
	reconcile *ReconcilePR
	events    domain.EventSource
	logger    *slog.Logger
}

// NewReconcileRun creates a new ReconcileRun use case.
func NewReconcileRun(reconcile *ReconcilePR, events domain.EventSource, logger *slog.Logger) *ReconcileRun {
	return &ReconcileRun{
		reconcile: reconcile,
		events:    events,
		logger:    logger,
	}
}

// Execute selects the PRs to process and reconciles each in turn.
// Per-PR failures are recorded in the output, not returned; the error
// return covers only selection itself.
func (uc *ReconcileRun) Execute(ctx context.Context, in ReconcileRunInput) (*ReconcileRunOutput, error) {
	numbers := in.PRs
	if len(numbers) == 0 {
		number, err := uc.events.PullRequestNumber()
		if err != nil {
			return nil, err
		}
		numbers = []int{number}
	}

	out := &ReconcileRunOutput{Results: make([]PRResult, 0, len(numbers))}
	for _, number := range numbers {
		res := PRResult{Number: number}
		prOut, err := uc.reconcile.Execute(ctx, ReconcilePRInput{Number: number, DryRun: in.DryRun})
		if err != nil {
			uc.logger.Error("reconciliation failed", "pr", number, "error", err)
			res.Err = err
		} else {
			res.Added = prOut.Added
			res.Removed = prOut.Removed
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
