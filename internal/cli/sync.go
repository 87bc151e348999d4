package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"labelport/internal/app"
	"labelport/internal/domain"
	"labelport/internal/infra/config"
	"labelport/internal/infra/gitremote"
	"labelport/internal/usecase"
)

// errRunFailed signals at least one PR failed; details were already printed.
var errRunFailed = errors.New("one or more pull requests failed to reconcile")

// newSyncCommand creates the sync command that runs the reconciliation.
func newSyncCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Repo   string
		Token  string
		Config string
		PRs    []int
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile PR labels against the issues they close",
		Long: `Reconcile pull request labels against the issues they close.

Examples:
  # Reconcile the PR from the triggering event (CI)
  labelport sync

  # Reconcile explicit PRs against a repository
  labelport sync --repo octo/widgets --pr 17 --pr 21

  # Show the diff without touching anything
  labelport sync --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := c.ConfigLoader
			if opts.Config != "" {
				loader = loader.WithRepoFile(opts.Config)
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			owner, repo, err := resolveRepository(c, opts.Repo)
			if err != nil {
				return err
			}

			token := opts.Token
			if token == "" {
				token = c.Events.Token()
			}
			if token == "" && !opts.DryRun {
				return domain.ErrNoToken
			}

			prs := opts.PRs
			if len(prs) == 0 {
				prs = cfg.PRs
			}

			gateway := c.NewGateway(token, owner, repo)
			reconcile := usecase.NewReconcilePR(gateway, cfg.Categories(), owner, repo, c.Logger)
			run := usecase.NewReconcileRun(reconcile, c.Events, c.Logger)

			out, err := run.Execute(cmd.Context(), usecase.ReconcileRunInput{
				PRs:    prs,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return err
			}

			printRunSummary(cmd.OutOrStdout(), out, opts.DryRun)
			if out.Failed() {
				return errRunFailed
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&opts.PRs, "pr", nil, "Pull request number to reconcile (can specify multiple)")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository in owner/name form (default: from environment or git remote)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "API token (default: GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Repository config file (default: .github/"+config.RepoFileName+")")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Compute and print the diff without applying it")

	return cmd
}

// resolveRepository picks the target repository: flag, then environment,
// then the origin remote of the local checkout.
func resolveRepository(c *app.Container, flag string) (owner, repo string, err error) {
	if flag != "" {
		owner, repo, ok := strings.Cut(flag, "/")
		if !ok || owner == "" || repo == "" {
			return "", "", fmt.Errorf("--repo %q: %w", flag, domain.ErrInvalidRepository)
		}
		return owner, repo, nil
	}
	owner, repo, err = c.Events.Repository()
	if err == nil {
		return owner, repo, nil
	}
	if !errors.Is(err, domain.ErrNoRepository) {
		return "", "", err
	}
	return gitremote.OwnerRepo(c.Cwd)
}

// printRunSummary writes one line per processed PR.
func printRunSummary(w io.Writer, out *usecase.ReconcileRunOutput, dryRun bool) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	prefix := ""
	if dryRun {
		prefix = gray("[dry-run] ")
	}
	for _, r := range out.Results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%s#%d: %s %v\n", prefix, r.Number, red("failed:"), r.Err)
		case len(r.Added) == 0 && len(r.Removed) == 0:
			fmt.Fprintf(w, "%s#%d: %s\n", prefix, r.Number, gray("up to date"))
		default:
			var parts []string
			if len(r.Added) > 0 {
				parts = append(parts, green("+"+strings.Join(r.Added, " +")))
			}
			if len(r.Removed) > 0 {
				parts = append(parts, red("-"+strings.Join(r.Removed, " -")))
			}
			fmt.Fprintf(w, "%s#%d: %s %s\n", prefix, r.Number,
				strings.Join(parts, " "),
				gray(fmt.Sprintf("(%d added, %d removed)", len(r.Added), len(r.Removed))))
		}
	}
}
