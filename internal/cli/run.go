package cli

import (
	"context"
	"fmt"
	"io"

	"expenses/internal/log"
	"expenses/internal/render"
	"expenses/internal/storage"
)

// Runner executes intents against the repository and reports results through
// the renderer. It never exits the process; errors go back to the caller.
type Runner struct {
	repo   *storage.Repository
	out    *render.Renderer
	usage  io.Writer
	logger *log.Logger
}

func NewRunner(repo *storage.Repository, out *render.Renderer, usage io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{
		repo:   repo,
		out:    out,
		usage:  usage,
		logger: logger.WithComponent(log.ComponentCLI),
	}
}

func (r *Runner) Run(ctx context.Context, in Intent) error {
	r.logger.DebugContext(ctx, "Running action",
		log.FieldOperation, string(in.Action),
		log.FieldMonth, int(in.Month),
		log.FieldPosition, in.Position)

	switch in.Action {
	case ActionAdd:
		created, err := r.repo.CreateExpense(ctx, in.Description, in.Amount)
		if err != nil {
			return err
		}
		return r.out.Created(created)

	case ActionList:
		list, err := r.repo.ReadExpenses(ctx)
		if err != nil {
			return err
		}
		if in.Month == 0 {
			return r.out.Table(list.Expenses())
		}
		overview := list.Overview(in.Month)
		if err := r.out.Table(overview.Expenses); err != nil {
			return err
		}
		if len(overview.Expenses) == 0 {
			return nil
		}
		return r.out.MonthSummary(overview)

	case ActionSummary:
		list, err := r.repo.ReadExpenses(ctx)
		if err != nil {
			return err
		}
		if in.Month != 0 {
			return r.out.MonthSummary(list.Overview(in.Month))
		}
		return r.out.Summary(list.Summary())

	case ActionDelete:
		removed, err := r.repo.DeleteExpense(ctx, in.Position)
		if err != nil {
			return err
		}
		return r.out.Deleted(removed)

	case ActionHelp:
		_, err := io.WriteString(r.usage, Usage)
		return err

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
	}
}
