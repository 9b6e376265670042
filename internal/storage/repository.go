package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"expenses/internal/core"
	"expenses/internal/log"
)

// Repository loads the expense list from a BlobStore, applies one use case
// and writes the full list back.
//
// There is no locking: two processes running load/save cycles on the same
// document at once race, and the last writer wins.
type Repository struct {
	store  BlobStore
	logger *log.Logger
	clock  core.Clock
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for storage events.
func WithLogger(logger *log.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger.WithComponent(log.ComponentStorage)
		}
	}
}

// WithClock sets the time source given to every loaded list.
func WithClock(c core.Clock) Option {
	return func(r *Repository) {
		r.clock = c
	}
}

func NewRepository(store BlobStore, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the backing document. A missing document is created empty and an
// empty document yields an empty list, so a first run needs no init step.
func (r *Repository) Load(ctx context.Context) (*core.ExpenseList, error) {
	exists, err := r.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if !exists {
		r.logger.InfoContext(ctx, "Expense file not found, creating a new one", log.FieldOperation, log.OpLoad)
		if err := r.store.WriteAll(ctx, nil); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteExpensesInFile, err)
		}
		return r.newList(), nil
	}

	data, err := r.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return r.decode(ctx, data)
}

// ReadExpenses loads the list for read-only views.
func (r *Repository) ReadExpenses(ctx context.Context) (*core.ExpenseList, error) {
	return r.Load(ctx)
}

// Save replaces the backing document with the encoded list.
func (r *Repository) Save(ctx context.Context, list *core.ExpenseList) error {
	data, err := encode(list)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to encode expenses",
			log.NewFields().WithOperation(log.OpSave).WithErrorType(log.ErrorTypeEncode).WithError(err).ToSlice()...)
		return err
	}
	if err := r.store.WriteAll(ctx, data); err != nil {
		r.logger.ErrorContext(ctx, "Failed to write expenses",
			log.NewFields().WithOperation(log.OpSave).WithErrorType(log.ErrorTypeIO).WithError(err).ToSlice()...)
		return fmt.Errorf("%w: %w", ErrWriteExpensesInFile, err)
	}
	r.logger.DebugContext(ctx, "Expenses saved",
		log.FieldCount, list.Len(),
		log.FieldNextID, list.NextID(),
		log.FieldBytes, len(data))
	return nil
}

// CreateExpense appends a new expense and persists the list. It returns the
// stored expense so the caller can report the assigned identifier.
func (r *Repository) CreateExpense(ctx context.Context, description string, amount int64) (core.Expense, error) {
	list, err := r.Load(ctx)
	if err != nil {
		return core.Expense{}, err
	}

	if _, err := list.Append(description, amount); err != nil {
		return core.Expense{}, fmt.Errorf("%w: %w", ErrCreateExpense, err)
	}
	created, err := list.Last()
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %w", ErrCreateExpense, err)
	}

	if err := r.Save(ctx, list); err != nil {
		return core.Expense{}, err
	}

	r.logger.InfoContext(ctx, "Expense successfully created",
		log.NewFields().
			WithOperation(log.OpCreate).
			WithExpense(created.ID(), created.Description(), created.Amount()).
			ToSlice()...)
	return created, nil
}

// DeleteExpense removes the expense at the zero-based position and persists
// the list. An out-of-range position fails and nothing is written.
func (r *Repository) DeleteExpense(ctx context.Context, position int) (core.Expense, error) {
	list, err := r.Load(ctx)
	if err != nil {
		return core.Expense{}, err
	}

	removed, err := list.Remove(position)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w at position %d: %w", ErrDeleteExpense, position, err)
	}

	if err := r.Save(ctx, list); err != nil {
		return core.Expense{}, err
	}

	r.logger.InfoContext(ctx, "Expense deleted",
		log.NewFields().
			WithOperation(log.OpDelete).
			WithExpense(removed.ID(), removed.Description(), removed.Amount()).
			ToSlice()...)
	return removed, nil
}

func (r *Repository) newList() *core.ExpenseList {
	return core.NewExpenseList(core.WithClock(r.clock))
}

func (r *Repository) decode(ctx context.Context, data []byte) (*core.ExpenseList, error) {
	if len(data) == 0 {
		return r.newList(), nil
	}
	list, err := core.DecodeExpenseList(data, core.WithClock(r.clock))
	if err != nil {
		r.logger.WarnContext(ctx, "Expense file is not a valid expense document",
			log.NewFields().WithOperation(log.OpLoad).WithErrorType(log.ErrorTypeDecode).WithError(err).ToSlice()...)
		return nil, fmt.Errorf("%w: %w", ErrDecodeFile, err)
	}
	r.logger.DebugContext(ctx, "Expenses loaded", log.FieldCount, list.Len(), log.FieldNextID, list.NextID())
	return list, nil
}

func encode(list *core.ExpenseList) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("%w: nil expense list", ErrEncodeExpenses)
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExpenses, err)
	}
	return data, nil
}
