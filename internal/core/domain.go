package core

import (
	"errors"
	"time"
)

type (
	// Clock returns the current time. Expenses are stamped with its UTC value.
	Clock func() time.Time

	// Option configures an ExpenseList.
	Option func(*ExpenseList)

	// Expense is a single recorded spending event. It is immutable once created.
	Expense struct {
		id          uint64
		date        time.Time
		description string
		amount      int64
	}

	// ExpenseList is the ordered collection of expenses plus the counter used
	// to assign the next identifier.
	ExpenseList struct {
		entries []Expense
		nextID  uint64
		now     Clock
	}
)

var (
	ErrNegativeAmount    = errors.New("negative amount given")
	ErrExpenseNotFound   = errors.New("the expense was not found at the specified index")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrMalformedDocument = errors.New("malformed expense document")
)

// WithClock overrides the time source used when appending expenses.
func WithClock(c Clock) Option {
	return func(l *ExpenseList) {
		if c != nil {
			l.now = c
		}
	}
}

// NewExpenseList returns an empty list whose next identifier is 0.
func NewExpenseList(opts ...Option) *ExpenseList {
	l := &ExpenseList{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID returns the identifier assigned by the owning list.
func (e Expense) ID() uint64 { return e.id }

// Date returns the UTC creation time.
func (e Expense) Date() time.Time { return e.date }

func (e Expense) Description() string { return e.description }

func (e Expense) Amount() int64 { return e.amount }

// Append records a new expense at the end of the list. A negative amount is
// rejected and leaves the list untouched.
func (l *ExpenseList) Append(description string, amount int64) (Expense, error) {
	if amount < 0 {
		return Expense{}, ErrNegativeAmount
	}
	e := Expense{
		id:          l.nextID,
		date:        l.now().UTC(),
		description: description,
		amount:      amount,
	}
	l.entries = append(l.entries, e)
	l.nextID++
	return e, nil
}

// First returns the oldest expense.
func (l *ExpenseList) First() (Expense, error) {
	return l.Get(0)
}

// Last returns the most recently appended expense.
func (l *ExpenseList) Last() (Expense, error) {
	return l.Get(len(l.entries) - 1)
}

// Get returns the expense at the zero-based position.
func (l *ExpenseList) Get(position int) (Expense, error) {
	if position < 0 || position >= len(l.entries) {
		return Expense{}, ErrExpenseNotFound
	}
	return l.entries[position], nil
}

// Remove deletes the expense at position and shifts the following entries
// down by one. Identifiers are never renumbered.
func (l *ExpenseList) Remove(position int) (Expense, error) {
	removed, err := l.Get(position)
	if err != nil {
		return Expense{}, err
	}
	l.entries = append(l.entries[:position], l.entries[position+1:]...)
	return removed, nil
}

func (l *ExpenseList) IsEmpty() bool { return len(l.entries) == 0 }

func (l *ExpenseList) Len() int { return len(l.entries) }

// NextID returns the identifier the next successful Append will assign.
func (l *ExpenseList) NextID() uint64 { return l.nextID }

// Expenses returns a copy of all entries in list order.
func (l *ExpenseList) Expenses() []Expense {
	return append([]Expense(nil), l.entries...)
}
