package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document layout of a persisted ExpenseList. Field names are shared with
// expense files written by earlier versions of the tool.
type (
	expenseJSON struct {
		ID          uint64    `json:"id"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		Amount      int64     `json:"amount"`
	}

	listJSON struct {
		List   []expenseJSON `json:"list"`
		NextID uint64        `json:"next_id"`
	}

	// Pointer fields tell a missing key apart from a zero value on decode.
	expenseInput struct {
		ID          *uint64    `json:"id"`
		Date        *time.Time `json:"date"`
		Description *string    `json:"description"`
		Amount      *int64     `json:"amount"`
	}

	listInput struct {
		List   *[]expenseInput `json:"list"`
		NextID *uint64         `json:"next_id"`
	}
)

// MarshalJSON encodes the full list, including the next identifier.
func (l *ExpenseList) MarshalJSON() ([]byte, error) {
	doc := listJSON{
		List:   make([]expenseJSON, len(l.entries)),
		NextID: l.nextID,
	}
	for i, e := range l.entries {
		doc.List[i] = expenseJSON{
			ID:          e.id,
			Date:        e.date,
			Description: e.description,
			Amount:      e.amount,
		}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the list contents with the decoded document. The
// receiver is left unchanged when the document is malformed or breaks an
// invariant of the list.
func (l *ExpenseList) UnmarshalJSON(data []byte) error {
	var doc listInput
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.List == nil || doc.NextID == nil {
		return fmt.Errorf("%w: missing list or next_id", ErrMalformedDocument)
	}

	entries := make([]Expense, 0, len(*doc.List))
	seen := make(map[uint64]struct{}, len(*doc.List))
	for i, in := range *doc.List {
		if in.ID == nil || in.Date == nil || in.Description == nil || in.Amount == nil {
			return fmt.Errorf("%w: expense %d is missing a field", ErrMalformedDocument, i)
		}
		if _, dup := seen[*in.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrMalformedDocument, *in.ID)
		}
		if *in.ID >= *doc.NextID {
			return fmt.Errorf("%w: id %d not below next_id %d", ErrMalformedDocument, *in.ID, *doc.NextID)
		}
		if *in.Amount < 0 {
			return fmt.Errorf("%w: expense %d: %w", ErrMalformedDocument, *in.ID, ErrNegativeAmount)
		}
		seen[*in.ID] = struct{}{}
		entries = append(entries, Expense{
			id:          *in.ID,
			date:        in.Date.UTC(),
			description: *in.Description,
			amount:      *in.Amount,
		})
	}

	l.entries = entries
	l.nextID = *doc.NextID
	if l.now == nil {
		l.now = time.Now
	}
	return nil
}

// DecodeExpenseList builds a list from its JSON document. No list is returned
// on error.
func DecodeExpenseList(data []byte, opts ...Option) (*ExpenseList, error) {
	l := NewExpenseList(opts...)
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}
