package core

import "time"

// MonthOverview is the filtered view of a single calendar month.
type MonthOverview struct {
	Month    time.Month
	Total    int64
	Expenses []Expense
}

// Summary returns the sum of all amounts. An empty list sums to 0.
func (l *ExpenseList) Summary() int64 {
	return sum(l.entries)
}

// FilterFor returns, in list order, the expenses created in the given UTC
// calendar month regardless of year.
func (l *ExpenseList) FilterFor(month time.Month) []Expense {
	return FilterMonth(l.entries, month)
}

// Overview groups FilterFor with the total of the matching expenses.
func (l *ExpenseList) Overview(month time.Month) MonthOverview {
	matched := l.FilterFor(month)
	return MonthOverview{
		Month:    month,
		Total:    sum(matched),
		Expenses: matched,
	}
}

// FilterMonth keeps the expenses of in whose UTC month equals month.
func FilterMonth(in []Expense, month time.Month) []Expense {
	out := make([]Expense, 0, len(in))
	for _, e := range in {
		if e.date.UTC().Month() == month {
			out = append(out, e)
		}
	}
	return out
}

func sum(in []Expense) int64 {
	var total int64
	for _, e := range in {
		total += e.amount
	}
	return total
}
