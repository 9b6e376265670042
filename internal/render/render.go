// Package render writes expenses and confirmations for a terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"expenses/internal/core"
)

// DateLayout is the day-first layout used in tables.
const DateLayout = "02/01/2006 15:04:05"

type Renderer struct {
	w        io.Writer
	printer  *message.Printer
	currency string
}

// New returns a renderer formatting amounts for tag, suffixed with currency.
func New(w io.Writer, tag language.Tag, currency string) *Renderer {
	return &Renderer{
		w:        w,
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Amount formats v with the locale's digit grouping and the currency symbol.
func (r *Renderer) Amount(v int64) string {
	return r.printer.Sprintf("%d", v) + r.currency
}

// Table writes one row per expense under an ID/Date/Description/Amount header.
func (r *Renderer) Table(expenses []core.Expense) error {
	if len(expenses) == 0 {
		_, err := fmt.Fprintln(r.w, "No expenses found")
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDate\tDescription\tAmount")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.ID(),
			e.Date().UTC().Format(DateLayout),
			e.Description(),
			r.Amount(e.Amount()))
	}
	return tw.Flush()
}

// Created confirms a new expense by its identifier.
func (r *Renderer) Created(e core.Expense) error {
	_, err := fmt.Fprintf(r.w, "Expense successfully created (ID: %d)\n", e.ID())
	return err
}

// Deleted confirms a removed expense by its identifier.
func (r *Renderer) Deleted(e core.Expense) error {
	_, err := fmt.Fprintf(r.w, "Expense successfully deleted (ID: %d)\n", e.ID())
	return err
}

// Summary writes the total of all expenses.
func (r *Renderer) Summary(total int64) error {
	_, err := fmt.Fprintf(r.w, "Total expenses: %s\n", r.Amount(total))
	return err
}

// MonthSummary writes the total of a single month.
func (r *Renderer) MonthSummary(o core.MonthOverview) error {
	_, err := fmt.Fprintf(r.w, "Total expenses for %s: %s\n", o.Month, r.Amount(o.Total))
	return err
}
