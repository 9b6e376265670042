package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"expenses/internal/core"
	"expenses/internal/render"
	"expenses/internal/storage"
	"expenses/internal/storage/memory"
)

type harness struct {
	store  *memory.Store
	out    *bytes.Buffer
	runner *Runner
}

func newHarness(t *testing.T, clock core.Clock) *harness {
	t.Helper()
	h := &harness{store: memory.New(), out: &bytes.Buffer{}}
	repo := storage.NewRepository(h.store, storage.WithClock(clock))
	h.runner = NewRunner(repo, render.New(h.out, language.Italian, "€"), h.out, nil)
	return h
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	in, err := ParseIntent(args)
	if err != nil {
		t.Fatalf("ParseIntent(%q): %v", args, err)
	}
	h.out.Reset()
	err = h.runner.Run(context.Background(), in)
	return h.out.String(), err
}

func TestRunScenario(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run(t, "add", "--description", "coffee", "--amount", "5")
	if err != nil || out != "Expense successfully created (ID: 0)\n" {
		t.Fatalf("add coffee: %q err=%v", out, err)
	}
	out, err = h.run(t, "add", "--description", "lunch", "--amount", "12")
	if err != nil || out != "Expense successfully created (ID: 1)\n" {
		t.Fatalf("add lunch: %q err=%v", out, err)
	}

	out, err = h.run(t, "summary")
	if err != nil || out != "Total expenses: 17€\n" {
		t.Fatalf("summary: %q err=%v", out, err)
	}

	out, err = h.run(t, "delete", "--position", "0")
	if err != nil || out != "Expense successfully deleted (ID: 0)\n" {
		t.Fatalf("delete: %q err=%v", out, err)
	}

	out, err = h.run(t, "summary")
	if err != nil || out != "Total expenses: 12€\n" {
		t.Fatalf("summary after delete: %q err=%v", out, err)
	}

	out, err = h.run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "lunch") || !strings.HasSuffix(strings.TrimSpace(lines[1]), "12€") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestRunListByMonth(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 20, 10, 0, 0, 0, time.UTC),
	}
	i := 0
	h := newHarness(t, func() time.Time {
		d := dates[i%len(dates)]
		i++
		return d
	})
	for _, d := range []string{"rent", "gym", "books"} {
		if _, err := h.run(t, "add", "--description", d, "--amount", "10"); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}

	out, err := h.run(t, "list", "--month", "3")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "rent") || !strings.Contains(out, "books") || strings.Contains(out, "gym") {
		t.Fatalf("unexpected March list:\n%s", out)
	}
	if !strings.HasSuffix(out, "Total expenses for March: 20€\n") {
		t.Fatalf("missing month total:\n%s", out)
	}

	out, err = h.run(t, "list", "--month", "7")
	if err != nil || out != "No expenses found\n" {
		t.Fatalf("empty month: %q err=%v", out, err)
	}

	out, err = h.run(t, "summary", "--month", "4")
	if err != nil || out != "Total expenses for April: 10€\n" {
		t.Fatalf("April summary: %q err=%v", out, err)
	}
}

func TestRunReportsErrors(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run(t, "add", "--description", "refund", "--amount", "-2")
	if !errors.Is(err, storage.ErrCreateExpense) || !errors.Is(err, core.ErrNegativeAmount) {
		t.Fatalf("expected create error wrapping negative amount, got %v", err)
	}
	if err.Error() != "fail to create expense: negative amount given" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	_, err = h.run(t, "delete", "--position", "3")
	if !errors.Is(err, storage.ErrDeleteExpense) || !errors.Is(err, core.ErrExpenseNotFound) {
		t.Fatalf("expected delete error wrapping not found, got %v", err)
	}

	h.store.WriteErr = errors.New("read-only file system")
	_, err = h.run(t, "add", "--description", "x", "--amount", "1")
	if !errors.Is(err, storage.ErrWriteExpensesInFile) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunEmptyListAndHelp(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run(t, "list")
	if err != nil || out != "No expenses found\n" {
		t.Fatalf("list: %q err=%v", out, err)
	}
	out, err = h.run(t, "summary")
	if err != nil || out != "Total expenses: 0€\n" {
		t.Fatalf("summary: %q err=%v", out, err)
	}
	out, err = h.run(t, "help")
	if err != nil || out != Usage {
		t.Fatalf("help: %q err=%v", out, err)
	}
}

func TestRunUnknownAction(t *testing.T) {
	h := newHarness(t, nil)
	err := h.runner.Run(context.Background(), Intent{Action: "export"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}
