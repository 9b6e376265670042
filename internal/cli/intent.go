package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"expenses/internal/core"
)

type Action string

const (
	ActionAdd     Action = "add"
	ActionList    Action = "list"
	ActionSummary Action = "summary"
	ActionDelete  Action = "delete"
	ActionHelp    Action = "help"
)

// Intent is one validated request from the command line.
type Intent struct {
	Action      Action
	Description string
	Amount      int64
	// Month is 0 when no month filter was given.
	Month    time.Month
	Position int
}

var (
	ErrUnknownAction    = errors.New("the action could not be determined")
	ErrArgumentNotFound = errors.New("the argument could not be found for this action")
	ErrArgumentInvalid  = errors.New("the argument could not be parsed")
)

const Usage = `Usage: expenses <action> [flags]

Actions:
  add --description TEXT --amount N   record an expense
  list [--month 1-12]                 show expenses, optionally for one month
  summary [--month 1-12]              show the total amount
  delete --position N                 delete the expense at zero-based position N
  help                                show this message
`

// ParseIntent resolves the arguments following the program name.
func ParseIntent(args []string) (Intent, error) {
	if len(args) == 0 {
		return Intent{}, fmt.Errorf("%w: please provide an action", ErrUnknownAction)
	}

	action, rest := Action(args[0]), args[1:]
	switch action {
	case ActionAdd:
		return parseAdd(rest)
	case ActionList, ActionSummary:
		return parseMonthFilter(action, rest)
	case ActionDelete:
		return parseDelete(rest)
	case ActionHelp, "-h", "--help":
		return Intent{Action: ActionHelp}, nil
	default:
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownAction, args[0])
	}
}

func parseAdd(args []string) (Intent, error) {
	fs := newFlagSet(ActionAdd)
	description := fs.String("description", "", "expense description")
	amount := fs.String("amount", "", "expense amount in whole units")
	if err := parseFlags(fs, args); err != nil {
		return Intent{}, err
	}
	if err := require(fs, "description", "amount"); err != nil {
		return Intent{}, err
	}

	value, err := core.ParseAmount(*amount)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: --amount %q", ErrArgumentInvalid, *amount)
	}
	return Intent{Action: ActionAdd, Description: *description, Amount: value}, nil
}

func parseMonthFilter(action Action, args []string) (Intent, error) {
	fs := newFlagSet(action)
	month := fs.String("month", "", "calendar month 1-12")
	if err := parseFlags(fs, args); err != nil {
		return Intent{}, err
	}

	in := Intent{Action: action}
	if isSet(fs, "month") {
		m, err := strconv.Atoi(*month)
		if err != nil || m < 1 || m > 12 {
			return Intent{}, fmt.Errorf("%w: --month %q must be between 1 and 12", ErrArgumentInvalid, *month)
		}
		in.Month = time.Month(m)
	}
	return in, nil
}

func parseDelete(args []string) (Intent, error) {
	fs := newFlagSet(ActionDelete)
	position := fs.String("position", "", "zero-based position of the expense")
	if err := parseFlags(fs, args); err != nil {
		return Intent{}, err
	}
	if err := require(fs, "position"); err != nil {
		return Intent{}, err
	}

	p, err := strconv.Atoi(*position)
	if err != nil || p < 0 {
		return Intent{}, fmt.Errorf("%w: --position %q", ErrArgumentInvalid, *position)
	}
	return Intent{Action: ActionDelete, Position: p}, nil
}

func newFlagSet(action Action) *flag.FlagSet {
	fs := flag.NewFlagSet(string(action), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrArgumentInvalid, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrArgumentInvalid, fs.Arg(0))
	}
	return nil
}

func require(fs *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if !isSet(fs, name) {
			return fmt.Errorf("%w: --%s", ErrArgumentNotFound, name)
		}
	}
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
