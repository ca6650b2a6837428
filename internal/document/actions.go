package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kk-code-lab/mdtable/internal/table"
	textutil "github.com/kk-code-lab/mdtable/internal/textutil"
	"github.com/sirupsen/logrus"
)

// ErrNoTable is returned when there is no table to act on.
var ErrNoTable = errors.New("no table under the caret")

// Action rewrites the text of a table.
type Action struct {
	Name string
	Run  func(text string) string
}

var (
	// Format re-pads the table and never shrinks a column.
	Format = Action{Name: "format", Run: func(text string) string { return table.Format(text, false) }}
	// Reformat re-pads the table and fits every column to its content.
	Reformat = Action{Name: "reformat", Run: func(text string) string { return table.Format(text, true) }}
	// Convert replaces the table with an HTML table.
	Convert = Action{Name: "convert", Run: table.ConvertToHTML}
)

// Actions lists the available actions in menu order.
var Actions = []Action{Format, Reformat, Convert}

// ActionByName looks an action up by name.
func ActionByName(name string) (Action, error) {
	for _, a := range Actions {
		if a.Name == name {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("unknown action %q", name)
}

// Options tune how an action sees the table text.
type Options struct {
	// WholeDocument acts on the entire document instead of the table under the caret.
	WholeDocument bool
	// TabWidth expands tabs to this many columns before the action runs. Zero keeps tabs.
	TabWidth int
}

// Result describes one planned or applied action.
type Result struct {
	Action  string
	Range   Range
	Before  string
	After   string
	Changed bool
}

// Plan runs action on the table selected by opts without touching doc.
func Plan(doc Document, action Action, opts Options) (Result, error) {
	var (
		r  Range
		ok bool
	)
	if opts.WholeDocument {
		r, ok = TrimmedRange(doc)
	} else {
		r, ok = TableRange(doc)
	}
	if !ok {
		return Result{}, ErrNoTable
	}

	before := doc.Text(r)
	input := before
	if opts.TabWidth > 0 {
		input = textutil.ExpandTabs(input, opts.TabWidth)
	}
	after := action.Run(input)
	if strings.Contains(before, "\r\n") {
		after = strings.ReplaceAll(after, "\n", "\r\n")
	}

	return Result{
		Action:  action.Name,
		Range:   r,
		Before:  before,
		After:   after,
		Changed: before != after,
	}, nil
}

// Commit writes a planned result into doc.
func Commit(doc Document, res Result) error {
	if !res.Changed {
		return nil
	}
	if err := doc.Replace(res.Range, res.After); err != nil {
		return fmt.Errorf("%s table: %w", res.Action, err)
	}
	return nil
}

// Apply plans action and writes the result into doc in one step.
func Apply(doc Document, action Action, opts Options, log logrus.FieldLogger) (Result, error) {
	res, err := Plan(doc, action, opts)
	if err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{
		"action":  res.Action,
		"start":   res.Range.Start,
		"end":     res.Range.End,
		"changed": res.Changed,
	}).Debug("table action planned")

	if err := Commit(doc, res); err != nil {
		return Result{}, err
	}
	return res, nil
}
