package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/kk-code-lab/mdtable/internal/document"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type tableCommandParams struct {
	line  int
	write bool
	diff  bool
	trim  bool
}

func addTableFlags(cmd *cobra.Command, params *tableCommandParams) {
	cmd.Flags().IntVarP(&params.line, "line", "l", 0, "act on the table under this 1-based line instead of the whole input")
	cmd.Flags().BoolVarP(&params.write, "write", "w", false, "overwrite the file instead of printing the result")
	cmd.Flags().BoolVarP(&params.diff, "diff", "d", false, "print a diff of the table instead of the result")
}

func newFormatCommand(env *environment) *cobra.Command {
	params := &tableCommandParams{}
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Align a table, keeping existing column widths",
		Long: `Align a table, keeping existing column widths.

Columns grow to fit their widest cell but never shrink below the width they
already occupy. Pass --trim (or set trim = true in the config) to fit every
column to its content instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := document.Format
			if params.trim || (!cmd.Flags().Changed("trim") && env.cfg.Trim) {
				action = document.Reformat
			}
			return runTableAction(env, action, params, args)
		},
	}
	addTableFlags(cmd, params)
	cmd.Flags().BoolVar(&params.trim, "trim", false, "fit columns to their content")
	return cmd
}

func newReformatCommand(env *environment) *cobra.Command {
	params := &tableCommandParams{}
	cmd := &cobra.Command{
		Use:   "reformat [file]",
		Short: "Align a table, fitting every column to its content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableAction(env, document.Reformat, params, args)
		},
	}
	addTableFlags(cmd, params)
	return cmd
}

func newConvertCommand(env *environment) *cobra.Command {
	params := &tableCommandParams{}
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a table into an HTML table",
		Long: `Convert a table into an HTML table.

Rows above the separator row become <th> cells, rows below it <td> cells.
Right and center alignment from the separator row become align attributes and
merged cells (|text||) become colspan attributes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableAction(env, document.Convert, params, args)
		},
	}
	addTableFlags(cmd, params)
	return cmd
}

// input is a document read from a file or stdin.
type input struct {
	buf  *document.Buffer
	enc  document.Encoding
	path string
}

func loadInput(env *environment, args []string) (input, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(env.stdin)
		if err != nil {
			return input{}, fmt.Errorf("read stdin: %w", err)
		}
		text, enc, err := document.Decode(content)
		if err != nil {
			return input{}, fmt.Errorf("stdin: %w", err)
		}
		return input{buf: document.NewBuffer(text), enc: enc}, nil
	}

	buf, enc, err := document.ReadFile(args[0])
	if err != nil {
		return input{}, err
	}
	return input{buf: buf, enc: enc, path: args[0]}, nil
}

func (params *tableCommandParams) options(env *environment, in input) (document.Options, error) {
	opts := document.Options{
		WholeDocument: params.line == 0,
		TabWidth:      env.cfg.EffectiveTabWidth(),
	}
	if params.line < 0 {
		return opts, fmt.Errorf("--line must be positive, got %d", params.line)
	}
	if params.line > 0 {
		if err := in.buf.SetCaretLine(params.line - 1); err != nil {
			return opts, fmt.Errorf("--line %d: %w", params.line, err)
		}
	}
	return opts, nil
}

func runTableAction(env *environment, action document.Action, params *tableCommandParams, args []string) error {
	if params.write && params.diff {
		return errors.New("--write and --diff cannot be combined")
	}
	in, err := loadInput(env, args)
	if err != nil {
		return err
	}
	if params.write && in.path == "" {
		return errors.New("--write needs a file argument")
	}
	opts, err := params.options(env, in)
	if err != nil {
		return err
	}

	if params.diff {
		res, err := document.Plan(in.buf, action, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(env.stdout, lineDiff(res.Before, res.After))
		return err
	}

	res, err := document.Apply(in.buf, action, opts, env.log)
	if err != nil {
		return err
	}
	if params.write {
		if !res.Changed {
			env.log.WithField("file", in.path).Debug("table already formatted")
			return nil
		}
		if err := document.WriteFile(in.path, in.buf, in.enc); err != nil {
			return err
		}
		env.log.WithFields(logrus.Fields{"file": in.path, "action": action.Name}).Info("table updated")
		return nil
	}
	_, err = io.WriteString(env.stdout, in.buf.String())
	return err
}
