package main

import (
	"fmt"

	"github.com/kk-code-lab/mdtable/internal/document"
	"github.com/kk-code-lab/mdtable/internal/ui/preview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type previewCommandParams struct {
	line   int
	action string
}

func newPreviewCommand(env *environment) *cobra.Command {
	params := &previewCommandParams{}
	cmd := &cobra.Command{
		Use:   "preview file",
		Short: "Show a table action before applying it to a file",
		Long: `Show a table action before applying it to a file.

The table under --line is shown before and after the action. Press y or Enter
to write the result to the file, q, n or Esc to leave the file untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(env, params, args[0])
		},
	}
	cmd.Flags().IntVarP(&params.line, "line", "l", 0, "1-based line inside the table (default: whole file)")
	cmd.Flags().StringVarP(&params.action, "action", "a", document.Format.Name, "action to preview: format, reformat or convert")
	return cmd
}

func runPreview(env *environment, params *previewCommandParams, path string) error {
	action, err := document.ActionByName(params.action)
	if err != nil {
		return err
	}
	in, err := loadInput(env, []string{path})
	if err != nil {
		return err
	}
	tableParams := tableCommandParams{line: params.line}
	opts, err := tableParams.options(env, in)
	if err != nil {
		return err
	}
	res, err := document.Plan(in.buf, action, opts)
	if err != nil {
		return err
	}

	screen, err := env.newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	accepted := preview.New(screen, res).Run()
	screen.Fini()

	if !accepted {
		env.log.WithField("file", path).Debug("preview cancelled")
		return nil
	}
	if err := document.Commit(in.buf, res); err != nil {
		return err
	}
	if !res.Changed {
		return nil
	}
	if err := document.WriteFile(path, in.buf, in.enc); err != nil {
		return err
	}
	env.log.WithFields(logrus.Fields{"file": path, "action": action.Name}).Info("table updated")
	return nil
}
