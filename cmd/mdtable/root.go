package main

import (
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtable/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// environment carries the process streams and collaborators the commands use,
// so tests can swap them.
type environment struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	getenv    func(string) string
	newScreen func() (tcell.Screen, error)

	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

func newEnvironment(stdin io.Reader, stdout, stderr io.Writer) *environment {
	return &environment{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		getenv:    os.Getenv,
		newScreen: tcell.NewScreen,
	}
}

// setup loads the config and builds the logger once flags are parsed.
func (env *environment) setup() error {
	cfg, err := config.Load(env.configPath)
	if err != nil {
		return err
	}
	env.cfg = cfg

	log := logrus.New()
	log.SetOutput(env.stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if env.verbose || cfg.Debug || env.getenv("MDTABLE_DEBUG") == "1" {
		log.SetLevel(logrus.DebugLevel)
	}
	env.log = log
	log.WithField("config", env.configPath).Debug("configuration loaded")
	return nil
}

func newRootCommand(env *environment) *cobra.Command {
	root := &cobra.Command{
		Use:   "mdtable",
		Short: "Align and convert Markdown pipe tables",
		Long: `Align and convert Markdown pipe tables.

mdtable re-pads the cells of a pipe table so every border lines up, counting
wide East-Asian characters as two columns, or turns the table into an HTML
<table> that keeps the column alignment.

Without a file argument the table is read from stdin. With --line only the
table under that line is touched; otherwise the whole input is the table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup()
		},
	}
	root.SetIn(env.stdin)
	root.SetOut(env.stdout)
	root.SetErr(env.stderr)

	root.PersistentFlags().StringVar(&env.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mdtable/config.toml)")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newFormatCommand(env),
		newReformatCommand(env),
		newConvertCommand(env),
		newPreviewCommand(env),
	)
	return root
}
