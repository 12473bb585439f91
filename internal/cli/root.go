// Package cli implements the tickloop command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/dshills/tickloop/internal/config"
	"github.com/dshills/tickloop/internal/renderer/backend"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// env holds the process surroundings the commands touch, so tests can
// replace them.
type env struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	newBackend func() (backend.Backend, error)
	// notify relays termination signals to c until the returned stop is called.
	notify func(c chan<- os.Signal) (stop func())
}

func defaultEnv() env {
	return env{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: func() bool { return xterm.IsTerminal(int(os.Stdout.Fd())) },
		newBackend: func() (backend.Backend, error) {
			t, err := backend.NewTerminal()
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		notify: func(c chan<- os.Signal) func() {
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			return func() { signal.Stop(c) }
		},
	}
}

// Execute runs the command line and returns the process exit code.
func Execute(info BuildInfo) int {
	e := defaultEnv()
	if err := newRootCmd(info, e).Execute(); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(info BuildInfo, e env) *cobra.Command {
	root := &cobra.Command{
		Use:   "tickloop",
		Short: "tickloop - a reactive terminal UI engine demo",
		Long: "tickloop shows a splash screen while the saved palette loads, then runs\n" +
			"the swatch demo. Pick colors with the mouse; q or escape quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !e.isTerminal() {
				return errNotTerminal
			}
			return runDemo(cmd, e)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "Path to configuration file (default "+config.DefaultPath()+")")
	pf.Duration("tick-rate", config.DefaultTickRate, "Idle wait between loop phases")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.String("log-file", "", "Write logs to this file")

	root.AddCommand(newConfigCmd(), newVersionCmd(info))
	return root
}

// configPath returns the --config value or the default location.
func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}
