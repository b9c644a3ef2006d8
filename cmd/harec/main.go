// Command harec is the CLI driver around internal/check (SPEC_FULL.md §6
// "EXTERNAL INTERFACES"). go/types itself is a library called by `go
// build`/`go vet`, not a binary, so this entry point has no teacher
// equivalent to imitate directly; its cobra subcommand shape is grounded
// on termfx-morfx's demo CLI (rootCmd plus verb subcommands, each a
// plain Run func) and vovakirdan-surge's toml+color+cobra combination.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sovenok-Hacker/harec/internal/astjson"
	"github.com/Sovenok-Hacker/harec/internal/check"
	"github.com/Sovenok-Hacker/harec/internal/config"
	"github.com/Sovenok-Hacker/harec/internal/diag"
	"github.com/Sovenok-Hacker/harec/internal/itype"
)

// version is set at build time via -ldflags; "dev" otherwise.
var version = "dev"

var (
	flagTrace      bool
	flagConfigPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "harec",
		Short:         "A semantic checker for a small systems language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "log scan/check pass progress")
	root.PersistentFlags().StringVar(&flagConfigPath, "config", "harec.toml", "path to the project config file")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <ast.json>",
		Short: "Check a JSON-encoded AST unit and print ok or the first diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the harec version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runCheck(path string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	trace := cfg.Trace || flagTrace

	logger, err := newLogger(trace)
	if err != nil {
		return err
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	unit, err := astjson.Decode(f)
	if err != nil {
		return err
	}

	sink := diag.NewSink(logger, trace)
	store := itype.NewStore()
	check.Check(unit, store, sink)

	fmt.Println("ok")
	return nil
}

func newLogger(trace bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if trace {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}
