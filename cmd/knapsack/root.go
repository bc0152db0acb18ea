package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/internal/config"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	runID string
	log   logr.Logger
	zl    *zap.Logger
}

// Execute runs the root command, cancelling its context on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), log: logr.Discard()}

	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve 0/1 knapsack instances",
		Long: `knapsack selects a subset of items maximizing total value within a
weight capacity. Exact strategies (dp, bnb, ip) prove optimality; auto picks
between them by instance size and greedy returns a fast approximation.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (overridden by KNAPSACK_* env and flags)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log solver decisions to stderr")

	root.AddCommand(a.solveCmd(), a.strategiesCmd())

	return root
}

// setup builds the zap-backed logger tagged with a fresh run id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := zapcore.InfoLevel
	if a.verbose {
		// zapr maps logr V(n) to zap level -n.
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)
	a.zl = zap.New(core)
	a.runID = uuid.NewString()
	a.log = zapr.NewLogger(a.zl).WithName("knapsack").WithValues("run", a.runID)

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.zl == nil {
		return nil
	}
	// Sync on a console writer may report EINVAL; nothing is buffered here.
	_ = a.zl.Sync()

	return nil
}
