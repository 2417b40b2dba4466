// Command tensorsym inspects tensor symmetry declarations.
//
//	tensorsym check   tensors.yaml    # validate and report redundant generators
//	tensorsym group   tensors.yaml    # print group order (and elements with -e)
//	tensorsym diffids tensors.yaml    # print the diff-id partition per tensor
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tensorsym/declare"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// app carries flags and the logger shared by every subcommand.
type app struct {
	verbose  bool
	maxOrder int
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tensorsym",
		Short: "Inspect tensor index symmetry declarations",
		Long: `tensorsym loads a YAML file of tensor declarations, closes every
declared symmetry basis into its group and reports on the result.

Each tensor lists its slot types and symmetry generators:

  tensors:
    - name: R
      indices: [latin_lower, latin_lower, latin_lower, latin_lower]
      symmetries:
        - {type: latin_lower, permutation: [1, 0, 2, 3], sign: true}
        - {type: latin_lower, permutation: [2, 3, 0, 1]}`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVar(&a.maxOrder, "max-order", 0, "reject groups larger than this (0 = unlimited)")

	root.AddCommand(a.checkCmd(), a.groupCmd(), a.diffIDsCmd())

	return root
}

// load parses path and registers every declaration in a fresh registry.
func (a *app) load(path string) ([]declare.Result, *symmetry.Registry, error) {
	f, err := declare.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []symmetry.Option{symmetry.WithLogger(a.logger)}
	if a.maxOrder > 0 {
		opts = append(opts, symmetry.WithMaxOrder(a.maxOrder))
	}
	reg := symmetry.NewRegistry(opts...)
	res, err := f.Apply(reg)
	if err != nil {
		return res, reg, err
	}
	a.logger.Debug("declarations loaded", zap.String("file", path), zap.Int("tensors", len(res)))

	return res, reg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
