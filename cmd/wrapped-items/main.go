// Command wrapped-items binds a repeated --items option into a custom
// container and shares it, with --host, between the add and update commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ygrebnov/seqbind"
	"github.com/ygrebnov/seqbind/flagbind"
)

// commonParams are the options shared by every command.
type commonParams struct {
	Host  string
	Items WrappedArray[WrappedItem]
}

func (p commonParams) String() string {
	return fmt.Sprintf("commonParams{Host: %s, Items: %d}", p.Host, p.Items.Len())
}

type app struct {
	logger  *zap.Logger
	verbose bool
	params  commonParams
	flags   *flagbind.Flags
}

// newRootCmd builds a command tree for one invocation. logger may be nil,
// in which case a production logger is built before the command runs.
func newRootCmd(logger *zap.Logger) (*cobra.Command, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	seq := &sequence{}
	b, err := seqbind.New(
		seqbind.WithParser(seq.parseItem),
		seqbind.WithConstructor(NewWrappedArray[WrappedItem]),
	)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger, flags: flagbind.New(b)}

	root := &cobra.Command{
		Use:           "wrapped-items",
		Short:         "Process wrapped items against a remote host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				l, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = l
			}
			if err := a.flags.Bind(); err != nil {
				return err
			}
			a.logger.Debug("Bound common parameters",
				zap.String("command", cmd.Name()),
				zap.String("host", a.params.Host),
				zap.Int("items", a.params.Items.Len()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")
	pf.StringVarP(&a.params.Host, "host", "t", cfg.Host, "Specifies the remote host to connect.")
	if err := a.flags.VarP(pf, &a.params.Items, "items", "i", "Items to process"); err != nil {
		return nil, err
	}

	root.AddCommand(a.addCmd(), a.updateCmd())
	return root, nil
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Add items from one location to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Adding items", zap.String("from", args[0]), zap.String("to", args[1]))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Add: %s %s\n", a.params, a.params.Items)
			fmt.Fprintf(out, "%s -> %s\n", args[0], args[1])
			return nil
		},
	}
}

func (a *app) updateCmd() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "update <path>",
		Short: "Update items at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Updating items", zap.String("path", args[0]), zap.Bool("recursive", recursive))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Update: %s %s\n", a.params, a.params.Items)
			suffix := ""
			if recursive {
				suffix = " (Recursive)"
			}
			fmt.Fprintf(out, "%s%s\n", args[0], suffix)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Traverse recursively to perform.")
	return cmd
}

func main() {
	root, err := newRootCmd(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
