package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/TheBitDrifter/depot/internal/soak"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Profile    string
	ProfileDir string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <workload.yaml>",
		Short: "Run a soak workload",
		Long: `Run a soak workload and print one report line per round.

Example:
  depot-soak run ./workload.yaml
  depot-soak run ./workload.yaml --profile cpu --profile-dir /tmp`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "profile mode (cpu|mem|block)")
	cmd.Flags().StringVar(&opts.ProfileDir, "profile-dir", ".", "directory for profile output")

	return cmd
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "block":
		return profile.BlockProfile, nil
	}
	return nil, fmt.Errorf("invalid profile %q: must be one of cpu, mem, block", name)
}

func runSoak(cmd *cobra.Command, opts *RunOptions, path string) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	load, err := soak.LoadWorkload(path)
	if err != nil {
		return err
	}

	if opts.Profile != "" {
		mode, err := profileMode(opts.Profile)
		if err != nil {
			return err
		}
		p := profile.Start(mode, profile.ProfilePath(opts.ProfileDir), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.Must(uuid.NewV7()).String()
	logger = logger.With("run", runID)
	logger.Info("starting soak", "workload", path, "rounds", load.Rounds, "entities", load.Entities)

	sum, err := soak.Run(ctx, load, cmd.OutOrStdout(), logger)
	if err != nil {
		return fmt.Errorf("soak failed: %w", err)
	}
	logger.Info("soak complete", "created", sum.Created, "freed", sum.Freed, "live", sum.Live)
	return nil
}
