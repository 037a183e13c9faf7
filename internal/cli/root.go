package cli

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose      bool
	Format       string // "json" | "text"
	SequencerURL string
	Timeout      time.Duration
	RPS          int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of opctl.
func NewRootCommand(newTracker TrackerFactory) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "opctl",
		Short: "opctl - cross-chain operation tracker",
		Long:  "Link shard transactions, resolve operation ids and follow operations until they reach a terminal stage.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.SequencerURL, "sequencer-url", os.Getenv("OPTRACKER_SEQUENCER_URL"), "status service base url")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "timeout of a single status service request")
	cmd.PersistentFlags().IntVar(&opts.RPS, "rps", 10, "status service requests per second, 0 disables the cap")

	cmd.AddCommand(NewLinkCommand(opts, newTracker))
	cmd.AddCommand(NewResolveCommand(opts, newTracker))
	cmd.AddCommand(NewStatusCommand(opts, newTracker))
	cmd.AddCommand(NewStagesCommand(opts, newTracker))
	cmd.AddCommand(NewTypeCommand(opts, newTracker))
	cmd.AddCommand(NewWaitCommand(opts, newTracker))
	cmd.AddCommand(NewBatchStatusCommand(opts, newTracker))

	return cmd
}

// withTracker builds a tracker for the duration of run.
func withTracker(opts *RootOptions, newTracker TrackerFactory, f *OutputFormatter, run func(Tracker) error) error {
	tr, err := newTracker(opts)
	if err != nil {
		return fail(f, WrapExitError(ExitCommandError, "build tracker", err))
	}
	defer func() {
		if err := tr.Close(); err != nil {
			f.VerboseLog("close tracker: %v", err)
		}
	}()
	return run(tr)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
