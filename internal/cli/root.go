package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// watchFromConfig marks a bare --watch; the directory then comes from the
// positional argument or the configured watch path.
const watchFromConfig = "<watch_dir>"

type options struct {
	configPath     string
	watch          string
	transcriptOnly bool
	preview        bool
	copy           bool
}

// NewRootCmd builds the vidkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vidkit [video-path]",
		Short: "Turn a video into a transcript, YouTube metadata, social copy and a blog post",
		Long: `vidkit extracts the audio of a video, transcribes it through a Whisper
backend and asks a language model for YouTube metadata, social media copy
and a blog post. Results are written to <out_dir>/<video name>/.

Transcripts are cached per output directory, so re-running a video only
repeats the generation step.`,
		Example: `  # Process one video
  vidkit ./recordings/tutorial.mp4

  # Only extract audio and transcribe
  vidkit ./recordings/tutorial.mp4 --transcriptOnly

  # Process every .mp4 that appears in a directory
  vidkit --watch ./inbox`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			watching := cmd.Flags().Changed("watch")

			if !watching && len(args) == 0 {
				return cmd.Help()
			}

			if watching {
				dir := opts.watch
				if dir == watchFromConfig {
					dir = ""
					if len(args) == 1 {
						dir = args[0]
					}
				}
				return runWatch(cmd, opts, dir)
			}

			return runSingle(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/vidkit/config.yaml or ./config.yaml)")
	flags.StringVar(&opts.watch, "watch", "", "Watch `dir` for new videos (defaults to the configured watch dir)")
	flags.Lookup("watch").NoOptDefVal = watchFromConfig
	flags.BoolVar(&opts.transcriptOnly, "transcriptOnly", false, "Stop after writing the transcript")
	flags.BoolVar(&opts.preview, "preview", false, "Render youtube.md and socials.md in the terminal when done")
	flags.BoolVar(&opts.copy, "copy", false, "Copy youtube.md to the clipboard when done")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command until it finishes or the process receives
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
