package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfulz/phonebook/internal/config"
	"github.com/mfulz/phonebook/internal/configloader"
	"github.com/mfulz/phonebook/internal/session"
)

// NewExecCmd creates the non-interactive command runner.
func NewExecCmd() *cobra.Command {
	var (
		file       string
		replay     string
		transcript bool
	)

	c := &cobra.Command{
		Use:   "exec [command...]",
		Short: "Run commands without a terminal",
		Long: `Runs a batch of commands in a single session and prints one reply per
command. Commands are taken from the arguments, one per line from --file, or
from the records of a JSON transcript written by --json (--replay). For both
flags "-" reads standard input. Processing stops at "close" or "exit".`,
		Example: `  phonebook exec "add Bob 0123" "phone Bob"
  phonebook exec --file commands.txt
  printf 'add Bob 0123\nall\n' | phonebook exec -f - --json > session.jsonl
  phonebook exec --replay session.jsonl`,
		RunE: func(c *cobra.Command, args []string) error {
			sources := 0
			for _, set := range []bool{file != "", replay != "", len(args) > 0} {
				if set {
					sources++
				}
			}
			switch {
			case sources > 1:
				return fmt.Errorf("pass commands either as arguments, via --file or via --replay, not several")
			case sources == 0:
				return fmt.Errorf("no commands given")
			}

			var in session.LineReader
			switch {
			case len(args) > 0:
				in = session.NewLines(args)
			case file != "":
				r, closeFn, err := openInput(c, file)
				if err != nil {
					return fmt.Errorf("failed to open command file: %w", err)
				}
				defer closeFn()
				in = session.NewScanner(r)
			default:
				r, closeFn, err := openInput(c, replay)
				if err != nil {
					return fmt.Errorf("failed to open transcript: %w", err)
				}
				defer closeFn()
				in = session.NewTranscript(r)
			}

			cfg := configloader.MustGetConfig[*config.Config]()
			return session.Run(c.Context(), in, c.OutOrStdout(), newAssistant(cfg), session.WithTranscript(transcript))
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read commands from file, one per line (- for stdin)")
	c.Flags().StringVar(&replay, "replay", "", "Replay the commands of a JSON transcript (- for stdin)")
	c.Flags().BoolVar(&transcript, "json", false, "Print a JSON transcript record per command")
	return c
}

// openInput opens path, or the command's stdin for "-".
func openInput(c *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return c.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
