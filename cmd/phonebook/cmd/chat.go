package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfulz/phonebook/internal/config"
	"github.com/mfulz/phonebook/internal/configloader"
	"github.com/mfulz/phonebook/internal/session"
)

// NewChatCmd creates the interactive chat command.
func NewChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Long: `Starts an interactive session with line editing, history and tab completion
of command verbs. The session ends on "close", "exit" or end of input (Ctrl-D).`,
		Args: cobra.NoArgs,
		RunE: RunChat,
	}
}

// RunChat runs an interactive session on the terminal.
func RunChat(c *cobra.Command, _ []string) error {
	cfg := configloader.MustGetConfig[*config.Config]()
	a := newAssistant(cfg)

	rl, err := session.NewReadline(session.ReadlineConfig{
		Prompt:      cfg.Session.Prompt,
		HistoryFile: cfg.Session.HistoryFile,
		Verbs:       a.Verbs(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	if cfg.Session.Greeting != "" {
		_, _ = fmt.Fprintln(rl.Stdout(), cfg.Session.Greeting)
	}
	return session.Run(c.Context(), rl, rl.Stdout(), a)
}
