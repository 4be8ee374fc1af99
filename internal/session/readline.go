package session

import (
	"fmt"
	"io"
	"sort"

	"github.com/chzyer/readline"
)

// ReadlineConfig describes the interactive line editor.
type ReadlineConfig struct {
	Prompt      string
	HistoryFile string   // empty disables history
	Verbs       []string // offered for tab completion
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewReadline creates a line editor with verb completion.
func NewReadline(cfg ReadlineConfig) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newVerbCompleter(cfg.Verbs),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return rl, nil
}

// newVerbCompleter completes the first word of a line from verbs.
func newVerbCompleter(verbs []string) *readline.PrefixCompleter {
	sorted := append([]string(nil), verbs...)
	sort.Strings(sorted)

	items := make([]readline.PrefixCompleterInterface, 0, len(sorted))
	for _, v := range sorted {
		items = append(items, readline.PcItem(v))
	}
	return readline.NewPrefixCompleter(items...)
}
