// Command phonebook is an interactive contact assistant. It reads short text
// commands (hello, add, change, phone, all, close/exit), keeps the contacts of
// the current session in memory and answers every command with one reply.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfulz/phonebook/cmd/phonebook/cmd"
	"github.com/mfulz/phonebook/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "Interactive contact assistant",
	Long: `phonebook keeps a session-local list of contacts and answers short commands:

  hello                 greet the assistant
  add <name> <phone>    store a contact
  change <name> <phone> update an existing contact
  phone <name>          show the phone of a contact
  all                   list every contact
  close | exit          end the session

Without a subcommand an interactive chat is started.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		v := viper.New()
		if err := v.BindPFlag("log.level", c.Flags().Lookup("log-level")); err != nil {
			return fmt.Errorf("bind log level flag: %w", err)
		}
		_, err := cmd.Bootstrap(v, configPath)
		return err
	},
	RunE: cmd.RunChat,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Log.Errorf("[phonebook] %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: $PHONEBOOK_CONFIG, ~/.phonebook/phonebook.yaml, /etc/phonebook/phonebook.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(cmd.NewChatCmd())
	rootCmd.AddCommand(cmd.NewExecCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
}
