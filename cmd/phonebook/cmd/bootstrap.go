// Package cmd provides the subcommands of the phonebook binary and the
// bootstrap shared by all of them.
package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mfulz/phonebook/internal/assistant"
	"github.com/mfulz/phonebook/internal/config"
	"github.com/mfulz/phonebook/internal/configloader"
	"github.com/mfulz/phonebook/internal/contacts"
	"github.com/mfulz/phonebook/internal/logging"
)

// Bootstrap loads the configuration, initializes the logger from it and
// registers the result for the subcommands.
func Bootstrap(v *viper.Viper, path string) (*config.Config, error) {
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	configloader.SetConfig(cfg)
	logging.Log.Debugw("[phonebook] configuration loaded", "file", v.ConfigFileUsed())
	return cfg, nil
}

// newAssistant starts a fresh session with its own contact store.
func newAssistant(cfg *config.Config) *assistant.Assistant {
	store := contacts.NewStore(contacts.WithStrictAdd(cfg.Contacts.StrictAdd))
	a := assistant.New(store)
	logging.Log.Infow("[phonebook] session started", "session", a.ID())
	return a
}
