package commands

import (
	"github.com/hanabira-bot/hanabira/internal/discord/handlers"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

// RegisterGeneralCommands registers the everyday commands
func RegisterGeneralCommands(reg *registry.Registry) {
	reg.Register("General", &registry.Command{
		Name:        "ping",
		Description: "Check that the bot is alive",
		Help:        "Replies with the current gateway latency.",
		Examples:    []string{"ping"},
		Handler:     handlers.HandlePing,
	})

	reg.Register("General", &registry.Command{
		Name:        "about",
		Aliases:     []string{"info"},
		Description: "Show information about the bot",
		Handler:     handlers.HandleAbout,
	})
}
