package commands

import (
	"github.com/hanabira-bot/hanabira/internal/discord/handlers"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

// RegisterSettingsCommands registers the server configuration commands
func RegisterSettingsCommands(reg *registry.Registry) {
	reg.Register("Settings", &registry.Command{
		Name:        "prefix",
		Description: "Show or change the command prefix",
		Help:        "Shows or changes the command prefix used in this server.",
		Subcommands: []*registry.Command{
			{
				Name:        "show",
				Description: "Show the prefix in effect here",
				Handler:     handlers.HandlePrefixShow,
			},
			{
				Name:        "set",
				Signature:   "<prefix>",
				Description: "Set this server's prefix",
				Examples:    []string{"prefix set ?"},
				AdminOnly:   true,
				Handler:     handlers.HandlePrefixSet,
			},
		},
	})
}
