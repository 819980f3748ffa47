// Package commands wires the bot's command definitions into the registry.
package commands

import (
	"github.com/hanabira-bot/hanabira/internal/discord/help"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

// Register registers all commands and categories
func Register(reg *registry.Registry, helpSrc *help.Source) {
	reg.AddCategory(&registry.Category{
		Name:        "General",
		Description: "Everyday commands.",
	})
	reg.AddCategory(&registry.Category{
		Name:        "Seasonal",
		Description: "Seasonal nickname decorations.",
		Emoji:       "☀️",
	})
	reg.AddCategory(&registry.Category{
		Name:        "Settings",
		Description: "Server configuration.",
	})

	RegisterGeneralCommands(reg)
	RegisterSeasonalCommands(reg)
	RegisterSettingsCommands(reg)
	RegisterHelpCommand(reg, helpSrc)
}
