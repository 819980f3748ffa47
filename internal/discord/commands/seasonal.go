package commands

import (
	"github.com/hanabira-bot/hanabira/internal/discord/handlers"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

// RegisterSeasonalCommands registers the seasonal nickname commands
func RegisterSeasonalCommands(reg *registry.Registry) {
	reg.Register("Seasonal", &registry.Command{
		Name:        "seasonal",
		Description: "Add the current season's emote to your name",
		Help: "Adds the emote of the current season to your name.\n" +
			"You can see which seasons exist and when they are with the seasonals command.",
		Examples: []string{"seasonal"},
		Handler:  handlers.HandleSeasonal,
	})

	reg.Register("Seasonal", &registry.Command{
		Name:        "noseasonal",
		Signature:   "[season]",
		Description: "Remove a seasonal emote from your name",
		Help: "Removes the emote of the current season (or any you name) from your name.\n" +
			"You can see which seasons exist and when they are with the seasonals command.",
		Examples: []string{"noseasonal", "noseasonal pumpkin"},
		Handler:  handlers.HandleNoSeasonal,
	})

	reg.Register("Seasonal", &registry.Command{
		Name:        "seasonals",
		Aliases:     []string{"seasons"},
		Description: "List all available seasons",
		Handler:     handlers.HandleSeasonals,
	})
}
