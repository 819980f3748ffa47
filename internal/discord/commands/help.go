package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/hanabira-bot/hanabira/internal/discord/help"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

// RegisterHelpCommand registers the interactive help command
func RegisterHelpCommand(reg *registry.Registry, helpSrc *help.Source) {
	reg.Register("General", &registry.Command{
		Name:        "help",
		Signature:   "[command|category]",
		Description: "Show the interactive help",
		Help: "Shows the command categories, one category's commands, or a " +
			"single command's details, navigable with the buttons and menus " +
			"below the message.",
		Examples: []string{"help", "help seasonal", "help prefix set"},
		Handler: func(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
			helpSrc.Handle(s, m, args)
		},
	})
}
