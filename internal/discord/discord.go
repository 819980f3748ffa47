package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"github.com/hanabira-bot/hanabira/internal/discord/commands"
	"github.com/hanabira-bot/hanabira/internal/discord/help"
	"github.com/hanabira-bot/hanabira/internal/registry"
)

var (
	session *discordgo.Session
	reg     *registry.Registry
	helpSrc *help.Source
)

// Initialize sets up the Discord session and registers handlers
func Initialize(token string) error {
	var err error
	session, err = discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	reg = registry.New()
	helpSrc = &help.Source{
		Registry:    reg,
		Allowed:     commandAllowed,
		Prefix:      EffectivePrefix,
		BotName:     viper.GetString("DiscordBot.Name"),
		Description: viper.GetString("DiscordBot.Description"),
		Color:       viper.GetInt("DiscordBot.EmbedColor"),
	}
	commands.Register(reg, helpSrc)

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		ProcessCommand(s, m)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type == discordgo.InteractionMessageComponent {
			help.HandleComponent(s, i)
		}
	})

	if err = session.Open(); err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	log.Println("Connected to Discord successfully")
	return nil
}

// Close closes the Discord session
func Close() {
	if session != nil {
		session.Close()
	}
}

// GetSession returns the Discord session
func GetSession() *discordgo.Session {
	return session
}

// commandAllowed is the permission filter handed to the help system.
// Admin-only commands are visible only to users with Manage Server in the
// channel the request came from.
func commandAllowed(m *discordgo.MessageCreate, cmd *registry.Command) bool {
	if !cmd.AdminOnly {
		return true
	}
	if session == nil || m.GuildID == "" {
		return false
	}
	perms, err := session.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		log.Printf("Error checking permissions for %s: %v", m.Author.ID, err)
		return false
	}
	return perms&discordgo.PermissionManageServer != 0
}
