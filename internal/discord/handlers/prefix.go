package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"github.com/hanabira-bot/hanabira/internal/db"
)

const maxPrefixLength = 10

// HandlePrefixShow handles "prefix show": reports the prefix in effect for
// the current guild.
func HandlePrefixShow(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	prefix := viper.GetString("DiscordBot.Prefix")
	if m.GuildID != "" && db.Ready() {
		stored, err := db.GetGuildPrefix(m.GuildID)
		if err != nil {
			log.Printf("Error fetching prefix for guild %s: %v", m.GuildID, err)
		} else if stored != "" {
			prefix = stored
		}
	}
	sendText(s, m.ChannelID, fmt.Sprintf("The command prefix here is `%s`", prefix))
}

// HandlePrefixSet handles "prefix set <prefix>": stores a guild prefix
// override. Requires Manage Server.
func HandlePrefixSet(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		sendText(s, m.ChannelID, "This command can only be used in a server.")
		return
	}
	if !db.Ready() {
		sendText(s, m.ChannelID, "No database is configured, so the prefix cannot be changed.")
		return
	}

	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil || perms&discordgo.PermissionManageServer == 0 {
		sendText(s, m.ChannelID, "You need the Manage Server permission to change the prefix.")
		return
	}

	if len(args) < 2 {
		sendText(s, m.ChannelID, "Usage: `prefix set <prefix>`")
		return
	}
	prefix := args[1]
	if len(prefix) > maxPrefixLength || strings.ContainsAny(prefix, " \t\n") {
		sendText(s, m.ChannelID, fmt.Sprintf("Prefixes must be at most %d characters and contain no whitespace.", maxPrefixLength))
		return
	}

	if err := db.SetGuildPrefix(m.GuildID, prefix); err != nil {
		log.Printf("Error storing prefix for guild %s: %v", m.GuildID, err)
		sendText(s, m.ChannelID, "Could not store the new prefix, try again later.")
		return
	}
	sendText(s, m.ChannelID, fmt.Sprintf("The command prefix is now `%s`", prefix))
}
