package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"github.com/hanabira-bot/hanabira/internal/db"
)

// EffectivePrefix returns the command prefix in effect for a guild: the
// guild's stored override when one exists, otherwise the configured
// default. Direct messages always use the default.
func EffectivePrefix(guildID string) string {
	if guildID != "" && db.Ready() {
		prefix, err := db.GetGuildPrefix(guildID)
		if err != nil {
			log.Printf("Error fetching prefix for guild %s: %v", guildID, err)
		} else if prefix != "" {
			return prefix
		}
	}
	return viper.GetString("DiscordBot.Prefix")
}

// parseCommand splits message content into a command name and arguments,
// requiring the given prefix. The returned args still include the command
// name itself, matching the handler convention.
func parseCommand(prefix, content string) (string, []string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	args := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(args) == 0 || args[0] == "" {
		return "", nil, false
	}
	return strings.ToLower(args[0]), args, true
}

// ProcessCommand routes a message to the appropriate command handler
func ProcessCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Skip messages from the bot itself
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	name, args, ok := parseCommand(EffectivePrefix(m.GuildID), m.Content)
	if !ok {
		return
	}

	cmd, ok := reg.Lookup(name)
	if !ok {
		return
	}

	// Route "group sub ..." to the subcommand, dropping the group token.
	if cmd.IsGroup() && len(args) > 1 {
		if sub, ok := cmd.Subcommand(args[1]); ok {
			go sub.Handler(s, m, args[1:])
			return
		}
	}

	// A bare group invocation falls back to the group's help page.
	if cmd.Handler == nil {
		if cmd.IsGroup() {
			go helpSrc.SendGroupHelp(s, m, cmd)
		}
		return
	}

	go cmd.Handler(s, m, args)
}
