package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// sendText sends a plain message and logs delivery failures.
func sendText(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Error sending message to %s: %v", channelID, err)
	}
}

// HandlePing handles the !ping command
func HandlePing(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	sendText(s, m.ChannelID, fmt.Sprintf("Pong! Gateway latency: %dms", s.HeartbeatLatency().Milliseconds()))
}

// HandleAbout handles the !about command
func HandleAbout(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	embed := &discordgo.MessageEmbed{
		Title:       viper.GetString("DiscordBot.Name"),
		Description: viper.GetString("DiscordBot.Description"),
		Color:       viper.GetInt("DiscordBot.EmbedColor"),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Library", Value: "discordgo", Inline: true},
			{Name: "Source", Value: "github.com/hanabira-bot/hanabira", Inline: true},
		},
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Printf("Error sending about embed: %v", err)
	}
}
