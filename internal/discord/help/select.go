package help

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

// Component custom IDs for the help UI. Views are keyed by message ID, so
// the IDs themselves carry no session information.
const (
	selectMaxOptions = 25

	categorySelectID    = "help_category"
	commandSelectPrefix = "help_command_"

	// Synthetic option values for the "return to ..." entries.
	indexOptionValue = "main"
)

// categorySelect builds the dropdown offering the category index plus every
// category that has at least one visible command.
func categorySelect(src *Source, mapping []categoryEntry) discordgo.SelectMenu {
	options := []discordgo.SelectMenuOption{
		{
			Label:       fmt.Sprintf("%s Categories", src.BotName),
			Value:       indexOptionValue,
			Description: fmt.Sprintf("The index of %s categories.", src.BotName),
		},
	}
	for _, entry := range mapping {
		if len(entry.commands) == 0 {
			continue
		}
		option := discordgo.SelectMenuOption{
			Label:       entry.category.Name,
			Value:       entry.category.Name,
			Description: entry.category.Description,
		}
		if entry.category.Emoji != "" {
			option.Emoji = &discordgo.ComponentEmoji{Name: entry.category.Emoji}
		}
		options = append(options, option)
	}
	return discordgo.SelectMenu{
		CustomID:    categorySelectID,
		Placeholder: "Select a Category.",
		Options:     options,
	}
}

// commandSelects builds dropdowns for a command set. Sets that do not fit a
// single select (together with the synthetic back option) are split into
// chunks of selectMaxOptions-1, each labeled with the alphabetic range of
// the command names it covers.
func commandSelects(setName string, commands []*registry.Command) []discordgo.SelectMenu {
	chunkSize := selectMaxOptions - 1
	if len(commands) <= chunkSize {
		return []discordgo.SelectMenu{commandSelect(setName, commands, 0, "")}
	}

	var selects []discordgo.SelectMenu
	for i := 0; i < len(commands); i += chunkSize {
		end := i + chunkSize
		if end > len(commands) {
			end = len(commands)
		}
		chunk := commands[i:end]
		suffix := fmt.Sprintf(" [%s-%s]",
			firstLetter(chunk[0].Name),
			firstLetter(chunk[len(chunk)-1].Name))
		selects = append(selects, commandSelect(setName, chunk, len(selects), suffix))
	}
	return selects
}

func commandSelect(setName string, commands []*registry.Command, n int, suffix string) discordgo.SelectMenu {
	options := []discordgo.SelectMenuOption{
		{
			Label:       fmt.Sprintf("%s commands", setName),
			Value:       indexOptionValue,
			Description: fmt.Sprintf("%s commands.", setName),
		},
	}
	for _, cmd := range commands {
		options = append(options, discordgo.SelectMenuOption{
			Label:       cmd.Name,
			Value:       cmd.QualifiedName(),
			Description: cmd.ShortDescription(),
		})
	}
	return discordgo.SelectMenu{
		CustomID:    fmt.Sprintf("%s%d", commandSelectPrefix, n),
		Placeholder: "Select a command" + suffix,
		Options:     options,
	}
}

func firstLetter(name string) string {
	if name == "" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}
