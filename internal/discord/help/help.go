// Package help renders the bot's interactive, paginated help system: embeds
// for the category index, per-category command lists and single commands,
// navigated with buttons and dropdown selectors on a single message.
package help

import (
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

// Source is the read-only capability object the help system works from: the
// command table, the requester permission check and the presentation
// settings. It is handed in explicitly so nothing here reaches into ambient
// bot state.
type Source struct {
	Registry *registry.Registry

	// Allowed reports whether the requesting user may see and run a
	// command. A nil Allowed admits everything that is not hidden.
	Allowed func(m *discordgo.MessageCreate, cmd *registry.Command) bool

	// Prefix resolves the effective command prefix for a guild ("" for
	// direct messages).
	Prefix func(guildID string) string

	BotName     string
	Description string
	Color       int
}

func (src *Source) prefixFor(m *discordgo.MessageCreate) string {
	if src.Prefix == nil {
		return "!"
	}
	return src.Prefix(m.GuildID)
}

func (src *Source) allowed(m *discordgo.MessageCreate, cmd *registry.Command) bool {
	if cmd.Hidden {
		return false
	}
	if src.Allowed == nil {
		return true
	}
	return src.Allowed(m, cmd)
}

// visibleCommands filters and name-sorts a command list for a requester.
func (src *Source) visibleCommands(m *discordgo.MessageCreate, cmds []*registry.Command) []*registry.Command {
	visible := make([]*registry.Command, 0, len(cmds))
	for _, cmd := range cmds {
		if src.allowed(m, cmd) {
			visible = append(visible, cmd)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })
	return visible
}

// visibleMapping builds the ordered category→commands mapping the index
// paginator and category select work from. Categories keep registration
// order; categories whose commands are all filtered out stay in the mapping
// with an empty list and are skipped by both consumers.
func (src *Source) visibleMapping(m *discordgo.MessageCreate) []categoryEntry {
	categories := src.Registry.Categories()
	mapping := make([]categoryEntry, 0, len(categories))
	for _, cat := range categories {
		mapping = append(mapping, categoryEntry{
			category: cat,
			commands: src.visibleCommands(m, src.Registry.CommandsIn(cat.Name)),
		})
	}
	return mapping
}

// Handle implements the help command: no argument shows the bot index, an
// argument is resolved as command, then group subcommand path, then
// category, and misses get a not-found notice.
func (src *Source) Handle(s Sender, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		src.SendBotHelp(s, m)
		return
	}

	name := strings.Join(args[1:], " ")
	if cmd, ok := src.Registry.Lookup(name); ok && src.allowed(m, cmd) {
		if cmd.IsGroup() {
			src.SendGroupHelp(s, m, cmd)
			return
		}
		src.SendCommandHelp(s, m, cmd)
		return
	}
	if cat, ok := src.Registry.Category(name); ok {
		src.SendCategoryHelp(s, m, cat)
		return
	}
	src.SendNotFound(s, m, name)
}

// SendBotHelp sends the category index with a category selector.
func (src *Source) SendBotHelp(s Sender, m *discordgo.MessageCreate) {
	prefix := src.prefixFor(m)
	mapping := src.visibleMapping(m)

	v := &view{
		src:       src,
		paginator: newIndexPaginator(src, prefix, mapping),
		selects:   []discordgo.SelectMenu{categorySelect(src, mapping)},
		authorID:  m.Author.ID,
		prefix:    prefix,
		mapping:   mapping,
	}
	v.send(s, m)
}

// SendCategoryHelp sends one category's command list with command
// selectors, split when the category holds more commands than one selector
// can carry.
func (src *Source) SendCategoryHelp(s Sender, m *discordgo.MessageCreate, cat *registry.Category) {
	prefix := src.prefixFor(m)
	commands := src.visibleCommands(m, src.Registry.CommandsIn(cat.Name))

	v := &view{
		src:            src,
		paginator:      newCategoryPaginator(src, prefix, cat.Name, cat.Description, commands),
		selects:        commandSelects(cat.Name, commands),
		authorID:       m.Author.ID,
		prefix:         prefix,
		setName:        cat.Name,
		setDescription: cat.Description,
		setCommands:    commands,
	}
	v.send(s, m)
}

// SendGroupHelp sends a command group's subcommand list with one command
// selector.
func (src *Source) SendGroupHelp(s Sender, m *discordgo.MessageCreate, group *registry.Command) {
	prefix := src.prefixFor(m)
	subcommands := src.visibleCommands(m, group.Subcommands)
	name := group.QualifiedName()
	description := group.ShortDescription()

	v := &view{
		src:            src,
		paginator:      newCategoryPaginator(src, prefix, name, description, subcommands),
		selects:        commandSelects(name, subcommands),
		authorID:       m.Author.ID,
		prefix:         prefix,
		setName:        name,
		setDescription: description,
		setCommands:    subcommands,
	}
	v.send(s, m)
}

// SendCommandHelp sends a single command's page. There is nothing to
// navigate, so no session is created and no controls are attached.
func (src *Source) SendCommandHelp(s Sender, m *discordgo.MessageCreate, cmd *registry.Command) {
	p := newCommandPaginator(src, src.prefixFor(m), cmd)
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{p.current()},
		Reference: m.Reference(),
	})
	if err != nil {
		log.Printf("Error sending command help: %v", err)
	}
}

// SendNotFound reports a failed help lookup.
func (src *Source) SendNotFound(s Sender, m *discordgo.MessageCreate, name string) {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Not Found",
			Description: "No command or category called `" + name + "` found.",
			Color:       src.Color,
		}},
		Reference: m.Reference(),
	})
	if err != nil {
		log.Printf("Error sending help not-found notice: %v", err)
	}
}
