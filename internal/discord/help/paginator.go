package help

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

const (
	// Capacity constants for the two pageable displays.
	categoriesPerPage = 9
	commandsPerPage   = 8

	noHelpFallback     = "No help available."
	noCategoryFallback = "No Category"
)

// paginator is a cursor over a fixed number of rendered pages. Navigation
// is shared across variants; rendering is per-variant.
type paginator interface {
	pageCount() int
	index() int
	previous()
	next()
	first()
	last()
	isFirst() bool
	isLast() bool
	current() *discordgo.MessageEmbed
}

// basePaginator holds the cursor and the lazily populated page cache.
// All movement clamps to [0, nPages-1]; there is no wrapping.
type basePaginator struct {
	nPages int
	idx    int
	pages  map[int]*discordgo.MessageEmbed
}

func newBasePaginator(nPages int) basePaginator {
	if nPages < 1 {
		nPages = 1
	}
	return basePaginator{
		nPages: nPages,
		pages:  make(map[int]*discordgo.MessageEmbed),
	}
}

func (p *basePaginator) pageCount() int { return p.nPages }
func (p *basePaginator) index() int     { return p.idx }

func (p *basePaginator) previous() {
	if p.idx > 0 {
		p.idx--
	}
}

func (p *basePaginator) next() {
	if p.idx < p.nPages-1 {
		p.idx++
	}
}

func (p *basePaginator) first() { p.idx = 0 }
func (p *basePaginator) last()  { p.idx = p.nPages - 1 }

func (p *basePaginator) isFirst() bool { return p.idx == 0 }
func (p *basePaginator) isLast() bool  { return p.idx == p.nPages-1 }

// titleSuffix returns the " [page/total]" marker, or "" for a single page.
func (p *basePaginator) titleSuffix() string {
	if p.nPages > 1 {
		return fmt.Sprintf(" [%d/%d]", p.idx+1, p.nPages)
	}
	return ""
}

// categoryEntry pairs a category with its visible, sorted commands.
type categoryEntry struct {
	category *registry.Category
	commands []*registry.Command
}

// indexPaginator renders the category index, a fixed number of categories
// per page. Entries with zero visible commands must be filtered out before
// construction so that they neither render nor count towards pages.
type indexPaginator struct {
	basePaginator
	src    *Source
	prefix string
	chunks [][]categoryEntry
}

func newIndexPaginator(src *Source, prefix string, mapping []categoryEntry) *indexPaginator {
	entries := make([]categoryEntry, 0, len(mapping))
	for _, entry := range mapping {
		if len(entry.commands) == 0 {
			continue
		}
		entries = append(entries, entry)
	}

	var chunks [][]categoryEntry
	for i := 0; i < len(entries); i += categoriesPerPage {
		end := i + categoriesPerPage
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[i:end])
	}

	return &indexPaginator{
		basePaginator: newBasePaginator(len(chunks)),
		src:           src,
		prefix:        prefix,
		chunks:        chunks,
	}
}

func (p *indexPaginator) current() *discordgo.MessageEmbed {
	if embed, ok := p.pages[p.idx]; ok {
		return embed
	}
	embed := p.render()
	p.pages[p.idx] = embed
	return embed
}

func (p *indexPaginator) render() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: p.src.BotName + p.titleSuffix(),
		Description: fmt.Sprintf("%s\n\nBelow you will find the command categories of %s:",
			p.src.Description, p.src.BotName),
		Color: p.src.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Use %shelp [category] for more info about a category or select a category below.", p.prefix),
		},
	}

	if p.idx >= len(p.chunks) {
		return embed
	}
	for _, entry := range p.chunks[p.idx] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("**%s** [%d]", entry.category.Name, len(entry.commands)),
			Value:  entry.category.Description,
			Inline: true,
		})
	}
	return embed
}

// categoryPaginator renders one category's (or one group's) command list,
// a fixed number of commands per page.
type categoryPaginator struct {
	basePaginator
	src         *Source
	prefix      string
	name        string
	description string
	commands    []*registry.Command
}

func newCategoryPaginator(src *Source, prefix, name, description string, commands []*registry.Command) *categoryPaginator {
	return &categoryPaginator{
		basePaginator: newBasePaginator((len(commands) + commandsPerPage - 1) / commandsPerPage),
		src:           src,
		prefix:        prefix,
		name:          name,
		description:   description,
		commands:      commands,
	}
}

func (p *categoryPaginator) current() *discordgo.MessageEmbed {
	if embed, ok := p.pages[p.idx]; ok {
		return embed
	}
	embed := p.render()
	p.pages[p.idx] = embed
	return embed
}

func (p *categoryPaginator) render() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s commands%s", p.name, p.titleSuffix()),
		Description: p.description,
		Color:       p.src.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Use %shelp [command] for more info about a command.", p.prefix),
		},
	}

	start := p.idx * commandsPerPage
	end := start + commandsPerPage
	if end > len(p.commands) {
		end = len(p.commands)
	}
	for _, cmd := range p.commands[start:end] {
		desc := cmd.ShortDescription()
		if desc == "" {
			desc = noHelpFallback
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  strings.TrimSpace(cmd.QualifiedName() + " " + cmd.Signature),
			Value: desc,
		})
	}
	return embed
}

// commandPaginator renders a single command. It is always exactly one
// page; keeping it a paginator makes it interchangeable inside the view.
type commandPaginator struct {
	basePaginator
	src    *Source
	prefix string
	cmd    *registry.Command
}

func newCommandPaginator(src *Source, prefix string, cmd *registry.Command) *commandPaginator {
	return &commandPaginator{
		basePaginator: newBasePaginator(1),
		src:           src,
		prefix:        prefix,
		cmd:           cmd,
	}
}

func (p *commandPaginator) current() *discordgo.MessageEmbed {
	if embed, ok := p.pages[p.idx]; ok {
		return embed
	}
	embed := p.render()
	p.pages[p.idx] = embed
	return embed
}

func (p *commandPaginator) render() *discordgo.MessageEmbed {
	description := p.cmd.LongHelp()
	if description == "" {
		description = noHelpFallback
	}

	category := p.cmd.CategoryName()
	if category == "" {
		category = noCategoryFallback
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s command", p.cmd.Name),
		Description: description,
		Color:       p.src.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Category: " + category},
	}

	if len(p.cmd.Aliases) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Aliases",
			Value: strings.Join(p.cmd.Aliases, " "),
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Usage",
		Value: strings.TrimSpace(p.prefix + p.cmd.QualifiedName() + " " + p.cmd.Signature),
	})
	return embed
}
