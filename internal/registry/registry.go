// Package registry holds the bot's command table: categories, command
// metadata and handlers. The help system consumes it as read-only data.
package registry

import (
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Handler defines the function signature for command handlers
type Handler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// Command holds information about a command. A command with Subcommands is
// a group; its subcommands are addressed as "<group> <name>".
type Command struct {
	Name        string
	Aliases     []string
	Signature   string // argument shape shown in usage lines, e.g. "<prefix>"
	Description string // one-line summary
	Help        string // long help text shown on the command's own page
	Examples    []string
	Hidden      bool
	AdminOnly   bool
	Subcommands []*Command
	Handler     Handler

	category string
	parent   *Command
}

// QualifiedName returns the full invocation name, including the parent
// group for subcommands.
func (c *Command) QualifiedName() string {
	if c.parent != nil {
		return c.parent.QualifiedName() + " " + c.Name
	}
	return c.Name
}

// CategoryName returns the name of the category the command was registered
// under. Subcommands inherit their group's category.
func (c *Command) CategoryName() string {
	if c.parent != nil {
		return c.parent.CategoryName()
	}
	return c.category
}

// IsGroup reports whether the command has subcommands.
func (c *Command) IsGroup() bool {
	return len(c.Subcommands) > 0
}

// ShortDescription returns the one-line summary, falling back to the first
// line of the long help.
func (c *Command) ShortDescription() string {
	if c.Description != "" {
		return c.Description
	}
	if c.Help != "" {
		line, _, _ := strings.Cut(c.Help, "\n")
		return line
	}
	return ""
}

// LongHelp returns the long help text, falling back to the summary.
func (c *Command) LongHelp() string {
	if c.Help != "" {
		return c.Help
	}
	return c.Description
}

// Subcommand finds a direct subcommand by name or alias.
func (c *Command) Subcommand(name string) (*Command, bool) {
	name = strings.ToLower(name)
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub, true
		}
		for _, alias := range sub.Aliases {
			if strings.EqualFold(alias, name) {
				return sub, true
			}
		}
	}
	return nil, false
}

// Category is a named grouping of related commands
type Category struct {
	Name        string
	Description string
	Emoji       string
}

// Registry is the bot's command table. Registration happens once at
// startup; lookups afterwards are concurrent with event dispatch.
type Registry struct {
	mu         sync.RWMutex
	categories []*Category
	byCategory map[string][]*Command
	byName     map[string]*Command
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		byCategory: make(map[string][]*Command),
		byName:     make(map[string]*Command),
	}
}

// AddCategory registers a category. Categories keep registration order,
// which is also their display order in the help index.
func (r *Registry) AddCategory(cat *Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(cat.Name)
	for _, existing := range r.categories {
		if strings.ToLower(existing.Name) == key {
			return
		}
	}
	r.categories = append(r.categories, cat)
}

// Register adds a command to the registry under the named category,
// creating the category when it does not exist yet. Command names and
// aliases are matched case-insensitively.
func (r *Registry) Register(category string, cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(category)
	found := false
	for _, existing := range r.categories {
		if strings.ToLower(existing.Name) == key {
			found = true
			break
		}
	}
	if !found {
		r.categories = append(r.categories, &Category{Name: category})
	}

	cmd.Name = strings.ToLower(cmd.Name)
	cmd.category = category
	r.byCategory[key] = append(r.byCategory[key], cmd)
	r.byName[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.byName[strings.ToLower(alias)] = cmd
	}

	for _, sub := range cmd.Subcommands {
		sub.Name = strings.ToLower(sub.Name)
		sub.parent = cmd
		r.byName[cmd.Name+" "+sub.Name] = sub
	}
}

// Lookup finds a command by name, alias or qualified subcommand name
// ("group sub").
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if cmd, ok := r.byName[name]; ok {
		return cmd, true
	}

	// "group sub" where the group part may be an alias.
	group, rest, ok := strings.Cut(name, " ")
	if !ok {
		return nil, false
	}
	parent, ok := r.byName[group]
	if !ok {
		return nil, false
	}
	return parent.Subcommand(rest)
}

// Category finds a category by name, case-insensitively.
func (r *Registry) Category(name string) (*Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := strings.ToLower(name)
	for _, cat := range r.categories {
		if strings.ToLower(cat.Name) == key {
			return cat, true
		}
	}
	return nil, false
}

// Categories returns all categories in registration order
func (r *Registry) Categories() []*Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// CommandsIn returns the commands registered under a category, in
// registration order.
func (r *Registry) CommandsIn(category string) []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmds := r.byCategory[strings.ToLower(category)]
	out := make([]*Command, len(cmds))
	copy(out, cmds)
	return out
}
