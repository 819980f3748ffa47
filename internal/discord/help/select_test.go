package help

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

// rangedCommands returns n sorted commands whose names walk the alphabet
// two at a time: a00, a01, b02, b03, ...
func rangedCommands(n int) []*registry.Command {
	cmds := make([]*registry.Command, n)
	for i := range cmds {
		cmds[i] = &registry.Command{
			Name:        fmt.Sprintf("%c%02d", rune('a'+i/2), i),
			Description: "a command",
		}
	}
	return cmds
}

func TestCommandSelectsNoSplit(t *testing.T) {
	selects := commandSelects("Stuff", rangedCommands(10))
	if len(selects) != 1 {
		t.Fatalf("got %d selects, want 1", len(selects))
	}

	sel := selects[0]
	// Synthetic back option plus one per command.
	if len(sel.Options) != 11 {
		t.Fatalf("got %d options, want 11", len(sel.Options))
	}
	if sel.Options[0].Value != indexOptionValue {
		t.Fatalf("first option value = %q, want synthetic back option", sel.Options[0].Value)
	}
	if strings.Contains(sel.Placeholder, "[") {
		t.Fatalf("unsplit select carries a range label: %q", sel.Placeholder)
	}
	if sel.CustomID != "help_command_0" {
		t.Fatalf("custom ID = %q", sel.CustomID)
	}
}

func TestCommandSelectsSplitAtMaxMinusOne(t *testing.T) {
	selects := commandSelects("Stuff", rangedCommands(40))
	if len(selects) != 2 {
		t.Fatalf("got %d selects, want 2", len(selects))
	}

	// Chunk 0 covers [0,24), chunk 1 covers [24,40); each chunk also
	// carries the synthetic back option.
	if got := len(selects[0].Options); got != 25 {
		t.Fatalf("chunk 0 has %d options, want 25", got)
	}
	if got := len(selects[1].Options); got != 17 {
		t.Fatalf("chunk 1 has %d options, want 17", got)
	}
	for i, sel := range selects {
		if len(sel.Options) > selectMaxOptions {
			t.Fatalf("chunk %d exceeds the option limit with %d options", i, len(sel.Options))
		}
	}

	if selects[0].Options[1].Label != "a00" {
		t.Fatalf("chunk 0 starts with %q", selects[0].Options[1].Label)
	}
	if selects[1].Options[1].Label != "m24" {
		t.Fatalf("chunk 1 starts with %q", selects[1].Options[1].Label)
	}

	// Labels carry the alphabetic range of the chunk: commands 0-23 are
	// a..l, commands 24-39 are m..t.
	if !strings.HasSuffix(selects[0].Placeholder, "[A-L]") {
		t.Fatalf("chunk 0 placeholder = %q", selects[0].Placeholder)
	}
	if !strings.HasSuffix(selects[1].Placeholder, "[M-T]") {
		t.Fatalf("chunk 1 placeholder = %q", selects[1].Placeholder)
	}

	if selects[0].CustomID == selects[1].CustomID {
		t.Fatal("split selects share a custom ID")
	}
}

func TestCommandSelectOptionValuesAreQualified(t *testing.T) {
	group := &registry.Command{
		Name: "prefix",
		Subcommands: []*registry.Command{
			{Name: "show", Description: "show it"},
			{Name: "set", Description: "set it"},
		},
	}
	reg := registry.New()
	reg.Register("Settings", group)

	selects := commandSelects("prefix", group.Subcommands)
	if got := selects[0].Options[1].Value; got != "prefix show" {
		t.Fatalf("option value = %q, want qualified name", got)
	}
}

func TestCategorySelectSkipsEmptyCategories(t *testing.T) {
	src := testSource(registry.New())
	mapping := []categoryEntry{
		{category: &registry.Category{Name: "Full", Description: "has commands"}, commands: makeCommands(3)},
		{category: &registry.Category{Name: "Empty", Description: "nothing visible"}},
		{category: &registry.Category{Name: "Tagged", Description: "with emoji", Emoji: "☀️"}, commands: makeCommands(1)},
	}

	sel := categorySelect(src, mapping)
	if sel.CustomID != categorySelectID {
		t.Fatalf("custom ID = %q", sel.CustomID)
	}
	if len(sel.Options) != 3 {
		t.Fatalf("got %d options, want synthetic + 2 categories", len(sel.Options))
	}
	if sel.Options[0].Value != indexOptionValue {
		t.Fatalf("first option = %q, want synthetic index option", sel.Options[0].Value)
	}
	for _, opt := range sel.Options {
		if opt.Label == "Empty" {
			t.Fatal("empty category offered in category select")
		}
	}
	if sel.Options[2].Emoji == nil || sel.Options[2].Emoji.Name != "☀️" {
		t.Fatal("category emoji not carried into the option")
	}
}
