package help

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

func testSource(reg *registry.Registry) *Source {
	return &Source{
		Registry:    reg,
		Prefix:      func(string) string { return "!" },
		BotName:     "Testbot",
		Description: "A bot under test.",
		Color:       0x123456,
	}
}

func makeCommands(n int) []*registry.Command {
	cmds := make([]*registry.Command, n)
	for i := range cmds {
		cmds[i] = &registry.Command{
			Name:        fmt.Sprintf("cmd%02d", i),
			Description: fmt.Sprintf("description of cmd%02d", i),
		}
	}
	return cmds
}

func TestCursorStaysClampedUnderAnyOpSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nPages := rapid.IntRange(1, 40).Draw(t, "nPages")
		p := newBasePaginator(nPages)

		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 200).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				p.previous()
			case 1:
				p.next()
			case 2:
				p.first()
			case 3:
				p.last()
			}

			if p.idx < 0 || p.idx >= p.nPages {
				t.Fatalf("cursor %d out of range [0,%d)", p.idx, p.nPages)
			}
			if got, want := p.isFirst(), p.idx == 0; got != want {
				t.Fatalf("isFirst() = %v at cursor %d", got, p.idx)
			}
			if got, want := p.isLast(), p.idx == p.nPages-1; got != want {
				t.Fatalf("isLast() = %v at cursor %d of %d", got, p.idx, p.nPages)
			}
		}
	})
}

func TestSinglePageIsBothFirstAndLast(t *testing.T) {
	p := newBasePaginator(1)
	if !p.isFirst() || !p.isLast() {
		t.Fatal("single page paginator must be at both boundaries")
	}
	p.next()
	p.previous()
	p.last()
	if p.idx != 0 {
		t.Fatalf("cursor moved to %d on a single page", p.idx)
	}
}

func TestClampAtBoundaries(t *testing.T) {
	p := newBasePaginator(3)
	p.previous()
	if p.idx != 0 {
		t.Fatalf("previous at first page moved cursor to %d", p.idx)
	}
	p.last()
	p.next()
	if p.idx != 2 {
		t.Fatalf("next at last page moved cursor to %d", p.idx)
	}
}

func TestIndexPaginatorDropsEmptyCategories(t *testing.T) {
	// 21 categories, three of them with zero visible commands.
	empty := map[int]bool{2: true, 9: true, 16: true}
	mapping := make([]categoryEntry, 0, 21)
	for i := 0; i < 21; i++ {
		entry := categoryEntry{
			category: &registry.Category{Name: fmt.Sprintf("cat%02d", i), Description: "some category"},
		}
		if !empty[i] {
			entry.commands = makeCommands(1 + i%3)
		}
		mapping = append(mapping, entry)
	}

	p := newIndexPaginator(testSource(registry.New()), "!", mapping)

	if got := p.pageCount(); got != 2 {
		t.Fatalf("pageCount = %d, want 2", got)
	}
	for page := 0; page < 2; page++ {
		embed := p.current()
		if len(embed.Fields) != 9 {
			t.Fatalf("page %d has %d fields, want 9", page, len(embed.Fields))
		}
		for _, f := range embed.Fields {
			for i := range empty {
				if strings.Contains(f.Name, fmt.Sprintf("cat%02d", i)) {
					t.Fatalf("empty category %q rendered on page %d", f.Name, page)
				}
			}
		}
		p.next()
	}
}

func TestIndexPaginatorTitleSuffix(t *testing.T) {
	mapping := []categoryEntry{{
		category: &registry.Category{Name: "Only", Description: "d"},
		commands: makeCommands(2),
	}}
	p := newIndexPaginator(testSource(registry.New()), "!", mapping)
	if got := p.current().Title; got != "Testbot" {
		t.Fatalf("single page title = %q, want no page marker", got)
	}

	big := make([]categoryEntry, 12)
	for i := range big {
		big[i] = categoryEntry{
			category: &registry.Category{Name: fmt.Sprintf("cat%02d", i), Description: "d"},
			commands: makeCommands(1),
		}
	}
	p = newIndexPaginator(testSource(registry.New()), "!", big)
	if got := p.current().Title; got != "Testbot [1/2]" {
		t.Fatalf("multi page title = %q, want %q", got, "Testbot [1/2]")
	}
	p.next()
	if got := p.current().Title; got != "Testbot [2/2]" {
		t.Fatalf("second page title = %q, want %q", got, "Testbot [2/2]")
	}
}

func TestCategoryPaginatorSlicing(t *testing.T) {
	src := testSource(registry.New())
	cmds := makeCommands(17)
	p := newCategoryPaginator(src, "!", "Stuff", "stuff commands", cmds)

	if got := p.pageCount(); got != 3 {
		t.Fatalf("pageCount = %d, want 3", got)
	}

	wantCounts := []int{8, 8, 1}
	for page, want := range wantCounts {
		embed := p.current()
		if len(embed.Fields) != want {
			t.Fatalf("page %d has %d fields, want %d", page, len(embed.Fields), want)
		}
		p.next()
	}

	// Last page holds exactly the tail command.
	p.last()
	if got := p.current().Fields[0].Name; got != "cmd16" {
		t.Fatalf("last page field = %q, want cmd16", got)
	}
}

func TestCategoryPaginatorFallbackDescription(t *testing.T) {
	src := testSource(registry.New())
	cmds := []*registry.Command{{Name: "bare"}}
	p := newCategoryPaginator(src, "!", "Stuff", "d", cmds)
	if got := p.current().Fields[0].Value; got != noHelpFallback {
		t.Fatalf("fallback description = %q, want %q", got, noHelpFallback)
	}
}

func TestPageCacheReturnsSameEmbed(t *testing.T) {
	p := newCategoryPaginator(testSource(registry.New()), "!", "Stuff", "d", makeCommands(17))

	a := p.current()
	b := p.current()
	if a != b {
		t.Fatal("current() rebuilt an already cached page")
	}

	p.next()
	c := p.current()
	if c == a {
		t.Fatal("distinct pages share an embed")
	}
	p.previous()
	if p.current() != a {
		t.Fatal("revisited page was not served from cache")
	}
}

func TestCommandPaginatorEmbed(t *testing.T) {
	reg := registry.New()
	cmd := &registry.Command{
		Name:      "greet",
		Aliases:   []string{"hi", "hello"},
		Signature: "<user>",
		Help:      "Greets someone politely.",
	}
	reg.Register("General", cmd)

	p := newCommandPaginator(testSource(reg), "!", cmd)
	if got := p.pageCount(); got != 1 {
		t.Fatalf("pageCount = %d, want 1", got)
	}

	embed := p.current()
	if embed.Title != "greet command" {
		t.Fatalf("title = %q", embed.Title)
	}
	if embed.Description != "Greets someone politely." {
		t.Fatalf("description = %q", embed.Description)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("got %d fields, want aliases + usage", len(embed.Fields))
	}
	if embed.Fields[0].Value != "hi hello" {
		t.Fatalf("aliases = %q", embed.Fields[0].Value)
	}
	if embed.Fields[1].Value != "!greet <user>" {
		t.Fatalf("usage = %q", embed.Fields[1].Value)
	}
	if embed.Footer.Text != "Category: General" {
		t.Fatalf("footer = %q", embed.Footer.Text)
	}
}

func TestCommandPaginatorFallbacks(t *testing.T) {
	cmd := &registry.Command{Name: "bare"}
	p := newCommandPaginator(testSource(registry.New()), "!", cmd)

	embed := p.current()
	if embed.Description != noHelpFallback {
		t.Fatalf("description = %q, want fallback", embed.Description)
	}
	if embed.Footer.Text != "Category: "+noCategoryFallback {
		t.Fatalf("footer = %q", embed.Footer.Text)
	}
	// No aliases, so the only field is usage.
	if len(embed.Fields) != 1 || embed.Fields[0].Name != "Usage" {
		t.Fatalf("fields = %+v", embed.Fields)
	}
}
