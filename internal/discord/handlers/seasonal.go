package handlers

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// nicknameLimit is Discord's maximum nickname length.
const nicknameLimit = 32

// season is a yearly window during which a decorative emote may be added to
// nicknames. Windows may wrap the year boundary (Dec 31 - Jan 1).
type season struct {
	name       string
	emote      string
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

// ordinal collapses a month/day pair into a single comparable value.
func ordinal(month, day int) int {
	return month*31 + day
}

func (se season) start() int { return ordinal(se.startMonth, se.startDay) }
func (se season) end() int   { return ordinal(se.endMonth, se.endDay) }

func (se season) contains(month, day int) bool {
	n := ordinal(month, day)
	if se.start() > se.end() {
		return n >= se.start() || n <= se.end()
	}
	return n >= se.start() && n <= se.end()
}

func (se season) startStr() string { return fmt.Sprintf("%d.%d", se.startMonth, se.startDay) }
func (se season) endStr() string   { return fmt.Sprintf("%d.%d", se.endMonth, se.endDay) }

var seasons = []season{
	{"xmasthing", "🎄", 12, 1, 12, 30},
	{"rainbow", "🌈", 6, 1, 6, 31},
	{"pumpkin", "🎃", 10, 1, 10, 31},
	{"turkey", "🦃", 11, 1, 11, 30},
	{"fireworks", "🎆", 12, 31, 1, 1},
	{"shamrock", "🍀", 3, 16, 3, 17},
}

// currentSeason returns the season covering a point in time, if any.
func currentSeason(t time.Time) (season, bool) {
	for _, se := range seasons {
		if se.contains(int(t.Month()), t.Day()) {
			return se, true
		}
	}
	return season{}, false
}

func seasonByName(name string) (season, bool) {
	for _, se := range seasons {
		if se.name == name || se.emote == name {
			return se, true
		}
	}
	return season{}, false
}

func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	return m.Author.Username
}

// HandleSeasonal handles the !seasonal command: appends the current
// season's emote to the caller's nickname.
func HandleSeasonal(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		sendText(s, m.ChannelID, "This command can only be used in a server.")
		return
	}

	se, ok := currentSeason(time.Now())
	if !ok {
		sendText(s, m.ChannelID, "There is no special season happening right now or it hasn't been implemented yet.")
		return
	}

	name := displayName(m)
	if strings.HasSuffix(name, se.emote) {
		sendText(s, m.ChannelID, fmt.Sprintf("Your shown name already ends in a %s!", se.emote))
		return
	}

	newNick := name + " " + se.emote
	if length := len([]rune(newNick)); length > nicknameLimit {
		sendText(s, m.ChannelID, fmt.Sprintf("💢 Your name is too long! (max is %d characters, yours would be %d)", nicknameLimit, length))
		return
	}

	setNickname(s, m, newNick)
}

// HandleNoSeasonal handles the !noseasonal command: strips the current (or
// a named) season's emote from the caller's nickname.
func HandleNoSeasonal(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		sendText(s, m.ChannelID, "This command can only be used in a server.")
		return
	}

	var se season
	var ok bool
	if len(args) > 1 {
		if se, ok = seasonByName(strings.ToLower(args[1])); !ok {
			sendText(s, m.ChannelID, "There is no season with the name you specified.")
			return
		}
	} else if se, ok = currentSeason(time.Now()); !ok {
		sendText(s, m.ChannelID, "There is no special season happening right now or it hasn't been implemented yet.")
		return
	}

	nick := ""
	if m.Member != nil {
		nick = m.Member.Nick
	}

	if nick == "" {
		if strings.Contains(m.Author.Username, se.emote) {
			sendText(s, m.ChannelID, fmt.Sprintf("Your username is the one with a %s", se.name))
		} else {
			sendText(s, m.ChannelID, fmt.Sprintf("You don't have a %s", se.name))
		}
		return
	}

	idx := strings.LastIndex(nick, se.emote)
	if idx < 0 {
		sendText(s, m.ChannelID, fmt.Sprintf("Your nickname doesn't contain the current/requested seasonal emote [%s | '%s']", se.emote, se.name))
		return
	}

	newNick := strings.TrimSpace(nick[:idx] + nick[idx+len(se.emote):])
	if newNick == "" {
		sendText(s, m.ChannelID, "💢 I can't completely remove your nick!")
		return
	}

	setNickname(s, m, newNick)
}

// HandleSeasonals handles the !seasonals command: lists all seasons in a
// monospace table.
func HandleSeasonals(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	sendText(s, m.ChannelID, seasonsTable())
}

func seasonsTable() string {
	sorted := make([]season, len(seasons))
	copy(sorted, seasons)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start() < sorted[j].start() })

	var b strings.Builder
	b.WriteString("The following seasons exist on this server:\n```\n")
	fmt.Fprintf(&b, "%-6s | %-6s | %s | %s\n", "start", "end", "emote", "emote_name")
	b.WriteString(strings.Repeat("=", 36) + "\n")
	for _, se := range sorted {
		fmt.Fprintf(&b, "%-6s | %-6s | %s | %s\n", se.startStr(), se.endStr(), se.emote, se.name)
	}
	b.WriteString("```")
	return b.String()
}

func setNickname(s *discordgo.Session, m *discordgo.MessageCreate, nick string) {
	if err := s.GuildMemberNickname(m.GuildID, m.Author.ID, nick); err != nil {
		log.Printf("Error changing nickname for %s: %v", m.Author.ID, err)
		sendText(s, m.ChannelID, "💢 I can't change your nickname! (Permission Error)")
		return
	}
	sendText(s, m.ChannelID, fmt.Sprintf("Your nickname is now `%s`", nick))
}
