package help

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/hanabira-bot/hanabira/internal/registry"
)

// sessionTimeout is the inactivity window after which a help view removes
// its controls and ends.
const sessionTimeout = 30 * time.Second

const (
	firstButtonID = "help_first"
	prevButtonID  = "help_prev"
	nextButtonID  = "help_next"
	lastButtonID  = "help_last"
	exitButtonID  = "help_exit"

	componentPrefix = "help_"
)

// Discord allows at most five action rows per message; one is taken by the
// navigation buttons.
const maxSelectRows = 4

// Sender is the slice of *discordgo.Session the help system needs. It
// exists so the rendering and state logic can be exercised without a
// gateway connection.
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ Sender = (*discordgo.Session)(nil)

// view is one interactive help session: a bound requester, an owned
// message, the active paginator and the selects shown under it. A view is
// replaced-wholesale on selector use and ends on dismissal or timeout.
//
// discordgo dispatches each event handler on its own goroutine, so every
// state transition runs under mu; whichever of expiry and interaction locks
// first wins and the loser observes ended.
type view struct {
	mu  sync.Mutex
	src *Source

	paginator paginator
	selects   []discordgo.SelectMenu

	authorID  string
	channelID string
	messageID string
	prefix    string

	// Context for selector-driven paginator swaps.
	mapping        []categoryEntry
	setName        string
	setDescription string
	setCommands    []*registry.Command

	sender Sender
	timer  *time.Timer
	ended  bool
}

// Active views keyed by the ID of the message they own.
var (
	sessionsMu sync.RWMutex
	sessions   = make(map[string]*view)
)

// send posts the view's first render as a reply to the invoking message and
// starts the inactivity timer.
func (v *view) send(s Sender, m *discordgo.MessageCreate) {
	msg, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{v.paginator.current()},
		Components: v.components(),
		Reference:  m.Reference(),
	})
	if err != nil {
		log.Printf("Error sending help view: %v", err)
		return
	}

	v.sender = s
	v.channelID = msg.ChannelID
	v.messageID = msg.ID

	sessionsMu.Lock()
	sessions[msg.ID] = v
	sessionsMu.Unlock()

	v.timer = time.AfterFunc(sessionTimeout, v.expire)
}

// components renders the control rows for the current paginator position.
// Button states are derived from the cursor alone.
func (v *view) components() []discordgo.MessageComponent {
	multiPage := v.paginator.pageCount() > 1
	atFirst := !multiPage || v.paginator.isFirst()
	atLast := !multiPage || v.paginator.isLast()

	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "<<", Style: discordgo.SecondaryButton, CustomID: firstButtonID, Disabled: atFirst},
			discordgo.Button{Label: "Back", Style: discordgo.PrimaryButton, CustomID: prevButtonID, Disabled: atFirst},
			discordgo.Button{Label: "Next", Style: discordgo.PrimaryButton, CustomID: nextButtonID, Disabled: atLast},
			discordgo.Button{Label: ">>", Style: discordgo.SecondaryButton, CustomID: lastButtonID, Disabled: atLast},
			discordgo.Button{Label: "Exit", Style: discordgo.DangerButton, CustomID: exitButtonID},
		}},
	}
	for i, sel := range v.selects {
		if i == maxSelectRows {
			break
		}
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{sel}})
	}
	return rows
}

// IsComponent reports whether a component custom ID belongs to the help UI.
func IsComponent(customID string) bool {
	return strings.HasPrefix(customID, componentPrefix)
}

// HandleComponent routes a help component interaction to its owning view.
func HandleComponent(s Sender, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent || i.Message == nil {
		return
	}
	data := i.MessageComponentData()
	if !IsComponent(data.CustomID) {
		return
	}

	sessionsMu.RLock()
	v := sessions[i.Message.ID]
	sessionsMu.RUnlock()
	if v == nil {
		respondEphemeral(s, i, "This help menu has expired.")
		return
	}
	v.handle(s, i, data)
}

func (v *view) handle(s Sender, i *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	if interactionUserID(i) != v.authorID {
		respondEphemeral(s, i, "This help menu is not for you.")
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ended {
		respondEphemeral(s, i, "This help menu has expired.")
		return
	}
	v.timer.Reset(sessionTimeout)

	switch data.CustomID {
	case firstButtonID:
		v.paginator.first()
		v.respondUpdate(s, i)
	case prevButtonID:
		v.paginator.previous()
		v.respondUpdate(s, i)
	case nextButtonID:
		v.paginator.next()
		v.respondUpdate(s, i)
	case lastButtonID:
		v.paginator.last()
		v.respondUpdate(s, i)
	case exitButtonID:
		v.dismiss(s, i)
	case categorySelectID:
		v.pickCategory(s, i, data.Values)
	default:
		if strings.HasPrefix(data.CustomID, commandSelectPrefix) {
			v.pickCommand(s, i, data.Values)
			return
		}
		log.Printf("Unknown help component interaction: %s", data.CustomID)
	}
}

// respondUpdate answers a button press by editing the message through the
// interaction response.
func (v *view) respondUpdate(s Sender, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{v.paginator.current()},
			Components: v.components(),
		},
	})
	if err != nil {
		log.Printf("Error updating help view: %v", err)
	}
}

// pickCategory swaps the active paginator for the chosen category, or back
// to the index. The interaction is acknowledged before any state changes so
// slow edits cannot time out the acknowledgment.
func (v *view) pickCategory(s Sender, i *discordgo.InteractionCreate, values []string) {
	if len(values) == 0 {
		return
	}
	v.acknowledge(s, i)

	value := values[0]
	if value == indexOptionValue {
		v.changePaginator(s, newIndexPaginator(v.src, v.prefix, v.mapping))
		return
	}
	for _, entry := range v.mapping {
		if entry.category.Name == value {
			v.changePaginator(s, newCategoryPaginator(v.src, v.prefix, entry.category.Name, entry.category.Description, entry.commands))
			return
		}
	}
	log.Printf("Help category selection for unknown category: %s", value)
}

// pickCommand swaps the active paginator for the chosen command, or back to
// the command set the select was built for.
func (v *view) pickCommand(s Sender, i *discordgo.InteractionCreate, values []string) {
	if len(values) == 0 {
		return
	}
	v.acknowledge(s, i)

	value := values[0]
	if value == indexOptionValue {
		v.changePaginator(s, newCategoryPaginator(v.src, v.prefix, v.setName, v.setDescription, v.setCommands))
		return
	}
	cmd, ok := v.src.Registry.Lookup(value)
	if !ok {
		log.Printf("Help command selection for unknown command: %s", value)
		return
	}
	v.changePaginator(s, newCommandPaginator(v.src, v.prefix, cmd))
}

// changePaginator replaces the active paginator wholesale and re-renders.
// The fresh paginator starts at its own first page, so the button states
// simply derive from it.
func (v *view) changePaginator(s Sender, p paginator) {
	v.paginator = p

	embeds := []*discordgo.MessageEmbed{v.paginator.current()}
	components := v.components()
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    v.channelID,
		ID:         v.messageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		log.Printf("Error editing help view: %v", err)
	}
}

// dismiss ends the session on user request, stripping the controls but
// keeping the last rendered page.
func (v *view) dismiss(s Sender, i *discordgo.InteractionCreate) {
	v.end()
	v.acknowledge(s, i)
	v.clearComponents(s)
}

// expire fires from the inactivity timer. A session that was dismissed (or
// already expired) in the meantime is left alone.
func (v *view) expire() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ended {
		return
	}
	v.end()
	v.clearComponents(v.sender)
}

// end marks the session finished and forgets it. Callers hold v.mu.
func (v *view) end() {
	v.ended = true
	if v.timer != nil {
		v.timer.Stop()
	}
	sessionsMu.Lock()
	delete(sessions, v.messageID)
	sessionsMu.Unlock()
}

// clearComponents removes every control from the owned message, leaving the
// content in place.
func (v *view) clearComponents(s Sender) {
	if s == nil || v.messageID == "" {
		return
	}
	components := []discordgo.MessageComponent{}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    v.channelID,
		ID:         v.messageID,
		Components: &components,
	})
	if err != nil {
		log.Printf("Error clearing help view components: %v", err)
	}
}

// acknowledge defers the interaction so the follow-up edit can take its
// time.
func (v *view) acknowledge(s Sender, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Error acknowledging help interaction: %v", err)
	}
}

// respondEphemeral sends a private notice visible only to the interacting
// user.
func respondEphemeral(s Sender, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending ephemeral help response: %v", err)
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
