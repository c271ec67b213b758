// Package report handles plot submission messages in the team channels.
package report

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Nudelsuppe42/bte-games-extractor/config"
	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/parser"
	"github.com/Nudelsuppe42/bte-games-extractor/state"
)

// Handler processes inbound messages against the shared campaign state.
type Handler struct {
	cfg   *config.Config
	store *state.Store
}

func NewHandler(cfg *config.Config, store *state.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

// MessageCreate is the discordgo message handler. Parsing and validation
// errors only produce feedback; nothing is mutated for a rejected message.
// All Discord calls happen outside the store's critical section.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// Resubmissions are relayed as-is, independent of normal parsing.
	if IsResubmit(m.Content) {
		h.relayResubmit(s, m)
		return
	}

	ch, ok := h.store.Channel(m.ChannelID)
	if !ok {
		return
	}

	in, perr := parser.Parse(m.Content, m.Author.ID, ch.Team)
	if perr != nil {
		log.Printf("Rejected report from %s in %s: %v", m.Author.ID, ch.Team, perr)
		h.reject(s, m, perr)
		return
	}

	subs, verr := h.store.Accept(ch, in)
	if verr != nil {
		log.Printf("Rejected report from %s in %s: %v", m.Author.ID, ch.Team, verr)
		h.reject(s, m, verr)
		return
	}

	h.react(s, m.ChannelID, m.ID, "✅")
	log.Printf("Accepted %d submission(s) for %s, last id now #%d",
		len(subs), ch.Team, subs[len(subs)-1].ID)
}

func (h *Handler) reject(s *discordgo.Session, m *discordgo.MessageCreate, rerr *model.ReportError) {
	h.react(s, m.ChannelID, m.ID, "❌")
	h.replyEphemeral(s, m, rerr.Guidance)
}
