package report

import (
	"log"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var resubmitRe = regexp.MustCompile(`(?i)resubmit`)

// IsResubmit reports whether the message asks for a resubmission review.
func IsResubmit(text string) bool {
	return resubmitRe.MatchString(text)
}

// StripResubmit removes the resubmit token and literal brackets from the
// relayed text.
func StripResubmit(text string) string {
	text = resubmitRe.ReplaceAllString(text, "")
	text = strings.NewReplacer("[", "", "]", "").Replace(text)
	return strings.TrimSpace(text)
}

// relayResubmit forwards the message to the resubmission channel. No
// validation happens here, it is a plain text relay.
func (h *Handler) relayResubmit(s *discordgo.Session, m *discordgo.MessageCreate) {
	if h.cfg.ResubmitChannelID == "" {
		log.Printf("Resubmit requested but no resubmit channel configured")
		return
	}

	_, err := s.ChannelMessageSend(h.cfg.ResubmitChannelID, StripResubmit(m.Content))
	if err != nil {
		log.Printf("Failed to relay resubmission: %v", err)
		return
	}

	h.react(s, m.ChannelID, m.ID, "✅")
}
