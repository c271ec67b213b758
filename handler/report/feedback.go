package report

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

// replyLifetime is how long a guidance reply stays before it is deleted.
const replyLifetime = 5 * time.Minute

// react adds a reaction marker. Best-effort: failures are logged and
// swallowed so feedback never blocks the rest of the processing.
func (h *Handler) react(s *discordgo.Session, channelID, messageID, emoji string) {
	if err := s.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		log.Printf("Failed to add %s reaction: %v", emoji, err)
	}
}

// replyEphemeral replies with guidance text and schedules the reply for
// deletion after replyLifetime, keeping the team channels readable.
func (h *Handler) replyEphemeral(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	msg, err := s.ChannelMessageSendReply(m.ChannelID, text, m.Reference())
	if err != nil {
		log.Printf("Failed to send guidance reply: %v", err)
		return
	}

	time.AfterFunc(replyLifetime, func() {
		if err := s.ChannelMessageDelete(msg.ChannelID, msg.ID); err != nil {
			log.Printf("Failed to delete guidance reply: %v", err)
		}
	})
}
