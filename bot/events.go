package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Nudelsuppe42/bte-games-extractor/handler/report"
)

func registerEventHandlers(s *discordgo.Session, h *report.Handler) {
	s.AddHandler(h.MessageCreate)

	// Message content requires the privileged intent.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
}
