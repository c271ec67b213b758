package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Nudelsuppe42/bte-games-extractor/config"
	"github.com/Nudelsuppe42/bte-games-extractor/db"
	"github.com/Nudelsuppe42/bte-games-extractor/export"
	"github.com/Nudelsuppe42/bte-games-extractor/handler/report"
	"github.com/Nudelsuppe42/bte-games-extractor/state"
)

var dg *discordgo.Session

// Start wires the whole bot together and blocks until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}
	if config.Cfg.Token == "" {
		log.Printf("Warning: Token is empty!")
	}

	db.InitDB()

	store := state.NewStore(config.Cfg.Channels)
	handler := report.NewHandler(&config.Cfg, store)

	// Create a new Discord session using the provided bot token.
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg, handler)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	var sink export.Sink
	if config.Cfg.Sheets.SpreadsheetID != "" {
		sheetsSink, err := export.NewSheetsSink(config.Cfg.Sheets.SpreadsheetID, config.Cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Printf("Sheets client unavailable, continuing without sheet sink: %v", err)
		} else {
			sink = sheetsSink
		}
	}

	exporter := export.NewExporter(store, &config.Cfg, sink, dg)
	if err := exporter.Start(); err != nil {
		log.Printf("Failed to start exporter: %v", err)
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	exporter.Stop()
	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
