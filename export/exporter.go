// Package export drains the submission buffers on a fixed schedule and
// turns them into a CSV snapshot, a local archive entry and one batched
// update to the review spreadsheet.
package export

import (
	"fmt"
	"log"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"

	"github.com/Nudelsuppe42/bte-games-extractor/config"
	"github.com/Nudelsuppe42/bte-games-extractor/db"
	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/state"
)

// sheetDataOffset converts a plot id into the spreadsheet row holding it:
// the sheets carry a three-row header, so plot #1 lives in row 5.
const sheetDataOffset = 4

// Exporter runs the periodic flush cycle. A nil sink or session disables
// the corresponding output, which keeps the cycle testable offline.
type Exporter struct {
	store   *state.Store
	cfg     *config.Config
	sink    Sink
	session *discordgo.Session
	cron    *cron.Cron
}

func NewExporter(store *state.Store, cfg *config.Config, sink Sink, session *discordgo.Session) *Exporter {
	return &Exporter{store: store, cfg: cfg, sink: sink, session: session}
}

// Start schedules Flush on the configured cron spec (hourly by default).
func (e *Exporter) Start() error {
	e.cron = cron.New()
	_, err := e.cron.AddFunc(e.cfg.Export.Cron, func() {
		if err := e.Flush(); err != nil {
			log.Printf("Flush cycle failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	e.cron.Start()
	log.Printf("Exporter scheduled (%s)", e.cfg.Export.Cron)
	return nil
}

// Stop halts the schedule. A flush already in progress finishes.
func (e *Exporter) Stop() {
	if e.cron != nil {
		e.cron.Stop()
	}
}

// Flush drains all team buffers and exports them. Snapshot, archive and
// baseline writes are kept even when the sheet push fails; the drained
// submissions are only dropped for good once the push succeeded, otherwise
// they are restored for the next cycle.
func (e *Exporter) Flush() error {
	drained := e.store.DrainAll()
	if len(drained) == 0 {
		return nil
	}

	teams := lo.Keys(drained)
	sort.Strings(teams)

	var csvRows [][]string
	var updates []RangeUpdate
	for _, team := range teams {
		subs := drained[team]
		for _, sub := range subs {
			csvRows = append(csvRows, csvRow(e.cfg.Round, sub))
		}

		sheet, ok := e.sheetForTeam(team)
		if !ok {
			log.Printf("No sheet configured for team %s, skipping sheet update", team)
			continue
		}
		updates = append(updates, RangeUpdate{
			Range: fmt.Sprintf("'%s'!A%d", sheet, subs[0].ID+sheetDataOffset),
			Values: lo.Map(subs, func(sub model.Submission, _ int) []interface{} {
				return sheetRow(e.cfg.Round, sub)
			}),
		})
	}

	path, err := WriteSnapshot(e.cfg.Export.Dir, csvRows)
	if err != nil {
		e.store.Restore(drained)
		return fmt.Errorf("snapshot write failed: %w", err)
	}
	log.Printf("Wrote snapshot %s (%d rows)", path, len(csvRows))

	if e.session != nil && e.cfg.LogChannelID != "" {
		forwardSnapshot(e.session, e.cfg.LogChannelID, path)
	}

	// The archive is an audit trail on top of the snapshot; a failure here
	// must not hold up the cycle.
	if db.DB != nil {
		if _, err := db.ArchiveFlush(e.cfg.Round, path, drained); err != nil {
			log.Printf("Failed to archive flush: %v", err)
		}
	}

	e.persistBaselines()

	if e.sink != nil && len(updates) > 0 {
		if err := e.sink.Push(updates); err != nil {
			e.store.Restore(drained)
			return fmt.Errorf("sheet push failed: %w", err)
		}
	}

	log.Printf("Flush cycle complete: %d submissions from %d teams", len(csvRows), len(drained))
	return nil
}

// persistBaselines rewrites every channel's baseline as its current last
// accepted id. For idle channels the value is unchanged, so the global
// rewrite is equivalent to a per-channel one.
func (e *Exporter) persistBaselines() {
	for i := range e.cfg.Channels {
		ch := &e.cfg.Channels[i]
		ch.BaseID = e.store.LastID(ch.ChannelID)
	}
	if err := config.Save(); err != nil {
		log.Printf("Failed to persist baselines: %v", err)
	}
}

func (e *Exporter) sheetForTeam(team string) (string, bool) {
	for _, ch := range e.cfg.Channels {
		if ch.Team == team {
			return ch.Sheet, true
		}
	}
	return "", false
}
