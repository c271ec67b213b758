package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nudelsuppe42/bte-games-extractor/config"
	"github.com/Nudelsuppe42/bte-games-extractor/export"
	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/state"
)

type fakeSink struct {
	updates [][]export.RangeUpdate
	err     error
}

func (f *fakeSink) Push(updates []export.RangeUpdate) error {
	f.updates = append(f.updates, updates)
	return f.err
}

func newTestSetup(t *testing.T) (*state.Store, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		Round:  3,
		Export: config.Export{Dir: t.TempDir()},
		Channels: []model.ChannelConfig{
			{
				ChannelID: "chan-alpha",
				Team:      "alpha",
				Sheet:     "Alpha",
				BaseID:    0,
				Bounds:    model.Bounds{LatMin: 40, LatMax: 50, LngMin: -10, LngMax: 10},
			},
		},
	}
	return state.NewStore(cfg.Channels), cfg
}

func acceptPlots(t *testing.T, store *state.Store, ids []int64) {
	t.Helper()
	ch, ok := store.Channel("chan-alpha")
	require.True(t, ok)
	_, verr := store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: ids, Lat: "45.0", Lng: "0.0",
	})
	require.Nil(t, verr)
}

func snapshotLines(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func Test_Flush_writes_snapshot_and_sheet_payload(t *testing.T) {
	store, cfg := newTestSetup(t)
	acceptPlots(t, store, []int64{1, 2})

	sink := &fakeSink{}
	exporter := export.NewExporter(store, cfg, sink, nil)

	require.NoError(t, exporter.Flush())

	lines := snapshotLines(t, cfg.Export.Dir)
	require.Len(t, lines, 3) // header + 2 data rows
	assert.Equal(t, "team,id,round,lat,lng,user,reviewer,size,road,field,complexity,quality,hindrances,trial,2x", lines[0])
	assert.Equal(t, "alpha,1,3,45.0,0.0,u1,,n,,,,,n,,n", lines[1])
	assert.Equal(t, "alpha,2,3,45.0,0.0,u1,,n,,,,,n,,n", lines[2])

	require.Len(t, sink.updates, 1)
	require.Len(t, sink.updates[0], 1)
	update := sink.updates[0][0]
	assert.Equal(t, "'Alpha'!A5", update.Range) // first id 1 -> row 5
	require.Len(t, update.Values, 2)
	assert.Equal(t, "1", update.Values[0][0])
	assert.Equal(t, "3", update.Values[0][1]) // round

	// Buffer cleared, baseline advanced to the last accepted id.
	assert.Empty(t, store.DrainAll())
	assert.Equal(t, int64(2), cfg.Channels[0].BaseID)
}

func Test_Flush_without_data_is_a_noop(t *testing.T) {
	store, cfg := newTestSetup(t)
	sink := &fakeSink{}
	exporter := export.NewExporter(store, cfg, sink, nil)

	require.NoError(t, exporter.Flush())

	entries, err := os.ReadDir(cfg.Export.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, sink.updates)
	assert.Equal(t, int64(0), cfg.Channels[0].BaseID)
}

func Test_Flush_restores_buffer_when_sink_fails(t *testing.T) {
	store, cfg := newTestSetup(t)
	acceptPlots(t, store, []int64{1, 2})

	sink := &fakeSink{err: errors.New("authorization expired")}
	exporter := export.NewExporter(store, cfg, sink, nil)

	err := exporter.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet push failed")

	// Nothing is lost: the drained batch is buffered again for the next
	// cycle, in order.
	buffered := store.DrainAll()["alpha"]
	require.Len(t, buffered, 2)
	assert.Equal(t, int64(1), buffered[0].ID)
	assert.Equal(t, int64(2), buffered[1].ID)
}

func Test_Flush_road_and_field_rows(t *testing.T) {
	store, cfg := newTestSetup(t)
	ch, _ := store.Channel("chan-alpha")
	_, verr := store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{1}, Lat: "45.0", Lng: "0.0",
		Road: true, Trial: true,
	})
	require.Nil(t, verr)

	exporter := export.NewExporter(store, cfg, &fakeSink{}, nil)
	require.NoError(t, exporter.Flush())

	lines := snapshotLines(t, cfg.Export.Dir)
	require.Len(t, lines, 2)
	// Road plots have no size marker and carry the road and trial flags.
	assert.Equal(t, "alpha,1,3,45.0,0.0,u1,,,y,,,,n,y,n", lines[1])
}
