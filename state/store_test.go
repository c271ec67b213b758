package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/parser"
	"github.com/Nudelsuppe42/bte-games-extractor/state"
)

func newTestStore() *state.Store {
	return state.NewStore([]model.ChannelConfig{
		{
			ChannelID: "chan-alpha",
			Team:      "alpha",
			Sheet:     "Alpha",
			BaseID:    0,
			Bounds:    model.Bounds{LatMin: 40, LatMax: 50, LngMin: -10, LngMax: 10},
		},
		{
			ChannelID: "chan-beta",
			Team:      "beta",
			Sheet:     "Beta",
			BaseID:    100,
			Bounds:    model.Bounds{LatMin: 40, LatMax: 50, LngMin: -10, LngMax: 10},
		},
	})
}

func Test_Accept_end_to_end(t *testing.T) {
	store := newTestStore()
	ch, ok := store.Channel("chan-alpha")
	require.True(t, ok)

	in, perr := parser.Parse("#1 45.0 0.0 road", "user1", ch.Team)
	require.Nil(t, perr)

	subs, verr := store.Accept(ch, in)
	require.Nil(t, verr)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.True(t, subs[0].Road)
	assert.False(t, subs[0].Field)
	assert.False(t, subs[0].Trial)
	assert.Equal(t, int64(1), store.LastID("chan-alpha"))

	// Re-submitting the same id must fail against the advanced counter.
	in, perr = parser.Parse("#1 45.0 0.0", "user1", ch.Team)
	require.Nil(t, perr)

	_, verr = store.Accept(ch, in)
	require.NotNil(t, verr)
	assert.Equal(t, model.ErrSequence, verr.Code)
	assert.Contains(t, verr.Detail, "last: 1")
}

func Test_Accept_counters_are_per_channel(t *testing.T) {
	store := newTestStore()
	alpha, _ := store.Channel("chan-alpha")
	beta, _ := store.Channel("chan-beta")

	_, verr := store.Accept(alpha, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{1}, Lat: "45.0", Lng: "0.0",
	})
	require.Nil(t, verr)

	// Beta starts from its own baseline of 100.
	_, verr = store.Accept(beta, &model.SubmissionInput{
		UserID: "u2", Team: "beta", IDs: []int64{101}, Lat: "45.0", Lng: "0.0",
	})
	require.Nil(t, verr)

	assert.Equal(t, int64(1), store.LastID("chan-alpha"))
	assert.Equal(t, int64(101), store.LastID("chan-beta"))
}

func Test_Accept_oversized_batch_leaves_state_unchanged(t *testing.T) {
	store := newTestStore()
	ch, _ := store.Channel("chan-alpha")

	in, perr := parser.Parse("#1-21 45.0 0.0", "user1", ch.Team)
	require.Nil(t, perr)

	_, verr := store.Accept(ch, in)
	require.NotNil(t, verr)
	assert.Equal(t, model.ErrBatchTooLarge, verr.Code)
	assert.Equal(t, int64(0), store.LastID("chan-alpha"))
	assert.Empty(t, store.DrainAll())
}

func Test_Accept_out_of_bounds_leaves_state_unchanged(t *testing.T) {
	store := newTestStore()
	ch, _ := store.Channel("chan-alpha")

	_, verr := store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{1}, Lat: "39.0", Lng: "0.0",
	})
	require.NotNil(t, verr)
	assert.Equal(t, model.ErrBounds, verr.Code)
	assert.Equal(t, int64(0), store.LastID("chan-alpha"))
	assert.Empty(t, store.DrainAll())
}

func Test_DrainAll_clears_buffers(t *testing.T) {
	store := newTestStore()
	ch, _ := store.Channel("chan-alpha")

	in, perr := parser.Parse("#1-3 45.0 0.0", "user1", ch.Team)
	require.Nil(t, perr)
	_, verr := store.Accept(ch, in)
	require.Nil(t, verr)

	drained := store.DrainAll()
	require.Len(t, drained["alpha"], 3)
	assert.Empty(t, store.DrainAll())

	// The counter survives the drain: numbering continues at 4.
	_, verr = store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{4}, Lat: "45.0", Lng: "0.0",
	})
	assert.Nil(t, verr)
}

func Test_Restore_puts_drained_batch_in_front(t *testing.T) {
	store := newTestStore()
	ch, _ := store.Channel("chan-alpha")

	_, verr := store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{1, 2}, Lat: "45.0", Lng: "0.0",
	})
	require.Nil(t, verr)

	drained := store.DrainAll()
	require.Len(t, drained["alpha"], 2)

	// A submission lands while the failed flush is in flight.
	_, verr = store.Accept(ch, &model.SubmissionInput{
		UserID: "u1", Team: "alpha", IDs: []int64{3}, Lat: "45.0", Lng: "0.0",
	})
	require.Nil(t, verr)

	store.Restore(drained)

	buffered := store.DrainAll()["alpha"]
	require.Len(t, buffered, 3)
	assert.Equal(t, int64(1), buffered[0].ID)
	assert.Equal(t, int64(2), buffered[1].ID)
	assert.Equal(t, int64(3), buffered[2].ID)
}
