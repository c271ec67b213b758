// Package state owns the mutable campaign state: per-channel last-accepted
// plot ids and per-team submission buffers. One Store is built at startup
// and passed into the handler and the exporter; nothing else holds state.
package state

import (
	"sync"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/validate"
)

// Store guards all counters and buffers behind one mutex. Accept runs the
// whole read-validate-append-advance transition while holding the lock, so
// two messages racing on the same channel can never both pass sequence
// validation against a stale last id. Handlers must do all Discord I/O
// before or after calling in here, never in between.
type Store struct {
	mu       sync.Mutex
	channels map[string]*model.ChannelConfig
	lastIDs  map[string]int64              // channel id -> last accepted plot id
	buffers  map[string][]model.Submission // team -> pending submissions
}

// NewStore seeds the counters from the configured baselines.
func NewStore(channels []model.ChannelConfig) *Store {
	s := &Store{
		channels: make(map[string]*model.ChannelConfig, len(channels)),
		lastIDs:  make(map[string]int64, len(channels)),
		buffers:  make(map[string][]model.Submission),
	}
	for i := range channels {
		ch := &channels[i]
		s.channels[ch.ChannelID] = ch
		s.lastIDs[ch.ChannelID] = ch.BaseID
	}
	return s
}

// Channel looks up the configuration for a channel id.
func (s *Store) Channel(channelID string) (*model.ChannelConfig, bool) {
	ch, ok := s.channels[channelID]
	return ch, ok
}

// Accept validates the input against the channel's sequence and bounds and,
// on success, appends the expanded submissions to the team buffer and
// advances the channel counter as a single atomic transition. On failure
// nothing is mutated.
func (s *Store) Accept(ch *model.ChannelConfig, in *model.SubmissionInput) ([]model.Submission, *model.ReportError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newLast, verr := validate.Sequence(s.lastIDs[ch.ChannelID], in.IDs)
	if verr != nil {
		return nil, verr
	}
	if verr := validate.Bounds(ch.Bounds, in.Lat, in.Lng); verr != nil {
		return nil, verr
	}

	subs := in.Expand()
	s.buffers[ch.Team] = append(s.buffers[ch.Team], subs...)
	s.lastIDs[ch.ChannelID] = newLast
	return subs, nil
}

// LastID returns the channel's last accepted plot id.
func (s *Store) LastID(channelID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastIDs[channelID]
}

// DrainAll atomically takes every non-empty team buffer and clears them.
// Concurrent Accepts either land before the drain (and are included) or
// after it (and stay buffered for the next cycle).
func (s *Store) DrainAll() map[string][]model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := make(map[string][]model.Submission)
	for team, subs := range s.buffers {
		if len(subs) == 0 {
			continue
		}
		drained[team] = subs
		delete(s.buffers, team)
	}
	return drained
}

// Restore puts drained batches back in front of anything accepted since the
// drain, preserving per-team order. Used when the sheet push fails so no
// submission is silently lost.
func (s *Store) Restore(drained map[string][]model.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for team, subs := range drained {
		s.buffers[team] = append(subs, s.buffers[team]...)
	}
}
