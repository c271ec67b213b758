// Package validate holds the pure submission checks: sequential plot
// numbering and geographic bounds. Both are side-effect free so they can
// run inside the store's critical section.
package validate

import (
	"fmt"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
)

// MaxBatchSize is the most plots one message may report.
const MaxBatchSize = 20

// Sequence checks that ids continue the channel's gapless numbering and
// returns the new last id to commit. lastID is the most recently accepted
// plot id for the channel (the baseline when nothing was accepted yet).
func Sequence(lastID int64, ids []int64) (int64, *model.ReportError) {
	if len(ids) > MaxBatchSize {
		return 0, &model.ReportError{
			Code:     model.ErrBatchTooLarge,
			Detail:   fmt.Sprintf("batch of %d exceeds limit of %d", len(ids), MaxBatchSize),
			Guidance: fmt.Sprintf("One message may report at most %d plots. Split the range into smaller parts.", MaxBatchSize),
		}
	}
	if len(ids) == 0 || ids[0] != lastID+1 {
		got := int64(-1)
		if len(ids) > 0 {
			got = ids[0]
		}
		return 0, &model.ReportError{
			Code:     model.ErrSequence,
			Detail:   fmt.Sprintf("plot id %d must be exactly one greater than previous (last: %d)", got, lastID),
			Guidance: fmt.Sprintf("Plot ids must be submitted in order without gaps. The last accepted plot was #%d, so the next one has to be #%d.", lastID, lastID+1),
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			return 0, &model.ReportError{
				Code:     model.ErrSequence,
				Detail:   fmt.Sprintf("gap between #%d and #%d", ids[i-1], ids[i]),
				Guidance: fmt.Sprintf("There is a gap between #%d and #%d. Plot ids must be consecutive.", ids[i-1], ids[i]),
			}
		}
	}
	return ids[len(ids)-1], nil
}
