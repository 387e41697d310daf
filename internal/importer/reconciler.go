package importer

import (
	"fmt"
	"log"
	"sort"
	"time"

	"sivportal/internal/model"
)

// progressInterval is how many records are processed between progress
// callbacks. The callback replaces the source system's cooperative yield:
// it exists so a host UI can repaint, and carries no ordering implications
// since only one batch runs at a time.
const progressInterval = 10

// Outcome is the per-run tally returned by Reconcile.
type Outcome struct {
	Processed     int   `json:"processed"`
	Updated       int   `json:"updated"`
	Created       int   `json:"created"`
	ErrorCount    int   `json:"errorCount"`
	ElapsedMillis int64 `json:"elapsedMillis"`
}

// Reconcile merges an extracted batch into a snapshot of the cumulative
// per-embassy dataset and returns a new snapshot plus the run outcome. The
// input map is never mutated; the caller persists the returned snapshot in
// full, which keeps the "rewrite the whole store on every save" contract
// explicit.
//
// Merge semantics per record, in input order: period values overwrite by
// period key (the newest import for an identifier+period always wins, even
// when the new value is lower), an empty region is backfilled, and Total is
// recomputed from PeriodValues immediately so it never drifts. A record
// from a file with no resolvable period only touches descriptive fields.
// Per-record failures increment ErrorCount and the batch continues.
//
// Re-running the same batch converges to the same cumulative state: the
// overwrites are idempotent and rank is deterministically recomputed from
// totals afterward.
func Reconcile(existing map[string]*model.Embassy, batch []*model.ExtractedRecord, progress func(done int)) (map[string]*model.Embassy, Outcome) {
	start := time.Now()

	out := make(map[string]*model.Embassy, len(existing)+len(batch))
	for id, e := range existing {
		out[id] = e.Clone()
	}

	outcome := Outcome{}
	now := time.Now()
	for i, rec := range batch {
		if rec == nil {
			outcome.ErrorCount++
			outcome.Processed++
			continue
		}
		_, existedBefore := out[rec.Identifier]
		if err := mergeRecord(out, rec, now); err != nil {
			outcome.ErrorCount++
			log.Printf("reconcile: record %d (%q) skipped: %v", i, rec.Identifier, err)
		} else if existedBefore {
			outcome.Updated++
		} else {
			outcome.Created++
		}
		outcome.Processed++

		if progress != nil && (i+1)%progressInterval == 0 {
			progress(i + 1)
		}
	}

	applyRanks(out)

	outcome.ElapsedMillis = time.Since(start).Milliseconds()
	return out, outcome
}

// mergeRecord folds one record into the snapshot. A panic from malformed
// data is converted into a per-record error.
func mergeRecord(snapshot map[string]*model.Embassy, rec *model.ExtractedRecord, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("merge panic: %v", r)
		}
	}()

	if rec == nil || rec.Identifier == "" {
		return fmt.Errorf("record has no identifier")
	}

	entity, ok := snapshot[rec.Identifier]
	if !ok {
		entity = &model.Embassy{
			Identifier:   rec.Identifier,
			Region:       rec.Region,
			PeriodValues: map[string]int{},
		}
		snapshot[rec.Identifier] = entity
	}

	if rec.Period != "" {
		entity.PeriodValues[rec.Period] = rec.PeriodValue
	}
	if entity.Region == "" && rec.Region != "" {
		entity.Region = rec.Region
	}

	entity.Total = sumPeriods(entity.PeriodValues)
	entity.LastUpdated = now
	return nil
}

func sumPeriods(values map[string]int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// applyRanks assigns a dense rank by descending Total across the whole
// snapshot. Equal totals share a rank; the secondary sort key (identifier,
// ascending) makes the persisted order fully deterministic instead of
// leaning on map iteration order.
func applyRanks(snapshot map[string]*model.Embassy) {
	ranked := RankedSlice(snapshot)
	rank := 0
	prevTotal := -1
	for _, e := range ranked {
		if e.Total != prevTotal {
			rank++
			prevTotal = e.Total
		}
		e.Rank = rank
	}
}

// RankedSlice returns the snapshot's entities ordered by Total descending,
// identifier ascending, the array form the store persists.
func RankedSlice(snapshot map[string]*model.Embassy) []*model.Embassy {
	out := make([]*model.Embassy, 0, len(snapshot))
	for _, e := range snapshot {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}
