package model

import "time"

// Embassy is the persisted cumulative aggregate per consular post.
// Total is always exactly the sum of PeriodValues; it is never set
// independently. Rank is recomputed from Total after every reconciliation.
type Embassy struct {
	Identifier   string         `json:"identifier"`
	Region       string         `json:"region"`
	PeriodValues map[string]int `json:"periodValues"`
	Total        int            `json:"total"`
	Rank         int            `json:"rank"`
	LastUpdated  time.Time      `json:"lastUpdated"`
}

// Clone returns a deep copy, so reconciliation can work on a snapshot
// without mutating the caller's map.
func (e *Embassy) Clone() *Embassy {
	out := *e
	out.PeriodValues = make(map[string]int, len(e.PeriodValues))
	for k, v := range e.PeriodValues {
		out.PeriodValues[k] = v
	}
	return &out
}
