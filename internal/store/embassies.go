package store

import (
	"errors"

	"sivportal/internal/model"
)

const keyEmbassies = "embassies"

// embassyDocument is the persisted array form of the cumulative dataset,
// kept under the "embassies" field with ranks already applied.
type embassyDocument struct {
	Embassies []*model.Embassy `json:"embassies"`
}

// LoadEmbassies returns the cumulative dataset keyed by identifier. An
// untouched store yields an empty map.
func (s *Store) LoadEmbassies() (map[string]*model.Embassy, error) {
	var doc embassyDocument
	if err := s.getJSON(keyEmbassies, &doc); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return map[string]*model.Embassy{}, nil
		}
		return nil, err
	}

	out := make(map[string]*model.Embassy, len(doc.Embassies))
	for _, e := range doc.Embassies {
		if e.PeriodValues == nil {
			e.PeriodValues = map[string]int{}
		}
		out[e.Identifier] = e
	}
	return out, nil
}

// LoadRankedEmbassies returns the dataset in its persisted rank order.
func (s *Store) LoadRankedEmbassies() ([]*model.Embassy, error) {
	var doc embassyDocument
	if err := s.getJSON(keyEmbassies, &doc); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []*model.Embassy{}, nil
		}
		return nil, err
	}
	for _, e := range doc.Embassies {
		if e.PeriodValues == nil {
			e.PeriodValues = map[string]int{}
		}
	}
	return doc.Embassies, nil
}

// SaveEmbassies replaces the whole cumulative dataset with the given ranked
// slice. All entities are written, not just the touched ones.
func (s *Store) SaveEmbassies(ranked []*model.Embassy) error {
	if ranked == nil {
		ranked = []*model.Embassy{}
	}
	return s.putJSON(keyEmbassies, embassyDocument{Embassies: ranked})
}
