package store

import (
	"errors"

	"sivportal/internal/model"
)

const (
	keyVisaRequirements   = "visa_requirements"
	keyTravelRequirements = "travel_requirements"
)

// LoadVisaRequirements returns the visa table keyed by identifier.
func (s *Store) LoadVisaRequirements() (map[string]*model.VisaRequirement, error) {
	out := map[string]*model.VisaRequirement{}
	if err := s.getJSON(keyVisaRequirements, &out); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}
	return out, nil
}

// SaveVisaRequirements replaces the whole visa table.
func (s *Store) SaveVisaRequirements(reqs map[string]*model.VisaRequirement) error {
	return s.putJSON(keyVisaRequirements, reqs)
}

// LoadTravelRequirements returns the travel table keyed by identifier.
func (s *Store) LoadTravelRequirements() (map[string]*model.TravelRequirement, error) {
	out := map[string]*model.TravelRequirement{}
	if err := s.getJSON(keyTravelRequirements, &out); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}
	return out, nil
}

// SaveTravelRequirements replaces the whole travel table.
func (s *Store) SaveTravelRequirements(reqs map[string]*model.TravelRequirement) error {
	return s.putJSON(keyTravelRequirements, reqs)
}
