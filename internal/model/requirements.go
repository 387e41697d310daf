package model

import "time"

// VisaRequirement is the descriptive visa table entry for one post.
// Owned by the host edit surface; the import core never writes it.
type VisaRequirement struct {
	Identifier      string    `json:"identifier"`
	VisaTypes       string    `json:"visaTypes"`
	Documents       string    `json:"documents"`
	ProcessingNotes string    `json:"processingNotes"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// TravelRequirement is the descriptive travel table entry for one post.
type TravelRequirement struct {
	Identifier  string    `json:"identifier"`
	EntryRules  string    `json:"entryRules"`
	Vaccination string    `json:"vaccination"`
	Advisory    string    `json:"advisory"`
	LastUpdated time.Time `json:"lastUpdated"`
}
