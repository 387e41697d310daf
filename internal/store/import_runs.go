package store

import (
	"errors"

	"sivportal/internal/model"
)

const keyImportRuns = "import_runs"

// LoadImportRuns returns the audit log, most recent first. limit <= 0 means
// all runs; the log itself is never pruned, any window is presentation only.
func (s *Store) LoadImportRuns(limit int) ([]*model.ImportRun, error) {
	var runs []*model.ImportRun
	if err := s.getJSON(keyImportRuns, &runs); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []*model.ImportRun{}, nil
		}
		return nil, err
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// AppendImportRun prepends one completed run to the audit log and rewrites
// the whole entry.
func (s *Store) AppendImportRun(run *model.ImportRun) error {
	runs, err := s.LoadImportRuns(0)
	if err != nil {
		return err
	}
	runs = append([]*model.ImportRun{run}, runs...)
	return s.putJSON(keyImportRuns, runs)
}
