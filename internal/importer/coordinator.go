package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sivportal/internal/model"
	"sivportal/internal/parser"
	"sivportal/internal/store"
	"sivportal/internal/workbook"
)

// Coordinator drives one import run end to end: decode, locate the header,
// map columns, extract rows, validate, reconcile, persist. The store is
// read once at batch start and written once at batch end, so the unit of
// atomicity is one whole run. Abandoning a run before the persistence step
// simply discards the in-memory snapshot.
type Coordinator struct {
	store *store.Store
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{store: st}
}

// ImportOptions describes one uploaded file.
type ImportOptions struct {
	FileName string
	Data     []byte
	MaxBytes int64 // 0 means the default intake limit
	DryRun   bool  // extract and validate only, never touch the store
}

// ProgressEvent is one entry on the import progress stream.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/progress/warning/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport is the terminal payload of a successful run.
type ImportReport struct {
	FileName   string                   `json:"fileName"`
	FileSize   int64                    `json:"fileSize"`
	RowsRead   int                      `json:"rowsRead"`
	Extracted  int                      `json:"extracted"`
	Validation model.ValidationReport   `json:"validation"`
	Outcome    Outcome                  `json:"outcome"`
	Records    []*model.ExtractedRecord `json:"records,omitempty"` // dry-run preview only
	Run        *model.ImportRun         `json:"run,omitempty"`
}

// Import runs the pipeline asynchronously and returns the progress channel.
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	ch := make(chan ProgressEvent, 100)

	go func() {
		defer close(ch)
		c.doImport(opts, ch)
	}()

	return ch
}

func (c *Coordinator) doImport(opts ImportOptions, ch chan ProgressEvent) {
	startedAt := time.Now()

	c.send(ch, ProgressEvent{
		Type:      "start",
		Message:   fmt.Sprintf("importing %s", opts.FileName),
		Data:      map[string]interface{}{"fileName": opts.FileName, "sizeBytes": len(opts.Data)},
		Timestamp: time.Now(),
	})

	sheet, err := workbook.Open(opts.FileName, opts.Data, opts.MaxBytes)
	if err != nil {
		c.fail(ch, opts, startedAt, "cannot read workbook", err)
		return
	}

	headerIdx, err := parser.LocateHeader(sheet)
	if err != nil {
		// Structural failure: no records extracted, store untouched.
		c.fail(ch, opts, startedAt, "header row not found", err)
		return
	}

	c.send(ch, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("header located at row %d", headerIdx+1),
		Data:      map[string]interface{}{"headerRow": headerIdx + 1, "rows": len(sheet)},
		Timestamp: time.Now(),
	})

	cm := parser.MapColumns(sheet[headerIdx])

	var batch []*model.ExtractedRecord
	for i := headerIdx + 1; i < len(sheet); i++ {
		if rec := parser.ExtractRow(sheet[i], cm, i+1, opts.FileName); rec != nil {
			batch = append(batch, rec)
		}
	}

	validation := parser.Validate(batch)
	for _, w := range validation.Warnings {
		c.send(ch, ProgressEvent{Type: "warning", Message: w, Timestamp: time.Now()})
	}
	for _, e := range validation.Errors {
		c.send(ch, ProgressEvent{Type: "warning", Message: "validation error: " + e, Timestamp: time.Now()})
	}

	report := &ImportReport{
		FileName:   opts.FileName,
		FileSize:   int64(len(opts.Data)),
		RowsRead:   len(sheet) - headerIdx - 1,
		Extracted:  len(batch),
		Validation: validation,
	}

	if opts.DryRun {
		report.Records = batch
		c.send(ch, ProgressEvent{
			Type:      "done",
			Message:   fmt.Sprintf("preview complete: %d records extracted", len(batch)),
			Data:      report,
			Timestamp: time.Now(),
		})
		return
	}

	existing, err := c.store.LoadEmbassies()
	if err != nil {
		c.fail(ch, opts, startedAt, "cannot load cumulative data", err)
		return
	}

	snapshot, outcome := Reconcile(existing, batch, func(done int) {
		c.send(ch, ProgressEvent{
			Type:      "progress",
			Message:   fmt.Sprintf("%d/%d records reconciled", done, len(batch)),
			Data:      map[string]int{"done": done, "total": len(batch)},
			Timestamp: time.Now(),
		})
	})

	// Single full-store replace; a persistence failure aborts the run with
	// nothing partially written.
	if err := c.store.SaveEmbassies(RankedSlice(snapshot)); err != nil {
		c.fail(ch, opts, startedAt, "import failed", err)
		return
	}

	run := &model.ImportRun{
		ID:               uuid.NewString(),
		FileName:         opts.FileName,
		FileSizeBytes:    int64(len(opts.Data)),
		Status:           model.RunStatusSuccess,
		RecordsProcessed: outcome.Processed,
		RecordsUpdated:   outcome.Updated,
		RecordsCreated:   outcome.Created,
		ErrorCount:       outcome.ErrorCount,
		ElapsedMillis:    time.Since(startedAt).Milliseconds(),
		StartedAt:        startedAt,
	}
	if err := c.store.AppendImportRun(run); err != nil {
		// The data itself landed; a lost audit entry is reported but does
		// not fail the run.
		c.send(ch, ProgressEvent{Type: "warning", Message: fmt.Sprintf("audit log not updated: %v", err), Timestamp: time.Now()})
	}

	report.Outcome = outcome
	report.Run = run

	c.send(ch, ProgressEvent{
		Type: "done",
		Message: fmt.Sprintf("import complete: %d processed, %d updated, %d created, %d errors",
			outcome.Processed, outcome.Updated, outcome.Created, outcome.ErrorCount),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// fail emits the terminal error event and records a failed run in the
// audit log. Intake rejections and dry runs are not audited: those leave
// no state change at all.
func (c *Coordinator) fail(ch chan ProgressEvent, opts ImportOptions, startedAt time.Time, msg string, err error) {
	data := map[string]interface{}{"error": err.Error()}

	var decodeErr *workbook.DecodeError
	if errors.As(err, &decodeErr) {
		data["hints"] = decodeErr.Hints()
	}
	var headerErr *parser.HeaderNotFoundError
	if errors.As(err, &headerErr) {
		data["preview"] = headerErr.Preview
	}

	c.send(ch, ProgressEvent{
		Type:      "error",
		Message:   fmt.Sprintf("%s: %v", msg, err),
		Data:      data,
		Timestamp: time.Now(),
	})

	if opts.DryRun || c.store == nil {
		return
	}
	if errors.Is(err, workbook.ErrUnsupportedFormat) || errors.Is(err, workbook.ErrFileTooLarge) {
		return
	}
	run := &model.ImportRun{
		ID:            uuid.NewString(),
		FileName:      opts.FileName,
		FileSizeBytes: int64(len(opts.Data)),
		Status:        model.RunStatusError,
		ElapsedMillis: time.Since(startedAt).Milliseconds(),
		StartedAt:     startedAt,
	}
	if logErr := c.store.AppendImportRun(run); logErr != nil {
		c.send(ch, ProgressEvent{Type: "warning", Message: fmt.Sprintf("audit log not updated: %v", logErr), Timestamp: time.Now()})
	}
}

// send drops events instead of blocking when the channel is full.
func (c *Coordinator) send(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
