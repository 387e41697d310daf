package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"sivportal/internal/model"
)

// DefaultMaxUploadBytes is the intake size ceiling when the config does not
// override it.
const DefaultMaxUploadBytes = 50 << 20

// Intake errors, rejected before any parsing happens.
var (
	ErrUnsupportedFormat = errors.New("file extension does not indicate a spreadsheet format")
	ErrFileTooLarge      = errors.New("file exceeds the upload size limit")
	ErrEmptyWorkbook     = errors.New("workbook contains no sheets")
)

// DecodeError wraps a structural parse failure from one of the workbook
// decoders. The uploaded file stays loaded on the caller's side so the user
// can retry or remove it.
type DecodeError struct {
	FileName string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.FileName, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Hints returns remediation guidance surfaced alongside a decode failure.
func (e *DecodeError) Hints() []string {
	return []string{
		"make sure the file is a real spreadsheet export, not a renamed PDF or HTML page",
		"the first sheet should hold the report, with a header row naming the embassy/post and country columns",
		"re-save the file as .xlsx from your spreadsheet program and upload it again",
	}
}

// Open validates intake constraints and decodes the first sheet of the
// uploaded bytes into a RawSheet. The decoder is chosen by extension:
// excelize for .xlsx/.xlsm, the legacy BIFF reader for .xls, encoding/csv
// for .csv.
func Open(fileName string, data []byte, maxBytes int64) (model.RawSheet, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, len(data), maxBytes)
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return decodeXLSX(fileName, data)
	case ".xls":
		return decodeXLS(fileName, data)
	case ".csv":
		return decodeCSV(fileName, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}
