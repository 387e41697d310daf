package workbook

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"sivportal/internal/model"
)

// maxXLSRows bounds how far the BIFF reader walks a legacy sheet.
const maxXLSRows = 65536

// decodeXLSX reads the first sheet of an OOXML workbook.
func decodeXLSX(fileName string, data []byte) (model.RawSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DecodeError{FileName: fileName, Err: ErrEmptyWorkbook}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Err: err}
	}
	return model.RawSheet(rows), nil
}

// decodeXLS reads the first sheet of a legacy BIFF workbook.
func decodeXLS(fileName string, data []byte) (model.RawSheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Err: err}
	}
	if wb.NumSheets() == 0 {
		return nil, &DecodeError{FileName: fileName, Err: ErrEmptyWorkbook}
	}

	rows := wb.ReadAllCells(maxXLSRows)
	return model.RawSheet(rows), nil
}

// decodeCSV reads a comma-separated file as a single sheet. Ragged rows are
// allowed; the extractor already tolerates short rows.
func decodeCSV(fileName string, data []byte) (model.RawSheet, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var sheet model.RawSheet
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{FileName: fileName, Err: err}
		}
		sheet = append(sheet, row)
	}
	return sheet, nil
}
