package model

// RawSheet is the parsed form of one worksheet: rows of cell strings as
// produced by the workbook decoder. The import core only consumes this shape.
type RawSheet [][]string

// ColumnMap maps logical column roles to their index in the header row.
// A value of -1 means the role was not detected. Identifier is always
// populated: the mapper falls back to column 0 when nothing matches.
type ColumnMap struct {
	Identifier int `json:"identifier"`
	Region     int `json:"region"`
	Metric     int `json:"metric"`
	Subtotal   int `json:"subtotal"`
	GrandTotal int `json:"grandTotal"`
}

// HasRegion reports whether a region column was detected.
func (m ColumnMap) HasRegion() bool { return m.Region >= 0 }

// HasMetric reports whether a metric column was detected.
func (m ColumnMap) HasMetric() bool { return m.Metric >= 0 }

// HasSubtotal reports whether a subtotal column was detected.
func (m ColumnMap) HasSubtotal() bool { return m.Subtotal >= 0 }

// ExtractedRecord is one data row's normalized result.
type ExtractedRecord struct {
	Identifier    string `json:"identifier"`
	Region        string `json:"region"`
	MetricValue   int    `json:"metricValue"`
	SubtotalValue int    `json:"subtotalValue"`
	HasSubtotal   bool   `json:"hasSubtotal"`
	SourceRow     int    `json:"sourceRow"` // 1-based row number for diagnostics
	SourceFile    string `json:"sourceFile"`
	Period        string `json:"period,omitempty"`      // "YYYY-MM", empty when unresolved
	PeriodValue   int    `json:"periodValue,omitempty"` // mirrors MetricValue under Period
}

// ValidationReport annotates an extracted batch before committal.
// It is purely descriptive and never blocks reconciliation.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
