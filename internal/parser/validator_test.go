package parser

import (
	"strings"
	"testing"

	"sivportal/internal/model"
)

func TestValidateCleanBatch(t *testing.T) {
	t.Parallel()

	report := Validate([]*model.ExtractedRecord{
		{Identifier: "Doha", Region: "Qatar", MetricValue: 12, SourceRow: 2},
		{Identifier: "Islamabad", Region: "Pakistan", MetricValue: 4, SourceRow: 3},
	})

	if len(report.Errors) != 0 || len(report.Warnings) != 0 {
		t.Fatalf("unexpected findings: %+v", report)
	}
}

func TestValidateDuplicateIdentifierWarnsOncePerRepeat(t *testing.T) {
	t.Parallel()

	report := Validate([]*model.ExtractedRecord{
		{Identifier: "Doha", Region: "Qatar", MetricValue: 12, SourceRow: 2},
		{Identifier: "Doha", Region: "Qatar", MetricValue: 8, SourceRow: 7},
	})

	if len(report.Warnings) != 1 {
		t.Fatalf("warnings = %d, want exactly 1: %v", len(report.Warnings), report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "Doha") {
		t.Fatalf("warning does not reference the identifier: %q", report.Warnings[0])
	}
	if len(report.Errors) != 0 {
		t.Fatalf("duplicates must warn, not reject: %v", report.Errors)
	}
}

func TestValidateTripleDuplicateWarnsTwice(t *testing.T) {
	t.Parallel()

	report := Validate([]*model.ExtractedRecord{
		{Identifier: "Doha", MetricValue: 1, SourceRow: 2},
		{Identifier: "Doha", MetricValue: 2, SourceRow: 3},
		{Identifier: "Doha", MetricValue: 3, SourceRow: 4},
	})
	if len(report.Warnings) != 2 {
		t.Fatalf("warnings = %d, want 2 (every repeat beyond the first)", len(report.Warnings))
	}
}

func TestValidateZeroSubtotalWarning(t *testing.T) {
	t.Parallel()

	report := Validate([]*model.ExtractedRecord{
		{Identifier: "Doha", Region: "Qatar", MetricValue: 12, HasSubtotal: true, SubtotalValue: 0, SourceRow: 2},
	})
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "subtotal") {
		t.Fatalf("expected one subtotal warning, got %v", report.Warnings)
	}

	// No subtotal column mapped: silence.
	report = Validate([]*model.ExtractedRecord{
		{Identifier: "Doha", Region: "Qatar", MetricValue: 12, SourceRow: 2},
	})
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}
}

func TestValidateMissingIdentifierAndRegionIsError(t *testing.T) {
	t.Parallel()

	report := Validate([]*model.ExtractedRecord{
		{Identifier: "", Region: "", MetricValue: 5, SourceRow: 9},
	})
	if len(report.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(report.Errors))
	}
}
