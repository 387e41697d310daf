package importer

import (
	"fmt"
	"reflect"
	"testing"

	"sivportal/internal/model"
)

func record(identifier string, metric int, fileName string) *model.ExtractedRecord {
	rec := &model.ExtractedRecord{
		Identifier:  identifier,
		Region:      identifier,
		MetricValue: metric,
		SourceRow:   2,
		SourceFile:  fileName,
	}
	if period, ok := resolveTestPeriod(fileName); ok {
		rec.Period = period
		rec.PeriodValue = metric
	}
	return rec
}

// resolveTestPeriod mirrors the parser's filename convention for fixtures
// without importing it; reconciliation itself never looks at filenames.
func resolveTestPeriod(fileName string) (string, bool) {
	switch fileName {
	case "June 2025 report.xlsx":
		return "2025-06", true
	case "July 2025 report.xlsx":
		return "2025-07", true
	}
	return "", false
}

func TestReconcileNewEmbassySinglePeriod(t *testing.T) {
	t.Parallel()

	batch := []*model.ExtractedRecord{record("Lagos", 12, "June 2025 report.xlsx")}
	snapshot, outcome := Reconcile(map[string]*model.Embassy{}, batch, nil)

	if len(snapshot) != 1 {
		t.Fatalf("snapshot size = %d, want 1", len(snapshot))
	}
	lagos := snapshot["Lagos"]
	if lagos == nil {
		t.Fatal("Lagos not created")
	}
	if got := lagos.PeriodValues["2025-06"]; got != 12 {
		t.Fatalf("periodValues[2025-06] = %d, want 12", got)
	}
	if lagos.Total != 12 || lagos.Rank != 1 {
		t.Fatalf("total/rank = %d/%d, want 12/1", lagos.Total, lagos.Rank)
	}
	if outcome.Created != 1 || outcome.Updated != 0 || outcome.ErrorCount != 0 {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestReconcileMergeAcrossImports(t *testing.T) {
	t.Parallel()

	first, _ := Reconcile(map[string]*model.Embassy{},
		[]*model.ExtractedRecord{record("Lagos", 12, "June 2025 report.xlsx")}, nil)

	second, outcome := Reconcile(first,
		[]*model.ExtractedRecord{record("Lagos", 8, "July 2025 report.xlsx")}, nil)

	lagos := second["Lagos"]
	want := map[string]int{"2025-06": 12, "2025-07": 8}
	if !reflect.DeepEqual(lagos.PeriodValues, want) {
		t.Fatalf("periodValues = %v, want %v", lagos.PeriodValues, want)
	}
	if lagos.Total != 20 {
		t.Fatalf("total = %d, want 20", lagos.Total)
	}
	if outcome.Updated != 1 || outcome.Created != 0 {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestReconcileOverwriteByPeriodKey(t *testing.T) {
	t.Parallel()

	first, _ := Reconcile(map[string]*model.Embassy{},
		[]*model.ExtractedRecord{record("Lagos", 12, "June 2025 report.xlsx")}, nil)

	// A corrected re-upload with a lower value still wins.
	second, _ := Reconcile(first,
		[]*model.ExtractedRecord{record("Lagos", 5, "June 2025 report.xlsx")}, nil)

	lagos := second["Lagos"]
	if lagos.PeriodValues["2025-06"] != 5 || lagos.Total != 5 {
		t.Fatalf("overwrite failed: %v total=%d", lagos.PeriodValues, lagos.Total)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	t.Parallel()

	batch := []*model.ExtractedRecord{
		record("Lagos", 12, "June 2025 report.xlsx"),
		record("Doha", 30, "June 2025 report.xlsx"),
		record("Islamabad", 12, "June 2025 report.xlsx"),
	}

	once, _ := Reconcile(map[string]*model.Embassy{}, batch, nil)
	twice, _ := Reconcile(once, batch, nil)

	if len(once) != len(twice) {
		t.Fatalf("size changed: %d vs %d", len(once), len(twice))
	}
	for id, a := range once {
		b := twice[id]
		if !reflect.DeepEqual(a.PeriodValues, b.PeriodValues) {
			t.Errorf("%s: periodValues diverged: %v vs %v", id, a.PeriodValues, b.PeriodValues)
		}
		if a.Total != b.Total || a.Rank != b.Rank {
			t.Errorf("%s: total/rank diverged: %d/%d vs %d/%d", id, a.Total, a.Rank, b.Total, b.Rank)
		}
	}
}

func TestReconcileTotalInvariant(t *testing.T) {
	t.Parallel()

	first, _ := Reconcile(map[string]*model.Embassy{},
		[]*model.ExtractedRecord{
			record("Lagos", 12, "June 2025 report.xlsx"),
			record("Doha", 7, "June 2025 report.xlsx"),
		}, nil)
	second, _ := Reconcile(first,
		[]*model.ExtractedRecord{
			record("Lagos", 3, "July 2025 report.xlsx"),
			record("Doha", 9, "June 2025 report.xlsx"),
		}, nil)

	for id, e := range second {
		sum := 0
		for _, v := range e.PeriodValues {
			sum += v
		}
		if e.Total != sum {
			t.Errorf("%s: total %d != sum(periodValues) %d", id, e.Total, sum)
		}
	}
}

func TestReconcileRanks(t *testing.T) {
	t.Parallel()

	snapshot, _ := Reconcile(map[string]*model.Embassy{},
		[]*model.ExtractedRecord{
			record("Lagos", 12, "June 2025 report.xlsx"),
			record("Doha", 30, "June 2025 report.xlsx"),
			record("Islamabad", 12, "June 2025 report.xlsx"),
			record("Ankara", 4, "June 2025 report.xlsx"),
		}, nil)

	// Monotonic: higher total, strictly lower rank number.
	for _, a := range snapshot {
		for _, b := range snapshot {
			if a.Total > b.Total && a.Rank >= b.Rank {
				t.Errorf("%s(total=%d,rank=%d) vs %s(total=%d,rank=%d)",
					a.Identifier, a.Total, a.Rank, b.Identifier, b.Total, b.Rank)
			}
		}
	}

	// Dense with shared ranks on ties.
	if snapshot["Doha"].Rank != 1 {
		t.Errorf("Doha rank = %d, want 1", snapshot["Doha"].Rank)
	}
	if snapshot["Lagos"].Rank != 2 || snapshot["Islamabad"].Rank != 2 {
		t.Errorf("tied ranks = %d/%d, want 2/2", snapshot["Lagos"].Rank, snapshot["Islamabad"].Rank)
	}
	if snapshot["Ankara"].Rank != 3 {
		t.Errorf("Ankara rank = %d, want 3 (dense)", snapshot["Ankara"].Rank)
	}

	// Deterministic persisted order: total desc, identifier asc on ties.
	ranked := RankedSlice(snapshot)
	order := []string{"Doha", "Islamabad", "Lagos", "Ankara"}
	for i, want := range order {
		if ranked[i].Identifier != want {
			t.Fatalf("ranked[%d] = %s, want %s", i, ranked[i].Identifier, want)
		}
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	existing := map[string]*model.Embassy{
		"Lagos": {
			Identifier:   "Lagos",
			Region:       "Nigeria",
			PeriodValues: map[string]int{"2025-06": 12},
			Total:        12,
			Rank:         1,
		},
	}

	_, _ = Reconcile(existing,
		[]*model.ExtractedRecord{record("Lagos", 8, "July 2025 report.xlsx")}, nil)

	if existing["Lagos"].Total != 12 || len(existing["Lagos"].PeriodValues) != 1 {
		t.Fatalf("input snapshot mutated: %+v", existing["Lagos"])
	}
}

func TestReconcileRegionBackfill(t *testing.T) {
	t.Parallel()

	existing := map[string]*model.Embassy{
		"Doha": {Identifier: "Doha", Region: "", PeriodValues: map[string]int{}},
	}

	rec := record("Doha", 6, "June 2025 report.xlsx")
	rec.Region = "Qatar"
	snapshot, _ := Reconcile(existing, []*model.ExtractedRecord{rec}, nil)

	if snapshot["Doha"].Region != "Qatar" {
		t.Fatalf("region = %q, want backfilled Qatar", snapshot["Doha"].Region)
	}

	// A populated region is not overwritten.
	rec2 := record("Doha", 6, "July 2025 report.xlsx")
	rec2.Region = "Somewhere Else"
	snapshot2, _ := Reconcile(snapshot, []*model.ExtractedRecord{rec2}, nil)
	if snapshot2["Doha"].Region != "Qatar" {
		t.Fatalf("region overwritten to %q", snapshot2["Doha"].Region)
	}
}

func TestReconcileNoPeriodTouchesNothingNumeric(t *testing.T) {
	t.Parallel()

	// Unresolvable filename: record carries no period, so it cannot add
	// period values; a new entity still appears with zero total.
	snapshot, outcome := Reconcile(map[string]*model.Embassy{},
		[]*model.ExtractedRecord{record("Lagos", 12, "report.xlsx")}, nil)

	lagos := snapshot["Lagos"]
	if len(lagos.PeriodValues) != 0 || lagos.Total != 0 {
		t.Fatalf("degraded-mode record added values: %+v", lagos)
	}
	if outcome.Created != 1 {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestReconcileErrorRecordsSkippedNotFatal(t *testing.T) {
	t.Parallel()

	batch := []*model.ExtractedRecord{
		record("Lagos", 12, "June 2025 report.xlsx"),
		nil,
		{Identifier: "", SourceRow: 4},
		record("Doha", 7, "June 2025 report.xlsx"),
	}

	snapshot, outcome := Reconcile(map[string]*model.Embassy{}, batch, nil)
	if outcome.ErrorCount != 2 {
		t.Fatalf("errorCount = %d, want 2", outcome.ErrorCount)
	}
	if outcome.Processed != 4 || outcome.Created != 2 {
		t.Fatalf("outcome = %+v", outcome)
	}
	if snapshot["Lagos"] == nil || snapshot["Doha"] == nil {
		t.Fatal("healthy records should still land")
	}
}

func TestReconcileProgressCadence(t *testing.T) {
	t.Parallel()

	batch := make([]*model.ExtractedRecord, 0, 25)
	for i := 0; i < 25; i++ {
		batch = append(batch, record(fmt.Sprintf("Post-%02d", i), i+1, "June 2025 report.xlsx"))
	}

	var calls []int
	Reconcile(map[string]*model.Embassy{}, batch, func(done int) {
		calls = append(calls, done)
	})

	if !reflect.DeepEqual(calls, []int{10, 20}) {
		t.Fatalf("progress calls = %v, want [10 20]", calls)
	}
}
