package stats

import (
	"testing"
	"time"

	"dezporcento/internal/domain/records"
)

func day(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func record(name string, share float64, workDate *time.Time, paid bool) records.WorkRecord {
	return records.WorkRecord{
		EmployeeName: name,
		SalesShare:   share,
		WorkDate:     workDate,
		Paid:         paid,
	}
}

func TestRankingAggregates(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 50, day("2024-01-01"), true),
		record("Ana", 30, day("2024-01-02"), false),
		record("Bruno", 20, day("2024-01-01"), false),
	}

	ranking := Ranking(input)
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}

	ana := ranking[0]
	if ana.Name != "Ana" || ana.Position != 1 {
		t.Fatalf("expected Ana first, got %q at position %d", ana.Name, ana.Position)
	}
	if ana.DaysWorked != 2 {
		t.Fatalf("expected 2 days worked, got %d", ana.DaysWorked)
	}
	if ana.TotalReceived != 80 {
		t.Fatalf("expected total 80, got %v", ana.TotalReceived)
	}
	if ana.AverageDaily != 40 {
		t.Fatalf("expected average 40, got %v", ana.AverageDaily)
	}
	if ana.MaxDaily != 50 || ana.MinDaily != 30 {
		t.Fatalf("expected max 50 min 30, got max %v min %v", ana.MaxDaily, ana.MinDaily)
	}
	if ana.TotalPaid != 50 || ana.TotalPending != 30 {
		t.Fatalf("expected paid 50 pending 30, got paid %v pending %v", ana.TotalPaid, ana.TotalPending)
	}

	bruno := ranking[1]
	if bruno.Name != "Bruno" || bruno.Position != 2 {
		t.Fatalf("expected Bruno second, got %q at position %d", bruno.Name, bruno.Position)
	}
}

func TestRankingEmptyInput(t *testing.T) {
	ranking := Ranking(nil)
	if len(ranking) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(ranking))
	}
}

func TestRankingSingleRecordMinEqualsMax(t *testing.T) {
	ranking := Ranking([]records.WorkRecord{record("Ana", 42.5, day("2024-01-01"), false)})
	if len(ranking) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(ranking))
	}
	if ranking[0].MinDaily != 42.5 || ranking[0].MaxDaily != 42.5 {
		t.Fatalf("expected min == max == 42.5, got min %v max %v", ranking[0].MinDaily, ranking[0].MaxDaily)
	}
}

func TestRankingOrderAndPositions(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 10, day("2024-01-01"), false),
		record("Bruno", 90, day("2024-01-01"), false),
		record("Carla", 40, day("2024-01-01"), false),
	}

	ranking := Ranking(input)
	for i := 1; i < len(ranking); i++ {
		if ranking[i-1].TotalReceived < ranking[i].TotalReceived {
			t.Fatalf("ranking not ordered at index %d", i)
		}
	}
	for i, entry := range ranking {
		if entry.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, entry.Position)
		}
	}
}

func TestAttendanceHistoryLabels(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2024-03-10")
	if err != nil {
		t.Fatalf("parse now: %v", err)
	}

	input := []records.WorkRecord{
		record("Ana", 50, day("2024-03-10"), true),
		record("Bruno", 40, day("2024-03-09"), true),
		record("Carla", 30, day("2024-03-01"), true),
		record("Davi", 20, nil, true),
	}

	history := AttendanceHistoryAt(input, 0, now)
	if len(history) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(history))
	}
	if history[0].DayLabel != "Hoje" {
		t.Fatalf("expected Hoje, got %q", history[0].DayLabel)
	}
	if history[1].DayLabel != "Ontem" {
		t.Fatalf("expected Ontem, got %q", history[1].DayLabel)
	}
	if history[2].DayLabel != "01/03/2024" {
		t.Fatalf("expected 01/03/2024, got %q", history[2].DayLabel)
	}
	if history[3].DayLabel != "-" {
		t.Fatalf("expected - for missing date, got %q", history[3].DayLabel)
	}
}

func TestAttendanceHistoryLimit(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 50, day("2024-03-10"), true),
		record("Bruno", 40, day("2024-03-09"), true),
		record("Carla", 30, day("2024-03-01"), true),
	}

	history := AttendanceHistory(input, 2)
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Name != "Ana" || history[1].Name != "Bruno" {
		t.Fatalf("expected newest first, got %q then %q", history[0].Name, history[1].Name)
	}
}

func TestPaymentHistoryStatusAndMethod(t *testing.T) {
	advance := 15.0
	input := []records.WorkRecord{
		{EmployeeName: "Ana", SalesShare: 50, WorkDate: day("2024-03-10"), Paid: true, PaymentMethod: records.MethodCash},
		{EmployeeName: "Bruno", SalesShare: 40, WorkDate: day("2024-03-09"), Advance: &advance, AdvanceMethod: records.MethodPix},
	}

	history := PaymentHistory(input, 0)
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].StatusLabel != "Pago" || history[0].Method != records.MethodCash {
		t.Fatalf("expected Pago/cash, got %q/%q", history[0].StatusLabel, history[0].Method)
	}
	if history[1].StatusLabel != "Pendente" || history[1].Method != records.MethodPix {
		t.Fatalf("expected Pendente/pix, got %q/%q", history[1].StatusLabel, history[1].Method)
	}
	if history[1].Advance == nil || *history[1].Advance != 15 {
		t.Fatalf("expected advance 15, got %v", history[1].Advance)
	}
}

func TestPaymentHistoryByNameCaseInsensitive(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana Clara", 50, day("2024-03-10"), true),
		record("Bruno", 40, day("2024-03-09"), true),
	}

	history := PaymentHistoryByName(input, 0, "ana")
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	if history[0].Name != "Ana Clara" {
		t.Fatalf("expected Ana Clara, got %q", history[0].Name)
	}

	all := PaymentHistoryByName(input, 0, "  ")
	if len(all) != 2 {
		t.Fatalf("expected blank query to return everything, got %d entries", len(all))
	}
}

func TestRegistrationSummaryDistinctDays(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 50, day("2024-01-01"), true),
		record("Ana", 30, day("2024-01-01"), false),
	}

	summary := RegistrationSummary(input)
	if len(summary) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(summary))
	}

	ana := summary[0]
	if ana.DaysWorked != 2 {
		t.Fatalf("expected 2 rows counted, got %d", ana.DaysWorked)
	}
	if len(ana.DistinctDays) != 1 || ana.DistinctDays[0] != "2024-01-01" {
		t.Fatalf("expected single distinct day, got %v", ana.DistinctDays)
	}
	if ana.TotalReceived != 80 {
		t.Fatalf("expected total 80, got %v", ana.TotalReceived)
	}

	ranking := Ranking(input)
	if ranking[0].DaysWorked != 2 {
		t.Fatalf("expected ranking to count rows, got %d", ranking[0].DaysWorked)
	}
}

func TestRegistrationSummaryFirstLastDates(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 50, day("2024-01-05"), true),
		record("Ana", 30, day("2024-01-02"), false),
		record("Bruno", 20, nil, false),
	}

	summary := RegistrationSummary(input)
	if len(summary) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(summary))
	}

	ana := summary[0]
	if ana.Name != "Ana" {
		t.Fatalf("expected dated employee first, got %q", ana.Name)
	}
	if ana.FirstWorkDate == nil || ana.FirstWorkDate.Format("2006-01-02") != "2024-01-02" {
		t.Fatalf("unexpected first date %v", ana.FirstWorkDate)
	}
	if ana.LastWorkDate == nil || ana.LastWorkDate.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("unexpected last date %v", ana.LastWorkDate)
	}

	if summary[1].Name != "Bruno" || summary[1].FirstWorkDate != nil {
		t.Fatalf("expected undated employee last with nil first date")
	}
}

func TestGrandTotals(t *testing.T) {
	input := []records.WorkRecord{
		record("Ana", 50, day("2024-01-01"), true),
		record("Ana", 30, day("2024-01-01"), false),
		record("Bruno", 20, day("2024-01-03"), false),
	}

	totals := GrandTotals(input)
	if totals.TotalEmployees != 2 {
		t.Fatalf("expected 2 employees, got %d", totals.TotalEmployees)
	}
	if totals.TotalRecords != 3 {
		t.Fatalf("expected 3 records, got %d", totals.TotalRecords)
	}
	if totals.TotalDaysWorked != 2 {
		t.Fatalf("expected 2 distinct days, got %d", totals.TotalDaysWorked)
	}
	if totals.TotalPayable != 100 || totals.TotalPaid != 50 || totals.TotalPending != 50 {
		t.Fatalf("unexpected totals: payable %v paid %v pending %v", totals.TotalPayable, totals.TotalPaid, totals.TotalPending)
	}
	if totals.FirstRecordDate == nil || totals.FirstRecordDate.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("unexpected first record date %v", totals.FirstRecordDate)
	}
	if totals.LastRecordDate == nil || totals.LastRecordDate.Format("2006-01-02") != "2024-01-03" {
		t.Fatalf("unexpected last record date %v", totals.LastRecordDate)
	}
}

func TestGrandTotalsEmpty(t *testing.T) {
	totals := GrandTotals(nil)
	if totals.TotalEmployees != 0 || totals.TotalRecords != 0 || totals.TotalDaysWorked != 0 {
		t.Fatalf("expected zero snapshot, got %+v", totals)
	}
	if totals.FirstRecordDate != nil || totals.LastRecordDate != nil {
		t.Fatalf("expected nil dates on empty input")
	}
}
