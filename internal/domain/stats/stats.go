// Package stats computes aggregate views over work records: the payment
// ranking, attendance and payment histories, per-employee registration
// summaries and store-wide totals. All functions are pure and tolerate
// empty input, missing dates and duplicate employee/day rows.
package stats

import (
	"sort"
	"strings"
	"time"

	"dezporcento/internal/domain/records"
)

const dayLayout = "2006-01-02"

// Ranking groups records by employee name and orders the groups by total
// received, highest first. Ties keep first-seen employee order and
// positions are assigned 1..N after sorting.
func Ranking(input []records.WorkRecord) []RankingEntry {
	type group struct {
		entry RankingEntry
		min   *float64
	}

	var order []string
	groups := map[string]*group{}

	for _, record := range input {
		g, ok := groups[record.EmployeeName]
		if !ok {
			g = &group{entry: RankingEntry{Name: record.EmployeeName}}
			groups[record.EmployeeName] = g
			order = append(order, record.EmployeeName)
		}

		value := record.SalesShare
		g.entry.DaysWorked++
		g.entry.TotalReceived += value
		if value > g.entry.MaxDaily {
			g.entry.MaxDaily = value
		}
		// The minimum starts unset instead of at an infinity sentinel, so
		// a group with no samples can never leak an infinite value.
		if g.min == nil || value < *g.min {
			sample := value
			g.min = &sample
		}
		if record.Paid {
			g.entry.TotalPaid += value
		} else {
			g.entry.TotalPending += value
		}
	}

	result := make([]RankingEntry, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.entry.DaysWorked > 0 {
			g.entry.AverageDaily = g.entry.TotalReceived / float64(g.entry.DaysWorked)
		}
		if g.min != nil {
			g.entry.MinDaily = *g.min
		}
		result = append(result, g.entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalReceived > result[j].TotalReceived
	})
	for i := range result {
		result[i].Position = i + 1
	}
	return result
}

// AttendanceHistory lists records by work date, newest first, bounded by
// limit. Day labels are relative to the current day.
func AttendanceHistory(input []records.WorkRecord, limit int) []AttendanceEntry {
	return AttendanceHistoryAt(input, limit, time.Now())
}

// AttendanceHistoryAt is AttendanceHistory with an explicit reference
// day for the "Hoje"/"Ontem" labels.
func AttendanceHistoryAt(input []records.WorkRecord, limit int, now time.Time) []AttendanceEntry {
	sorted := sortByDateDesc(input)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	result := make([]AttendanceEntry, 0, len(sorted))
	for _, record := range sorted {
		result = append(result, AttendanceEntry{
			Name:       record.EmployeeName,
			WorkDate:   record.WorkDate,
			DayLabel:   dayLabel(record.WorkDate, now),
			CheckIn:    record.CheckIn,
			CheckOut:   record.CheckOut,
			SalesShare: record.SalesShare,
			Note:       record.Note,
		})
	}
	return result
}

// PaymentHistory lists records by work date, newest first, bounded by
// limit, with a derived payment status label.
func PaymentHistory(input []records.WorkRecord, limit int) []PaymentEntry {
	sorted := sortByDateDesc(input)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	result := make([]PaymentEntry, 0, len(sorted))
	for _, record := range sorted {
		method := record.AdvanceMethod
		if method == "" {
			method = record.PaymentMethod
		}
		status := "Pendente"
		if record.Paid {
			status = "Pago"
		}
		result = append(result, PaymentEntry{
			Name:        record.EmployeeName,
			WorkDate:    record.WorkDate,
			SalesShare:  record.SalesShare,
			Advance:     record.Advance,
			Method:      method,
			Paid:        record.Paid,
			StatusLabel: status,
		})
	}
	return result
}

// PaymentHistoryByName restricts the payment history to employees whose
// name contains the query, case-insensitively.
func PaymentHistoryByName(input []records.WorkRecord, limit int, query string) []PaymentEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return PaymentHistory(input, limit)
	}
	var filtered []records.WorkRecord
	for _, record := range input {
		if strings.Contains(strings.ToLower(record.EmployeeName), query) {
			filtered = append(filtered, record)
		}
	}
	return PaymentHistory(filtered, limit)
}

// RegistrationSummary groups records by employee and tracks first and
// last worked dates plus the distinct calendar days. DaysWorked counts
// rows, like the ranking table does; DistinctDays collapses duplicate
// entries for the same day. Employees with no dated record sort last.
func RegistrationSummary(input []records.WorkRecord) []RegistrationEntry {
	type group struct {
		entry RegistrationEntry
		days  map[string]struct{}
	}

	var order []string
	groups := map[string]*group{}

	for _, record := range input {
		g, ok := groups[record.EmployeeName]
		if !ok {
			g = &group{
				entry: RegistrationEntry{Name: record.EmployeeName},
				days:  map[string]struct{}{},
			}
			groups[record.EmployeeName] = g
			order = append(order, record.EmployeeName)
		}

		g.entry.DaysWorked++
		g.entry.TotalReceived += record.SalesShare

		if record.WorkDate != nil {
			g.days[record.WorkDate.Format(dayLayout)] = struct{}{}
			if g.entry.FirstWorkDate == nil || record.WorkDate.Before(*g.entry.FirstWorkDate) {
				g.entry.FirstWorkDate = record.WorkDate
			}
			if g.entry.LastWorkDate == nil || record.WorkDate.After(*g.entry.LastWorkDate) {
				g.entry.LastWorkDate = record.WorkDate
			}
		}
	}

	result := make([]RegistrationEntry, 0, len(order))
	for _, name := range order {
		g := groups[name]
		for day := range g.days {
			g.entry.DistinctDays = append(g.entry.DistinctDays, day)
		}
		sort.Strings(g.entry.DistinctDays)
		result = append(result, g.entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		first, second := result[i].FirstWorkDate, result[j].FirstWorkDate
		if first == nil {
			return false
		}
		if second == nil {
			return true
		}
		return first.After(*second)
	})
	return result
}

// GrandTotals computes the store-wide snapshot. Empty input yields the
// zero snapshot.
func GrandTotals(input []records.WorkRecord) TotalsSnapshot {
	var snapshot TotalsSnapshot
	names := map[string]struct{}{}
	days := map[string]struct{}{}

	for i := range input {
		record := &input[i]
		names[record.EmployeeName] = struct{}{}
		snapshot.TotalRecords++
		snapshot.TotalPayable += record.SalesShare
		if record.Paid {
			snapshot.TotalPaid += record.SalesShare
		} else {
			snapshot.TotalPending += record.SalesShare
		}
		if record.WorkDate == nil {
			continue
		}
		days[record.WorkDate.Format(dayLayout)] = struct{}{}
		if snapshot.FirstRecordDate == nil || record.WorkDate.Before(*snapshot.FirstRecordDate) {
			snapshot.FirstRecordDate = record.WorkDate
		}
		if snapshot.LastRecordDate == nil || record.WorkDate.After(*snapshot.LastRecordDate) {
			snapshot.LastRecordDate = record.WorkDate
		}
	}

	snapshot.TotalEmployees = len(names)
	snapshot.TotalDaysWorked = len(days)
	return snapshot
}

func sortByDateDesc(input []records.WorkRecord) []records.WorkRecord {
	sorted := make([]records.WorkRecord, len(input))
	copy(sorted, input)
	sort.SliceStable(sorted, func(i, j int) bool {
		first, second := sorted[i].WorkDate, sorted[j].WorkDate
		if first == nil {
			return false
		}
		if second == nil {
			return true
		}
		return first.After(*second)
	})
	return sorted
}

func dayLabel(workDate *time.Time, now time.Time) string {
	if workDate == nil {
		return "-"
	}
	day := workDate.Format(dayLayout)
	switch day {
	case now.Format(dayLayout):
		return "Hoje"
	case now.AddDate(0, 0, -1).Format(dayLayout):
		return "Ontem"
	}
	return workDate.Format("02/01/2006")
}
