package records

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	advance := -10.0
	record := WorkRecord{
		EmployeeName:  "  Ana  ",
		SalesShare:    -5,
		CheckIn:       "26:00",
		CheckOut:      "banana",
		Advance:       &advance,
		AdvanceMethod: "boleto",
		PaymentMethod: "cheque",
	}

	Normalize(&record)

	if record.EmployeeName != "Ana" {
		t.Fatalf("expected trimmed name, got %q", record.EmployeeName)
	}
	if record.SalesShare != 0 {
		t.Fatalf("expected negative share reset, got %v", record.SalesShare)
	}
	if record.CheckIn != DefaultCheckIn || record.CheckOut != DefaultCheckOut {
		t.Fatalf("expected default clocks, got %q/%q", record.CheckIn, record.CheckOut)
	}
	if record.Advance == nil || *record.Advance != 0 {
		t.Fatalf("expected negative advance reset, got %v", record.Advance)
	}
	if record.AdvanceMethod != "" {
		t.Fatalf("expected invalid advance method cleared, got %q", record.AdvanceMethod)
	}
	if record.PaymentMethod != MethodPix {
		t.Fatalf("expected pix fallback, got %q", record.PaymentMethod)
	}
}

func TestNormalizeKeepsValidFields(t *testing.T) {
	advance := 25.0
	record := WorkRecord{
		EmployeeName:  "Bruno",
		SalesShare:    42.5,
		CheckIn:       "09:30",
		CheckOut:      "18:45",
		Advance:       &advance,
		AdvanceMethod: MethodCash,
		PaymentMethod: MethodCash,
	}

	Normalize(&record)

	if record.CheckIn != "09:30" || record.CheckOut != "18:45" {
		t.Fatalf("expected clocks untouched, got %q/%q", record.CheckIn, record.CheckOut)
	}
	if *record.Advance != 25 || record.AdvanceMethod != MethodCash {
		t.Fatalf("expected advance untouched, got %v %q", *record.Advance, record.AdvanceMethod)
	}
	if record.PaymentMethod != MethodCash {
		t.Fatalf("expected payment method untouched, got %q", record.PaymentMethod)
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		value string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"08:00", 480, true},
		{"23:59", 1439, true},
		{" 12:30 ", 750, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:00", 0, false},
		{"1200", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ClockMinutes(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ClockMinutes(%q) = %d, %v; want %d, %v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}
