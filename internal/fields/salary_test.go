package fields

import "testing"

func TestExtractSalary_Range(t *testing.T) {
	s := ExtractSalary("£50,000 - £70,000 per annum")
	if s == nil {
		t.Fatalf("expected salary, got nil")
	}
	if s.Min != 50000 || s.Max != 70000 {
		t.Fatalf("range = %v-%v, want 50000-70000", s.Min, s.Max)
	}
	if s.Currency != "GBP" {
		t.Fatalf("currency = %s, want GBP", s.Currency)
	}
	if s.Period != PeriodAnnum {
		t.Fatalf("period = %s, want annum", s.Period)
	}
}

func TestExtractSalary_KShorthand(t *testing.T) {
	s := ExtractSalary("£50k-£70k")
	if s == nil {
		t.Fatalf("expected salary, got nil")
	}
	if s.Min != 50000 || s.Max != 70000 {
		t.Fatalf("range = %v-%v, want 50000-70000", s.Min, s.Max)
	}
	if s.Period != PeriodAnnum {
		t.Fatalf("period = %s, want annum (default)", s.Period)
	}
}

func TestExtractSalary_PerHour(t *testing.T) {
	s := ExtractSalary("Pay: £18.50 per hour")
	if s == nil {
		t.Fatalf("expected salary, got nil")
	}
	if s.Min != 18.5 {
		t.Fatalf("min = %v, want 18.5", s.Min)
	}
	if s.Period != PeriodHour {
		t.Fatalf("period = %s, want hour", s.Period)
	}
}

func TestExtractSalary_PeriodFromWholeText(t *testing.T) {
	s := ExtractSalary("£3,000 - £3,500 paid monthly")
	if s == nil {
		t.Fatalf("expected salary, got nil")
	}
	if s.Period != PeriodMonth {
		t.Fatalf("period = %s, want month", s.Period)
	}
}

func TestExtractSalary_NoMatch(t *testing.T) {
	for _, text := range []string{"", "Competitive salary", "$90,000 - $120,000"} {
		if s := ExtractSalary(text); s != nil {
			t.Fatalf("expected nil for %q, got %+v", text, s)
		}
	}
}
