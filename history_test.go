package goalfolio

import "testing"

func TestHistoryAppendKeepsOrder(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParseDate("2025-07-03"), 3)
	h.Append(MustParseDate("2025-07-01"), 1)
	h.Append(MustParseDate("2025-07-02"), 2)

	var days []string
	var values []float64
	for on, v := range h.Values() {
		days = append(days, on.String())
		values = append(values, v)
	}
	want := []string{"2025-07-01", "2025-07-02", "2025-07-03"}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day[%d] = %s want %s", i, days[i], want[i])
		}
		if values[i] != float64(i+1) {
			t.Errorf("value[%d] = %v want %v", i, values[i], i+1)
		}
	}
}

func TestHistoryAppendOverwritesSameDay(t *testing.T) {
	h := new(History[float64])
	on := MustParseDate("2025-07-01")
	h.Append(on, 100)
	h.Append(on, 250)

	if h.Len() != 1 {
		t.Fatalf("Len = %d want 1: same-day writes must not duplicate", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 250 {
		t.Errorf("Get = %v,%v want 250,true", v, ok)
	}
}

func TestHistoryLatest(t *testing.T) {
	h := new(History[float64])
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("Latest on empty = %v,%v", day, v)
	}
	h.Append(MustParseDate("2025-07-02"), 2)
	h.Append(MustParseDate("2025-07-01"), 1)
	if day, v := h.Latest(); day.String() != "2025-07-02" || v != 2 {
		t.Errorf("Latest = %s,%v want 2025-07-02,2", day, v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParseDate("2025-07-01"), 1)
	h.Append(MustParseDate("2025-07-10"), 10)

	tests := []struct {
		day    string
		want   float64
		wantOk bool
	}{
		{"2025-06-30", 0, false},
		{"2025-07-01", 1, true},
		{"2025-07-05", 1, true},
		{"2025-07-10", 10, true},
		{"2025-08-01", 10, true},
	}
	for _, tc := range tests {
		got, ok := h.ValueAsOf(MustParseDate(tc.day))
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("ValueAsOf(%s) = %v,%v want %v,%v", tc.day, got, ok, tc.want, tc.wantOk)
		}
	}
}
