package duration

import "testing"

func TestParseISO(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT24M35S", 1475},
		{"PT45S", 45},
		{"PT2H15M30S", 8130},
		{"PT1H", 3600},
		{"PT0S", 0},
		{"", 0},
		{"24:35", 0},
		{"garbage", 0},
	}
	for _, c := range cases {
		if got := ParseISO(c.in); got != c.want {
			t.Errorf("ParseISO(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{1475, "24:35"},
		{45, "0:45"},
		{8130, "2:15:30"},
		{3600, "1:00:00"},
		{0, "0:00"},
		{-5, "0:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestISOToClock(t *testing.T) {
	if got := ISOToClock("PT24M35S"); got != "24:35" {
		t.Errorf("ISOToClock(PT24M35S) = %q, want 24:35", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"24:35", 1475},
		{"18:42", 1122},
		{"2:15:30", 8130},
		{"0:00", 0},
		{"", 0},
		{"x:y", 0},
	}
	for _, c := range cases {
		if got := ParseClock(c.in); got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, secs := range []int{0, 59, 60, 61, 1475, 3599, 3600, 8130} {
		if got := ParseClock(FormatClock(secs)); got != secs {
			t.Errorf("ParseClock(FormatClock(%d)) = %d", secs, got)
		}
	}
}
