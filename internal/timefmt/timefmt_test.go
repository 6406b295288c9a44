package timefmt

import "testing"

func TestLong(t *testing.T) {
	cases := []struct {
		secs int64
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{90, "1m 30s"},
		{3600, "1h 0m 0s"},
		{3661, "1h 1m 1s"},
		{9000, "2h 30m 0s"},
		{-5, "0s"},
	}
	for _, c := range cases {
		if got := Long(c.secs); got != c.want {
			t.Errorf("Long(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestShort(t *testing.T) {
	cases := []struct {
		secs int64
		want string
	}{
		{0, "0m"},
		{59, "0m"},
		{90, "1m"},
		{3661, "1h 1m"},
		{28800, "8h 0m"},
		{-1, "0m"},
	}
	for _, c := range cases {
		if got := Short(c.secs); got != c.want {
			t.Errorf("Short(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestColon(t *testing.T) {
	cases := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{90, "00:01:30"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
	}
	for _, c := range cases {
		if got := Colon(c.secs); got != c.want {
			t.Errorf("Colon(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestParseColon(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"1:2:3", 3723},
		{"01:01:01", 3661},
		{"2:30", 150},
		{"45", 45},
		{"", 0},
		{"abc", 0},
		{"1:abc:3", 3603}, // non-numeric part reads as 0
		{"1:2:3:4", 0},    // too many parts
		{" 00:01:30 ", 90},
	}
	for _, c := range cases {
		if got := ParseColon(c.text); got != c.want {
			t.Errorf("ParseColon(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestColonRoundTrip(t *testing.T) {
	for _, secs := range []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 9000, 86399, 359999} {
		if got := ParseColon(Colon(secs)); got != secs {
			t.Errorf("ParseColon(Colon(%d)) = %d", secs, got)
		}
	}
}
