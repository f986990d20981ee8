package subtitles

import "testing"

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:00:01,000", 1000, false},
		{"00:01:00,500", 60500, false},
		{"01:02:03,004", 3723004, false},
		{"10:00:00,000", 36000000, false},
		{"100:00:00,000", 360000000, false}, // heures à plus de deux chiffres
		{"00:60:00,000", 0, true},
		{"00:00:60,000", 0, true},
		{"00:00:00,00", 0, true},
		{"00:00:00.000", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) : erreur attendue, obtenu %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) : erreur inattendue %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseTimestamp(%q) = %d, attendu %d", c.in, got, c.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "00:00:00,000"},
		{999, "00:00:00,999"},
		{1000, "00:00:01,000"},
		{3723004, "01:02:03,004"},
		{86399999, "23:59:59,999"},
		{360000000, "100:00:00,000"},
	}
	for _, c := range cases {
		if got := FormatTimestamp(c.in); got != c.want {
			t.Fatalf("FormatTimestamp(%d) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 359999999} {
		got, err := ParseTimestamp(FormatTimestamp(ms))
		if err != nil {
			t.Fatalf("aller-retour %d ms : %v", ms, err)
		}
		if got != ms {
			t.Fatalf("aller-retour %d ms : obtenu %d", ms, got)
		}
	}
}

func TestMillisFromSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1, 1000},
		{1.5, 1500},
		{0.0009, 0}, // troncature, pas d'arrondi
		{299.9999, 299999},
	}
	for _, c := range cases {
		if got := MillisFromSeconds(c.in); got != c.want {
			t.Fatalf("MillisFromSeconds(%v) = %d, attendu %d", c.in, got, c.want)
		}
	}
}
