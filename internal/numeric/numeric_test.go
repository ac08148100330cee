package numeric

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		err  error
	}{
		{"100", 100, nil},
		{"۱۰۰,۰۰۰", 100000, nil},
		{"۱۲.۵", 12.5, nil},
		{"12.5", 12.5, nil},
		{"1,000,000", 1000000, nil},
		{"1 000 000", 1000000, nil},
		{"1000000000", 1000000000, nil}, // the ceiling itself is accepted
		{"2000000000", 0, ErrTooLarge},
		{"-5", 0, ErrNotPositive},
		{"0", 0, ErrNotPositive},
		{"abc", 0, ErrNotANumber},
		{"", 0, ErrNotANumber},
		{"12.5.6", 0, ErrNotANumber},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.raw)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseAmount(%q) err = %v, want %v", tt.raw, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeDigits(t *testing.T) {
	if got := NormalizeDigits("۱۲۳۴۵۶۷۸۹۰"); got != "1234567890" {
		t.Fatalf("NormalizeDigits = %q", got)
	}
	if got := NormalizeDigits("۱۰۰ دلار"); got != "100 دلار" {
		t.Fatalf("NormalizeDigits mixed = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		100:        "100",
		1000:       "1,000",
		58000:      "58,000",
		5800000:    "5,800,000",
		1234567.89: "1,234,567.89",
		-44000:     "-44,000",
		0.5:        "0.5",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatString("58000"); got != "58,000" {
		t.Errorf("FormatString(58000) = %q", got)
	}
	if got := FormatString("58,000"); got != "58,000" {
		t.Errorf("FormatString(58,000) = %q", got)
	}
	if got := FormatString("n/a"); got != "n/a" {
		t.Errorf("FormatString(n/a) = %q", got)
	}
}

func TestDisplayAmount(t *testing.T) {
	if got := DisplayAmount(5800000); got != "5,800,000" {
		t.Errorf("whole amount = %q", got)
	}
	if got := DisplayAmount(91.33333); got != "91.33" {
		t.Errorf("fractional amount = %q", got)
	}
}

func TestDisplayRate(t *testing.T) {
	if got := DisplayRate(58000); got != "58,000" {
		t.Errorf("large rate = %q", got)
	}
	if got := DisplayRate(0.913385); got != "0.91" {
		t.Errorf("small rate = %q", got)
	}
	if got := DisplayRate(0.0000172); got != "0.000017" {
		t.Errorf("tiny rate = %q", got)
	}
}

func TestFormatChange(t *testing.T) {
	if got := FormatChange("(0.52%) 300"); got != "📈 300+" {
		t.Errorf("positive change = %q", got)
	}
	if got := FormatChange("(-0.12%) -700"); got != "📉 700-" {
		t.Errorf("negative change = %q", got)
	}
	if got := FormatChange("garbage"); got != "garbage" {
		t.Errorf("garbage change = %q", got)
	}
	if got := FormatChange("(1.10%) 440,000"); got != "📈 440,000+" {
		t.Errorf("comma change = %q", got)
	}
}
