package format

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestTrim(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{123.45, "123.45"},
		{100.0, "100"},
		{42, "42"},
		{1e-7, "0.0000001"},
		{-1e-7, "-0.0000001"},
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
		{math.Inf(-1), "0"},
		{1e-13, "0"}, // below EPS
	}
	for _, c := range cases {
		if got := Trim(c.in); got != c.want {
			t.Errorf("Trim(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTrimNeverScientific(t *testing.T) {
	values := []float64{1e-7, 5.4e-7, 1e-11, 123456789.123456, 4e-6, -2.5e-8, 1e15}
	for _, v := range values {
		s := Trim(v)
		if strings.ContainsAny(s, "eE") {
			t.Errorf("Trim(%v) = %q contains an exponent", v, s)
		}
	}
}

func TestRound12(t *testing.T) {
	if got := Round12(0.1234567890123456); got != 0.123456789012 {
		t.Errorf("Round12 = %v", got)
	}
	if got := Round12(100); got != 100 {
		t.Errorf("Round12(100) = %v", got)
	}
	if got := Round12(math.NaN()); got != 0 {
		t.Errorf("Round12(NaN) = %v", got)
	}
}

func TestSigned(t *testing.T) {
	if got := Signed(10); got != "+10" {
		t.Errorf("Signed(10) = %q", got)
	}
	if got := Signed(-5); got != "−5" {
		t.Errorf("Signed(-5) = %q", got)
	}
	if got := Signed(0); got != "+0" {
		t.Errorf("Signed(0) = %q", got)
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in    float64
		asset string
		want  string
	}{
		{100, "USDT", "+100.00 USDT"},
		{-50.5, "BTC", "-50.50 BTC"},
		{0, "ETH", "0.00 ETH"},
	}
	for _, c := range cases {
		if got := Money(c.in, c.asset); got != c.want {
			t.Errorf("Money(%v, %s) = %q, want %q", c.in, c.asset, got, c.want)
		}
	}
}

func TestFinal(t *testing.T) {
	if got := Final(4e-8); got != "0.0000" {
		t.Errorf("Final(4e-8) = %q, want dust form", got)
	}
	if got := Final(4e-6); got != "0.000004" {
		t.Errorf("Final(4e-6) = %q", got)
	}
	if got := Final(11); got != "11" {
		t.Errorf("Final(11) = %q", got)
	}
}

func TestTime(t *testing.T) {
	ts := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := Time(ts, 0); got != "2023-01-01 12:00:00" {
		t.Errorf("Time(+0) = %q", got)
	}
	if got := Time(ts, 3); got != "2023-01-01 15:00:00" {
		t.Errorf("Time(+3) = %q", got)
	}
	// Offsets cross date boundaries through plain instant arithmetic.
	late := time.Date(2023, 1, 1, 23, 0, 0, 0, time.UTC)
	if got := Time(late, 9); got != "2023-01-02 08:00:00" {
		t.Errorf("Time(+9) = %q", got)
	}
}
