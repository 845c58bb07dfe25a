package report

import (
	"math"
	"testing"
)

func TestFixed(t *testing.T) {
	cases := []struct {
		value float64
		scale int
		want  string
	}{
		{1, 2, "1.00"},
		{0.95, 2, "0.95"},
		{1.05, 3, "1.050"},
		{1.2049999999999998, 3, "1.205"},
		{2.0, 3, "2.000"},
		{0.123456, 3, "0.123"},
		{0.925, 2, "0.93"},
		{0.9974999999999999, 3, "0.997"},
		{1.0450000000000002, 3, "1.045"},
		{math.Inf(1), 2, "+Inf"},
	}

	for _, _case := range cases {
		got := fixed(_case.value, _case.scale)
		if got != _case.want {
			t.Errorf("fixed(%v, %d) = %s, want %s", _case.value, _case.scale, got, _case.want)
		}
	}
}

func TestWhole(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{10000, "10000"},
		{10545, "10545"},
		{2759.9, "2759"},
		{8500.000000000002, "8500"},
		{0, "0"},
		{math.Inf(1), "+Inf"},
	}

	for _, _case := range cases {
		got := whole(_case.value)
		if got != _case.want {
			t.Errorf("whole(%v) = %s, want %s", _case.value, got, _case.want)
		}
	}
}
