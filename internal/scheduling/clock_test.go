package scheduling

import (
	"errors"
	"fmt"
	"testing"

	"zapis/internal/domain"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q): неожиданная ошибка %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToMinutes(%q) = %d, ожидалось %d", tc.in, got, tc.want)
		}
	}
}

func TestToMinutesInvalid(t *testing.T) {
	cases := []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "12:30:00", "-1:30"}

	for _, in := range cases {
		_, err := ToMinutes(in)
		if !errors.Is(err, domain.ErrInvalidTimeFormat) {
			t.Errorf("ToMinutes(%q): ожидалась ErrInvalidTimeFormat, получено %v", in, err)
		}
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			s := fmt.Sprintf("%02d:%02d", hour, minute)
			m, err := ToMinutes(s)
			if err != nil {
				t.Fatalf("ToMinutes(%q): %v", s, err)
			}
			if got := FromMinutes(m); got != s {
				t.Fatalf("FromMinutes(ToMinutes(%q)) = %q", s, got)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"a начинается внутри b", Interval{30, 90}, Interval{0, 60}, true},
		{"a заканчивается внутри b", Interval{0, 30}, Interval{15, 60}, true},
		{"a содержит b", Interval{0, 120}, Interval{30, 60}, true},
		{"a совпадает с b", Interval{30, 60}, Interval{30, 60}, true},
		{"a раньше b", Interval{0, 30}, Interval{30, 60}, false},
		{"a позже b", Interval{60, 90}, Interval{30, 60}, false},
		{"касание границ не пересечение", Interval{0, 30}, Interval{30, 45}, false},
		{"нулевая длина a", Interval{30, 30}, Interval{0, 60}, false},
		{"нулевая длина b", Interval{0, 60}, Interval{30, 30}, false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: Overlaps(%v, %v) = %v, ожидалось %v", tc.name, tc.a, tc.b, got, tc.want)
		}
		// Пересечение симметрично.
		if got := Overlaps(tc.b, tc.a); got != tc.want {
			t.Errorf("%s: Overlaps(%v, %v) = %v, ожидалось %v", tc.name, tc.b, tc.a, got, tc.want)
		}
	}
}
