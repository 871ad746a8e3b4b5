package handler

import "testing"

func TestValidPersen(t *testing.T) {
	cases := []struct {
		persen int
		ok     bool
	}{
		{0, true},
		{50, true},
		{100, true},
		{-1, false},
		{101, false},
	}
	for _, tc := range cases {
		ok, msg := validPersen(tc.persen)
		if ok != tc.ok {
			t.Errorf("validPersen(%d) = %v, want %v", tc.persen, ok, tc.ok)
		}
		if !ok && msg == "" {
			t.Errorf("validPersen(%d) rejected without naming the valid range", tc.persen)
		}
	}
}
