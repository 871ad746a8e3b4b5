package domain

import "testing"

func TestNextStatusChain(t *testing.T) {
	chain := []OrderStatus{StatusPengajuan, StatusSurvei, StatusPengerjaan, StatusSelesai}
	for i := 0; i < len(chain)-1; i++ {
		next, ok := NextStatus(chain[i])
		if !ok {
			t.Fatalf("NextStatus(%s): expected successor", chain[i])
		}
		if next != chain[i+1] {
			t.Fatalf("NextStatus(%s) = %s, want %s", chain[i], next, chain[i+1])
		}
	}
}

func TestNextStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{StatusSelesai, StatusDibatalkan} {
		if _, ok := NextStatus(s); ok {
			t.Errorf("NextStatus(%s): terminal state must have no successor", s)
		}
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPengajuan, StatusSurvei, true},
		{StatusSurvei, StatusPengerjaan, true},
		{StatusPengerjaan, StatusSelesai, true},
		{StatusPengajuan, StatusSelesai, false},
		{StatusPengajuan, StatusPengerjaan, false},
		{StatusSurvei, StatusPengajuan, false},
		{StatusPengajuan, StatusDibatalkan, true},
		{StatusSurvei, StatusDibatalkan, true},
		{StatusPengerjaan, StatusDibatalkan, true},
		{StatusSelesai, StatusDibatalkan, false},
		{StatusDibatalkan, StatusSelesai, false},
		{StatusSelesai, StatusSurvei, false},
		{StatusSurvei, StatusSurvei, true},
		{StatusSelesai, StatusSelesai, true},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusPengajuan, StatusSurvei, StatusPengerjaan, StatusSelesai, StatusDibatalkan} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus("MENUNGGU") {
		t.Error("ValidStatus(MENUNGGU) = true; only the canonical set is accepted")
	}
}

func TestTransitionError(t *testing.T) {
	if err := TransitionError(StatusSelesai, StatusSurvei); err == nil {
		t.Fatal("expected error for terminal state")
	}
	if err := TransitionError(StatusPengajuan, StatusSelesai); err == nil {
		t.Fatal("expected error for skipped state")
	}
}
