package repository

import (
	"strings"
	"testing"
)

func TestSetBuktiStartsFreshReview(t *testing.T) {
	for _, reset := range []string{
		"alasan_penolakan=NULL",
		"tanggal_verifikasi=NULL",
		"verifikator_admin_id=NULL",
	} {
		if !strings.Contains(setBuktiSQL, reset) {
			t.Errorf("proof upload must clear the previous verdict: missing %q", reset)
		}
	}
	if !strings.Contains(setBuktiSQL, "tanggal_bayar=now()") {
		t.Error("proof upload must stamp tanggal_bayar")
	}
	if !strings.Contains(setBuktiSQL, "deleted_at IS NULL") {
		t.Error("proof upload must skip soft-deleted rows")
	}
}
