package handler

import "testing"

func boolp(v bool) *bool { return &v }

func int64p(v int64) *int64 { return &v }

func TestClassifyPatchUploadBukti(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{
		BuktiPembayaran:  "bukti.jpg",
		MetodePembayaran: "transfer_bca",
	})
	if kind != patchUploadBukti {
		t.Fatalf("kind = %d, want upload", kind)
	}
}

func TestClassifyPatchExplicitUploadAction(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{
		Action:          "upload_bukti",
		BuktiPembayaran: "bukti.jpg",
	})
	if kind != patchUploadBukti {
		t.Fatalf("kind = %d, want upload", kind)
	}
}

func TestClassifyPatchVerifikasi(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{
		Action:    "verifikasi",
		AdminID:   int64p(1),
		Disetujui: boolp(true),
	})
	if kind != patchVerifikasi {
		t.Fatalf("kind = %d, want verifikasi", kind)
	}
}

func TestClassifyPatchVerifikasiRequiresAdminID(t *testing.T) {
	kind, reason := classifyPatch(pembayaranPatch{
		Action:    "verifikasi",
		Disetujui: boolp(true),
	})
	if kind != patchInvalid {
		t.Fatalf("kind = %d, want invalid", kind)
	}
	if reason == "" {
		t.Fatal("expected a reason naming the missing field")
	}
}

func TestClassifyPatchVerifikasiRequiresDecision(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{
		Action:  "verifikasi",
		AdminID: int64p(1),
	})
	if kind != patchInvalid {
		t.Fatalf("kind = %d, want invalid", kind)
	}
}

func TestClassifyPatchEmptyBodyRejected(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{})
	if kind != patchInvalid {
		t.Fatalf("kind = %d, want invalid", kind)
	}
}

func TestClassifyPatchUnknownActionRejected(t *testing.T) {
	kind, _ := classifyPatch(pembayaranPatch{Action: "refund"})
	if kind != patchInvalid {
		t.Fatalf("kind = %d, want invalid", kind)
	}
}
