package notify

import (
	"strings"
	"testing"

	"arfilla-backend/internal/domain"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{5000, "Rp 5.000"},
		{5000000, "Rp 5.000.000"},
		{1234567890, "Rp 1.234.567.890"},
		{-25000, "Rp -25.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderApprovedPayment(t *testing.T) {
	m := &Mailer{}
	subject, html, err := m.Render(Event{
		Kind:      KindPembayaranDiterima,
		Nama:      "Budi",
		PesananID: 12,
		Jenis:     domain.JenisDP,
		Jumlah:    2500000,
		Status:    domain.StatusPengerjaan,
	}, defaultProfil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(subject, "#12") {
		t.Errorf("subject %q should reference the order", subject)
	}
	for _, want := range []string{"Budi", "Rp 2.500.000", "Dalam Pengerjaan", "CV Arfilla Jaya Putra"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestRenderRejectedPaymentCarriesReason(t *testing.T) {
	m := &Mailer{}
	_, html, err := m.Render(Event{
		Kind:      KindPembayaranDitolak,
		Nama:      "Sari",
		PesananID: 7,
		Jenis:     domain.JenisPelunasan,
		Alasan:    "nominal transfer tidak sesuai",
	}, defaultProfil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "nominal transfer tidak sesuai") {
		t.Error("rejection reason missing from body")
	}
}

func TestRenderStatusChange(t *testing.T) {
	m := &Mailer{}
	subject, _, err := m.Render(Event{
		Kind:      KindStatusPesanan,
		Nama:      "Budi",
		PesananID: 3,
		Status:    domain.StatusSurvei,
	}, defaultProfil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(subject, "Survei Lokasi") {
		t.Errorf("subject %q should carry the status label", subject)
	}
}

func TestRenderUsesBusinessProfile(t *testing.T) {
	m := &Mailer{}
	_, html, err := m.Render(Event{
		Kind:      KindPesananDibuat,
		Nama:      "Budi",
		PesananID: 5,
	}, domain.Pengaturan{
		NamaUsaha:   "CV Arfilla Jaya Putra Cabang Malang",
		FooterEmail: "Hubungi kami di 0341-000111.",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"CV Arfilla Jaya Putra Cabang Malang", "Hubungi kami di 0341-000111."} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}
