package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"

	"arfilla-backend/internal/config"
	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"gopkg.in/gomail.v2"
)

var mailTmpl = template.Must(template.New("mail").Parse(`<!doctype html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937;">
    <h2>{{.NamaUsaha}}</h2>
    <p>Halo {{.Nama}},</p>
    <p>{{.Body}}</p>
    {{if .Detail}}<p><strong>{{.Detail}}</strong></p>{{end}}
    <p style="color:#6b7280; font-size:12px;">{{.Footer}}</p>
  </body>
</html>`))

type mailData struct {
	NamaUsaha string
	Nama      string
	Body      string
	Detail    string
	Footer    string
}

// Mailer sends templated HTML notification emails over SMTP. The business
// profile (name, footer) comes from the pengaturan row so admin edits show
// up in outgoing mail without a restart.
type Mailer struct {
	Dialer     *gomail.Dialer
	From       string
	Pengaturan repository.PengaturanRepository
}

var defaultProfil = domain.Pengaturan{
	NamaUsaha:   "CV Arfilla Jaya Putra",
	FooterEmail: "Email ini dikirim otomatis, mohon tidak membalas.",
}

// NewMailer returns nil when SMTP is not configured; callers treat a nil
// mailer as "log only".
func NewMailer(cfg config.Config, pengaturan repository.PengaturanRepository) *Mailer {
	if !cfg.MailEnabled() {
		return nil
	}
	return &Mailer{
		Dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		From:       cfg.MailFrom,
		Pengaturan: pengaturan,
	}
}

func (m *Mailer) profil(ctx context.Context) domain.Pengaturan {
	p, err := m.Pengaturan.Get(ctx)
	if err != nil || p == nil {
		return defaultProfil
	}
	out := *p
	if out.NamaUsaha == "" {
		out.NamaUsaha = defaultProfil.NamaUsaha
	}
	if out.FooterEmail == "" {
		out.FooterEmail = defaultProfil.FooterEmail
	}
	return out
}

// Render builds the subject and HTML body for an event under a given
// business profile.
func (m *Mailer) Render(ev Event, profil domain.Pengaturan) (subject, html string, err error) {
	subject, body, detail := composeMessage(ev)
	data := mailData{
		NamaUsaha: profil.NamaUsaha,
		Nama:      ev.Nama,
		Body:      body,
		Detail:    detail,
		Footer:    profil.FooterEmail,
	}
	var buf bytes.Buffer
	if err := mailTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

func (m *Mailer) Send(ctx context.Context, ev Event) error {
	if ev.Email == "" {
		return fmt.Errorf("event has no recipient")
	}
	subject, html, err := m.Render(ev, m.profil(ctx))
	if err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", ev.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.Dialer.DialAndSend(msg)
}

// composeMessage maps an event to subject, body and optional detail line.
func composeMessage(ev Event) (subject, body, detail string) {
	switch ev.Kind {
	case KindPesananDibuat:
		subject = fmt.Sprintf("Pesanan #%d diterima", ev.PesananID)
		body = fmt.Sprintf("Pesanan Anda #%d telah kami terima dan sedang menunggu peninjauan.", ev.PesananID)
	case KindStatusPesanan:
		subject = fmt.Sprintf("Pesanan #%d: %s", ev.PesananID, ev.Status.Label())
		body = fmt.Sprintf("Status pesanan Anda #%d sekarang: %s.", ev.PesananID, ev.Status.Label())
	case KindBuktiDiterima:
		subject = fmt.Sprintf("Bukti pembayaran pesanan #%d diterima", ev.PesananID)
		body = fmt.Sprintf("Bukti pembayaran %s untuk pesanan #%d telah kami terima dan sedang menunggu verifikasi.", ev.Jenis, ev.PesananID)
	case KindPembayaranDiterima:
		subject = fmt.Sprintf("Pembayaran pesanan #%d diverifikasi", ev.PesananID)
		body = fmt.Sprintf("Pembayaran %s sebesar %s untuk pesanan #%d telah diverifikasi.", ev.Jenis, FormatRupiah(ev.Jumlah), ev.PesananID)
		if ev.Status != "" {
			detail = "Status pesanan: " + ev.Status.Label()
		}
	case KindPembayaranDitolak:
		subject = fmt.Sprintf("Pembayaran pesanan #%d ditolak", ev.PesananID)
		body = fmt.Sprintf("Pembayaran %s untuk pesanan #%d ditolak.", ev.Jenis, ev.PesananID)
		if ev.Alasan != "" {
			detail = "Alasan: " + ev.Alasan
		}
	default:
		subject = fmt.Sprintf("Pemberitahuan pesanan #%d", ev.PesananID)
		body = "Ada pembaruan pada pesanan Anda."
	}
	return subject, body, detail
}

// FormatRupiah renders an amount with thousand separators, e.g. Rp 5.000.000.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var buf bytes.Buffer
	lead := len(s) % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s[i : i+3])
	}
	if neg {
		return "Rp -" + buf.String()
	}
	return "Rp " + buf.String()
}
