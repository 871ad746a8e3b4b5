package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/notify"
	"arfilla-backend/internal/ports"
	"arfilla-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// PembayaranService owns the manual bank transfer flow: customers attach a
// proof of transfer, an admin verifies it, and approval moves the order
// forward. Verification runs inside a single transaction so the payment
// update, the derived settlement row and the order status change land
// together or not at all.
type PembayaranService struct {
	DB         *db.Postgres
	Pembayaran repository.PembayaranRepository
	Pesanan    repository.PesananRepository
	Pengguna   repository.PenggunaRepository
	Logs       repository.ActivityLogRepository
	Notifier   ports.Notifier
	Logger     *slog.Logger
}

type CreatePembayaranInput struct {
	PesananID int64
	Jumlah    int64
	Jenis     domain.PaymentType
	Metode    string
}

type VerifyInput struct {
	AdminID int64
	Approve bool
	Alasan  *string
}

// approvalOutcome captures what approving a payment does beyond marking it
// verified: the order status it pushes the order toward and, for a down
// payment with a remainder, the settlement row to derive.
type approvalOutcome struct {
	NextOrderStatus domain.OrderStatus
	CreatePelunasan bool
	PelunasanJumlah int64
}

// decideApproval is the payment approval policy. A verified down payment
// sends the order into PENGERJAAN and, when the agreed price leaves a
// positive remainder and no settlement exists yet, derives a PELUNASAN
// payment for that remainder. A verified settlement completes the order.
func decideApproval(jenis domain.PaymentType, harga *int64, jumlah int64, hasPelunasan bool) approvalOutcome {
	if jenis == domain.JenisPelunasan {
		return approvalOutcome{NextOrderStatus: domain.StatusSelesai}
	}
	out := approvalOutcome{NextOrderStatus: domain.StatusPengerjaan}
	if harga == nil || hasPelunasan {
		return out
	}
	if sisa := *harga - jumlah; sisa > 0 {
		out.CreatePelunasan = true
		out.PelunasanJumlah = sisa
	}
	return out
}

// Create registers a payment expectation on an order, typically the down
// payment an admin records after the survey settles the price.
func (s PembayaranService) Create(ctx context.Context, in CreatePembayaranInput, actor string) (*domain.Pembayaran, error) {
	if in.Jumlah <= 0 {
		return nil, invalidf("jumlah pembayaran harus lebih dari 0")
	}
	if in.Jenis != domain.JenisDP && in.Jenis != domain.JenisPelunasan {
		return nil, invalidf("jenis pembayaran %q tidak dikenal", string(in.Jenis))
	}
	if _, err := s.Pesanan.Get(ctx, in.PesananID); err != nil {
		return nil, err
	}

	b, err := s.Pembayaran.Create(ctx, repository.CreatePembayaranInput{
		PesananID: in.PesananID,
		Jumlah:    in.Jumlah,
		Jenis:     in.Jenis,
		Status:    domain.BayarBelum,
		Metode:    in.Metode,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, fmt.Errorf("pembayaran %s untuk pesanan #%d: %w", in.Jenis, in.PesananID, ErrConflict)
		}
		return nil, err
	}

	s.log(ctx, "Pembayaran dibuat", fmt.Sprintf("Pembayaran %s #%d untuk pesanan #%d", b.Jenis, b.ID, b.PesananID), actor, domain.LogInfo)
	return b, nil
}

func (s PembayaranService) Get(ctx context.Context, id int64) (*domain.Pembayaran, error) {
	return s.Pembayaran.Get(ctx, id)
}

func (s PembayaranService) List(ctx context.Context, limit int) ([]domain.Pembayaran, error) {
	return s.Pembayaran.List(ctx, limit)
}

// UploadBukti attaches a proof of transfer and puts the payment in the
// verification queue. When owner is non-nil the payment's order must belong
// to that customer. Re-uploading over a rejected or pending proof is
// allowed; a verified payment is final.
func (s PembayaranService) UploadBukti(ctx context.Context, id int64, owner *int64, bukti, metode string) (*domain.Pembayaran, error) {
	if bukti == "" {
		return nil, invalidf("bukti pembayaran wajib diunggah")
	}

	b, err := s.Pembayaran.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.Pesanan.Get(ctx, b.PesananID)
	if err != nil {
		return nil, err
	}
	if owner != nil && (p.PenggunaID == nil || *p.PenggunaID != *owner) {
		return nil, ErrForbidden
	}
	if b.Status == domain.BayarVerified {
		return nil, invalidf("pembayaran sudah diverifikasi dan tidak dapat diubah")
	}

	b, err = s.Pembayaran.SetBukti(ctx, id, bukti, metode)
	if err != nil {
		return nil, err
	}

	s.log(ctx, "Bukti pembayaran diterima", fmt.Sprintf("Pembayaran %s #%d untuk pesanan #%d", b.Jenis, b.ID, b.PesananID), p.NamaPemesan, domain.LogInfo)
	s.dispatch(ctx, p, notify.Event{
		Kind:      notify.KindBuktiDiterima,
		PesananID: p.ID,
		Jenis:     b.Jenis,
		Jumlah:    b.Jumlah,
	})
	return b, nil
}

// Verify settles a pending payment. Approval marks it verified, derives the
// settlement payment when the down payment leaves a remainder, and advances
// the order. Rejection records the optional reason and sends the payment
// back to BELUM_BAYAR territory for a re-upload. The whole decision runs in
// one transaction with the payment and order rows locked.
func (s PembayaranService) Verify(ctx context.Context, id int64, in VerifyInput, actor string) (*domain.Pembayaran, error) {
	tx, err := s.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	b, err := s.Pembayaran.GetForUpdateWithTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BayarMenunggu {
		return nil, invalidf("pembayaran berstatus %s, hanya yang menunggu verifikasi dapat diproses", string(b.Status))
	}
	p, err := s.Pesanan.GetWithTx(ctx, tx, b.PesananID)
	if err != nil {
		return nil, err
	}

	var events []notify.Event
	if in.Approve {
		b, events, err = s.approve(ctx, tx, b, p, in.AdminID)
	} else {
		b, err = s.Pembayaran.MarkRejectedWithTx(ctx, tx, id, in.AdminID, in.Alasan)
		if err == nil {
			ev := notify.Event{
				Kind:      notify.KindPembayaranDitolak,
				PesananID: p.ID,
				Jenis:     b.Jenis,
				Jumlah:    b.Jumlah,
			}
			if in.Alasan != nil {
				ev.Alasan = *in.Alasan
			}
			events = []notify.Event{ev}
		}
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if in.Approve {
		s.log(ctx, "Pembayaran diverifikasi", fmt.Sprintf("Pembayaran %s #%d untuk pesanan #%d", b.Jenis, b.ID, b.PesananID), actor, domain.LogInfo)
	} else {
		s.log(ctx, "Pembayaran ditolak", fmt.Sprintf("Pembayaran %s #%d untuk pesanan #%d", b.Jenis, b.ID, b.PesananID), actor, domain.LogWarning)
	}
	for _, ev := range events {
		s.dispatch(ctx, p, ev)
	}
	return b, nil
}

func (s PembayaranService) approve(ctx context.Context, tx pgx.Tx, b *domain.Pembayaran, p *domain.Pesanan, adminID int64) (*domain.Pembayaran, []notify.Event, error) {
	b, err := s.Pembayaran.MarkVerifiedWithTx(ctx, tx, b.ID, adminID)
	if err != nil {
		return nil, nil, err
	}

	hasPelunasan := false
	if b.Jenis == domain.JenisDP {
		hasPelunasan, err = s.Pembayaran.HasPelunasanWithTx(ctx, tx, p.ID)
		if err != nil {
			return nil, nil, err
		}
	}
	out := decideApproval(b.Jenis, p.HargaDisepakati, b.Jumlah, hasPelunasan)

	if out.CreatePelunasan {
		_, err := s.Pembayaran.CreateWithTx(ctx, tx, repository.CreatePembayaranInput{
			PesananID: p.ID,
			Jumlah:    out.PelunasanJumlah,
			Jenis:     domain.JenisPelunasan,
			Status:    domain.BayarBelum,
			Metode:    b.MetodePembayaran,
		})
		if err != nil {
			if repository.IsDuplicate(err) {
				return nil, nil, fmt.Errorf("pelunasan pesanan #%d: %w", p.ID, ErrConflict)
			}
			return nil, nil, err
		}
	}

	statusChanged := false
	if p.Status != out.NextOrderStatus && domain.CanTransition(p.Status, out.NextOrderStatus) {
		if err := s.Pesanan.UpdateStatusWithTx(ctx, tx, p.ID, out.NextOrderStatus); err != nil {
			return nil, nil, err
		}
		p.Status = out.NextOrderStatus
		statusChanged = true
	}

	events := []notify.Event{{
		Kind:      notify.KindPembayaranDiterima,
		PesananID: p.ID,
		Jenis:     b.Jenis,
		Jumlah:    b.Jumlah,
		Status:    p.Status,
	}}
	if statusChanged {
		events = append(events, notify.Event{
			Kind:      notify.KindStatusPesanan,
			PesananID: p.ID,
			Status:    p.Status,
		})
	}
	return b, events, nil
}

func (s PembayaranService) dispatch(ctx context.Context, p *domain.Pesanan, ev notify.Event) {
	if p.PenggunaID == nil {
		return
	}
	ev.PenggunaID = p.PenggunaID
	if pengguna, err := s.Pengguna.GetByID(ctx, *p.PenggunaID); err == nil {
		ev.Email = pengguna.Email
		ev.Nama = pengguna.Nama
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.Logger.Warn("lookup pengguna for notification failed", "pesanan", p.ID, "err", err)
	}
	s.Notifier.Dispatch(ctx, ev)
}

func (s PembayaranService) log(ctx context.Context, title, message, actor string, typ domain.ActivityLogType) {
	if err := s.Logs.Create(ctx, repository.CreateActivityLogInput{
		Title:   title,
		Message: message,
		Actor:   actor,
		Type:    typ,
	}); err != nil {
		s.Logger.Warn("activity log failed", "title", title, "err", err)
	}
}
