package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/notify"
	"arfilla-backend/internal/ports"
	"arfilla-backend/internal/repository"
)

// PesananService owns the order lifecycle: creation, the fixed status
// chain, edits and cancellation. Every successful mutation is logged and,
// when the customer is registered, dispatched as a notification event.
type PesananService struct {
	Pesanan  repository.PesananRepository
	Pengguna repository.PenggunaRepository
	Logs     repository.ActivityLogRepository
	Notifier ports.Notifier
	Logger   *slog.Logger
}

type CreatePesananInput struct {
	PenggunaID  *int64
	NamaPemesan string
	LayananID   *int64
	Phone       string
	Lokasi      *string
	Catatan     *string
}

type UpdatePesananInput struct {
	NamaPemesan     string
	LayananID       *int64
	HargaDisepakati *int64
	Phone           string
	Status          domain.OrderStatus
	Lokasi          *string
	Catatan         *string
}

// AdvanceResult reports the outcome of the quick "advance" action. Advanced
// is false when the order already sits in a terminal state; Notice then
// carries the user-visible explanation.
type AdvanceResult struct {
	Pesanan  *domain.Pesanan
	Advanced bool
	Notice   string
}

func (s PesananService) Get(ctx context.Context, id int64) (*domain.Pesanan, error) {
	return s.Pesanan.Get(ctx, id)
}

func (s PesananService) List(ctx context.Context, limit int) ([]domain.Pesanan, error) {
	return s.Pesanan.List(ctx, limit)
}

func (s PesananService) ListByPengguna(ctx context.Context, penggunaID int64, limit int) ([]domain.Pesanan, error) {
	return s.Pesanan.ListByPengguna(ctx, penggunaID, limit)
}

func (s PesananService) Create(ctx context.Context, in CreatePesananInput, actor string) (*domain.Pesanan, error) {
	if in.NamaPemesan == "" {
		return nil, invalidf("nama pemesan wajib diisi")
	}
	if in.Phone == "" {
		return nil, invalidf("nomor telepon wajib diisi")
	}
	p, err := s.Pesanan.Create(ctx, repository.CreatePesananInput{
		PenggunaID:  in.PenggunaID,
		NamaPemesan: in.NamaPemesan,
		LayananID:   in.LayananID,
		Phone:       in.Phone,
		Lokasi:      in.Lokasi,
		Catatan:     in.Catatan,
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx, "Pesanan dibuat", fmt.Sprintf("Pesanan #%d (%s)", p.ID, p.NamaPemesan), actor, domain.LogInfo)
	s.dispatch(ctx, p, notify.Event{Kind: notify.KindPesananDibuat, PesananID: p.ID})
	return p, nil
}

// Advance moves an order to its fixed successor status. Terminal orders are
// left untouched and reported as a notice, not an error.
func (s PesananService) Advance(ctx context.Context, id int64, actor string) (*AdvanceResult, error) {
	p, err := s.Pesanan.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := domain.NextStatus(p.Status)
	if !ok {
		return &AdvanceResult{
			Pesanan:  p,
			Advanced: false,
			Notice:   fmt.Sprintf("pesanan sudah %s, tidak ada status berikutnya", p.Status.Label()),
		}, nil
	}

	if err := s.Pesanan.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	p.Status = next

	s.log(ctx, "Status pesanan diubah", fmt.Sprintf("Pesanan #%d menjadi %s", id, next.Label()), actor, domain.LogInfo)
	s.dispatch(ctx, p, notify.Event{Kind: notify.KindStatusPesanan, PesananID: id, Status: next})
	return &AdvanceResult{Pesanan: p, Advanced: true}, nil
}

// SetStatus applies a requested status. Adjacency is enforced: only the
// fixed successor, cancellation from a non-terminal state, or the current
// status (no-op) are accepted.
func (s PesananService) SetStatus(ctx context.Context, id int64, target domain.OrderStatus, actor string) (*domain.Pesanan, error) {
	if !domain.ValidStatus(target) {
		return nil, invalidf("status %q tidak dikenal", string(target))
	}
	p, err := s.Pesanan.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == target {
		return p, nil
	}
	if !domain.CanTransition(p.Status, target) {
		return nil, ValidationError{msg: domain.TransitionError(p.Status, target).Error()}
	}

	if err := s.Pesanan.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	p.Status = target

	s.log(ctx, "Status pesanan diubah", fmt.Sprintf("Pesanan #%d menjadi %s", id, target.Label()), actor, domain.LogInfo)
	s.dispatch(ctx, p, notify.Event{Kind: notify.KindStatusPesanan, PesananID: id, Status: target})
	return p, nil
}

func (s PesananService) Update(ctx context.Context, id int64, in UpdatePesananInput, actor string) (*domain.Pesanan, error) {
	if in.NamaPemesan == "" {
		return nil, invalidf("nama pemesan wajib diisi")
	}
	if !domain.ValidStatus(in.Status) {
		return nil, invalidf("status %q tidak dikenal", string(in.Status))
	}
	if in.HargaDisepakati != nil && *in.HargaDisepakati < 0 {
		return nil, invalidf("harga disepakati tidak boleh negatif")
	}

	current, err := s.Pesanan.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	statusChanged := current.Status != in.Status
	if statusChanged && !domain.CanTransition(current.Status, in.Status) {
		return nil, ValidationError{msg: domain.TransitionError(current.Status, in.Status).Error()}
	}

	p, err := s.Pesanan.Update(ctx, id, repository.UpdatePesananInput{
		NamaPemesan:     in.NamaPemesan,
		LayananID:       in.LayananID,
		HargaDisepakati: in.HargaDisepakati,
		Phone:           in.Phone,
		Status:          in.Status,
		Lokasi:          in.Lokasi,
		Catatan:         in.Catatan,
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx, "Pesanan diubah", fmt.Sprintf("Pesanan #%d", id), actor, domain.LogInfo)
	if statusChanged {
		s.dispatch(ctx, p, notify.Event{Kind: notify.KindStatusPesanan, PesananID: id, Status: p.Status})
	}
	return p, nil
}

func (s PesananService) Delete(ctx context.Context, id int64, actor string) error {
	if err := s.Pesanan.Delete(ctx, id); err != nil {
		return err
	}
	s.log(ctx, "Pesanan dihapus", fmt.Sprintf("Pesanan #%d", id), actor, domain.LogWarning)
	return nil
}

// dispatch fills in the recipient for registered customers and hands the
// event to the notifier. Walk-in orders have no reachable address.
func (s PesananService) dispatch(ctx context.Context, p *domain.Pesanan, ev notify.Event) {
	if p.PenggunaID == nil {
		return
	}
	ev.PenggunaID = p.PenggunaID
	pengguna, err := s.Pengguna.GetByID(ctx, *p.PenggunaID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.Logger.Warn("lookup pengguna for notification failed", "pesanan", p.ID, "err", err)
		}
	} else {
		ev.Email = pengguna.Email
		ev.Nama = pengguna.Nama
	}
	s.Notifier.Dispatch(ctx, ev)
}

func (s PesananService) log(ctx context.Context, title, message, actor string, typ domain.ActivityLogType) {
	if err := s.Logs.Create(ctx, repository.CreateActivityLogInput{
		Title:   title,
		Message: message,
		Actor:   actor,
		Type:    typ,
	}); err != nil {
		s.Logger.Warn("activity log failed", "title", title, "err", err)
	}
}
