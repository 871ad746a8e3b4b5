package notify

import (
	"context"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"log/slog"
)

// Dispatcher delivers lifecycle events as in-app notifications and emails.
// Delivery is fire-and-forget: failures are logged, never returned, so a
// notification problem cannot be mistaken for a mutation failure.
type Dispatcher struct {
	Mailer        *Mailer
	Notifications repository.NotificationRepository
	Log           *slog.Logger
}

func (d Dispatcher) Dispatch(ctx context.Context, ev Event) {
	subject, body, detail := composeMessage(ev)
	message := body
	if detail != "" {
		message += " " + detail
	}

	if ev.PenggunaID != nil {
		typ := domain.NotificationInfo
		if ev.Kind == KindPembayaranDitolak {
			typ = domain.NotificationWarning
		}
		if _, err := d.Notifications.Create(ctx, repository.CreateNotificationInput{
			PenggunaID: ev.PenggunaID,
			Title:      subject,
			Message:    message,
			Type:       typ,
		}); err != nil {
			d.Log.Warn("notification record failed", "kind", ev.Kind, "pesanan", ev.PesananID, "err", err)
		}
	}

	if ev.Email == "" {
		return
	}
	if d.Mailer == nil {
		d.Log.Info("mail disabled, skipping email", "kind", ev.Kind, "pesanan", ev.PesananID)
		return
	}
	if err := d.Mailer.Send(ctx, ev); err != nil {
		d.Log.Warn("email dispatch failed", "kind", ev.Kind, "pesanan", ev.PesananID, "err", err)
	}
}
