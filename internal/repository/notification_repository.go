package repository

import (
	"context"
	"time"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationRepository struct {
	DB *db.Postgres
}

type CreateNotificationInput struct {
	PenggunaID *int64
	Title      string
	Message    string
	Type       domain.NotificationType
	Created    time.Time
}

func (r NotificationRepository) Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error) {
	var n domain.Notification
	var penggunaID pgtype.Int8
	createdAt := in.Created
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO notifications (pengguna_id, title, message, type, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, pengguna_id, title, message, type, created_at, read_at
	`, in.PenggunaID, in.Title, in.Message, string(in.Type), createdAt).Scan(
		&n.ID, &penggunaID, &n.Title, &n.Message, (*string)(&n.Type), &n.CreatedAt, &n.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	if penggunaID.Valid {
		n.PenggunaID = &penggunaID.Int64
	}
	return &n, nil
}

func (r NotificationRepository) List(ctx context.Context, penggunaID int64, limit int) ([]domain.Notification, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, pengguna_id, title, message, type, created_at, read_at
		FROM notifications
		WHERE deleted_at IS NULL AND pengguna_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, penggunaID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var uid pgtype.Int8
		if err := rows.Scan(&n.ID, &uid, &n.Title, &n.Message, (*string)(&n.Type), &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		if uid.Valid {
			n.PenggunaID = &uid.Int64
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r NotificationRepository) MarkRead(ctx context.Context, penggunaID, id int64) error {
	_, err := r.DB.Pool.Exec(ctx, `
		UPDATE notifications SET read_at = now()
		WHERE id = $1 AND pengguna_id = $2 AND read_at IS NULL
	`, id, penggunaID)
	return err
}
