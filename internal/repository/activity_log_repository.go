package repository

import (
	"context"
	"time"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
)

type ActivityLogRepository struct {
	DB *db.Postgres
}

type CreateActivityLogInput struct {
	Title   string
	Message string
	Actor   string
	Type    domain.ActivityLogType
}

func (r ActivityLogRepository) Create(ctx context.Context, in CreateActivityLogInput) error {
	typ := in.Type
	if typ == "" {
		typ = domain.LogInfo
	}
	_, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO activity_logs (title, message, actor, type, logged_at)
		VALUES ($1,$2,$3,$4, now())
	`, in.Title, in.Message, in.Actor, string(typ))
	return err
}

func (r ActivityLogRepository) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, title, message, actor, type, logged_at
		FROM activity_logs
		ORDER BY logged_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		var typ string
		if err := rows.Scan(&l.ID, &l.Title, &l.Message, &l.Actor, &typ, &l.LoggedAt); err != nil {
			return nil, err
		}
		l.Type = domain.ActivityLogType(typ)
		items = append(items, l)
	}
	return items, rows.Err()
}

// ListSince supports filtering the audit trail to a recent window.
func (r ActivityLogRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]domain.ActivityLog, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, title, message, actor, type, logged_at
		FROM activity_logs
		WHERE logged_at >= $1
		ORDER BY logged_at DESC, id DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		var typ string
		if err := rows.Scan(&l.ID, &l.Title, &l.Message, &l.Actor, &typ, &l.LoggedAt); err != nil {
			return nil, err
		}
		l.Type = domain.ActivityLogType(typ)
		items = append(items, l)
	}
	return items, rows.Err()
}
