package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/team-tracker/internal/core/audit"
	pgdb "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
)

// AuditRepository は PostgreSQL を利用した履歴・セキュリティログの実装です。
type AuditRepository struct {
	pool pgdb.Queryer
}

// NewAuditRepository は AuditRepository を生成します。
func NewAuditRepository(pool pgdb.Queryer) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Insert は変更履歴を 1 件追加します。スナップショットは jsonb で保存します。
func (r *AuditRepository) Insert(ctx context.Context, ev audit.Event) error {
	snapshot, err := json.Marshal(ev.Snapshot)
	if err != nil {
		return fmt.Errorf("audit: marshal snapshot: %w", err)
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO history_events (kind, entity_id, change, actor_user_id, occurred_at, snapshot)
        VALUES ($1, $2, $3, $4, $5, $6)
    `,
		string(ev.Kind),
		ev.EntityID,
		string(ev.Change),
		ev.ActorUserID,
		ev.OccurredAt,
		snapshot,
	); err != nil {
		return fmt.Errorf("audit: insert history event: %w", err)
	}
	return nil
}

// ListRecentByKind は種別ごとの履歴を新しい順に取得します。
func (r *AuditRepository) ListRecentByKind(ctx context.Context, kind audit.Kind, limit int) ([]audit.Event, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, kind, entity_id, change, actor_user_id, occurred_at, snapshot
          FROM history_events
         WHERE kind = $1
         ORDER BY occurred_at DESC, id DESC
         LIMIT $2
    `, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("audit: list history events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		ev, err := scanHistoryEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: list history events: %w", err)
	}

	return events, nil
}

// InsertSecurityEvent はセキュリティログを 1 件追加します。
func (r *AuditRepository) InsertSecurityEvent(ctx context.Context, ev audit.SecurityEvent) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO security_logs (event, actor_user_id, target, occurred_at)
        VALUES ($1, $2, $3, $4)
    `,
		ev.Event,
		ev.ActorUserID,
		ev.Target,
		ev.OccurredAt,
	); err != nil {
		return fmt.Errorf("audit: insert security log: %w", err)
	}
	return nil
}

// ListSecurityEvents はセキュリティログを新しい順に取得します。
func (r *AuditRepository) ListSecurityEvents(ctx context.Context, limit int) ([]audit.SecurityEvent, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, event, actor_user_id, target, occurred_at
          FROM security_logs
         ORDER BY occurred_at DESC, id DESC
         LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: list security logs: %w", err)
	}
	defer rows.Close()

	var events []audit.SecurityEvent
	for rows.Next() {
		var ev audit.SecurityEvent
		if err := rows.Scan(&ev.ID, &ev.Event, &ev.ActorUserID, &ev.Target, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("audit: scan security log: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: list security logs: %w", err)
	}

	return events, nil
}

func scanHistoryEvent(row pgx.Row) (audit.Event, error) {
	var (
		ev       audit.Event
		kind     string
		change   string
		snapshot []byte
	)

	if err := row.Scan(&ev.ID, &kind, &ev.EntityID, &change, &ev.ActorUserID, &ev.OccurredAt, &snapshot); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return audit.Event{}, audit.ErrInvalidEvent
		}
		return audit.Event{}, fmt.Errorf("audit: scan history event: %w", err)
	}

	ev.Kind = audit.Kind(kind)
	ev.Change = audit.ChangeType(change)
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &ev.Snapshot); err != nil {
			return audit.Event{}, fmt.Errorf("audit: unmarshal snapshot: %w", err)
		}
	}
	return ev, nil
}
