package audit

import (
	"context"
	"sort"
	"time"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Recorder はエンティティ変更の記録先です。各サービスが変更の確定直後に
// 同期呼び出しで利用します（イベントバスは使いません）。
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// SecurityRecorder はセキュリティイベントの記録先です。
type SecurityRecorder interface {
	RecordSecurityEvent(ctx context.Context, ev SecurityEvent) error
}

// NopRecorder は何も記録しない Recorder です。テストで利用します。
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) error { return nil }

const (
	defaultHistoryWindow = 100
	maxHistoryWindow     = 100
)

// Service は履歴の記録と閲覧ユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase は履歴閲覧ユースケースの公開インターフェースです。
type UseCase interface {
	ListHistory(ctx context.Context, ident identity.Identity, in ListHistoryInput) ([]Event, error)
	ListSecurityLogs(ctx context.Context, ident identity.Identity, in ListSecurityLogsInput) ([]SecurityEvent, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// Record はエンティティ変更 1 件を記録します。
func (s *Service) Record(ctx context.Context, ev Event) error {
	if !isValidKind(ev.Kind) {
		return ErrInvalidKind
	}
	if ev.EntityID == "" || !isValidChange(ev.Change) {
		return ErrInvalidEvent
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = s.clock.Now()
	}
	return s.repo.Insert(ctx, ev)
}

// RecordSecurityEvent はセキュリティイベント 1 件を記録します。
func (s *Service) RecordSecurityEvent(ctx context.Context, ev SecurityEvent) error {
	if ev.Event == "" {
		return ErrInvalidEvent
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = s.clock.Now()
	}
	return s.repo.InsertSecurityEvent(ctx, ev)
}

// ListHistoryInput は履歴フィード取得時の入力です。
type ListHistoryInput struct {
	Limit int
}

// ListHistory は全エンティティの変更履歴を新しい順に統合して返します。
// HRAdmin のみが履歴フィードを閲覧でき、SystemAdmin には空のフィードを返します
// （SystemAdmin の関心はセキュリティログ側にあります）。
func (s *Service) ListHistory(ctx context.Context, ident identity.Identity, in ListHistoryInput) ([]Event, error) {
	limit := normalizeWindow(in.Limit)

	switch ident.Tier {
	case identity.TierHRAdmin:
	case identity.TierSystemAdmin:
		return []Event{}, nil
	default:
		return nil, ErrAccessDenied
	}

	merged := make([]Event, 0, limit)
	for _, kind := range Kinds {
		events, err := s.repo.ListRecentByKind(ctx, kind, limit)
		if err != nil {
			return nil, err
		}
		merged = append(merged, events...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt.After(merged[j].OccurredAt)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// ListSecurityLogsInput はセキュリティログ取得時の入力です。
type ListSecurityLogsInput struct {
	Limit int
}

// ListSecurityLogs はセキュリティログを新しい順に返します。SystemAdmin 専用です。
func (s *Service) ListSecurityLogs(ctx context.Context, ident identity.Identity, in ListSecurityLogsInput) ([]SecurityEvent, error) {
	if ident.Tier != identity.TierSystemAdmin {
		return nil, ErrAccessDenied
	}
	return s.repo.ListSecurityEvents(ctx, normalizeWindow(in.Limit))
}

func normalizeWindow(limit int) int {
	if limit <= 0 || limit > maxHistoryWindow {
		return defaultHistoryWindow
	}
	return limit
}

func isValidKind(kind Kind) bool {
	switch kind {
	case KindPerson, KindContract, KindTask:
		return true
	default:
		return false
	}
}

func isValidChange(change ChangeType) bool {
	switch change {
	case ChangeCreated, ChangeChanged, ChangeDeleted:
		return true
	default:
		return false
	}
}
