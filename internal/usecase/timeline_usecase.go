package usecase

import (
	"context"
	"strings"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"
)

// TimelineQuery narrows and orders the merged history. Zero values mean
// "everything, oldest first".
type TimelineQuery struct {
	Category string
	Search   string
	Sort     entities.SortOrder
}

// ITimelineUseCase reconstructs one consistent history per request from
// heterogeneous event sources. It is a read-only projection: building or
// exporting a timeline never mutates state.

type ITimelineUseCase interface {
	Build(ctx context.Context, requestID string, query TimelineQuery) (entities.Timeline, error)
	Export(ctx context.Context, requestID string, query TimelineQuery) (entities.TimelineExport, error)
}

type TimelineUseCase struct {
	repo      interfaces.IServiceRequestRepository
	auditRepo interfaces.IAuditLogRepository
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(repo interfaces.IServiceRequestRepository, auditRepo interfaces.IAuditLogRepository) *TimelineUseCase {
	return &TimelineUseCase{repo: repo, auditRepo: auditRepo}
}

func (u *TimelineUseCase) Build(ctx context.Context, requestID string, query TimelineQuery) (entities.Timeline, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Timeline{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Timeline{}, err
	}
	if r.ID == "" {
		return entities.Timeline{}, ErrRequestNotFound
	}

	auditLog, err := u.auditRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		return entities.Timeline{}, err
	}

	t := entities.BuildTimeline(r, auditLog)
	t = t.Filter(query.Category)
	t = t.Search(query.Search)
	order := query.Sort
	if order == "" {
		order = entities.SortOldest
	}
	return t.Sort(order), nil
}

func (u *TimelineUseCase) Export(ctx context.Context, requestID string, query TimelineQuery) (entities.TimelineExport, error) {
	t, err := u.Build(ctx, requestID, query)
	if err != nil {
		return entities.TimelineExport{}, err
	}

	// Build already established the request exists.
	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.TimelineExport{}, err
	}
	return t.Export(r, time.Now().UTC()), nil
}
