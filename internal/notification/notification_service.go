package notification

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
)

type Service interface {
	Feed(ctx context.Context, query ListQuery) (FeedResponse, response.PaginationMeta, error)
	MarkRead(ctx context.Context, id string) (upstream.Notification, error)
	MarkAllRead(ctx context.Context) error
}

type service struct {
	api    upstream.NotificationAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.NotificationAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

// Feed is cached per caller: the upstream scopes the listing to the
// bearer token, so the cache key has to as well.
func (s *service) Feed(ctx context.Context, query ListQuery) (FeedResponse, response.PaginationMeta, error) {
	key := cache.Key("notifications",
		"employee="+contextutil.GetEmployeeID(ctx),
		"page="+strconv.Itoa(query.Page),
		"size="+strconv.Itoa(query.Size),
		"sort="+query.Sort,
	)
	page, err := cache.Through(s.cache, ctx, key, []string{cache.TagNotifications},
		func(ctx context.Context) (upstream.Page[upstream.Notification], error) {
			return s.api.Notifications(ctx, upstream.PageQuery{
				Page: query.Page,
				Size: query.Size,
				Sort: query.Sort,
			})
		},
	)
	if err != nil {
		return FeedResponse{}, response.PaginationMeta{}, err
	}

	unread := 0
	for _, n := range page.Content {
		if !n.Read {
			unread++
		}
	}

	meta := response.NewPaginationMeta(page.TotalElements, page.Page, page.Size)
	return FeedResponse{Notifications: page.Content, UnreadCount: unread}, meta, nil
}

func (s *service) MarkRead(ctx context.Context, id string) (upstream.Notification, error) {
	updated, err := s.api.MarkNotificationRead(ctx, id)
	if err != nil {
		return upstream.Notification{}, err
	}

	s.cache.Invalidate(ctx, cache.TagNotifications)
	return updated, nil
}

func (s *service) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.TagNotifications)
	s.logger.Info("all notifications marked read",
		zap.String("employee_id", contextutil.GetEmployeeID(ctx)),
	)
	return nil
}
