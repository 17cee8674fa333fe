package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// NotificationAPI covers the caller's notification feed.
type NotificationAPI interface {
	Notifications(ctx context.Context, page PageQuery) (Page[Notification], error)
	MarkNotificationRead(ctx context.Context, id string) (Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
}

func (c *Client) Notifications(ctx context.Context, page PageQuery) (Page[Notification], error) {
	q := url.Values{}
	page.apply(q)
	var out Page[Notification]
	err := c.do(ctx, http.MethodGet, "/notifications", q, nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (Notification, error) {
	var out Notification
	err := c.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil, &out)
	return out, err
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}
