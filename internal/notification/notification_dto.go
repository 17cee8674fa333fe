package notification

import "leavedesk/internal/upstream"

type ListQuery struct {
	Page int    `form:"page"`
	Size int    `form:"size"`
	Sort string `form:"sort"`
}

// FeedResponse is the notification list plus the unread count the navbar
// badge renders.
type FeedResponse struct {
	Notifications []upstream.Notification `json:"notifications"`
	UnreadCount   int                     `json:"unreadCount"`
}
