package domain

import "time"

// Content is the promoted post as read from the store.
type Content struct {
	PostID             string
	AuthorID           string
	Likes              int64
	Replies            int64
	Shares             int64
	Body               string
	Images             int
	TargetWealthLevels []WealthTier
	Location           string
	ContentType        string
	CreatedAt          time.Time
}

// Engagement returns the raw interaction count of the post.
func (c Content) Engagement() int64 {
	return c.Likes + c.Replies + c.Shares
}

// AgeAt returns the post age relative to now.
func (c Content) AgeAt(now time.Time) time.Duration {
	return now.Sub(c.CreatedAt)
}
