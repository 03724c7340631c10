package models

import "time"

// ContentType discriminates the media payload of a content record.
type ContentType string

const (
	ContentAudio ContentType = "audio"
	ContentVideo ContentType = "video"
)

func (t ContentType) Valid() bool {
	return t == ContentAudio || t == ContentVideo
}

// Content is one feed item. Media travels base64-encoded inside the JSON
// body; PreviewURI and CoverURI turn it into data: URIs for players that
// accept them.
type Content struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	ContentType   ContentType `json:"content_type"`
	AudioData     string      `json:"audio_data,omitempty"`
	VideoData     string      `json:"video_data,omitempty"`
	CoverImage    string      `json:"cover_image,omitempty"`
	Duration      float64     `json:"duration,omitempty"`
	LikesCount    int         `json:"likes_count"`
	CommentsCount int         `json:"comments_count"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PreviewURI returns a data: URI for the media payload, or "" when the
// record carries no media of its declared type.
func (c *Content) PreviewURI() string {
	switch c.ContentType {
	case ContentAudio:
		if c.AudioData != "" {
			return "data:audio/mp3;base64," + c.AudioData
		}
	case ContentVideo:
		if c.VideoData != "" {
			return "data:video/mp4;base64," + c.VideoData
		}
	}
	return ""
}

// CoverURI returns a data: URI for the cover image, or "" when absent.
func (c *Content) CoverURI() string {
	if c.CoverImage == "" {
		return ""
	}
	return "data:image/jpeg;base64," + c.CoverImage
}

// Comment is one comment on a content record. Username is denormalized by
// the backend so listings render without extra lookups.
type Comment struct {
	ID        string    `json:"id"`
	ContentID string    `json:"content_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
