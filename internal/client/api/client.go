package api

import (
	"context"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

// CreateContentRequest is the JSON payload for publishing new content.
// Media fields carry base64-encoded bytes.
type CreateContentRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	ContentType models.ContentType `json:"content_type"`
	AudioData   string             `json:"audio_data,omitempty"`
	VideoData   string             `json:"video_data,omitempty"`
	CoverImage  string             `json:"cover_image,omitempty"`
	Duration    float64            `json:"duration,omitempty"`
}

// Client is the backend REST surface the rest of the application consumes.
// Every call is a single best-effort attempt; retry is the caller's choice.
type Client interface {
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, username string, role models.Role) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	ListContents(ctx context.Context, skip, limit int) ([]models.Content, error)
	CreateContent(ctx context.Context, req CreateContentRequest) (*models.Content, error)
	ToggleLike(ctx context.Context, contentID string) (bool, error)
	ToggleSave(ctx context.Context, contentID string) (bool, error)
	ListSaved(ctx context.Context) ([]models.Content, error)
	ListComments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error)
	PostComment(ctx context.Context, contentID, text string) (*models.Comment, error)

	AdminStats(ctx context.Context) (*models.AdminStats, error)
	PendingVerifications(ctx context.Context) (*models.PendingVerifications, error)
	VerifyExpert(ctx context.Context, requestID string, decision models.Decision, reason string) (string, error)
	VerifyLabel(ctx context.Context, requestID string, decision models.Decision, reason string) (string, error)

	CreateBadgeRequest(ctx context.Context, reason string) error
	CreateLabelRequest(ctx context.Context, labelName, description string) error

	Ping(ctx context.Context) error
}
