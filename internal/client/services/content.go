// Package services contains the application services behind the terminal
// screens: feed browsing, likes and saves, comments, uploads, verification
// requests, and the admin dashboard.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/drezzle/drezzle-cli/internal/client/api"
	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/repositories/savedcontents"
	"github.com/drezzle/drezzle-cli/internal/logging"
)

// ContentService drives the feed, reactions, comments and uploads.
type ContentService struct {
	api   api.Client
	cache savedcontents.Repository
	log   logging.Logger
}

func NewContentService(apiClient api.Client, cache savedcontents.Repository, log logging.Logger) *ContentService {
	return &ContentService{api: apiClient, cache: cache, log: log}
}

// Feed returns one page of the content feed, newest first.
func (s *ContentService) Feed(ctx context.Context, skip, limit int) ([]models.Content, error) {
	return s.api.ListContents(ctx, skip, limit)
}

// ToggleLike flips the like state of content and applies the delta the
// backend reports to the local counter. The prior local count is not
// treated as authoritative beyond that delta.
func (s *ContentService) ToggleLike(ctx context.Context, content *models.Content) (bool, error) {
	liked, err := s.api.ToggleLike(ctx, content.ID)
	if err != nil {
		return false, err
	}
	if liked {
		content.LikesCount++
	} else {
		content.LikesCount--
	}
	return liked, nil
}

// ToggleSave flips the saved state of a content record.
func (s *ContentService) ToggleSave(ctx context.Context, contentID string) (bool, error) {
	return s.api.ToggleSave(ctx, contentID)
}

// Saved returns the saved-content list. A successful fetch refreshes the
// local mirror; when the backend is unreachable the mirror is served
// instead, so the screen still renders offline.
func (s *ContentService) Saved(ctx context.Context) ([]models.Content, error) {
	contents, err := s.api.ListSaved(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			cached, cerr := s.cache.List(ctx)
			if cerr == nil {
				s.log.Info(ctx, "serving saved contents from local mirror")
				return cached, nil
			}
			s.log.Warn(ctx, "local mirror unavailable", "error", cerr)
		}
		return nil, err
	}

	if err := s.cache.ReplaceAll(ctx, stripMedia(contents)); err != nil {
		s.log.Warn(ctx, "refreshing local mirror failed", "error", err)
	}
	return contents, nil
}

// ClearMirror wipes the local saved-content mirror. The mirror belongs to
// the signed-in account, so it is cleared on logout.
func (s *ContentService) ClearMirror(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// stripMedia drops the base64 payloads before mirroring; the offline list
// only needs titles and counters, not megabytes of media.
func stripMedia(contents []models.Content) []models.Content {
	out := make([]models.Content, len(contents))
	for i, c := range contents {
		c.AudioData = ""
		c.VideoData = ""
		c.CoverImage = ""
		out[i] = c
	}
	return out
}

// Comments returns one page of comments for a content record.
func (s *ContentService) Comments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error) {
	return s.api.ListComments(ctx, contentID, skip, limit)
}

// PostComment publishes a comment. Empty text is rejected before any
// network call.
func (s *ContentService) PostComment(ctx context.Context, contentID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}
	return s.api.PostComment(ctx, contentID, text)
}

// UploadRequest describes a local publish: media comes from files on disk
// and is base64-encoded into the request body.
type UploadRequest struct {
	Title       string
	Description string
	ContentType models.ContentType
	MediaPath   string
	CoverPath   string
	Duration    float64
}

// Upload validates the request locally, reads and encodes the media, and
// publishes it. Preconditions mirror the backend's: a publishing role,
// a title, and media matching the declared content type.
func (s *ContentService) Upload(ctx context.Context, user *models.User, req UploadRequest) (*models.Content, error) {
	if user == nil || !user.Role.CanPublish() {
		return nil, fmt.Errorf("only creators can upload content")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("unknown content type %q", req.ContentType)
	}
	if req.MediaPath == "" {
		return nil, fmt.Errorf("%s file is required", req.ContentType)
	}

	media, err := encodeFile(req.MediaPath)
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}

	create := api.CreateContentRequest{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Duration:    req.Duration,
	}
	switch req.ContentType {
	case models.ContentAudio:
		create.AudioData = media
	case models.ContentVideo:
		create.VideoData = media
	}

	if req.CoverPath != "" {
		cover, err := encodeFile(req.CoverPath)
		if err != nil {
			return nil, fmt.Errorf("read cover image: %w", err)
		}
		create.CoverImage = cover
	}

	return s.api.CreateContent(ctx, create)
}

func encodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// RequestExpertBadge files a badge request; creators only, enforced by the
// backend and pre-checked by the caller.
func (s *ContentService) RequestExpertBadge(ctx context.Context, reason string) error {
	if reason == "" {
		return fmt.Errorf("reason is required")
	}
	return s.api.CreateBadgeRequest(ctx, reason)
}

// RequestLabelStatus files a label-status request.
func (s *ContentService) RequestLabelStatus(ctx context.Context, labelName, description string) error {
	if labelName == "" {
		return fmt.Errorf("label name is required")
	}
	return s.api.CreateLabelRequest(ctx, labelName, description)
}
