package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/drezzle/drezzle-cli/internal/client/api"
	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/logging"
)

// AdminService backs the moderation dashboard.
type AdminService struct {
	api api.Client
	log logging.Logger
}

func NewAdminService(apiClient api.Client, log logging.Logger) *AdminService {
	return &AdminService{api: apiClient, log: log}
}

// Dashboard fetches the stats summary and the pending-verification lists in
// parallel. Both must succeed before anything renders; the first failure
// wins and cancels the other request.
func (s *AdminService) Dashboard(ctx context.Context) (*models.AdminStats, *models.PendingVerifications, error) {
	var (
		stats   *models.AdminStats
		pending *models.PendingVerifications
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.api.AdminStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.api.PendingVerifications(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return stats, pending, nil
}

// RequestKind selects which verification queue a decision applies to.
type RequestKind string

const (
	KindExpert RequestKind = "expert"
	KindLabel  RequestKind = "label"
)

// Decide approves or rejects a pending verification request. The reason is
// only transmitted on rejections.
func (s *AdminService) Decide(ctx context.Context, kind RequestKind, requestID string, decision models.Decision, reason string) (string, error) {
	if kind == KindLabel {
		return s.api.VerifyLabel(ctx, requestID, decision, reason)
	}
	return s.api.VerifyExpert(ctx, requestID, decision, reason)
}
