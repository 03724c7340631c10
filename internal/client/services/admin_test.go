package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

func TestDashboard_ReturnsBothHalves(t *testing.T) {
	client := &fakeClient{
		stats: &models.AdminStats{
			TotalUsers:    10,
			TotalContents: 4,
			UsersByRole:   map[string]int{"listener": 7, "creator": 3},
		},
		pending: &models.PendingVerifications{
			ExpertRequests: []models.PendingRequest{{ID: "r1", Username: "alice"}},
		},
	}
	s := NewAdminService(client, nopLogger())

	stats, pending, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalUsers)
	require.Len(t, pending.ExpertRequests, 1)
	assert.Equal(t, "alice", pending.ExpertRequests[0].Username)
}

func TestDashboard_FailsWhenEitherHalfFails(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"stats fail", &fakeClient{
			statsErr: errors.New("boom"),
			pending:  &models.PendingVerifications{},
		}},
		{"pending fail", &fakeClient{
			stats:      &models.AdminStats{},
			pendingErr: errors.New("boom"),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewAdminService(tc.client, nopLogger())
			stats, pending, err := s.Dashboard(context.Background())
			require.Error(t, err)
			assert.Nil(t, stats)
			assert.Nil(t, pending)
		})
	}
}

func TestDecide_RoutesByKind(t *testing.T) {
	client := &fakeClient{verifyMsg: "ok"}
	s := NewAdminService(client, nopLogger())
	ctx := context.Background()

	msg, err := s.Decide(ctx, KindExpert, "r1", models.DecisionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)

	_, err = s.Decide(ctx, KindLabel, "r2", models.DecisionReject, "missing documents")
	require.NoError(t, err)

	require.Len(t, client.verifyCalls, 2)
	assert.Equal(t, "expert/r1/approve/", client.verifyCalls[0])
	assert.Equal(t, "label/r2/reject/missing documents", client.verifyCalls[1])
}
