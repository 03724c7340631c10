package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/services"
)

// Admin renders the moderation dashboard. The role gate runs first: a
// non-admin session is turned away before any admin endpoint is called.
func (a *App) Admin(ctx context.Context) error {
	if err := a.session.RequireRole(models.RoleAdmin); err != nil {
		a.errorAlert("Access Denied: Admin access required")
		return nil
	}

	stats, pending, err := a.admin.Dashboard(ctx)
	if err != nil {
		a.errorAlert("Failed to load dashboard data: " + err.Error())
		return err
	}
	a.pending = pending

	printlnFn("Dashboard")
	printlnFn(fmt.Sprintf("  Users: %d  Contents: %d  Recent registrations: %d",
		stats.TotalUsers, stats.TotalContents, stats.RecentRegistrations))
	printlnFn(fmt.Sprintf("  Pending: %d expert, %d label",
		stats.PendingExpertRequests, stats.PendingLabelRequests))

	roles := make([]string, 0, len(stats.UsersByRole))
	for role := range stats.UsersByRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		printlnFn(fmt.Sprintf("    %s: %d", role, stats.UsersByRole[role]))
	}

	printRequests := func(kind string, requests []models.PendingRequest) {
		if len(requests) == 0 {
			return
		}
		printlnFn(fmt.Sprintf("  %s requests (%d):", kind, len(requests)))
		for i, r := range requests {
			printlnFn(fmt.Sprintf("   %2d. %s <%s>", i+1, r.Username, r.Email))
			if r.VerificationDescription != "" {
				printlnFn("       " + r.VerificationDescription)
			}
		}
	}
	printRequests("Expert", pending.ExpertRequests)
	printRequests("Label", pending.LabelRequests)

	if len(pending.ExpertRequests) == 0 && len(pending.LabelRequests) == 0 {
		printlnFn("  No pending verifications")
	}
	return nil
}

// Verify decides a pending request: verify <expert|label> <n> <approve|reject>.
// Positions refer to the lists printed by the last 'admin' command. A reason
// is collected for rejections only.
func (a *App) Verify(ctx context.Context, args []string) error {
	if err := a.session.RequireRole(models.RoleAdmin); err != nil {
		a.errorAlert("Access Denied: Admin access required")
		return nil
	}
	if a.pending == nil {
		a.errorAlert("run 'admin' first")
		return nil
	}
	if len(args) != 3 {
		printlnFn("Usage: verify <expert|label> <n> <approve|reject>")
		return nil
	}

	var (
		kind     services.RequestKind
		requests []models.PendingRequest
	)
	switch args[0] {
	case "expert":
		kind, requests = services.KindExpert, a.pending.ExpertRequests
	case "label":
		kind, requests = services.KindLabel, a.pending.LabelRequests
	default:
		printlnFn("Usage: verify <expert|label> <n> <approve|reject>")
		return nil
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(requests) {
		a.errorAlert("no pending " + string(kind) + " request " + args[1])
		return nil
	}
	request := requests[n-1]

	var decision models.Decision
	switch args[2] {
	case "approve":
		decision = models.DecisionApprove
	case "reject":
		decision = models.DecisionReject
	default:
		printlnFn("Usage: verify <expert|label> <n> <approve|reject>")
		return nil
	}

	reason := ""
	if decision == models.DecisionReject {
		reason, err = getSimpleText(a.reader, "Rejection reason", os.Stdout)
		if err != nil {
			return err
		}
	}

	message, err := a.admin.Decide(ctx, kind, request.ID, decision, reason)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	a.successAlert(message)
	a.pending = nil // stale after a decision, reload via 'admin'
	return nil
}
