package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/services"
	"github.com/drezzle/drezzle-cli/internal/client/session"
	"github.com/drezzle/drezzle-cli/internal/logging"
)

// capturePrintln swaps printlnFn for a recorder and restores it on cleanup.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) {
		lines = append(lines, fmt.Sprintln(args...))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func joined(lines *[]string) string {
	out := ""
	for _, l := range *lines {
		out += l
	}
	return out
}

// fakeSession implements sessionManager with scripted results.
type fakeSession struct {
	user *models.User

	bootstrapErr error
	loginErr     error
	registerErr  error

	loginCalls    int
	registerCalls int
	logoutCalls   int

	regEmail    string
	regUsername string
	regRole     models.Role
}

func (f *fakeSession) Current() *models.User { return f.user }
func (f *fakeSession) IsGuest() bool         { return f.user == nil }

func (f *fakeSession) Bootstrap(context.Context) (*models.User, error) {
	return f.user, f.bootstrapErr
}

func (f *fakeSession) Login(_ context.Context, email, _ string) error {
	f.loginCalls++
	if f.loginErr != nil {
		return f.loginErr
	}
	if f.user == nil {
		f.user = &models.User{Email: email, Username: "stub", Role: models.RoleListener}
	}
	return nil
}

func (f *fakeSession) Register(_ context.Context, email, _, username string, role models.Role) error {
	f.registerCalls++
	f.regEmail, f.regUsername, f.regRole = email, username, role
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{Email: email, Username: username, Role: role}
	return nil
}

func (f *fakeSession) Logout(context.Context) {
	f.logoutCalls++
	f.user = nil
}

func (f *fakeSession) RequireRole(roles ...models.Role) error {
	if f.user == nil {
		return session.ErrAccessDenied
	}
	for _, r := range roles {
		if f.user.Role == r {
			return nil
		}
	}
	return session.ErrAccessDenied
}

func (f *fakeSession) TokenInfo(context.Context) (*session.TokenInfo, error) {
	return &session.TokenInfo{Subject: "u1"}, nil
}

// fakeContents implements contentService and records what was called.
type fakeContents struct {
	feed    []models.Content
	feedErr error

	liked    bool
	saved    bool
	savedLst []models.Content

	comments []models.Comment
	comment  *models.Comment

	uploaded  *models.Content
	uploadReq services.UploadRequest

	labelDesc string

	calls []string
}

func (f *fakeContents) Feed(context.Context, int, int) ([]models.Content, error) {
	f.calls = append(f.calls, "feed")
	return f.feed, f.feedErr
}

func (f *fakeContents) ToggleLike(_ context.Context, c *models.Content) (bool, error) {
	f.calls = append(f.calls, "like:"+c.ID)
	if f.liked {
		c.LikesCount++
	} else {
		c.LikesCount--
	}
	return f.liked, nil
}

func (f *fakeContents) ToggleSave(_ context.Context, id string) (bool, error) {
	f.calls = append(f.calls, "save:"+id)
	return f.saved, nil
}

func (f *fakeContents) Saved(context.Context) ([]models.Content, error) {
	f.calls = append(f.calls, "saved")
	return f.savedLst, nil
}

func (f *fakeContents) Comments(_ context.Context, id string, _, _ int) ([]models.Comment, error) {
	f.calls = append(f.calls, "comments:"+id)
	return f.comments, nil
}

func (f *fakeContents) PostComment(_ context.Context, id, text string) (*models.Comment, error) {
	f.calls = append(f.calls, "comment:"+id)
	if f.comment != nil {
		return f.comment, nil
	}
	return &models.Comment{ContentID: id, Username: "me", Text: text}, nil
}

func (f *fakeContents) Upload(_ context.Context, _ *models.User, req services.UploadRequest) (*models.Content, error) {
	f.calls = append(f.calls, "upload")
	f.uploadReq = req
	if f.uploaded != nil {
		return f.uploaded, nil
	}
	return &models.Content{ID: "new", Title: req.Title}, nil
}

func (f *fakeContents) RequestExpertBadge(_ context.Context, reason string) error {
	f.calls = append(f.calls, "badge:"+reason)
	return nil
}

func (f *fakeContents) RequestLabelStatus(_ context.Context, labelName, description string) error {
	f.calls = append(f.calls, "label:"+labelName)
	f.labelDesc = description
	return nil
}

func (f *fakeContents) ClearMirror(context.Context) error {
	f.calls = append(f.calls, "clearmirror")
	return nil
}

// fakeAdmin implements adminService and records calls.
type fakeAdmin struct {
	stats   *models.AdminStats
	pending *models.PendingVerifications
	dashErr error

	decideMsg string
	decideErr error

	calls []string
}

func (f *fakeAdmin) Dashboard(context.Context) (*models.AdminStats, *models.PendingVerifications, error) {
	f.calls = append(f.calls, "dashboard")
	if f.dashErr != nil {
		return nil, nil, f.dashErr
	}
	return f.stats, f.pending, nil
}

func (f *fakeAdmin) Decide(_ context.Context, kind services.RequestKind, requestID string, decision models.Decision, reason string) (string, error) {
	f.calls = append(f.calls, fmt.Sprintf("decide:%s:%s:%s:%s", kind, requestID, decision, reason))
	return f.decideMsg, f.decideErr
}

// keyTranslator echoes keys back, so assertions can match on catalog keys.
type keyTranslator struct {
	current language.Tag
	setTags []string
	setErr  error
}

func (k *keyTranslator) Translate(key string) string { return key }

func (k *keyTranslator) SetLanguage(_ context.Context, tag string) error {
	if k.setErr != nil {
		return k.setErr
	}
	k.setTags = append(k.setTags, tag)
	k.current = language.MustParse(tag)
	return nil
}

func (k *keyTranslator) Current() language.Tag {
	if k.current == (language.Tag{}) {
		return language.MustParse("it")
	}
	return k.current
}

func nopTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(sess *fakeSession, contents *fakeContents, admin *fakeAdmin) *App {
	return &App{
		session:  sess,
		contents: contents,
		admin:    admin,
		i18n:     &keyTranslator{},
		log:      nopTestLogger(),
	}
}

func TestGetStatus(t *testing.T) {
	a := &App{session: &fakeSession{}, log: nopTestLogger()}
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(online)", a.getStatus())

	a.session = &fakeSession{user: &models.User{Username: "alice"}}
	assert.Equal(t, "(alice online)", a.getStatus())
}

func TestSetMode_LogsOnlyOnChange(t *testing.T) {
	a := &App{session: &fakeSession{}, log: nopTestLogger()}

	a.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, a.currentMode())
	a.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, a.currentMode())
	a.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, a.currentMode())
}

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

func TestStartOnlineStatusWatcher_FlipsMode(t *testing.T) {
	a := &App{session: &fakeSession{}, log: nopTestLogger(), pinger: &fakePinger{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, ModeOnline, a.currentMode())
}

// The prompt reads the mode while the watcher rewrites it; both sides go
// through the lock, so concurrent use is safe.
func TestStatus_SafeWhileWatcherRuns(t *testing.T) {
	a := &App{session: &fakeSession{}, log: nopTestLogger(), pinger: &fakePinger{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	for i := 0; i < 100; i++ {
		_ = a.getStatus()
	}
	cancel()
	<-done
}
