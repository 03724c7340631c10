package cli

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/drezzle/drezzle-cli/internal/client/api"
	"github.com/drezzle/drezzle-cli/internal/client/config"
	"github.com/drezzle/drezzle-cli/internal/client/i18n"
	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/services"
	"github.com/drezzle/drezzle-cli/internal/client/session"
	"github.com/drezzle/drezzle-cli/internal/client/store"
	"github.com/drezzle/drezzle-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// sessionManager is the surface of session.Manager the screens use.
// Tests provide a fake.
type sessionManager interface {
	Current() *models.User
	IsGuest() bool
	Bootstrap(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, username string, role models.Role) error
	Logout(ctx context.Context)
	RequireRole(roles ...models.Role) error
	TokenInfo(ctx context.Context) (*session.TokenInfo, error)
}

type contentService interface {
	Feed(ctx context.Context, skip, limit int) ([]models.Content, error)
	ToggleLike(ctx context.Context, content *models.Content) (bool, error)
	ToggleSave(ctx context.Context, contentID string) (bool, error)
	Saved(ctx context.Context) ([]models.Content, error)
	Comments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error)
	PostComment(ctx context.Context, contentID, text string) (*models.Comment, error)
	Upload(ctx context.Context, user *models.User, req services.UploadRequest) (*models.Content, error)
	RequestExpertBadge(ctx context.Context, reason string) error
	RequestLabelStatus(ctx context.Context, labelName, description string) error
	ClearMirror(ctx context.Context) error
}

type adminService interface {
	Dashboard(ctx context.Context) (*models.AdminStats, *models.PendingVerifications, error)
	Decide(ctx context.Context, kind services.RequestKind, requestID string, decision models.Decision, reason string) (string, error)
}

type translator interface {
	Translate(key string) string
	SetLanguage(ctx context.Context, tag string) error
	Current() language.Tag
}

type pinger interface {
	Ping(ctx context.Context) error
}

// feedPageSize is the page length requested from the feed and comments
// listings. Matches the backend's default limit.
const feedPageSize = 20

type App struct {
	config   *config.Config
	session  sessionManager
	contents contentService
	admin    adminService
	i18n     translator
	pinger   pinger
	log      logging.Logger

	repos  *store.Repositories
	reader *bufio.Reader

	// feed is the last fetched page; like/save/comment commands address
	// items by their position in it.
	feed    []models.Content
	pending *models.PendingVerifications

	// mode is written by the connectivity watcher goroutine and read by
	// the REPL prompt, hence the lock.
	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(slog.LevelInfo)

	repos, err := store.InitDatabase(ctx, filepath.Join(c.DataDir, "drezzle.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, &http.Client{Timeout: c.RequestTimeout})
	if clientID, err := store.EnsureClientID(ctx, repos.Settings); err != nil {
		log.Warn(ctx, "installation id unavailable", "error", err)
	} else {
		apiClient.SetClientID(clientID)
	}

	resolver, err := i18n.NewResolver(repos.Settings, log)
	if err != nil {
		repos.Close()
		return nil, err
	}
	resolver.Init(ctx)

	sess := session.NewManager(apiClient, repos.Settings, log)

	return &App{
		config:   c,
		session:  sess,
		contents: services.NewContentService(apiClient, repos.SavedContents, log),
		admin:    services.NewAdminService(apiClient, log),
		i18n:     resolver,
		pinger:   apiClient,
		log:      log,
		repos:    repos,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) t(key string) string {
	return a.i18n.Translate(key)
}

func (a *App) isLoggedIn() bool {
	return !a.session.IsGuest()
}

func (a *App) isAdmin() bool {
	return a.session.RequireRole(models.RoleAdmin) == nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.Current(); u != nil {
		s = u.Username + " "
	}
	if mode := a.currentMode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartOnlineStatusWatcher probes the backend's health endpoint on a fixed
// interval and flips the prompt's mode indicator.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.pinger.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	printlnFn("Drezzle — " + a.t("welcome.tagline"))
	printlnFn(a.t("welcome.footer"))

	if user, err := a.session.Bootstrap(ctx); err != nil {
		a.errorAlert(err.Error())
		printlnFn(a.t("welcome.guest"))
	} else if user != nil {
		printlnFn(a.t("auth.welcome.back") + ", " + user.Username + "!")
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// errorAlert is the terminal stand-in for the app's blocking error modal.
func (a *App) errorAlert(msg string) {
	printlnFn(a.t("common.error") + ": " + msg)
}

func (a *App) successAlert(msg string) {
	printlnFn(a.t("common.success") + ": " + msg)
}
