package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts for credentials and authenticates. A backend rejection or a
// transport failure is presented as an alert and leaves the previous session
// untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, a.t("auth.email"), os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(a.t("auth.password"), os.Stdout)
	if err != nil {
		return err
	}

	if email == "" || len(password) == 0 {
		a.errorAlert("Please fill in all required fields")
		return nil
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	a.successAlert(a.t("auth.welcome.back"))
	return nil
}

// Register walks through the signup form: email, username, role, password.
// The success alert carries the role-specific follow-up note where one applies.
func (a *App) Register(ctx context.Context) error {
	printlnFn(a.t("auth.join"))
	printlnFn(a.t("auth.signup.subtitle"))

	email, err := getSimpleText(a.reader, a.t("auth.email"), os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, a.t("auth.username"), os.Stdout)
	if err != nil {
		return err
	}

	printlnFn(a.t("auth.role.choose"))
	for _, r := range models.RegistrableRoles {
		printlnFn(fmt.Sprintf("  %-8s — %s", r, a.t("auth.role."+string(r)+".description")))
	}
	roleInput, err := getSimpleText(a.reader, "Role", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(strings.ToLower(roleInput))
	if roleInput == "" {
		role = models.RoleListener
	}

	password, err := getPassword(a.t("auth.password"), os.Stdout)
	if err != nil {
		return err
	}

	if email == "" || len(password) == 0 {
		a.errorAlert("Please fill in all required fields")
		return nil
	}
	if username == "" {
		a.errorAlert("Username is required for registration")
		return nil
	}

	if err := a.session.Register(ctx, email, string(password), username, role); err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	a.successAlert(a.registerSuccessMessage(role))
	return nil
}

// registerSuccessMessage appends the role-specific follow-up note: experts
// are told about the document upload, labels about the pending admin
// approval. Listener and creator accounts are active immediately.
func (a *App) registerSuccessMessage(role models.Role) string {
	msg := "Account created successfully!"
	switch role {
	case models.RoleExpert:
		msg += "\n" + a.t("auth.role.expert.note")
	case models.RoleLabel:
		msg += "\n" + a.t("auth.role.label.note")
	}
	return msg
}

// Logout resets to guest. Local only, cannot fail from the user's point of view.
// The saved-content mirror is per-account, so it is wiped alongside the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	if err := a.contents.ClearMirror(ctx); err != nil {
		a.log.Warn(ctx, "clearing saved-content mirror failed", "error", err)
	}
	a.feed = nil
	a.pending = nil
	printlnFn(a.t("profile.logout"))
	return nil
}

// WhoAmI prints the resolved profile together with what the token itself
// discloses.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		printlnFn(a.t("welcome.guest"))
		return nil
	}

	printlnFn(a.t("profile.title"))
	printlnFn(fmt.Sprintf("  %s: %s", a.t("auth.username"), user.Username))
	printlnFn(fmt.Sprintf("  %s: %s", a.t("auth.email"), user.Email))
	printlnFn(fmt.Sprintf("  Role: %s (%s)", a.t("role."+string(user.Role)), user.Role))
	if user.BadgeStatus != "" {
		printlnFn("  Badge Status: " + user.BadgeStatus)
	}

	if info, err := a.session.TokenInfo(ctx); err == nil && !info.ExpiresAt.IsZero() {
		printlnFn("  Token expires: " + info.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
