package cli

import (
	"context"
	"os"

	"github.com/drezzle/drezzle-cli/internal/client/i18n"
	"github.com/drezzle/drezzle-cli/internal/client/models"
)

// Badge files an expert-badge request. Creators only, checked locally
// before the request is issued.
func (a *App) Badge(ctx context.Context) error {
	if err := a.session.RequireRole(models.RoleCreator); err != nil {
		a.errorAlert("Only creators can request expert badges")
		return nil
	}

	printlnFn(a.t("profile.expert.badge"))
	reason, err := getSimpleText(a.reader, "Tell us why you deserve an expert badge", os.Stdout)
	if err != nil {
		return err
	}
	if reason == "" {
		return nil
	}

	if err := a.contents.RequestExpertBadge(ctx, reason); err != nil {
		a.errorAlert(err.Error())
		return err
	}
	a.successAlert(a.t("auth.role.expert.note"))
	return nil
}

// Label files a label-status request.
func (a *App) Label(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.errorAlert(a.t("welcome.signin"))
		return nil
	}

	printlnFn(a.t("profile.label.status"))
	labelName, err := getSimpleText(a.reader, "Enter your label name", os.Stdout)
	if err != nil {
		return err
	}
	if labelName == "" {
		return nil
	}
	description, err := getMultiline(a.reader, "Describe your label", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.contents.RequestLabelStatus(ctx, labelName, description); err != nil {
		a.errorAlert(err.Error())
		return err
	}
	a.successAlert(a.t("auth.role.label.note"))
	return nil
}

// languageNameKeys maps locale tags to the catalog keys naming them.
var languageNameKeys = map[string]string{
	"it":    "language.italian",
	"es":    "language.spanish",
	"de":    "language.german",
	"en":    "language.english",
	"en-US": "language.american",
}

// Lang without an argument lists the supported languages; with one it
// switches and persists the selection.
func (a *App) Lang(ctx context.Context, arg string) error {
	if arg == "" {
		printlnFn(a.t("welcome.language") + ": " + a.i18n.Current().String())
		for _, tag := range i18n.Supported() {
			name := tag.String()
			if key, ok := languageNameKeys[name]; ok {
				printlnFn("  " + name + " — " + a.t(key))
			}
		}
		return nil
	}

	if err := a.i18n.SetLanguage(ctx, arg); err != nil {
		a.errorAlert(err.Error())
		return nil
	}
	printlnFn(a.t("welcome.language") + ": " + a.i18n.Current().String())
	return nil
}
