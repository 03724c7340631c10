package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/drezzle/drezzle-cli/internal/client/models"
	"github.com/drezzle/drezzle-cli/internal/client/services"
)

// Upload walks through the publish form. The role gate runs before any
// input is collected or any request is issued.
func (a *App) Upload(ctx context.Context) error {
	user := a.session.Current()
	if err := a.session.RequireRole(models.RoleCreator, models.RoleExpert, models.RoleLabel); err != nil {
		a.errorAlert("Only creators can upload content")
		return nil
	}

	printlnFn(a.t("upload.title"))
	printlnFn(a.t("upload.guidelines"))
	printlnFn("  - " + a.t("upload.guideline.size.audio"))
	printlnFn("  - " + a.t("upload.guideline.size.video"))
	printlnFn("  - " + a.t("upload.guideline.original"))
	printlnFn("  - " + a.t("upload.guideline.respectful"))

	typeInput, err := getSimpleText(a.reader, a.t("upload.content.type")+" (audio/video)", os.Stdout)
	if err != nil {
		return err
	}
	contentType := models.ContentType(strings.ToLower(typeInput))
	if typeInput == "" {
		contentType = models.ContentAudio
	}
	if !contentType.Valid() {
		a.errorAlert("unknown content type: " + typeInput)
		return nil
	}

	title, err := getSimpleText(a.reader, a.t("upload.title.label"), os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, a.t("upload.description.label"), os.Stdout)
	if err != nil {
		return err
	}

	mediaPrompt := a.t("upload.select.audio") + " (" + a.t("upload.audio.formats") + ")"
	if contentType == models.ContentVideo {
		mediaPrompt = a.t("upload.select.video") + " (" + a.t("upload.video.formats") + ")"
	}
	mediaPath, err := getSimpleText(a.reader, mediaPrompt, os.Stdout)
	if err != nil {
		return err
	}

	coverPath, err := getSimpleText(a.reader, a.t("upload.cover.add"), os.Stdout)
	if err != nil {
		return err
	}

	durationInput, err := getSimpleText(a.reader, "Duration (seconds)", os.Stdout)
	if err != nil {
		return err
	}
	duration, _ := strconv.ParseFloat(durationInput, 64)

	printlnFn(a.t("upload.uploading"))

	content, err := a.contents.Upload(ctx, user, services.UploadRequest{
		Title:       title,
		Description: description,
		ContentType: contentType,
		MediaPath:   mediaPath,
		CoverPath:   coverPath,
		Duration:    duration,
	})
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	a.successAlert(a.t("upload.post") + ": " + content.Title)
	if uri := content.PreviewURI(); uri != "" {
		printlnFn(a.t("upload."+string(content.ContentType)+".selected") + ": " + uri)
	}
	if uri := content.CoverURI(); uri != "" {
		printlnFn(a.t("upload.cover.selected") + ": " + uri)
	}
	return nil
}
