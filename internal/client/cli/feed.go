package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

// Feed loads and prints the first page of the content feed. The page is
// retained so like/save/comment commands can address items by number.
func (a *App) Feed(ctx context.Context) error {
	printlnFn(a.t("feed.loading"))

	contents, err := a.contents.Feed(ctx, 0, feedPageSize)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	a.feed = contents

	if len(contents) == 0 {
		printlnFn(a.t("feed.empty"))
		return nil
	}

	for i, c := range contents {
		printlnFn(fmt.Sprintf("%2d. [%s] %s — %d %s • %d %s",
			i+1, c.ContentType, c.Title,
			c.LikesCount, a.t("common.likes"),
			c.CommentsCount, a.t("common.comments")))
		if c.Description != "" {
			printlnFn("     " + c.Description)
		}
	}
	return nil
}

// feedItem resolves a 1-based feed position typed by the user.
func (a *App) feedItem(arg string) (*models.Content, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.feed) {
		return nil, fmt.Errorf("no feed item %q, run 'feed' first", arg)
	}
	return &a.feed[n-1], nil
}

// Like toggles the like state of a feed item. Requires a signed-in session
// before any request goes out; the local counter moves by the delta the
// backend reports.
func (a *App) Like(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		a.errorAlert(a.t("welcome.signin"))
		return nil
	}
	content, err := a.feedItem(arg)
	if err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	liked, err := a.contents.ToggleLike(ctx, content)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	if liked {
		printlnFn(fmt.Sprintf("%s — %d %s", a.t("common.like"), content.LikesCount, a.t("common.likes")))
	} else {
		printlnFn(fmt.Sprintf("%d %s", content.LikesCount, a.t("common.likes")))
	}
	return nil
}

// Save toggles the saved state of a feed item.
func (a *App) Save(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		a.errorAlert(a.t("welcome.signin"))
		return nil
	}
	content, err := a.feedItem(arg)
	if err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	saved, err := a.contents.ToggleSave(ctx, content.ID)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	if saved {
		a.successAlert("Content saved!")
	} else {
		a.successAlert("Content unsaved!")
	}
	return nil
}

// Saved lists the user's saved contents, falling back to the local mirror
// when offline.
func (a *App) Saved(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.errorAlert(a.t("welcome.signin"))
		return nil
	}

	contents, err := a.contents.Saved(ctx)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}
	if len(contents) == 0 {
		printlnFn(a.t("feed.empty"))
		return nil
	}
	for i, c := range contents {
		printlnFn(fmt.Sprintf("%2d. [%s] %s — %d %s",
			i+1, c.ContentType, c.Title, c.LikesCount, a.t("common.likes")))
	}
	return nil
}
