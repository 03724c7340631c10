package cli

import (
	"context"
	"fmt"
	"os"
)

// Comments prints the comments of a feed item. Available to guests; the
// backend does not gate reads.
func (a *App) Comments(ctx context.Context, arg string) error {
	content, err := a.feedItem(arg)
	if err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	comments, err := a.contents.Comments(ctx, content.ID, 0, feedPageSize)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s — %s", a.t("comments.title"), content.Title))
	if len(comments) == 0 {
		printlnFn(a.t("comments.empty"))
		printlnFn(a.t("comments.empty.subtitle"))
		return nil
	}
	for _, c := range comments {
		printlnFn(fmt.Sprintf("  %s: %s", c.Username, c.Text))
	}
	return nil
}

// Comment posts a comment on a feed item and bumps the local counter.
func (a *App) Comment(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		a.errorAlert(a.t("welcome.signin"))
		return nil
	}
	content, err := a.feedItem(arg)
	if err != nil {
		a.errorAlert(err.Error())
		return nil
	}

	text, err := getSimpleText(a.reader, a.t("comments.add.placeholder"), os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		a.errorAlert("comment text is required")
		return nil
	}

	comment, err := a.contents.PostComment(ctx, content.ID, text)
	if err != nil {
		a.errorAlert(err.Error())
		return err
	}

	content.CommentsCount++
	printlnFn(fmt.Sprintf("  %s: %s", comment.Username, comment.Text))
	return nil
}
