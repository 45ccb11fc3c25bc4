package cli

import (
	"context"
)

// selectBlogForComment makes sure a blog is selected, prompting for an id
// when none is.
func (a *App) selectBlogForComment(ctx context.Context) bool {
	if a.store.SelectedBlog != nil {
		return true
	}
	id, err := a.promptID("Enter blog id to comment on")
	if err != nil {
		return false
	}
	a.services.Blogs.GetBlogDetails(ctx, id)
	return a.store.SelectedBlog != nil && a.store.SelectedBlog.BlogID == id
}

// Comment adds a top-level comment to the selected blog.
func (a *App) Comment(ctx context.Context) error {
	if !a.selectBlogForComment(ctx) {
		a.render()
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter comment:", a.out)
	if err != nil {
		return err
	}

	form := &a.store.NewComment
	form.ParentCommentID = nil
	form.Content = content

	a.services.Comments.CreateComment(ctx)
	a.render()
	return nil
}

// Reply adds a reply to an existing comment on the selected blog.
func (a *App) Reply(ctx context.Context) error {
	if !a.selectBlogForComment(ctx) {
		a.render()
		return nil
	}

	id, err := a.promptID("Enter comment id to reply to")
	if err != nil {
		return err
	}

	a.services.Comments.ReplyToComment(ctx, id)
	if !a.store.CommentFormOpen {
		a.render()
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter reply:", a.out)
	if err != nil {
		return err
	}
	a.store.NewComment.Content = content

	a.services.Comments.CreateComment(ctx)
	a.render()
	return nil
}

// DeleteComment removes one of the caller's comments after confirmation.
func (a *App) DeleteComment(ctx context.Context) error {
	id, err := a.promptID("Enter comment id to delete")
	if err != nil {
		return err
	}

	a.services.Comments.DeleteComment(ctx, id)
	a.render()
	return nil
}
