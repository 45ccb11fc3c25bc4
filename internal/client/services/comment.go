package services

import (
	"context"
	"strings"

	"blogcli/internal/client/api"
	"blogcli/internal/client/state"
)

// CommentService covers the flat comment list of the selected blog and
// comment/reply writes.
type CommentService struct {
	s *Services
}

// GetComments loads the comments of a blog. Replies arrive in the same flat
// list, marked by ParentCommentID.
func (c *CommentService) GetComments(ctx context.Context, blogID int64) {
	st := c.s.store
	st.Loading.Comments = true
	defer func() { st.Loading.Comments = false }()

	comments, err := c.s.client.ListComments(ctx, blogID)
	if err != nil {
		c.s.logger.Debug(ctx, "failed to fetch comments", "blogId", blogID, "error", err)
		st.Notifier.Show(state.NotifyError, "Failed to load comments")
		return
	}
	st.Comments = comments
}

// CreateComment posts the pending comment form. A set ParentCommentID
// routes to the reply endpoint, otherwise the blog's top-level endpoint.
func (c *CommentService) CreateComment(ctx context.Context) {
	st := c.s.store

	if !c.s.ensureVerified(ctx, "", "Please add and verify your email to comment on blogs") {
		return
	}

	if st.SelectedBlog == nil {
		st.Notifier.Show(state.NotifyError, "No blog selected")
		return
	}
	if st.NewComment.Content == "" {
		st.Notifier.Show(state.NotifyError, "Comment content is required")
		return
	}

	st.Loading.Comments = true
	defer func() { st.Loading.Comments = false }()

	content := strings.TrimSpace(st.NewComment.Content)

	var err error
	if st.NewComment.ParentCommentID != nil {
		err = c.s.client.CreateReply(ctx, *st.NewComment.ParentCommentID, content)
	} else {
		err = c.s.client.CreateComment(ctx, st.SelectedBlog.BlogID, content)
	}
	if err != nil {
		st.Notifier.Show(state.NotifyError, api.Message(err, "Failed to add comment"))
		return
	}

	st.Notifier.Show(state.NotifySuccess, "Comment added successfully")
	st.CommentFormOpen = false
	st.NewComment.Reset()

	c.GetComments(ctx, st.SelectedBlog.BlogID)
}

// ReplyToComment opens the comment form targeting commentID as parent.
func (c *CommentService) ReplyToComment(ctx context.Context, commentID int64) {
	st := c.s.store

	if !c.s.ensureVerified(ctx, "", "Please add and verify your email to reply to comments") {
		return
	}

	st.NewComment.ParentCommentID = &commentID
	st.CommentFormOpen = true
}

// DeleteComment removes a comment after the gate and a blocking
// confirmation, then reloads the selected blog's comments.
func (c *CommentService) DeleteComment(ctx context.Context, commentID int64) {
	st := c.s.store

	if !c.s.ensureVerified(ctx, "Please verify your email or phone before deleting comments", "") {
		return
	}

	if !c.s.confirm("Delete this comment?") {
		return
	}

	st.Loading.Comments = true
	defer func() { st.Loading.Comments = false }()

	if err := c.s.client.DeleteComment(ctx, commentID); err != nil {
		st.Notifier.Show(state.NotifyError, api.Message(err, "Failed to delete comment"))
		return
	}

	st.Notifier.Show(state.NotifySuccess, "Comment deleted successfully")

	if st.SelectedBlog != nil {
		c.GetComments(ctx, st.SelectedBlog.BlogID)
	}
}
