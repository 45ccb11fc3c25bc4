package services

import (
	"context"

	"blogcli/internal/client/api"
	"blogcli/internal/client/models"
	"blogcli/internal/client/state"
)

// BlogService covers the public feed, the caller's own posts, and blog CRUD.
type BlogService struct {
	s *Services
}

// ListOptions selects and positions a public-list fetch. Zero Limit/Offset
// fall back to the pagination cursor.
type ListOptions struct {
	NewerThan string
	Author    string
	Limit     int
	Offset    int
	Append    bool
}

// GetBlogs fetches a page of the public feed, replacing or appending the
// list. HasMore is inferred: the page was full, so there is probably more.
func (b *BlogService) GetBlogs(ctx context.Context, opts ListOptions) {
	st := b.s.store
	st.Loading.Blogs = true
	defer func() { st.Loading.Blogs = false }()

	q := api.BlogQuery{
		NewerThan: opts.NewerThan,
		Author:    opts.Author,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}
	if q.Limit == 0 {
		q.Limit = st.Pagination.Limit
	}
	if q.Offset == 0 {
		q.Offset = st.Pagination.Offset
	}

	blogs, err := b.s.client.ListBlogs(ctx, q)
	if err != nil {
		b.s.logger.Debug(ctx, "failed to fetch blogs", "error", err)
		st.Notifier.Show(state.NotifyError, "Failed to load blogs")
		return
	}

	if opts.Append {
		st.Blogs = append(st.Blogs, blogs...)
	} else {
		st.Blogs = blogs
	}
	st.Pagination.HasMore = len(blogs) >= st.Pagination.Limit
}

// LoadMoreBlogs advances the cursor one page and appends it to the feed.
func (b *BlogService) LoadMoreBlogs(ctx context.Context) {
	st := b.s.store
	st.Pagination.Offset += st.Pagination.Limit
	b.GetBlogs(ctx, ListOptions{Offset: st.Pagination.Offset, Append: true})
}

// GetUserBlogs loads the caller's own posts and opens the user-blogs view.
func (b *BlogService) GetUserBlogs(ctx context.Context) {
	st := b.s.store
	if !st.Session.Authenticated {
		st.Notifier.Show(state.NotifyError, "Please login first")
		return
	}

	st.Loading.Blogs = true
	defer func() { st.Loading.Blogs = false }()

	blogs, err := b.s.client.ListUserBlogs(ctx, st.Session.UserID)
	if err != nil {
		b.s.logger.Debug(ctx, "failed to fetch user blogs", "error", err)
		st.Notifier.Show(state.NotifyError, "Failed to load your blogs")
		return
	}

	st.UserBlogs = blogs
	st.OpenModal(state.ModalUserBlogs)
}

// refreshUserBlogs silently re-fetches the user's posts after a write, when
// the list has been loaded before.
func (b *BlogService) refreshUserBlogs(ctx context.Context) {
	st := b.s.store
	blogs, err := b.s.client.ListUserBlogs(ctx, st.Session.UserID)
	if err != nil {
		b.s.logger.Debug(ctx, "failed to refresh user blogs", "error", err)
		return
	}
	st.UserBlogs = blogs
}

// GetBlogDetails loads one post with its comments and opens the detail view.
func (b *BlogService) GetBlogDetails(ctx context.Context, blogID int64) {
	st := b.s.store
	st.Loading.Blog = true
	defer func() { st.Loading.Blog = false }()

	blog, err := b.s.client.GetBlog(ctx, blogID)
	if err != nil {
		b.s.logger.Debug(ctx, "failed to fetch blog", "blogId", blogID, "error", err)
		st.Notifier.Show(state.NotifyError, "Failed to load blog details")
		return
	}

	st.SelectedBlog = blog
	b.s.Comments.GetComments(ctx, blogID)
	st.OpenModal(state.ModalBlogDetail)
}

// CreateBlog publishes the pending draft. When the feed was paginated past
// the first page, the whole previously loaded depth is reconstructed page
// by page so the new post and everything the user had scrolled through stay
// visible.
func (b *BlogService) CreateBlog(ctx context.Context) {
	st := b.s.store

	if !b.s.ensureVerified(ctx, "Please verify your email or phone before creating a blog", "") {
		return
	}

	if st.NewBlog.Title == "" || st.NewBlog.Content == "" {
		st.Notifier.Show(state.NotifyError, "Title and content are required")
		return
	}

	st.Loading.Blog = true
	defer func() { st.Loading.Blog = false }()

	if _, err := b.s.client.CreateBlog(ctx, st.NewBlog.Title, st.NewBlog.Content); err != nil {
		st.Notifier.Show(state.NotifyError, api.Message(err, "Failed to create blog"))
		return
	}

	st.Notifier.Show(state.NotifySuccess, "Blog created successfully")
	st.CloseModals()
	st.NewBlog.Reset()

	if st.Pagination.Offset > 0 {
		st.Pagination.Offset = 0

		firstPage, err := b.s.client.ListBlogs(ctx, api.BlogQuery{Limit: st.Pagination.Limit})
		if err != nil {
			b.s.logger.Debug(ctx, "failed to reload first page", "error", err)
			return
		}
		st.Blogs = firstPage
		b.loadRemainingPages(ctx, st.Pagination.Limit)
	} else {
		b.GetBlogs(ctx, ListOptions{})
	}
}

// loadRemainingPages re-fetches full pages after the first until a short
// page arrives, restoring the previously loaded feed depth after a write.
func (b *BlogService) loadRemainingPages(ctx context.Context, pageSize int) {
	st := b.s.store
	for offset := pageSize; ; offset += pageSize {
		page, err := b.s.client.ListBlogs(ctx, api.BlogQuery{Limit: pageSize, Offset: offset})
		if err != nil {
			b.s.logger.Debug(ctx, "failed to load additional pages", "offset", offset, "error", err)
			return
		}
		if len(page) == 0 {
			return
		}
		st.Blogs = append(st.Blogs, page...)
		st.Pagination.HasMore = len(page) >= pageSize
		if len(page) < pageSize {
			return
		}
	}
}

// PrepareEditBlog stages blog in the edit form after ownership and
// verification checks. The blog also becomes the selected one so the
// eventual update targets it.
func (b *BlogService) PrepareEditBlog(blog *models.Blog) {
	st := b.s.store

	if !st.Session.Authenticated || blog.UserID != st.Session.UserID {
		st.Notifier.Show(state.NotifyError, "You don't have permission to edit this blog")
		return
	}
	if !st.Session.IsVerified() {
		st.Notifier.Show(state.NotifyWarning, "Please verify your email or phone before editing a blog")
		return
	}

	st.SelectedBlog = blog
	st.EditBlog = state.BlogForm{Title: blog.Title, Content: blog.Content}
	st.OpenModal(state.ModalEditBlog)
}

// UpdateBlog saves the pending edit of the selected blog.
func (b *BlogService) UpdateBlog(ctx context.Context) {
	st := b.s.store

	if !b.s.ensureVerified(ctx, "Please verify your email or phone before updating a blog", "") {
		return
	}

	if st.SelectedBlog == nil {
		st.Notifier.Show(state.NotifyError, "No blog selected")
		return
	}
	if st.EditBlog.Title == "" || st.EditBlog.Content == "" {
		st.Notifier.Show(state.NotifyError, "Title and content are required")
		return
	}

	st.Loading.Blog = true
	defer func() { st.Loading.Blog = false }()

	blog, err := b.s.client.UpdateBlog(ctx, st.SelectedBlog.BlogID, st.EditBlog.Title, st.EditBlog.Content)
	if err != nil {
		st.Notifier.Show(state.NotifyError, api.Message(err, "Failed to update blog"))
		return
	}

	st.SelectedBlog = blog
	st.Notifier.Show(state.NotifySuccess, "Blog updated successfully")
	st.CloseModals()

	b.GetBlogs(ctx, ListOptions{})
	if st.UserBlogs != nil {
		b.refreshUserBlogs(ctx)
	}
}

// DeleteBlog removes blog (or the selected one when nil) after the gate and
// an ownership check, then refreshes the feed and the loaded user list.
func (b *BlogService) DeleteBlog(ctx context.Context, blog *models.Blog) {
	st := b.s.store

	if !b.s.ensureVerified(ctx, "Please verify your email or phone before deleting a blog", "") {
		return
	}

	if blog == nil {
		blog = st.SelectedBlog
	}
	if blog == nil {
		st.Notifier.Show(state.NotifyError, "No blog selected")
		return
	}
	if blog.UserID != st.Session.UserID {
		st.Notifier.Show(state.NotifyError, "You don't have permission to delete this blog")
		return
	}

	st.Loading.Blog = true
	defer func() { st.Loading.Blog = false }()

	if err := b.s.client.DeleteBlog(ctx, blog.BlogID); err != nil {
		st.Notifier.Show(state.NotifyError, api.Message(err, "Failed to delete blog"))
		return
	}

	st.Notifier.Show(state.NotifySuccess, "Blog deleted successfully")
	st.CloseModals()

	b.GetBlogs(ctx, ListOptions{})
	if st.UserBlogs != nil {
		b.refreshUserBlogs(ctx)
	}
}
