package cli

import (
	"context"
	"fmt"
	"strconv"

	"blogcli/internal/client/models"
	"blogcli/internal/client/services"
	"blogcli/internal/client/state"
)

// promptID prompts for a numeric record id.
func (a *App) promptID(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a numeric id.")
		return 0, err
	}
	return id, nil
}

// findBlog locates a blog by id in the already-loaded lists, falling back to
// a detail fetch.
func (a *App) findBlog(ctx context.Context, id int64) *models.Blog {
	st := a.store
	if st.SelectedBlog != nil && st.SelectedBlog.BlogID == id {
		return st.SelectedBlog
	}
	for i := range st.UserBlogs {
		if st.UserBlogs[i].BlogID == id {
			return &st.UserBlogs[i]
		}
	}
	for i := range st.Blogs {
		if st.Blogs[i].BlogID == id {
			return &st.Blogs[i]
		}
	}

	a.services.Blogs.GetBlogDetails(ctx, id)
	if st.SelectedBlog != nil && st.SelectedBlog.BlogID == id {
		return st.SelectedBlog
	}
	return nil
}

// Blogs fetches the first page of the public feed.
func (a *App) Blogs(ctx context.Context) error {
	st := a.store
	st.Pagination.Offset = 0
	a.services.Blogs.GetBlogs(ctx, services.ListOptions{})
	a.printBlogList(st.Blogs, st.Pagination.HasMore)
	a.render()
	return nil
}

// MoreBlogs appends the next feed page.
func (a *App) MoreBlogs(ctx context.Context) error {
	st := a.store
	before := len(st.Blogs)
	a.services.Blogs.LoadMoreBlogs(ctx)
	a.printBlogList(st.Blogs[before:], st.Pagination.HasMore)
	a.render()
	return nil
}

// MyBlogs lists the caller's own posts.
func (a *App) MyBlogs(ctx context.Context) error {
	st := a.store
	a.services.Blogs.GetUserBlogs(ctx)
	if st.UserBlogs != nil {
		a.printBlogList(st.UserBlogs, false)
	}
	a.render()
	return nil
}

// Show displays one blog with its comments.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptID("Enter blog id")
	if err != nil {
		return err
	}

	st := a.store
	a.services.Blogs.GetBlogDetails(ctx, id)
	if st.SelectedBlog != nil && st.SelectedBlog.BlogID == id {
		a.printBlogDetails(st.SelectedBlog, st.Comments)
	}
	a.render()
	return nil
}

// Create collects a title and body and publishes a new blog. An empty
// body offers the AI helper to draft it.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content:", a.out)
	if err != nil {
		return err
	}

	form := &a.store.NewBlog
	form.Title = title
	form.Content = content

	if content == "" && a.confirm("No content entered. Generate it with AI?") {
		a.store.OpenModal(state.ModalCreateBlog)
		a.services.AI.OpenHelper(services.AIModeGenerate)
		if a.store.IsOpen(state.ModalAIHelper) {
			if err := a.runAIHelper(ctx); err != nil {
				return err
			}
		}
	}

	a.services.Blogs.CreateBlog(ctx)
	a.render()
	return nil
}

// Edit updates one of the caller's own blogs. Empty input keeps a field's
// current value; leaving the body empty also offers the AI helper to
// enhance it.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter blog id to edit")
	if err != nil {
		return err
	}

	st := a.store
	blog := a.findBlog(ctx, id)
	if blog == nil {
		a.render()
		return nil
	}

	a.services.Blogs.PrepareEditBlog(blog)
	if !st.IsOpen(state.ModalEditBlog) {
		a.render()
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter new title (empty keeps %q)", blog.Title), a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter new content (empty keeps the current one):", a.out)
	if err != nil {
		return err
	}

	if title != "" {
		st.EditBlog.Title = title
	}
	if content != "" {
		st.EditBlog.Content = content
	} else if a.confirm("Enhance the current content with AI?") {
		a.services.AI.OpenHelper(services.AIModeEnhance)
		if st.IsOpen(state.ModalAIHelper) {
			if err := a.runAIHelper(ctx); err != nil {
				return err
			}
		}
	}

	a.services.Blogs.UpdateBlog(ctx)
	a.render()
	return nil
}

// Delete removes one of the caller's own blogs after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter blog id to delete")
	if err != nil {
		return err
	}

	blog := a.findBlog(ctx, id)
	if blog == nil {
		a.render()
		return nil
	}

	if !a.confirm(fmt.Sprintf("Delete blog %q?", blog.Title)) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	a.services.Blogs.DeleteBlog(ctx, blog)
	a.render()
	return nil
}
