// Package models defines the domain records exchanged with the blog
// platform API and rendered by the presentation layer.
package models

// Blog is a single post. UserID identifies the owner; only the owner may
// edit or delete it (the server is the authority, the client merely guards).
type Blog struct {
	BlogID  int64  `json:"blogId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	UserID  int64  `json:"userId"`
	Date    string `json:"date"`
}

// Comment belongs to a blog. A non-nil ParentCommentID marks it as a reply
// to another comment; replies nest one level only.
type Comment struct {
	CommentID       int64  `json:"commentId"`
	Content         string `json:"content"`
	Author          string `json:"author"`
	UserID          int64  `json:"userId"`
	Date            string `json:"date"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

// NotificationPreferences controls which platform events trigger an email
// to the user.
type NotificationPreferences struct {
	NotifyOnBlog    bool `json:"notifyOnBlog"`
	NotifyOnComment bool `json:"notifyOnComment"`
}
