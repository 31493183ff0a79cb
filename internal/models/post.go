package models

type Post struct {
	ID       int64
	AuthorID int64
	Title    string
	Content  string
}

type Comment struct {
	ID       int64
	PostID   int64
	AuthorID int64
	Content  string
}

// PostWithAuthor is a post listing row joined with its author's name.
type PostWithAuthor struct {
	Post
	AuthorName string
}

// CommentWithAuthor is a comment listing row joined with its author's name.
type CommentWithAuthor struct {
	ID         int64
	AuthorName string
	Content    string
}

// PostView is a post together with all its comments, oldest first.
type PostView struct {
	PostWithAuthor
	Comments []CommentWithAuthor
}
