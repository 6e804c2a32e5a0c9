package db

import "time"

type PostDB struct {
	ID       int64
	Type     string
	Status   string
	Name     string
	Title    string
	Content  string
	AuthorID int64
	ParentID int64
	Modified time.Time
}

// PostQuery narrows GetChildPosts. PostsPerPage <= 0 returns every match.
type PostQuery struct {
	PostType     string
	PostsPerPage int
	MetaKey      string
	IDsOnly      bool
}
