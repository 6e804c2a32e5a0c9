package db

import (
	"time"

	"github.com/ether/builder-revisions/lib/models/db"
)

type Reader interface {
	Scan(dest ...any) error
}

var postColumns = []string{"id", "post_type", "post_status", "post_name", "post_title",
	"post_content", "post_author", "post_parent", "modified"}

func ReadToPostDB(reader Reader) (*db.PostDB, error) {
	var post db.PostDB
	var modified int64

	if err := reader.Scan(&post.ID, &post.Type, &post.Status, &post.Name, &post.Title,
		&post.Content, &post.AuthorID, &post.ParentID, &modified,
	); err != nil {
		return nil, err
	}
	post.Modified = time.UnixMilli(modified).UTC()
	return &post, nil
}

func ReadToUserDB(reader Reader) (*db.UserDB, error) {
	var user db.UserDB

	if err := reader.Scan(&user.ID, &user.Login, &user.DisplayName, &user.Email); err != nil {
		return nil, err
	}
	return &user, nil
}

func modifiedMillis(post db.PostDB) int64 {
	if post.Modified.IsZero() {
		return time.Now().UnixMilli()
	}
	return post.Modified.UnixMilli()
}
