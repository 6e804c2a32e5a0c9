package db

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	db2 "github.com/ether/builder-revisions/lib/models/db"
)

func CreateRandomPost(postType string) db2.PostDB {
	return db2.PostDB{
		Type:     postType,
		Status:   "draft",
		Name:     gofakeit.Word(),
		Title:    gofakeit.Word() + " " + gofakeit.Word(),
		Content:  gofakeit.UUID(),
		AuthorID: 1,
		Modified: time.Now().UTC(),
	}
}

func CreateRandomRevision(parentID int64, modified time.Time) db2.PostDB {
	revision := CreateRandomPost("revision")
	revision.Status = "inherit"
	revision.ParentID = parentID
	revision.Modified = modified
	return revision
}
