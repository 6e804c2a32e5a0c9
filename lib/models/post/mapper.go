package post

import "github.com/ether/builder-revisions/lib/models/db"

func FromDB(p db.PostDB) Post {
	return Post{
		ID:       p.ID,
		Type:     p.Type,
		Status:   p.Status,
		Name:     p.Name,
		Title:    p.Title,
		Content:  p.Content,
		AuthorID: p.AuthorID,
		ParentID: p.ParentID,
		Modified: p.Modified,
	}
}

func FromDBList(posts []db.PostDB) []Post {
	mapped := make([]Post, 0, len(posts))
	for _, p := range posts {
		mapped = append(mapped, FromDB(p))
	}
	return mapped
}

func (p Post) ToDB() db.PostDB {
	return db.PostDB{
		ID:       p.ID,
		Type:     p.Type,
		Status:   p.Status,
		Name:     p.Name,
		Title:    p.Title,
		Content:  p.Content,
		AuthorID: p.AuthorID,
		ParentID: p.ParentID,
		Modified: p.Modified,
	}
}
