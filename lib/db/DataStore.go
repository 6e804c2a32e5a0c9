package db

import "github.com/ether/builder-revisions/lib/models/db"

type PostMethods interface {
	GetPost(id int64) (*db.PostDB, error)
	// SavePost inserts the post when ID is zero and updates it otherwise. It
	// returns the id of the stored row.
	SavePost(post db.PostDB) (int64, error)
	// RemovePost deletes the post together with its meta.
	RemovePost(id int64) error
	// GetChildPosts returns the children of parentID newest first.
	GetChildPosts(parentID int64, query db.PostQuery) ([]db.PostDB, error)
}

type MetaMethods interface {
	// GetPostMeta returns nil without error when the key is not set.
	GetPostMeta(postID int64, key string) (*string, error)
	GetAllPostMeta(postID int64) (map[string]string, error)
	SetPostMeta(postID int64, key string, value string) error
	RemovePostMeta(postID int64, key string) error
}

type UserMethods interface {
	GetUser(id int64) (*db.UserDB, error)
	SaveUser(user db.UserDB) (int64, error)
}

// SessionMethods back the fiber session storage. An expiresAt of zero never
// expires.
type SessionMethods interface {
	GetFiberSession(key string) ([]byte, error)
	SetFiberSession(key string, data []byte, expiresAt int64) error
	DeleteFiberSession(key string) error
	ResetFiberSessions() error
	CleanupExpiredFiberSessions() error
}

type DataStore interface {
	PostMethods
	MetaMethods
	UserMethods
	SessionMethods
	Ping() error
	Close() error
}
