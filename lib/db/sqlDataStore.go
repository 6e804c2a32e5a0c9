package db

import (
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ether/builder-revisions/lib/models/db"
)

// sqlDataStore holds the queries shared by the SQLite and Postgres stores.
// Both dialects understand ON CONFLICT and RETURNING, only the placeholder
// format differs.
type sqlDataStore struct {
	sqlDB   *sql.DB
	builder sq.StatementBuilderType
}

// ============== POST METHODS ==============

func (d sqlDataStore) GetPost(id int64) (*db.PostDB, error) {
	resultedSQL, args, err := d.builder.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	post, err := ReadToPostDB(d.sqlDB.QueryRow(resultedSQL, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(PostNotFoundError)
		}
		return nil, err
	}
	return post, nil
}

func (d sqlDataStore) SavePost(post db.PostDB) (int64, error) {
	if post.ID != 0 {
		return d.updatePost(post)
	}

	resultedSQL, args, err := d.builder.
		Insert("posts").
		Columns("post_type", "post_status", "post_name", "post_title", "post_content",
			"post_author", "post_parent", "modified").
		Values(post.Type, post.Status, post.Name, post.Title, post.Content,
			post.AuthorID, post.ParentID, modifiedMillis(post)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := d.sqlDB.QueryRow(resultedSQL, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (d sqlDataStore) updatePost(post db.PostDB) (int64, error) {
	resultedSQL, args, err := d.builder.
		Update("posts").
		Set("post_type", post.Type).
		Set("post_status", post.Status).
		Set("post_name", post.Name).
		Set("post_title", post.Title).
		Set("post_content", post.Content).
		Set("post_author", post.AuthorID).
		Set("post_parent", post.ParentID).
		Set("modified", modifiedMillis(post)).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, errors.New(PostNotFoundError)
	}
	return post.ID, nil
}

func (d sqlDataStore) RemovePost(id int64) error {
	resultedSQL, args, err := d.builder.
		Delete("postmeta").
		Where(sq.Eq{"post_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.sqlDB.Exec(resultedSQL, args...); err != nil {
		return err
	}

	resultedSQL, args, err = d.builder.
		Delete("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(PostNotFoundError)
	}
	return nil
}

func (d sqlDataStore) GetChildPosts(parentID int64, query db.PostQuery) ([]db.PostDB, error) {
	columns := postColumns
	if query.IDsOnly {
		columns = []string{"id"}
	}

	builder := d.builder.
		Select(columns...).
		From("posts").
		Where(sq.Eq{"post_parent": parentID}).
		OrderBy("modified DESC", "id DESC")

	if query.PostType != "" {
		builder = builder.Where(sq.Eq{"post_type": query.PostType})
	}
	if query.MetaKey != "" {
		builder = builder.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM postmeta WHERE postmeta.post_id = posts.id AND postmeta.meta_key = ?)",
			query.MetaKey,
		))
	}
	if query.PostsPerPage > 0 {
		builder = builder.Limit(uint64(query.PostsPerPage))
	}

	resultedSQL, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := make([]db.PostDB, 0)
	for rows.Next() {
		if query.IDsOnly {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return nil, err
			}
			children = append(children, db.PostDB{ID: id})
			continue
		}

		post, err := ReadToPostDB(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, *post)
	}
	return children, rows.Err()
}

// ============== META METHODS ==============

func (d sqlDataStore) GetPostMeta(postID int64, key string) (*string, error) {
	resultedSQL, args, err := d.builder.
		Select("meta_value").
		From("postmeta").
		Where(sq.Eq{"post_id": postID, "meta_key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value sql.NullString
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value.String, nil
}

func (d sqlDataStore) GetAllPostMeta(postID int64) (map[string]string, error) {
	resultedSQL, args, err := d.builder.
		Select("meta_key", "meta_value").
		From("postmeta").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		meta[key] = value.String
	}
	return meta, rows.Err()
}

func (d sqlDataStore) SetPostMeta(postID int64, key string, value string) error {
	resultedSQL, args, err := d.builder.
		Insert("postmeta").
		Columns("post_id", "meta_key", "meta_value").
		Values(postID, key, value).
		Suffix("ON CONFLICT(post_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value").
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlDataStore) RemovePostMeta(postID int64, key string) error {
	resultedSQL, args, err := d.builder.
		Delete("postmeta").
		Where(sq.Eq{"post_id": postID, "meta_key": key}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

// ============== USER METHODS ==============

func (d sqlDataStore) GetUser(id int64) (*db.UserDB, error) {
	resultedSQL, args, err := d.builder.
		Select("id", "login", "display_name", "email").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := ReadToUserDB(d.sqlDB.QueryRow(resultedSQL, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(UserNotFoundError)
	}
	return user, err
}

func (d sqlDataStore) SaveUser(user db.UserDB) (int64, error) {
	if user.ID != 0 {
		resultedSQL, args, err := d.builder.
			Insert("users").
			Columns("id", "login", "display_name", "email").
			Values(user.ID, user.Login, user.DisplayName, user.Email).
			Suffix(`ON CONFLICT(id) DO UPDATE SET
				login = excluded.login,
				display_name = excluded.display_name,
				email = excluded.email`).
			ToSql()
		if err != nil {
			return 0, err
		}
		_, err = d.sqlDB.Exec(resultedSQL, args...)
		return user.ID, err
	}

	resultedSQL, args, err := d.builder.
		Insert("users").
		Columns("login", "display_name", "email").
		Values(user.Login, user.DisplayName, user.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&id)
	return id, err
}

// ============== SESSION METHODS ==============

func (d sqlDataStore) GetFiberSession(key string) ([]byte, error) {
	resultedSQL, args, err := d.builder.
		Select("session_data").
		From("fiber_sessions").
		Where(sq.Eq{"session_key": key}).
		Where(sq.Or{sq.Eq{"expires_at": 0}, sq.Gt{"expires_at": time.Now().Unix()}}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return data, err
}

func (d sqlDataStore) SetFiberSession(key string, data []byte, expiresAt int64) error {
	resultedSQL, args, err := d.builder.
		Insert("fiber_sessions").
		Columns("session_key", "session_data", "expires_at").
		Values(key, data, expiresAt).
		Suffix(`ON CONFLICT(session_key) DO UPDATE SET
			session_data = excluded.session_data,
			expires_at = excluded.expires_at`).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlDataStore) DeleteFiberSession(key string) error {
	resultedSQL, args, err := d.builder.
		Delete("fiber_sessions").
		Where(sq.Eq{"session_key": key}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlDataStore) ResetFiberSessions() error {
	_, err := d.sqlDB.Exec("DELETE FROM fiber_sessions")
	return err
}

func (d sqlDataStore) CleanupExpiredFiberSessions() error {
	resultedSQL, args, err := d.builder.
		Delete("fiber_sessions").
		Where(sq.NotEq{"expires_at": 0}).
		Where(sq.LtOrEq{"expires_at": time.Now().Unix()}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

// ============== LIFECYCLE ==============

func (d sqlDataStore) Ping() error {
	return d.sqlDB.Ping()
}

func (d sqlDataStore) Close() error {
	return d.sqlDB.Close()
}
