package db

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ether/builder-revisions/lib/models/db"
)

type memorySession struct {
	data      []byte
	expiresAt int64
}

type MemoryDataStore struct {
	mu         sync.RWMutex
	postStore  map[int64]db.PostDB
	metaStore  map[int64]map[string]string
	userStore  map[int64]db.UserDB
	sessions   map[string]memorySession
	nextPostID int64
	nextUserID int64
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		postStore: make(map[int64]db.PostDB),
		metaStore: make(map[int64]map[string]string),
		userStore: make(map[int64]db.UserDB),
		sessions:  make(map[string]memorySession),
	}
}

// ============== POST METHODS ==============

func (m *MemoryDataStore) GetPost(id int64) (*db.PostDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	retrievedPost, ok := m.postStore[id]
	if !ok {
		return nil, errors.New(PostNotFoundError)
	}
	return &retrievedPost, nil
}

func (m *MemoryDataStore) SavePost(post db.PostDB) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if post.ID == 0 {
		m.nextPostID++
		post.ID = m.nextPostID
	} else if _, ok := m.postStore[post.ID]; !ok {
		return 0, errors.New(PostNotFoundError)
	}
	if post.Modified.IsZero() {
		post.Modified = time.Now().UTC()
	}
	// The SQL stores keep millisecond precision, so does this one.
	post.Modified = time.UnixMilli(post.Modified.UnixMilli()).UTC()

	m.postStore[post.ID] = post
	return post.ID, nil
}

func (m *MemoryDataStore) RemovePost(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.postStore[id]; !ok {
		return errors.New(PostNotFoundError)
	}
	delete(m.postStore, id)
	delete(m.metaStore, id)
	return nil
}

func (m *MemoryDataStore) GetChildPosts(parentID int64, query db.PostQuery) ([]db.PostDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	children := make([]db.PostDB, 0)
	for _, p := range m.postStore {
		if p.ParentID != parentID {
			continue
		}
		if query.PostType != "" && p.Type != query.PostType {
			continue
		}
		if query.MetaKey != "" {
			if _, ok := m.metaStore[p.ID][query.MetaKey]; !ok {
				continue
			}
		}
		children = append(children, p)
	}

	sort.Slice(children, func(i, j int) bool {
		if children[i].Modified.Equal(children[j].Modified) {
			return children[i].ID > children[j].ID
		}
		return children[i].Modified.After(children[j].Modified)
	})

	if query.PostsPerPage > 0 && len(children) > query.PostsPerPage {
		children = children[:query.PostsPerPage]
	}

	if query.IDsOnly {
		for i, p := range children {
			children[i] = db.PostDB{ID: p.ID}
		}
	}

	return children, nil
}

// ============== META METHODS ==============

func (m *MemoryDataStore) GetPostMeta(postID int64, key string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.metaStore[postID][key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (m *MemoryDataStore) GetAllPostMeta(postID int64) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make(map[string]string, len(m.metaStore[postID]))
	for k, v := range m.metaStore[postID] {
		copied[k] = v
	}
	return copied, nil
}

func (m *MemoryDataStore) SetPostMeta(postID int64, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.postStore[postID]; !ok {
		return errors.New(PostNotFoundError)
	}
	if _, ok := m.metaStore[postID]; !ok {
		m.metaStore[postID] = make(map[string]string)
	}
	m.metaStore[postID][key] = value
	return nil
}

func (m *MemoryDataStore) RemovePostMeta(postID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.metaStore[postID], key)
	return nil
}

// ============== USER METHODS ==============

func (m *MemoryDataStore) GetUser(id int64) (*db.UserDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.userStore[id]
	if !ok {
		return nil, errors.New(UserNotFoundError)
	}
	return &user, nil
}

func (m *MemoryDataStore) SaveUser(user db.UserDB) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == 0 {
		m.nextUserID++
		user.ID = m.nextUserID
	} else if user.ID > m.nextUserID {
		m.nextUserID = user.ID
	}
	m.userStore[user.ID] = user
	return user.ID, nil
}

// ============== SESSION METHODS ==============

func (m *MemoryDataStore) GetFiberSession(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.sessions[key]
	if !ok || (stored.expiresAt != 0 && stored.expiresAt <= time.Now().Unix()) {
		return nil, nil
	}
	return stored.data, nil
}

func (m *MemoryDataStore) SetFiberSession(key string, data []byte, expiresAt int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[key] = memorySession{data: data, expiresAt: expiresAt}
	return nil
}

func (m *MemoryDataStore) DeleteFiberSession(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, key)
	return nil
}

func (m *MemoryDataStore) ResetFiberSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make(map[string]memorySession)
	return nil
}

func (m *MemoryDataStore) CleanupExpiredFiberSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	for k, v := range m.sessions {
		if v.expiresAt != 0 && v.expiresAt <= now {
			delete(m.sessions, k)
		}
	}
	return nil
}

// ============== LIFECYCLE ==============

func (m *MemoryDataStore) Ping() error {
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}

var _ DataStore = (*MemoryDataStore)(nil)
