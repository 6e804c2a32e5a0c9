package author

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/ether/builder-revisions/lib/db"
)

const gravatarBase = "https://secure.gravatar.com/avatar/"

type Manager struct {
	Db db.UserMethods
}

func NewManager(db db.UserMethods) *Manager {
	return &Manager{
		Db: db,
	}
}

type Author struct {
	Id          int64
	Login       string
	DisplayName string
	Email       string
}

func (m *Manager) CreateAuthor(login string, displayName string, email string) (*Author, error) {
	author := Author{
		Login:       login,
		DisplayName: displayName,
		Email:       email,
	}
	id, err := m.Db.SaveUser(MapToDB(author))
	if err != nil {
		return nil, err
	}

	author.Id = id
	return &author, nil
}

func (m *Manager) GetAuthor(authorId int64) (*Author, error) {
	user, err := m.Db.GetUser(authorId)
	if err != nil {
		return nil, err
	}

	author := MapFromDB(*user)
	return &author, nil
}

// GetAuthorName returns the display name of the author. Unknown authors have
// an empty name.
func (m *Manager) GetAuthorName(authorId int64) (string, error) {
	author, err := m.lookup(authorId)
	if err != nil || author == nil {
		return "", err
	}
	return author.DisplayName, nil
}

// GetAvatar returns the gravatar <img> markup for the author at size pixels.
// Unknown authors get the anonymous "mystery person" image.
func (m *Manager) GetAvatar(authorId int64, size int) (string, error) {
	author, err := m.lookup(authorId)
	if err != nil {
		return "", err
	}

	email := ""
	if author != nil {
		email = author.Email
	}
	return AvatarMarkup(email, size), nil
}

func (m *Manager) lookup(authorId int64) (*Author, error) {
	author, err := m.GetAuthor(authorId)
	if err != nil {
		if err.Error() == db.UserNotFoundError {
			return nil, nil
		}
		return nil, errors.Join(fmt.Errorf("error retrieving author %d", authorId), err)
	}
	return author, nil
}

func GravatarURL(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s%s?s=%d&d=mm&r=g", gravatarBase, hex.EncodeToString(sum[:]), size)
}

func AvatarMarkup(email string, size int) string {
	return fmt.Sprintf(
		"<img alt='' src='%s' srcset='%s 2x' class='avatar avatar-%d photo' height='%d' width='%d' />",
		html.EscapeString(GravatarURL(email, size)),
		html.EscapeString(GravatarURL(email, size*2)),
		size, size, size,
	)
}
