package security

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/gorilla/securecookie"
)

var ErrInvalidNonce = errors.New("invalid nonce")

type noncePayload struct {
	UserID int64  `json:"uid"`
	Action string `json:"action"`
	Expiry int64  `json:"exp"`
}

// NonceManager issues signed tokens bound to a user and an action.
type NonceManager struct {
	codec    *securecookie.SecureCookie
	lifetime time.Duration
	Now      func() time.Time
}

// NewNonceManager derives the hash and block keys from secret. An empty secret
// generates random keys, so nonces do not survive a restart.
func NewNonceManager(secret string, lifetime time.Duration) *NonceManager {
	var hashKey, blockKey []byte
	if secret == "" {
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
	} else {
		h := sha256.Sum256([]byte("hash:" + secret))
		b := sha256.Sum256([]byte("block:" + secret))
		hashKey = h[:]
		blockKey = b[:]
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(lifetime.Seconds()))

	return &NonceManager{
		codec:    codec,
		lifetime: lifetime,
		Now:      time.Now,
	}
}

func (n *NonceManager) Create(userID int64, action string) (string, error) {
	return n.codec.Encode(action, noncePayload{
		UserID: userID,
		Action: action,
		Expiry: n.Now().Add(n.lifetime).Unix(),
	})
}

func (n *NonceManager) Verify(nonce string, userID int64, action string) error {
	if nonce == "" {
		return ErrInvalidNonce
	}

	var payload noncePayload
	if err := n.codec.Decode(action, nonce, &payload); err != nil {
		return errors.Join(ErrInvalidNonce, err)
	}
	if payload.UserID != userID || payload.Action != action {
		return ErrInvalidNonce
	}
	if n.Now().Unix() > payload.Expiry {
		return ErrInvalidNonce
	}
	return nil
}
