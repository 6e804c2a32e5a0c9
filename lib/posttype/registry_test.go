package posttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndSupports(t *testing.T) {
	r := NewRegistry()
	r.Register("page", "builder")
	r.Register("post")

	assert.True(t, r.Supports("page", "builder"))
	assert.False(t, r.Supports("post", "builder"))
	assert.False(t, r.Supports("unknown", "builder"))
}

func TestAddSupportIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("page", "builder")
	r.AddSupport("page", "revisions")
	r.AddSupport("page", "revisions")

	assert.True(t, r.Supports("page", "revisions"))
	assert.Equal(t, []string{"page"}, r.TypesSupporting("revisions"))
}

func TestTypesSupportingIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("page", "builder")
	r.Register("landing", "builder")
	r.Register("post")

	assert.Equal(t, []string{"landing", "page"}, r.TypesSupporting("builder"))
	assert.Empty(t, r.TypesSupporting("comments"))
}
