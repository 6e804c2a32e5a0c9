package posttype

import (
	"sort"
	"sync"
)

// Registry records which features each post type supports.
type Registry struct {
	mu    sync.RWMutex
	types map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]map[string]struct{}),
	}
}

func (r *Registry) Register(postType string, features ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[postType]; !ok {
		r.types[postType] = make(map[string]struct{})
	}
	for _, feature := range features {
		r.types[postType][feature] = struct{}{}
	}
}

// AddSupport enables feature for postType. Adding an already supported
// feature does nothing.
func (r *Registry) AddSupport(postType string, feature string) {
	r.Register(postType, feature)
}

func (r *Registry) Supports(postType string, feature string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[postType][feature]
	return ok
}

// TypesSupporting returns the post types supporting feature, sorted by name.
func (r *Registry) TypesSupporting(feature string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var postTypes []string
	for postType, features := range r.types {
		if _, ok := features[feature]; ok {
			postTypes = append(postTypes, postType)
		}
	}
	sort.Strings(postTypes)
	return postTypes
}
