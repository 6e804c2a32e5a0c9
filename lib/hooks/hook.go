package hooks

import (
	"sort"
	"sync"

	uuid2 "github.com/google/uuid"
)

// DefaultPriority is used by EnqueueHook. Lower priorities run first.
const DefaultPriority = 10

type registeredHook struct {
	id       string
	priority int
	seq      uint64
	callback func(ctx any)
}

type Hook struct {
	mu    sync.RWMutex
	seq   uint64
	hooks map[string][]registeredHook
}

func NewHook() *Hook {
	return &Hook{
		hooks: make(map[string][]registeredHook),
	}
}

func (h *Hook) EnqueueHook(key string, ctx func(ctx any)) string {
	return h.EnqueueHookWithPriority(key, DefaultPriority, ctx)
}

// EnqueueHookWithPriority subscribes ctx to key and returns the subscription
// id. Callbacks with equal priority run in subscription order.
func (h *Hook) EnqueueHookWithPriority(key string, priority int, ctx func(ctx any)) string {
	var uuid = uuid2.New()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.hooks[key] = append(h.hooks[key], registeredHook{
		id:       uuid.String(),
		priority: priority,
		seq:      h.seq,
		callback: ctx,
	})
	sort.SliceStable(h.hooks[key], func(i, j int) bool {
		a, b := h.hooks[key][i], h.hooks[key][j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})

	return uuid.String()
}

func (h *Hook) DequeueHook(key, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	registered := h.hooks[key]
	for i, hook := range registered {
		if hook.id == id {
			h.hooks[key] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}

func (h *Hook) HasHooks(key string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.hooks[key]) > 0
}

func (h *Hook) ExecuteHooks(key string, ctx any) {
	h.mu.RLock()
	registered := make([]registeredHook, len(h.hooks[key]))
	copy(registered, h.hooks[key])
	h.mu.RUnlock()

	for _, v := range registered {
		v.callback(ctx)
	}
}
