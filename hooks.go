package modelcaps

import (
	"reflect"
	"sync"

	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// Hook function types for table changes.
type (
	// EntryAddedHook is called for an id missing from the previous file.
	EntryAddedHook func(id string, d capabilities.Descriptor)

	// EntryUpdatedHook is called for an id whose descriptor changed.
	EntryUpdatedHook func(id string, old, new capabilities.Descriptor)

	// EntryRemovedHook is called for an id dropped from the catalog.
	EntryRemovedHook func(id string, d capabilities.Descriptor)
)

// Changes lists the ids that differ from the previous file, each sorted.
type Changes struct {
	Added   []string `json:"added" yaml:"added"`
	Updated []string `json:"updated" yaml:"updated"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// hooks manages change callbacks.
type hooks struct {
	mu             sync.RWMutex
	onEntryAdded   []EntryAddedHook
	onEntryUpdated []EntryUpdatedHook
	onEntryRemoved []EntryRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) OnEntryAdded(fn EntryAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntryAdded = append(h.onEntryAdded, fn)
}

func (h *hooks) OnEntryUpdated(fn EntryUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntryUpdated = append(h.onEntryUpdated, fn)
}

func (h *hooks) OnEntryRemoved(fn EntryRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntryRemoved = append(h.onEntryRemoved, fn)
}

// diff compares the previous and new tables, firing hooks in sorted id order.
func (h *hooks) diff(previous, current capabilities.Map) Changes {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var changes Changes
	for _, id := range current.Keys() {
		d := current[id]
		old, exists := previous[id]
		switch {
		case !exists:
			changes.Added = append(changes.Added, id)
			for _, hook := range h.onEntryAdded {
				hook(id, d)
			}
		case !reflect.DeepEqual(old, d):
			changes.Updated = append(changes.Updated, id)
			for _, hook := range h.onEntryUpdated {
				hook(id, old, d)
			}
		}
	}

	for _, id := range previous.Keys() {
		if _, exists := current[id]; !exists {
			changes.Removed = append(changes.Removed, id)
			for _, hook := range h.onEntryRemoved {
				hook(id, previous[id])
			}
		}
	}

	return changes
}
