package event

import "sort"

// Diff returns the events from current whose IDs are absent from the seen
// set. Used by the watch loop to announce only listings that appeared since
// the previous discovery pass.
func Diff(seen map[string]bool, current []*Event) []*Event {
	fresh := make([]*Event, 0)
	for _, evt := range current {
		if !seen[evt.ID] {
			fresh = append(fresh, evt)
		}
	}

	// Sort for stable announcement order
	sort.Slice(fresh, func(i, j int) bool {
		if fresh[i].Source != fresh[j].Source {
			return fresh[i].Source < fresh[j].Source
		}
		return fresh[i].Title < fresh[j].Title
	})

	return fresh
}

// MarkSeen records the IDs of the given events in the seen set.
func MarkSeen(seen map[string]bool, events []*Event) {
	for _, evt := range events {
		seen[evt.ID] = true
	}
}
