package main

// feedTracker maps feed names to stable integer ids. Ids are handed out in
// first-seen order starting at 0 and never change or get reused; the full
// mapping drives per-feed RSS generation at the end of a run.
type feedTracker struct {
	nextID int
	ids    map[string]int
}

func newFeedTracker() *feedTracker {
	return &feedTracker{ids: make(map[string]int)}
}

func (t *feedTracker) identify(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}

	id := t.nextID
	t.nextID++
	t.ids[name] = id
	return id
}
