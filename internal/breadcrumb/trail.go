package breadcrumb

// HomeLabel restarts the trail whenever it is navigated to.
const HomeLabel = "Home"

// MaxLength bounds the number of items kept in a trail.
const MaxLength = 3

// Item is one visited location. Path carries pathname plus query string.
type Item struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Trail is ordered oldest first; the last item is the current location.
type Trail []Item

// Current returns the last item of the trail.
func (t Trail) Current() (Item, bool) {
	if len(t) == 0 {
		return Item{}, false
	}
	return t[len(t)-1], true
}

// Equal reports whether both trails hold the same items in the same order.
func (t Trail) Equal(o Trail) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no memory with t. A nil trail clones to an empty one.
func (t Trail) Clone() Trail {
	out := make(Trail, len(t))
	copy(out, t)
	return out
}

// Update applies one navigation to trail. The first matching rule wins:
//
//  1. the current location already has path: trail is returned unchanged
//  2. an item shares path or label: history after it is dropped and the item replaced
//  3. label is HomeLabel: the trail restarts
//  4. the trail is full: the oldest item is dropped
//  5. otherwise the item is appended
//
// Apart from rule 1 the result never shares memory with trail.
func Update(trail Trail, path, label string) Trail {
	item := Item{Path: path, Label: label}

	if cur, ok := trail.Current(); ok && cur.Path == path {
		return trail
	}

	for i, it := range trail {
		if it.Path == path || it.Label == label {
			return appendItem(trail[:i], item)
		}
	}

	if label == HomeLabel {
		return Trail{item}
	}

	if len(trail) >= MaxLength {
		return appendItem(trail[len(trail)-MaxLength+1:], item)
	}

	return appendItem(trail, item)
}

func appendItem(prefix Trail, item Item) Trail {
	out := make(Trail, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, item)
}
