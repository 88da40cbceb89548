package img2ascii

import "sort"

// charBrightness pairs a character with its raw brightness. The base
// index keeps these sorted by brightness with character code as the
// secondary key, so iteration and min/max queries are stable when two
// characters render to the same pixel density.
type charBrightness struct {
	char       rune
	brightness float64
}

// baseIndex is the source-of-truth ordered mapping from character to raw
// brightness. entries is sorted by (brightness, char); byChar provides
// identity lookups without scanning.
type baseIndex struct {
	entries []charBrightness
	byChar  map[rune]float64
}

func newBaseIndex() *baseIndex {
	return &baseIndex{byChar: make(map[rune]float64)}
}

// search returns the position of (brightness, char) in entries, or the
// position it would be inserted at.
func (b *baseIndex) search(brightness float64, char rune) int {
	return sort.Search(len(b.entries), func(i int) bool {
		e := b.entries[i]
		return e.brightness > brightness ||
			(e.brightness == brightness && e.char >= char)
	})
}

// insert adds a character at its sorted position. A character already in
// the index is reinserted at the position of its new brightness.
func (b *baseIndex) insert(char rune, brightness float64) {
	if old, exists := b.byChar[char]; exists {
		b.removeAt(b.search(old, char))
	}
	i := b.search(brightness, char)
	b.entries = append(b.entries, charBrightness{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = charBrightness{char: char, brightness: brightness}
	b.byChar[char] = brightness
}

// remove deletes a character from the index. It reports whether the
// character was present.
func (b *baseIndex) remove(char rune) bool {
	brightness, exists := b.byChar[char]
	if !exists {
		return false
	}
	b.removeAt(b.search(brightness, char))
	return true
}

func (b *baseIndex) removeAt(i int) {
	delete(b.byChar, b.entries[i].char)
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
}

// brightness returns the raw brightness recorded for a character.
func (b *baseIndex) brightness(char rune) (float64, bool) {
	v, exists := b.byChar[char]
	return v, exists
}

func (b *baseIndex) len() int {
	return len(b.entries)
}

// min returns the entry with the lowest brightness. The index must be
// non-empty.
func (b *baseIndex) min() charBrightness {
	return b.entries[0]
}

// max returns the entry with the highest brightness. The index must be
// non-empty.
func (b *baseIndex) max() charBrightness {
	return b.entries[len(b.entries)-1]
}

// normEntry maps one normalized brightness value to the ordered set of
// characters sharing that exact value. chars is kept sorted by character
// code so the first element is the deterministic representative.
type normEntry struct {
	key   float64
	chars []rune
}

// normIndex is the derived ordered mapping from normalized brightness to
// character sets. It is a cached view of the base index and is rebuilt
// wholesale whenever the base extremes change.
type normIndex struct {
	entries []normEntry
}

// search returns the position of the first entry with key >= target.
func (n *normIndex) search(key float64) int {
	return sort.Search(len(n.entries), func(i int) bool {
		return n.entries[i].key >= key
	})
}

// insert adds a character under the given key, creating the key entry if
// it does not exist. Inserting a character already present under the key
// is a no-op.
func (n *normIndex) insert(key float64, char rune) {
	i := n.search(key)
	if i < len(n.entries) && n.entries[i].key == key {
		chars := n.entries[i].chars
		j := sort.Search(len(chars), func(k int) bool { return chars[k] >= char })
		if j < len(chars) && chars[j] == char {
			return
		}
		chars = append(chars, 0)
		copy(chars[j+1:], chars[j:])
		chars[j] = char
		n.entries[i].chars = chars
		return
	}
	n.entries = append(n.entries, normEntry{})
	copy(n.entries[i+1:], n.entries[i:])
	n.entries[i] = normEntry{key: key, chars: []rune{char}}
}

// remove deletes a character from the given key's set. When the set
// empties, the key entry itself is dropped so lookups never see an empty
// set.
func (n *normIndex) remove(key float64, char rune) {
	i := n.search(key)
	if i >= len(n.entries) || n.entries[i].key != key {
		return
	}
	chars := n.entries[i].chars
	j := sort.Search(len(chars), func(k int) bool { return chars[k] >= char })
	if j >= len(chars) || chars[j] != char {
		return
	}
	chars = append(chars[:j], chars[j+1:]...)
	if len(chars) == 0 {
		n.entries = append(n.entries[:i], n.entries[i+1:]...)
		return
	}
	n.entries[i].chars = chars
}

// ceiling returns the entry with the smallest key >= target.
func (n *normIndex) ceiling(key float64) (normEntry, bool) {
	i := n.search(key)
	if i >= len(n.entries) {
		return normEntry{}, false
	}
	return n.entries[i], true
}

// floor returns the entry with the largest key <= target.
func (n *normIndex) floor(key float64) (normEntry, bool) {
	i := n.search(key)
	if i < len(n.entries) && n.entries[i].key == key {
		return n.entries[i], true
	}
	if i == 0 {
		return normEntry{}, false
	}
	return n.entries[i-1], true
}

func (n *normIndex) len() int {
	return len(n.entries)
}
