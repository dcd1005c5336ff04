package model

// Character holds one character's tokens: a word-type id per token and
// its current topic assignment, plus the character's role-count
// vector. It carries no back-reference to its owning Book — per the
// ownership-tree design, callers that need both route through the
// Book by index (see DecrementTopic/IncrementTopic) instead of
// storing a cycle.
type Character struct {
	Name       string
	Words      []int32 // word-type id per token, fits in 32 bits
	Z          []int16 // topic assignment per token, requires K<32768
	RoleCounts []int64 // length R
}

// NumWords returns the character's token count.
func (c *Character) NumWords() int { return len(c.Words) }

// Book owns a list of characters and the book-level theme counts
// summed across all of them.
type Book struct {
	Name        string
	ThemeCounts []int64 // length T
	TotalWords  int
	Characters  []Character
}

// NewBook creates an empty book with T theme slots.
func NewBook(name string, t int) *Book {
	return &Book{Name: name, ThemeCounts: make([]int64, t)}
}

// AddCharacter appends a new character with the given tokens and
// records it in TotalWords. The caller is responsible for the
// CharacterTooShort/CharacterTooLong skip policy (spec.md §4.5/§7) —
// this only constructs the entity, it never skips.
func (b *Book) AddCharacter(name string, words []int32, r int) *Character {
	b.Characters = append(b.Characters, Character{
		Name:       name,
		Words:      words,
		Z:          make([]int16, len(words)),
		RoleCounts: make([]int64, r),
	})
	b.TotalWords += len(words)
	return &b.Characters[len(b.Characters)-1]
}

// DecrementTopic drops the count backing topic (ThemeCounts[topic] if
// topic<t, else the character's RoleCounts[topic-t]) by one. This is
// the half of the kernel's update that must run before the
// conditional distribution is computed, so the current token is
// excluded from its own posterior (spec.md §4.1).
func DecrementTopic(book *Book, charIdx int, topic int16, t int) {
	if int(topic) < t {
		book.ThemeCounts[topic]--
	} else {
		book.Characters[charIdx].RoleCounts[int(topic)-t]--
	}
}

// IncrementTopic is the symmetric increment, applied after a new topic
// has been drawn.
func IncrementTopic(book *Book, charIdx int, topic int16, t int) {
	if int(topic) < t {
		book.ThemeCounts[topic]++
	} else {
		book.Characters[charIdx].RoleCounts[int(topic)-t]++
	}
}

// Reassign moves token (charIdx, tokenIdx) of book from its current
// topic straight to newZ in one step — decrement old, increment new,
// overwrite Z. Used by callers that already know the destination
// topic (tests); the sampler kernel instead calls
// DecrementTopic and IncrementTopic separately, because it must
// compute the posterior between the two (spec.md §4.2).
func Reassign(book *Book, charIdx, tokenIdx int, newZ int16, t int) {
	ch := &book.Characters[charIdx]
	old := ch.Z[tokenIdx]
	DecrementTopic(book, charIdx, old, t)
	IncrementTopic(book, charIdx, newZ, t)
	ch.Z[tokenIdx] = newZ
}
