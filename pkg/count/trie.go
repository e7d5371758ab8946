package count

import (
	"fmt"
	"iter"
)

// DefaultLineLimit is how many occurrence lines are remembered per word.
const DefaultLineLimit = 20

const alphabet = 26

// handle addresses a node in the arena. The root is 0 and is nobody's child,
// so a zero child slot means "no child".
type handle uint32

const root handle = 0

type node struct {
	children [alphabet]handle
	info     int32 // 1-based index into Trie.infos, 0 if no word ends here.
}

// WordInfo is what the index knows about one word.
type WordInfo struct {
	Count int
	Lines []int // first min(Count, limit) lines, in occurrence order.
}

// Entry pairs a word with its statistics.
type Entry struct {
	Word string
	Info WordInfo
}

// Trie maps lowercase ASCII words to WordInfo. Nodes are kept in a single
// arena slice and linked by index.
type Trie struct {
	nodes     []node
	infos     []WordInfo
	lineLimit int
}

type TrieOption func(*Trie)

// WithLineLimit sets how many lines are kept per word. Values below 1 are
// ignored.
func WithLineLimit(n int) TrieOption {
	return func(t *Trie) {
		if n >= 1 {
			t.lineLimit = n
		}
	}
}

func NewTrie(opts ...TrieOption) *Trie {
	t := &Trie{
		nodes:     make([]node, 1, 1024),
		lineLimit: DefaultLineLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert records one occurrence of word on line. word must consist of
// lowercase ASCII letters only.
func (t *Trie) Insert(word []byte, line int) {
	p := root
	for _, c := range word {
		i := c - 'a'
		if i >= alphabet {
			panic(fmt.Sprintf("count: byte %q is not a lowercase letter", c))
		}
		next := t.nodes[p].children[i]
		if next == root {
			t.nodes = append(t.nodes, node{})
			next = handle(len(t.nodes) - 1)
			t.nodes[p].children[i] = next
		}
		p = next
	}

	if t.nodes[p].info == 0 {
		t.infos = append(t.infos, WordInfo{})
		t.nodes[p].info = int32(len(t.infos))
	}
	info := &t.infos[t.nodes[p].info-1]
	info.Count++
	if info.Count <= t.lineLimit {
		info.Lines = append(info.Lines, line)
	}
}

// Lookup returns the statistics of word, if it was ever inserted.
func (t *Trie) Lookup(word string) (WordInfo, bool) {
	p := root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if c >= alphabet {
			return WordInfo{}, false
		}
		p = t.nodes[p].children[c]
		if p == root {
			return WordInfo{}, false
		}
	}
	if t.nodes[p].info == 0 {
		return WordInfo{}, false
	}
	return t.infos[t.nodes[p].info-1], true
}

// All yields every word with its statistics in lexicographic order.
func (t *Trie) All() iter.Seq2[string, WordInfo] {
	return func(yield func(string, WordInfo) bool) {
		path := make([]byte, 0, 32)

		var walk func(p handle) bool
		walk = func(p handle) bool {
			n := &t.nodes[p]
			if n.info != 0 && !yield(string(path), t.infos[n.info-1]) {
				return false
			}
			for c, child := range n.children {
				if child == root {
					continue
				}
				path = append(path, byte('a'+c))
				if !walk(child) {
					return false
				}
				path = path[:len(path)-1]
			}
			return true
		}
		walk(root)
	}
}

// Entries materializes All.
func (t *Trie) Entries() []Entry {
	res := make([]Entry, 0, len(t.infos))
	for word, info := range t.All() {
		res = append(res, Entry{Word: word, Info: info})
	}
	return res
}

// Len is the number of distinct words.
func (t *Trie) Len() int {
	return len(t.infos)
}

// Nodes is the arena size, root included.
func (t *Trie) Nodes() int {
	return len(t.nodes)
}

func (t *Trie) LineLimit() int {
	return t.lineLimit
}
