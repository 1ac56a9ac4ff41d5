package hyphenator

import (
	"fmt"
)

type node struct {
	children map[rune]*node
	weights  []int // nil when no pattern ends here
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (n *node) child(c rune) *node {
	return n.children[c]
}

// Trie keeps hyphenation patterns keyed by their letters. It is built once and then only read.
type Trie struct {
	root     *node
	patterns int
	nodes    int
	depth    int
}

// Stats describes trie content.
type Stats struct {
	Patterns int
	Nodes    int
	MaxDepth int
}

func (s Stats) String() string {
	return fmt.Sprintf("patterns: %d, nodes: %d, depth: %d", s.Patterns, s.Nodes, s.MaxDepth)
}

// NewTrie returns empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

// Insert adds single pattern (for example "1bc2") to the trie. When some pattern with the same letters is already
// there its weights are replaced.
func (t *Trie) Insert(pattern string) error {

	letters, weights, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	t.insert(letters, weights)
	return nil
}

func (t *Trie) insert(letters []rune, weights []int) {

	cur := t.root
	for _, c := range letters {
		next := cur.child(c)
		if next == nil {
			next = newNode()
			cur.children[c] = next
			t.nodes++
		}
		cur = next
	}
	if cur.weights == nil {
		t.patterns++
	}
	cur.weights = weights
	if len(letters) > t.depth {
		t.depth = len(letters)
	}
}

// Stats returns trie statistics.
func (t *Trie) Stats() Stats {
	return Stats{Patterns: t.patterns, Nodes: t.nodes, MaxDepth: t.depth}
}

// Empty reports if trie has no patterns.
func (t *Trie) Empty() bool {
	return t.patterns == 0
}

// walk calls fn for every pattern matching work starting at position start, shortest first.
func (t *Trie) walk(work []rune, start int, fn func(end int, weights []int)) {

	cur := t.root
	for n := start; n < len(work); n++ {
		if cur = cur.child(work[n]); cur == nil {
			return
		}
		if cur.weights != nil {
			fn(n+1, cur.weights)
		}
	}
}
