package hyphenator

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// weightsKey is never a pattern letter since digits are weights.
const weightsKey = "0"

// ErrMalformedDump is returned when trie could not be restored from JSON.
var ErrMalformedDump = errors.New("malformed trie dump")

// MarshalJSON dumps trie as nested objects keyed by letters. Pattern weights are kept under "0" key of the node
// where pattern ends:
//
//	{"a":{"b":{"0":[1,0,2]}}}
func (t *Trie) MarshalJSON() ([]byte, error) {
	if t.root == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.root.dump())
}

func (n *node) dump() map[string]interface{} {
	m := make(map[string]interface{}, len(n.children)+1)
	for c, child := range n.children {
		m[string(c)] = child.dump()
	}
	if n.weights != nil {
		m[weightsKey] = n.weights
	}
	return m
}

// UnmarshalJSON restores trie previously dumped by MarshalJSON.
func (t *Trie) UnmarshalJSON(data []byte) error {

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not a valid json", ErrMalformedDump)
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("%w: top level value is not an object", ErrMalformedDump)
	}

	restored := NewTrie()
	if err := restored.restore(restored.root, res, 0); err != nil {
		return err
	}
	*t = *restored
	return nil
}

func (t *Trie) restore(n *node, obj gjson.Result, depth int) error {

	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if k == weightsKey {
			err = t.restoreWeights(n, value, depth)
			return err == nil
		}
		c, size := utf8.DecodeRuneInString(k)
		// single byte RuneError means invalid UTF-8
		if size == 0 || size != len(k) || (c == utf8.RuneError && size == 1) || (c >= '0' && c <= '9') {
			err = fmt.Errorf("%w: bad key %q at depth %d", ErrMalformedDump, k, depth)
			return false
		}
		if !value.IsObject() {
			err = fmt.Errorf("%w: value for %q is not an object", ErrMalformedDump, k)
			return false
		}
		child := n.child(c)
		if child == nil {
			child = newNode()
			n.children[c] = child
			t.nodes++
		}
		err = t.restore(child, value, depth+1)
		return err == nil
	})
	return err
}

func (t *Trie) restoreWeights(n *node, value gjson.Result, depth int) error {

	if depth == 0 {
		return fmt.Errorf("%w: %v", ErrMalformedDump, ErrNoLetters)
	}
	if !value.IsArray() {
		return fmt.Errorf("%w: weights at depth %d are not an array", ErrMalformedDump, depth)
	}
	arr := value.Array()
	if len(arr) != depth+1 {
		return fmt.Errorf("%w: %d weights for %d letters", ErrMalformedDump, len(arr), depth)
	}
	weights := make([]int, 0, len(arr))
	for _, w := range arr {
		if w.Type != gjson.Number || w.Num < 0 || w.Num > 9 || w.Num != float64(int(w.Num)) {
			return fmt.Errorf("%w: bad weight %s", ErrMalformedDump, w.Raw)
		}
		weights = append(weights, int(w.Num))
	}
	if n.weights == nil {
		t.patterns++
	}
	n.weights = weights
	if depth > t.depth {
		t.depth = depth
	}
	return nil
}
