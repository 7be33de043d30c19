// Package vars provides the request variable store.
package vars

import (
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/pkg/errors"
)

// Setter is the write capability of a variable store.
type Setter interface {
	Set(key, value string) error
}

var _ Setter = (*Vars)(nil)

// Item represents a variable.
type Item struct {
	Key   string
	Value string
}

// Vars is an ordered set of text variables.
// A Vars is not safe for concurrent use.
type Vars struct {
	items []Item
	index map[string]int
}

// New returns a new store holding items in order.
// Later items overwrite earlier ones with the same key.
func New(items ...Item) *Vars {
	v := &Vars{}
	for _, item := range items {
		v.set(item.Key, item.Value)
	}
	return v
}

// Set sets value at key. An existing variable keeps its position.
func (v *Vars) Set(key, value string) error {
	if v == nil {
		return errors.New("variable store is nil")
	}
	v.set(key, value)
	return nil
}

func (v *Vars) set(key, value string) {
	if v.index == nil {
		v.index = map[string]int{}
	}
	if i, ok := v.index[key]; ok {
		v.items[i].Value = value
		return
	}
	v.index[key] = len(v.items)
	v.items = append(v.items, Item{Key: key, Value: value})
}

// Get returns the value at key.
func (v *Vars) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	i, ok := v.index[key]
	if !ok {
		return "", false
	}
	return v.items[i].Value, true
}

// Delete removes key from v.
func (v *Vars) Delete(key string) {
	if v == nil {
		return
	}
	i, ok := v.index[key]
	if !ok {
		return
	}
	v.items = append(v.items[:i], v.items[i+1:]...)
	delete(v.index, key)
	for j := i; j < len(v.items); j++ {
		v.index[v.items[j].Key] = j
	}
}

// Len returns the number of variables.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// Keys returns the keys in insertion order.
func (v *Vars) Keys() []string {
	if v == nil {
		return nil
	}
	keys := make([]string, len(v.items))
	for i, item := range v.items {
		keys[i] = item.Key
	}
	return keys
}

// Items returns a copy of the variables in insertion order.
func (v *Vars) Items() []Item {
	if v == nil {
		return nil
	}
	items := make([]Item, len(v.items))
	copy(items, v.items)
	return items
}

// Clone returns a deep copy of v.
func (v *Vars) Clone() *Vars {
	return New(v.Items()...)
}

// MarshalYAML implements yaml.InterfaceMarshaler interface.
func (v *Vars) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, v.Len())
	for _, item := range v.Items() {
		ms = append(ms, yaml.MapItem{Key: item.Key, Value: item.Value})
	}
	return ms, nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler interface.
// Scalar values keep their source text; mappings and sequences are rejected.
func (v *Vars) UnmarshalYAML(b []byte) error {
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		return err
	}
	nv := New()
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		*v = *nv
		return nil
	}
	var values []*ast.MappingValueNode
	switch n := f.Docs[0].Body.(type) {
	case *ast.MappingNode:
		values = n.Values
	case *ast.MappingValueNode:
		values = []*ast.MappingValueNode{n}
	case *ast.NullNode:
	default:
		return errors.Errorf("expected a mapping but got %s", n.Type())
	}
	for _, mv := range values {
		key, err := scalarText(mv.Key)
		if err != nil {
			return errors.Wrap(err, "invalid key")
		}
		s, err := scalarText(mv.Value)
		if err != nil {
			return errors.Wrapf(err, "invalid value of %q", key)
		}
		nv.set(key, s)
	}
	*v = *nv
	return nil
}

func scalarText(node ast.Node) (string, error) {
	switch n := node.(type) {
	case nil, *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.TagNode:
		return scalarText(n.Value)
	case *ast.AnchorNode:
		return scalarText(n.Value)
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, nil
	}
	return "", errors.Errorf("expected a scalar value but got %s", node.Type())
}
