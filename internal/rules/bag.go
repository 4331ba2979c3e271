package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

type entry struct {
	key   string
	value any
}

// Bag is an ordered set of named options passed to a factory. Keys a
// factory does not recognize are ignored.
type Bag struct {
	entries []entry
}

// NewBag builds a bag from alternating keys and values. A trailing key
// without a value is stored with a nil value.
func NewBag(kv ...any) *Bag {
	b := &Bag{}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		b.Set(key, value)
	}
	return b
}

// Set stores value under key, keeping the position of an existing key.
func (b *Bag) Set(key string, value any) *Bag {
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries[i].value = value
			return b
		}
	}
	b.entries = append(b.entries, entry{key: key, value: value})
	return b
}

// Get returns the value stored under key.
func (b *Bag) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	for _, e := range b.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// Has reports whether key is present with a non-nil value.
func (b *Bag) Has(key string) bool {
	v, ok := b.Get(key)
	return ok && v != nil
}

// Delete removes key.
func (b *Bag) Delete(key string) {
	if b == nil {
		return
	}
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Keys returns the keys in insertion order.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of entries.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// With returns a copy of the bag with key set to value.
func (b *Bag) With(key string, value any) *Bag {
	out := &Bag{}
	if b != nil {
		out.entries = append(out.entries, b.entries...)
	}
	return out.Set(key, value)
}

// UnmarshalYAML decodes a mapping node, keeping document order.
func (b *Bag) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := FromYAML(node)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

// FromYAML converts a YAML mapping into a bag. Nested mappings become bags
// so option order survives at every level.
func FromYAML(node *yaml.Node) (*Bag, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, uierrors.NewTypeError("options", "must be a mapping, got %s", kindName(node.Kind))
	}
	b := &Bag{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, uierrors.NewParseError("options", node.Content[i].Line, err)
		}
		value, err := yamlValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		b.Set(key, value)
	}
	return b, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return FromYAML(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := yamlValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, uierrors.NewParseError("options", node.Line, err)
		}
		return v, nil
	}
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "mapping"
	}
}
