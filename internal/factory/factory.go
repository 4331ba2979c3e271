// Package factory builds widgets from option bags.
//
// Every factory takes an optional primary argument and a bag. The "widget"
// key reconfigures an existing instance of the factory's type instead of
// creating one. Each factory runs a fixed rule pipeline; keys outside it are
// ignored. Callback options are connected after every other option so the
// initial values do not fire them.
package factory

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Builder creates an element from a bag. Primary arguments travel in the
// bag under their option name.
type Builder func(bag *rules.Bag) (any, error)

type kind struct {
	build Builder
	keys  []string
}

var registry = map[string]kind{}

func register[T any](name string, pipeline *rules.Pipeline[T], build func(*rules.Bag) (T, error)) {
	registry[name] = kind{
		build: func(bag *rules.Bag) (any, error) { return build(bag) },
		keys:  append([]string{"widget"}, pipeline.Keys()...),
	}
}

// Build creates an element of the named kind.
func Build(name string, bag *rules.Bag) (any, error) {
	k, ok := registry[name]
	if !ok {
		return nil, uierrors.NewTypeError("kind", "unsupported widget kind %q", name)
	}
	return k.build(bag)
}

// Recognized lists the options a kind accepts.
func Recognized(name string) ([]string, bool) {
	k, ok := registry[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), k.keys...), true
}

// Kinds lists the registered kinds in name order.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// build resolves the target and runs the pipeline on it.
func build[T any](name string, bag *rules.Bag, create func() T, pipeline *rules.Pipeline[T]) (T, error) {
	var zero, w T
	if raw, ok := bag.Get("widget"); ok && raw != nil {
		existing, ok := raw.(T)
		if !ok {
			return zero, fmt.Errorf("%s: %w", name, uierrors.NewTypeError("widget", "must be of type %T, got %T", zero, raw))
		}
		w = existing
	} else {
		w = create()
	}
	if err := pipeline.Apply(w, bag); err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return w, nil
}

// withPrimary stores a positional argument under key unless the bag
// already sets it.
func withPrimary(bag *rules.Bag, key, value string) *rules.Bag {
	if value == "" || bag.Has(key) {
		return bag
	}
	return bag.With(key, value)
}

type styled interface {
	rules.ObjectNamer
	rules.StyleSheeter
	rules.Sizer
}

// styledRules is the head shared by every widget pipeline.
func styledRules[T styled]() *rules.Pipeline[T] {
	return rules.NewPipeline(
		rules.ObjectName[T](),
		rules.StyleSheet[T](),
		rules.Size[T](),
	)
}

type aligned interface {
	SetAlignment(components.Alignment)
}

// alignment accepts an Alignment or names such as "right|vcenter".
func alignment[T aligned](key string) rules.Rule[T] {
	return rules.Func(key, func(target T, raw any) error {
		switch v := raw.(type) {
		case components.Alignment:
			target.SetAlignment(v)
		case string:
			align, ok := components.ParseAlignment(v)
			if !ok {
				return uierrors.NewValueError(key, "unknown alignment %q", v)
			}
			target.SetAlignment(align)
		default:
			return uierrors.NewTypeError(key, "must be of type components.Alignment or a name")
		}
		return nil
	})
}
