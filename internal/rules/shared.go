package rules

import (
	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// ObjectNamer is implemented by targets with an object name.
type ObjectNamer interface{ SetObjectName(string) }

// StyleSheeter is implemented by targets that accept a style sheet.
type StyleSheeter interface{ SetStyleSheet(string) }

// Texter is implemented by targets with a caption or content text.
type Texter interface{ SetText(string) }

// ToolTipper is implemented by targets with a tool tip.
type ToolTipper interface {
	SetToolTip(string)
	SetToolTipDuration(int)
}

// Shortcutter is implemented by targets with a key binding.
type Shortcutter interface{ SetShortcut(string) }

// IconSetter is implemented by targets that show an icon.
type IconSetter interface {
	SetIcon(string)
	SetIconSize(width, height int)
}

// Sizer is implemented by targets with size limits.
type Sizer interface {
	SetMinimumWidth(int)
	SetMaximumWidth(int)
	SetMinimumHeight(int)
	SetMaximumHeight(int)
}

// Windower is implemented by top level targets.
type Windower interface {
	Resize(width, height int)
	SetWindowTitle(string)
}

// ObjectName applies "object_name"; an empty name is skipped.
func ObjectName[T ObjectNamer]() Rule[T] {
	return nonEmpty("object_name", func(t T, v string) { t.SetObjectName(v) })
}

// StyleSheet applies "css"; an empty sheet is skipped.
func StyleSheet[T StyleSheeter]() Rule[T] {
	return nonEmpty("css", func(t T, v string) { t.SetStyleSheet(v) })
}

// Text applies "text", including the empty string.
func Text[T Texter]() Rule[T] {
	return Attr("text", func(t T, v string) { t.SetText(v) })
}

// Tooltip applies "tooltip"; an empty tip is skipped.
func Tooltip[T ToolTipper]() Rule[T] {
	return nonEmpty("tooltip", func(t T, v string) { t.SetToolTip(v) })
}

// TooltipDuration applies "tooltip_duration_ms".
func TooltipDuration[T ToolTipper]() Rule[T] {
	return Attr("tooltip_duration_ms", func(t T, v int) { t.SetToolTipDuration(v) })
}

// Shortcut applies "shortcut"; an empty binding is skipped.
func Shortcut[T Shortcutter]() Rule[T] {
	return nonEmpty("shortcut", func(t T, v string) { t.SetShortcut(v) })
}

// Icon applies "icon" and, when an icon was set, "icon_size". The name must
// carry a known catalog prefix.
func Icon[T IconSetter]() Rule[T] {
	return Constraint[T]("icon", func(target T, bag *Bag) error {
		raw, ok := bag.Get("icon")
		if !ok || raw == nil {
			return nil
		}
		name, ok := raw.(string)
		if !ok {
			return uierrors.NewTypeError("icon", "must be of type string")
		}
		if name == "" {
			return nil
		}
		if _, err := icons.Resolve(name); err != nil {
			return err
		}
		target.SetIcon(name)
		if !bag.Has("icon_size") {
			return nil
		}
		raw, _ = bag.Get("icon_size")
		w, h, err := pairOf[int, int]("icon_size", raw)
		if err != nil {
			return err
		}
		target.SetIconSize(w, h)
		return nil
	}, "icon", "icon_size")
}

// Size applies the four width and height limits, each non-negative, then
// checks that no minimum exceeds its maximum. The limits are already set
// when the ordering check fails.
func Size[T Sizer]() Rule[T] {
	return Constraint[T]("size", func(target T, bag *Bag) error {
		limits := []struct {
			key string
			set func(T, int)
		}{
			{"min_width", func(t T, v int) { t.SetMinimumWidth(v) }},
			{"max_width", func(t T, v int) { t.SetMaximumWidth(v) }},
			{"min_height", func(t T, v int) { t.SetMinimumHeight(v) }},
			{"max_height", func(t T, v int) { t.SetMaximumHeight(v) }},
		}
		values := make(map[string]int, len(limits))
		for _, limit := range limits {
			raw, ok := bag.Get(limit.key)
			if !ok || raw == nil {
				continue
			}
			n, ok := coerce[int](raw)
			if !ok || n < 0 {
				return uierrors.NewValueError(limit.key, "must be a non-negative integer")
			}
			limit.set(target, n)
			values[limit.key] = n
		}
		if err := ordered(values, "min_width", "max_width"); err != nil {
			return err
		}
		return ordered(values, "min_height", "max_height")
	}, "min_width", "max_width", "min_height", "max_height")
}

// WindowOps applies "window_size" as a positive pair and "window_title".
func WindowOps[T Windower]() Rule[T] {
	return Constraint[T]("window", func(target T, bag *Bag) error {
		if raw, ok := bag.Get("window_size"); ok && raw != nil {
			w, h, err := pairOf[any, any]("window_size", raw)
			if err != nil {
				return uierrors.NewTypeError("window_size", "must be a tuple of two integers")
			}
			width, wok := coerce[int](w)
			height, hok := coerce[int](h)
			if !wok || !hok || width <= 0 || height <= 0 {
				return uierrors.NewValueError("window_size", "both dimensions must be positive integers")
			}
			target.Resize(width, height)
		}
		if raw, ok := bag.Get("window_title"); ok && raw != nil {
			title, ok := raw.(string)
			if !ok {
				return uierrors.NewTypeError("window_title", "must be a string")
			}
			target.SetWindowTitle(title)
		}
		return nil
	}, "window_size", "window_title")
}

func nonEmpty[T any](key string, set func(T, string)) Rule[T] {
	return Attr(key, func(target T, v string) {
		if v != "" {
			set(target, v)
		}
	})
}

func ordered(values map[string]int, lo, hi string) error {
	minimum, okMin := values[lo]
	maximum, okMax := values[hi]
	if okMin && okMax && minimum > maximum {
		return uierrors.NewValueError(lo, "%s cannot be greater than %s", lo, hi)
	}
	return nil
}
