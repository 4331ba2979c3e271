package factory

import (
	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Separator is the menu item that draws a separator line.
const Separator = "separator"

var actionRules = rules.NewPipeline(
	rules.Text[*widget.Action](),
	rules.Shortcut[*widget.Action](),
	rules.Icon[*widget.Action](),
	rules.Attr("checkable", (*widget.Action).SetCheckable),
	rules.Attr("checked", (*widget.Action).SetChecked),
	rules.Attr("enabled", (*widget.Action).SetEnabled),
	rules.Slot("triggered", func(a *widget.Action, slot func()) { a.Triggered.Connect(slot) }),
	rules.Slot("toggled", func(a *widget.Action, slot func(bool)) { a.Toggled.Connect(slot) }),
)

// Action creates a menu or status bar action.
func Action(text string, bag *rules.Bag) (*widget.Action, error) {
	return build("action", withPrimary(bag, "text", text), widget.NewAction, actionRules)
}

var menuRules = rules.NewPipeline(
	rules.Attr("title", (*widget.Menu).SetTitle),
	rules.StyleSheet[*widget.Menu](),
	rules.Func("items", menuItems),
)

// menuItems adds actions, sub menus and separators. Other strings are
// skipped.
func menuItems(m *widget.Menu, raw any) error {
	items, err := itemList("items", raw)
	if err != nil {
		return err
	}
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v == Separator {
				m.AddSeparator()
			}
		case *widget.Menu:
			m.AddMenu(v)
		case *widget.Action:
			m.AddAction(v)
		default:
			return uierrors.NewTypeError("items", "unsupported menu item type %T", item)
		}
	}
	return nil
}

// Menu creates a popup menu.
func Menu(title string, bag *rules.Bag) (*widget.Menu, error) {
	return build("menu", withPrimary(bag, "title", title), func() *widget.Menu { return widget.NewMenu("") }, menuRules)
}

var menuBarRules = rules.NewPipeline(
	rules.ObjectName[*widget.MenuBar](),
	rules.StyleSheet[*widget.MenuBar](),
	rules.Func("menus", func(b *widget.MenuBar, raw any) error {
		menus, err := itemList("menus", raw)
		if err != nil {
			return err
		}
		for _, item := range menus {
			m, ok := item.(*widget.Menu)
			if !ok {
				return uierrors.NewTypeError("menus", "unsupported menu bar item type %T", item)
			}
			b.AddMenu(m)
		}
		return nil
	}),
)

// MenuBar creates a menu bar.
func MenuBar(bag *rules.Bag) (*widget.MenuBar, error) {
	return build("menu_bar", bag, widget.NewMenuBar, menuBarRules)
}

var statusBarRules = rules.NewPipeline(
	rules.ObjectName[*widget.StatusBar](),
	rules.StyleSheet[*widget.StatusBar](),
	rules.Attr("message", (*widget.StatusBar).ShowMessage),
	rules.Func("items", func(s *widget.StatusBar, raw any) error {
		items, err := itemList("items", raw)
		if err != nil {
			return err
		}
		for _, item := range items {
			switch v := item.(type) {
			case *widget.Action:
				s.AddAction(v)
			case ui.Renderable:
				s.AddWidget(v)
			default:
				return uierrors.NewTypeError("items", "unsupported status bar item type %T", item)
			}
		}
		return nil
	}),
)

// StatusBar creates a status bar holding actions and widgets.
func StatusBar(bag *rules.Bag) (*widget.StatusBar, error) {
	return build("status_bar", bag, widget.NewStatusBar, statusBarRules)
}

var timerRules = rules.NewPipeline(
	rules.Default(rules.Checked("interval_ms", (*widget.Timer).SetInterval, "gte=0"), 1000),
	rules.Default(rules.Attr("single_shot", (*widget.Timer).SetSingleShot), false),
	rules.Slot("on_timeout", func(t *widget.Timer, slot func()) { t.Timeout.Connect(slot) }),
	rules.Flag("auto_start", (*widget.Timer).Arm),
)

// Timer creates a timer firing every second unless told otherwise. A timer
// started here begins ticking once its window or the application runs Init.
func Timer(bag *rules.Bag) (*widget.Timer, error) {
	return build("timer", bag, widget.NewTimer, timerRules)
}

func itemList(key string, raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case []*widget.Action:
		out := make([]any, len(v))
		for i, a := range v {
			out[i] = a
		}
		return out, nil
	case []*widget.Menu:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, nil
	case []ui.Renderable:
		out := make([]any, len(v))
		for i, r := range v {
			out[i] = r
		}
		return out, nil
	}
	return nil, uierrors.NewTypeError(key, "must be a list")
}

func init() {
	register("action", actionRules, func(bag *rules.Bag) (*widget.Action, error) { return Action("", bag) })
	register("menu", menuRules, func(bag *rules.Bag) (*widget.Menu, error) { return Menu("", bag) })
	register("menu_bar", menuBarRules, MenuBar)
	register("status_bar", statusBarRules, StatusBar)
	register("timer", timerRules, Timer)
}
