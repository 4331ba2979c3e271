package factory

import (
	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// ToolBarNextLine in a main window's toolbars starts a new tool bar line.
const ToolBarNextLine = "toolbar_next_line"

type layoutOwner interface {
	SetLayout(ui.Renderable)
}

func layoutRule[T layoutOwner](key string) rules.Rule[T] {
	return rules.Attr(key, func(target T, layout ui.Renderable) { target.SetLayout(layout) })
}

var groupBoxRules = styledRules[*widget.GroupBox]().Then(
	rules.Attr("title", (*widget.GroupBox).SetTitle),
	layoutRule[*widget.GroupBox]("layout"),
)

// GroupBox creates a titled box around a layout.
func GroupBox(title string, bag *rules.Bag) (*widget.GroupBox, error) {
	return build("group_box", withPrimary(bag, "title", title), widget.NewGroupBox, groupBoxRules)
}

var frameRules = styledRules[*widget.Frame]().Then(
	rules.Enum("frame_shape", components.BorderVariantNames, (*widget.Frame).SetFrameShape),
	layoutRule[*widget.Frame]("layout"),
)

// Frame creates a bordered box around a layout.
func Frame(bag *rules.Bag) (*widget.Frame, error) {
	return build("frame", bag, widget.NewFrame, frameRules)
}

var windowRules = styledRules[*widget.Window]().Then(
	rules.WindowOps[*widget.Window](),
	layoutRule[*widget.Window]("layout"),
	rules.Default(rules.Flag("show", (*widget.Window).Show), true),
)

// Widget creates a top level window around a layout. Windows are shown
// unless "show" is false.
func Widget(bag *rules.Bag) (*widget.Window, error) {
	return build("widget", bag, widget.NewWindow, windowRules)
}

var mainWindowRules = rules.NewPipeline(
	rules.WindowOps[*widget.Window](),
	rules.StyleSheet[*widget.Window](),
	layoutRule[*widget.Window]("central_widget"),
	rules.Attr("menubar", (*widget.Window).SetMenuBar),
	rules.Attr("statusbar", (*widget.Window).SetStatusBar),
	rules.Func("toolbars", windowToolBars),
	rules.Func("docks", windowDocks),
	rules.Default(rules.Flag("show", (*widget.Window).Show), true),
)

func windowToolBars(w *widget.Window, raw any) error {
	items, err := itemList("toolbars", raw)
	if err != nil {
		return err
	}
	for _, item := range items {
		switch v := item.(type) {
		case *widget.ToolBar:
			w.AddToolBar(v)
		case string:
			if v != ToolBarNextLine {
				return uierrors.NewValueError("toolbars", "unknown toolbar marker %q", v)
			}
			w.AddToolBarBreak()
		default:
			return uierrors.NewTypeError("toolbars", "unsupported toolbar type %T", item)
		}
	}
	return nil
}

// windowDocks takes [area, dock] pairs. The area is a name or a DockArea.
func windowDocks(w *widget.Window, raw any) error {
	items, err := itemList("docks", raw)
	if err != nil {
		return err
	}
	for i, item := range items {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return uierrors.NewTypeError("docks", "entry %d must be an [area, dock] pair", i)
		}
		var area widget.DockArea
		switch v := pair[0].(type) {
		case widget.DockArea:
			area = v
		case string:
			if area, ok = widget.DockAreaNames[v]; !ok {
				return uierrors.NewValueError("docks", "unknown dock area %q", v)
			}
		default:
			return uierrors.NewTypeError("docks", "entry %d area must be a name, got %T", i, pair[0])
		}
		dock, ok := pair[1].(*widget.DockWidget)
		if !ok {
			return uierrors.NewTypeError("docks", "entry %d must hold a dock widget, got %T", i, pair[1])
		}
		w.AddDockWidget(area, dock)
	}
	return nil
}

// MainWindow creates a window with a central widget, a menu bar and a
// status bar. Tool bars sit under the menu bar and docks around the
// central widget.
func MainWindow(bag *rules.Bag) (*widget.Window, error) {
	return build("main_window", bag, widget.NewWindow, mainWindowRules)
}

var toolBarRules = rules.NewPipeline(
	rules.Attr("title", (*widget.ToolBar).SetTitle),
	rules.ObjectName[*widget.ToolBar](),
	rules.StyleSheet[*widget.ToolBar](),
	rules.Func("items", func(t *widget.ToolBar, raw any) error {
		items, err := itemList("items", raw)
		if err != nil {
			return err
		}
		for _, item := range items {
			switch v := item.(type) {
			case *widget.Action:
				t.AddAction(v)
			case ui.Renderable:
				t.AddWidget(v)
			default:
				return uierrors.NewTypeError("items", "unsupported toolbar item type %T", item)
			}
		}
		return nil
	}),
)

// ToolBar creates a tool bar of actions and widgets.
func ToolBar(title string, bag *rules.Bag) (*widget.ToolBar, error) {
	return build("tool_bar", withPrimary(bag, "title", title), widget.NewToolBar, toolBarRules)
}

var dockRules = styledRules[*widget.DockWidget]().Then(
	rules.Attr("title", (*widget.DockWidget).SetTitle),
	rules.Attr("content", (*widget.DockWidget).SetWidget),
	rules.Pair("size_hint", (*widget.DockWidget).SetHintSize),
)

// DockWidget creates a titled pane for a main window's docks.
func DockWidget(title string, bag *rules.Bag) (*widget.DockWidget, error) {
	return build("dock_widget", withPrimary(bag, "title", title), widget.NewDockWidget, dockRules)
}

// addWidgets hands each list entry to add. Every entry must render.
func addWidgets(key string, raw any, add func(ui.Renderable)) error {
	items, err := itemList(key, raw)
	if err != nil {
		return err
	}
	for _, item := range items {
		r, ok := item.(ui.Renderable)
		if !ok {
			return uierrors.NewTypeError(key, "unsupported widget type %T", item)
		}
		add(r)
	}
	return nil
}

var splitterRules = styledRules[*widget.Splitter]().Then(
	rules.Default(rules.Enum("orientation", orientationNames, (*widget.Splitter).SetOrientation), widget.Horizontal),
	rules.Checked("margin", (*widget.Splitter).SetMargin, "gte=0"),
	rules.Func("widgets", func(s *widget.Splitter, raw any) error {
		return addWidgets("widgets", raw, s.AddWidget)
	}),
	rules.Attr("sizes", (*widget.Splitter).SetSizes),
)

// Splitter creates panes divided by handles. Sizes weight the panes.
func Splitter(bag *rules.Bag) (*widget.Splitter, error) {
	return build("splitter", bag, widget.NewSplitter, splitterRules)
}

var scrollAreaRules = rules.NewPipeline(
	rules.ObjectName[*widget.ScrollArea](),
	rules.StyleSheet[*widget.ScrollArea](),
	rules.Attr("content", (*widget.ScrollArea).SetWidget),
	rules.Default(rules.Attr("resizable", (*widget.ScrollArea).SetWidgetResizable), true),
)

// ScrollArea creates a scrolling viewport around one widget.
func ScrollArea(bag *rules.Bag) (*widget.ScrollArea, error) {
	return build("scroll_area", bag, widget.NewScrollArea, scrollAreaRules)
}

var stackedRules = styledRules[*widget.StackedWidget]().Then(
	rules.Func("pages", func(s *widget.StackedWidget, raw any) error {
		return addWidgets("pages", raw, func(page ui.Renderable) { s.AddWidget(page) })
	}),
	rules.Attr("current_page", (*widget.StackedWidget).SetCurrentWidget),
	rules.Attr("current_index", (*widget.StackedWidget).SetCurrentIndex),
	rules.Slot("on_current_changed", func(s *widget.StackedWidget, slot func(int)) { s.CurrentChanged.Connect(slot) }),
)

// StackedWidget creates a stack showing one page. current_index wins over
// current_page when both are set.
func StackedWidget(bag *rules.Bag) (*widget.StackedWidget, error) {
	return build("stacked_widget", bag, widget.NewStackedWidget, stackedRules)
}

var hlineRules = rules.NewPipeline(
	rules.Default(rules.Checked("fixed_height", func(d *components.Divider, h int) { d.WithHeight(h) }, "gt=0"), 1),
)

// HLine creates a horizontal separator that stretches across its row.
func HLine(bag *rules.Bag) (*components.Divider, error) {
	return build("hline", bag, components.HorizontalDivider, hlineRules)
}

func init() {
	register("group_box", groupBoxRules, func(bag *rules.Bag) (*widget.GroupBox, error) { return GroupBox("", bag) })
	register("frame", frameRules, Frame)
	register("widget", windowRules, Widget)
	register("main_window", mainWindowRules, MainWindow)
	register("hline", hlineRules, HLine)
	register("tool_bar", toolBarRules, func(bag *rules.Bag) (*widget.ToolBar, error) { return ToolBar("", bag) })
	register("dock_widget", dockRules, func(bag *rules.Bag) (*widget.DockWidget, error) { return DockWidget("", bag) })
	register("splitter", splitterRules, Splitter)
	register("scroll_area", scrollAreaRules, ScrollArea)
	register("stacked_widget", stackedRules, StackedWidget)
}
