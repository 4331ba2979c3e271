package factory

import (
	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

var listViewRules = styledRules[*widget.ListView]().Then(
	rules.Attr("items", (*widget.ListView).SetItems),
	rules.Attr("current_row", (*widget.ListView).SetCurrentRow),
	rules.Slot("on_current_row_changed", func(l *widget.ListView, slot func(int)) { l.CurrentRowChanged.Connect(slot) }),
)

// ListView creates a list of strings.
func ListView(bag *rules.Bag) (*widget.ListView, error) {
	return build("list_view", bag, widget.NewListView, listViewRules)
}

var tableItemRules = rules.NewPipeline(
	rules.Text[*widget.TableItem](),
)

// TableWidgetItem creates a cell for Table.PlaceItem.
func TableWidgetItem(text string, bag *rules.Bag) (*widget.TableItem, error) {
	return build("table_widget_item", withPrimary(bag, "text", text), widget.NewTableItem, tableItemRules)
}

// treeChildren collects TreeItems from an item list.
func treeChildren(key string, raw any, add func(*widget.TreeItem)) error {
	items, err := itemList(key, raw)
	if err != nil {
		return err
	}
	for _, item := range items {
		child, ok := item.(*widget.TreeItem)
		if !ok {
			return uierrors.NewTypeError(key, "unsupported tree item type %T", item)
		}
		add(child)
	}
	return nil
}

var treeItemRules = rules.NewPipeline(
	rules.Text[*widget.TreeItem](),
	rules.Icon[*widget.TreeItem](),
	rules.Func("children", func(i *widget.TreeItem, raw any) error {
		return treeChildren("children", raw, i.AddChild)
	}),
	rules.Attr("expanded", (*widget.TreeItem).SetExpanded),
)

// TreeWidgetItem creates a tree node.
func TreeWidgetItem(text string, bag *rules.Bag) (*widget.TreeItem, error) {
	return build("tree_widget_item", withPrimary(bag, "text", text), widget.NewTreeItem, treeItemRules)
}

var treeWidgetRules = styledRules[*widget.TreeWidget]().Then(
	rules.Func("items", func(t *widget.TreeWidget, raw any) error {
		return treeChildren("items", raw, t.AddTopLevelItem)
	}),
	rules.Slot("on_item_activated", func(t *widget.TreeWidget, slot func(*widget.TreeItem)) { t.ItemActivated.Connect(slot) }),
)

// TreeWidget creates a tree of items.
func TreeWidget(bag *rules.Bag) (*widget.TreeWidget, error) {
	return build("tree_widget", bag, widget.NewTreeWidget, treeWidgetRules)
}

func init() {
	register("list_view", listViewRules, ListView)
	register("table_widget_item", tableItemRules, func(bag *rules.Bag) (*widget.TableItem, error) { return TableWidgetItem("", bag) })
	register("tree_widget_item", treeItemRules, func(bag *rules.Bag) (*widget.TreeItem, error) { return TreeWidgetItem("", bag) })
	register("tree_widget", treeWidgetRules, TreeWidget)
}
