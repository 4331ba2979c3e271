package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

type target struct {
	calls       []string
	name        string
	text        string
	count       int
	ratio       float64
	items       []string
	lo, hi      int
	minW, maxW  int
	minH, maxH  int
	title       string
	w, h        int
	icon        string
	iw, ih      int
	tip         string
	tipDuration int
	onClick     func()
}

func (t *target) SetObjectName(v string) { t.calls = append(t.calls, "name"); t.name = v }
func (t *target) SetStyleSheet(string) { t.calls = append(t.calls, "css") }
func (t *target) SetText(v string) { t.calls = append(t.calls, "text"); t.text = v }
func (t *target) SetToolTip(v string) { t.calls = append(t.calls, "tooltip"); t.tip = v }
func (t *target) SetToolTipDuration(v int) { t.calls = append(t.calls, "tooltip_duration"); t.tipDuration = v }
func (t *target) SetShortcut(string) { t.calls = append(t.calls, "shortcut") }
func (t *target) SetIcon(v string) { t.calls = append(t.calls, "icon"); t.icon = v }
func (t *target) SetIconSize(w, h int) { t.calls = append(t.calls, "icon_size"); t.iw, t.ih = w, h }
func (t *target) SetMinimumWidth(v int) { t.calls = append(t.calls, "min_width"); t.minW = v }
func (t *target) SetMaximumWidth(v int) { t.calls = append(t.calls, "max_width"); t.maxW = v }
func (t *target) SetMinimumHeight(v int) { t.calls = append(t.calls, "min_height"); t.minH = v }
func (t *target) SetMaximumHeight(v int) { t.calls = append(t.calls, "max_height"); t.maxH = v }
func (t *target) Resize(w, h int) { t.calls = append(t.calls, "resize"); t.w, t.h = w, h }
func (t *target) SetWindowTitle(v string) { t.calls = append(t.calls, "title"); t.title = v }
func (t *target) SetRange(lo, hi int) { t.calls = append(t.calls, "range"); t.lo, t.hi = lo, hi }
func (t *target) SetCount(v int) { t.calls = append(t.calls, "count"); t.count = v }
func (t *target) SetRatio(v float64) { t.calls = append(t.calls, "ratio"); t.ratio = v }
func (t *target) SetItems(v []string) { t.calls = append(t.calls, "items"); t.items = v }
func (t *target) ConnectClicked(slot func()) { t.calls = append(t.calls, "clicked"); t.onClick = slot }
func (t *target) Show() { t.calls = append(t.calls, "show") }

func TestBagKeepsInsertionOrder(t *testing.T) {
	bag := NewBag("b", 1, "a", 2).Set("c", 3).Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, bag.Keys())
	v, ok := bag.Get("b")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.False(t, bag.Has("missing"))

	bag.Delete("a")
	assert.Equal(t, []string{"b", "c"}, bag.Keys())

	var nilBag *Bag
	assert.Equal(t, 0, nilBag.Len())
	assert.False(t, nilBag.Has("a"))
}

func TestBagWithDoesNotMutate(t *testing.T) {
	bag := NewBag("a", 1)
	other := bag.With("b", 2)

	assert.Equal(t, []string{"a"}, bag.Keys())
	assert.Equal(t, []string{"a", "b"}, other.Keys())
}

func TestFromYAMLKeepsDocumentOrder(t *testing.T) {
	doc := `
zeta: 1
alpha: [1, 2]
nested:
  second: x
  first: y
ratio: 0.5
`
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &node))

	bag, err := FromYAML(&node)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "nested", "ratio"}, bag.Keys())

	alpha, _ := bag.Get("alpha")
	assert.Equal(t, []any{1, 2}, alpha)

	nested, _ := bag.Get("nested")
	require.IsType(t, &Bag{}, nested)
	assert.Equal(t, []string{"second", "first"}, nested.(*Bag).Keys())
}

func TestFromYAMLRejectsNonMapping(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &node))

	_, err := FromYAML(&node)
	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestBagUnmarshalYAML(t *testing.T) {
	var doc struct {
		Options Bag `yaml:"options"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("options:\n  b: 1\n  a: 2\n"), &doc))
	assert.Equal(t, []string{"b", "a"}, doc.Options.Keys())
}

func TestAttrAppliesAndCoerces(t *testing.T) {
	tests := []struct {
		name    string
		bag     *Bag
		want    func(*target) bool
		wantErr error
	}{
		{"int", NewBag("count", 3), func(tg *target) bool { return tg.count == 3 }, nil},
		{"whole float into int", NewBag("count", 4.0), func(tg *target) bool { return tg.count == 4 }, nil},
		{"fraction into int", NewBag("count", 4.5), nil, uierrors.ErrType},
		{"string into int", NewBag("count", "4"), nil, uierrors.ErrType},
		{"bool into int", NewBag("count", true), nil, uierrors.ErrType},
		{"int into float", NewBag("ratio", 2), func(tg *target) bool { return tg.ratio == 2 }, nil},
		{"any slice into strings", NewBag("items", []any{"a", "b"}), func(tg *target) bool {
			return assert.ObjectsAreEqual([]string{"a", "b"}, tg.items)
		}, nil},
		{"mixed slice", NewBag("items", []any{"a", 1}), nil, uierrors.ErrType},
	}

	pipeline := NewPipeline(
		Attr("count", (*target).SetCount),
		Attr("ratio", (*target).SetRatio),
		Attr("items", (*target).SetItems),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := &target{}
			err := pipeline.Apply(tg, tt.bag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want(tg))
		})
	}
}

func TestAttrErrorNamesKey(t *testing.T) {
	err := Attr("count", (*target).SetCount).Apply(&target{}, NewBag("count", "x"))

	var typeErr *uierrors.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "count", typeErr.Param)
	assert.Contains(t, typeErr.Message, "must be of type int")
}

func TestOmittedKeysNeverInvokeMutators(t *testing.T) {
	pipeline := NewPipeline(
		ObjectName[*target](),
		StyleSheet[*target](),
		Text[*target](),
		Tooltip[*target](),
		TooltipDuration[*target](),
		Shortcut[*target](),
		Icon[*target](),
		Size[*target](),
		WindowOps[*target](),
		Pair("value_range", (*target).SetRange),
		Slot("on_clicked", (*target).ConnectClicked),
		Flag("show", (*target).Show),
	)
	tg := &target{}

	require.NoError(t, pipeline.Apply(tg, NewBag("unknown", 1)))
	assert.Empty(t, tg.calls)
}

func TestEmptyStringsAreSkippedWhereFalsy(t *testing.T) {
	pipeline := NewPipeline(ObjectName[*target](), StyleSheet[*target](), Text[*target]())
	tg := &target{}

	require.NoError(t, pipeline.Apply(tg, NewBag("object_name", "", "css", "", "text", "")))
	assert.Equal(t, []string{"text"}, tg.calls)
}

func TestPairAcceptsTuplesSlicesAndArrays(t *testing.T) {
	rule := Pair("value_range", (*target).SetRange)

	for _, raw := range []any{Tuple(1, 5), []int{1, 5}, [2]int{1, 5}, []any{1.0, 5.0}} {
		tg := &target{}
		require.NoError(t, rule.Apply(tg, NewBag("value_range", raw)))
		assert.Equal(t, 1, tg.lo)
		assert.Equal(t, 5, tg.hi)
	}

	err := rule.Apply(&target{}, NewBag("value_range", Tuple(1, 2, 3)))
	assert.ErrorIs(t, err, uierrors.ErrType)
	err = rule.Apply(&target{}, NewBag("value_range", Tuple(1, "x")))
	assert.ErrorIs(t, err, uierrors.ErrType)
	err = rule.Apply(&target{}, NewBag("value_range", 3))
	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestCheckedValidatesWithTag(t *testing.T) {
	rule := Checked("count", (*target).SetCount, "gt=0")

	tg := &target{}
	require.NoError(t, rule.Apply(tg, NewBag("count", 3)))
	assert.Equal(t, 3, tg.count)

	err := rule.Apply(tg, NewBag("count", 0))
	assert.ErrorIs(t, err, uierrors.ErrValue)
	assert.Contains(t, err.Error(), "must be positive")
	assert.Equal(t, 3, tg.count)

	err = rule.Apply(tg, NewBag("count", "3"))
	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestSlotRequiresCallable(t *testing.T) {
	rule := Slot("on_clicked", (*target).ConnectClicked)

	fired := 0
	tg := &target{}
	require.NoError(t, rule.Apply(tg, NewBag("on_clicked", func() { fired++ })))
	require.NotNil(t, tg.onClick)
	tg.onClick()
	assert.Equal(t, 1, fired)

	err := rule.Apply(&target{}, NewBag("on_clicked", "nope"))
	require.ErrorIs(t, err, uierrors.ErrType)
	assert.Contains(t, err.Error(), "on_clicked: must be a callable")

	err = rule.Apply(&target{}, NewBag("on_clicked", func(int) {}))
	assert.ErrorIs(t, err, uierrors.ErrType)

	var nilSlot func()
	tg = &target{}
	require.NoError(t, rule.Apply(tg, NewBag("on_clicked", nilSlot)))
	assert.Empty(t, tg.calls)
}

func TestFlagAndCall(t *testing.T) {
	tg := &target{}
	require.NoError(t, Flag("show", (*target).Show).Apply(tg, NewBag("show", false)))
	assert.Empty(t, tg.calls)
	require.NoError(t, Flag("show", (*target).Show).Apply(tg, NewBag("show", true)))
	require.NoError(t, Call("show", (*target).Show).Apply(tg, nil))
	assert.Equal(t, []string{"show", "show"}, tg.calls)

	err := Flag("show", (*target).Show).Apply(tg, NewBag("show", 1))
	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestDefaultAppliesWhenAbsent(t *testing.T) {
	rule := Default(Attr("count", (*target).SetCount), 7)

	tg := &target{}
	require.NoError(t, rule.Apply(tg, NewBag()))
	assert.Equal(t, 7, tg.count)

	require.NoError(t, rule.Apply(tg, NewBag("count", 2)))
	assert.Equal(t, 2, tg.count)
}

func TestSizeChecksOrderAfterApplying(t *testing.T) {
	tg := &target{}
	err := Size[*target]().Apply(tg, NewBag("min_width", 10, "max_width", 5))

	require.ErrorIs(t, err, uierrors.ErrValue)
	assert.Contains(t, err.Error(), "min_width cannot be greater than max_width")
	assert.Equal(t, 10, tg.minW)
	assert.Equal(t, 5, tg.maxW)
}

func TestSizeRejectsNegative(t *testing.T) {
	tg := &target{}
	err := Size[*target]().Apply(tg, NewBag("min_height", -1))

	assert.ErrorIs(t, err, uierrors.ErrValue)
	assert.Empty(t, tg.calls)
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	pipeline := NewPipeline(
		Text[*target](),
		Size[*target](),
		Attr("count", (*target).SetCount),
	)
	tg := &target{}

	err := pipeline.Apply(tg, NewBag("text", "a", "min_width", 3, "max_width", 1, "count", 9))
	require.ErrorIs(t, err, uierrors.ErrValue)
	assert.Equal(t, []string{"text", "min_width", "max_width"}, tg.calls)
	assert.Zero(t, tg.count)
}

func TestPipelineThenAndKeys(t *testing.T) {
	base := NewPipeline(ObjectName[*target](), Size[*target]())
	extended := base.Then(Text[*target](), ObjectName[*target]())

	assert.Len(t, base.Rules(), 2)
	assert.Equal(t,
		[]string{"object_name", "min_width", "max_width", "min_height", "max_height", "text"},
		extended.Keys())
}

func TestWindowOps(t *testing.T) {
	rule := WindowOps[*target]()

	tg := &target{}
	require.NoError(t, rule.Apply(tg, NewBag("window_size", Tuple(80, 24), "window_title", "Demo")))
	assert.Equal(t, 80, tg.w)
	assert.Equal(t, 24, tg.h)
	assert.Equal(t, "Demo", tg.title)

	assert.ErrorIs(t, rule.Apply(&target{}, NewBag("window_size", 80)), uierrors.ErrType)
	assert.ErrorIs(t, rule.Apply(&target{}, NewBag("window_size", Tuple(0, 24))), uierrors.ErrValue)
	assert.ErrorIs(t, rule.Apply(&target{}, NewBag("window_title", 3)), uierrors.ErrType)
}

func TestIconRule(t *testing.T) {
	rule := Icon[*target]()

	tg := &target{}
	require.NoError(t, rule.Apply(tg, NewBag("icon", "ma-save-black", "icon_size", Tuple(16, 16))))
	assert.Equal(t, "ma-save-black", tg.icon)
	assert.Equal(t, 16, tg.iw)

	tg = &target{}
	require.NoError(t, rule.Apply(tg, NewBag("icon_size", Tuple(16, 16))))
	assert.Empty(t, tg.calls)

	assert.ErrorIs(t, rule.Apply(&target{}, NewBag("icon", "xx-foo")), uierrors.ErrValue)
}

func TestTooltipRules(t *testing.T) {
	pipeline := NewPipeline(Tooltip[*target](), TooltipDuration[*target]())
	tg := &target{}

	require.NoError(t, pipeline.Apply(tg, NewBag("tooltip", "hint", "tooltip_duration_ms", 1500)))
	assert.Equal(t, "hint", tg.tip)
	assert.Equal(t, 1500, tg.tipDuration)
}
