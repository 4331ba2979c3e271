package layout

// Spacer is empty space with a natural size that may grow along either
// axis.
type Spacer struct {
	width   int
	height  int
	hExpand bool
	vExpand bool
}

// NewSpacer creates a spacer of the given natural size.
func NewSpacer(width, height int, hExpand, vExpand bool) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0), hExpand: hExpand, vExpand: vExpand}
}

// HSpacer creates a spacer that grows horizontally.
func HSpacer() *Spacer { return NewSpacer(1, 1, true, false) }

// VSpacer creates a spacer that grows vertically.
func VSpacer() *Spacer { return NewSpacer(1, 1, false, true) }

// SizeHint returns the natural size.
func (s *Spacer) SizeHint() (int, int) { return s.width, s.height }

// Expanding reports the axes the spacer grows along.
func (s *Spacer) Expanding() (horizontal, vertical bool) { return s.hExpand, s.vExpand }

// View renders the natural size as blank cells.
func (s *Spacer) View() string { return blank(s.width, s.height) }
