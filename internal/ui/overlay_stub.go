//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ visible bool }

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Toggle flips visibility even though nothing is drawn.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports the toggle state.
func (o *Overlay) Visible() bool { return o.visible }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
