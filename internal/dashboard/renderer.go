package dashboard

// FrameWriter is the part of a terminal screen a ScreenRenderer draws to.
type FrameWriter interface {
	Size() (cols, rows int, err error)
	Draw(frame string) error
}

// ScreenRenderer renders frames through a View at the screen's current size.
type ScreenRenderer struct {
	screen FrameWriter
	view   View
}

// NewScreenRenderer creates a renderer drawing to screen.
func NewScreenRenderer(screen FrameWriter, view View) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, view: view}
}

// Render re-reads the screen size so the layout follows resizes.
func (r *ScreenRenderer) Render(f Frame) error {
	cols, rows, err := r.screen.Size()
	if err != nil {
		return err
	}
	return r.screen.Draw(r.view.Render(f, cols, rows))
}
