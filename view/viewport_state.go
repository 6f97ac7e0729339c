package view

// ViewportState is a host-facing snapshot of the view camera.
type ViewportState struct {
	// TopLine is the 1-based line drawn on screen row 0.
	TopLine int
	// VisibleRows is the number of content rows.
	VisibleRows int

	ScrollTop    float64
	ScrollLeft   float64
	MaxLineWidth int
	Animating    bool
	// DeferredPending is set while a width or monospace pass waits for its
	// delay.
	DeferredPending bool
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopLine:      m.firstRowLine(),
		VisibleRows:  m.frameHeight(),
		ScrollTop:    m.layout.ScrollTop(),
		ScrollLeft:   m.layout.ScrollLeft(),
		MaxLineWidth: m.ctrl.MaxLineWidth(),
		Animating:    m.layout.Animating(),

		DeferredPending: m.ctrl.DeferredPending(),
	}
}
