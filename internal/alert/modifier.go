// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

// overlayMargin keeps the box off the left and right screen edges.
const overlayMargin = 2

// Presentation is what the modifier decided to draw: either [Plain] or
// [Overlaid]. The set of implementations is closed.
type Presentation interface {
	// Render draws the presentation into a width x height screen.
	Render(width, height int) string

	presentation()
}

// Plain is content passed through unchanged.
type Plain struct {
	Content string
}

func (Plain) presentation() {}

// Render returns the content as is.
func (p Plain) Render(_, _ int) string {
	return p.Content
}

// Overlaid is content dimmed behind a centred alert.
type Overlaid struct {
	Content string
	Alert   View
}

func (Overlaid) presentation() {}

// Render dims the content to fill the screen and draws the alert box
// in the middle of it.
func (o Overlaid) Render(width, height int) string {
	frame, x, y := o.place(width, height)
	return placeOverlay(x, y, frame.Box, dim(o.Content, width, height))
}

// AlertOrigin returns the screen cell of the alert box's top-left corner.
func (o Overlaid) AlertOrigin(width, height int) (x, y int) {
	_, x, y = o.place(width, height)
	return x, y
}

// ButtonAt maps a screen cell to the alert button drawn there.
func (o Overlaid) ButtonAt(width, height, x, y int) (Button, bool) {
	frame, ox, oy := o.place(width, height)
	return frame.ButtonAt(x-ox, y-oy)
}

func (o Overlaid) place(width, height int) (Frame, int, int) {
	frame := o.Alert.Layout(width - 2*overlayMargin)
	x := max((width-frame.Width)/2, 0)
	y := max((height-frame.Height)/2, 0)
	return frame, x, y
}

// Modifier wraps content with an alert depending on a [State].
type Modifier struct {
	alert View
}

// NewModifier returns a Modifier that overlays alert.
func NewModifier(alert View) Modifier {
	return Modifier{alert: alert}
}

// Body decides how content is presented: unchanged while the alert is
// suppressed, overlaid by the alert otherwise.
func (m Modifier) Body(content string, state State) Presentation {
	if state.Suppressed() {
		return Plain{Content: content}
	}
	return Overlaid{Content: content, Alert: m.alert}
}
