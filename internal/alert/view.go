// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinWidth is the narrowest box the view lays itself out in.
	MinWidth = 28
	// MaxWidth caps the box width on wide terminals.
	MaxWidth = 64

	closeLabel = "✕"
	buttonGap  = "  "
)

// Button identifies a tappable control of the alert.
type Button int

const (
	ButtonNone Button = iota
	ButtonConfirm
	ButtonDismiss
	ButtonClose
)

func (b Button) String() string {
	switch b {
	case ButtonConfirm:
		return "confirm"
	case ButtonDismiss:
		return "dismiss"
	case ButtonClose:
		return "close"
	default:
		return "none"
	}
}

// Actions holds the procedures invoked when the user taps a button.
// They run only at tap time.
type Actions struct {
	Confirm func()
	Dismiss func()
}

// Content is the static text of the alert.
type Content struct {
	Message      string
	ConfirmLabel string
	DismissLabel string
}

// View renders a message with confirm and dismiss buttons and, optionally,
// a close cross that acts as dismiss. A View is an immutable value; the
// focus helpers return modified copies.
type View struct {
	content   Content
	actions   Actions
	showClose bool
	focus     Button
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithCloseButton adds the close cross in the top-right corner.
func WithCloseButton(show bool) ViewOption {
	return func(v *View) {
		v.showClose = show
	}
}

// WithFocus sets the focused button. Buttons that are not rendered fall
// back to confirm.
func WithFocus(b Button) ViewOption {
	return func(v *View) {
		v.focus = b
	}
}

// NewView builds a View. Nil actions are replaced with no-ops.
func NewView(content Content, actions Actions, opts ...ViewOption) View {
	if actions.Confirm == nil {
		actions.Confirm = func() {}
	}
	if actions.Dismiss == nil {
		actions.Dismiss = func() {}
	}

	v := View{
		content: content,
		actions: actions,
		focus:   ButtonConfirm,
	}
	for _, opt := range opts {
		opt(&v)
	}
	if !v.has(v.focus) {
		v.focus = ButtonConfirm
	}

	return v
}

// Content returns the text the view renders.
func (v View) Content() Content {
	return v.content
}

// Buttons returns the rendered buttons in focus order.
func (v View) Buttons() []Button {
	buttons := []Button{ButtonConfirm, ButtonDismiss}
	if v.showClose {
		buttons = append(buttons, ButtonClose)
	}
	return buttons
}

// Focused returns the button that TapFocused would tap.
func (v View) Focused() Button {
	return v.focus
}

// FocusNext returns a copy of v with focus moved to the next button,
// wrapping around.
func (v View) FocusNext() View {
	return v.moveFocus(1)
}

// FocusPrev returns a copy of v with focus moved to the previous button,
// wrapping around.
func (v View) FocusPrev() View {
	return v.moveFocus(-1)
}

// Tap invokes the action bound to b and reports whether one ran.
// Exactly one action runs per successful tap; close runs Dismiss.
func (v View) Tap(b Button) bool {
	switch {
	case b == ButtonConfirm:
		v.actions.Confirm()
	case b == ButtonDismiss:
		v.actions.Dismiss()
	case b == ButtonClose && v.showClose:
		v.actions.Dismiss()
	default:
		return false
	}
	return true
}

// TapFocused taps the focused button.
func (v View) TapFocused() bool {
	return v.Tap(v.focus)
}

// Render lays the view out in the given width and returns the box.
func (v View) Render(width int) string {
	return v.Layout(width).Box
}

// Layout lays the view out in width columns, clamped to
// [MinWidth, MaxWidth], and records where each button landed.
func (v View) Layout(width int) Frame {
	boxWidth := min(max(width, MinWidth), MaxWidth)
	contentWidth := boxWidth - boxStyle.GetHorizontalFrameSize()

	closeRow := ""
	closeWidth := 0
	if v.showClose {
		style := closeStyle
		if v.focus == ButtonClose {
			style = style.Reverse(true).Bold(true)
		}
		label := style.Render(closeLabel)
		closeWidth = lipgloss.Width(label)
		closeRow = strings.Repeat(" ", max(contentWidth-closeWidth, 0)) + label
	}

	message := messageStyle.Width(contentWidth).Render(v.content.Message)
	messageHeight := lipgloss.Height(message)

	confirm := v.buttonStyle(ButtonConfirm).Render(v.content.ConfirmLabel)
	dismiss := v.buttonStyle(ButtonDismiss).Render(v.content.DismissLabel)
	row := lipgloss.JoinHorizontal(lipgloss.Top, confirm, buttonGap, dismiss)
	indent := max((contentWidth-lipgloss.Width(row))/2, 0)
	row = lipgloss.NewStyle().PaddingLeft(indent).Render(row)

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, closeRow, message, "", row))

	originX := boxStyle.GetBorderLeftSize() + boxStyle.GetPaddingLeft()
	originY := boxStyle.GetBorderTopSize() + boxStyle.GetPaddingTop()
	buttonsY := originY + 1 + messageHeight + 1
	confirmWidth := lipgloss.Width(confirm)

	hits := map[Button]Rect{
		ButtonConfirm: {
			X:      originX + indent,
			Y:      buttonsY,
			Width:  confirmWidth,
			Height: lipgloss.Height(confirm),
		},
		ButtonDismiss: {
			X:      originX + indent + confirmWidth + lipgloss.Width(buttonGap),
			Y:      buttonsY,
			Width:  lipgloss.Width(dismiss),
			Height: lipgloss.Height(dismiss),
		},
	}
	if v.showClose {
		hits[ButtonClose] = Rect{
			X:      originX + max(contentWidth-closeWidth, 0),
			Y:      originY,
			Width:  closeWidth,
			Height: 1,
		}
	}

	return Frame{
		Box:    box,
		Width:  lipgloss.Width(box),
		Height: lipgloss.Height(box),
		hits:   hits,
	}
}

func (v View) buttonStyle(b Button) lipgloss.Style {
	style := dismissButtonStyle
	if b == ButtonConfirm {
		style = confirmButtonStyle
	}
	if v.focus == b {
		style = focused(style)
	}
	return style
}

func (v View) has(b Button) bool {
	for _, candidate := range v.Buttons() {
		if candidate == b {
			return true
		}
	}
	return false
}

func (v View) moveFocus(step int) View {
	buttons := v.Buttons()
	idx := 0
	for i, b := range buttons {
		if b == v.focus {
			idx = i
			break
		}
	}
	v.focus = buttons[(idx+step+len(buttons))%len(buttons)]
	return v
}

// Rect is a cell rectangle, relative to whatever the caller anchors it to.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Frame is a laid-out View: the rendered box plus button positions
// relative to the box's top-left corner.
type Frame struct {
	Box    string
	Width  int
	Height int

	hits map[Button]Rect
}

// Hit returns the rectangle of b.
func (f Frame) Hit(b Button) (Rect, bool) {
	r, ok := f.hits[b]
	return r, ok
}

// ButtonAt returns the button under the cell (x, y).
func (f Frame) ButtonAt(x, y int) (Button, bool) {
	for b, r := range f.hits {
		if r.Contains(x, y) {
			return b, true
		}
	}
	return ButtonNone, false
}
