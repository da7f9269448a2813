package alert

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifier_Body(t *testing.T) {
	view := NewView(testContent(), Actions{})
	m := NewModifier(view)

	tests := []struct {
		name        string
		state       State
		wantOverlay bool
	}{
		{name: "visible state overlays", state: NewState(false), wantOverlay: true},
		{name: "suppressed state passes through", state: NewState(true), wantOverlay: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Body("screen", tt.state)

			switch got := p.(type) {
			case Overlaid:
				assert.True(t, tt.wantOverlay)
				assert.Equal(t, "screen", got.Content)
				assert.Equal(t, view.Content(), got.Alert.Content())
			case Plain:
				assert.False(t, tt.wantOverlay)
				assert.Equal(t, "screen", got.Content)
			default:
				t.Fatalf("unexpected presentation %T", p)
			}
		})
	}
}

func TestModifier_BodyDoesNotInvokeActions(t *testing.T) {
	c := &counter{}
	m := NewModifier(NewView(testContent(), c.actions(), WithCloseButton(true)))

	_ = m.Body("screen", NewState(false)).Render(80, 24)
	_ = m.Body("screen", NewState(true)).Render(80, 24)

	assert.Zero(t, c.confirms)
	assert.Zero(t, c.dismisses)
}

func TestPlain_RenderIsUnchanged(t *testing.T) {
	content := "line one\nline two"
	assert.Equal(t, content, Plain{Content: content}.Render(80, 24))
}

func TestOverlaid_Render(t *testing.T) {
	o := Overlaid{
		Content: "background\nsecond line",
		Alert:   NewView(testContent(), Actions{}, WithCloseButton(true)),
	}

	out := ansi.Strip(o.Render(80, 24))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 24)
	for i, line := range lines {
		assert.Equal(t, 80, ansi.StringWidth(line), "line %d", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "background"))
	assert.Contains(t, out, testContent().Message)
	assert.Contains(t, out, testContent().ConfirmLabel)
	assert.Contains(t, out, testContent().DismissLabel)
}

func TestOverlaid_AlertIsCentred(t *testing.T) {
	o := Overlaid{Alert: NewView(testContent(), Actions{})}
	frame := o.Alert.Layout(80 - 2*overlayMargin)

	x, y := o.AlertOrigin(80, 24)

	assert.Equal(t, (80-frame.Width)/2, x)
	assert.Equal(t, (24-frame.Height)/2, y)
}

func TestOverlaid_AlertOriginOnTinyScreen(t *testing.T) {
	o := Overlaid{Alert: NewView(testContent(), Actions{})}

	x, y := o.AlertOrigin(10, 3)

	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestOverlaid_ButtonAt(t *testing.T) {
	o := Overlaid{Alert: NewView(testContent(), Actions{}, WithCloseButton(true))}
	frame := o.Alert.Layout(100 - 2*overlayMargin)
	ox, oy := o.AlertOrigin(100, 30)

	for _, b := range []Button{ButtonConfirm, ButtonDismiss, ButtonClose} {
		r, ok := frame.Hit(b)
		require.True(t, ok)

		got, ok := o.ButtonAt(100, 30, ox+r.X, oy+r.Y)
		require.True(t, ok)
		assert.Equal(t, b, got)
	}

	_, ok := o.ButtonAt(100, 30, 0, 0)
	assert.False(t, ok)
}
