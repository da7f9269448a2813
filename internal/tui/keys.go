package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	next    key.Binding
	prev    key.Binding
	press   key.Binding
	confirm key.Binding
	dismiss key.Binding
	close   key.Binding
	toggle  key.Binding
	info    key.Binding
	back    key.Binding
	help    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "следующая кнопка")),
	prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "предыдущая кнопка")),
	press:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "нажать")),
	confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "подтвердить")),
	dismiss: key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "отменить")),
	close:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "закрыть")),
	toggle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "показать/скрыть")),
	info:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "версия")),
	back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "подсказки")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
}

// helpKeyMap adapts a fixed set of bindings to help.KeyMap.
type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeyMap) ShortHelp() []key.Binding {
	return h.short
}

func (h helpKeyMap) FullHelp() [][]key.Binding {
	return h.full
}

// screenHelp lists the bindings usable while the alert is hidden.
func (k keyMap) screenHelp() help.KeyMap {
	return helpKeyMap{
		short: []key.Binding{k.press, k.toggle, k.help, k.quit},
		full: [][]key.Binding{
			{k.press, k.toggle},
			{k.info, k.help, k.quit},
		},
	}
}

// alertHelp lists the bindings usable while the alert is shown.
func (k keyMap) alertHelp(withClose bool) help.KeyMap {
	actions := []key.Binding{k.confirm, k.dismiss}
	if withClose {
		actions = append(actions, k.close)
	}

	return helpKeyMap{
		short: append(append([]key.Binding{}, actions...), k.help, k.quit),
		full: [][]key.Binding{
			{k.next, k.prev, k.press},
			actions,
			{k.toggle, k.info, k.help, k.quit},
		},
	}
}
