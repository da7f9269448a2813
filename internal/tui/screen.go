// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/custom-alert/internal/alert"
	"github.com/MKhiriev/custom-alert/internal/config"
	"github.com/MKhiriev/custom-alert/internal/handler"
	"github.com/MKhiriev/custom-alert/internal/logger"
	"github.com/MKhiriev/custom-alert/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Size assumed until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

const (
	statusConfirmed = "Подтверждено"
	statusDismissed = "Отменено"
)

// ScreenModel is the single screen of the application. It owns the alert
// presentation state, draws the toggle button and lays the alert over
// itself while the alert is not suppressed.
//
// All mutations happen inside Update, so a tap and its effect on the state
// complete before the next View.
type ScreenModel struct {
	title       string
	toggleLabel string
	content     alert.Content
	showClose   bool
	buildInfo   models.BuildInfo

	handler handler.AlertHandler
	logger  *logger.Logger

	state alert.State
	focus alert.Button

	width  int
	height int

	status    string
	statusSeq int

	showBuildInfo bool
	help          help.Model
	quitting      bool
}

// NewScreen builds the screen from the client configuration. The alert's
// confirm and dismiss actions are forwarded to h.
func NewScreen(cfg *config.ClientConfig, h handler.AlertHandler, buildInfo models.BuildInfo, log *logger.Logger) *ScreenModel {
	hm := help.New()
	hm.Styles.ShortKey = helpStyle
	hm.Styles.ShortDesc = helpStyle
	hm.Width = defaultWidth

	return &ScreenModel{
		title:       cfg.App.Title,
		toggleLabel: cfg.Alert.ToggleLabel,
		content: alert.Content{
			Message:      cfg.Alert.Message,
			ConfirmLabel: cfg.Alert.ConfirmLabel,
			DismissLabel: cfg.Alert.DismissLabel,
		},
		showClose: cfg.Alert.ShowClose,
		buildInfo: buildInfo,
		handler:   h,
		logger:    log,
		state:     alert.NewState(cfg.App.StartSuppressed),
		focus:     alert.ButtonConfirm,
		width:     defaultWidth,
		height:    defaultHeight,
		help:      hm,
	}
}

// AlertVisible reports whether the alert is currently drawn.
func (m *ScreenModel) AlertVisible() bool {
	return m.state.Visible()
}

// State returns the current presentation state.
func (m *ScreenModel) State() alert.State {
	return m.state
}

// Status returns the transient status line.
func (m *ScreenModel) Status() string {
	return m.status
}

func (m *ScreenModel) Init() tea.Cmd {
	m.logger.Debug().Bool("suppressed", m.state.Suppressed()).Msg("screen mounted")
	return nil
}

func (m *ScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m *ScreenModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	return m.presentation().Render(m.width, m.height)
}

func (m *ScreenModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.toggle):
		m.toggle()
		return m, nil
	}

	if !m.state.Visible() {
		if key.Matches(msg, keys.press) {
			m.toggle()
		}
		return m, nil
	}

	view := m.alertView()
	switch {
	case key.Matches(msg, keys.next):
		m.focus = view.FocusNext().Focused()
	case key.Matches(msg, keys.prev):
		m.focus = view.FocusPrev().Focused()
	case key.Matches(msg, keys.press):
		return m, m.tap(view.Focused())
	case key.Matches(msg, keys.confirm):
		return m, m.tap(alert.ButtonConfirm)
	case key.Matches(msg, keys.dismiss):
		return m, m.tap(alert.ButtonDismiss)
	case key.Matches(msg, keys.close):
		return m, m.tap(alert.ButtonClose)
	}

	return m, nil
}

func (m *ScreenModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch p := m.presentation().(type) {
	case alert.Overlaid:
		if b, ok := p.ButtonAt(m.width, m.height, msg.X, msg.Y); ok {
			return m, m.tap(b)
		}
	case alert.Plain:
		if m.toggleRect().Contains(msg.X, msg.Y) {
			m.toggle()
		}
	}

	return m, nil
}

// tap runs the alert action bound to b.
func (m *ScreenModel) tap(b alert.Button) tea.Cmd {
	m.logger.Debug().Stringer("button", b).Msg("alert button tapped")
	if !m.alertView().Tap(b) {
		return nil
	}

	m.statusSeq++
	return cmdClearStatus(m.statusSeq)
}

func (m *ScreenModel) confirm() {
	m.handler.OnConfirm()
	m.status = statusConfirmed
}

func (m *ScreenModel) dismiss() {
	m.handler.OnDismiss()
	m.state.Suppress()
	m.focus = alert.ButtonConfirm
	m.status = statusDismissed
	m.logger.Debug().Bool("suppressed", m.state.Suppressed()).Msg("alert dismissed")
}

func (m *ScreenModel) toggle() {
	m.state.Toggle()
	m.focus = alert.ButtonConfirm
	m.logger.Debug().Bool("suppressed", m.state.Suppressed()).Msg("alert toggled")
}

// alertView binds the alert to this screen. The actions are method values:
// they run at tap time only.
func (m *ScreenModel) alertView() alert.View {
	return alert.NewView(
		m.content,
		alert.Actions{
			Confirm: m.confirm,
			Dismiss: m.dismiss,
		},
		alert.WithCloseButton(m.showClose),
		alert.WithFocus(m.focus),
	)
}

func (m *ScreenModel) presentation() alert.Presentation {
	return alert.NewModifier(m.alertView()).Body(m.page(), m.state)
}

func (m *ScreenModel) page() string {
	data := m.toggleButton()
	if m.status != "" {
		data += "\n\n" + statusStyle.Render(m.status)
	}

	var hotKeys help.KeyMap = keys.screenHelp()
	if m.state.Visible() {
		hotKeys = keys.alertHelp(m.showClose)
	}

	return appStyle.Render(renderPage(titleStyle.Render(m.title), data, m.help.View(hotKeys)))
}

func (m *ScreenModel) toggleButton() string {
	style := toggleButtonStyle
	if !m.state.Visible() {
		style = toggleButtonFocusedStyle
	}
	return style.Render(m.toggleLabel)
}

// toggleRect is where page() draws the toggle button on screen.
func (m *ScreenModel) toggleRect() alert.Rect {
	button := m.toggleButton()
	return alert.Rect{
		X:      appStyle.GetPaddingLeft() + pageDataIndent,
		Y:      appStyle.GetPaddingTop() + pageDataTop,
		Width:  lipgloss.Width(button),
		Height: lipgloss.Height(button),
	}
}
