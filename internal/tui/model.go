// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-search/internal/app"
	"github.com/MKhiriev/go-pass-search/internal/service"
	"github.com/MKhiriev/go-pass-search/models"
)

const (
	queryPlaceholder = "search entries, start with \"otp\" for a code"
	maxNameWidth     = 60
)

type model struct {
	ctx       context.Context
	search    service.SearchProvider
	notes     <-chan models.Notification
	buildInfo models.AppBuildInfo

	input   textinput.Model
	spinner spinner.Model

	// seq numbers the searches. Only the results of search seq are shown.
	seq       int
	searching bool
	terms     []string
	metas     []models.ResultMeta
	cursor    int

	status      string
	statusError bool
	showAbout   bool
}

func newModel(ctx context.Context, search service.SearchProvider, notes <-chan models.Notification, info models.AppBuildInfo, initialTerms []string) model {
	input := textinput.New()
	input.Placeholder = queryPlaceholder
	input.Prompt = "> "
	input.SetValue(strings.Join(initialTerms, " "))
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:       ctx,
		search:    search,
		notes:     notes,
		buildInfo: info,
		input:     input,
		spinner:   sp,
		seq:       1,
		searching: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForNotification(m.notes),
		m.searchCmd(m.seq, strings.Fields(m.input.Value())),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case searchDoneMsg:
		if msg.seq < m.seq {
			return m, nil
		}
		m.searching = false
		m.terms = msg.terms
		m.metas = msg.metas
		if m.cursor >= len(m.metas) {
			m.cursor = max(len(m.metas)-1, 0)
		}
		return m, nil

	case activatedMsg:
		m.status = fmt.Sprintf("Copying %s", msg.id)
		m.statusError = false
		return m, nil

	case notificationMsg:
		m.status = formatNotification(msg.note)
		m.statusError = !isSuccess(msg.note)
		return m, waitForNotification(m.notes)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showAbout {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showAbout = false
			return m, nil
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit), key.Matches(msg, keys.esc):
		return m, tea.Quit

	case key.Matches(msg, keys.buildInfo):
		m.showAbout = true
		return m, nil

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.cursor < len(m.metas)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		if len(m.metas) == 0 {
			return m, nil
		}
		return m, m.activateCmd(m.metas[m.cursor].ID, m.terms)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.seq++
	m.searching = true
	m.cursor = 0
	return m, tea.Batch(cmd, m.searchCmd(m.seq, strings.Fields(m.input.Value())))
}

func (m model) View() string {
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	query := models.ParseQuery(strings.Fields(m.input.Value()))
	if query.Mode == models.ModeOTP {
		b.WriteString(modeStyle.Render("OTP mode"))
		b.WriteString("\n\n")
	}

	switch {
	case m.searching && len(m.metas) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(" searching")
	case len(m.metas) == 0:
		b.WriteString("no matching entries")
	default:
		for i, meta := range m.metas {
			line := fitText(meta.Name, maxNameWidth)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusError {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	page := renderPage(
		titleStyle.Render("PASSWORD STORE"),
		b.String(),
		"↑/↓: move | enter: copy | f1: about | esc: quit",
	)
	return appStyle.Render(page)
}

func (m model) searchCmd(seq int, terms []string) tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		ids := search.InitialResultSet(ctx, terms)
		return searchDoneMsg{seq: seq, terms: terms, metas: search.ResultMetas(ctx, ids)}
	}
}

func (m model) activateCmd(id string, terms []string) tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		search.ActivateResult(ctx, id, terms, 0)
		return activatedMsg{id: id}
	}
}

func waitForNotification(notes <-chan models.Notification) tea.Cmd {
	if notes == nil {
		return nil
	}
	return func() tea.Msg {
		return notificationMsg{note: <-notes}
	}
}

func formatNotification(n models.Notification) string {
	if n.Body == "" {
		return n.Summary
	}
	return n.Summary + ": " + n.Body
}

func isSuccess(n models.Notification) bool {
	return n.Body == app.MsgPasswordCopied || n.Body == app.MsgOtpCopied
}
