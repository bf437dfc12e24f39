package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"clarity/internal/session"
)

// First-launch onboarding: a short wizard that fills the user profile. It
// only feeds the shell (greeting, isNewUser); the task list never reads it.
type onboardingStep int

const (
	stepWelcome onboardingStep = iota
	stepName
	stepUsage
)

type onboardingState struct {
	step  onboardingStep
	name  string
	usage string
}

func (m Model) updateOnboarding(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ob := m.onboarding
	if key == m.cfg.Keys.Cancel || key == "esc" {
		return m.finishOnboarding(true)
	}

	switch ob.step {
	case stepWelcome:
		if key == m.cfg.Keys.Confirm || key == "enter" {
			ob.step = stepName
			m.input.Placeholder = "Your name"
			m.input.SetValue("")
			m.input.Focus()
		}
		return m, nil
	case stepName:
		if key == m.cfg.Keys.Confirm || key == "enter" {
			ob.name = strings.TrimSpace(m.input.Value())
			ob.step = stepUsage
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case stepUsage:
		switch key {
		case "1":
			ob.usage = "myself"
			return m.finishOnboarding(false)
		case "2":
			ob.usage = "team"
			return m.finishOnboarding(false)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) finishOnboarding(skipped bool) (tea.Model, tea.Cmd) {
	ob := m.onboarding
	m.profile = session.Profile{
		Username:       ob.name,
		Usage:          ob.usage,
		OnboardingDone: true,
	}
	if m.sessions != nil {
		if err := m.sessions.Save(m.profile); err != nil {
			m.log.Logf("[WARN] could not save profile: %v", err)
		}
	}
	m.onboarding = nil
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	switch {
	case skipped:
		m.status = "Onboarding skipped. Press 'a' to add a task."
	case m.profile.Username != "":
		m.status = fmt.Sprintf("Welcome, %s! Press 'a' to add your first task.", m.profile.Username)
	default:
		m.status = "Welcome! Press 'a' to add your first task."
	}
	return m, nil
}

func (m Model) viewOnboarding() string {
	var b strings.Builder
	ob := m.onboarding
	switch ob.step {
	case stepWelcome:
		b.WriteString(titleStyle.Render("Welcome to Clarity"))
		b.WriteString("\n\n")
		b.WriteString("Clarity can help you...\n")
		b.WriteString("  • Organize the everyday chaos\n")
		b.WriteString("  • Focus on the right things\n")
		b.WriteString("  • Achieve goals and finish projects\n\n")
		b.WriteString("Step 1 of 3 • enter to continue, esc to skip\n")
	case stepName:
		b.WriteString(titleStyle.Render("What's your name?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString("Step 2 of 3 • enter to continue, esc to skip\n")
	case stepUsage:
		b.WriteString(titleStyle.Render("How do you plan to use Clarity?"))
		b.WriteString("\n\n")
		b.WriteString("  1. For myself — organize personal tasks and projects\n")
		b.WriteString("  2. With my team — a simple yet powerful tool for work\n\n")
		b.WriteString("Step 3 of 3 • press 1 or 2, esc to skip\n")
	}
	return b.String()
}
