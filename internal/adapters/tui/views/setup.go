package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mendmd/internal/adapters/tui/styles"
	"mendmd/internal/config"
	"mendmd/internal/domain"
)

// StartRunMsg asks the app to run the pipeline with the chosen settings.
type StartRunMsg struct {
	Root       string
	Categories []domain.Category
}

// setup focus zones, cycled with tab
const (
	focusRoot = iota
	focusRecent
	focusCategories
)

// SetupModel collects the vault root and category selection before a run.
type SetupModel struct {
	root    textinput.Model
	recent  []config.Project
	checked map[domain.Category]bool

	focus     int
	recentIdx int
	catIdx    int
	errMsg    string

	width  int
	height int
}

// NewSetupModel builds the setup view, pre-filling from the most recent
// project if there is one.
func NewSetupModel(recent []config.Project) *SetupModel {
	input := textinput.New()
	input.Placeholder = "/path/to/vault"
	input.Focus()

	m := &SetupModel{
		root:    input,
		recent:  recent,
		checked: map[domain.Category]bool{domain.DefaultRenameCategory: true},
	}
	if len(recent) > 0 {
		m.applyProject(recent[0])
	}
	return m
}

func (m *SetupModel) applyProject(p config.Project) {
	m.root.SetValue(p.Root)
	if len(p.Categories) > 0 {
		if cats, err := domain.NormalizeCategories(p.Categories); err == nil {
			m.checked = make(map[domain.Category]bool)
			for _, c := range cats {
				m.checked[c] = true
			}
		}
	}
}

// Init starts the cursor blink.
func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize stores the window dimensions.
func (m *SetupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows a validation error under the form.
func (m *SetupModel) SetError(msg string) {
	m.errMsg = msg
}

var setupKeys = struct {
	Tab    key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}{
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// Update handles key input for the setup form.
func (m *SetupModel) Update(msg tea.Msg) (*SetupModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.root, cmd = m.root.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, setupKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, setupKeys.Submit):
		return m, m.submit()

	case key.Matches(keyMsg, setupKeys.Tab):
		m.nextFocus()
		return m, nil
	}

	switch m.focus {
	case focusRecent:
		switch {
		case key.Matches(keyMsg, setupKeys.Up):
			if m.recentIdx > 0 {
				m.recentIdx--
			}
		case key.Matches(keyMsg, setupKeys.Down):
			if m.recentIdx < len(m.recent)-1 {
				m.recentIdx++
			}
		case key.Matches(keyMsg, setupKeys.Toggle):
			m.applyProject(m.recent[m.recentIdx])
		}
		return m, nil

	case focusCategories:
		switch {
		case key.Matches(keyMsg, setupKeys.Up):
			if m.catIdx > 0 {
				m.catIdx--
			}
		case key.Matches(keyMsg, setupKeys.Down):
			if m.catIdx < len(domain.RenameCategoryOrder)-1 {
				m.catIdx++
			}
		case key.Matches(keyMsg, setupKeys.Toggle):
			cat := domain.RenameCategoryOrder[m.catIdx]
			m.checked[cat] = !m.checked[cat]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.root, cmd = m.root.Update(msg)
	return m, cmd
}

func (m *SetupModel) nextFocus() {
	m.root.Blur()
	for {
		m.focus = (m.focus + 1) % 3
		if m.focus == focusRecent && len(m.recent) == 0 {
			continue
		}
		break
	}
	if m.focus == focusRoot {
		m.root.Focus()
	}
}

func (m *SetupModel) submit() tea.Cmd {
	root := strings.TrimSpace(m.root.Value())
	if root == "" {
		m.errMsg = "vault root is required"
		return nil
	}

	var selected []string
	for _, cat := range domain.RenameCategoryOrder {
		if m.checked[cat] {
			selected = append(selected, string(cat))
		}
	}
	cats, err := domain.NormalizeCategories(selected)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	return func() tea.Msg {
		return StartRunMsg{Root: root, Categories: cats}
	}
}

// View renders the setup form.
func (m *SetupModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("mendmd"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("rename attachments, repair markdown links"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Vault root"))
	b.WriteString("\n")
	if m.focus == focusRoot {
		b.WriteString(styles.InputFocused.Render(m.root.View()))
	} else {
		b.WriteString(styles.InputField.Render(m.root.View()))
	}
	b.WriteString("\n\n")

	if len(m.recent) > 0 {
		b.WriteString(styles.InputLabel.Render("Recent vaults"))
		b.WriteString("\n")
		for i, p := range m.recent {
			cursor := "  "
			line := p.Root
			if m.focus == focusRecent && i == m.recentIdx {
				cursor = styles.Cursor.Render("> ")
			} else {
				line = styles.MutedText.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.InputLabel.Render("Rename categories"))
	b.WriteString("\n")
	for i, cat := range domain.RenameCategoryOrder {
		cursor := "  "
		if m.focus == focusCategories && i == m.catIdx {
			cursor = styles.Cursor.Render("> ")
		}
		box := styles.Unchecked.Render("[ ]")
		if m.checked[cat] {
			box = styles.Checked.Render("[x]")
		}
		b.WriteString(cursor + box + " " + string(cat) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + styles.ErrorMsg.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	help := []string{
		styles.HelpKey.Render("tab") + " " + styles.HelpDesc.Render("next section"),
		styles.HelpKey.Render("space") + " " + styles.HelpDesc.Render("select"),
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("start"),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("quit"),
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(b.String())
}
