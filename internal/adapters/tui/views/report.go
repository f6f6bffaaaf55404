package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"mendmd/internal/adapters/tui/styles"
	"mendmd/internal/domain"
)

// NewRunMsg asks the app to return to the setup form.
type NewRunMsg struct{}

// ReportModel shows the outcome of a finished run.
type ReportModel struct {
	report     *domain.RunReport
	runErr     error
	reportPath string
	status     string

	width  int
	height int
}

// NewReportModel builds the report view. reportPath is the rendered
// markdown artifact on disk, offered for clipboard copy.
func NewReportModel(report *domain.RunReport, runErr error, reportPath string) *ReportModel {
	return &ReportModel{report: report, runErr: runErr, reportPath: reportPath}
}

// SetSize stores the window dimensions.
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key input on the report screen.
func (m *ReportModel) Update(msg tea.Msg) (*ReportModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "n":
		return m, func() tea.Msg { return NewRunMsg{} }
	case "c":
		if m.reportPath == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(m.reportPath); err != nil {
			m.status = styles.ErrorMsg.Render("clipboard: " + err.Error())
		} else {
			m.status = styles.Success.Render("report path copied")
		}
		return m, nil
	}
	return m, nil
}

// View renders the report summary.
func (m *ReportModel) View() string {
	var b strings.Builder

	if m.runErr != nil {
		b.WriteString(styles.ErrorMsg.Render("Run aborted"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(m.runErr.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(styles.Title.Render("Run complete"))
		b.WriteString("\n")
	}

	if r := m.report; r != nil {
		fmt.Fprintf(&b, "%s %s\n\n", styles.InputLabel.Render("Vault"), r.Root)
		fmt.Fprintf(&b, "Scanned      %d files (%d documents, %d attachments)\n",
			r.ScannedFiles, r.DocumentCount, r.AttachmentCount)
		fmt.Fprintf(&b, "Renamed      %d of %d candidates\n", r.RenamedCount, r.RenameCandidates)
		fmt.Fprintf(&b, "Links fixed  %d in %d documents\n", r.LinksFixed, r.DocumentsChanged)
		if r.LinksSkipped > 0 {
			fmt.Fprintf(&b, "%s\n", styles.WarningMsg.Render(
				fmt.Sprintf("Skipped      %d unresolvable references", r.LinksSkipped)))
		}
		if len(r.Duplicates) > 0 {
			fmt.Fprintf(&b, "%s\n", styles.WarningMsg.Render(
				fmt.Sprintf("Duplicates   %d filename groups", len(r.Duplicates))))
			for _, g := range r.Duplicates {
				fmt.Fprintf(&b, "  %s\n", g.Name)
				for _, p := range g.Paths {
					b.WriteString(styles.MutedText.Render("    "+p) + "\n")
				}
			}
		}
		if len(r.Errors) > 0 {
			fmt.Fprintf(&b, "%s\n", styles.ErrorMsg.Render(
				fmt.Sprintf("Errors       %d", len(r.Errors))))
			for _, e := range r.Errors {
				b.WriteString(styles.MutedText.Render("  "+e) + "\n")
			}
		}
		fmt.Fprintf(&b, "Duration     %s\n", r.Duration.Round(1e6))
	}

	if m.reportPath != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Full report: " + m.reportPath))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	help := []string{
		styles.HelpKey.Render("c") + " " + styles.HelpDesc.Render("copy report path"),
		styles.HelpKey.Render("n") + " " + styles.HelpDesc.Render("new run"),
		styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"),
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(b.String())
}
