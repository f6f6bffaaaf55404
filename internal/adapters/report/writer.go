// Package report renders run reports for the presentation layer and
// writes the per-run summary artifacts into the data directory.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mendmd/internal/domain"
)

// Artifact filenames under the data directory, overwritten each run.
const (
	SummaryFile = "latest_summary.json"
	ReportFile  = "latest_report.md"
)

// RenderMarkdown renders a full run report as markdown.
func RenderMarkdown(r *domain.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run report\n\n")
	fmt.Fprintf(&b, "- Root: %s\n", r.Root)
	fmt.Fprintf(&b, "- Categories: %s\n", domain.CategoryLabel(r.Categories))
	fmt.Fprintf(&b, "- Scanned: %d files (%d documents, %d attachments)\n",
		r.ScannedFiles, r.DocumentCount, r.AttachmentCount)
	fmt.Fprintf(&b, "- Renamed: %d of %d candidates\n", r.RenamedCount, r.RenameCandidates)
	fmt.Fprintf(&b, "- Links fixed: %d in %d documents, skipped: %d\n",
		r.LinksFixed, r.DocumentsChanged, r.LinksSkipped)
	fmt.Fprintf(&b, "- Duration: %s\n", r.Duration.Round(1e6))

	b.WriteString("\n## Duplicate names\n\n")
	b.WriteString(DuplicateTable(r.Duplicates))

	if len(r.InvalidRefs) > 0 {
		b.WriteString("\n## Broken references\n\n")
		b.WriteString("| Document | Written path |\n| --- | --- |\n")
		for _, ref := range r.InvalidRefs {
			fmt.Fprintf(&b, "| `%s` | %s |\n", ref.Document, ref.WrittenPath)
		}
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n## Errors\n\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	return b.String()
}

// DuplicateTable renders the duplicate-basename groups as a markdown
// table, or a short note when there are none.
func DuplicateTable(groups []domain.DuplicateGroup) string {
	if len(groups) == 0 {
		return "No duplicate filenames found.\n"
	}
	var b strings.Builder
	b.WriteString("| Name | Paths |\n| --- | --- |\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "| `%s` | %s |\n", g.Name, strings.Join(g.Paths, "<br>"))
	}
	return b.String()
}

// WriteArtifacts writes latest_summary.json and latest_report.md into
// dataDir, replacing the previous run's pair.
func WriteArtifacts(dataDir string, r *domain.RunReport) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dataDir, SummaryFile), data, 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, ReportFile), []byte(RenderMarkdown(r)), 0644)
}
