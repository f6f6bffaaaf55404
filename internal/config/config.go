package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const projectsFile = "projects.json"

// DataDir returns the directory for state records, reports, and history.
// MENDMD_DATA_DIR overrides the XDG default.
func DataDir() string {
	if env := os.Getenv("MENDMD_DATA_DIR"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mendmd")
}

// Project is a remembered vault root with its last category selection.
type Project struct {
	Root       string    `json:"root"`
	Categories []string  `json:"categories,omitempty"`
	LastRun    time.Time `json:"last_run,omitempty"`
}

// Projects is the persisted recent-projects list, newest first.
type Projects struct {
	Projects []Project `json:"projects"`
}

// LoadProjects reads the recent-projects file from dataDir. A missing
// file is an empty list, not an error.
func LoadProjects(dataDir string) (*Projects, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, projectsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Projects{}, nil
		}
		return nil, err
	}
	var p Projects
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProjects writes the list back, creating dataDir if needed.
func SaveProjects(dataDir string, p *Projects) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, projectsFile), data, 0644)
}

const maxRememberedProjects = 10

// Remember moves (or inserts) a project at the front of the list.
func (p *Projects) Remember(root string, categories []string) {
	entry := Project{Root: root, Categories: categories, LastRun: time.Now()}
	out := []Project{entry}
	for _, existing := range p.Projects {
		if existing.Root == root {
			continue
		}
		out = append(out, existing)
		if len(out) == maxRememberedProjects {
			break
		}
	}
	p.Projects = out
}
