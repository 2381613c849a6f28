package domain

import (
	"fmt"
	"strings"
)

// ProjectSnapshot describes the frontend project a request is made from.
type ProjectSnapshot struct {
	Dir          string   `json:"dir"`
	Name         string   `json:"name,omitempty"`
	Framework    string   `json:"framework,omitempty"`
	Language     string   `json:"language,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Files        []string `json:"files,omitempty"`
	GitBranch    string   `json:"gitBranch,omitempty"`
}

// Summary renders the snapshot as the plain-text codebase description
// sent to providers.
func (p ProjectSnapshot) Summary() string {
	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, "project: %s\n", p.Name)
	}
	if p.Framework != "" {
		fmt.Fprintf(&b, "framework: %s\n", p.Framework)
	}
	if p.Language != "" {
		fmt.Fprintf(&b, "language: %s\n", p.Language)
	}
	if len(p.Dependencies) > 0 {
		fmt.Fprintf(&b, "dependencies: %s\n", strings.Join(p.Dependencies, ", "))
	}
	if len(p.Files) > 0 {
		fmt.Fprintf(&b, "files: %s\n", strings.Join(p.Files, ", "))
	}
	if p.GitBranch != "" {
		fmt.Fprintf(&b, "branch: %s\n", p.GitBranch)
	}
	return strings.TrimSpace(b.String())
}
