// Package project inspects the working directory to describe a frontend project.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

const defaultMaxFiles = 30

// Collector implements ports.ProjectInspector with package.json and git detection.
type Collector struct {
	maxFiles int
}

func NewCollector() *Collector {
	return &Collector{maxFiles: defaultMaxFiles}
}

// frameworks are checked in order; the first dependency found wins.
var frameworks = []struct {
	dependency string
	name       string
}{
	{"next", "react"},
	{"react", "react"},
	{"nuxt", "vue"},
	{"vue", "vue"},
	{"@angular/core", "angular"},
}

// uiDependencyPrefixes select the dependencies worth reporting.
var uiDependencyPrefixes = []string{
	"react", "vue", "@angular/", "next", "nuxt",
	"@radix-ui/", "@headlessui/", "@mui/", "antd", "tailwindcss",
	"class-variance-authority", "lucide-react", "framer-motion",
}

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Inspect gathers project data from dir. A directory without package.json
// still yields a snapshot with its file listing.
func (c *Collector) Inspect(ctx context.Context, dir string) (domain.ProjectSnapshot, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.ProjectSnapshot{}, err
		}
		dir = wd
	}
	info, err := os.Stat(dir)
	if err != nil {
		return domain.ProjectSnapshot{}, err
	}
	if !info.IsDir() {
		return domain.ProjectSnapshot{}, errors.New(dir + " is not a directory")
	}

	snapshot := domain.ProjectSnapshot{
		Dir:   dir,
		Files: listFiles(dir, c.maxFiles),
	}

	pkg, err := readPackageJSON(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return snapshot, err
	}
	if pkg != nil {
		deps := mergeDeps(pkg.Dependencies, pkg.DevDependencies)
		snapshot.Name = pkg.Name
		snapshot.Framework = detectFramework(deps)
		snapshot.Dependencies = uiDependencies(deps)
		snapshot.Language = "javascript"
		if _, ok := deps["typescript"]; ok {
			snapshot.Language = "typescript"
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "tsconfig.json")); err == nil {
		snapshot.Language = "typescript"
	}

	snapshot.GitBranch = gitBranch(ctx, dir)
	return snapshot, nil
}

func readPackageJSON(dir string) (*packageJSON, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, err
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func mergeDeps(sets ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, set := range sets {
		for name, version := range set {
			out[name] = version
		}
	}
	return out
}

func detectFramework(deps map[string]string) string {
	for _, fw := range frameworks {
		if _, ok := deps[fw.dependency]; ok {
			return fw.name
		}
	}
	return ""
}

func uiDependencies(deps map[string]string) []string {
	var out []string
	for name := range deps {
		for _, prefix := range uiDependencyPrefixes {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

func listFiles(dir string, limit int) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" {
			continue
		}
		if len(files) >= limit {
			break
		}
		if entry.IsDir() {
			name += "/"
		}
		files = append(files, name)
	}
	return files
}

func gitBranch(ctx context.Context, dir string) string {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return ""
	}
	return strings.TrimSpace(runCmd(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD"))
}

func runCmd(ctx context.Context, dir string, name string, args ...string) string {
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	cmd := exec.CommandContext(cctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return string(out)
}

var _ ports.ProjectInspector = (*Collector)(nil)
