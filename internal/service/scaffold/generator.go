package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Files lists what Generate writes, in write order.
var Files = []string{"index.html", "style.css", "script.js"}

var (
	ErrNameRequired = errors.New("project name is required")
	ErrInvalidName  = errors.New("project name must be a single path element")
	ErrNotDirectory = errors.New("project path exists and is not a directory")
)

// Result describes a generated project.
type Result struct {
	Path    string
	Created bool
	Files   []string
}

// Generator writes static starter projects.
type Generator struct {
	FS afero.Fs
}

// NewGenerator returns a Generator backed by fs.
func NewGenerator(fs afero.Fs) *Generator {
	return &Generator{FS: fs}
}

// Generate creates root/name and writes the starter files into it. An
// existing directory is reused and its starter files overwritten.
func (g *Generator) Generate(root, name string) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, ErrNameRequired
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return Result{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}

	projectPath := filepath.Join(root, name)

	created, err := g.ensureDir(projectPath)
	if err != nil {
		return Result{}, err
	}

	index, err := renderIndex(name)
	if err != nil {
		return Result{}, errors.Wrap(err, "render index.html")
	}
	script, err := renderScript(name)
	if err != nil {
		return Result{}, errors.Wrap(err, "render script.js")
	}

	contents := map[string]string{
		"index.html": index,
		"style.css":  styleContent,
		"script.js":  script,
	}

	written := make([]string, 0, len(Files))
	for _, file := range Files {
		target := filepath.Join(projectPath, file)
		if err := afero.WriteFile(g.FS, target, []byte(contents[file]), 0o644); err != nil {
			return Result{}, errors.Wrapf(err, "write %s", target)
		}
		written = append(written, file)
	}

	return Result{Path: projectPath, Created: created, Files: written}, nil
}

func (g *Generator) ensureDir(path string) (bool, error) {
	info, err := g.FS.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Wrapf(ErrNotDirectory, "%s", path)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	if err := g.FS.MkdirAll(path, 0o755); err != nil {
		return false, errors.Wrapf(err, "create %s", path)
	}
	return true, nil
}
