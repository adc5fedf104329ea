package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/dyluth/advent/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// inputIgnore keeps puzzle inputs out of version control; only the ignore
// file itself is tracked.
const inputIgnore = "*\n!.gitignore\n"

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes advent.yml and an input directory under root.
// If force is true, an existing advent.yml is replaced; cached inputs are
// never removed. Returns the created paths relative to root.
func Initialize(root, inputDir string, force bool) ([]string, error) {
	if force {
		if err := handleForce(root); err != nil {
			return nil, err
		}
	}

	files, err := getTemplateFiles(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(root, inputDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", inputDir, err)
	}

	if err := writeFiles(root, files); err != nil {
		return nil, err
	}

	if err := validateCreatedFiles(root); err != nil {
		return nil, err
	}

	created := make([]string, len(files))
	for i, f := range files {
		created[i] = f.Path
	}
	return created, nil
}

// handleForce removes an existing advent.yml
func handleForce(root string) error {
	path := filepath.Join(root, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", config.DefaultPath, err)
		}
	}
	return nil
}

func getTemplateFiles(inputDir string) ([]FileInfo, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/advent.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read advent.yml template: %w", err)
	}
	var adventYml bytes.Buffer
	if err := tmpl.Execute(&adventYml, struct{ InputDir string }{filepath.ToSlash(inputDir)}); err != nil {
		return nil, fmt.Errorf("failed to render advent.yml template: %w", err)
	}

	return []FileInfo{
		{Path: config.DefaultPath, Content: adventYml.Bytes(), Permissions: 0644},
		{Path: filepath.Join(inputDir, ".gitignore"), Content: []byte(inputIgnore), Permissions: 0644},
	}, nil
}

// writeFiles writes all template files to disk. An existing input
// .gitignore is left alone.
func writeFiles(root string, files []FileInfo) error {
	for _, file := range files {
		path := filepath.Join(root, file.Path)
		if file.Path != config.DefaultPath {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.WriteFile(path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles loads the written advent.yml through the real config
// loader so a broken template is caught at init time.
func validateCreatedFiles(root string) error {
	if _, err := config.Load(filepath.Join(root, config.DefaultPath)); err != nil {
		return fmt.Errorf("created %s is not valid: %w", config.DefaultPath, err)
	}
	return nil
}
