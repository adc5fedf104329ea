package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/advent/internal/config"
)

// CheckExisting returns an error if root already holds an advent.yml
func CheckExisting(root string) error {
	if _, err := os.Stat(filepath.Join(root, config.DefaultPath)); err == nil {
		return fmt.Errorf("project already initialized: found existing %s", config.DefaultPath)
	}
	return nil
}
