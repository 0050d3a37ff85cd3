package mover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mbeckers/vidsort/pkg/classify"
)

// RenamedFolder records one folder renamed to title case
type RenamedFolder struct {
	// OldName is the folder name before renaming
	OldName string

	// NewName is the title-cased name
	NewName string
}

// RenameError records one folder that could not be renamed
type RenameError struct {
	// Name is the folder that failed
	Name string

	// Message is the diagnostic text for the failure
	Message string
}

// TitleCaseFolders renames the immediate subfolders of folder to title case,
// best-effort. Folders already in title case are left alone. A rename whose
// target differs by more than letter case and already exists is reported as
// a clash rather than attempted (case-insensitive filesystems rename
// case-only changes in place).
func TitleCaseFolders(folder string) ([]RenamedFolder, []RenameError, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, nil, err
	}

	var renamed []RenamedFolder
	var errors []RenameError

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		newName := classify.TitleCase(name)
		if newName == name || newName == "" {
			continue
		}

		src := filepath.Join(folder, name)
		dst := filepath.Join(folder, newName)

		if !strings.EqualFold(name, newName) {
			if _, err := os.Lstat(dst); err == nil {
				errors = append(errors, RenameError{
					Name:    name,
					Message: "destination '" + newName + "' already exists",
				})
				continue
			}
		}

		if err := os.Rename(src, dst); err != nil {
			errors = append(errors, RenameError{Name: name, Message: err.Error()})
			continue
		}
		renamed = append(renamed, RenamedFolder{OldName: name, NewName: newName})
	}

	return renamed, errors, nil
}
