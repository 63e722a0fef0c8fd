package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// fixtureNames lists the repositories under test/fixtures/repos.
var fixtureNames = []string{
	"streamlit-dashboard",
	"django-blog",
	"fastapi-service",
	"react-app",
	"spring-gradle",
	"go-project",
}

// copyFixtureToTemp copies a fixture repository directory to a temp directory
// and returns the path to the copied repository (relative to tempDir as "./repo-name").
func copyFixtureToTemp(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	// Get the absolute path to the fixture
	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/repos", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	// Create destination directory
	destDir := filepath.Join(tempDir, fixtureName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create destination directory: %v", err)
	}

	// Copy all files from fixture to destination
	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Get relative path from fixture root
		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}

		// Copy file
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(destPath, data, info.Mode())
	})

	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	// Return relative path from tempDir (no ".." required)
	return "./" + fixtureName
}
