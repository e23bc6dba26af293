package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with the given content
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	return path
}

// CreateTestTree creates a directory containing a file and a nested
// subdirectory with a file, returning the directory path
func CreateTestTree(t *testing.T, dir, name string) string {
	t.Helper()

	root := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(root, "subdir"), 0755); err != nil {
		t.Fatalf("failed to create test tree: %v", err)
	}
	CreateTestFile(t, root, "file.txt", []byte("top"))
	CreateTestFile(t, filepath.Join(root, "subdir"), "file.txt", []byte("nested"))

	return root
}

// ReadTestFile reads a file, failing the test on error
func ReadTestFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read test file: %v", err)
	}

	return data
}
