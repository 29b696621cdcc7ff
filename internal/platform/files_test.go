package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ANDROID_DATA", "")
	t.Setenv("ANDROID_ROOT", "")

	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir != filepath.Join(home, "Downloads") {
		t.Errorf("Expected %s, got: %s", filepath.Join(home, "Downloads"), downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.tsx")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		expected string
	}{
		{"SkeletonLoader", ".tsx", "SkeletonLoader.tsx"},
		{"SkeletonLoader", "html", "SkeletonLoader.html"},
		{"a/b:c", ".html", "a_b_c.html"},
		{"  Card  ", ".tsx", "Card.tsx"},
		{"", ".tsx", "export.tsx"},
		{"Card", "", "Card"},
	}

	for _, test := range tests {
		if got := ExportFileName(test.name, test.ext); got != test.expected {
			t.Errorf("ExportFileName(%q, %q) = %q, expected %q", test.name, test.ext, got, test.expected)
		}
	}
}

func TestWriteExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := WriteExportFile(dir, "Card.tsx", []byte("first"))
	if err != nil {
		t.Fatalf("WriteExportFile failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("Expected content 'first', got %q", data)
	}

	// Overwrite replaces the content in place
	if _, err := WriteExportFile(dir, "Card.tsx", []byte("second")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("Expected content 'second', got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the exported file, found %d entries", len(entries))
	}
}

func TestWriteExportFile_EmptyName(t *testing.T) {
	if _, err := WriteExportFile(t.TempDir(), "", nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}
