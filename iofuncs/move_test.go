package iofuncs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMoveOutputDir(t *testing.T) {
	origConfigFilePath := configFilePath
	configFilePath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() {
		configFilePath = origConfigFilePath
	})

	oldPath := filepath.Join(t.TempDir(), "output")
	serverDir := filepath.Join(oldPath, "testguild", "emojis")
	if err := os.MkdirAll(serverDir, 0755); err != nil {
		t.Fatal(err)
	}
	assetPath := filepath.Join(serverDir, "smile.png")
	if err := os.WriteFile(assetPath, []byte("png bytes"), 0666); err != nil {
		t.Fatal(err)
	}

	newPath := filepath.Join(t.TempDir(), "relocated")
	if err := MoveOutputDir(oldPath, newPath); err != nil {
		t.Fatal(err)
	}

	movedAsset := filepath.Join(newPath, "testguild", "emojis", "smile.png")
	written, err := os.ReadFile(movedAsset)
	if err != nil {
		t.Fatalf("Expected %s to exist, got %v", movedAsset, err)
	}
	if string(written) != "png bytes" {
		t.Errorf("Expected %q, got %q", "png bytes", written)
	}

	if PathExists(oldPath) {
		t.Errorf("Expected the old output directory %s to be removed", oldPath)
	}
	if GetDefaultOutputPath() != newPath {
		t.Errorf("Expected the saved output path to be %q, got %q", newPath, GetDefaultOutputPath())
	}
}

func TestMoveOutputDirMissingSource(t *testing.T) {
	missingPath := filepath.Join(t.TempDir(), "does-not-exist")
	if err := MoveOutputDir(missingPath, t.TempDir()); err == nil {
		t.Error("Expected an error for a missing output directory")
	}
}
