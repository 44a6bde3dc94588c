package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDeleteEmptyAndOldLogs(t *testing.T) {
	origLogFolder := logFolder
	logFolder = t.TempDir()
	t.Cleanup(func() {
		logFolder = origLogFolder
	})

	emptyPath := filepath.Join(logFolder, "empty.log")
	if err := os.WriteFile(emptyPath, nil, 0666); err != nil {
		t.Fatal(err)
	}

	oldPath := filepath.Join(logFolder, "old.log")
	if err := os.WriteFile(oldPath, []byte("old entries"), 0666); err != nil {
		t.Fatal(err)
	}
	staleTime := time.Now().AddDate(0, 0, -31)
	if err := os.Chtimes(oldPath, staleTime, staleTime); err != nil {
		t.Fatal(err)
	}

	recentPath := filepath.Join(logFolder, "recent.log")
	if err := os.WriteFile(recentPath, []byte("recent entries"), 0666); err != nil {
		t.Fatal(err)
	}

	if err := DeleteEmptyAndOldLogs(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(emptyPath); err == nil {
		t.Error("Expected the empty log file to be removed")
	}
	if _, err := os.Stat(oldPath); err == nil {
		t.Error("Expected the 31 day old log file to be removed")
	}
	if _, err := os.Stat(recentPath); err != nil {
		t.Errorf("Expected the recent log file to be kept, got %v", err)
	}
}
