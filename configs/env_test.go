package configs

import (
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EP_OUTPUT_DIR", "/tmp/emojies-test")
	t.Setenv("EP_OVERWRITE_FILES", "true")
	t.Setenv("EP_MAX_CONCURRENCY", "8")
	t.Setenv("EP_BROWSER_CAPTURE", "1")
	t.Setenv("EP_EXTRACT_STICKER_ARCHIVES", "false")

	config := NewConfig()
	config.LoadFromEnv()

	if config.OutputDirPath != "/tmp/emojies-test" {
		t.Errorf("Expected /tmp/emojies-test, got %q", config.OutputDirPath)
	}
	if !config.OverwriteFiles {
		t.Error("Expected OverwriteFiles to be true")
	}
	if config.MaxConcurrency != 8 {
		t.Errorf("Expected 8, got %d", config.MaxConcurrency)
	}
	if !config.UseBrowserCapture {
		t.Error("Expected UseBrowserCapture to be true")
	}
	if config.ExtractStickerArchives {
		t.Error("Expected ExtractStickerArchives to be false")
	}
}

func TestLoadFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("EP_MAX_CONCURRENCY", "not a number")
	t.Setenv("EP_OVERWRITE_FILES", "maybe")

	config := NewConfig()
	defaultConcurrency := config.MaxConcurrency
	config.LoadFromEnv()

	if config.MaxConcurrency != defaultConcurrency {
		t.Errorf("Expected the default concurrency, got %d", config.MaxConcurrency)
	}
	if config.OverwriteFiles {
		t.Error("Expected OverwriteFiles to stay false")
	}
}
