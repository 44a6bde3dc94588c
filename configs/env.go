package configs

import (
	"os"
	"strconv"

	"github.com/FanaticExplorer/EmojiesParser/logger"
	"github.com/joho/godotenv"
)

const (
	outputDirEnvKey      = "EP_OUTPUT_DIR"
	overwriteEnvKey      = "EP_OVERWRITE_FILES"
	maxConcurrencyEnvKey = "EP_MAX_CONCURRENCY"
	browserCaptureEnvKey = "EP_BROWSER_CAPTURE"
	extractEnvKey        = "EP_EXTRACT_STICKER_ARCHIVES"
)

// LoadFromEnv overrides the config values with any
// matching environment variables, loading a .env file first if one exists.
func (c *Config) LoadFromEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.LogError(err, logger.ERROR)
	}

	if outputDir := os.Getenv(outputDirEnvKey); outputDir != "" {
		c.OutputDirPath = outputDir
	}
	if overwrite := os.Getenv(overwriteEnvKey); overwrite != "" {
		c.OverwriteFiles = parseEnvBool(overwrite)
	}
	if maxConcurrency := os.Getenv(maxConcurrencyEnvKey); maxConcurrency != "" {
		if parsed, err := strconv.Atoi(maxConcurrency); err == nil && parsed > 0 {
			c.MaxConcurrency = parsed
		}
	}
	if browserCapture := os.Getenv(browserCaptureEnvKey); browserCapture != "" {
		c.UseBrowserCapture = parseEnvBool(browserCapture)
	}
	if extract := os.Getenv(extractEnvKey); extract != "" {
		c.ExtractStickerArchives = parseEnvBool(extract)
	}
}

func parseEnvBool(val string) bool {
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return parsed
}
