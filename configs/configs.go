package configs

import (
	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
)

type Config struct {
	// OutputDirPath is the base path that every
	// server's output directory is created under
	OutputDirPath string

	// OverwriteFiles is a flag to overwrite existing files
	// If false, the download process will be skipped if the file already exists
	OverwriteFiles bool

	// UserAgent is the user agent to be used in the download process
	UserAgent string

	// MaxConcurrency is the maximum number of assets downloaded at the same time.
	// 1 falls back to a plain sequential loop over the descriptors.
	MaxConcurrency int

	// UseBrowserCapture enables the headless browser fallback for guild servers
	// whose metadata API rejects direct requests
	UseBrowserCapture bool

	// ExtractStickerArchives unpacks downloaded sticker
	// packs that are served as archive files
	ExtractStickerArchives bool
}

// NewConfig returns a Config with the saved
// output path and the default download behaviour
func NewConfig() *Config {
	return &Config{
		OutputDirPath:  iofuncs.OUTPUT_PATH,
		UserAgent:      constants.USER_AGENT,
		MaxConcurrency: constants.MAX_CONCURRENT_DOWNLOADS,
	}
}
