package iofuncs

import (
	"fmt"
	"os"
	"path/filepath"

	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

var (
	APP_PATH    = getAppPath()
	OUTPUT_PATH = GetDefaultOutputPath()
)

// Returns the path to the application's config directory
func getAppPath() string {
	appPath, err := os.UserConfigDir()
	if err != nil {
		panic(
			fmt.Errorf(
				"error %d, failed to get user's config directory: %v",
				eperrors.OS_ERROR,
				err,
			),
		)
	}
	return filepath.Join(appPath, "Emojies-Parser")
}
