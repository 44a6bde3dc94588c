package startup

import (
	"fmt"
	"os"

	"github.com/FanaticExplorer/EmojiesParser/configs"
	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/httpfuncs"
	"github.com/FanaticExplorer/EmojiesParser/logger"
	"github.com/FanaticExplorer/EmojiesParser/utils"
)

// CheckPrerequisites verifies the process can actually do any work
// before the first server is touched. Failures here abort the whole
// run, unlike per-server errors which only skip one server.
func CheckPrerequisites(config *configs.Config, panicHandler func(msg string)) {
	// log housekeeping failures are not worth aborting a run over
	if err := logger.DeleteEmptyAndOldLogs(); err != nil {
		logger.LogError(err, logger.ERROR)
	}

	if err := httpfuncs.CheckInternetConnection(); err != nil {
		panicHandler(err.Error())
	}

	if err := os.MkdirAll(config.OutputDirPath, constants.DEFAULT_PERMS); err != nil {
		panicHandler(
			fmt.Sprintf(
				"error %d: failed to create output directory %s, more info => %v",
				eperrors.WRITE_ERROR,
				config.OutputDirPath,
				err,
			),
		)
	}

	if config.UseBrowserCapture {
		if _, err := utils.GetChromeExecPath(); err != nil {
			panicHandler(
				fmt.Sprintf(
					"error %d: Google Chrome executable not found, please install Google Chrome or set the CHROME_EXECUTABLE environment variable",
					eperrors.OS_ERROR,
				),
			)
		}
	}
}
