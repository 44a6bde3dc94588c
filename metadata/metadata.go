package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/logger"
)

// WriteSummary saves the server's run summary as summary.json in its
// output directory so failed assets can be retried manually later.
func WriteSummary(serverDirPath string, summary *ServerSummary) error {
	if err := os.MkdirAll(serverDirPath, constants.DEFAULT_PERMS); err != nil {
		return fmt.Errorf(
			"error %d: failed to create directory %s, more info => %w",
			eperrors.WRITE_ERROR,
			serverDirPath,
			err,
		)
	}

	summaryBytes, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to marshal summary for %s, more info => %w",
			eperrors.JSON_ERROR,
			summary.Server,
			err,
		)
	}

	summaryPath := filepath.Join(serverDirPath, constants.SUMMARY_JSON_FILENAME)
	if err := os.WriteFile(summaryPath, summaryBytes, 0666); err != nil {
		err = fmt.Errorf(
			"error %d: failed to write summary to %s, more info => %w",
			eperrors.WRITE_ERROR,
			summaryPath,
			err,
		)
		logger.LogError(err, logger.ERROR)
		return err
	}
	return nil
}
