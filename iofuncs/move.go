package iofuncs

import (
	"fmt"
	"os"

	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	cp "github.com/otiai10/copy"
)

// Relocates the output directory tree (response.json files and
// downloaded assets included) to a new path and updates the saved config.
//
// Copy-then-remove instead of os.Rename so that the
// relocation also works across filesystems.
func MoveOutputDir(oldPath, newPath string) error {
	if oldPath == newPath {
		return nil
	}
	if !PathExists(oldPath) {
		return fmt.Errorf(
			"error %d: output directory %s does not exist",
			eperrors.INPUT_ERROR,
			oldPath,
		)
	}

	if err := cp.Copy(oldPath, newPath); err != nil {
		return fmt.Errorf(
			"error %d: failed to copy output directory to %s, more info => %w",
			eperrors.OS_ERROR,
			newPath,
			err,
		)
	}

	if err := os.RemoveAll(oldPath); err != nil {
		return fmt.Errorf(
			"error %d: failed to remove old output directory %s, more info => %w",
			eperrors.OS_ERROR,
			oldPath,
			err,
		)
	}
	return SetDefaultOutputPath(newPath)
}
