package progress

import (
	"github.com/FanaticExplorer/EmojiesParser/utils/threadsafe"
)

// ProgressBarInfo groups the main progress bar with the
// per-file download progress bars spawned during a batch download.
type ProgressBarInfo struct {
	MainProgressBar ProgressBar

	// Nil when the frontend does not
	// render per-file download progress.
	DownloadProgressBars *threadsafe.Slice[*DownloadProgressBar]
}

func (pgi *ProgressBarInfo) AppendDlProgBar(dlProgBar *DownloadProgressBar) {
	if pgi.DownloadProgressBars == nil {
		return
	}
	pgi.DownloadProgressBars.Append(dlProgBar)
}
