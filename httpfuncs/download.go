package httpfuncs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	ctxio "github.com/jbenet/go-context/io"

	"github.com/FanaticExplorer/EmojiesParser/configs"
	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
	"github.com/FanaticExplorer/EmojiesParser/logger"
	"github.com/FanaticExplorer/EmojiesParser/progress"
	"github.com/FanaticExplorer/EmojiesParser/utils/threadsafe"
)

// Resolves the final file path for the response.
//
// A path ending with a separator is treated as a directory and the
// filename is derived from the request URL. Any other path is the
// final file path. When it has no extension, one is resolved from the
// URL suffix or the Content-Type header and appended so that the
// caller's chosen filename is kept as-is.
func getFullFilePath(res *http.Response, filePath string) (string, error) {
	if strings.HasSuffix(filePath, "/") || strings.HasSuffix(filePath, string(os.PathSeparator)) {
		return deriveFilePathFromUrl(res, filepath.Clean(filePath))
	}

	filePathDir := filepath.Dir(filePath)
	if err := os.MkdirAll(filePathDir, constants.DEFAULT_PERMS); err != nil {
		return "", fmt.Errorf(
			"error %d: failed to create directory %s, more info => %w",
			eperrors.WRITE_ERROR,
			filePathDir,
			err,
		)
	}

	if ext := filepath.Ext(filePath); ext != "" {
		return iofuncs.RemoveExtFromFilename(filePath) + strings.ToLower(ext), nil
	}
	return filePath + resolveResExt(res), nil
}

// Derives the filename from the request URL for directory targets.
func deriveFilePathFromUrl(res *http.Response, dirPath string) (string, error) {
	if err := os.MkdirAll(dirPath, constants.DEFAULT_PERMS); err != nil {
		return "", fmt.Errorf(
			"error %d: failed to create directory %s, more info => %w",
			eperrors.WRITE_ERROR,
			dirPath,
			err,
		)
	}
	filename, err := url.PathUnescape(res.Request.URL.String())
	if err != nil {
		// should never happen but just in case
		return "", fmt.Errorf(
			"error %d: failed to unescape URL, more info => %w\nurl: %s",
			eperrors.UNEXPECTED_ERROR,
			err,
			res.Request.URL.String(),
		)
	}
	filename = GetLastPartOfUrl(filename)
	return filepath.Join(
		dirPath,
		iofuncs.RemoveExtFromFilename(filename)+resolveResExt(res),
	), nil
}

// Resolves a file extension for a response whose target path has none,
// checking the request URL's suffix before the Content-Type header.
func resolveResExt(res *http.Response) string {
	ext := strings.ToLower(filepath.Ext(GetLastPartOfUrl(res.Request.URL.Path)))
	if len(ext) <= 1 || len(ext) > 6 {
		ext = ""
	}
	if ext == "" {
		ext = ExtFromContentType(res.Header.Get("Content-Type"))
	}
	if ext == "" {
		ext = constants.DEFAULT_ASSET_EXT
	}
	return ext
}

// An existing file at the target path means the asset was already
// retrieved on a previous run and the download can be skipped entirely.
func checkIfCanSkipDl(filePath string, forceOverwrite bool) bool {
	return !forceOverwrite && iofuncs.PathExists(filePath)
}

// totalBytesWriter is a custom type that implements io.Writer interface to accumulate totalBytes.
type totalBytesWriter struct {
	totalBytes *int64
}

// Write writes len(p) bytes from p to accumulate the total bytes written.
func (tbw *totalBytesWriter) Write(p []byte) (int, error) {
	n := len(p)
	*tbw.totalBytes += int64(n)
	return n, nil
}

type DlRequestInfo struct {
	Ctx context.Context
	Url string
}

func writeDlDetailsToProgBar(dlProgBar *progress.DownloadProgressBar, startTime time.Time, reqWrittenBytes, expectedFileSize int64) {
	durationInSec := time.Since(startTime).Seconds()
	var downloadSpeed float64
	if durationInSec > 0 {
		downloadSpeed = float64(reqWrittenBytes) / durationInSec
		dlProgBar.UpdateDownloadSpeed(downloadSpeed / 1024 / 1024)
	}

	var estimatedTime float64
	var progressPercentage float64
	if expectedFileSize == -1 || downloadSpeed == 0 { // not present in the response or the time elapsed is too short
		estimatedTime = -1 // -1 indicates that the ETA is unknown
		progressPercentage = 0
	} else {
		progressPercentage = float64(reqWrittenBytes) / float64(expectedFileSize) * 100
		estimatedTime = float64(expectedFileSize-reqWrittenBytes) / downloadSpeed
	}
	dlProgBar.UpdateDownloadETA(estimatedTime)

	if progressPercentage > 100 {
		progressPercentage = 100
	} else if progressPercentage < 0 {
		progressPercentage = 0
	}
	dlProgBar.UpdatePercentage(int(progressPercentage))
}

// DlToFile streams the response body to a temporary file next to the
// final path and renames it into place once the whole body has been
// written, so that an interrupted download never leaves a partial
// file under the final name.
func DlToFile(res *http.Response, dlRequestInfo *DlRequestInfo, filePath string, dlProgBar *progress.DownloadProgressBar) error {
	tmpFilePath := filePath + constants.TMP_FILE_SUFFIX
	file, err := os.OpenFile(tmpFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to open/create file, more info => %w\nfile path: %s",
			eperrors.WRITE_ERROR,
			err,
			tmpFilePath,
		)
	}

	var reqWrittenBytes int64
	expectedFileSize := res.ContentLength

	progressTicker := time.NewTicker(100 * time.Millisecond)
	dlInfoCtx, cancelDlInfoCtx := context.WithCancel(dlRequestInfo.Ctx)
	hasDlProgBar := dlProgBar != nil
	if hasDlProgBar {
		// Measure download speed and ETA
		startTime := time.Now()
		go func() {
			for {
				select {
				case <-dlInfoCtx.Done():
					dlProgBar.UpdateDownloadETA(0)
					dlProgBar.UpdateDownloadSpeed(0)
					return
				case <-progressTicker.C:
					writeDlDetailsToProgBar(dlProgBar, startTime, reqWrittenBytes, expectedFileSize)
				}
			}
		}()
	}

	// write the body to the temporary file
	respReader := ctxio.NewReader(dlRequestInfo.Ctx, res.Body)
	_, err = io.Copy(io.MultiWriter(file, &totalBytesWriter{&reqWrittenBytes}), respReader)
	progressTicker.Stop()
	cancelDlInfoCtx()

	if err == nil && reqWrittenBytes == 0 {
		// a zero-byte file must never end up under the final name
		err = fmt.Errorf(
			"error %d: %w\nurl: %s",
			eperrors.DOWNLOAD_ERROR,
			eperrors.ErrEmptyPayload,
			dlRequestInfo.Url,
		)
	}

	if err == nil {
		if syncErr := file.Sync(); syncErr != nil {
			err = fmt.Errorf(
				"error %d: failed to flush downloaded bytes to disk, more info => %w\nfile path: %s",
				eperrors.WRITE_ERROR,
				syncErr,
				tmpFilePath,
			)
		}
	}
	file.Close()

	if err == nil {
		if renameErr := os.Rename(tmpFilePath, filePath); renameErr != nil {
			err = fmt.Errorf(
				"error %d: failed to move downloaded file into place, more info => %w\nfile path: %s",
				eperrors.WRITE_ERROR,
				renameErr,
				filePath,
			)
		}
	}

	if err == nil {
		if hasDlProgBar {
			dlProgBar.UpdatePercentage(100)
			dlProgBar.Stop(false)
		}
		return nil
	}

	if fileErr := os.Remove(tmpFilePath); fileErr != nil && !errors.Is(fileErr, os.ErrNotExist) {
		logger.LogError(
			fmt.Errorf(
				"error %d: failed to remove file %s, more info => %w",
				eperrors.OS_ERROR,
				tmpFilePath,
				fileErr,
			),
			logger.ERROR,
		)
	}

	if errors.Is(err, context.Canceled) {
		if hasDlProgBar {
			dlProgBar.UpdateErrMsg("Download process was cancelled!")
			dlProgBar.Stop(true)
		}
		return context.Canceled
	}

	if hasDlProgBar {
		dlProgBar.Stop(true)
	}
	logger.LogError(
		fmt.Errorf(
			"failed to download %s due to %w",
			dlRequestInfo.Url,
			err,
		),
		logger.ERROR,
	)
	return err
}

// downloadUrl downloads a single URL to the given file path.
//
// Returns the final file path along with whether the download was
// skipped because a file already existed at the target path.
func downloadUrl(filePath string, queue chan struct{}, reqArgs *RequestArgs, overwriteExistingFile bool, dlOptions *DlOptions) (finalPath string, skipped bool, err error) {
	queue <- struct{}{}

	// When the target path is already fully resolved, the existence
	// check happens before any request is made so that re-runs
	// do not touch the network for assets that are already on disk.
	if filepath.Ext(filePath) != "" && checkIfCanSkipDl(filePath, overwriteExistingFile) {
		return filePath, true, nil
	}

	res, err := reqArgs.RequestHandler(reqArgs)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			err = fmt.Errorf(
				"error %d: failed to download file, more info => %w\nurl: %s",
				eperrors.DOWNLOAD_ERROR,
				err,
				reqArgs.Url,
			)
		}
		return filePath, false, err
	}
	defer res.Body.Close()

	filePath, err = getFullFilePath(res, filePath)
	if err != nil {
		return filePath, false, err
	}

	if checkIfCanSkipDl(filePath, overwriteExistingFile) {
		return filePath, true, nil
	}

	var dlProgBar *progress.DownloadProgressBar
	if dlOptions.ProgressBarInfo != nil && dlOptions.ProgressBarInfo.DownloadProgressBars != nil {
		dlProgBar = progress.NewDlProgressBar(reqArgs.Context, progress.Messages{
			Msg:        "Downloading file...",
			ErrMsg:     "Failed to download file!",
			SuccessMsg: "Finished downloading file!",
		})
		dlProgBar.UpdateTotalBytes(res.ContentLength)
		dlProgBar.UpdateFilename(filepath.Base(filePath))
		dlOptions.ProgressBarInfo.AppendDlProgBar(dlProgBar)
	}

	dlReqInfo := &DlRequestInfo{
		Ctx: reqArgs.Context,
		Url: reqArgs.Url,
	}
	return filePath, false, DlToFile(res, dlReqInfo, filePath, dlProgBar)
}

// DownloadUrlsWithHandler downloads multiple files from URLs concurrently
// with the given request handler.
//
// A failure of one download never cancels or blocks the others; every
// entry ends up with a DlResult recording whether it was downloaded,
// skipped because the file already existed, or failed with an error.
func DownloadUrlsWithHandler(urlInfoSlice []*ToDownload, dlOptions *DlOptions, config *configs.Config, reqHandler RequestHandler) (cancelled bool, results []*DlResult) {
	urlsLen := len(urlInfoSlice)
	if urlsLen == 0 {
		return false, nil
	}
	maxConcurrency := dlOptions.MaxConcurrency
	if urlsLen < maxConcurrency {
		maxConcurrency = urlsLen
	}

	var wg sync.WaitGroup
	queue := make(chan struct{}, maxConcurrency)
	resSlice := threadsafe.NewSliceWithCapacity[*DlResult](urlsLen)

	if dlOptions.Context == nil {
		dlOptions.Context = context.Background()
	}

	// Create a context that can be cancelled when SIGINT/SIGTERM signal is received
	ctx, cancel := context.WithCancel(dlOptions.Context)
	defer cancel()

	// Catch SIGINT/SIGTERM signal and cancel the context when received
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()
	defer signal.Stop(sigs)

	baseMsg := "Downloading assets [%d/" + fmt.Sprintf("%d]...", urlsLen)
	mainProg := dlOptions.ProgressBarInfo.MainProgressBar
	mainProg.SetToProgressBar()
	mainProg.UpdateBaseMsg(baseMsg)
	mainProg.UpdateSuccessMsg(
		fmt.Sprintf(
			"Finished downloading %d assets",
			urlsLen,
		),
	)
	mainProg.UpdateErrorMsg(
		fmt.Sprintf(
			"Something went wrong while downloading %d assets.\nPlease refer to the logs for more details.",
			urlsLen,
		),
	)
	mainProg.UpdateMax(urlsLen)
	mainProg.Start()
	defer mainProg.SnapshotTask()
	for _, urlInfo := range urlInfoSlice {
		wg.Add(1)
		go func(fileUrl, filePath string) {
			defer func() {
				wg.Done()
				<-queue
			}()
			finalPath, skipped, err := downloadUrl(
				filePath,
				queue,
				&RequestArgs{
					Url:            fileUrl,
					Method:         "GET",
					Timeout:        constants.DOWNLOAD_TIMEOUT,
					Cookies:        dlOptions.Cookies,
					Headers:        dlOptions.Headers,
					Http2:          !dlOptions.UseHttp3,
					Http3:          dlOptions.UseHttp3,
					RetryDelay:     dlOptions.RetryDelay,
					UserAgent:      config.UserAgent,
					RequestHandler: reqHandler,
					CheckStatus:    true,
					Context:        ctx,
				},
				config.OverwriteFiles,
				dlOptions,
			)
			resSlice.Append(&DlResult{
				Url:      fileUrl,
				FilePath: finalPath,
				Skipped:  skipped,
				Err:      err,
			})

			if !errors.Is(err, context.Canceled) {
				mainProg.Increment()
			}
		}(urlInfo.Url, urlInfo.FilePath)
	}
	wg.Wait()
	close(queue)

	results = resSlice.CopyItems()
	hasErr := false
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		hasErr = true
		if errors.Is(res.Err, context.Canceled) {
			mainProg.StopInterrupt("Stopped downloading assets (incomplete downloads have been discarded)...")
			return true, results
		}
		logger.LogError(res.Err, logger.ERROR)
	}
	mainProg.Stop(hasErr)
	return false, results
}

// Same as DownloadUrlsWithHandler but uses the default request handler (CallRequest)
func DownloadUrls(urlInfoSlice []*ToDownload, dlOptions *DlOptions, config *configs.Config) (cancelled bool, results []*DlResult) {
	return DownloadUrlsWithHandler(urlInfoSlice, dlOptions, config, CallRequest)
}
