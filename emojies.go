package emojiesparser

import (
	"errors"
	"fmt"

	"github.com/FanaticExplorer/EmojiesParser/api"
	"github.com/FanaticExplorer/EmojiesParser/api/guildcapture"
	"github.com/FanaticExplorer/EmojiesParser/configs"
	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/logger"
	"github.com/FanaticExplorer/EmojiesParser/metadata"
)

// fetchServerMetadata obtains the server's metadata document, falling
// back to the browser capture for guild servers when the plain HTTP
// request is rejected by the lookup API.
func fetchServerMetadata(server *api.ServerTarget, serverDirPath string, dlOptions *api.DlOptions) (*api.Metadata, error) {
	serverMetadata, err := api.FetchMetadata(dlOptions.GetContext(), server, serverDirPath, dlOptions)
	if err == nil {
		return serverMetadata, nil
	}

	var fetchErr *api.FetchError
	canCapture := server.Type == constants.GUILD &&
		dlOptions.Configs.UseBrowserCapture &&
		errors.As(err, &fetchErr)
	if !canCapture {
		return loadPersistedOrErr(server, serverDirPath, dlOptions, err)
	}

	logger.LogError(err, logger.ERROR)
	dlOptions.GetNotifier().Alert(
		fmt.Sprintf(
			"Direct metadata request for %s failed, retrying with a browser...",
			server.Name,
		),
	)

	payload, captureErr := guildcapture.CaptureGuildMetadata(
		dlOptions.GetContext(),
		server.Name,
		dlOptions.Configs.UserAgent,
	)
	if captureErr != nil {
		return loadPersistedOrErr(server, serverDirPath, dlOptions, captureErr)
	}
	return api.ParseAndPersist(server, serverDirPath, payload)
}

// loadPersistedOrErr is the last resort when the metadata cannot be
// obtained, reusing the metadata saved by a previous run so that the
// already known assets can still be downloaded.
func loadPersistedOrErr(server *api.ServerTarget, serverDirPath string, dlOptions *api.DlOptions, fetchErr error) (*api.Metadata, error) {
	if !api.HasPersistedMetadata(serverDirPath) {
		return nil, fetchErr
	}

	persisted, loadErr := api.LoadPersistedMetadata(server, serverDirPath)
	if loadErr != nil {
		return nil, fetchErr
	}

	logger.LogError(fetchErr, logger.ERROR)
	dlOptions.GetNotifier().Alert(
		fmt.Sprintf(
			"Using the saved metadata of a previous run for %s...",
			server.Name,
		),
	)
	return persisted, nil
}

// DownloadServers fetches the metadata of every configured server and
// downloads its emojis and stickers. A failure on one server never
// stops the others; each failure ends up in the returned summary and
// error slice instead.
func DownloadServers(config *configs.Config, emojiesDl *api.EmojiesDl, dlOptions *api.DlOptions) (*metadata.RunSummary, []error) {
	defer dlOptions.CancelCtx()
	stopSignal := catchInterruptSignal(dlOptions.CancelCtx)
	defer stopSignal()

	runSummary := &metadata.RunSummary{}
	var errSlice []error
	notifier := dlOptions.GetNotifier()
	for _, server := range emojiesDl.Servers {
		if !dlOptions.CtxIsActive() {
			break
		}

		displayName := api.GetDisplayName(dlOptions.GetContext(), server, config.UserAgent)
		mainProg := dlOptions.MainProgBar
		mainProg.SetToSpinner()
		mainProg.UpdateBaseMsg(
			fmt.Sprintf("Fetching metadata for %s...", displayName),
		)
		mainProg.UpdateSuccessMsg(
			fmt.Sprintf("Finished fetching metadata for %s!", displayName),
		)
		mainProg.UpdateErrorMsg(
			fmt.Sprintf(
				"Something went wrong while fetching metadata for %s.\nPlease refer to the logs for more details.",
				displayName,
			),
		)
		mainProg.Start()

		serverDirPath := server.OutputDir(dlOptions.BaseDownloadDirPath)
		serverMetadata, err := fetchServerMetadata(server, serverDirPath, dlOptions)
		hasErr := (err != nil)
		mainProg.Stop(hasErr)
		mainProg.SnapshotTask()
		if hasErr {
			logger.LogError(err, logger.ERROR)
			errSlice = append(errSlice, err)
			serverSummary := &metadata.ServerSummary{
				Server:     server.Name,
				FetchError: err.Error(),
			}
			metadata.WriteSummary(serverDirPath, serverSummary)
			runSummary.Servers = append(runSummary.Servers, serverSummary)
			notifier.Alert(
				fmt.Sprintf("Skipping %s, failed to fetch its metadata...", displayName),
			)
			continue
		}

		serverSummary, cancelled := api.ProcessServer(serverMetadata, server, dlOptions)
		runSummary.Servers = append(runSummary.Servers, serverSummary)
		for _, failed := range serverSummary.FailedAssets {
			errSlice = append(errSlice, fmt.Errorf(
				"failed to download %s/%s of %s: %s",
				failed.Kind,
				failed.Name,
				server.Name,
				failed.Reason,
			))
		}
		if cancelled {
			return runSummary, errSlice
		}
	}

	downloaded, skipped, failed := runSummary.Totals()
	notifier.Alert(
		fmt.Sprintf(
			"Finished downloading from %d server(s): %d downloaded, %d skipped, %d failed",
			len(runSummary.Servers),
			downloaded,
			skipped,
			failed,
		),
	)
	return runSummary, errSlice
}
