package api

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/extractor"
	"github.com/FanaticExplorer/EmojiesParser/httpfuncs"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
	"github.com/FanaticExplorer/EmojiesParser/logger"
	"github.com/FanaticExplorer/EmojiesParser/metadata"
)

// makeAssetDirs creates the asset subdirectories of the server's
// output directory upfront so that a server with no assets of a
// given kind still ends up with the empty directory on disk.
func makeAssetDirs(serverDirPath string, schema *Schema) error {
	dirs := []string{constants.EMOJIS_FOLDER}
	if schema.StickersKey != "" {
		dirs = append(dirs, constants.STICKERS_FOLDER)
	}
	for _, dir := range dirs {
		dirPath := filepath.Join(serverDirPath, dir)
		if err := os.MkdirAll(dirPath, constants.DEFAULT_PERMS); err != nil {
			return fmt.Errorf(
				"error %d: failed to create directory %s, more info => %w",
				eperrors.WRITE_ERROR,
				dirPath,
				err,
			)
		}
	}
	return nil
}

func (d *DlOptions) filterDescriptors(descriptors []*AssetDescriptor) []*AssetDescriptor {
	if d.Filters == nil {
		return descriptors
	}

	filtered := make([]*AssetDescriptor, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if !d.Filters.IsKindValid(descriptor.Kind) {
			continue
		}
		if !d.Filters.IsFileExtValid(descriptor.Ext) {
			continue
		}
		if !d.Filters.IsNameValid(descriptor.Name) {
			continue
		}
		filtered = append(filtered, descriptor)
	}
	return filtered
}

// failedAssetFromResult rebuilds the asset identity from the result's
// final file path, since the downloader may have resolved a different
// extension than the descriptor carried.
func failedAssetFromResult(res *httpfuncs.DlResult) metadata.FailedAsset {
	kind := constants.EMOJI_KIND
	if filepath.Base(filepath.Dir(res.FilePath)) == constants.STICKERS_FOLDER {
		kind = constants.STICKER_KIND
	}
	return metadata.FailedAsset{
		Kind:   kind,
		Name:   iofuncs.RemoveExtFromFilename(filepath.Base(res.FilePath)),
		Url:    res.Url,
		Reason: res.Err.Error(),
	}
}

// extractStickerArchives unpacks downloaded sticker packs that are
// archives into a directory named after the archive. Extraction
// failures are logged but do not count against the server's summary.
func (d *DlOptions) extractStickerArchives(results []*httpfuncs.DlResult) {
	var extractErrs []error
	for _, res := range results {
		if res.Err != nil || !extractor.IsArchive(res.FilePath) {
			continue
		}
		if filepath.Base(filepath.Dir(res.FilePath)) != constants.STICKERS_FOLDER {
			continue
		}

		dest := iofuncs.RemoveExtFromFilename(res.FilePath)
		if err := extractor.ExtractFiles(d.GetContext(), res.FilePath, dest, false); err != nil {
			extractErrs = append(extractErrs, err)
		}
	}
	logger.LogErrors(logger.ERROR, extractErrs...)
}

// ProcessServer downloads every enumerated asset of one server and
// returns its summary. Individual download failures are recorded in
// the summary instead of aborting the remaining assets.
func ProcessServer(serverMetadata *Metadata, server *ServerTarget, dlOptions *DlOptions) (*metadata.ServerSummary, bool) {
	summary := &metadata.ServerSummary{
		Server:          server.Name,
		MetadataFetched: true,
	}
	serverDirPath := server.OutputDir(dlOptions.BaseDownloadDirPath)

	if err := makeAssetDirs(serverDirPath, serverMetadata.Schema); err != nil {
		logger.LogError(err, logger.ERROR)
		summary.FetchError = err.Error()
		metadata.WriteSummary(serverDirPath, summary)
		return summary, false
	}

	descriptors := dlOptions.filterDescriptors(serverMetadata.Descriptors())
	urlsToDownload := make([]*httpfuncs.ToDownload, 0, len(descriptors))
	for _, descriptor := range descriptors {
		urlsToDownload = append(urlsToDownload, &httpfuncs.ToDownload{
			Url:      descriptor.Url,
			FilePath: descriptor.TargetPath(serverDirPath),
		})
	}

	cancelled, results := httpfuncs.DownloadUrls(
		urlsToDownload,
		&httpfuncs.DlOptions{
			MaxConcurrency:  dlOptions.Configs.MaxConcurrency,
			Context:         dlOptions.GetContext(),
			ProgressBarInfo: dlOptions.ProgressBarInfo(),
		},
		dlOptions.Configs,
	)
	for _, res := range results {
		switch {
		case res.Skipped:
			summary.Skipped++
		case res.Err != nil:
			summary.Failed++
			summary.FailedAssets = append(summary.FailedAssets, failedAssetFromResult(res))
		default:
			summary.Downloaded++
		}
	}

	if !cancelled && dlOptions.Configs.ExtractStickerArchives {
		dlOptions.extractStickerArchives(results)
	}

	metadata.WriteSummary(serverDirPath, summary)
	return summary, cancelled
}
