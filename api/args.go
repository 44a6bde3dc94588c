package api

import (
	"context"
	"fmt"

	"github.com/FanaticExplorer/EmojiesParser/configs"
	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/filters"
	"github.com/FanaticExplorer/EmojiesParser/notify"
	"github.com/FanaticExplorer/EmojiesParser/parsers"
	"github.com/FanaticExplorer/EmojiesParser/progress"
	"github.com/FanaticExplorer/EmojiesParser/utils/threadsafe"
)

// EmojiesDl is the struct that contains
// the servers to download assets from.
type EmojiesDl struct {
	Servers []*ServerTarget
}

// AddFromEntries appends the parsed server list entries to the
// slice of servers. Used with parsers.ParseServerListFile.
func (e *EmojiesDl) AddFromEntries(entries []*parsers.ServerListEntry) {
	for _, entry := range entries {
		e.Servers = append(e.Servers, &ServerTarget{
			Name: entry.Name,
			Type: entry.Type,
			Url:  entry.Url,
		})
	}
}

// RemoveDuplicates removes servers that share a name with an earlier entry
func (e *EmojiesDl) RemoveDuplicates() {
	if len(e.Servers) == 0 {
		return
	}
	newSlice := make([]*ServerTarget, 0, len(e.Servers))
	seen := make(map[string]struct{})
	for _, server := range e.Servers {
		if _, ok := seen[server.Name]; ok {
			continue
		}
		seen[server.Name] = struct{}{}
		newSlice = append(newSlice, server)
	}
	e.Servers = newSlice
}

// ValidateArgs validates the configured servers.
//
// Should be called after initialising the struct.
func (e *EmojiesDl) ValidateArgs() error {
	for _, server := range e.Servers {
		if !constants.SERVER_NAME_REGEX.MatchString(server.Name) {
			return fmt.Errorf(
				"error %d: invalid server name %q",
				eperrors.INPUT_ERROR,
				server.Name,
			)
		}
		if _, err := SchemaForType(server.Type); err != nil {
			return err
		}
		if server.MetadataUrl() == "" {
			return fmt.Errorf(
				"error %d: server %q of type %q has no metadata url",
				eperrors.INPUT_ERROR,
				server.Name,
				server.Type,
			)
		}
	}
	e.RemoveDuplicates()
	return nil
}

// DlOptions is the struct that contains the options for downloading server assets.
type DlOptions struct {
	ctx    context.Context
	cancel context.CancelFunc

	// BaseDownloadDirPath is the output root. Each
	// server gets its own subdirectory under it.
	BaseDownloadDirPath string

	Configs *configs.Config

	// Filters restricts which enumerated assets are downloaded.
	// A nil value downloads everything.
	Filters *filters.Filters

	Notifier notify.Notifier

	// Progress indicators
	MainProgBar          progress.ProgressBar
	DownloadProgressBars *threadsafe.Slice[*progress.DownloadProgressBar]
}

// ProgressBarInfo bundles the progress indicators
// for httpfuncs.DownloadUrls.
func (d *DlOptions) ProgressBarInfo() *progress.ProgressBarInfo {
	return &progress.ProgressBarInfo{
		MainProgressBar:      d.MainProgBar,
		DownloadProgressBars: d.DownloadProgressBars,
	}
}

func (d *DlOptions) GetConfigs() *configs.Config {
	return d.Configs
}

func (d *DlOptions) GetNotifier() notify.Notifier {
	return d.Notifier
}

func (d *DlOptions) GetContext() context.Context {
	return d.ctx
}

func (d *DlOptions) SetContext(ctx context.Context) {
	d.ctx, d.cancel = context.WithCancel(ctx)
}

// CancelCtx releases the resources used and cancels the context of the DlOptions struct.
func (d *DlOptions) CancelCtx() {
	d.cancel()
}

func (d *DlOptions) CtxIsActive() bool {
	return d.ctx.Err() == nil
}

// ValidateArgs validates the options for downloading server assets.
//
// Should be called after initialising the struct.
func (d *DlOptions) ValidateArgs() error {
	if d.GetContext() == nil {
		d.SetContext(context.Background())
	}

	if d.Configs == nil {
		return fmt.Errorf(
			"error %d: configs is nil",
			eperrors.DEV_ERROR,
		)
	}

	if d.BaseDownloadDirPath == "" {
		d.BaseDownloadDirPath = d.Configs.OutputDirPath
	}

	if d.Configs.MaxConcurrency <= 0 {
		d.Configs.MaxConcurrency = constants.MAX_CONCURRENT_DOWNLOADS
	}

	if d.Filters != nil {
		if err := d.Filters.ValidateArgs(); err != nil {
			return err
		}
	}

	if d.Notifier == nil {
		d.Notifier = notify.NewLogNotifier()
	}

	if d.MainProgBar == nil {
		d.MainProgBar = &progress.DummyProgBar{}
	}
	return nil
}
