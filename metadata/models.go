package metadata

// FailedAsset identifies one asset that could not be
// downloaded, kept around so users can retry it manually.
type FailedAsset struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Url    string `json:"url"`
	Reason string `json:"reason"`
}

// ServerSummary is the per-server outcome of one run.
type ServerSummary struct {
	Server          string `json:"server"`
	MetadataFetched bool   `json:"metadata_fetched"`

	// Error that aborted the server's processing
	// before any asset could be downloaded, if any
	FetchError string `json:"fetch_error,omitempty"`

	Downloaded int `json:"downloaded"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`

	FailedAssets []FailedAsset `json:"failed_assets,omitempty"`
}

// RunSummary aggregates every configured server's summary.
type RunSummary struct {
	Servers []*ServerSummary `json:"servers"`
}

func (r *RunSummary) Totals() (downloaded, skipped, failed int) {
	for _, server := range r.Servers {
		downloaded += server.Downloaded
		skipped += server.Skipped
		failed += server.Failed
	}
	return downloaded, skipped, failed
}
