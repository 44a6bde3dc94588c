package httpfuncs

import (
	"context"
	"net/http"
	"sync"

	"github.com/FanaticExplorer/EmojiesParser/progress"
)

type RequestHandler func(reqArgs *RequestArgs) (*http.Response, error)

type RequestArgs struct {
	// Main Request Options
	Method  string
	Url     string
	Timeout int

	// Additional Request Options
	Headers            map[string]string
	Params             map[string]string
	Cookies            []*http.Cookie
	UserAgent          string
	DisableCompression bool

	// HTTP/2 and HTTP/3 Options
	Http2 bool
	Http3 bool

	// Check status will check the status code of the response for 2xx.
	// If the status code is not 2xx, it will retry several times and
	// if the status code is still not 2xx, it will return an error.
	// Otherwise, it will return the response regardless of the status code.
	CheckStatus bool

	// Context is used to cancel the request if needed.
	// E.g. if the user presses Ctrl+C, we can use context.WithCancel(context.Background())
	Context context.Context

	// RetryDelay overrides the default random delay between retries.
	RetryDelay *RetryDelay

	// RequestHandler is the main function that will be called to make the request.
	RequestHandler RequestHandler

	// EditMu guards edits of Headers/Cookies/Params when the
	// same args value is shared between download goroutines.
	EditMu sync.Mutex
}

// ToDownload is one file to retrieve, where FilePath is the
// final path the body will be renamed into after a successful download.
type ToDownload struct {
	Url      string
	FilePath string
}

// DlResult is the terminal state of one ToDownload entry.
type DlResult struct {
	Url      string
	FilePath string

	// Skipped is true when a file already
	// existed at FilePath and no request was made.
	Skipped bool

	// Err is non-nil when the download failed. The failure never
	// aborts the rest of the batch; callers aggregate these instead.
	Err error
}

type DlOptions struct {
	// MaxConcurrency is the maximum number of concurrent downloads
	MaxConcurrency int

	// Cookies is a list of cookies to be used in the download process
	Cookies []*http.Cookie

	// Headers is a map of headers to be used in the download process
	Headers map[string]string

	// UseHttp3 is a flag to enable HTTP/3
	// Otherwise, HTTP/2 will be used by default
	UseHttp3 bool

	// RetryDelay overrides the default random delay between retries
	RetryDelay *RetryDelay

	Context context.Context

	ProgressBarInfo *progress.ProgressBarInfo
}
