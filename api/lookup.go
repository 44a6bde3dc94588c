package api

import (
	"context"
	"strings"
	"sync"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/httpfuncs"
	"github.com/PuerkitoBio/goquery"
)

var (
	displayNameMu    sync.Mutex
	displayNameCache = make(map[string]string)
)

// GetDisplayName returns a human readable name for the server, used
// in progress and summary messages. For guild servers it scrapes the
// lookup page's title, falling back to the configured name when the
// page cannot be fetched or parsed. Results are cached per server name.
func GetDisplayName(ctx context.Context, server *ServerTarget, userAgent string) string {
	if server.Type != constants.GUILD {
		return server.Name
	}

	displayNameMu.Lock()
	name, ok := displayNameCache[server.Name]
	displayNameMu.Unlock()
	if ok {
		return name
	}

	// scrape without holding the lock so that a slow lookup page
	// never blocks lookups for other servers
	name = scrapeDisplayName(ctx, server.Name, userAgent)

	displayNameMu.Lock()
	displayNameCache[server.Name] = name
	displayNameMu.Unlock()
	return name
}

func scrapeDisplayName(ctx context.Context, inviteCode, userAgent string) string {
	res, err := httpfuncs.CallRequest(
		&httpfuncs.RequestArgs{
			Method:      "GET",
			Url:         constants.NELLY_LOOKUP_URL + "/" + inviteCode,
			Timeout:     constants.DEFAULT_HEAD_REQ_TIMEOUT,
			UserAgent:   userAgent,
			CheckStatus: true,
			Http2:       true,
			Context:     ctx,
		},
	)
	if err != nil {
		return inviteCode
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return inviteCode
	}

	if title, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
		return title
	}
	return inviteCode
}
