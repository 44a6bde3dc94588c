package guildcapture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/logger"
)

const checkBtnSelector = `//button[contains(text(), 'Check')]`

func getBrowserAllocOpts(userAgent string) []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(userAgent),
		chromedp.Flag("headless", "new"),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
}

// CaptureGuildMetadata drives a headless browser through the guild
// lookup page and captures the metadata payload from the network
// response of the lookup API call made by the page itself, which
// carries session headers that a plain HTTP request cannot replay.
func CaptureGuildMetadata(ctx context.Context, inviteCode, userAgent string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, getBrowserAllocOpts(userAgent)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(
		browserCtx,
		constants.NELLY_CAPTURE_TIMEOUT*time.Second,
	)
	defer cancelTimeout()

	// capture the request id of the lookup API response once the
	// page fires it, then pull its body from the browser's cache
	requestIdChan := make(chan network.RequestID, 1)
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if res, ok := ev.(*network.EventResponseReceived); ok {
			if isLookupApiUrl(res.Response.URL) {
				select {
				case requestIdChan <- res.RequestID:
				default:
				}
			}
		}
	})

	err := chromedp.Run(browserCtx,
		network.Enable(),
		chromedp.Navigate(constants.NELLY_LOOKUP_URL),
		chromedp.WaitVisible("#"+constants.NELLY_LOOKUP_INPUT_ID, chromedp.ByID),
		chromedp.SendKeys("#"+constants.NELLY_LOOKUP_INPUT_ID, inviteCode, chromedp.ByID),
		chromedp.Click(checkBtnSelector, chromedp.BySearch),
	)
	if err != nil {
		return nil, wrapCaptureErr(inviteCode, err)
	}

	var requestId network.RequestID
	select {
	case requestId = <-requestIdChan:
	case <-browserCtx.Done():
		return nil, wrapCaptureErr(inviteCode, browserCtx.Err())
	}

	var payload []byte
	err = chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			// the body is not always cached immediately
			// after the responseReceived event fires
			var bodyErr error
			for i := 0; i < 5; i++ {
				payload, bodyErr = network.GetResponseBody(requestId).Do(ctx)
				if bodyErr == nil {
					return nil
				}
				time.Sleep(200 * time.Millisecond)
			}
			return bodyErr
		}),
	)
	if err != nil {
		return nil, wrapCaptureErr(inviteCode, err)
	}

	logger.MainLogger.Debugf(
		"captured %d bytes of guild metadata for %s",
		len(payload),
		inviteCode,
	)
	return payload, nil
}

func isLookupApiUrl(resUrl string) bool {
	return strings.Contains(resUrl, constants.NELLY_GUILD_API_URL_HINT)
}

func wrapCaptureErr(inviteCode string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf(
			"error %d: %w\nguild: %s",
			eperrors.CAPTURE_ERROR,
			eperrors.ErrCaptureTimeout,
			inviteCode,
		)
	}
	return fmt.Errorf(
		"error %d: failed to capture guild metadata for %s, more info => %w",
		eperrors.CAPTURE_ERROR,
		inviteCode,
		err,
	)
}
