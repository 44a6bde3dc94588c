package httpfuncs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

// IsHttp3Supported checks if the URL's domain is known to support HTTP/3
func IsHttp3Supported(reqUrl string) bool {
	for _, domain := range constants.HTTP3_SUPPORT_ARR {
		if strings.HasPrefix(reqUrl, domain) {
			return true
		}
	}
	return false
}

func (args *RequestArgs) validateHttp3Arg() {
	if !args.Http2 && !args.Http3 {
		// if http2 and http3 are not enabled,
		// check if the URL supports HTTP/3 first
		// before falling back to the default HTTP/2.
		if IsHttp3Supported(args.Url) {
			args.Http3 = true
		} else {
			args.Http2 = true
		}
	} else if args.Http2 && args.Http3 {
		panic(
			fmt.Errorf(
				"error %d: http2 and http3 cannot be enabled at the same time",
				eperrors.DEV_ERROR,
			),
		)
	}
}

func (args *RequestArgs) getDefaultArgs() {
	if args.RequestHandler == nil {
		args.RequestHandler = CallRequest
	}

	if args.Headers == nil {
		args.Headers = make(map[string]string)
	}

	if args.Params == nil {
		args.Params = make(map[string]string)
	}

	if args.Cookies == nil {
		args.Cookies = make([]*http.Cookie, 0)
	}

	if args.UserAgent == "" {
		args.UserAgent = constants.USER_AGENT
	}

	if args.Context == nil {
		args.Context = context.Background()
	}
}

// ValidateArgs validates the arguments of the request
//
// Will panic if the arguments are invalid as this is a developer error
func (args *RequestArgs) ValidateArgs() {
	args.getDefaultArgs()
	args.validateHttp3Arg()

	if args.Method == "" {
		panic(
			fmt.Errorf(
				"error %d: method cannot be empty",
				eperrors.DEV_ERROR,
			),
		)
	}

	if args.Url == "" {
		panic(
			fmt.Errorf(
				"error %d: url cannot be empty",
				eperrors.DEV_ERROR,
			),
		)
	}

	if args.Timeout < 0 {
		panic(
			fmt.Errorf(
				"error %d: timeout cannot be negative",
				eperrors.DEV_ERROR,
			),
		)
	} else if args.Timeout == 0 {
		args.Timeout = constants.DEFAULT_HEAD_REQ_TIMEOUT
	}
}
