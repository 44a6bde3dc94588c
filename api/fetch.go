package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/httpfuncs"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
)

// FetchError wraps any failure to obtain the metadata
// document for one server. It aborts that server only.
type FetchError struct {
	Server string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf(
			"error %d: failed to fetch metadata for %s, status code %d",
			eperrors.FETCH_ERROR,
			e.Server,
			e.Status,
		)
	}
	return fmt.Sprintf(
		"error %d: failed to fetch metadata for %s, more info => %v",
		eperrors.FETCH_ERROR,
		e.Server,
		e.Err,
	)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SchemaError means the metadata document was obtained but
// is not a JSON object. The raw payload is still persisted.
type SchemaError struct {
	Server string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"error %d: unexpected metadata format for %s, more info => %v",
		eperrors.SCHEMA_ERROR,
		e.Server,
		e.Err,
	)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Metadata is the parsed metadata document of one server
// together with the schema used to read asset sections from it.
type Metadata struct {
	Server string
	Raw    []byte
	Doc    map[string]json.RawMessage
	Schema *Schema
}

// persistRawResponse writes the payload to response.json inside the
// server's output directory exactly as received, overwriting any
// previous run's copy.
func persistRawResponse(serverDirPath string, payload []byte) error {
	if err := os.MkdirAll(serverDirPath, constants.DEFAULT_PERMS); err != nil {
		return fmt.Errorf(
			"error %d: failed to create %s, more info => %w",
			eperrors.WRITE_ERROR,
			serverDirPath,
			err,
		)
	}

	respPath := filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME)
	if err := os.WriteFile(respPath, payload, 0666); err != nil {
		return fmt.Errorf(
			"error %d: failed to write %s, more info => %w",
			eperrors.WRITE_ERROR,
			respPath,
			err,
		)
	}
	return nil
}

// ParseAndPersist saves the raw metadata payload verbatim under the
// server's output directory and parses it against the server type's
// schema. The raw bytes are written even when parsing fails so that
// the on-disk copy can be inspected afterwards.
func ParseAndPersist(server *ServerTarget, serverDirPath string, payload []byte) (*Metadata, error) {
	schema, err := SchemaForType(server.Type)
	if err != nil {
		return nil, err
	}

	if err := persistRawResponse(serverDirPath, payload); err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := httpfuncs.LoadJsonFromBytes(server.MetadataUrl(), payload, &doc); err != nil {
		return nil, &SchemaError{
			Server: server.Name,
			Err:    err,
		}
	}

	return &Metadata{
		Server: server.Name,
		Raw:    payload,
		Doc:    doc,
		Schema: schema,
	}, nil
}

// FetchMetadata GETs the server's metadata endpoint, persists the raw
// response body under the server's output directory, and parses it.
func FetchMetadata(ctx context.Context, server *ServerTarget, serverDirPath string, dlOptions *DlOptions) (*Metadata, error) {
	reqUrl := server.MetadataUrl()
	if reqUrl == "" {
		return nil, &FetchError{
			Server: server.Name,
			Err: fmt.Errorf(
				"error %d: no metadata url for server %s",
				eperrors.INPUT_ERROR,
				server.Name,
			),
		}
	}

	useHttp3 := httpfuncs.IsHttp3Supported(reqUrl)
	res, err := httpfuncs.CallRequest(
		&httpfuncs.RequestArgs{
			Method:    "GET",
			Url:       reqUrl,
			Timeout:   constants.METADATA_TIMEOUT,
			UserAgent: dlOptions.Configs.UserAgent,
			Http2:     !useHttp3,
			Http3:     useHttp3,
			Context:   ctx,
		},
	)
	if err != nil {
		return nil, &FetchError{
			Server: server.Name,
			Err:    err,
		}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Server: server.Name,
			Status: res.StatusCode,
		}
	}

	payload, err := httpfuncs.ReadResBody(res)
	if err != nil {
		return nil, &FetchError{
			Server: server.Name,
			Err:    err,
		}
	}
	return ParseAndPersist(server, serverDirPath, payload)
}

// HasPersistedMetadata reports whether a previous run already
// saved a response.json for the given server directory.
func HasPersistedMetadata(serverDirPath string) bool {
	return iofuncs.PathExists(
		filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME),
	)
}

// LoadPersistedMetadata parses a previous run's response.json without
// touching the network, used as a fallback when the endpoint is down.
func LoadPersistedMetadata(server *ServerTarget, serverDirPath string) (*Metadata, error) {
	schema, err := SchemaForType(server.Type)
	if err != nil {
		return nil, err
	}

	respPath := filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME)
	payload, err := os.ReadFile(respPath)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read %s, more info => %w",
			eperrors.OS_ERROR,
			respPath,
			err,
		)
	}

	var doc map[string]json.RawMessage
	if err := httpfuncs.LoadJsonFromBytes(respPath, payload, &doc); err != nil {
		return nil, &SchemaError{
			Server: server.Name,
			Err:    err,
		}
	}

	return &Metadata{
		Server: server.Name,
		Raw:    payload,
		Doc:    doc,
		Schema: schema,
	}, nil
}
