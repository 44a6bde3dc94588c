package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FanaticExplorer/EmojiesParser/configs"
	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/progress"
)

func testApiDlOptions(t *testing.T) *DlOptions {
	dlOptions := &DlOptions{
		BaseDownloadDirPath: t.TempDir(),
		Configs: &configs.Config{
			UserAgent:      "test-agent",
			MaxConcurrency: 2,
		},
		MainProgBar: &progress.DummyProgBar{},
	}
	dlOptions.SetContext(context.Background())
	t.Cleanup(dlOptions.CancelCtx)
	return dlOptions
}

func TestFetchMetadataPersistsRawResponse(t *testing.T) {
	// deliberately odd formatting, the file on disk
	// must be byte-for-byte what the endpoint returned
	rawBody := "{\n  \"name\": \"Test Guild\",\n\t\"emojis\": [],  \"stickers\": []\n}"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawBody))
	}))
	defer server.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "testguild", Type: constants.GUILD, Url: server.URL}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	serverMetadata, err := FetchMetadata(dlOptions.GetContext(), target, serverDirPath, dlOptions)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if serverMetadata.Schema.EmojisKey != "emojis" {
		t.Errorf("Expected the guild schema, got %+v", serverMetadata.Schema)
	}
	if _, ok := serverMetadata.Doc["name"]; !ok {
		t.Error("Expected the parsed document to have the name key")
	}

	written, err := os.ReadFile(filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME))
	if err != nil {
		t.Fatalf("Expected response.json to exist, got %v", err)
	}
	if string(written) != rawBody {
		t.Errorf("Expected response.json to match the raw response, got %q", written)
	}
}

func TestFetchMetadataStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "brokenguild", Type: constants.GUILD, Url: server.URL}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	_, err := FetchMetadata(dlOptions.GetContext(), target, serverDirPath, dlOptions)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected a FetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", fetchErr.Status)
	}

	respPath := filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME)
	if _, statErr := os.Stat(respPath); statErr == nil {
		t.Error("Expected no response.json for a failed fetch")
	}
}

func TestFetchMetadataSchemaError(t *testing.T) {
	rawBody := `[1, 2, 3]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawBody))
	}))
	defer server.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "weirdguild", Type: constants.GUILD, Url: server.URL}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	_, err := FetchMetadata(dlOptions.GetContext(), target, serverDirPath, dlOptions)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected a SchemaError, got %v", err)
	}

	// the raw payload must still be inspectable on disk
	written, readErr := os.ReadFile(filepath.Join(serverDirPath, constants.RESPONSE_JSON_FILENAME))
	if readErr != nil {
		t.Fatalf("Expected response.json to exist, got %v", readErr)
	}
	if string(written) != rawBody {
		t.Errorf("Expected response.json to match the raw response, got %q", written)
	}
}

func TestMetadataUrlForGuild(t *testing.T) {
	target := &ServerTarget{Name: "archlinux", Type: constants.GUILD}
	expected := "https://nelly.tools/api/lookup/guild-followup/archlinux"
	if reqUrl := target.MetadataUrl(); reqUrl != expected {
		t.Errorf("Expected %q, got %q", expected, reqUrl)
	}

	// an explicit URL always wins over the derived one
	target.Url = "https://example.com/api"
	if reqUrl := target.MetadataUrl(); reqUrl != target.Url {
		t.Errorf("Expected %q, got %q", target.Url, reqUrl)
	}
}

func TestSchemaForTypeUnknown(t *testing.T) {
	if _, err := SchemaForType("unknown"); err == nil {
		t.Error("Expected an error for an unknown server type")
	}
}
