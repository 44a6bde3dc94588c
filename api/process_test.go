package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/filters"
	"github.com/FanaticExplorer/EmojiesParser/metadata"
)

func guildMetadataBody(assetBaseUrl string) string {
	return fmt.Sprintf(`{
		"name": "Test Guild",
		"emojis": [
			{"name": "smile", "url": "%s/emojis/smile.png"},
			{"name": "dance", "url": "%s/emojis/dance.gif"}
		],
		"stickers": []
	}`, assetBaseUrl, assetBaseUrl)
}

func newAssetServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("asset bytes for " + r.URL.Path))
	}))
}

func TestProcessServer(t *testing.T) {
	assetServer := newAssetServer()
	defer assetServer.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "testguild", Type: constants.GUILD}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	serverMetadata, err := ParseAndPersist(target, serverDirPath, []byte(guildMetadataBody(assetServer.URL)))
	if err != nil {
		t.Fatal(err)
	}

	summary, cancelled := ProcessServer(serverMetadata, target, dlOptions)
	if cancelled {
		t.Fatal("the run was cancelled unexpectedly")
	}
	if summary.Downloaded != 2 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("Unexpected summary: %+v", summary)
	}

	for _, filename := range []string{"smile.png", "dance.gif"} {
		assetPath := filepath.Join(serverDirPath, constants.EMOJIS_FOLDER, filename)
		if _, err := os.Stat(assetPath); err != nil {
			t.Errorf("Expected %s to exist, got %v", assetPath, err)
		}
	}

	// the stickers directory must exist even though the guild has no stickers
	stickersDir := filepath.Join(serverDirPath, constants.STICKERS_FOLDER)
	entries, err := os.ReadDir(stickersDir)
	if err != nil {
		t.Fatalf("Expected %s to exist, got %v", stickersDir, err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected an empty stickers directory, got %d entries", len(entries))
	}

	summaryBytes, err := os.ReadFile(filepath.Join(serverDirPath, constants.SUMMARY_JSON_FILENAME))
	if err != nil {
		t.Fatalf("Expected summary.json to exist, got %v", err)
	}
	var written metadata.ServerSummary
	if err := json.Unmarshal(summaryBytes, &written); err != nil {
		t.Fatal(err)
	}
	if written.Downloaded != 2 || !written.MetadataFetched {
		t.Errorf("Unexpected written summary: %+v", written)
	}
}

func TestProcessServerResolvesExtlessAssetUrls(t *testing.T) {
	assetServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png bytes"))
	}))
	defer assetServer.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "testguild", Type: constants.GUILD}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	body := fmt.Sprintf(`{
		"name": "Test Guild",
		"emojis": [{"name": "wave", "url": "%s/assets/123456"}],
		"stickers": []
	}`, assetServer.URL)
	serverMetadata, err := ParseAndPersist(target, serverDirPath, []byte(body))
	if err != nil {
		t.Fatal(err)
	}

	summary, _ := ProcessServer(serverMetadata, target, dlOptions)
	if summary.Downloaded != 1 || summary.Failed != 0 {
		t.Fatalf("Unexpected summary: %+v", summary)
	}

	// the asset must land at emojis/<name>.<ext>, never in a
	// directory named after the asset
	assetPath := filepath.Join(serverDirPath, constants.EMOJIS_FOLDER, "wave.png")
	info, err := os.Stat(assetPath)
	if err != nil {
		t.Fatalf("Expected %s to exist, got %v", assetPath, err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Expected a regular file at %s", assetPath)
	}
	namePath := filepath.Join(serverDirPath, constants.EMOJIS_FOLDER, "wave")
	if info, err := os.Stat(namePath); err == nil && info.IsDir() {
		t.Errorf("Expected no directory at %s", namePath)
	}
}

func TestProcessServerRerunSkips(t *testing.T) {
	assetServer := newAssetServer()
	defer assetServer.Close()

	dlOptions := testApiDlOptions(t)
	target := &ServerTarget{Name: "testguild", Type: constants.GUILD}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	serverMetadata, err := ParseAndPersist(target, serverDirPath, []byte(guildMetadataBody(assetServer.URL)))
	if err != nil {
		t.Fatal(err)
	}

	first, _ := ProcessServer(serverMetadata, target, dlOptions)
	if first.Downloaded != 2 {
		t.Fatalf("Expected 2 downloads on the first run, got %d", first.Downloaded)
	}

	second, _ := ProcessServer(serverMetadata, target, dlOptions)
	if second.Downloaded != 0 || second.Skipped != 2 {
		t.Errorf("Expected the second run to skip everything, got %+v", second)
	}
}

func TestProcessServerFilters(t *testing.T) {
	assetServer := newAssetServer()
	defer assetServer.Close()

	dlOptions := testApiDlOptions(t)
	dlOptions.Filters = &filters.Filters{FileExt: []string{".gif"}}
	target := &ServerTarget{Name: "testguild", Type: constants.GUILD}
	serverDirPath := target.OutputDir(dlOptions.BaseDownloadDirPath)

	serverMetadata, err := ParseAndPersist(target, serverDirPath, []byte(guildMetadataBody(assetServer.URL)))
	if err != nil {
		t.Fatal(err)
	}

	summary, _ := ProcessServer(serverMetadata, target, dlOptions)
	if summary.Downloaded != 1 {
		t.Errorf("Expected only the .gif emoji to be downloaded, got %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(serverDirPath, constants.EMOJIS_FOLDER, "smile.png")); err == nil {
		t.Error("Expected the filtered out .png emoji to be absent")
	}
}
