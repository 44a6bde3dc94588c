package api

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/httpfuncs"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
	"github.com/FanaticExplorer/EmojiesParser/logger"
)

func extFromUrl(assetUrl string) string {
	lastPart := httpfuncs.GetLastPartOfUrl(assetUrl)
	ext := filepath.Ext(lastPart)
	if len(ext) <= 1 || len(ext) > 6 {
		// not a usable extension, let the downloader
		// derive one from the response headers instead
		return ""
	}
	return ext
}

// dedupeName returns a name unique within its kind for this
// enumeration. The first occurrence keeps the original name,
// later ones get a numeric suffix starting from 2.
func dedupeName(name string, seen map[string]int) string {
	seen[name]++
	if count := seen[name]; count > 1 {
		return fmt.Sprintf("%s_%d", name, count)
	}
	return name
}

// appendSection parses one asset array out of the metadata document
// and appends a descriptor per valid element. A missing or malformed
// section is logged and skipped without affecting the other sections.
func (m *Metadata) appendSection(descriptors []*AssetDescriptor, sectionKey, kind string) []*AssetDescriptor {
	raw, ok := m.Doc[sectionKey]
	if !ok {
		return descriptors
	}

	var elements []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		logger.MainLogger.Errorf(
			"%q section of %s is not an array, skipping it",
			sectionKey,
			m.Server,
		)
		return descriptors
	}

	seen := make(map[string]int)
	for _, element := range elements {
		var name, assetUrl string
		if rawName, ok := element[m.Schema.NameKey]; ok {
			json.Unmarshal(rawName, &name)
		}
		if rawUrl, ok := element[m.Schema.UrlKey]; ok {
			json.Unmarshal(rawUrl, &assetUrl)
		}
		if name == "" || assetUrl == "" {
			logger.MainLogger.Debugf(
				"skipping %s element of %s with missing %q or %q",
				kind,
				m.Server,
				m.Schema.NameKey,
				m.Schema.UrlKey,
			)
			continue
		}

		descriptors = append(descriptors, &AssetDescriptor{
			Kind: kind,
			Name: dedupeName(iofuncs.CleanPathName(name), seen),
			Url:  assetUrl,
			Ext:  extFromUrl(assetUrl),
		})
	}
	return descriptors
}

// Descriptors enumerates the downloadable assets described by the
// metadata document using the server type's schema. Each call walks
// the parsed document again, so it can be repeated after a partial run.
func (m *Metadata) Descriptors() []*AssetDescriptor {
	var descriptors []*AssetDescriptor
	descriptors = m.appendSection(descriptors, m.Schema.EmojisKey, constants.EMOJI_KIND)
	if m.Schema.StickersKey != "" {
		descriptors = m.appendSection(descriptors, m.Schema.StickersKey, constants.STICKER_KIND)
	}
	return descriptors
}
