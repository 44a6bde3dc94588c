package api

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
)

// ServerTarget is one configured source to scrape.
type ServerTarget struct {
	// Name is used as the server's output directory name.
	// For guild servers it is also the guild invite slug.
	Name string

	// Type is one of the known server types (constants.GUILD, constants.EMOTE)
	Type string

	// Url is the metadata endpoint. Can be left empty for guild
	// servers as their endpoint is derived from the invite slug.
	Url string
}

// MetadataUrl returns the endpoint the metadata JSON is fetched from
func (s *ServerTarget) MetadataUrl() string {
	if s.Url != "" {
		return s.Url
	}
	if s.Type == constants.GUILD {
		return fmt.Sprintf(constants.NELLY_GUILD_API_URL_FORMAT, s.Name)
	}
	return ""
}

// OutputDir returns the directory that response.json
// and the emojis/stickers subdirectories live under
func (s *ServerTarget) OutputDir(outputDirPath string) string {
	return filepath.Join(outputDirPath, iofuncs.CleanPathName(s.Name))
}

// AssetDescriptor is the in-memory record for
// one emoji or sticker pending download.
type AssetDescriptor struct {
	// Kind is either constants.EMOJI_KIND or constants.STICKER_KIND
	Kind string

	// Name is the sanitized display name, unique within its
	// kind for one enumeration (collisions get a numeric suffix)
	Name string

	Url string

	// Ext is the file extension inferred from the URL suffix.
	// Empty when the URL carries no extension, in which case the
	// downloader infers it from the response's Content-Type header.
	Ext string
}

func kindFolder(kind string) string {
	if kind == constants.STICKER_KIND {
		return constants.STICKERS_FOLDER
	}
	return constants.EMOJIS_FOLDER
}

// TargetPath returns the final file path of the asset,
// <serverDir>/<kind>s/<name><ext>
func (d *AssetDescriptor) TargetPath(serverDirPath string) string {
	return filepath.Join(
		serverDirPath,
		kindFolder(d.Kind),
		d.Name+strings.ToLower(d.Ext),
	)
}

// Identifier returns a short human readable id used in failure reports
func (d *AssetDescriptor) Identifier() string {
	return d.Kind + "/" + d.Name
}
