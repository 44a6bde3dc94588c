package api

import (
	"fmt"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

// Schema maps a server type to the JSON keys its metadata
// document uses for the asset sections and the per-asset fields.
type Schema struct {
	// EmojisKey is the top-level key holding the emoji array
	EmojisKey string

	// StickersKey is the top-level key holding the sticker
	// array. Empty when the server type has no stickers.
	StickersKey string

	// NameKey is the per-asset key holding the display name
	NameKey string

	// UrlKey is the per-asset key holding the download URL
	UrlKey string
}

var serverSchemas = map[string]*Schema{
	constants.GUILD: {
		EmojisKey:   "emojis",
		StickersKey: "stickers",
		NameKey:     "name",
		UrlKey:      "url",
	},
	constants.EMOTE: {
		EmojisKey: "emotes",
		NameKey:   "code",
		UrlKey:    "url",
	},
}

// SchemaForType returns the schema for the given server type
func SchemaForType(serverType string) (*Schema, error) {
	schema, ok := serverSchemas[serverType]
	if !ok {
		return nil, fmt.Errorf(
			"error %d: unknown server type %q",
			eperrors.INPUT_ERROR,
			serverType,
		)
	}
	return schema, nil
}
