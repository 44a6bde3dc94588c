package constants

import (
	"regexp"
)

const (
	DEBUG_MODE    = false // Will save a copy of all JSON metadata responses fetched from the APIs
	DEFAULT_PERMS = 0755  // Owner: rwx, Group: rx, Others: rx
	VERSION       = "1.2.0"

	MAX_RETRY_DELAY = 3
	MIN_RETRY_DELAY = 1
	RETRY_COUNTER   = 4

	DEFAULT_HEAD_REQ_TIMEOUT = 15 // in seconds
	METADATA_TIMEOUT         = 30 // in seconds
	DOWNLOAD_TIMEOUT         = 30 // in seconds as emoji/sticker assets are small files

	MAX_CONCURRENT_DOWNLOADS = 4

	GUILD       = "guild"
	GUILD_TITLE = "Guild"
	EMOTE       = "emote"
	EMOTE_TITLE = "Emote"

	NELLY_URL                  = "https://nelly.tools"
	NELLY_LOOKUP_URL           = NELLY_URL + "/lookup/guild"
	NELLY_GUILD_API_URL_FORMAT = NELLY_URL + "/api/lookup/guild-followup/%s"
	NELLY_GUILD_API_URL_HINT   = "nelly.tools/api/lookup/guild-followup/"
	NELLY_CAPTURE_TIMEOUT      = 60 // in seconds, same as the lookup page's own timeout
	NELLY_LOOKUP_INPUT_ID      = "inputVal"

	OUTPUT_DIR_NAME        = "output"
	RESPONSE_JSON_FILENAME = "response.json"
	SUMMARY_JSON_FILENAME  = "summary.json"
	EMOJIS_FOLDER          = "emojis"
	STICKERS_FOLDER        = "stickers"
	TMP_FILE_SUFFIX        = ".part"

	EMOJI_KIND   = "emoji"
	STICKER_KIND = "sticker"

	DEFAULT_ASSET_EXT = ".png"
)

// Although the variables below are not
// constants, they are not supposed to be changed
var (
	// Guild invites and server directory names are
	// expected to be simple slugs like "archlinux"
	SERVER_NAME_REGEX = regexp.MustCompile(`^[\w-]+$`)

	ARCHIVE_EXTS = [...]string{".zip", ".7z", ".tar", ".tar.gz", ".tgz"}

	HTTP3_SUPPORT_ARR = [...]string{
		"https://www.google.com",
	}
)
