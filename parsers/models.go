package parsers

// ServerListEntry is one line/element of a user-supplied server list file.
type ServerListEntry struct {
	// Name is the server's output directory name and, for
	// guild servers, doubles as the guild invite slug
	Name string `json:"name"`

	// Type is one of the known server types (guild, emote)
	Type string `json:"type"`

	// Url overrides the metadata endpoint. Optional for guild
	// servers as their endpoint is derived from the invite.
	Url string `json:"url,omitempty"`
}
