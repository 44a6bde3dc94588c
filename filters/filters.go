package filters

import (
	"errors"
	"regexp"
	"strings"

	"github.com/FanaticExplorer/EmojiesParser/constants"
)

// Filters narrows down which of a server's assets get downloaded.
// The zero value lets everything through.
type Filters struct {
	// Kinds restricts the asset kinds to download,
	// e.g. only "emoji" or only "sticker"
	Kinds []string

	// FileExt restricts the downloaded file extensions, e.g. ".png"
	FileExt []string

	NameFilter *regexp.Regexp
}

func (f *Filters) ValidateArgs() error {
	for _, kind := range f.Kinds {
		if kind != constants.EMOJI_KIND && kind != constants.STICKER_KIND {
			return errors.New("asset kind must be either emoji or sticker")
		}
	}

	for idx, ext := range f.FileExt {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return errors.New("file extension cannot be empty")
		}
		if !strings.HasPrefix(ext, ".") {
			return errors.New("file extension must start with a period")
		}
		f.FileExt[idx] = ext
	}
	return nil
}

func (f *Filters) IsKindValid(kind string) bool {
	if len(f.Kinds) == 0 {
		return true
	}
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (f *Filters) IsFileExtValid(fileExt string) bool {
	if len(f.FileExt) == 0 || fileExt == "" {
		// an empty extension is resolved from the response
		// headers at download time, so it cannot be filtered here
		return true
	}
	for _, ext := range f.FileExt {
		if ext == fileExt {
			return true
		}
	}
	return false
}

func (f *Filters) IsNameValid(name string) bool {
	if f.NameFilter == nil {
		return true
	}
	return f.NameFilter.MatchString(name)
}
