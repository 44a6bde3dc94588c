package parsers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/FanaticExplorer/EmojiesParser/constants"
	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
	"github.com/FanaticExplorer/EmojiesParser/iofuncs"
)

func isKnownServerType(serverType string) bool {
	return serverType == constants.GUILD || serverType == constants.EMOTE
}

func validateEntry(entry *ServerListEntry, filePath string) error {
	if !constants.SERVER_NAME_REGEX.MatchString(entry.Name) {
		return fmt.Errorf(
			"error %d: invalid server name %q in %s",
			eperrors.INPUT_ERROR,
			entry.Name,
			filePath,
		)
	}
	if !isKnownServerType(entry.Type) {
		return fmt.Errorf(
			"error %d: unknown server type %q for server %q in %s",
			eperrors.INPUT_ERROR,
			entry.Type,
			entry.Name,
			filePath,
		)
	}
	if entry.Type != constants.GUILD && entry.Url == "" {
		return fmt.Errorf(
			"error %d: server %q of type %q requires a metadata URL in %s",
			eperrors.INPUT_ERROR,
			entry.Name,
			entry.Type,
			filePath,
		)
	}
	return nil
}

// Parses one line of a text server list file in the format
//
//	<name>\t<type>[\t<url>]
//
// Empty lines and lines starting with "#" are skipped.
func readTxtServerLine(line, filePath string) (*ServerListEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, eperrors.ErrSkipLine // skip empty lines and comments
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return nil, eperrors.ErrSkipLine // too few values will be ignored
	}

	entry := &ServerListEntry{
		Name: strings.TrimSpace(fields[0]),
		Type: strings.TrimSpace(fields[1]),
	}
	if len(fields) >= 3 {
		entry.Url = strings.TrimSpace(fields[2])
	}

	if err := validateEntry(entry, filePath); err != nil {
		return nil, err
	}
	return entry, nil
}

func parseTxtServerList(f *os.File, filePath string) ([]*ServerListEntry, error) {
	var entries []*ServerListEntry
	reader := bufio.NewReader(f)
	for {
		lineBytes, err := iofuncs.ReadLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf(
				"error %d: reading server list file at %s, more info => %w",
				eperrors.OS_ERROR,
				filePath,
				err,
			)
		}

		entry, err := readTxtServerLine(string(lineBytes), filePath)
		if err != nil {
			if errors.Is(err, eperrors.ErrSkipLine) {
				continue
			}
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseJsonServerList(f *os.File, filePath string) ([]*ServerListEntry, error) {
	var entries []*ServerListEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to decode server list file at %s, more info => %w",
			eperrors.JSON_ERROR,
			filePath,
			err,
		)
	}

	for _, entry := range entries {
		if err := validateEntry(entry, filePath); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// ParseServerListFile reads the configured servers from a
// .json or .txt file based on the file's extension.
func ParseServerListFile(filePath string) ([]*ServerListEntry, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to open server list file at %s, more info => %w",
			eperrors.OS_ERROR,
			filePath,
			err,
		)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".json":
		return parseJsonServerList(f, filePath)
	case ".txt":
		return parseTxtServerList(f, filePath)
	default:
		return nil, fmt.Errorf(
			"error %d: unsupported server list file extension %q, only .json and .txt are supported",
			eperrors.INPUT_ERROR,
			ext,
		)
	}
}
