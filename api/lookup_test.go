package api

import (
	"context"
	"sync"
	"testing"

	"github.com/FanaticExplorer/EmojiesParser/constants"
)

func TestGetDisplayNameUsesCache(t *testing.T) {
	displayNameMu.Lock()
	displayNameCache["cachedguild"] = "Cached Guild"
	displayNameMu.Unlock()
	t.Cleanup(func() {
		displayNameMu.Lock()
		delete(displayNameCache, "cachedguild")
		displayNameMu.Unlock()
	})

	server := &ServerTarget{Name: "cachedguild", Type: constants.GUILD}
	name := GetDisplayName(context.Background(), server, "test-agent")
	if name != "Cached Guild" {
		t.Errorf("Expected the cached name, got %q", name)
	}
}

func TestGetDisplayNameCachedLookupsDoNotBlockEachOther(t *testing.T) {
	displayNameMu.Lock()
	displayNameCache["firstguild"] = "First Guild"
	displayNameCache["secondguild"] = "Second Guild"
	displayNameMu.Unlock()
	t.Cleanup(func() {
		displayNameMu.Lock()
		delete(displayNameCache, "firstguild")
		delete(displayNameCache, "secondguild")
		displayNameMu.Unlock()
	})

	var wg sync.WaitGroup
	for _, serverName := range []string{"firstguild", "secondguild"} {
		wg.Add(1)
		go func(serverName string) {
			defer wg.Done()
			server := &ServerTarget{Name: serverName, Type: constants.GUILD}
			GetDisplayName(context.Background(), server, "test-agent")
		}(serverName)
	}
	wg.Wait()
}

func TestGetDisplayNameNonGuild(t *testing.T) {
	server := &ServerTarget{Name: "mystreamer", Type: constants.EMOTE}
	name := GetDisplayName(context.Background(), server, "test-agent")
	if name != "mystreamer" {
		t.Errorf("Expected the configured name, got %q", name)
	}
}
