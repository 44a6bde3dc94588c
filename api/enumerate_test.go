package api

import (
	"encoding/json"
	"testing"

	"github.com/FanaticExplorer/EmojiesParser/constants"
)

func metadataFromJson(t *testing.T, serverType, rawBody string) *Metadata {
	schema, err := SchemaForType(serverType)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rawBody), &doc); err != nil {
		t.Fatal(err)
	}
	return &Metadata{
		Server: "testserver",
		Raw:    []byte(rawBody),
		Doc:    doc,
		Schema: schema,
	}
}

func TestDescriptorsGuild(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{
		"name": "Test Guild",
		"emojis": [
			{"name": "smile", "url": "https://cdn.example.com/e/1.png"},
			{"name": "dance", "url": "https://cdn.example.com/e/2.gif"}
		],
		"stickers": [
			{"name": "wave", "url": "https://cdn.example.com/s/3.png"}
		]
	}`)

	descriptors := serverMetadata.Descriptors()
	if len(descriptors) != 3 {
		t.Fatalf("Expected 3 descriptors, got %d", len(descriptors))
	}

	if descriptors[0].Kind != constants.EMOJI_KIND || descriptors[0].Name != "smile" || descriptors[0].Ext != ".png" {
		t.Errorf("Unexpected first descriptor: %+v", descriptors[0])
	}
	if descriptors[1].Ext != ".gif" {
		t.Errorf("Expected .gif, got %q", descriptors[1].Ext)
	}
	if descriptors[2].Kind != constants.STICKER_KIND || descriptors[2].Name != "wave" {
		t.Errorf("Unexpected sticker descriptor: %+v", descriptors[2])
	}
}

func TestDescriptorsEmote(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.EMOTE, `{
		"emotes": [
			{"code": "Kappa", "url": "https://cdn.example.com/emotes/kappa.webp"}
		]
	}`)

	descriptors := serverMetadata.Descriptors()
	if len(descriptors) != 1 {
		t.Fatalf("Expected 1 descriptor, got %d", len(descriptors))
	}
	if descriptors[0].Kind != constants.EMOJI_KIND || descriptors[0].Name != "Kappa" {
		t.Errorf("Unexpected descriptor: %+v", descriptors[0])
	}
}

func TestDescriptorsNameCollision(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{
		"emojis": [
			{"name": "smile", "url": "https://cdn.example.com/e/1.png"},
			{"name": "smile", "url": "https://cdn.example.com/e/2.png"},
			{"name": "smile", "url": "https://cdn.example.com/e/3.png"}
		],
		"stickers": [
			{"name": "smile", "url": "https://cdn.example.com/s/1.png"}
		]
	}`)

	descriptors := serverMetadata.Descriptors()
	if len(descriptors) != 4 {
		t.Fatalf("Expected 4 descriptors, got %d", len(descriptors))
	}

	expected := []string{"smile", "smile_2", "smile_3"}
	for i, name := range expected {
		if descriptors[i].Name != name {
			t.Errorf("Expected %q, got %q", name, descriptors[i].Name)
		}
	}

	// collisions are only disambiguated within the same kind
	if descriptors[3].Name != "smile" {
		t.Errorf("Expected the sticker to keep its name, got %q", descriptors[3].Name)
	}
}

func TestDescriptorsMalformedSection(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{
		"emojis": [
			{"name": "smile", "url": "https://cdn.example.com/e/1.png"}
		],
		"stickers": "not an array"
	}`)

	// a malformed stickers section must not affect the emojis
	descriptors := serverMetadata.Descriptors()
	if len(descriptors) != 1 {
		t.Fatalf("Expected 1 descriptor, got %d", len(descriptors))
	}
	if descriptors[0].Name != "smile" {
		t.Errorf("Expected smile, got %q", descriptors[0].Name)
	}
}

func TestDescriptorsMissingSection(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{"name": "Test Guild"}`)
	if descriptors := serverMetadata.Descriptors(); len(descriptors) != 0 {
		t.Errorf("Expected no descriptors, got %d", len(descriptors))
	}
}

func TestDescriptorsSkipsInvalidElements(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{
		"emojis": [
			{"name": "nourl"},
			{"url": "https://cdn.example.com/e/noname.png"},
			{"name": "ok", "url": "https://cdn.example.com/e/ok.png"}
		]
	}`)

	descriptors := serverMetadata.Descriptors()
	if len(descriptors) != 1 {
		t.Fatalf("Expected 1 descriptor, got %d", len(descriptors))
	}
	if descriptors[0].Name != "ok" {
		t.Errorf("Expected ok, got %q", descriptors[0].Name)
	}
}

func TestDescriptorsIsRepeatable(t *testing.T) {
	serverMetadata := metadataFromJson(t, constants.GUILD, `{
		"emojis": [
			{"name": "smile", "url": "https://cdn.example.com/e/1.png"},
			{"name": "smile", "url": "https://cdn.example.com/e/2.png"}
		]
	}`)

	first := serverMetadata.Descriptors()
	second := serverMetadata.Descriptors()
	if len(first) != len(second) {
		t.Fatalf("Expected both enumerations to match, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("Expected %q, got %q on the second enumeration", first[i].Name, second[i].Name)
		}
	}
}

func TestExtFromUrl(t *testing.T) {
	tests := map[string]string{
		"https://cdn.example.com/e/1.png":          ".png",
		"https://cdn.example.com/e/1.png?size=128": ".png",
		"https://cdn.example.com/e/noext":          "",
		"https://cdn.example.com/e/v1.2.3.437284":  "",
	}
	for assetUrl, expected := range tests {
		if ext := extFromUrl(assetUrl); ext != expected {
			t.Errorf("Expected %q for %s, got %q", expected, assetUrl, ext)
		}
	}
}
