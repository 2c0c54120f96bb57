package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMappingFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write mapping file: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeMappingFile(t, dir, "stadium.yaml", `
stadium:
  class: "http://example.org/football/Stadium"
  properties:
    name:
      predicate: "http://schema.org/name"
      datatype: "http://www.w3.org/2001/XMLSchema#string"
    capacity:
      predicate: "http://example.org/football/capacity"
      datatype: "http://www.w3.org/2001/XMLSchema#integer"
`)
	writeMappingFile(t, dir, "notes.txt", "ignored")

	mappings, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(mappings))
	}
	if mappings[0].Type != "stadium" {
		t.Errorf("expected type stadium, got %s", mappings[0].Type)
	}
	if len(mappings[0].Properties) != 2 {
		t.Errorf("expected 2 properties, got %d", len(mappings[0].Properties))
	}
}

func TestLoadDirRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeMappingFile(t, dir, "broken.yaml", "team: [not a mapping")

	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() expected error for malformed yaml")
	}
}

func TestLoadOverlayReplacesBuiltin(t *testing.T) {
	dir := t.TempDir()
	// Redefine the built-in country mapping with a reduced property set.
	writeMappingFile(t, dir, "country.yaml", `
country:
  class: "http://example.org/football/Country"
  properties:
    name:
      predicate: "http://schema.org/name"
      datatype: "http://www.w3.org/2001/XMLSchema#string"
`)

	r, err := Load("http://example.org/football/", dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m, err := r.Resolve("country")
	if err != nil {
		t.Fatalf("Resolve(country) error = %v", err)
	}
	if len(m.Properties) != 1 {
		t.Errorf("overlay should replace the built-in mapping, got %d properties", len(m.Properties))
	}

	// Built-ins not named in the overlay survive.
	if _, err := r.Resolve("team"); err != nil {
		t.Errorf("expected built-in team mapping to survive overlay: %v", err)
	}
}

func TestLoadWithoutOverlayDir(t *testing.T) {
	r, err := Load("http://example.org/football/", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(r.Types()) == 0 {
		t.Error("expected built-in mappings")
	}
}

// An overlay that breaks cross-mapping integrity must fail the whole load,
// not just its own file.
func TestLoadOverlayValidatedAgainstWholeRegistry(t *testing.T) {
	dir := t.TempDir()
	writeMappingFile(t, dir, "bad.yaml", `
gadget:
  class: "http://example.org/football/Gadget"
  properties:
    owner_id:
      predicate: "http://example.org/football/owner"
      ref: "nonexistent"
`)

	if _, err := Load("http://example.org/football/", dir); err == nil {
		t.Error("Load() expected error for overlay referencing unmapped type")
	}
}
