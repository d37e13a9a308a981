package core

import (
	"encoding/json"
	"fmt"
)

const (
	ManifestVersion = 1
	ManifestFile    = "manifest.json"
	StylesheetPath  = "/globals.css"
)

type ManifestEntry struct {
	Route  string `json:"route,omitempty"`
	HTML   string `json:"html"`
	CSS    string `json:"css,omitempty"`
	Status int    `json:"status"`
}

type Manifest struct {
	Version int                      `json:"version"`
	Entries map[string]ManifestEntry `json:"entries"`
	// Assets maps every file of the build to its content hash, keyed by
	// its path inside the output directory ("/index.html", "/public/x.png").
	Assets map[string]string `json:"assets"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Version: ManifestVersion,
		Entries: make(map[string]ManifestEntry),
		Assets:  make(map[string]string),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d (want %d)", m.Version, ManifestVersion)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]ManifestEntry)
	}
	if m.Assets == nil {
		m.Assets = make(map[string]string)
	}
	return &m, nil
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m *Manifest) AddFile(path string, content []byte) {
	m.Assets[path] = HashContent(content)
}

func (m *Manifest) Entry(name string) (*ManifestEntry, bool) {
	if m == nil {
		return nil, false
	}
	entry, ok := m.Entries[name]
	if !ok {
		return nil, false
	}
	return &entry, true
}

func (m *Manifest) Hash(path string) (string, bool) {
	if m == nil {
		return "", false
	}
	h, ok := m.Assets[path]
	return h, ok
}
