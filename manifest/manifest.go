// Package manifest describes an exported split: which client holds which
// clusters and rows, and how the split can be reproduced.
package manifest

import (
	"fmt"
	"time"

	"github.com/hupe1980/fedskew/codec"
)

const (
	// FileName is the blob name the manifest is stored under.
	FileName = "MANIFEST.json"

	// CurrentVersion is the manifest schema version written by this package.
	CurrentVersion = 1
)

// ClientInfo describes one client's share of the split.
type ClientInfo struct {
	ID       int    `json:"id"`
	Clusters []int  `json:"clusters"`
	RowCount int    `json:"row_count"`
	Path     string `json:"path"` // Blob name relative to the store root
}

// Manifest is the full description of an exported split. It records the
// seed and cluster count, so the split can be regenerated from the source
// dataset.
type Manifest struct {
	Version     int          `json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
	Codec       string       `json:"codec"`
	Compression string       `json:"compression"`
	Seed        int64        `json:"seed"`
	K           int          `json:"k"`
	Features    []string     `json:"features"`
	NumClients  int          `json:"num_clients"`
	Clients     []ClientInfo `json:"clients"`
}

// Encode serializes the manifest with the given codec, stamping the current
// version and the codec name. A nil codec falls back to codec.Default.
func Encode(m *Manifest, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	m.Version = CurrentVersion
	m.Codec = c.Name()
	return c.Marshal(m)
}

// Decode deserializes a manifest and validates its version and codec name.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := codec.Default.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if m.Version != CurrentVersion {
		return nil, fmt.Errorf("manifest: unsupported version: %d (expected %d)", m.Version, CurrentVersion)
	}
	if _, ok := codec.ByName(m.Codec); !ok {
		return nil, fmt.Errorf("manifest: unknown codec %q", m.Codec)
	}
	return &m, nil
}
