package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts lists everything besides the name that changes a
// rendered artifact.
type ArtifactKeyOpts struct {
	Kind       string  `json:"kind"`
	Format     string  `json:"format"`
	Attributes bool    `json:"attributes"`
	Methods    bool    `json:"methods"`
	Notes      bool    `json:"notes"`
	Scale      float64 `json:"scale,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Padding    float64 `json:"padding"`
	TextHeight float64 `json:"text_height"`
	Margin     float64 `json:"margin"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendering of a box or sheet.
	ArtifactKey(name string, opts ArtifactKeyOpts) string
	// CatalogKey identifies a parsed catalog by its source bytes.
	CatalogKey(source []byte) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(name string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", name, opts)
}

func (DefaultKeyer) CatalogKey(source []byte) string {
	return "catalog:" + Hash(source)
}

// hashKey renders prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
