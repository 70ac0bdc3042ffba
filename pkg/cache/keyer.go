package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// keyVersion is bumped whenever the rendered output of an unchanged spec
// changes, so stale artifacts are never served.
const keyVersion = "v1"

// Keyer builds cache keys for chart artifacts.
type Keyer interface {
	// ArtifactKey returns the key of an artifact rendered from the spec
	// with the given hash.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer generates unscoped keys of the form "artifact:v1:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the spec hash together with opts.
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	payload, _ := json.Marshal(struct {
		Spec string          `json:"spec"`
		Opts ArtifactKeyOpts `json:"opts"`
	}{specHash, opts})
	return "artifact:" + keyVersion + ":" + Hash(payload)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
