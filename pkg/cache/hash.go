package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts are the inputs that determine a rendered artifact.
type ArtifactKeyOpts struct {
	Group  string `json:"group"`
	Choice string `json:"choice"`
	Seed   uint64 `json:"seed"`
	Limit  int    `json:"limit"`
	Labels bool   `json:"labels"`
	Format string `json:"format"`
}

// ArtifactKey returns the cache key for an artifact, "artifact:" followed by
// the SHA-256 of the options.
func ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}

// hashKey formats prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
