package cargo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apierrors "apiref/internal/errors"
)

// Manifest is the subset of a workspace Cargo.toml that apiref reads.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`

	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// LoadManifest parses the Cargo.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, apierrors.New(apierrors.ManifestInvalid,
			fmt.Sprintf("failed to parse %s", path), err)
	}
	return &m, nil
}

// HasMember reports whether the crate is a workspace member. Member entries
// are paths; the final path element is compared against the crate name.
func (m *Manifest) HasMember(crate string) bool {
	for _, member := range m.Workspace.Members {
		if filepath.Base(member) == crate {
			return true
		}
	}
	return false
}

// VerifyMember returns a CRATE_UNKNOWN error when the crate is not a
// workspace member.
func (m *Manifest) VerifyMember(crate string) error {
	if m.HasMember(crate) {
		return nil
	}
	return apierrors.New(apierrors.CrateUnknown,
		fmt.Sprintf("%s is not a member of this workspace", crate), nil)
}

// UnderscoreName converts a crate name to the underscore form used in item
// paths: oxidros-zenoh becomes oxidros_zenoh.
func UnderscoreName(crate string) string {
	return strings.ReplaceAll(crate, "-", "_")
}

// Fingerprint returns a hex SHA-256 of the manifest file contents. The
// listing cache keys on it so manifest edits invalidate cached listings.
func Fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
