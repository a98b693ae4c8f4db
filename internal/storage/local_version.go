package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const versionFileSuffix = ".json"

var versionNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// MintedVersion is a version prefix found by the prefix search, kept so it can
// be turned into a constant later.
type MintedVersion struct {
	Name          string `json:"name"`
	PrefixHex     string `json:"prefix_hex"`
	PayloadLength int    `json:"payload_length"`
	DesiredPrefix string `json:"desired_prefix"`
	Example       string `json:"example"`
}

// LocalVersionStorage manages minted versions in the local filesystem
type LocalVersionStorage struct {
	baseDir string
}

// NewLocalVersionStorage creates a new instance of LocalVersionStorage
func NewLocalVersionStorage(baseDir string) (*LocalVersionStorage, error) {
	// Create the base directory if it doesn't exist
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create version directory: %w", err)
	}

	return &LocalVersionStorage{
		baseDir: baseDir,
	}, nil
}

// SaveVersion writes a minted version to <name>.json, replacing any previous one.
func (lvs *LocalVersionStorage) SaveVersion(version MintedVersion) error {
	filePath, err := lvs.path(version.Name)
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(version, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal version: %w", err)
	}

	if err := os.WriteFile(filePath, content, 0600); err != nil {
		return fmt.Errorf("failed to write version file: %w", err)
	}

	return nil
}

// GetVersion retrieves a minted version by name
func (lvs *LocalVersionStorage) GetVersion(name string) (MintedVersion, error) {
	filePath, err := lvs.path(name)
	if err != nil {
		return MintedVersion{}, err
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return MintedVersion{}, fmt.Errorf("version not found: %s", name)
		}
		return MintedVersion{}, fmt.Errorf("failed to read version file: %w", err)
	}

	var version MintedVersion
	if err := json.Unmarshal(content, &version); err != nil {
		return MintedVersion{}, fmt.Errorf("failed to unmarshal version file %s: %w", name, err)
	}

	return version, nil
}

// Exists checks if a minted version exists
func (lvs *LocalVersionStorage) Exists(name string) (bool, error) {
	filePath, err := lvs.path(name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check version file: %w", err)
	}

	return true, nil
}

// ListVersions returns all minted versions sorted by name
func (lvs *LocalVersionStorage) ListVersions() ([]MintedVersion, error) {
	entries, err := os.ReadDir(lvs.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != versionFileSuffix {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), versionFileSuffix))
	}
	sort.Strings(names)

	versions := make([]MintedVersion, 0, len(names))
	for _, name := range names {
		version, err := lvs.GetVersion(name)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}

	return versions, nil
}

func (lvs *LocalVersionStorage) path(name string) (string, error) {
	if !versionNameRegexp.MatchString(name) {
		return "", fmt.Errorf("invalid version name: %q", name)
	}
	return filepath.Join(lvs.baseDir, name+versionFileSuffix), nil
}
