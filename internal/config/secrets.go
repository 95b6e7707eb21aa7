package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Streamlit secrets file locations
const (
	SecretsDir  = ".streamlit"
	SecretsFile = "secrets.toml"
)

// SecretsProvider is a read-only key-value secrets store offered by the hosting runtime
type SecretsProvider interface {
	Lookup(name string) (string, bool)
}

// NoSecrets is used when no hosted secrets store is available
type NoSecrets struct{}

// Lookup never finds anything
func (NoSecrets) Lookup(string) (string, bool) {
	return "", false
}

// MapSecrets serves secrets from memory
type MapSecrets map[string]string

// Lookup returns the secret stored under name
func (m MapSecrets) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// FileSecrets serves root-level values of Streamlit secrets.toml files
type FileSecrets struct {
	paths  []string
	values map[string]string
}

// LoadFileSecrets parses the given secrets.toml files in order.
// Later files override earlier ones. Tables and arrays are ignored.
func LoadFileSecrets(paths ...string) (*FileSecrets, error) {
	secrets := &FileSecrets{
		paths:  paths,
		values: make(map[string]string),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
		}

		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
		}

		for key, value := range raw {
			switch v := value.(type) {
			case string:
				secrets.values[key] = v
			case int64, float64, bool:
				secrets.values[key] = fmt.Sprint(v)
			}
		}
	}

	return secrets, nil
}

// Lookup returns the secret stored under name
func (s *FileSecrets) Lookup(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Paths returns the files the secrets were read from
func (s *FileSecrets) Paths() []string {
	return s.paths
}

// SecretsPaths returns the candidate secrets.toml locations, global first and
// project second, so that project values take precedence
func SecretsPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, SecretsDir, SecretsFile))
	}
	return append(paths, filepath.Join(SecretsDir, SecretsFile))
}

// DetectSecrets checks whether the Streamlit secrets store is present.
// It returns NoSecrets when none of the candidate files exist.
func DetectSecrets() (SecretsProvider, error) {
	return detectSecrets(SecretsPaths())
}

func detectSecrets(candidates []string) (SecretsProvider, error) {
	var existing []string
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return NoSecrets{}, fmt.Errorf("failed to stat secrets file %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		existing = append(existing, path)
	}

	if len(existing) == 0 {
		return NoSecrets{}, nil
	}

	secrets, err := LoadFileSecrets(existing...)
	if err != nil {
		return NoSecrets{}, err
	}
	return secrets, nil
}
