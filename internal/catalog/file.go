package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hammamikhairi/recipecost/internal/domain"
)

// Format is a snapshot file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q (want .json, .msgpack or .mp)", filepath.Ext(path))
	}
}

// Encode serialises a snapshot.
func Encode(snap *domain.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(snap, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(snap)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Decode parses and validates a snapshot.
func Decode(data []byte, format Format) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &snap)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s catalog: %w", format, err)
	}
	if err := domain.Validate(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// LoadFile reads a snapshot from disk; the extension picks the format.
func LoadFile(path string) (*domain.Snapshot, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Decode(data, format)
}

// WriteFile writes a snapshot to disk; the extension picks the format.
func WriteFile(path string, snap *domain.Snapshot) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(snap, format)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
