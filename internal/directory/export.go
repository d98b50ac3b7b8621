// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Export writes the people matching opts to the index directory as
// export.yaml or export.json and returns the written path. The store's
// default limit does not apply to exports.
func (s *Store) Export(ctx context.Context, opts QueryOptions, format string) (string, error) {
	if opts.Limit == 0 {
		opts.Limit = -1
	}
	people, err := s.Search(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	var (
		data []byte
		name string
	)
	switch format {
	case "yaml", "":
		name = "export.yaml"
		data, err = yaml.Marshal(people)
		if err != nil {
			return "", fmt.Errorf("marshaling YAML: %w", err)
		}
	case "json":
		name = "export.json"
		data, err = json.MarshalIndent(people, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	path := filepath.Join(s.indexDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
