package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/torosent/scyllastress/internal/stats"
)

// Export writes the summary to a fresh file under dir and returns its
// path. Each export gets a unique ULID-suffixed name, so repeated batches
// never overwrite each other.
func Export(dir, format string, summary stats.Summary) (string, error) {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "json":
		data, err = json.MarshalIndent(summary, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(summary)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("scylla_stats_%s.%s", ulid.Make().String(), strings.ToLower(format)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}
	return path, nil
}
