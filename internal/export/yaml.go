// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// WriteYAML writes a ParseResult to path. The YAML dump is the interchange
// format consumed by `bank store`.
func WriteYAML(result types.ParseResult, path string) error {
	data, err := yaml.Marshal(&result)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
