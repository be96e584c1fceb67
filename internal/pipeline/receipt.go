// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/mdforge/pkg/types"
)

// WriteReceipt saves the finished job record as YAML (prd004-interface
// R4.1). Receipts are written for both outcomes; a failure receipt keeps
// the exit code and error for later inspection.
func WriteReceipt(job *types.Job, path string) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshaling receipt: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing receipt %s: %w", path, err)
	}
	return nil
}
