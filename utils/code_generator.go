// file: utils/code_generator.go
package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateReferenceCode returns a short public handle for a registration,
// e.g. "CF-3F9A21BC". Unique enough in practice; the column is still unique.
func GenerateReferenceCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("CF-%s", strings.ToUpper(raw[:8]))
}
