package catalog

import (
	_ "embed"
	"fmt"

	"folio.dev/internal/models"
)

//go:embed fallback.json
var fallbackJSON []byte

// Fallback returns the built-in project list used when the data source is
// unreachable or malformed
func Fallback() []models.Project {
	list, err := Decode(fallbackJSON, ".json")
	if err != nil {
		panic(fmt.Sprintf("embedded fallback.json is invalid: %v", err))
	}
	return list
}
