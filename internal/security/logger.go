package security

import (
	"fmt"

	"github.com/sgaunet/bullets"
)

// DebugAuth logs authentication details with sensitive values redacted.
//
// Example:
//
//	DebugAuth(logger, "Travis", map[string]string{
//	    "endpoint": "https://api.travis-ci.com",
//	    "token":    token.String(),
//	})
func DebugAuth(logger *bullets.Logger, authType string, details map[string]string) {
	if logger == nil {
		return
	}

	detailsInterface := make(map[string]any, len(details))
	for k, v := range details {
		detailsInterface[k] = v
	}

	logger.Debug(fmt.Sprintf("Using %s authentication: %v", authType, SanitizeMap(detailsInterface)))
}
