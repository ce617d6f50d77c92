package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes bounds request bodies. Document briefs and refinement
// prompts are short text; 1MB leaves generous headroom.
const maxBodyBytes = 1 << 20

// ParseJSON decodes a JSON request body into dest, enforcing the body size
// limit. Unknown fields are tolerated so clients can send extra metadata
// without breaking; validation happens in the service layer.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
