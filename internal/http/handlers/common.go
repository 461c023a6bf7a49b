package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"internmatch/internal/common"
)

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath returns the path segment at index, counting from zero on
// the trimmed path. "/jobs/job_1/apply" index 1 -> "job_1".
func idFromPath(r *http.Request, index int) (common.ID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index < 0 || index >= len(parts) || parts[index] == "" {
		return "", common.NewError(common.CodeValidation, "missing id in path", nil)
	}
	return common.ID(parts[index]), nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
