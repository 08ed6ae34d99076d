package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

// ParseQueryID reads a required integer identifier from the query string.
func ParseQueryID(r *http.Request, key string) (int64, error) {
	return parseID(strings.TrimSpace(r.URL.Query().Get(key)), key)
}

// ParsePathID reads an integer identifier from a chi URL parameter.
func ParsePathID(r *http.Request, key string) (int64, error) {
	return parseID(strings.TrimSpace(chi.URLParam(r, key)), key)
}

func parseID(raw, field string) (int64, error) {
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "identifier is required").WithDetails(map[string]any{"field": field})
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "identifier must be numeric").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
