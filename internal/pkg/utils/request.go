package utils

import (
	"net/http"
	"riraku-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
