package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into v. Bodies that do not decode are
// reported as a 400 "invalid request body".
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewHTTPError(http.StatusBadRequest, MsgInvalidBody)
	}
	return nil
}
