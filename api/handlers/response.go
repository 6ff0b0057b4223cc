package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/config"
	"github.com/linesmerrill/chatroom-api/models"
)

// userHeader names the request header that identifies the caller
const userHeader = "User"

// errMalformedBody marks a request body that is not valid JSON
var errMalformedBody = errors.New("malformed request body")

// decodeBody reads a JSON request body into v. An empty body decodes as an
// empty object, leaving required fields to validation. A field of the wrong
// JSON type is a *models.ValidationError.
func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &typeErr):
		return &models.ValidationError{Details: []string{
			fmt.Sprintf("%q must be a %s", typeErr.Field, typeErr.Type.Kind()),
		}}
	default:
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// writeError maps the error taxonomy onto status codes. Validation failures
// answer with the bare list of messages.
func writeError(w http.ResponseWriter, message string, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		zap.S().Debugw(message, "details", vErr.Details)
		writeJSON(w, http.StatusUnprocessableEntity, vErr.Details)
	case errors.Is(err, errMalformedBody):
		config.ErrorStatus(message, http.StatusBadRequest, w, err)
	case errors.Is(err, models.ErrConflict):
		config.ErrorStatus(message, http.StatusConflict, w, err)
	case errors.Is(err, models.ErrNotFound):
		config.ErrorStatus(message, http.StatusNotFound, w, err)
	default:
		config.ErrorStatus(message, http.StatusInternalServerError, w, err)
	}
}
