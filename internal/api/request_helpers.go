package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// pathUUID extracts and parses a UUID path parameter from the request.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, name)
	}

	return id, nil
}

// decodePatch reads a JSON object body and rejects any key outside the
// allow-list. Keys are matched exactly; unknown keys fail the whole request
// without touching the stored record.
func decodePatch(r *http.Request, allowed ...string) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", domain.ErrValidation)
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = true
	}

	for name := range fields {
		if !allowedSet[name] {
			return nil, fmt.Errorf("%w: %q", domain.ErrDisallowedField, name)
		}
	}

	return fields, nil
}

// patchString unmarshals a patch field into a string, rejecting non-string
// JSON values.
func patchString(fields map[string]json.RawMessage, name string) (*string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %s must be a string", domain.ErrValidation, name)
	}

	return &value, nil
}

// patchBool unmarshals a patch field into a bool. Only JSON true/false are
// accepted; truthy strings and numbers are rejected.
func patchBool(fields map[string]json.RawMessage, name string) (*bool, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, nil
	}

	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrValidation, name)
	}

	return &value, nil
}
