package registrations

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RegisterRequest is the body for POST /registrations. Every field is optional
// on the wire; Validate enforces email.
type RegisterRequest struct {
	Email     string `json:"email"`
	Name      any    `json:"name,omitempty"`
	Role      any    `json:"role,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DecodeRequest parses a raw body. An empty body decodes to the zero request.
// Keys match exactly: "Email" or "EMAIL" is not email.
func DecodeRequest(body []byte) (RegisterRequest, error) {
	var req RegisterRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return RegisterRequest{}, fmt.Errorf("decode body: %w", err)
	}
	for key, dst := range map[string]any{
		"email":     &req.Email,
		"name":      &req.Name,
		"role":      &req.Role,
		"timestamp": &req.Timestamp,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return RegisterRequest{}, fmt.Errorf("decode body: field %q: %w", key, err)
		}
	}
	return req, nil
}

// Validate reports a ValidationError when email is missing or empty.
func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Message: "Email is required"}
	}
	return nil
}
