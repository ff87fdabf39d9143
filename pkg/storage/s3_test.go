package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationKey(t *testing.T) {
	tests := []struct {
		prefix string
		id     string
		want   string
	}{
		{prefix: "registrations/", id: "abc", want: "registrations/abc.json"},
		{prefix: "", id: "abc", want: "abc.json"},
		{prefix: "events/2026//", id: "abc", want: "events/2026/abc.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RegistrationKey(tt.prefix, tt.id))
	}
}
