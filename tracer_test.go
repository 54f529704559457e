package carddb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryName(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{"select", "SELECT id FROM users", "SELECT"},
		{"insert with newline", "INSERT\nINTO users VALUES ($1)", "INSERT"},
		{"leading tab", "UPDATE\tusers SET email = $1", "UPDATE"},
		{"empty", "", "unknown"},
		{"single word", "COMMIT", "COMMIT"},
		{"long single token", "averylongsqlstatementwithoutspaces", "averylongsqlstatemen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractQueryName(tt.sql))
		})
	}
}
