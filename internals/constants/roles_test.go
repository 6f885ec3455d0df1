package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Admin", "Teacher", "Student"} {
		r, err := ParseRole(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, r.String())
		assert.True(t, r.Valid())
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "admin", "TEACHER", "Principal", "Student "} {
		_, err := ParseRole(s)
		assert.Error(t, err, "%q must not parse", s)
	}
}
