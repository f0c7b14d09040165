package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsersByIDsQuery_ComparesUUIDColumn(t *testing.T) {
	assert.Contains(t, usersByIDsQuery, "WHERE id = ANY($1)")
	assert.NotContains(t, usersByIDsQuery, "::text")
}
