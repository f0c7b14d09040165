package repository

import (
	"testing"

	"studyshare/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_ApprovedWithFilters(t *testing.T) {
	approved := models.StatusApproved
	q, args := buildListQuery(&approved, models.ContentFilter{Department: "UIT", Type: models.TypeNote})

	assert.Contains(t, q, "WHERE status = $1 AND department = $2 AND type = $3")
	assert.Contains(t, q, "ORDER BY created_at DESC")
	assert.Equal(t, []any{"approved", "UIT", "note"}, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	rejected := models.StatusRejected
	q, args := buildListQuery(&rejected, models.ContentFilter{
		Department: "SOIT", Branch: "CSE", Year: "2", Subject: "DBMS", Topic: "Normalization", Type: models.TypePYQ,
	})

	assert.Contains(t, q, "topic = $6 AND type = $7")
	assert.Len(t, args, 7)
	assert.Equal(t, "rejected", args[0])
}

func TestBuildListQuery_NoStatusNoFilters(t *testing.T) {
	q, args := buildListQuery(nil, models.ContentFilter{})

	assert.NotContains(t, q, "WHERE")
	assert.Empty(t, args)
}
