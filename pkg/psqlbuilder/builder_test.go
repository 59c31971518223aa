package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"guest_email": "a@b.co"}).
		Where(squirrel.Eq{"status": "confirmed"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE guest_email = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"a@b.co", "confirmed"}, args)
}

func TestDelete_WithReturning(t *testing.T) {
	query, args, err := Delete("bookings").
		Where(squirrel.Eq{"id": "x"}).
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = $1 RETURNING id", query)
	assert.Equal(t, []interface{}{"x"}, args)
}
