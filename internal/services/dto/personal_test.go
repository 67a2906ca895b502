package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1990-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("12.04.1990")
	assert.Error(t, err)

	_, err = ParseDate("1990-13-40")
	assert.Error(t, err)
}
