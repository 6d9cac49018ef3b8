package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	got := FormatDate(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-15", *got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = ParseDate(&blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	valid := "2024-03-01"
	got, err = ParseDate(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Month())

	invalid := "01/03/2024"
	_, err = ParseDate(&invalid)
	assert.Error(t, err)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, NullIfEmpty(""))
	assert.Nil(t, NullIfEmpty("   "))
	assert.Equal(t, "x", *NullIfEmpty("x"))

	s := "  Site A  "
	assert.Equal(t, "Site A", *TrimPtr(&s))
	assert.Nil(t, TrimPtr(nil))
}
