package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/shared/timezone"
)

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseDate(t *testing.T) {
	date, err := timezone.ParseDate("2025-03-14")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, "2025-03-14", timezone.FormatDate(date))

	date, err = timezone.ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = timezone.ParseDate("14/03/2025")
	assert.Error(t, err)

	assert.Empty(t, timezone.FormatDate(nil))
}
