package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowRFC3339_RoundTrips(t *testing.T) {
	stamp := NowRFC3339()

	parsed, err := ParseRFC3339(stamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
}

func TestParseRFC3339_RejectsGarbage(t *testing.T) {
	_, err := ParseRFC3339("last tuesday")
	assert.Error(t, err)
}
