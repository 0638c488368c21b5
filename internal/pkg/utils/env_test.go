package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HEALTHRECORD_TEST_INT", "42")
	t.Setenv("HEALTHRECORD_TEST_BAD_INT", "forty-two")
	t.Setenv("HEALTHRECORD_TEST_DURATION", "250ms")
	t.Setenv("HEALTHRECORD_TEST_BLANK", "  ")
	t.Setenv("HEALTHRECORD_TEST_URL", " http://records.local:5000/api/v1 ")

	assert.Equal(t, 42, GetEnvInt("HEALTHRECORD_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("HEALTHRECORD_TEST_BAD_INT", 1))
	assert.Equal(t, 250*time.Millisecond, GetEnvDuration("HEALTHRECORD_TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", GetEnvString("HEALTHRECORD_TEST_UNSET", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("HEALTHRECORD_TEST_BLANK", "fallback"))
	assert.Equal(t, "http://records.local:5000/api/v1", GetEnvString("HEALTHRECORD_TEST_URL", "fallback"))
}
