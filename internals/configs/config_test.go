package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CELLBILL_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("CELLBILL_TEST_KEY"))
	assert.Equal(t, "set", GetEnv("CELLBILL_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", GetEnv("CELLBILL_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("CELLBILL_TEST_MISSING"))
}
