package infrastructure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inventory-service/internal/infrastructure"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("HELPER_INT", "42")
	t.Setenv("HELPER_DURATION", "90s")
	t.Setenv("HELPER_STRING", "value")
	t.Setenv("HELPER_BOOL", "true")

	assert.Equal(t, 42, infrastructure.GetEnvAsInt("HELPER_INT", 1))
	assert.Equal(t, 90*time.Second, infrastructure.GetEnvAsDuration("HELPER_DURATION", time.Minute))
	assert.Equal(t, "value", infrastructure.GetEnvAsString("HELPER_STRING", "fallback"))
	assert.True(t, infrastructure.GetEnvAsBool("HELPER_BOOL", false))
}

func TestEnvHelpersFallBackOnMissingOrMalformed(t *testing.T) {
	t.Setenv("HELPER_INT", "not-a-number")
	t.Setenv("HELPER_BOOL", "not-a-bool")

	assert.Equal(t, 7, infrastructure.GetEnvAsInt("HELPER_INT", 7))
	assert.Equal(t, time.Minute, infrastructure.GetEnvAsDuration("HELPER_MISSING", time.Minute))
	assert.Equal(t, "fallback", infrastructure.GetEnvAsString("HELPER_MISSING", "fallback"))
	assert.False(t, infrastructure.GetEnvAsBool("HELPER_BOOL", false))
}
