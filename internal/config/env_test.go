package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MIDIHUB_TEST_STR", "hello")
	assert.Equal(t, "hello", GetEnv("MIDIHUB_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("MIDIHUB_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MIDIHUB_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("MIDIHUB_TEST_INT", 7))

	t.Setenv("MIDIHUB_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("MIDIHUB_TEST_INT", 7))
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, GetLogLevel())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, GetLogLevel())
}
