package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	Env = map[string]string{"QF_TEST_KEY": "from-file"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("QF_TEST_KEY", "from-process")

	assert.Equal(t, "from-file", GetEnv("QF_TEST_KEY", "default"))
}

func TestGetEnvFallbacks(t *testing.T) {
	Env = nil
	t.Setenv("QF_TEST_PROCESS", "process")

	assert.Equal(t, "process", GetEnv("QF_TEST_PROCESS", "default"))
	assert.Equal(t, "default", GetEnv("QF_TEST_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	Env = map[string]string{"QF_PORT": "3306", "QF_BAD": "abc"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, 3306, GetEnvInt("QF_PORT", 1))
	assert.Equal(t, 7, GetEnvInt("QF_BAD", 7))
	assert.Equal(t, 9, GetEnvInt("QF_NONE", 9))
}

func TestIsDev(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })
	assert.True(t, IsDev())

	Env = map[string]string{"APP_ENV": "prod"}
	assert.False(t, IsDev())
}
