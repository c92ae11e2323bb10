package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "mongodb://mongo:27017/notes", cfg.MongoURI)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/notes_test")
	t.Setenv("APP_ENV", "release")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/notes_test", cfg.MongoURI)
	assert.Equal(t, "release", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
}
