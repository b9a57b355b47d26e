package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"baseUrl":   "https://example.org",
			"userAgent": "ua",
		},
		"secretKey": map[string]any{
			"session": "s",
		},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"nested camel case key", "GEOCODING_BASEURL", "geocoding.baseUrl"},
		{"camel case section", "SECRETKEY_SESSION", "secretKey.session"},
		{"unknown key keeps lower case", "SOMETHING_ELSE", "something.else"},
		{"empty segments are skipped", "GEOCODING__USERAGENT", "geocoding.userAgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, existing))
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: trustbites
http:
  port: 8080
geocoding:
  baseUrl: https://nominatim.openstreetmap.org
  timeout: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GEOCODING_TIMEOUT", "2s")

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "trustbites", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Geocoding)
	assert.Equal(t, 2*time.Second, cfg.Geocoding.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, 10, cfg.Geocoding.ReverseZoom)
	assert.Equal(t, 1024, cfg.Image.MaxDimension)
	assert.Equal(t, 85, cfg.Image.JPEGQuality)
	assert.Equal(t, defaultMaxImagePixels, cfg.Image.MaxPixels)
	assert.Equal(t, 38.7223, cfg.MapView.DefaultLat)
	assert.Equal(t, -9.1393, cfg.MapView.DefaultLng)
}
