package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "auto", cfg.StoreBackend)
	assert.Equal(t, 15*time.Minute, cfg.VerificationTTL)
	assert.Equal(t, 30*time.Minute, cfg.WizardTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "Barbershop", cfg.BrandName)
}

func TestReadServiceAccount(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "sa.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"project_id":"p","client_email":"a@b","private_key":"k"}`), 0o600))

	partial := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(partial, []byte(`{"project_id":"p"}`), 0o600))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	sa, ok := ReadServiceAccount(valid)
	require.True(t, ok)
	assert.Equal(t, "p", sa.ProjectID)

	for _, path := range []string{"", filepath.Join(dir, "missing.json"), partial, broken} {
		_, ok := ReadServiceAccount(path)
		assert.False(t, ok, path)
	}
}
