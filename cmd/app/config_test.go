package main

import (
	"os"
	"path/filepath"
	"testing"

	"socialelections/config"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := loadConfig(t.TempDir(), "", "")
	require.NoError(t, err)
	require.Equal(t, uint32(3000), conf.App.Port)
	require.Equal(t, config.StorageMemory, conf.WorksCouncil.Storage)
	require.Equal(t, config.LockerMemory, conf.WorksCouncil.Locker)
	require.Equal(t, int64(5000), conf.WorksCouncil.LockWait)
}

func TestLoadConfigYamlAndEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "conf"), 0o755))
	yaml := []byte("APP:\n  PORT: 8080\nWORKS_COUNCIL:\n  STORAGE: mongo\n  ENFORCE_MANAGER_UNIT: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "conf", "test.yaml"), yaml, 0o644))

	t.Setenv("WORKS_COUNCIL__LOCK_WAIT", "750")

	conf, err := loadConfig(root, "", "test.yaml")
	require.NoError(t, err)
	require.Equal(t, uint32(8080), conf.App.Port)
	require.Equal(t, config.StorageMongo, conf.WorksCouncil.Storage)
	require.True(t, conf.WorksCouncil.EnforceManagerUnit)
	require.Equal(t, int64(750), conf.WorksCouncil.LockWait)
	require.Equal(t, config.LockerMemory, conf.WorksCouncil.Locker)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(t.TempDir(), "", "missing.yaml")
	require.Error(t, err)
}
