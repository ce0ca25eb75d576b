package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"course-records-backend/config"
	"course-records-backend/internal/model"
)

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.StorageConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(&config.StorageConfig{Driver: "postgres", DSN: "host=localhost"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector(&config.StorageConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInit_SQLiteMigrates(t *testing.T) {
	cfg := &config.StorageConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		MaxOpenConns: 1,
	}
	gdb, err := Init(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, gdb.Migrator().HasTable(&model.DepartmentRecord{}))
	assert.True(t, gdb.Migrator().HasTable(&model.CourseRecord{}))
	assert.True(t, gdb.Migrator().HasTable("departments"))
	assert.True(t, gdb.Migrator().HasTable("courses"))
}
