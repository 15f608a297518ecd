package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

func TestOpenMemoryCreatesTables(t *testing.T) {
	db, err := OpenMemory(t.Name())
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable("Customers"))
	assert.True(t, db.Migrator().HasTable("Policies"))
	assert.True(t, db.Migrator().HasColumn(&models.Customer{}, "firstName"))
	assert.True(t, db.Migrator().HasColumn(&models.Policy{}, "policyNumber"))
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db, err := OpenMemory(t.Name())
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Customer{FirstName: "A", LastName: "B", Email: "a@b.com"}).Error)
	require.NoError(t, AutoMigrate(db))

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
