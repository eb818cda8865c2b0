package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-api/models"
	"hotel-api/repository"
)

func setupStore(t *testing.T) (repository.Store, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Room{}, &models.RoomImage{}, &models.Transaction{}, &models.Payment{})
	require.NoError(t, err)

	return repository.New(db), db
}
