package repository

import (
	"errors"

	"gorm.io/gorm"

	"hotel-api/models"
)

type roomRepository struct {
	db *gorm.DB
}

func (r *roomRepository) All() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Preload("Images").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.Preload("Images").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) Update(room *models.Room, fields map[string]interface{}) error {
	return r.db.Model(room).Updates(fields).Error
}

// Delete removes the row for real. A soft delete would keep holding the
// room_number unique index while lookups report the number free, making it
// unusable for new rooms.
func (r *roomRepository) Delete(room *models.Room) error {
	return r.db.Unscoped().Delete(room).Error
}

// NumberTaken reports whether room_number is already used. excludeID skips
// the row being updated so a room can keep its own number.
func (r *roomRepository) NumberTaken(number string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Room{}).Where("room_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type roomImageRepository struct {
	db *gorm.DB
}

func (r *roomImageRepository) Create(img *models.RoomImage) error {
	return r.db.Create(img).Error
}

func (r *roomImageRepository) DeleteByRoomID(roomID uint) error {
	return r.db.Unscoped().Where("room_id = ?", roomID).Delete(&models.RoomImage{}).Error
}
