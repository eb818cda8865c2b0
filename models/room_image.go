package models

import (
	"gorm.io/gorm"
)

// RoomImage is created only as a side effect of room creation. Image holds
// the stored path relative to the uploads directory, e.g. "rooms/101.jpg".
type RoomImage struct {
	gorm.Model

	RoomID uint   `json:"room_id" gorm:"column:room_id;index"`
	Image  string `json:"image" gorm:"type:varchar(255)"`
}
