package models

import (
	"gorm.io/gorm"
)

const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

type Room struct {
	gorm.Model

	RoomNumber string  `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Status     string  `json:"status" gorm:"type:varchar(20)"`
	Price      float64 `json:"price"`

	Images []RoomImage `json:"images" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
