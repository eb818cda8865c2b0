package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"hotel-api/models"
	"hotel-api/repository"
)

// ErrRoomNumberTaken covers the race where a duplicate room_number slips
// past validation and hits the unique index.
var ErrRoomNumberTaken = errors.New("room_number already taken")

// RoomService wraps the room stores and owns the create/delete atomic
// scopes.
type RoomService struct {
	store repository.Store
}

func NewRoomService(store repository.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	return s.store.Rooms().All()
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	return s.store.Rooms().FindByID(id)
}

// NumberTaken reports whether another room already uses room_number.
func (s *RoomService) NumberTaken(number string, excludeID uint) (bool, error) {
	return s.store.Rooms().NumberTaken(number, excludeID)
}

// Create saves the uploaded images first, then writes the room row and its
// image rows in one atomic scope. If the scope fails the saved files are
// removed so nothing is left behind.
func (s *RoomService) Create(room *models.Room, files []*multipart.FileHeader) error {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := SaveRoomImage(fh)
		if err != nil {
			removeAll(paths)
			return fmt.Errorf("failed to store image: %w", err)
		}
		paths = append(paths, path)
	}

	err := s.store.Atomically(func(tx repository.Store) error {
		if err := tx.Rooms().Create(room); err != nil {
			return err
		}
		for _, path := range paths {
			img := models.RoomImage{RoomID: room.ID, Image: path}
			if err := tx.RoomImages().Create(&img); err != nil {
				return err
			}
			room.Images = append(room.Images, img)
		}
		return nil
	})
	if err != nil {
		removeAll(paths)
		if repository.IsDuplicate(err) {
			return ErrRoomNumberTaken
		}
		return err
	}
	return nil
}

// Update applies the validated fields and returns the refreshed room.
func (s *RoomService) Update(id uint, fields map[string]interface{}) (*models.Room, error) {
	room, err := s.store.Rooms().FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Rooms().Update(room, fields); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}
	return s.store.Rooms().FindByID(id)
}

// Delete removes the room and its image rows together, then removes the
// stored files best-effort. The returned room carries the last-known data.
func (s *RoomService) Delete(id uint) (*models.Room, error) {
	room, err := s.store.Rooms().FindByID(id)
	if err != nil {
		return nil, err
	}

	err = s.store.Atomically(func(tx repository.Store) error {
		if err := tx.RoomImages().DeleteByRoomID(room.ID); err != nil {
			return err
		}
		return tx.Rooms().Delete(room)
	})
	if err != nil {
		return nil, err
	}

	for _, img := range room.Images {
		RemoveRoomImage(img.Image)
	}
	return room, nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		RemoveRoomImage(p)
	}
}
