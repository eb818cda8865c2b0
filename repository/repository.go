package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-api/models"
)

// ErrNotFound is returned by lookups when no row matches the given id.
var ErrNotFound = errors.New("record not found")

// IsDuplicate reports whether err is a unique-constraint violation. MySQL
// reports error 1062; the sqlite driver used in tests reports a UNIQUE
// constraint message.
func IsDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// RoomStore is the persistence boundary for rooms.
type RoomStore interface {
	All() ([]models.Room, error)
	FindByID(id uint) (*models.Room, error)
	Create(room *models.Room) error
	Update(room *models.Room, fields map[string]interface{}) error
	Delete(room *models.Room) error
	NumberTaken(number string, excludeID uint) (bool, error)
}

type RoomImageStore interface {
	Create(img *models.RoomImage) error
	DeleteByRoomID(roomID uint) error
}

type TransactionStore interface {
	All() ([]models.Transaction, error)
	FindWithPayment(id uint) (*models.Transaction, error)
	SetStatus(id uint, status string) error
}

type PaymentStore interface {
	SetStatus(id uint, status string) error
}

// Store bundles the entity stores together with the atomic scope.
// Atomically runs fn against stores bound to a single database transaction;
// if fn returns an error every write inside the scope is discarded.
type Store interface {
	Rooms() RoomStore
	RoomImages() RoomImageStore
	Transactions() TransactionStore
	Payments() PaymentStore
	Atomically(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Rooms() RoomStore               { return &roomRepository{db: s.db} }
func (s *gormStore) RoomImages() RoomImageStore     { return &roomImageRepository{db: s.db} }
func (s *gormStore) Transactions() TransactionStore { return &transactionRepository{db: s.db} }
func (s *gormStore) Payments() PaymentStore         { return &paymentRepository{db: s.db} }

func (s *gormStore) Atomically(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
