package repository

import (
	"errors"

	"gorm.io/gorm"

	"hotel-api/models"
)

type transactionRepository struct {
	db *gorm.DB
}

func (r *transactionRepository) All() ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.Preload("Payment").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *transactionRepository) FindWithPayment(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.Preload("Payment").First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.Transaction{}).Where("id = ?", id).Update("status", status).Error
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.Payment{}).Where("id = ?", id).Update("status", status).Error
}
