package services

import (
	"errors"

	"hotel-api/models"
	"hotel-api/repository"
)

// The two not-found variants the confirm endpoint distinguishes.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

// TransactionService owns the confirmation state transition.
type TransactionService struct {
	store repository.Store
}

func NewTransactionService(store repository.Store) *TransactionService {
	return &TransactionService{store: store}
}

func (s *TransactionService) GetAll() ([]models.Transaction, error) {
	return s.store.Transactions().All()
}

func (s *TransactionService) GetByID(id uint) (*models.Transaction, error) {
	txn, err := s.store.Transactions().FindWithPayment(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	return txn, err
}

// Confirm reconciles a transaction's status from its payment's status: a
// successful payment confirms the transaction and leaves the payment alone;
// anything else cancels the transaction and marks the payment failed, with
// both writes in one atomic scope so a failure leaves the rows untouched.
// Already-settled transactions are re-evaluated on purpose.
func (s *TransactionService) Confirm(id uint) (*models.Transaction, error) {
	txn, err := s.store.Transactions().FindWithPayment(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if txn.Payment == nil {
		return nil, ErrPaymentNotFound
	}

	paid := txn.Payment.Status == models.PaymentStatusSuccess

	err = s.store.Atomically(func(tx repository.Store) error {
		if paid {
			return tx.Transactions().SetStatus(txn.ID, models.TransactionStatusConfirmed)
		}
		if err := tx.Transactions().SetStatus(txn.ID, models.TransactionStatusCanceled); err != nil {
			return err
		}
		return tx.Payments().SetStatus(txn.Payment.ID, models.PaymentStatusFailed)
	})
	if err != nil {
		return nil, err
	}

	// Answer from the data we already hold. Once the scope has committed a
	// failing reload must not dress the response up as a failed transition.
	if paid {
		txn.Status = models.TransactionStatusConfirmed
	} else {
		txn.Status = models.TransactionStatusCanceled
		txn.Payment.Status = models.PaymentStatusFailed
	}
	return txn, nil
}
