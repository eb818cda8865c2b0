package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-api/services"
	"hotel-api/utils"
)

type TransactionController struct {
	TxnSvc *services.TransactionService
}

func NewTransactionController(svc *services.TransactionService) *TransactionController {
	return &TransactionController{TxnSvc: svc}
}

// GetTransactions handles GET /api/transactions.
func (c *TransactionController) GetTransactions(ctx *gin.Context) {
	list, err := c.TxnSvc.GetAll()
	if err != nil {
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed fetching transactions", err.Error())
		return
	}
	utils.JSONData(ctx, http.StatusOK, "ok", "Successfully fetched transactions", list)
}

// GetTransaction handles GET /api/transactions/:id.
func (c *TransactionController) GetTransaction(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Transaction data not found.")
		return
	}

	txn, err := c.TxnSvc.GetByID(id)
	if errors.Is(err, services.ErrTransactionNotFound) {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Transaction data not found.")
		return
	}
	if err != nil {
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed fetching a transaction", err.Error())
		return
	}

	utils.JSONData(ctx, http.StatusOK, "ok", "Successfully fetched a transaction", txn)
}

// ConfirmTransaction handles POST /api/transactions/:id/confirm, the
// payment reconciliation state transition.
func (c *TransactionController) ConfirmTransaction(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Transaction data not found.")
		return
	}

	txn, err := c.TxnSvc.Confirm(id)
	switch {
	case errors.Is(err, services.ErrTransactionNotFound):
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Transaction data not found.")
	case errors.Is(err, services.ErrPaymentNotFound):
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Payment data not found.")
	case err != nil:
		log.Printf("❌ confirm transaction %d failed: %v", id, err)
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed to update transaction status.", err.Error())
	default:
		utils.JSONData(ctx, http.StatusOK, "ok", "Status updated successfully.", txn)
	}
}
