package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/utils"
)

var transactionSortColumns = map[string]bool{
	"id":            true,
	"reference":     true,
	"amount":        true,
	"confirmation":  true,
	"pay_status":    true,
	"transacted_at": true,
	"created_at":    true,
}

// CreateTransactionRequest represents the request body for creating a transaction
type CreateTransactionRequest struct {
	Reference    string     `json:"reference"`
	Description  string     `json:"description" binding:"required"`
	Amount       *float64   `json:"amount" binding:"required"`
	Confirmation string     `json:"confirmation"`
	PayStatus    string     `json:"pay_status"`
	TransactedAt *time.Time `json:"transacted_at"`
}

// UpdateTransactionRequest represents the request body for updating a transaction
type UpdateTransactionRequest struct {
	Reference    *string    `json:"reference"`
	Description  *string    `json:"description"`
	Amount       *float64   `json:"amount"`
	Confirmation *string    `json:"confirmation"`
	PayStatus    *string    `json:"pay_status"`
	TransactedAt *time.Time `json:"transacted_at"`
}

// ListTransactions handles GET /api/v1/transactions - server-side filter,
// sort and pagination
func ListTransactions(c *gin.Context) {
	db := config.GetDB()
	params := utils.ParseListParams(c, transactionSortColumns, "created_at")

	query := db.Model(&models.Transaction{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("reference LIKE ? OR description LIKE ?", like, like)
	}
	if confirmation := c.Query("confirmation"); confirmation != "" {
		query = query.Where("confirmation = ?", confirmation)
	}
	if payStatus := c.Query("payStatus"); payStatus != "" {
		query = query.Where("pay_status = ?", payStatus)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to count transactions: %s", err.Error()),
			},
		})
		return
	}

	var transactions []models.Transaction
	if err := query.Order(params.OrderClause()).
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch transactions: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       transactions,
		"totalItems": totalItems,
		"page":       params.Page,
		"pageSize":   params.PageSize,
		"totalPages": utils.TotalPages(totalItems, params.PageSize),
	})
}

// GetTransaction handles GET /api/v1/transactions/:id
func GetTransaction(c *gin.Context) {
	db := config.GetDB()

	var transaction models.Transaction
	if err := db.First(&transaction, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "TRANSACTION_NOT_FOUND", "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transaction,
	})
}

// CreateTransaction handles POST /api/v1/transactions
func CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	confirmation := req.Confirmation
	if confirmation == "" {
		confirmation = models.ConfirmationPending
	}
	payStatus := req.PayStatus
	if payStatus == "" {
		payStatus = models.PayStatusUnpaid
	}
	if !models.ValidConfirmation(confirmation) || !models.ValidPayStatus(payStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid confirmation or pay status",
			},
		})
		return
	}

	transaction := models.Transaction{
		Reference:    req.Reference,
		Description:  req.Description,
		Amount:       *req.Amount,
		Confirmation: confirmation,
		PayStatus:    payStatus,
		TransactedAt: req.TransactedAt,
	}

	db := config.GetDB()
	if err := db.Create(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create transaction: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    transaction,
	})
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func UpdateTransaction(c *gin.Context) {
	db := config.GetDB()

	var transaction models.Transaction
	if err := db.First(&transaction, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "TRANSACTION_NOT_FOUND", "Transaction not found")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if req.Confirmation != nil && !models.ValidConfirmation(*req.Confirmation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid confirmation status: " + *req.Confirmation,
			},
		})
		return
	}
	if req.PayStatus != nil && !models.ValidPayStatus(*req.PayStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid pay status: " + *req.PayStatus,
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Reference != nil {
		updates["reference"] = *req.Reference
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Confirmation != nil {
		updates["confirmation"] = *req.Confirmation
	}
	if req.PayStatus != nil {
		updates["pay_status"] = *req.PayStatus
	}
	if req.TransactedAt != nil {
		updates["transacted_at"] = *req.TransactedAt
	}

	if len(updates) > 0 {
		if err := db.Model(&transaction).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update transaction: %s", err.Error()),
				},
			})
			return
		}

		if err := db.First(&transaction, transaction.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload transaction",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transaction,
	})
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func DeleteTransaction(c *gin.Context) {
	db := config.GetDB()

	var transaction models.Transaction
	if err := db.First(&transaction, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "TRANSACTION_NOT_FOUND", "Transaction not found")
		return
	}

	if err := db.Delete(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete transaction: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}
