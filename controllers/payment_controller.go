package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/services"
	"github.com/preorder-hq/backoffice-api/utils"
)

var paymentSortColumns = map[string]bool{
	"id":         true,
	"amount":     true,
	"purpose":    true,
	"paid_at":    true,
	"created_at": true,
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	PreOrderID string     `json:"pre_order_id"`
	Amount     *float64   `json:"amount" binding:"required"`
	Purpose    string     `json:"purpose"`
	Method     string     `json:"method"`
	PaidAt     *time.Time `json:"paid_at"`
}

// UpdatePaymentRequest represents the request body for updating a payment
type UpdatePaymentRequest struct {
	PreOrderID *string    `json:"pre_order_id"`
	Amount     *float64   `json:"amount"`
	Purpose    *string    `json:"purpose"`
	Method     *string    `json:"method"`
	PaidAt     *time.Time `json:"paid_at"`
}

// attachReceiptURL fills the computed ReceiptURL field from the stored S3
// key. A presign failure only costs the link, not the response.
func attachReceiptURL(payment *models.Payment) {
	if payment.ReceiptS3Key == nil || *payment.ReceiptS3Key == "" {
		return
	}
	s3Service := services.GetS3Service()
	if s3Service == nil {
		return
	}
	url, err := s3Service.GetPresignedURL(*payment.ReceiptS3Key)
	if err != nil {
		log.Printf("Failed to presign receipt %s: %v", *payment.ReceiptS3Key, err)
		return
	}
	payment.ReceiptURL = &url
}

// ListPayments handles GET /api/v1/payments
func ListPayments(c *gin.Context) {
	db := config.GetDB()
	params := utils.ParseListParams(c, paymentSortColumns, "created_at")

	query := db.Model(&models.Payment{})

	if purpose := c.Query("purpose"); purpose != "" {
		query = query.Where("purpose = ?", purpose)
	}
	if tally := c.Query("tally"); tally != "" {
		query = query.Where("tally = ?", tally == "true")
	}
	if preOrder := c.Query("preOrder"); preOrder != "" {
		query = query.Where("pre_order_id = ?", preOrder)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to count payments: %s", err.Error()),
			},
		})
		return
	}

	var payments []models.Payment
	if err := query.Order(params.OrderClause()).
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch payments: %s", err.Error()),
			},
		})
		return
	}

	for i := range payments {
		attachReceiptURL(&payments[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       payments,
		"totalItems": totalItems,
		"page":       params.Page,
		"pageSize":   params.PageSize,
		"totalPages": utils.TotalPages(totalItems, params.PageSize),
	})
}

// CreatePayment handles POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
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

	purpose := req.Purpose
	if purpose == "" {
		purpose = models.PaymentPurposeProduct
	}
	if !models.ValidPaymentPurpose(purpose) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid payment purpose: " + purpose,
			},
		})
		return
	}

	payment := models.Payment{
		PreOrderID: req.PreOrderID,
		Amount:     *req.Amount,
		Purpose:    purpose,
		Method:     req.Method,
		PaidAt:     req.PaidAt,
	}

	db := config.GetDB()
	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create payment: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    payment,
	})
}

// UpdatePayment handles PUT /api/v1/payments/:id
func UpdatePayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "PAYMENT_NOT_FOUND", "Payment not found")
		return
	}

	var req UpdatePaymentRequest
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

	if req.Purpose != nil && !models.ValidPaymentPurpose(*req.Purpose) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid payment purpose: " + *req.Purpose,
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.PreOrderID != nil {
		updates["pre_order_id"] = *req.PreOrderID
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Purpose != nil {
		updates["purpose"] = *req.Purpose
	}
	if req.Method != nil {
		updates["method"] = *req.Method
	}
	if req.PaidAt != nil {
		updates["paid_at"] = *req.PaidAt
	}

	if len(updates) > 0 {
		if err := db.Model(&payment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update payment: %s", err.Error()),
				},
			})
			return
		}

		if err := db.First(&payment, payment.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload payment",
				},
			})
			return
		}
	}

	attachReceiptURL(&payment)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payment,
	})
}

// DeletePayment handles DELETE /api/v1/payments/:id - removes the payment
// and its stored receipt, if any
func DeletePayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "PAYMENT_NOT_FOUND", "Payment not found")
		return
	}

	if err := db.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete payment: %s", err.Error()),
			},
		})
		return
	}

	// Best effort: a dangling receipt object only wastes bucket space
	if payment.ReceiptS3Key != nil && *payment.ReceiptS3Key != "" {
		if s3Service := services.GetS3Service(); s3Service != nil {
			if err := s3Service.DeleteReceipt(*payment.ReceiptS3Key); err != nil {
				log.Printf("Failed to delete receipt %s: %v", *payment.ReceiptS3Key, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment deleted successfully",
	})
}

// TallyPayment handles PATCH /api/v1/payments/:id/tally - flips the
// reconciliation flag
func TallyPayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "PAYMENT_NOT_FOUND", "Payment not found")
		return
	}

	if err := db.Model(&payment).Update("tally", !payment.Tally).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to update tally flag: %s", err.Error()),
			},
		})
		return
	}

	payment.Tally = !payment.Tally

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payment,
	})
}

// UploadReceipt handles POST /api/v1/payments/:id/receipt - stores a receipt
// file in S3 and attaches it to the payment
func UploadReceipt(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "PAYMENT_NOT_FOUND", "Payment not found")
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "A receipt file is required",
			},
		})
		return
	}

	s3Service := services.GetS3Service()
	if s3Service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Receipt storage is not configured",
			},
		})
		return
	}

	s3Key, err := s3Service.UploadReceipt(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_ERROR",
				"message": fmt.Sprintf("Failed to store receipt: %s", err.Error()),
			},
		})
		return
	}

	if err := db.Model(&payment).Update("receipt_s3_key", s3Key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to attach receipt: %s", err.Error()),
			},
		})
		return
	}

	payment.ReceiptS3Key = &s3Key
	attachReceiptURL(&payment)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payment,
	})
}
