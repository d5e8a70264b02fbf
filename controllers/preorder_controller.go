package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/services"
	"github.com/preorder-hq/backoffice-api/utils"
)

var preOrderSortColumns = map[string]bool{
	"id":         true,
	"status":     true,
	"subtotal":   true,
	"total":      true,
	"created_at": true,
}

// CreatePreOrderRequest represents the request body for creating a pre-order
type CreatePreOrderRequest struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	FlightID       string  `json:"flight_id"`
	ProductName    string  `json:"product_name" binding:"required"`
	Quantity       int     `json:"quantity" binding:"omitempty,gt=0"`
	Status         string  `json:"status"`
	Subtotal       float64 `json:"subtotal"`
	AdvancePayment float64 `json:"advance_payment"`
	DeliveryCharge float64 `json:"delivery_charge"`
	Total          float64 `json:"total"`
	Notes          string  `json:"notes"`
}

// UpdatePreOrderRequest represents the request body for updating a pre-order.
// All fields are optional; only the provided ones are written.
type UpdatePreOrderRequest struct {
	CustomerID     *string  `json:"customer_id"`
	FlightID       *string  `json:"flight_id"`
	ProductName    *string  `json:"product_name"`
	Quantity       *int     `json:"quantity"`
	Status         *string  `json:"status"`
	Subtotal       *float64 `json:"subtotal"`
	AdvancePayment *float64 `json:"advance_payment"`
	DeliveryCharge *float64 `json:"delivery_charge"`
	Total          *float64 `json:"total"`
	Notes          *string  `json:"notes"`
}

// ListPreOrders handles GET /api/v1/pre-orders - paginated, filtered listing
// with customer and flight data attached
func ListPreOrders(c *gin.Context) {
	db := config.GetDB()
	params := utils.ParseListParams(c, preOrderSortColumns, "created_at")

	query := db.Model(&models.PreOrder{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("id LIKE ? OR product_name LIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if flight := c.Query("flight"); flight != "" {
		query = query.Where("flight_id = ?", flight)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to count pre-orders: %s", err.Error()),
			},
		})
		return
	}

	var orders []models.PreOrder
	if err := query.Order(params.OrderClause()).
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch pre-orders: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       services.EnrichPreOrders(db, orders),
		"totalItems": totalItems,
		"page":       params.Page,
		"pageSize":   params.PageSize,
		"totalPages": utils.TotalPages(totalItems, params.PageSize),
	})
}

// GetPreOrder handles GET /api/v1/pre-orders/:id
func GetPreOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.PreOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		respondLookupError(c, err, "PREORDER_NOT_FOUND", "Pre-order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.EnrichPreOrder(db, order),
	})
}

// CreatePreOrder handles POST /api/v1/pre-orders
func CreatePreOrder(c *gin.Context) {
	var req CreatePreOrderRequest
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

	status := req.Status
	if status == "" {
		status = models.PreOrderStatusPending
	}
	if !models.ValidPreOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid pre-order status: " + status,
			},
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := models.PreOrder{
		ID:             req.ID,
		CustomerID:     req.CustomerID,
		FlightID:       req.FlightID,
		ProductName:    req.ProductName,
		Quantity:       quantity,
		Status:         status,
		Subtotal:       req.Subtotal,
		AdvancePayment: req.AdvancePayment,
		DeliveryCharge: req.DeliveryCharge,
		Total:          req.Total,
		Notes:          req.Notes,
	}
	if order.ID == "" {
		order.ID = "PO-" + uuid.NewString()
	}

	db := config.GetDB()
	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create pre-order: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    services.EnrichPreOrder(db, order),
	})
}

// UpdatePreOrder handles PUT /api/v1/pre-orders/:id - partial update of a
// pre-order's fields
func UpdatePreOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.PreOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		respondLookupError(c, err, "PREORDER_NOT_FOUND", "Pre-order not found")
		return
	}

	var req UpdatePreOrderRequest
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

	if req.Status != nil && !models.ValidPreOrderStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid pre-order status: " + *req.Status,
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.FlightID != nil {
		updates["flight_id"] = *req.FlightID
	}
	if req.ProductName != nil {
		updates["product_name"] = *req.ProductName
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Subtotal != nil {
		updates["subtotal"] = *req.Subtotal
	}
	if req.AdvancePayment != nil {
		updates["advance_payment"] = *req.AdvancePayment
	}
	if req.DeliveryCharge != nil {
		updates["delivery_charge"] = *req.DeliveryCharge
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update pre-order: %s", err.Error()),
				},
			})
			return
		}

		if err := db.Where("id = ?", order.ID).First(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload pre-order",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.EnrichPreOrder(db, order),
	})
}

// DeletePreOrder handles DELETE /api/v1/pre-orders/:id
func DeletePreOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.PreOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		respondLookupError(c, err, "PREORDER_NOT_FOUND", "Pre-order not found")
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete pre-order: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pre-order deleted successfully",
	})
}
