package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
)

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	CustomerID   string `json:"customer_id"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	SocialHandle string `json:"social_handle"`
	City         string `json:"city"`
	Address      string `json:"address"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	SocialHandle *string `json:"social_handle"`
	City         *string `json:"city"`
	Address      *string `json:"address"`
}

// ListCustomers handles GET /api/v1/customers?search&limit
func ListCustomers(c *gin.Context) {
	db := config.GetDB()

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := db.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR social_handle LIKE ?", like, like, like)
	}

	var customers []models.Customer
	if err := query.Order("name asc").Limit(limit).Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch customers: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}

// GetCustomer handles GET /api/v1/customers/:id
func GetCustomer(c *gin.Context) {
	db := config.GetDB()

	var customer models.Customer
	if err := db.Where("customer_id = ?", c.Param("id")).First(&customer).Error; err != nil {
		respondLookupError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// CreateCustomer handles POST /api/v1/customers
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
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

	customer := models.Customer{
		CustomerID:   req.CustomerID,
		Name:         req.Name,
		Phone:        req.Phone,
		SocialHandle: req.SocialHandle,
		City:         req.City,
		Address:      req.Address,
	}
	if customer.CustomerID == "" {
		customer.CustomerID = "C-" + uuid.NewString()
	}

	db := config.GetDB()
	if err := db.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create customer: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    customer,
	})
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func UpdateCustomer(c *gin.Context) {
	db := config.GetDB()

	var customer models.Customer
	if err := db.Where("customer_id = ?", c.Param("id")).First(&customer).Error; err != nil {
		respondLookupError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	var req UpdateCustomerRequest
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

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.SocialHandle != nil {
		updates["social_handle"] = *req.SocialHandle
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) > 0 {
		if err := db.Model(&customer).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update customer: %s", err.Error()),
				},
			})
			return
		}

		if err := db.Where("customer_id = ?", customer.CustomerID).First(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload customer",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
func DeleteCustomer(c *gin.Context) {
	db := config.GetDB()

	var customer models.Customer
	if err := db.Where("customer_id = ?", c.Param("id")).First(&customer).Error; err != nil {
		respondLookupError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	if err := db.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete customer: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer deleted successfully",
	})
}
