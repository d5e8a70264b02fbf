package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
)

// CreateFlightRequest represents the request body for creating a flight
type CreateFlightRequest struct {
	FlightID     string `json:"flight_id"`
	Name         string `json:"name" binding:"required"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

// UpdateFlightRequest represents the request body for updating a flight
type UpdateFlightRequest struct {
	Name         *string `json:"name"`
	ShipmentDate *string `json:"shipment_date"`
	Status       *string `json:"status"`
}

// ListFlights handles GET /api/v1/flights
func ListFlights(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.Flight{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var flights []models.Flight
	if err := query.Order("shipment_date desc, flight_id asc").Find(&flights).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch flights: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    flights,
	})
}

// GetFlight handles GET /api/v1/flights/:id
func GetFlight(c *gin.Context) {
	db := config.GetDB()

	var flight models.Flight
	if err := db.Where("flight_id = ?", c.Param("id")).First(&flight).Error; err != nil {
		respondLookupError(c, err, "FLIGHT_NOT_FOUND", "Flight not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    flight,
	})
}

// CreateFlight handles POST /api/v1/flights
func CreateFlight(c *gin.Context) {
	var req CreateFlightRequest
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
		status = models.FlightStatusScheduled
	}
	if !models.ValidFlightStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid flight status: " + status,
			},
		})
		return
	}

	flight := models.Flight{
		FlightID:     req.FlightID,
		Name:         req.Name,
		ShipmentDate: req.ShipmentDate,
		Status:       status,
	}
	if flight.FlightID == "" {
		flight.FlightID = "FL-" + uuid.NewString()
	}

	db := config.GetDB()
	if err := db.Create(&flight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create flight: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    flight,
	})
}

// UpdateFlight handles PUT /api/v1/flights/:id
func UpdateFlight(c *gin.Context) {
	db := config.GetDB()

	var flight models.Flight
	if err := db.Where("flight_id = ?", c.Param("id")).First(&flight).Error; err != nil {
		respondLookupError(c, err, "FLIGHT_NOT_FOUND", "Flight not found")
		return
	}

	var req UpdateFlightRequest
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

	if req.Status != nil && !models.ValidFlightStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid flight status: " + *req.Status,
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ShipmentDate != nil {
		updates["shipment_date"] = *req.ShipmentDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&flight).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update flight: %s", err.Error()),
				},
			})
			return
		}

		if err := db.Where("flight_id = ?", flight.FlightID).First(&flight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload flight",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    flight,
	})
}

// DeleteFlight handles DELETE /api/v1/flights/:id
func DeleteFlight(c *gin.Context) {
	db := config.GetDB()

	var flight models.Flight
	if err := db.Where("flight_id = ?", c.Param("id")).First(&flight).Error; err != nil {
		respondLookupError(c, err, "FLIGHT_NOT_FOUND", "Flight not found")
		return
	}

	if err := db.Delete(&flight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete flight: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Flight deleted successfully",
	})
}
