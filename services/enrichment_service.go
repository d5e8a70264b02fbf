package services

import (
	"log"

	"github.com/preorder-hq/backoffice-api/models"
	"gorm.io/gorm"
)

// PlaceholderFlightName is shown when a pre-order's flight cannot be resolved.
const PlaceholderFlightName = "Flight information unavailable"

// EnrichedPreOrder is a pre-order with its referenced customer and flight
// attached for display. Customer is either the matching models.Customer or
// an empty object; Flight is either the matching models.Flight or the
// placeholder. The embedded pre-order is a copy; enrichment never mutates
// the stored row.
type EnrichedPreOrder struct {
	models.PreOrder
	Customer interface{} `json:"customer"`
	Flight   interface{} `json:"flight"`
}

// FlightPlaceholder is attached to a pre-order whose flight reference does
// not resolve.
type FlightPlaceholder struct {
	Name         string `json:"name"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

// NewFlightPlaceholder returns the stand-in flight object.
func NewFlightPlaceholder() FlightPlaceholder {
	return FlightPlaceholder{
		Name:         PlaceholderFlightName,
		ShipmentDate: "",
		Status:       models.FlightStatusScheduled,
	}
}

// EnrichPreOrders attaches customer and flight data to a page of pre-orders.
//
// The backend has no relational joins across these collections, so the join
// is done here: collect the distinct non-empty customer IDs referenced by
// the page, issue ONE batch lookup, and merge through a map keyed by ID.
// Flights are resolved the same way. A failed or unmatched lookup degrades
// to an empty customer object / the placeholder flight; it never fails the
// listing.
func EnrichPreOrders(db *gorm.DB, orders []models.PreOrder) []EnrichedPreOrder {
	customers := batchCustomers(db, orders)
	flights := batchFlights(db, orders)

	enriched := make([]EnrichedPreOrder, 0, len(orders))
	for _, order := range orders {
		enriched = append(enriched, merge(order, customers, flights))
	}
	return enriched
}

// EnrichPreOrder attaches customer and flight data to a single pre-order.
func EnrichPreOrder(db *gorm.DB, order models.PreOrder) EnrichedPreOrder {
	orders := []models.PreOrder{order}
	customers := batchCustomers(db, orders)
	flights := batchFlights(db, orders)
	return merge(order, customers, flights)
}

// batchCustomers fetches all customers referenced by the orders in one
// lookup and returns them keyed by customer ID. On lookup failure the error
// is logged and an empty map is returned, so every order falls back to an
// empty customer object (fails open).
func batchCustomers(db *gorm.DB, orders []models.PreOrder) map[string]models.Customer {
	ids := distinctIDs(orders, func(o models.PreOrder) string { return o.CustomerID })
	byID := make(map[string]models.Customer, len(ids))
	if len(ids) == 0 {
		return byID
	}

	var customers []models.Customer
	if err := db.Where("customer_id IN ?", ids).Find(&customers).Error; err != nil {
		log.Printf("EnrichPreOrders: customer lookup failed, proceeding without customer data: %v", err)
		return byID
	}

	for _, customer := range customers {
		byID[customer.CustomerID] = customer
	}
	return byID
}

// batchFlights fetches all flights referenced by the orders in one lookup,
// keyed by flight ID. Failures degrade to the placeholder for every order.
func batchFlights(db *gorm.DB, orders []models.PreOrder) map[string]models.Flight {
	ids := distinctIDs(orders, func(o models.PreOrder) string { return o.FlightID })
	byID := make(map[string]models.Flight, len(ids))
	if len(ids) == 0 {
		return byID
	}

	var flights []models.Flight
	if err := db.Where("flight_id IN ?", ids).Find(&flights).Error; err != nil {
		log.Printf("EnrichPreOrders: flight lookup failed, proceeding with placeholders: %v", err)
		return byID
	}

	for _, flight := range flights {
		byID[flight.FlightID] = flight
	}
	return byID
}

// distinctIDs collects the set of distinct, non-empty reference IDs.
func distinctIDs(orders []models.PreOrder, ref func(models.PreOrder) string) []string {
	seen := make(map[string]bool, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		id := ref(order)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func merge(order models.PreOrder, customers map[string]models.Customer, flights map[string]models.Flight) EnrichedPreOrder {
	result := EnrichedPreOrder{PreOrder: order}

	if customer, ok := customers[order.CustomerID]; ok {
		result.Customer = customer
	} else {
		result.Customer = struct{}{}
	}

	if flight, ok := flights[order.FlightID]; ok {
		result.Flight = flight
	} else {
		result.Flight = NewFlightPlaceholder()
	}

	return result
}
