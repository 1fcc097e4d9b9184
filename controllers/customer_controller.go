package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"managebooking-backend/middleware"
	"managebooking-backend/services"
	"managebooking-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// respondServiceError maps service errors onto the HTTP surface: validation
// details with 400, ownership/not-found with 404, anything else logged and
// hidden behind a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		utils.JSONValidationError(c, http.StatusBadRequest, verrs)
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.JSONError(c, http.StatusNotFound, "Customer not found or you don't have permission to access this customer.")
	default:
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required")
	}
	return userID, ok
}

func customerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer id")
		return 0, false
	}
	return uint(id), true
}

// RegisterCustomer (POST /api/customers)
func (ctrl *CustomerController) RegisterCustomer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Register(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetCustomers (GET /api/customers?filter=in-hotel|checkout)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	customers, err := ctrl.CustomerSvc.List(userID, c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// GetCustomerByID (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	customer, err := ctrl.CustomerSvc.GetByID(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// UpdateCustomer (PUT /api/customers/:id)
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Update(id, userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// DeleteCustomer (DELETE /api/customers/:id)
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.CustomerSvc.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// CheckoutCustomer (POST /api/customers/:id/checkout)
func (ctrl *CustomerController) CheckoutCustomer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	customer, err := ctrl.CustomerSvc.Checkout(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// ReactivateCustomer (POST /api/customers/:id/reactivate)
func (ctrl *CustomerController) ReactivateCustomer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	customer, err := ctrl.CustomerSvc.Reactivate(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// GetOccupiedRooms (GET /api/customers/occupied-rooms?exclude=id)
func (ctrl *CustomerController) GetOccupiedRooms(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var excludeID uint
	if raw := c.Query("exclude"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid exclude id")
			return
		}
		excludeID = uint(id)
	}

	rooms, err := ctrl.CustomerSvc.OccupiedRooms(userID, excludeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetCustomerEvents (GET /api/customers/:id/events)
func (ctrl *CustomerController) GetCustomerEvents(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	events, err := ctrl.CustomerSvc.Events(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}
