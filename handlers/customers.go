package handlers

import (
	"net/http"

	"goldenbay/models"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler backs the staff phone book (CRM contacts).
type CustomerHandler struct {
	Logger *zap.Logger
}

func NewCustomerHandler(logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Logger: logger}
}

func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	client := apiClientFrom(c)
	customers, err := client.ListCustomers(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if customer.Name == "" || customer.Phone == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Name and phone are required"})
		return
	}

	client := apiClientFrom(c)
	created, err := client.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		// A duplicate phone number comes back as a structured upstream
		// validation error and is surfaced verbatim.
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	client := apiClientFrom(c)
	updated, err := client.UpdateCustomer(c.Request.Context(), id, customer)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomerHandler removes a contact. Destructive: requires explicit
// confirmation, and the route is gated to Admins.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input confirmable
	_ = c.ShouldBindJSON(&input)
	if !requireConfirm(c, input.Confirm) {
		return
	}

	client := apiClientFrom(c)
	if err := client.DeleteCustomer(c.Request.Context(), id); err != nil {
		handleAPIError(c, err)
		return
	}
	h.Logger.Info("customer deleted", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
