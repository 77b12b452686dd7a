package handlers

import (
	"errors"
	"io"
	"net/http"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/config"
	"nursery_manager/internal/middleware"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
	"nursery_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type APIHandler struct {
	plantService     services.PlantService
	customerService  services.CustomerService
	billService      services.BillService
	quotationService services.QuotationService
	dashboardService services.DashboardService
	currency         *billing.CurrencyFormatter
	shop             config.ShopInfo
}

func NewAPIHandler(
	plantService services.PlantService,
	customerService services.CustomerService,
	billService services.BillService,
	quotationService services.QuotationService,
	dashboardService services.DashboardService,
	currency *billing.CurrencyFormatter,
	shop config.ShopInfo,
) *APIHandler {
	return &APIHandler{
		plantService:     plantService,
		customerService:  customerService,
		billService:      billService,
		quotationService: quotationService,
		dashboardService: dashboardService,
		currency:         currency,
		shop:             shop,
	}
}

// Plants

func (h *APIHandler) ListPlants(c *gin.Context) {
	plants, err := h.plantService.List(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

func (h *APIHandler) LowStockPlants(c *gin.Context) {
	plants, err := h.plantService.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

func (h *APIHandler) GetPlant(c *gin.Context) {
	plant, err := h.plantService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (h *APIHandler) CreatePlant(c *gin.Context) {
	var req services.PlantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	plant, err := h.plantService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plant)
}

func (h *APIHandler) UpdatePlant(c *gin.Context) {
	var req services.PlantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	plant, err := h.plantService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

// Customers

func (h *APIHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.List(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *APIHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.customerService.Search(c.Query("q"), pageWithDefaultLimit(c, repository.SearchLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *APIHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *APIHandler) CreateCustomer(c *gin.Context) {
	var req services.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := h.customerService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *APIHandler) UpdateCustomer(c *gin.Context) {
	var req services.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := h.customerService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Bills

func (h *APIHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.List(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *APIHandler) PendingBills(c *gin.Context) {
	bills, err := h.billService.ListPending(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *APIHandler) GetBill(c *gin.Context) {
	bill, err := h.billService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *APIHandler) CreateBill(c *gin.Context) {
	var req services.BillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	bill, err := h.billService.Create(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (h *APIHandler) ApproveBill(c *gin.Context) {
	bill, err := h.billService.Approve(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill approved successfully", "bill": bill})
}

// Quotations

func (h *APIHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.quotationService.List(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotations)
}

func (h *APIHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.quotationService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotation)
}

func (h *APIHandler) CreateQuotation(c *gin.Context) {
	var req services.QuotationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	quotation, err := h.quotationService.Create(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quotation)
}

func (h *APIHandler) ConvertQuotation(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	// The body is optional; an empty one means the default payment method.
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, err)
			return
		}
	}
	quotation, bill, err := h.quotationService.Convert(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": quotation, "bill": bill})
}

// Totals preview and dashboard

type previewRequest struct {
	Items    []models.LineItem `json:"items"`
	Tax      decimal.Decimal   `json:"tax"`
	Discount decimal.Decimal   `json:"discount"`
}

// PreviewTotals runs the draft calculator without saving anything.
func (h *APIHandler) PreviewTotals(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	draft := &billing.Draft{}
	if err := draft.SetAdjustments(req.Tax, req.Discount); err != nil {
		respondError(c, err)
		return
	}
	for _, it := range req.Items {
		if err := draft.AddItem(it); err != nil {
			respondError(c, err)
			return
		}
	}

	totals := draft.Totals()
	c.JSON(http.StatusOK, gin.H{
		"items":           draft.Items,
		"subtotal":        totals.Subtotal,
		"tax":             totals.Tax,
		"discount":        totals.Discount,
		"total_amount":    totals.TotalAmount,
		"formatted_total": h.currency.Format(totals.TotalAmount),
	})
}

func (h *APIHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *APIHandler) Shop(c *gin.Context) {
	c.JSON(http.StatusOK, h.shop)
}
