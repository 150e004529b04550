package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amberdrive/backoffice/internal/http/middleware"
	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/service"
)

func (h *Handler) listQuotes(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	quotes, err := h.quotes.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (h *Handler) getQuote(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

type pricingOverrideRequest struct {
	Price   *float64 `json:"price"`
	Km      *int     `json:"km"`
	ExtraKm *float64 `json:"extra_km"`
	Deposit *float64 `json:"deposit"`
}

type createQuoteRequest struct {
	ClientName   string                            `json:"client_name"`
	ClientEmail  *string                           `json:"client_email"`
	QuoteDate    string                            `json:"quote_date"`
	Destination  *string                           `json:"destination"`
	SelectedCars []int64                           `json:"selected_cars"`
	CarPricing   map[string]pricingOverrideRequest `json:"car_pricing"`
}

func (h *Handler) createQuote(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateQuoteInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		Destination:    req.Destination,
		SelectedCarIDs: req.SelectedCars,
	}
	if req.QuoteDate != "" {
		date, err := parseDate(req.QuoteDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote_date"})
			return
		}
		input.QuoteDate = date
	}
	if len(req.CarPricing) > 0 {
		input.Pricing = make(map[int64]service.PricingOverride, len(req.CarPricing))
		for key, override := range req.CarPricing {
			carID, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car_pricing key"})
				return
			}
			input.Pricing[carID] = service.PricingOverride{
				Price:   override.Price,
				Km:      override.Km,
				ExtraKm: override.ExtraKm,
				Deposit: override.Deposit,
			}
		}
	}

	quote, err := h.quotes.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

type updateQuoteLineRequest struct {
	CarID         int64   `json:"car_id"`
	CustomPrice   float64 `json:"custom_price"`
	CustomKm      int     `json:"custom_km"`
	CustomExtraKm float64 `json:"custom_extra_km"`
	CustomDeposit float64 `json:"custom_deposit"`
}

type updateQuoteRequest struct {
	ClientName  *string                  `json:"client_name"`
	ClientEmail *string                  `json:"client_email"`
	Destination *string                  `json:"destination"`
	Cars        []updateQuoteLineRequest `json:"cars"`
}

func (h *Handler) updateQuote(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateQuoteInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Destination: req.Destination,
	}
	if req.Cars != nil {
		input.Lines = make([]service.UpdateQuoteLineInput, 0, len(req.Cars))
		for _, line := range req.Cars {
			input.Lines = append(input.Lines, service.UpdateQuoteLineInput{
				CarID:   line.CarID,
				Price:   line.CustomPrice,
				Km:      line.CustomKm,
				ExtraKm: line.CustomExtraKm,
				Deposit: line.CustomDeposit,
			})
		}
	}

	quote, err := h.quotes.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

type quoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setQuoteStatus(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req quoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.quotes.SetStatus(c.Request.Context(), id, model.QuoteStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

func (h *Handler) deleteQuote(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.quotes.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

func (h *Handler) bulkDeleteQuotes(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.quotes.BulkDelete(c.Request.Context(), req.IDs); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) exportQuotePDF(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.quotes.ExportPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportQuoteRegister(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	result, err := h.quotes.ExportRegister(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
