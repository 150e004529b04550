package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amberdrive/backoffice/internal/http/middleware"
	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/repository"
	"github.com/amberdrive/backoffice/internal/service"
)

func (h *Handler) listCars(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	filter := repository.CarFilter{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}
	cars, brands, err := h.cars.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars, "brands": brands})
}

func (h *Handler) getCar(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	car, err := h.cars.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) createCar(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	input, err := carInputFromForm(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	car, err := h.cars.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car": car})
}

func (h *Handler) updateCar(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	input, err := carInputFromForm(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	car, err := h.cars.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car": car})
}

func (h *Handler) deleteCar(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type bulkCarsRequest struct {
	IDs    []int64 `json:"ids" binding:"required"`
	Action string  `json:"action" binding:"required"`
}

func (h *Handler) bulkCars(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req bulkCarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cars.Bulk(c.Request.Context(), req.IDs, service.BulkCarAction(req.Action)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// carInputFromForm reads the multipart catalog form. Numeric fields fall
// back to zero on parse failure, matching the admin form's loose inputs.
func carInputFromForm(c *gin.Context) (service.CarInput, error) {
	input := service.CarInput{
		Name:           strings.TrimSpace(c.PostForm("name")),
		Brand:          strings.TrimSpace(c.PostForm("brand")),
		Category:       strings.TrimSpace(c.PostForm("category")),
		DefaultPrice:   formFloat(c, "default_price"),
		DefaultKm:      formInt(c, "default_km"),
		DefaultExtraKm: formFloat(c, "default_extra_km"),
		DefaultDeposit: formFloat(c, "default_deposit"),
		Status:         model.CarStatus(c.PostForm("status")),
	}
	if description := c.PostForm("description"); description != "" {
		input.Description = &description
	}

	file, err := c.FormFile("image")
	if err != nil {
		// absent image field means keep the current image
		return input, nil
	}
	if file.Size == 0 {
		return input, nil
	}

	opened, err := file.Open()
	if err != nil {
		return input, err
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		return input, err
	}
	input.Image = &service.ImageUpload{FileName: file.Filename, Data: data}
	return input, nil
}

func formFloat(c *gin.Context, field string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm(field)), 64)
	if err != nil {
		return 0
	}
	return value
}

func formInt(c *gin.Context, field string) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.PostForm(field)))
	if err != nil {
		return 0
	}
	return value
}
