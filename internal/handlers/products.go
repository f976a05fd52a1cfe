package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/models"
)

type productPayload struct {
	Title       string   `json:"title"`
	Energy      *float64 `json:"energy"`
	Proteins    *float64 `json:"proteins"`
	Fats        *float64 `json:"fats"`
	Carbs       *float64 `json:"carbs"`
	Sugar       *float64 `json:"sugar"`
	Salt        *float64 `json:"salt"`
	Note        string   `json:"note"`
	Rate        *int     `json:"rate"`
	LactoseFree *bool    `json:"lactose_free"`
}

func (p productPayload) validate() string {
	if strings.TrimSpace(p.Title) == "" {
		return "title is required"
	}
	if p.Energy == nil || p.Proteins == nil || p.Fats == nil || p.Carbs == nil {
		return "energy, proteins, fats and carbs are required"
	}
	for _, v := range []float64{*p.Energy, *p.Proteins, *p.Fats, *p.Carbs} {
		if v < 0 {
			return "nutrition values must not be negative"
		}
	}
	if p.Rate != nil && (*p.Rate < 0 || *p.Rate > 5) {
		return "rate must be between 0 and 5"
	}
	return ""
}

func (p productPayload) apply(product *models.Product) {
	product.Title = strings.TrimSpace(p.Title)
	product.Energy = *p.Energy
	product.Proteins = *p.Proteins
	product.Fats = *p.Fats
	product.Carbs = *p.Carbs
	product.Sugar = p.Sugar
	product.Salt = p.Salt
	product.Note = strings.TrimSpace(p.Note)
	product.Rate = p.Rate
	product.LactoseFree = p.LactoseFree
}

// ProductResource serves the product catalog under /app/api/products.
func ProductResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/products")

	switch {
	case r.Method == http.MethodGet && !hasID:
		listProducts(w, r)
	case r.Method == http.MethodPost && !hasID:
		createProduct(w, r)
	case r.Method == http.MethodGet:
		showProduct(w, r, id)
	case r.Method == http.MethodPut:
		updateProduct(w, r, id)
	case r.Method == http.MethodDelete:
		writeDeleteResult(w, r, diary.DeleteProduct(r.Context(), database, id), "product")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := database.WithContext(r.Context()).Order("title asc").Find(&products).Error; err != nil {
		applog.Error(r.Context(), "failed to list products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to list products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func createProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid product payload")
		return
	}
	if msg := payload.validate(); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	product := models.Product{}
	payload.apply(&product)

	if err := database.WithContext(r.Context()).Create(&product).Error; err != nil {
		applog.Error(r.Context(), "failed to create product", "title", product.Title, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to create product; the title may already exist")
		return
	}

	applog.Info(r.Context(), "product created", "id", product.ID, "title", product.Title)
	writeJSON(w, http.StatusCreated, product)
}

func showProduct(w http.ResponseWriter, r *http.Request, id uint) {
	var product models.Product
	if err := database.WithContext(r.Context()).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load product", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func updateProduct(w http.ResponseWriter, r *http.Request, id uint) {
	var payload productPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid product payload")
		return
	}
	if msg := payload.validate(); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	var product models.Product
	if err := database.WithContext(r.Context()).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load product", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load product")
		return
	}

	payload.apply(&product)
	if err := database.WithContext(r.Context()).Save(&product).Error; err != nil {
		applog.Error(r.Context(), "failed to update product", "id", id, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to update product; the title may already exist")
		return
	}

	writeJSON(w, http.StatusOK, product)
}
