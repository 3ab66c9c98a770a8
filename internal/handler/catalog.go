package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type ProductCatalog interface {
	Products() []entities.Product
	Product(id int) (entities.Product, error)
}

type CatalogHandler struct {
	responder
	products ProductCatalog
}

func NewCatalogHandler(logger *slog.Logger, translator Translator, products ProductCatalog) *CatalogHandler {
	return &CatalogHandler{
		responder: responder{logger: logger.With(slog.String("handler", "catalog")), translator: translator},
		products:  products,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
}

// ListProducts returns the product catalog.
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Product
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.products.Products()
	res := make([]Product, len(products))
	for i, p := range products {
		res[i] = ProductEntityToJSON(p)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProduct returns one product.
// @Summary      Get product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.products.Product(id)
	if err != nil {
		h.writeError(w, r, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}
