package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"getsbiplay.ru/store/api/pkg/cart"
	"getsbiplay.ru/store/api/pkg/catalog"
	"getsbiplay.ru/store/api/pkg/global"
	"getsbiplay.ru/store/api/pkg/models"
	"getsbiplay.ru/store/api/pkg/store"
)

// OrderNotifier forwards a checkout order to the external messaging
// collaborator.
type OrderNotifier interface {
	SubmitOrder(ctx context.Context, order models.Order) error
}

// Handler owns the wired collaborators: the two-tier product repository, the
// cart ledger store and the order notifier. The repository is the concrete
// Fallback so its reads-never-error contract holds for every wiring. The
// Mongo client is kept only for the health probe and may be nil when the
// remote store is disabled.
type Handler struct {
	products    *store.Fallback
	carts       cart.Store
	notifier    OrderNotifier
	mongoClient *mongodriver.Client
}

func NewHandler(products *store.Fallback, carts cart.Store, notifier OrderNotifier, mongoClient *mongodriver.Client) *Handler {
	return &Handler{
		products:    products,
		carts:       carts,
		notifier:    notifier,
		mongoClient: mongoClient,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	status := map[string]string{"status": "OK", "database": "disabled"}
	if h.mongoClient != nil {
		if err := h.mongoClient.Ping(c, nil); err != nil {
			status["database"] = "unreachable"
		} else {
			status["database"] = "connected"
		}
	}
	c.JSON(http.StatusOK, global.SuccessResponse(status))
}

// ListProducts serves the full catalog. The repository absorbs store
// failures, so this never errors.
func (h *Handler) ListProducts(c *gin.Context) {
	products, _ := h.products.List(c.Request.Context())
	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	products, _ := h.products.List(c.Request.Context())
	for _, p := range products {
		if p.ID == id {
			c.JSON(http.StatusOK, global.SuccessResponse(p))
			return
		}
	}

	c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
		{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
	}))
}

// Catalog serves the listing narrowed by the optional category and q query
// parameters.
func (h *Handler) Catalog(c *gin.Context) {
	query := catalog.Query{
		Category: models.Category(c.Query("category")),
		Search:   c.Query("q"),
	}
	if query.Category != "" && !query.Category.Valid() {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown category", []global.ValidationError{
			{Field: "category", Message: "Must be one of the storefront categories", Code: "invalid_value"},
		}))
		return
	}

	products, _ := h.products.List(c.Request.Context())
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Filter(products, query)))
}

// SaveProduct upserts a product. Create and update share this handler; the
// repository assigns an identifier when the payload has none.
func (h *Handler) SaveProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if errs := product.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product", errs))
		return
	}

	saved, err := h.products.Save(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save product", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(saved))
}

// DeleteProduct removes a product by the id query parameter. Deleting an
// absent id succeeds.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Product ID is required", []global.ValidationError{
			{Field: "id", Message: "id query parameter is required", Code: "required"},
		}))
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"id": id}))
}

// AdminPanel serves the product listing for the management surface. The page
// gate has already vetted the session.
func (h *Handler) AdminPanel(c *gin.Context) {
	products, _ := h.products.List(c.Request.Context())
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"products": products,
		"count":    len(products),
	}))
}
