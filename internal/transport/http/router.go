package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/Gunvolt24/wb_l2/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_l2/pkg/httpx"
	"github.com/Gunvolt24/wb_l2/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const idempotencyKeyHeader = "Idempotency-Key"

// Границы опциональной пагинации листинга.
const (
	defaultListLimit = 20
	maxListLimit     = 1000
)

// Handler — HTTP-обработчики заказов поверх ports.OrderService.
type Handler struct {
	service ports.OrderService
	log     ports.Logger
	timeout time.Duration // бюджет на обработку одного запроса; 0 — без лимита
}

// NewHandler — конструктор Handler.
func NewHandler(service ports.OrderService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — собирает маршрутизатор: middleware, служебные и доменные маршруты.
// otelServiceName != "" включает otelgin-инструментацию.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/orders", h.createOrder)
	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrderByID)
	r.PUT("/orders/:id", h.updateOrder)
	r.DELETE("/orders/:id", h.deleteOrder)

	return r
}

// orderRequest — тело запроса создания/обновления.
type orderRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// errorJSON — единый конверт ошибки.
func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func (h *Handler) createOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	token := c.GetHeader(idempotencyKeyHeader)
	if token == "" {
		errorJSON(c, http.StatusBadRequest, "Missing Idempotency-Key header")
		return
	}
	ctx = ctxmeta.WithIdempotencyToken(ctx, token)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, replay, err := h.service.CreateOrder(ctx, token, domain.Order{Product: req.Product, Quantity: req.Quantity})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if replay {
		c.JSON(http.StatusOK, gin.H{"message": "Order already processed", "order": order})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

func (h *Handler) getOrderByID(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	if id == "" {
		errorJSON(c, http.StatusBadRequest, "empty id")
		return
	}

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if order == nil {
		errorJSON(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.service.ListOrders(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Пагинация опциональна: без limit/offset отдаём весь список.
	if c.Query("limit") != "" || c.Query("offset") != "" {
		limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)
		if offset >= len(orders) {
			orders = orders[:0]
		} else {
			orders = orders[offset:]
		}
		if len(orders) > limit {
			orders = orders[:limit]
		}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) updateOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	if id == "" {
		errorJSON(c, http.StatusBadRequest, "empty id")
		return
	}

	token := c.GetHeader(idempotencyKeyHeader)
	if token == "" {
		errorJSON(c, http.StatusBadRequest, "Missing Idempotency-Key header")
		return
	}
	ctx = ctxmeta.WithIdempotencyToken(ctx, token)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.service.UpdateOrder(ctx, id, token, domain.Order{Product: req.Product, Quantity: req.Quantity})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
}

func (h *Handler) deleteOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	if id == "" {
		errorJSON(c, http.StatusBadRequest, "empty id")
		return
	}

	if err := h.service.DeleteOrder(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeServiceError — сопоставление доменных ошибок с HTTP-кодами.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingIdempotencyKey):
		errorJSON(c, http.StatusBadRequest, "Missing Idempotency-Key header")
	case errors.Is(err, validate.ErrInvalidOrder):
		errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorf(c.Request.Context(), "request failed method=%s path=%s err=%v", c.Request.Method, c.FullPath(), err)
		errorJSON(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
