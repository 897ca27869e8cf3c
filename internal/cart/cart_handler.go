package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Detail(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	res, err := h.service.Detail(ctx, ownerID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddItem(ctx, ownerID, req); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, nil)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)
	productID := ctx.Param("productId")
	size := ctx.Query("size")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx, ownerID, productID, size, req); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	if err := h.service.RemoveItem(ctx, ownerID, ctx.Param("productId"), ctx.Query("size")); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) Clear(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	if err := h.service.Clear(ctx, ownerID); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, nil)
}
