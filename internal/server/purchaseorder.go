package server

import (
	"net/http"

	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) savePurchaseOrder(c *gin.Context) {
	var po purchaseorderdomain.PurchaseOrder
	if err := c.ShouldBindJSON(&po); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	saved, err := s.orderSvc.Save(c.Request.Context(), po)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) getPurchaseOrder(c *gin.Context) {
	po, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (s *Server) listPurchaseOrders(c *gin.Context) {
	orders, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchase_orders": orders})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) updatePurchaseOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	po, err := s.orderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), purchaseorderdomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (s *Server) deletePurchaseOrder(c *gin.Context) {
	if err := s.orderSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
