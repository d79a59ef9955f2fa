package server

import (
	"net/http"

	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	"github.com/gin-gonic/gin"
)

type createTransactionRequest struct {
	Type      string `json:"type" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
	UserID    string `json:"user_id"`
	Notes     string `json:"notes"`
}

func (s *Server) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	record, err := s.inventorySvc.RecordTransaction(c.Request.Context(), inventorydomain.RecordTransactionRequest{
		Type:      inventorydomain.TransactionType(req.Type),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UserID:    req.UserID,
		Notes:     req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) listTransactions(c *gin.Context) {
	records, err := s.inventorySvc.Transactions(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}

func (s *Server) listStock(c *gin.Context) {
	levels, err := s.inventorySvc.Levels(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": levels})
}

func (s *Server) getStock(c *gin.Context) {
	productID := c.Param("productId")
	quantity, err := s.inventorySvc.StockLevel(c.Request.Context(), productID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "quantity": quantity})
}
