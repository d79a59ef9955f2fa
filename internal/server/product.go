package server

import (
	"net/http"

	productdomain "github.com/chonx19/act-r/internal/product/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) saveProduct(c *gin.Context) {
	var product productdomain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	saved, err := s.productSvc.Save(c.Request.Context(), product)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.productSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
