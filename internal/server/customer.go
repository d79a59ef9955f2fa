package server

import (
	"net/http"
	"strings"

	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) saveCustomer(c *gin.Context) {
	var customer customerdomain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	saved, err := s.customerSvc.Save(c.Request.Context(), customer)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) getCustomer(c *gin.Context) {
	customer, err := s.customerSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (s *Server) deleteCustomer(c *gin.Context) {
	if err := s.customerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// searchCustomerHistory powers the quotation form's price lookup: exact
// customer, substring product match, newest quote per product.
func (s *Server) searchCustomerHistory(c *gin.Context) {
	customerName := strings.TrimSpace(c.Query("customer"))
	if customerName == "" {
		AbortWithError(c, historydomain.ErrInvalidCustomer)
		return
	}

	rows, err := s.historySvc.Search(c.Request.Context(), customerName, c.Query("q"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}
