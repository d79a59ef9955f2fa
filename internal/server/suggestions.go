package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// suggestion is one autocomplete candidate for a quotation line. Source
// tells the form whether the price came from the customer's own history
// or from the catalog list price.
type suggestion struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Unit   string  `json:"unit"`
	Source string  `json:"source"`
}

// listSuggestions merges customer purchase history with the product
// catalog. History wins on name collisions: a price the customer has
// already been quoted beats the list price.
func (s *Server) listSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	customerName := strings.TrimSpace(c.Query("customer"))

	var out []suggestion
	seen := make(map[string]bool)

	if customerName != "" {
		rows, err := s.historySvc.Search(c.Request.Context(), customerName, query)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		for _, row := range rows {
			out = append(out, suggestion{
				Name:   row.ProductName,
				Price:  row.Price,
				Unit:   row.Unit,
				Source: "history",
			})
			seen[strings.ToLower(row.ProductName)] = true
		}
	}

	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	needle := strings.ToLower(query)
	for _, p := range products {
		name := strings.ToLower(p.ProductName)
		if seen[name] {
			continue
		}
		if needle != "" && !strings.Contains(name, needle) {
			continue
		}
		out = append(out, suggestion{
			Name:   p.ProductName,
			Price:  p.Price,
			Unit:   p.Unit,
			Source: "stock",
		})
	}

	if out == nil {
		out = []suggestion{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": out})
}
