package server

import (
	"net/http"

	historydomain "github.com/chonx19/act-r/internal/history/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) listHistory(c *gin.Context) {
	rows, err := s.historySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}

func (s *Server) importHistory(c *gin.Context) {
	var rows []historydomain.ImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		AbortWithError(c, historydomain.ErrMalformedImport)
		return
	}

	imported, err := s.historySvc.Import(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func (s *Server) importHistoryXLSX(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, historydomain.ErrMalformedImport)
		return
	}

	reader, err := file.Open()
	if err != nil {
		AbortWithError(c, historydomain.ErrMalformedImport)
		return
	}
	defer reader.Close()

	imported, err := s.historySvc.ImportXLSX(c.Request.Context(), reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
