package server

import (
	"io"
	"net/http"

	"github.com/chonx19/act-r/internal/backup"
	"github.com/gin-gonic/gin"
)

func (s *Server) exportBackup(c *gin.Context) {
	bundle, err := s.backupSvc.Export(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="stockroom-backup.json"`)
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) importBackup(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, backup.ErrMalformedPayload)
		return
	}

	if err := s.backupSvc.Import(c.Request.Context(), payload); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
