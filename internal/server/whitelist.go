package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addWhitelistRequest struct {
	IP          string `json:"ip" binding:"required"`
	Description string `json:"description"`
	AddedBy     string `json:"added_by"`
}

func (s *Server) addWhitelistEntry(c *gin.Context) {
	var req addWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	entry, err := s.accessSvc.AddToWhitelist(c.Request.Context(), req.IP, req.Description, req.AddedBy)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) listWhitelist(c *gin.Context) {
	entries, err := s.accessSvc.Whitelist(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"whitelist": entries})
}

func (s *Server) removeWhitelistEntry(c *gin.Context) {
	if err := s.accessSvc.RemoveFromWhitelist(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listSessions(c *gin.Context) {
	sessions, err := s.accessSvc.Sessions(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
