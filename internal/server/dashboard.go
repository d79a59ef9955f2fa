package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getDashboard(c *gin.Context) {
	stats, err := s.dashboardSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	monthly, err := s.dashboardSvc.MonthlyJobs(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"monthly_jobs": monthly,
	})
}
