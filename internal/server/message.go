package server

import (
	"net/http"

	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
	Subject    string `json:"subject" binding:"required"`
	Content    string `json:"content"`
	Category   string `json:"category"`
}

func (s *Server) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	msg, err := s.messageSvc.Send(c.Request.Context(), messagedomain.SendRequest{
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		SenderRole: req.SenderRole,
		Subject:    req.Subject,
		Content:    req.Content,
		Category:   messagedomain.Category(req.Category),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) listMessages(c *gin.Context) {
	messages, err := s.messageSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	unread, err := s.messageSvc.UnreadCount(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "unread": unread})
}

func (s *Server) markMessageRead(c *gin.Context) {
	if err := s.messageSvc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
