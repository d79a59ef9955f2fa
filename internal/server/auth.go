package server

import (
	"net/http"

	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	user, err := s.userSvc.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type saveUserRequest struct {
	ID               string `json:"id"`
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	Name             string `json:"name"`
	Role             string `json:"role" binding:"required"`
	IsActive         bool   `json:"is_active"`
	LinkedCustomerID string `json:"linked_customer_id"`
}

func (s *Server) saveUser(c *gin.Context) {
	var req saveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrMalformedBody)
		return
	}

	user, err := s.userSvc.Save(c.Request.Context(), userdomain.SaveUserRequest{
		ID:               req.ID,
		Username:         req.Username,
		Password:         req.Password,
		Name:             req.Name,
		Role:             userdomain.Role(req.Role),
		IsActive:         req.IsActive,
		LinkedCustomerID: req.LinkedCustomerID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.userSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) deleteUser(c *gin.Context) {
	if err := s.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
