package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// SessionCookieName carries the opaque session token between requests.
const SessionCookieName = "session_id"

func (s *Server) rootPath(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Bienvenue"})
}

func (s *Server) registerUser(c *gin.Context) {

	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password form fields are required"})
		return
	}

	user, err := s.authService.Register(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "email", user.Email)
	c.JSON(http.StatusOK, gin.H{"email": user.Email, "message": "user created"})
}

func (s *Server) loginSession(c *gin.Context) {

	email := c.PostForm("email")
	password := c.PostForm("password")

	ok, err := s.authService.ValidLogin(c.Request.Context(), email, password)
	if err != nil {
		s.logger.Error(c.Request.Context(), "login check failed", "error", err.Error())
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	token, err := s.authService.CreateSession(c.Request.Context(), email)
	if err != nil || token == "" {
		// the account vanished between the check and the session write
		s.logger.Error(c.Request.Context(), "session creation failed", "email", email)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"email": email, "message": "logged in"})
}

func (s *Server) logoutSession(c *gin.Context) {

	sessionID, _ := c.Cookie(SessionCookieName)

	user, err := s.authService.UserBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "session lookup failed", "error", err.Error())
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if user == nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := s.authService.DestroySession(c.Request.Context(), user.ID); err != nil {
		s.logger.Error(c.Request.Context(), "session destroy failed", "error", err.Error())
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) profileSession(c *gin.Context) {

	sessionID, _ := c.Cookie(SessionCookieName)

	user, err := s.authService.UserBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "session lookup failed", "error", err.Error())
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if user == nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}
