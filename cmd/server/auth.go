package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthSessionName = "edusphere-oauth"

// handleAuthStart begins the Google OAuth flow for Forms authorization. The
// CSRF state token is kept in a cookie session and checked on callback.
func (s *Server) handleAuthStart(c *gin.Context) {
	state := uuid.NewString()

	authURL, err := s.forms.AuthorizationURL(state)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"error": "Could not generate auth URL. Check GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.",
		})
		return
	}

	session, _ := s.store.Get(c.Request, oauthSessionName)
	session.Values["state"] = state
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.log.Warnw("failed to save oauth session", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"auth_url": authURL,
		"message":  "Open this URL in your browser to authorize Google Forms",
	})
}

// handleAuthCallback exchanges the one-time code for a persisted credential.
func (s *Server) handleAuthCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": errParam})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "No authorization code received"})
		return
	}

	session, _ := s.store.Get(c.Request, oauthSessionName)
	expected, _ := session.Values["state"].(string)
	if expected == "" || c.Query("state") != expected {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Invalid OAuth state"})
		return
	}
	delete(session.Values, "state")
	_ = session.Save(c.Request, c.Writer)

	if err := s.forms.Exchange(c.Request.Context(), code); err != nil {
		s.log.Warnw("oauth exchange failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Google Forms authorized successfully! You can now create real forms.",
	})
}

// handleAuthStatus reports whether the forms adapter holds a usable
// credential.
func (s *Server) handleAuthStatus(c *gin.Context) {
	if s.forms.Ready() {
		c.JSON(http.StatusOK, gin.H{
			"forms_ready": true,
			"message":     "Forms ready to create!",
		})
		return
	}

	resp := gin.H{
		"forms_ready": false,
		"message":     "Not authorized. Visit /auth/google to start.",
	}
	if authURL, err := s.forms.AuthorizationURL(uuid.NewString()); err == nil {
		resp["auth_url"] = authURL
	}
	c.JSON(http.StatusOK, resp)
}
