package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

// Login -> cek password admin, token dikirim di body dan cookie
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	session, err := ac.Admin.Login(req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	setSessionCookie(c, session)
	utils.RespondJSON(c, http.StatusOK, "Login successful", session)
}

// Logout
func (ac *AdminController) Logout(c *gin.Context) {
	if err := ac.Admin.Logout(middlewares.SessionToken(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	clearSessionCookie(c)
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

func setSessionCookie(c *gin.Context, session *services.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AdminCookieName, session.Token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AdminCookieName, "", -1, "/", "", false, true)
}
