package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/middlewares"
	"github.com/piskorekkevin-afk/essenstracker/services"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type RegisterInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		flashRedirect(c, "/register", "Bitte alle Felder ausfüllen.")
		return
	}

	user, err := h.Auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserTaken) {
			if wantsJSON(c) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			flashRedirect(c, "/register", "Benutzername oder E-Mail bereits vergeben.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	setAuthCookie(c, token)

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{"token": token, "username": user.Username})
		return
	}
	flashRedirect(c, "/", "Willkommen bei EssensTracker!")
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if wantsJSON(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		flashRedirect(c, "/login", "Ungültige Anmeldedaten.")
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	setAuthCookie(c, token)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookie, "", -1, "/", "", false, true)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middlewares.AuthCookie, token, 72*3600, "/", "", false, true)
}
