package controllers

import (
	"errors"

	"bapi/models"
	"bapi/store"
	"bapi/utils"
	"bapi/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	store store.Store
}

func NewAuthController(s store.Store) *AuthController {
	return &AuthController{store: s}
}

func (ac *AuthController) Register(c *gin.Context) {
	raw, _ := c.GetRawData()

	body := validation.Parse(raw)
	body.NotEmpty("name")
	body.IsString("name")
	body.NotEmpty("email")
	body.IsEmail("email")
	body.NotEmpty("password")
	body.StrongPassword("password")
	if !body.Valid() {
		utils.BadRequest(c, body.Messages())
		return
	}

	name, _ := body.String("name")
	email, _ := body.String("email")
	password, _ := body.String("password")

	user := &models.User{Name: name, Email: email, Password: password}
	if err := user.HashPassword(); err != nil {
		utils.ServerError(c)
		return
	}

	if err := ac.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.Conflict(c, "Email already exists")
			return
		}
		utils.ServerError(c)
		return
	}

	utils.Created(c, "User registered successfully", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	raw, _ := c.GetRawData()

	// Any bad credential combination, including a missing body, answers
	// with the same Unauthorized response.
	body := validation.Parse(raw)
	email, okEmail := body.String("email")
	password, okPassword := body.String("password")
	if !okEmail || !okPassword {
		utils.Unauthorized(c)
		return
	}

	user, err := ac.store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.Unauthorized(c)
		return
	}

	if !user.CheckPassword(password) {
		utils.Unauthorized(c)
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Login success", gin.H{"access_token": token})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c)
		return
	}

	user, err := ac.store.UserByID(c.Request.Context(), userID.(uint))
	if err != nil {
		utils.Unauthorized(c)
		return
	}

	utils.OK(c, "", user)
}

func (ac *AuthController) Reset(c *gin.Context) {
	if err := ac.store.ResetUsers(c.Request.Context()); err != nil {
		utils.ServerError(c)
		return
	}
	utils.OK(c, "Users reset successfully", nil)
}
