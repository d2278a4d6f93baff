package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weekend-explore/explore/internal/auth"
	"github.com/weekend-explore/explore/internal/models"
	"github.com/weekend-explore/explore/internal/store"
	"github.com/weekend-explore/explore/internal/types"
	"github.com/weekend-explore/explore/internal/utils"
)

type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenManager
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	_, err := h.users.FindByEmail(body.Email)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("checking existing user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := auth.HashPassword(body.Password)

	if err != nil {
		log.Error().Err(err).Msg("hashing password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: passwordHash,
		AvatarURL:    auth.AvatarURL(body.Email),
	}

	if err := h.users.Create(&user); err != nil {
		// The unique index catches registrations that raced past the
		// existence check above.
		if errors.Is(err, store.ErrDuplicateUser) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}

		log.Error().Err(err).Msg("creating user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	identity := types.Identity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}

	token, err := h.tokens.Issue(identity)

	if err != nil {
		log.Error().Err(err).Msg("issuing token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"token": token, "user": identity})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	user, err := h.users.FindByEmail(body.Email)

	if errors.Is(err, store.ErrNotFound) {
		// Same response as a wrong password: a login attempt must not
		// reveal whether the email is registered.
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("fetching user for login")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// CheckPassword rejects accounts with no stored secret as well as
	// wrong passwords.
	if !auth.CheckPassword(user.PasswordHash, body.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	identity := types.Identity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}

	token, err := h.tokens.Issue(identity)

	if err != nil {
		log.Error().Err(err).Msg("issuing token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": identity})
}

// ForgotPassword acknowledges the request without doing anything. Real
// reset mail is not implemented; the response is the same whether or
// not the email exists.
func (h *AuthHandler) ForgotPassword(ctx *gin.Context) {
	var body ForgotPasswordRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "If this email exists, a reset link has been sent."})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": identity})
}
