package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/user/dto"
	"agroplan/internal/application/user/usecases"
	"agroplan/internal/domain/user"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginWithPasswordResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}

type AuthHandler struct {
	loginUC   loginUseCase
	refreshUC refreshTokenUseCase
	meUC      getCurrentUserUseCase
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginWithPasswordUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	meUC *usecases.GetCurrentUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		refreshUC: refreshUC,
		meUC:      meUC,
		logger:    logger,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.TokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
		User:         dto.ToUserDTO(result.User),
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: req.RefreshToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.TokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.meUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserDTO(u))
}
