package controller

import (
	"errors"

	"uni_archive_backend/internal/service"
	"uni_archive_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type otpRequest struct {
	Email string `json:"email" binding:"required"`
}

type verifyRequest struct {
	Email string `json:"email" binding:"required"`
	Otp   string `json:"otp" binding:"required"`
}

// RequestOtp godoc
// @Summary Request a login code
// @Description Email a one-time code to a university address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body otpRequest true "Student email"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /auth/otp [post]
func (c *AuthController) RequestOtp(ctx *gin.Context) {
	var req otpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email is required")
		return
	}

	if err := c.Auth.RequestOtp(ctx.Request.Context(), req.Email); err != nil {
		if errors.Is(err, util.ErrInvalidDomain) {
			util.BadRequest(ctx, "Please use a valid VIT student email")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "OTP sent successfully"})
}

// VerifyOtp godoc
// @Summary Verify a login code
// @Description Exchange a valid one-time code for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body verifyRequest true "Email and code"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /auth/verify [post]
func (c *AuthController) VerifyOtp(ctx *gin.Context) {
	var req verifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email and OTP are required")
		return
	}

	token, err := c.Auth.VerifyOtp(ctx.Request.Context(), req.Email, req.Otp)
	if err != nil {
		if errors.Is(err, util.ErrOtpMismatch) {
			util.BadRequest(ctx, "Invalid or expired OTP")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true, "token": token})
}
