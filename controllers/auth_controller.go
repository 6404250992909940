// file: controllers/auth_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	user, err := authService.Register(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
	})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	token, user, err := authService.Login(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Login success", gin.H{
		"access_token": token,
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
		},
	})
}

func VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	user, err := authService.VerifyEmail(req.Token)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Email verified successfully", gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"is_verified": user.IsVerified,
	})
}

func InviteUser(c *gin.Context) {
	var req dto.InviteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	user, err := authService.InviteUser(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "User invited successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

func CreatePassword(c *gin.Context) {
	var req dto.CreatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	user, err := authService.CreatePassword(req.Token, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Password created successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
