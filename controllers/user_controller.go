// file: controllers/user_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/database"
	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func GetUserList(c *gin.Context) {
	var req dto.QueryUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, 1001, "Invalid query: "+err.Error())
		return
	}

	var users []models.User
	var total int64
	db := database.DB.Model(&models.User{})
	if req.Query != "" {
		like := "%" + req.Query + "%"
		db = db.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}
	db.Count(&total)
	db.Offset((req.Page - 1) * req.Limit).Limit(req.Limit).Order("id desc").Find(&users)

	utils.Success(c, "success", gin.H{
		"total": total,
		"users": users,
	})
}

func GetUserDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid user ID")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}

	utils.Success(c, "success", user)
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid user ID")
		return
	}

	// Users may only edit themselves; admins may edit anyone.
	roleAny, _ := c.Get("user_role")
	if uint32(id) != currentUserID(c) && roleAny != models.RoleAdmin && roleAny != models.RoleSuperAdmin {
		utils.Error(c, 4003, "Permission denied")
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := database.DB.Save(&user).Error; err != nil {
		utils.Error(c, 5000, "Failed to update user")
		return
	}

	utils.Success(c, "User updated successfully", user)
}

func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid user ID")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	if user.Role == models.RoleSuperAdmin {
		utils.Error(c, 2011, "Super admin cannot be deleted")
		return
	}

	database.DB.Delete(&user)
	utils.Success(c, "User deleted successfully", nil)
}
