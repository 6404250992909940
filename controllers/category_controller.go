// file: controllers/category_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	category, err := categoryService.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Category created successfully", category)
}

func GetCategoryList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	categories, total, err := categoryService.FindAll(page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", gin.H{
		"total":      total,
		"categories": categories,
	})
}

func GetCategoryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid category ID")
		return
	}

	category, err := categoryService.FindOne(uint32(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", category)
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid category ID")
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	category, err := categoryService.Update(uint32(id), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Category updated successfully", category)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid category ID")
		return
	}

	if err := categoryService.Delete(uint32(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Category deleted successfully", nil)
}
