// file: controllers/form_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func CreateForm(c *gin.Context) {
	var req dto.CreateFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	form, err := formService.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Form created successfully", form)
}

func GetFormList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	forms, total, err := formService.FindAll(page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"forms": forms,
	})
}

func GetFormDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid form ID")
		return
	}

	form, err := formService.FindOne(uint32(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", form)
}

func UpdateForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid form ID")
		return
	}

	var req dto.UpdateFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	form, err := formService.Update(uint32(id), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Form updated successfully", form)
}

func DeleteForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid form ID")
		return
	}

	if err := formService.Delete(uint32(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Form deleted successfully", nil)
}
