// file: dto/form.go
package dto

import "github.com/derrick-nuby/talent-vortex-be/models"

type CreateFormReq struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Fields      []models.Field `json:"fields" binding:"required,min=1"`
}

type UpdateFormReq struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Fields      []models.Field `json:"fields"`
}
