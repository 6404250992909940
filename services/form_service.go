// file: services/form_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
)

type FormService struct {
	DB *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{DB: db}
}

func (s *FormService) Create(req dto.CreateFormReq) (*models.Form, error) {
	form := models.Form{
		Title:       req.Title,
		Description: req.Description,
		Fields:      req.Fields,
	}
	if err := s.DB.Create(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormService) FindAll(page, limit int) ([]models.Form, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.DB.Model(&models.Form{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []models.Form
	err := s.DB.Offset((page - 1) * limit).Limit(limit).
		Order("created_at desc").
		Find(&forms).Error
	return forms, total, err
}

func (s *FormService) FindOne(id uint32) (*models.Form, error) {
	var form models.Form
	if err := s.DB.First(&form, id).Error; err != nil {
		return nil, NotFound("Form not found")
	}
	return &form, nil
}

func (s *FormService) Update(id uint32, req dto.UpdateFormReq) (*models.Form, error) {
	form, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.Fields != nil {
		form.Fields = req.Fields
	}

	if err := s.DB.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) Delete(id uint32) error {
	res := s.DB.Delete(&models.Form{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("Form not found")
	}
	return nil
}
