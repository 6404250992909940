// file: dto/challenge.go
package dto

import (
	"time"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// ========== 请求 DTO ==========

type PrizeReq struct {
	Place    string `json:"place" binding:"required"`
	MinValue uint   `json:"min_value" binding:"required"`
	MaxValue uint   `json:"max_value" binding:"required"`
}

type CreateChallengeReq struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Tasks          string     `json:"tasks"`
	Prizes         []PrizeReq `json:"prizes"`
	SkillsNeeded   []string   `json:"skills_needed" binding:"required"`
	JuniorityLevel string     `json:"juniority_level" binding:"required,oneof=junior intermediate senior"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        time.Time  `json:"end_date" binding:"required"`
	Type           string     `json:"type" binding:"required,oneof=individual team"`
	TeamSize       *int       `json:"team_size"`
	CategoryID     uint32     `json:"category_id" binding:"required"`
}

type UpdateChallengeReq struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Tasks          *string    `json:"tasks"`
	Status         *string    `json:"status" binding:"omitempty,oneof=open ongoing completed archived"`
	SkillsNeeded   []string   `json:"skills_needed"`
	JuniorityLevel *string    `json:"juniority_level" binding:"omitempty,oneof=junior intermediate senior"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

type QueryChallengesReq struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=10" binding:"omitempty,min=1"`
	Status    string `form:"status" binding:"omitempty,oneof=open ongoing completed archived"`
	Search    string `form:"search"`
	SortField string `form:"sort_field" binding:"omitempty,oneof=created_at title start_date end_date"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ========== 响应 DTO ==========

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
}

type PaginatedChallenges struct {
	Challenges []models.Challenge `json:"challenges"`
	Pagination Pagination         `json:"pagination"`
}
