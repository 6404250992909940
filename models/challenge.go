// file: models/challenge.go
package models

import (
	"time"
)

type ChallengeStatus string
type ChallengeType string
type JuniorityLevel string

const (
	ChallengeStatusOpen      ChallengeStatus = "open"
	ChallengeStatusOngoing   ChallengeStatus = "ongoing"
	ChallengeStatusCompleted ChallengeStatus = "completed"
	ChallengeStatusArchived  ChallengeStatus = "archived"

	ChallengeTypeIndividual ChallengeType = "individual"
	ChallengeTypeTeam       ChallengeType = "team"

	JuniorityJunior       JuniorityLevel = "junior"
	JuniorityIntermediate JuniorityLevel = "intermediate"
	JunioritySenior       JuniorityLevel = "senior"
)

// Prize is one reward tier of a challenge, owned by it.
type Prize struct {
	ID          uint32 `gorm:"primarykey" json:"-"`
	ChallengeID uint32 `gorm:"not null;index" json:"-"`
	Place       string `gorm:"size:50;not null" json:"place"`
	MinValue    uint   `gorm:"not null" json:"min_value"`
	MaxValue    uint   `gorm:"not null" json:"max_value"`
}

func (Prize) TableName() string {
	return "tv_challenge_prize"
}

type Challenge struct {
	ID           uint32          `gorm:"primarykey" json:"id"`
	Slug         string          `gorm:"size:160;unique;not null" json:"slug"`
	Title        string          `gorm:"size:150;not null" json:"title"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Email        string          `gorm:"size:100;not null" json:"email"`
	Tasks        string          `gorm:"type:text" json:"tasks"`
	Prizes       []Prize         `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"prizes"`
	SkillsNeeded []string        `gorm:"serializer:json" json:"skills_needed"`
	Juniority    JuniorityLevel  `gorm:"type:enum('junior','intermediate','senior');not null" json:"juniority_level"`
	StartDate    time.Time       `gorm:"not null" json:"start_date"`
	EndDate      time.Time       `gorm:"not null" json:"end_date"`
	Status       ChallengeStatus `gorm:"type:enum('open','ongoing','completed','archived');default:'open';index" json:"status"`
	Type         ChallengeType   `gorm:"type:enum('individual','team');not null;default:'individual'" json:"type"`
	TeamSize     *int            `json:"team_size,omitempty"`
	CategoryID   uint32          `gorm:"not null;index" json:"category_id"`
	Category     Category        `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "tv_challenge"
}
