// file: models/submission.go
package models

import "time"

type SubmissionStatus string

const (
	SubmissionPendingReview SubmissionStatus = "pending_review"
	SubmissionInReview      SubmissionStatus = "in_review"
	SubmissionReviewed      SubmissionStatus = "reviewed"
	SubmissionRejected      SubmissionStatus = "rejected"
	SubmissionWinner        SubmissionStatus = "winner"
)

// Link is one external resource attached to a submission.
type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Feedback is one reviewer comment on a submission. Private feedback is
// visible to reviewers only, never to the submitter.
type Feedback struct {
	ID           uint32    `gorm:"primarykey" json:"id"`
	SubmissionID uint32    `gorm:"not null;index" json:"-"`
	ReviewerID   uint32    `gorm:"not null" json:"reviewer_id"`
	Reviewer     User      `gorm:"foreignKey:ReviewerID" json:"-"`
	Comment      string    `gorm:"type:text;not null" json:"comment"`
	IsPrivate    bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "tv_submission_feedback"
}

// Submission is the single solution for an application.
type Submission struct {
	ID                uint32           `gorm:"primarykey" json:"id"`
	ApplicationID     uint32           `gorm:"unique;not null" json:"application_id"`
	Application       Application      `gorm:"foreignKey:ApplicationID" json:"-"`
	SubmitterID       uint32           `gorm:"not null;index" json:"submitter_id"`
	Submitter         User             `gorm:"foreignKey:SubmitterID" json:"-"`
	DeployedLinks     []Link           `gorm:"serializer:json" json:"deployed_links"`
	GithubLinks       []Link           `gorm:"serializer:json" json:"github_links"`
	FigmaLinks        []Link           `gorm:"serializer:json" json:"figma_links"`
	OtherLinks        []Link           `gorm:"serializer:json" json:"other_links"`
	SubmitterComments string           `gorm:"type:text" json:"submitter_comments"`
	Status            SubmissionStatus `gorm:"type:enum('pending_review','in_review','reviewed','rejected','winner');not null;default:'pending_review';index" json:"status"`
	Feedback          []Feedback       `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"feedback"`
	LastUpdated       time.Time        `json:"last_updated"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (Submission) TableName() string {
	return "tv_submission"
}
