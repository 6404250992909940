// file: models/form.go
package models

import "time"

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldNumber      FieldType = "number"
	FieldEmail       FieldType = "email"
	FieldPassword    FieldType = "password"
	FieldTextarea    FieldType = "textarea"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldRadio       FieldType = "radio"
	FieldDate        FieldType = "date"
	FieldTime        FieldType = "time"
	FieldFile        FieldType = "file"
	FieldPhone       FieldType = "phone"
)

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FieldValidation struct {
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Message string `json:"message,omitempty"`
}

// Field is one element of a built form. Forms are documents, not
// relations, so the whole field list is stored as a JSON column.
type Field struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Type         FieldType         `json:"type"`
	Options      []FieldOption     `json:"options,omitempty"`
	Validations  []FieldValidation `json:"validations,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty"`
	DefaultValue any               `json:"default_value,omitempty"`
	Description  string            `json:"description,omitempty"`
	Attributes   map[string]any    `json:"attributes,omitempty"`
}

type Form struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Fields      []Field   `gorm:"serializer:json" json:"fields"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Form) TableName() string {
	return "tv_form"
}
