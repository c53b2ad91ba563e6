package entity

import "time"

// ReportTemplate is a saved report definition.
type ReportTemplate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Definition string    `gorm:"type:text" json:"definition"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReportTemplate) TableName() string {
	return "report_templates"
}

// ReportExecution is one run of a report template.
type ReportExecution struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TemplateID uint       `gorm:"not null;index" json:"template_id"`
	ExecutedBy *uint      `gorm:"index" json:"executed_by"`
	Parameters string     `gorm:"type:text" json:"parameters"`
	ResultData string     `gorm:"type:text" json:"result_data"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExecutedAt *time.Time `json:"executed_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReportExecution) TableName() string {
	return "report_executions"
}
