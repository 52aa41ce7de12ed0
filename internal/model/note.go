package model

import (
	"github.com/haierkeys/light-notes-service/pkg/timex"
)

// Note notes table model
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"column:title;type:text;not null" json:"title"`
	Content   string     `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName returns the table name
func (*Note) TableName() string {
	return "note"
}
