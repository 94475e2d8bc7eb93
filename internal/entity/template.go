package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type ClientTemplateAssignment struct {
	Id              uuid.UUID  `db:"id"`
	ClientId        int64      `db:"client_id"`
	TemplateId      uuid.UUID  `db:"template_id"`
	DisplayOrder    int        `db:"display_order"`
	Visible         bool       `db:"visible"`
	Active          bool       `db:"active"`
	DefaultTemplate bool       `db:"default_template"`
	DeletedOn       *time.Time `db:"deleted_on"`
}
