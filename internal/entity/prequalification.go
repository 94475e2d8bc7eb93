package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Prequalification struct {
	Id                     int64         `db:"id"`
	VendorId               int64         `db:"vendor_id"`
	ClientId               int64         `db:"client_id"`
	StatusId               int64         `db:"status_id"`
	ClientTemplateId       uuid.NullUUID `db:"client_template_id"`
	PrequalificationStart  time.Time     `db:"prequalification_start"`
	PrequalificationFinish *time.Time    `db:"prequalification_finish"`
	PrequalificationCreate time.Time     `db:"prequalification_create"`
}

// Answer is a prequalification_user_input row already resolved to the
// question it answers through the question_column mapping.
type Answer struct {
	Id                 int64   `db:"id"`
	PrequalificationId int64   `db:"prequalification_id"`
	QuestionColumnId   int64   `db:"question_column_id"`
	QuestionId         int64   `db:"question_id"`
	Value              *string `db:"user_input"`
}
