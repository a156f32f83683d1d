// Package userskill stores free-form skill records attached to users.
// skill_data is an opaque, version-tagged JSON document; the service
// validates syntax only, never shape.
package userskill

import (
	"encoding/json"
	"time"
)

type UserSkill struct {
	ID            string          `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	UserID        string          `gorm:"type:uuid;index;not null" bson:"user_id" json:"user_id"`
	SkillData     json.RawMessage `gorm:"type:jsonb" bson:"skill_data" json:"skill_data"`
	SchemaVersion int             `gorm:"default:1" bson:"schema_version" json:"schema_version"`
	CreatedBy     *string         `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy     *string         `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time      `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (UserSkill) TableName() string { return "user_skills" }

type CreateUserSkillRequest struct {
	UserID    string          `json:"user_id" binding:"required,uuid"`
	SkillData json.RawMessage `json:"skill_data" binding:"required"`
}

type UpdateUserSkillRequest struct {
	SkillData json.RawMessage `json:"skill_data" binding:"required"`
}
