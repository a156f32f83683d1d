package smsgateway

import (
	"encoding/json"
	"time"
)

const (
	ModeLive = "live"
	ModeTest = "test"
)

// SmsConfiguration describes one provider integration. LiveValues and
// TestValues are opaque, version-tagged credential blobs; Mode selects
// which set is in force.
type SmsConfiguration struct {
	ID            string          `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	GatewayName   string          `gorm:"type:varchar(100);not null" bson:"gateway_name" json:"gateway_name"`
	GatewayCode   string          `gorm:"type:varchar(50);uniqueIndex;not null" bson:"gateway_code" json:"gateway_code"`
	LiveValues    json.RawMessage `gorm:"type:jsonb" bson:"live_values,omitempty" json:"live_values,omitempty"`
	TestValues    json.RawMessage `gorm:"type:jsonb" bson:"test_values,omitempty" json:"test_values,omitempty"`
	SchemaVersion int             `gorm:"default:1" bson:"schema_version" json:"schema_version"`
	Mode          string          `gorm:"type:varchar(10);default:test" bson:"mode" json:"mode"`
	Priority      int             `gorm:"default:0;index" bson:"priority" json:"priority"`
	IsActive      bool            `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedBy     *string         `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy     *string         `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time      `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (SmsConfiguration) TableName() string { return "sms_configurations" }

// SmsTemplate is a coded message body with {{variable}} placeholders,
// optionally pinned to one gateway.
type SmsTemplate struct {
	ID           string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	TemplateCode string     `gorm:"type:varchar(50);uniqueIndex;not null" bson:"template_code" json:"template_code"`
	Name         string     `gorm:"type:varchar(100);not null" bson:"name" json:"name"`
	Body         string     `gorm:"type:text;not null" bson:"body" json:"body"`
	GatewayID    *string    `gorm:"type:uuid;index" bson:"gateway_id,omitempty" json:"gateway_id,omitempty"`
	IsActive     bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (SmsTemplate) TableName() string { return "sms_templates" }
