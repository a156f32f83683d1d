package paymentgateway

import (
	"encoding/json"
	"time"
)

const (
	ModeLive = "live"
	ModeTest = "test"
)

// PaymentConfiguration mirrors the SMS gateway shape for payment
// providers: opaque credential blobs per mode, priority ordering,
// soft delete.
type PaymentConfiguration struct {
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

func (PaymentConfiguration) TableName() string { return "payment_configurations" }

type CreateConfigurationRequest struct {
	GatewayName string          `json:"gateway_name" binding:"required,min=2,max=100"`
	GatewayCode string          `json:"gateway_code" binding:"required,min=2,max=50"`
	LiveValues  json.RawMessage `json:"live_values"`
	TestValues  json.RawMessage `json:"test_values"`
	Mode        string          `json:"mode" binding:"omitempty,oneof=live test"`
	Priority    int             `json:"priority"`
}

type UpdateConfigurationRequest struct {
	GatewayName string          `json:"gateway_name" binding:"omitempty,min=2,max=100"`
	LiveValues  json.RawMessage `json:"live_values"`
	TestValues  json.RawMessage `json:"test_values"`
	Mode        string          `json:"mode" binding:"omitempty,oneof=live test"`
	Priority    *int            `json:"priority"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
