package smsgateway

import "encoding/json"

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

type CreateTemplateRequest struct {
	TemplateCode string  `json:"template_code" binding:"required,min=2,max=50"`
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Body         string  `json:"body" binding:"required"`
	GatewayID    *string `json:"gateway_id" binding:"omitempty,uuid"`
}

type UpdateTemplateRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Body     string `json:"body"`
	IsActive *bool  `json:"is_active"`
}
