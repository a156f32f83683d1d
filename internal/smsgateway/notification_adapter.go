package smsgateway

import (
	"context"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
)

// NotificationAdapter exposes SMS templates and gateway resolution to
// the notification dispatcher without the dispatcher importing this
// package's entities.
type NotificationAdapter struct {
	repo Repository
}

func NewNotificationAdapter(repo Repository) *NotificationAdapter {
	return &NotificationAdapter{repo: repo}
}

func (a *NotificationAdapter) FindByCode(ctx context.Context, code string) (*notification.Template, error) {
	t, err := a.repo.FindTemplateByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &notification.Template{
		Code:    t.TemplateCode,
		Channel: "sms",
		Body:    t.Body,
	}, nil
}

func (a *NotificationAdapter) ActiveGateway(ctx context.Context) (*notification.Gateway, error) {
	cfg, err := a.repo.FindActiveConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	return &notification.Gateway{
		Name: cfg.GatewayName,
		Code: cfg.GatewayCode,
		Mode: cfg.Mode,
	}, nil
}
