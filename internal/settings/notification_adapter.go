package settings

import (
	"context"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
)

// NotificationAdapter resolves email templates for the notification
// dispatcher.
type NotificationAdapter struct {
	repo Repository
}

func NewNotificationAdapter(repo Repository) *NotificationAdapter {
	return &NotificationAdapter{repo: repo}
}

func (a *NotificationAdapter) FindByCode(ctx context.Context, code string) (*notification.Template, error) {
	t, err := a.repo.FindEmailTemplateByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &notification.Template{
		Code:    t.TemplateCode,
		Channel: "email",
		Subject: t.Subject,
		Body:    t.Body,
	}, nil
}
