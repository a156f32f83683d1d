package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Channels a notification can be delivered over.
const (
	ChannelSms   = "sms"
	ChannelEmail = "email"
)

// Template codes resolved per event type.
const (
	TemplateUserWelcome   = "user_welcome"
	TemplatePasswordReset = "password_reset"
	TemplateJobPublished  = "job_published"
)

type Template struct {
	Code    string
	Channel string
	Subject string
	Body    string
}

// TemplateSource looks up an active message template by code.
type TemplateSource interface {
	FindByCode(ctx context.Context, code string) (*Template, error)
}

type Gateway struct {
	Name string
	Code string
	Mode string // live or test
}

// GatewaySource resolves the highest-priority active gateway for a channel.
type GatewaySource interface {
	ActiveGateway(ctx context.Context) (*Gateway, error)
}

// Dispatcher turns lifecycle events into rendered notifications. Actual
// provider delivery is out of scope; a dispatch is recorded as a
// structured audit log carrying the resolved gateway and rendered body.
type Dispatcher struct {
	smsTemplates   TemplateSource
	emailTemplates TemplateSource
	smsGateways    GatewaySource
	logger         *zap.Logger
}

func NewDispatcher(
	smsTemplates TemplateSource,
	emailTemplates TemplateSource,
	smsGateways GatewaySource,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		smsTemplates:   smsTemplates,
		emailTemplates: emailTemplates,
		smsGateways:    smsGateways,
		logger:         logger.Named("notification.dispatcher"),
	}
}

// Consume fetches lifecycle messages and dispatches them until ctx ends.
// Messages that cannot be decoded are committed and skipped; transient
// dispatch failures are left uncommitted for redelivery.
func (d *Dispatcher) Consume(ctx context.Context, reader *kafkago.Reader) {
	d.logger.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				d.logger.Info("notification consumer stopped")
				return
			}
			d.logger.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		eventType := headerValue(msg, "event_type")
		if err := d.Dispatch(ctx, eventType, msg.Value); err != nil {
			d.logger.Error("dispatch notification failed",
				zap.String("event_type", eventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			d.logger.Error("commit notification message failed", zap.Error(err))
		}
	}
}

// Dispatch renders and records a single notification for an event payload.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType string, payload []byte) error {
	var vars map[string]any
	if err := json.Unmarshal(payload, &vars); err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}

	templateCode, channel, ok := routeEvent(eventType)
	if !ok {
		d.logger.Warn("no notification mapped for event, skipping",
			zap.String("event_type", eventType),
		)
		return nil
	}

	source := d.emailTemplates
	if channel == ChannelSms {
		source = d.smsTemplates
	}

	tpl, err := source.FindByCode(ctx, templateCode)
	if err != nil {
		return fmt.Errorf("resolve template %s: %w", templateCode, err)
	}

	body := RenderTemplate(tpl.Body, vars)

	fields := []zap.Field{
		zap.String("event_type", eventType),
		zap.String("template_code", tpl.Code),
		zap.String("channel", channel),
		zap.String("body", body),
	}

	if channel == ChannelSms {
		gw, err := d.smsGateways.ActiveGateway(ctx)
		if err != nil {
			return fmt.Errorf("resolve sms gateway: %w", err)
		}
		fields = append(fields,
			zap.String("gateway_code", gw.Code),
			zap.String("gateway_mode", gw.Mode),
		)
	} else if tpl.Subject != "" {
		fields = append(fields, zap.String("subject", RenderTemplate(tpl.Subject, vars)))
	}

	d.logger.Info("notification dispatched", fields...)
	return nil
}

// routeEvent maps an event type to the template and channel used for it.
func routeEvent(eventType string) (templateCode, channel string, ok bool) {
	switch eventType {
	case "user_registered":
		return TemplateUserWelcome, ChannelEmail, true
	case "password_reset_requested":
		return TemplatePasswordReset, ChannelEmail, true
	case "job_published":
		return TemplateJobPublished, ChannelSms, true
	default:
		return "", "", false
	}
}

// RenderTemplate substitutes {{name}} placeholders with values from vars.
// Unknown placeholders are left in place.
func RenderTemplate(body string, vars map[string]any) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprintf("%v", v))
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
