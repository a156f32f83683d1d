package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTemplateSource struct {
	templates map[string]*Template
}

func (s *fakeTemplateSource) FindByCode(ctx context.Context, code string) (*Template, error) {
	tpl, ok := s.templates[code]
	if !ok {
		return nil, errors.New("template not found")
	}
	return tpl, nil
}

type fakeGatewaySource struct {
	gateway *Gateway
	err     error
}

func (s *fakeGatewaySource) ActiveGateway(ctx context.Context) (*Gateway, error) {
	return s.gateway, s.err
}

func newTestDispatcher(sms, email *fakeTemplateSource, gw *fakeGatewaySource) *Dispatcher {
	return NewDispatcher(sms, email, gw, zap.NewNop())
}

func TestRenderTemplateSubstitutesVars(t *testing.T) {
	body := RenderTemplate("Hi {{username}}, job {{title}} is live", map[string]any{
		"username": "amara",
		"title":    "Backend Engineer",
	})
	assert.Equal(t, "Hi amara, job Backend Engineer is live", body)
}

func TestRenderTemplateLeavesUnknownPlaceholders(t *testing.T) {
	body := RenderTemplate("Hi {{username}}, code {{otp}}", map[string]any{
		"username": "amara",
	})
	assert.Equal(t, "Hi amara, code {{otp}}", body)
}

func TestRouteEventMapping(t *testing.T) {
	cases := []struct {
		eventType string
		template  string
		channel   string
	}{
		{"user_registered", TemplateUserWelcome, ChannelEmail},
		{"password_reset_requested", TemplatePasswordReset, ChannelEmail},
		{"job_published", TemplateJobPublished, ChannelSms},
	}

	for _, tc := range cases {
		tpl, ch, ok := routeEvent(tc.eventType)
		require.True(t, ok, tc.eventType)
		assert.Equal(t, tc.template, tpl)
		assert.Equal(t, tc.channel, ch)
	}

	_, _, ok := routeEvent("employee_terminated")
	assert.False(t, ok)
}

func TestDispatchEmailEvent(t *testing.T) {
	email := &fakeTemplateSource{templates: map[string]*Template{
		TemplateUserWelcome: {
			Code:    TemplateUserWelcome,
			Channel: ChannelEmail,
			Subject: "Welcome, {{username}}",
			Body:    "Hi {{username}}",
		},
	}}
	d := newTestDispatcher(&fakeTemplateSource{}, email, &fakeGatewaySource{})

	err := d.Dispatch(context.Background(), "user_registered", []byte(`{"username":"amara"}`))
	assert.NoError(t, err)
}

func TestDispatchSmsRequiresActiveGateway(t *testing.T) {
	sms := &fakeTemplateSource{templates: map[string]*Template{
		TemplateJobPublished: {
			Code:    TemplateJobPublished,
			Channel: ChannelSms,
			Body:    "New opening: {{title}}",
		},
	}}

	d := newTestDispatcher(sms, &fakeTemplateSource{}, &fakeGatewaySource{err: errors.New("no active gateway")})
	err := d.Dispatch(context.Background(), "job_published", []byte(`{"title":"QA Lead"}`))
	assert.Error(t, err)

	d = newTestDispatcher(sms, &fakeTemplateSource{}, &fakeGatewaySource{
		gateway: &Gateway{Name: "Twilio", Code: "twilio", Mode: "test"},
	})
	err = d.Dispatch(context.Background(), "job_published", []byte(`{"title":"QA Lead"}`))
	assert.NoError(t, err)
}

func TestDispatchSkipsUnmappedEvent(t *testing.T) {
	d := newTestDispatcher(&fakeTemplateSource{}, &fakeTemplateSource{}, &fakeGatewaySource{})
	err := d.Dispatch(context.Background(), "employee_terminated", []byte(`{}`))
	assert.NoError(t, err)
}

func TestDispatchRejectsMalformedPayload(t *testing.T) {
	d := newTestDispatcher(&fakeTemplateSource{}, &fakeTemplateSource{}, &fakeGatewaySource{})
	err := d.Dispatch(context.Background(), "user_registered", []byte(`{broken`))
	assert.Error(t, err)
}
