package smsgateway

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type fakeGatewayRepo struct {
	configs   map[string]*SmsConfiguration
	templates map[string]*SmsTemplate
}

func newFakeGatewayRepo() *fakeGatewayRepo {
	return &fakeGatewayRepo{
		configs:   map[string]*SmsConfiguration{},
		templates: map[string]*SmsTemplate{},
	}
}

func (r *fakeGatewayRepo) CreateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	r.configs[cfg.ID] = cfg
	return nil
}

func (r *fakeGatewayRepo) FindConfigurationByID(ctx context.Context, id string) (*SmsConfiguration, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

func (r *fakeGatewayRepo) ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error) {
	var out []SmsConfiguration
	for _, cfg := range r.configs {
		out = append(out, *cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out, int64(len(out)), nil
}

func (r *fakeGatewayRepo) FindActiveConfiguration(ctx context.Context) (*SmsConfiguration, error) {
	var best *SmsConfiguration
	for _, cfg := range r.configs {
		if !cfg.IsActive {
			continue
		}
		if best == nil || cfg.Priority > best.Priority {
			best = cfg
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (r *fakeGatewayRepo) UpdateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	r.configs[cfg.ID] = cfg
	return nil
}

func (r *fakeGatewayRepo) SoftDeleteConfiguration(ctx context.Context, id string) error {
	delete(r.configs, id)
	return nil
}

func (r *fakeGatewayRepo) CreateTemplate(ctx context.Context, t *SmsTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeGatewayRepo) FindTemplateByID(ctx context.Context, id string) (*SmsTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeGatewayRepo) FindTemplateByCode(ctx context.Context, code string) (*SmsTemplate, error) {
	for _, t := range r.templates {
		if t.TemplateCode == code && t.IsActive {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGatewayRepo) ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error) {
	var out []SmsTemplate
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGatewayRepo) UpdateTemplate(ctx context.Context, t *SmsTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeGatewayRepo) SoftDeleteTemplate(ctx context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

func TestCreateConfigurationDefaultsToTestMode(t *testing.T) {
	svc := NewService(newFakeGatewayRepo())

	cfg, err := svc.CreateConfiguration(context.Background(), "emp-1", CreateConfigurationRequest{
		GatewayName: "Twilio",
		GatewayCode: "twilio",
		LiveValues:  json.RawMessage(`{"account_sid":"AC1","auth_token":"tok"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, ModeTest, cfg.Mode)
	assert.True(t, cfg.IsActive)
	assert.Equal(t, 1, cfg.SchemaVersion)
}

func TestCreateConfigurationRejectsMalformedValues(t *testing.T) {
	svc := NewService(newFakeGatewayRepo())

	_, err := svc.CreateConfiguration(context.Background(), "emp-1", CreateConfigurationRequest{
		GatewayName: "Twilio",
		GatewayCode: "twilio",
		LiveValues:  json.RawMessage(`{"broken":`),
	})
	assert.ErrorIs(t, err, ErrInvalidValues)
}

func TestActiveGatewayPicksHighestPriority(t *testing.T) {
	repo := newFakeGatewayRepo()
	svc := NewService(repo)

	low, err := svc.CreateConfiguration(context.Background(), "emp-1", CreateConfigurationRequest{
		GatewayName: "Backup", GatewayCode: "backup", Priority: 1,
	})
	require.NoError(t, err)
	high, err := svc.CreateConfiguration(context.Background(), "emp-1", CreateConfigurationRequest{
		GatewayName: "Primary", GatewayCode: "primary", Priority: 10,
	})
	require.NoError(t, err)

	adapter := NewNotificationAdapter(repo)
	gw, err := adapter.ActiveGateway(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "primary", gw.Code)

	// Deactivating the primary falls back to the next in priority.
	inactive := false
	_, err = svc.UpdateConfigurationStatus(context.Background(), "emp-1", high.ID, UpdateStatusRequest{IsActive: &inactive})
	require.NoError(t, err)

	gw, err = adapter.ActiveGateway(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backup", gw.Code)
	assert.Equal(t, low.GatewayCode, gw.Code)
}

func TestTemplateAdapterResolvesByCode(t *testing.T) {
	repo := newFakeGatewayRepo()
	svc := NewService(repo)

	_, err := svc.CreateTemplate(context.Background(), CreateTemplateRequest{
		TemplateCode: "job_published",
		Name:         "Job published",
		Body:         "New opening: {{title}}",
	})
	require.NoError(t, err)

	adapter := NewNotificationAdapter(repo)
	tpl, err := adapter.FindByCode(context.Background(), "job_published")
	require.NoError(t, err)
	assert.Equal(t, "sms", tpl.Channel)
	assert.Equal(t, "New opening: {{title}}", tpl.Body)
}
