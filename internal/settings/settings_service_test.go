package settings

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type fakeSettingsRepo struct {
	links     map[string]*SocialMediaLink
	general   *GeneralSetting
	configs   map[string]*EmailConfig
	templates map[string]*EmailTemplate
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		links:     map[string]*SocialMediaLink{},
		configs:   map[string]*EmailConfig{},
		templates: map[string]*EmailTemplate{},
	}
}

func (r *fakeSettingsRepo) CreateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	r.links[link.ID] = link
	return nil
}

func (r *fakeSettingsRepo) FindSocialLinkByID(ctx context.Context, id string) (*SocialMediaLink, error) {
	link, ok := r.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return link, nil
}

func (r *fakeSettingsRepo) ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error) {
	var out []SocialMediaLink
	for _, link := range r.links {
		out = append(out, *link)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeSettingsRepo) UpdateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	r.links[link.ID] = link
	return nil
}

func (r *fakeSettingsRepo) HardDeleteSocialLink(ctx context.Context, id string) error {
	delete(r.links, id)
	return nil
}

func (r *fakeSettingsRepo) FindGeneralSetting(ctx context.Context) (*GeneralSetting, error) {
	if r.general == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.general, nil
}

func (r *fakeSettingsRepo) SaveGeneralSetting(ctx context.Context, setting *GeneralSetting) error {
	r.general = setting
	return nil
}

func (r *fakeSettingsRepo) CreateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	r.configs[cfg.ID] = cfg
	return nil
}

func (r *fakeSettingsRepo) FindEmailConfigByID(ctx context.Context, id string) (*EmailConfig, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

func (r *fakeSettingsRepo) ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error) {
	var out []EmailConfig
	for _, cfg := range r.configs {
		out = append(out, *cfg)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSettingsRepo) UpdateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	r.configs[cfg.ID] = cfg
	return nil
}

func (r *fakeSettingsRepo) SoftDeleteEmailConfig(ctx context.Context, id string) error {
	delete(r.configs, id)
	return nil
}

func (r *fakeSettingsRepo) CreateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeSettingsRepo) FindEmailTemplateByID(ctx context.Context, id string) (*EmailTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeSettingsRepo) FindEmailTemplateByCode(ctx context.Context, code string) (*EmailTemplate, error) {
	for _, t := range r.templates {
		if t.TemplateCode == code && t.IsActive {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSettingsRepo) ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error) {
	var out []EmailTemplate
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSettingsRepo) UpdateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeSettingsRepo) SoftDeleteEmailTemplate(ctx context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

func TestGeneralSettingDefaultsWhenUnset(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	setting, err := svc.GetGeneralSetting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UTC", setting.Timezone)
	assert.Equal(t, "USD", setting.Currency)
	assert.Equal(t, "en", setting.Language)
}

func TestGeneralSettingUpsertKeepsSingleRecord(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo)

	first, err := svc.UpdateGeneralSetting(context.Background(), "emp-1", UpdateGeneralSettingRequest{
		CompanyName: "Talent Spark",
	})
	require.NoError(t, err)

	second, err := svc.UpdateGeneralSetting(context.Background(), "emp-1", UpdateGeneralSettingRequest{
		ContactEmail: "hello@talentspark.example",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Talent Spark", second.CompanyName)
	assert.Equal(t, "hello@talentspark.example", second.ContactEmail)
}

func TestSocialLinkHardDelete(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo)

	link, err := svc.CreateSocialLink(context.Background(), "emp-1", CreateSocialLinkRequest{
		Platform: "linkedin",
		URL:      "https://linkedin.com/company/talent-spark",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSocialLink(context.Background(), link.ID))

	_, err = svc.GetSocialLink(context.Background(), link.ID)
	assert.ErrorIs(t, err, ErrSocialLinkNotFound)
	assert.Empty(t, repo.links)
}

func TestEmailConfigDefaults(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	cfg, err := svc.CreateEmailConfig(context.Background(), "emp-1", CreateEmailConfigRequest{
		ConfigName: "Primary SMTP",
		SmtpHost:   "smtp.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 587, cfg.SmtpPort)
	assert.Equal(t, "tls", cfg.Encryption)
	assert.True(t, cfg.IsActive)
}

func TestEmailTemplateAdapterResolvesActiveOnly(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo)

	created, err := svc.CreateEmailTemplate(context.Background(), "emp-1", CreateEmailTemplateRequest{
		TemplateCode: "user_welcome",
		Name:         "Welcome mail",
		Subject:      "Welcome, {{username}}",
		Body:         "Hi {{username}}, your account is ready.",
	})
	require.NoError(t, err)

	adapter := NewNotificationAdapter(repo)
	tpl, err := adapter.FindByCode(context.Background(), "user_welcome")
	require.NoError(t, err)
	assert.Equal(t, "email", tpl.Channel)
	assert.Equal(t, "Welcome, {{username}}", tpl.Subject)

	inactive := false
	_, err = svc.UpdateEmailTemplate(context.Background(), "emp-1", created.ID, UpdateEmailTemplateRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = adapter.FindByCode(context.Background(), "user_welcome")
	assert.Error(t, err)
}
