package settings

type CreateSocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required,min=2,max=50"`
	URL       string `json:"url" binding:"required,url,max=255"`
	Icon      string `json:"icon" binding:"omitempty,max=100"`
	SortOrder int    `json:"sort_order"`
}

type UpdateSocialLinkRequest struct {
	Platform  string `json:"platform" binding:"omitempty,min=2,max=50"`
	URL       string `json:"url" binding:"omitempty,url,max=255"`
	Icon      string `json:"icon" binding:"omitempty,max=100"`
	SortOrder *int   `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateGeneralSettingRequest struct {
	CompanyName  string `json:"company_name" binding:"omitempty,max=150"`
	Tagline      string `json:"tagline" binding:"omitempty,max=255"`
	LogoURL      string `json:"logo_url" binding:"omitempty,max=255"`
	FaviconURL   string `json:"favicon_url" binding:"omitempty,max=255"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=20"`
	Address      string `json:"address"`
	Timezone     string `json:"timezone" binding:"omitempty,max=50"`
	DateFormat   string `json:"date_format" binding:"omitempty,max=20"`
	Currency     string `json:"currency" binding:"omitempty,max=10"`
	Language     string `json:"language" binding:"omitempty,max=10"`
}

type CreateEmailConfigRequest struct {
	ConfigName string `json:"config_name" binding:"required,min=2,max=100"`
	SmtpHost   string `json:"smtp_host" binding:"required,max=255"`
	SmtpPort   int    `json:"smtp_port" binding:"omitempty,min=1,max=65535"`
	SmtpUser   string `json:"smtp_user" binding:"omitempty,max=255"`
	SmtpPass   string `json:"smtp_pass" binding:"omitempty,max=255"`
	Encryption string `json:"encryption" binding:"omitempty,oneof=none ssl tls"`
	FromName   string `json:"from_name" binding:"omitempty,max=100"`
	FromEmail  string `json:"from_email" binding:"omitempty,email"`
}

type UpdateEmailConfigRequest struct {
	ConfigName string `json:"config_name" binding:"omitempty,min=2,max=100"`
	SmtpHost   string `json:"smtp_host" binding:"omitempty,max=255"`
	SmtpPort   *int   `json:"smtp_port" binding:"omitempty"`
	SmtpUser   string `json:"smtp_user" binding:"omitempty,max=255"`
	SmtpPass   string `json:"smtp_pass" binding:"omitempty,max=255"`
	Encryption string `json:"encryption" binding:"omitempty,oneof=none ssl tls"`
	FromName   string `json:"from_name" binding:"omitempty,max=100"`
	FromEmail  string `json:"from_email" binding:"omitempty,email"`
	IsActive   *bool  `json:"is_active"`
}

type CreateEmailTemplateRequest struct {
	TemplateCode string `json:"template_code" binding:"required,min=2,max=50"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Subject      string `json:"subject" binding:"omitempty,max=255"`
	Body         string `json:"body" binding:"required"`
}

type UpdateEmailTemplateRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Subject  string `json:"subject" binding:"omitempty,max=255"`
	Body     string `json:"body"`
	IsActive *bool  `json:"is_active"`
}
