package settings

import "time"

// SocialMediaLink is a flat branding record. Deletes are hard deletes,
// the row carries no retention value once removed.
type SocialMediaLink struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	Platform  string    `gorm:"type:varchar(50);not null" bson:"platform" json:"platform"`
	URL       string    `gorm:"type:varchar(255);not null" bson:"url" json:"url"`
	Icon      string    `gorm:"type:varchar(100)" bson:"icon,omitempty" json:"icon,omitempty"`
	SortOrder int       `gorm:"default:0" bson:"sort_order" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedBy *string   `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy *string   `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (SocialMediaLink) TableName() string { return "social_media_links" }

// GeneralSetting holds branding, contact, and locale defaults. A single
// row is expected; Get returns the newest one and Update upserts it.
type GeneralSetting struct {
	ID           string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	CompanyName  string    `gorm:"type:varchar(150)" bson:"company_name" json:"company_name"`
	Tagline      string    `gorm:"type:varchar(255)" bson:"tagline,omitempty" json:"tagline,omitempty"`
	LogoURL      string    `gorm:"type:varchar(255)" bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	FaviconURL   string    `gorm:"type:varchar(255)" bson:"favicon_url,omitempty" json:"favicon_url,omitempty"`
	ContactEmail string    `gorm:"type:varchar(100)" bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string    `gorm:"type:varchar(20)" bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Address      string    `gorm:"type:text" bson:"address,omitempty" json:"address,omitempty"`
	Timezone     string    `gorm:"type:varchar(50);default:UTC" bson:"timezone" json:"timezone"`
	DateFormat   string    `gorm:"type:varchar(20);default:YYYY-MM-DD" bson:"date_format" json:"date_format"`
	Currency     string    `gorm:"type:varchar(10);default:USD" bson:"currency" json:"currency"`
	Language     string    `gorm:"type:varchar(10);default:en" bson:"language" json:"language"`
	UpdatedBy    *string   `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (GeneralSetting) TableName() string { return "general_settings" }

// EmailConfig is an SMTP-style outbound mail account. Soft deleted so a
// decommissioned account stays auditable.
type EmailConfig struct {
	ID         string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	ConfigName string     `gorm:"type:varchar(100);not null" bson:"config_name" json:"config_name"`
	SmtpHost   string     `gorm:"type:varchar(255);not null" bson:"smtp_host" json:"smtp_host"`
	SmtpPort   int        `gorm:"default:587" bson:"smtp_port" json:"smtp_port"`
	SmtpUser   string     `gorm:"type:varchar(255)" bson:"smtp_user,omitempty" json:"smtp_user,omitempty"`
	SmtpPass   string     `gorm:"type:varchar(255)" bson:"smtp_pass,omitempty" json:"-"`
	Encryption string     `gorm:"type:varchar(10);default:tls" bson:"encryption" json:"encryption"`
	FromName   string     `gorm:"type:varchar(100)" bson:"from_name,omitempty" json:"from_name,omitempty"`
	FromEmail  string     `gorm:"type:varchar(100)" bson:"from_email,omitempty" json:"from_email,omitempty"`
	IsActive   bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedBy  *string    `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy  *string    `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (EmailConfig) TableName() string { return "email_configs" }

type EmailTemplate struct {
	ID           string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	TemplateCode string     `gorm:"type:varchar(50);uniqueIndex;not null" bson:"template_code" json:"template_code"`
	Name         string     `gorm:"type:varchar(100);not null" bson:"name" json:"name"`
	Subject      string     `gorm:"type:varchar(255)" bson:"subject,omitempty" json:"subject,omitempty"`
	Body         string     `gorm:"type:text;not null" bson:"body" json:"body"`
	IsActive     bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedBy    *string    `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy    *string    `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (EmailTemplate) TableName() string { return "email_templates" }
