package domain

import (
	"strings"

	"officeweb/internal/icons"
	"officeweb/internal/locale"
)

// Service is one line of business the office offers.
// swagger:model Service
type Service struct {
	ID            int64      `json:"id"`
	TitleKo       string     `json:"title_ko"`
	TitleEn       *string    `json:"title_en"`
	TitleZh       *string    `json:"title_zh"`
	DescriptionKo string     `json:"description_ko"`
	DescriptionEn *string    `json:"description_en"`
	DescriptionZh *string    `json:"description_zh"`
	Icon          *string    `json:"icon"`
	IsPublished   bool       `json:"is_published"`
	IsFeatured    bool       `json:"is_featured"`
	Order         int        `json:"order"`
	CreatedAt     Timestamp  `json:"created_at"`
	UpdatedAt     *Timestamp `json:"updated_at"`
}

// Localized exposes the translatable fields for locale.Resolve.
func (s *Service) Localized() locale.Record {
	return serviceRecord(&s.TitleKo, s.TitleEn, s.TitleZh, &s.DescriptionKo, s.DescriptionEn, s.DescriptionZh)
}

// IconName returns the stored icon identifier or "".
func (s *Service) IconName() string { return deref(s.Icon) }

// ServiceListItem is the list-view projection of a Service.
type ServiceListItem struct {
	ID            int64   `json:"id"`
	TitleKo       string  `json:"title_ko"`
	TitleEn       *string `json:"title_en"`
	TitleZh       *string `json:"title_zh"`
	DescriptionKo string  `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	DescriptionZh *string `json:"description_zh"`
	Icon          *string `json:"icon"`
	IsPublished   bool    `json:"is_published"`
	IsFeatured    bool    `json:"is_featured"`
	Order         int     `json:"order"`
}

// Localized exposes the translatable fields for locale.Resolve.
func (s *ServiceListItem) Localized() locale.Record {
	return serviceRecord(&s.TitleKo, s.TitleEn, s.TitleZh, &s.DescriptionKo, s.DescriptionEn, s.DescriptionZh)
}

// IconName returns the stored icon identifier or "".
func (s *ServiceListItem) IconName() string { return deref(s.Icon) }

func serviceRecord(tKo, tEn, tZh, dKo, dEn, dZh *string) locale.Record {
	return locale.Record{
		"title_ko":       tKo,
		"title_en":       tEn,
		"title_zh":       tZh,
		"description_ko": dKo,
		"description_en": dEn,
		"description_zh": dZh,
	}
}

// ServiceInput is the create/update body for a service.
type ServiceInput struct {
	TitleKo       string  `json:"title_ko"`
	TitleEn       *string `json:"title_en,omitempty"`
	TitleZh       *string `json:"title_zh,omitempty"`
	DescriptionKo string  `json:"description_ko"`
	DescriptionEn *string `json:"description_en,omitempty"`
	DescriptionZh *string `json:"description_zh,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	IsPublished   bool    `json:"is_published"`
	IsFeatured    bool    `json:"is_featured"`
	Order         int     `json:"order"`
}

// Validate implements Validator.
func (in ServiceInput) Validate() []string {
	var errs []string
	if strings.TrimSpace(in.TitleKo) == "" {
		errs = append(errs, "title_ko is required")
	}
	if strings.TrimSpace(in.DescriptionKo) == "" {
		errs = append(errs, "description_ko is required")
	}
	if !icons.Valid(deref(in.Icon)) {
		errs = append(errs, "icon is not a known identifier")
	}
	if in.Order < 0 {
		errs = append(errs, "order must not be negative")
	}
	return errs
}

// ServiceFromInput returns the service an edit form shows after a failed save.
func ServiceFromInput(id int64, in ServiceInput) *Service {
	return &Service{
		ID:            id,
		TitleKo:       in.TitleKo,
		TitleEn:       in.TitleEn,
		TitleZh:       in.TitleZh,
		DescriptionKo: in.DescriptionKo,
		DescriptionEn: in.DescriptionEn,
		DescriptionZh: in.DescriptionZh,
		Icon:          in.Icon,
		IsPublished:   in.IsPublished,
		IsFeatured:    in.IsFeatured,
		Order:         in.Order,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
