package models

import "github.com/dmitrijs2005/bankportal/internal/common"

// Setting is a key/value record grouped by category, used for dashboard
// statistics and branding text. Key is unique across all settings.
type Setting struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Category    string `json:"category"`
	DisplayName string `json:"displayName"`
}

type SettingInput struct {
	Key         string
	Value       string
	Category    string
	DisplayName string
}

// NewSetting defaults category to "general" and displayName to the key.
func NewSetting(id string, in SettingInput) Setting {
	s := Setting{
		ID:          id,
		Key:         in.Key,
		Value:       in.Value,
		Category:    in.Category,
		DisplayName: in.DisplayName,
	}
	if s.Category == "" {
		s.Category = common.DefaultSettingCategory
	}
	if s.DisplayName == "" {
		s.DisplayName = s.Key
	}
	return s
}

// SettingPatch has no Key: the key of an existing setting is immutable.
type SettingPatch struct {
	Value       *string
	Category    *string
	DisplayName *string
}

func (p SettingPatch) Apply(s *Setting) {
	if p.Value != nil {
		s.Value = *p.Value
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.DisplayName != nil {
		s.DisplayName = *p.DisplayName
	}
}
