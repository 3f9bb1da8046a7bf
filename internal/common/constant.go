// Package common contains shared constants, helpers and sentinel errors used
// across the bank portal components.
package common

// SessionCookieName is the HTTP cookie that carries the signed admin session.
const SessionCookieName = "session"

// DefaultSettingCategory is assigned to settings created without a category.
const DefaultSettingCategory = "general"
