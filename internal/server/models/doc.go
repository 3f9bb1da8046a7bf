// Package models defines the portal's entities together with their creation
// inputs and partial-update patches.
//
// Patch types use pointer fields: a nil field is omitted and keeps the stored
// value. For nullable string fields a pointer to "" clears the value.
package models

// nullable turns an empty string into nil, otherwise a pointer to a copy.
func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
