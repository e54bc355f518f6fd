package config

import (
	"encoding/json"
	"strconv"
)

const (
	DefaultModel     = "claude-3-sonnet-20240229"
	DefaultMaxTokens = 4096

	// DefaultProfileName is used when the store is seeded from an existing settings file.
	DefaultProfileName = "Default"
)

// Settings is the payload written to the live settings file.
type Settings struct {
	APIKey    string `json:"api_key"`
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
}

// Profile is a named Settings payload.
type Profile struct {
	Name     string
	Settings Settings
}

// Patch overrides individual fields of a Settings. Nil fields keep their value.
type Patch struct {
	APIKey    *string
	Model     *string
	MaxTokens *int
}

// DefaultSettings returns the content written when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		APIKey:    "",
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
	}
}

// Apply returns a copy of s with the patch's non-nil fields replaced.
func (p Patch) Apply(s Settings) Settings {
	if p.APIKey != nil {
		s.APIKey = *p.APIKey
	}
	if p.Model != nil {
		s.Model = *p.Model
	}
	if p.MaxTokens != nil {
		s.MaxTokens = *p.MaxTokens
	}
	return s
}

// IsEmpty reports whether the patch overrides nothing.
func (p Patch) IsEmpty() bool {
	return p.APIKey == nil && p.Model == nil && p.MaxTokens == nil
}

// Encode renders the settings the way they are stored on disk.
func (s Settings) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Field is one named value of a Settings, in file order.
type Field struct {
	Name  string
	Value string
}

func (s Settings) Fields() []Field {
	return []Field{
		{Name: "api_key", Value: s.APIKey},
		{Name: "model", Value: s.Model},
		{Name: "max_tokens", Value: strconv.Itoa(s.MaxTokens)},
	}
}

// FieldChange describes a field whose value differs between two settings.
type FieldChange struct {
	Field  string
	Before string
	After  string
}

// Diff lists the fields that change when moving from before to after.
func Diff(before, after Settings) []FieldChange {
	var changes []FieldChange
	old := before.Fields()
	for i, f := range after.Fields() {
		if old[i].Value != f.Value {
			changes = append(changes, FieldChange{Field: f.Name, Before: old[i].Value, After: f.Value})
		}
	}
	return changes
}

// MaskKey hides all but the edges of an API key for display.
func MaskKey(key string) string {
	switch {
	case key == "":
		return "(empty)"
	case len(key) <= 8:
		return "****"
	default:
		return key[:4] + "..." + key[len(key)-4:]
	}
}
