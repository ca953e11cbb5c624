package plugin

import (
	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// RenderContext is handed to Formatter and HTMLRenderer hooks.
type RenderContext struct {
	// Class is the class whose page is being rendered.
	Class *model.Class

	// Entity is the class or member being rendered.
	Entity model.Entity

	// Value is the entity's attribute for the plugin's tagname. Formatters
	// may replace it.
	Value any

	// Data lets hooks share state during one render.
	Data map[string]any
}

// NewRenderContext creates a context for rendering one attribute.
func NewRenderContext(cls *model.Class, e model.Entity, value any) *RenderContext {
	return &RenderContext{
		Class:  cls,
		Entity: e,
		Value:  value,
		Data:   make(map[string]any),
	}
}

// StringValue returns Value as a string, or "".
func (rc *RenderContext) StringValue() string {
	if s, ok := rc.Value.(string); ok {
		return s
	}
	return ""
}

// GetString retrieves a string value from the shared data map.
// Returns empty string if the key doesn't exist or is not a string.
func (rc *RenderContext) GetString(key string) string {
	if v, ok := rc.Data[key].(string); ok {
		return v
	}
	return ""
}
