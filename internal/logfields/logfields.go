package logfields

import (
	"log/slog"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyClass      = "class"
	KeyMember     = "member"
	KeyTag        = "tag"
	KeyCategory   = "category"
	KeyFile       = "file"
	KeyLine       = "line"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Class(name string) slog.Attr     { return slog.String(KeyClass, name) }
func Member(id string) slog.Attr      { return slog.String(KeyMember, id) }
func Tag(tagname string) slog.Attr    { return slog.String(KeyTag, tagname) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }

// Position expands a source reference into file and line attributes.
func Position(pos model.SourceFileRef) slog.Attr {
	return slog.Group("pos", slog.String(KeyFile, pos.Filename), slog.Int(KeyLine, pos.Linenr))
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
