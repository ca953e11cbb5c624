// Package warnings implements the diagnostic channel used by every stage.
// Nothing reported here is fatal: a warning records a problem against a
// source position and processing carries on.
package warnings

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/metrics"
	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Category classifies a warning so it can be enabled or disabled.
type Category string

const (
	// TagSyntax is a malformed annotation.
	TagSyntax Category = "tag_syntax"
	// TagUnknown is an annotation no plugin handles.
	TagUnknown Category = "tag_unknown"
	// TagRepeated is a non-repeatable tag occurring more than once on one entity.
	TagRepeated Category = "tag_repeated"
	// TagScope is a tag used on an entity kind outside its merge scope.
	TagScope Category = "tag_scope"
	// OverrideTarget is an override whose target cannot be used.
	OverrideTarget Category = "override_target"
	// MemberDuplicate is a member id declared twice in one class.
	MemberDuplicate Category = "member_duplicate"
)

// All lists every category.
var All = []Category{TagSyntax, TagUnknown, TagRepeated, TagScope, OverrideTarget, MemberDuplicate}

// Warner is the narrow interface stages depend on.
type Warner interface {
	Warn(category Category, message string, pos model.SourceFileRef)
}

// Warning is a recorded diagnostic.
type Warning struct {
	Category Category
	Message  string
	Pos      model.SourceFileRef
}

// String renders the warning the way it is printed in summaries.
func (w Warning) String() string {
	return fmt.Sprintf("%s: [%s] %s", w.Pos, w.Category, w.Message)
}

// Logger forwards warnings to slog and keeps every emitted warning.
type Logger struct {
	log      *slog.Logger
	recorder metrics.Recorder
	enabled  map[Category]bool
	warnings []Warning
}

// NewLogger creates a Logger with every category enabled. A nil logger
// uses slog.Default().
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	l := &Logger{
		log:      log,
		recorder: metrics.NoopRecorder{},
		enabled:  make(map[Category]bool, len(All)),
	}
	for _, c := range All {
		l.enabled[c] = true
	}
	return l
}

// WithRecorder sets the metrics recorder warnings are counted against.
func (l *Logger) WithRecorder(r metrics.Recorder) *Logger {
	if r != nil {
		l.recorder = r
	}
	return l
}

// Configure applies rules of the form "+category", "-category", "+all" or
// "-all", in order. A bare name means "+name".
func (l *Logger) Configure(rules []string) error {
	for _, raw := range rules {
		rule := strings.TrimSpace(raw)
		if rule == "" {
			continue
		}
		on := true
		switch rule[0] {
		case '+':
			rule = rule[1:]
		case '-':
			on = false
			rule = rule[1:]
		}
		if rule == "all" {
			for _, c := range All {
				l.enabled[c] = on
			}
			continue
		}
		c := Category(rule)
		if _, known := l.enabled[c]; !known {
			return fmt.Errorf("unknown warning category: %s", rule)
		}
		l.enabled[c] = on
	}
	return nil
}

// Enabled reports whether a category is currently emitted.
func (l *Logger) Enabled(c Category) bool {
	return l.enabled[c]
}

// Warn records a warning if its category is enabled.
func (l *Logger) Warn(category Category, message string, pos model.SourceFileRef) {
	if !l.enabled[category] {
		return
	}
	l.warnings = append(l.warnings, Warning{Category: category, Message: message, Pos: pos})
	l.recorder.IncWarning(string(category))
	l.log.Warn(message, logfields.Category(string(category)), logfields.Position(pos))
}

// Warnings returns every recorded warning in emission order.
func (l *Logger) Warnings() []Warning {
	out := make([]Warning, len(l.warnings))
	copy(out, l.warnings)
	return out
}

// Count returns the number of recorded warnings of a category.
func (l *Logger) Count(c Category) int {
	n := 0
	for _, w := range l.warnings {
		if w.Category == c {
			n++
		}
	}
	return n
}
