package platform

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes the resolved session settings for observability.
type SessionState struct {
	ConfigPath string   `json:"config_path,omitempty"`
	Strict     bool     `json:"strict"`
	MinGap     *int     `json:"min_gap,omitempty"`
	Journals   []string `json:"journals,omitempty"`
	Debounce   string   `json:"debounce,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	minGap := s.Config.MinGap
	if s.o.minGap != nil {
		minGap = s.o.minGap
	}
	debounce := s.Config.Debounce
	if s.o.debounce > 0 {
		debounce = s.o.debounce.String()
	}
	return SessionState{
		ConfigPath: s.Config.Path(),
		Strict:     s.Strict(),
		MinGap:     minGap,
		Journals:   s.Config.Journals,
		Debounce:   debounce,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
