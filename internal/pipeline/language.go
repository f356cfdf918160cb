package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// LanguageResolver maps code block languages through chroma's lexer
// registry.
type LanguageResolver struct {
	normalize bool
	detect    bool
}

// NewLanguageResolver creates a resolver. With normalize, declared
// languages known to chroma are replaced by their canonical name ("js"
// becomes "javascript"). With detect, code without a declared language is
// analysed to guess one.
func NewLanguageResolver(normalize, detect bool) *LanguageResolver {
	return &LanguageResolver{normalize: normalize, detect: detect}
}

// Resolve returns the language for a code block, or "" when none is known.
// Unknown declared languages are kept as written.
func (r *LanguageResolver) Resolve(declared, code string) string {
	if declared != "" {
		if !r.normalize {
			return declared
		}
		if lexer := lexers.Get(declared); lexer != nil {
			return canonicalName(lexer)
		}
		return declared
	}

	if r.detect && strings.TrimSpace(code) != "" {
		if lexer := lexers.Analyse(code); lexer != nil {
			return canonicalName(lexer)
		}
	}
	return ""
}

// canonicalName prefers the lowercased lexer name when it is a plain word
// and falls back to the first alias ("C++" -> "cpp").
func canonicalName(lexer chroma.Lexer) string {
	cfg := lexer.Config()
	name := strings.ToLower(cfg.Name)
	if isPlainWord(name) || len(cfg.Aliases) == 0 {
		return name
	}
	return cfg.Aliases[0]
}

func isPlainWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
