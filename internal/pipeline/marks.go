package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// markSet collects marks in insertion order with at most one mark per type.
type markSet struct {
	marks []adf.Mark
}

func newMarkSet(seed ...adf.Mark) *markSet {
	s := &markSet{}
	for _, m := range seed {
		s.add(m)
	}
	return s
}

// add inserts m unless a mark of the same type is present. A later link
// replaces the href of an earlier one in place.
func (s *markSet) add(m adf.Mark) {
	for i := range s.marks {
		if s.marks[i].Type != m.Type {
			continue
		}
		if m.Type == adf.MarkLink {
			s.marks[i].Attrs = m.Attrs
		}
		return
	}
	s.marks = append(s.marks, m)
}

func (s *markSet) find(t adf.MarkType) (adf.Mark, bool) {
	for _, m := range s.marks {
		if m.Type == t {
			return m, true
		}
	}
	return adf.Mark{}, false
}

// list returns the final mark list. Code excludes every other mark except
// link, and comes first. An empty set yields nil.
func (s *markSet) list() []adf.Mark {
	if len(s.marks) == 0 {
		return nil
	}
	if code, ok := s.find(adf.MarkCode); ok {
		out := []adf.Mark{code}
		if link, ok := s.find(adf.MarkLink); ok {
			out = append(out, link)
		}
		return out
	}
	out := make([]adf.Mark, len(s.marks))
	copy(out, s.marks)
	return out
}

// resolveMarks walks down t through single-child chains and collects the
// marks contributed by each token on the way, starting from seed.
func resolveMarks(t token.Token, seed ...adf.Mark) []adf.Mark {
	s := newMarkSet(seed...)
	s.collect(t)
	return s.list()
}

func (s *markSet) collect(t token.Token) {
	switch tok := t.(type) {
	case *token.Em:
		s.add(adf.Em())
	case *token.Strong:
		s.add(adf.Strong())
	case *token.Del:
		s.add(adf.Strike())
	case *token.Codespan:
		s.add(adf.Code())
	case *token.Link:
		s.add(adf.Link(tok.Href))
	}

	if kids := t.Children(); len(kids) == 1 {
		s.collect(kids[0])
	}
}
