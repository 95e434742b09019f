package shapematch

import (
	"strconv"

	"github.com/reoring/shapematch/i18n"
)

// Matcher carries the state of one top-level match: the direction, the
// recursion depth, the current path and, when explaining, the collected
// issues. A Matcher is created per call and must not be shared.
type Matcher struct {
	dir     Direction
	opt     MatchOpt
	collect bool
	depth   int
	path    PathRef
	issues  Issues
	err     error
}

func newMatcher(dir Direction, collect bool, opts []MatchOpt) *Matcher {
	return &Matcher{dir: dir, opt: resolveOpt(opts), collect: collect, path: RootPath()}
}

// Direction returns the direction selected for this match.
func (m *Matcher) Direction() Direction { return m.dir }

// Path returns the JSON Pointer of the descriptor currently being matched.
func (m *Matcher) Path() string { return m.path.Pointer() }

// Explaining reports whether rejections are being collected. Acceptors may
// keep checking after a failure when it is true.
func (m *Matcher) Explaining() bool { return m.collect }

// Accept dispatches a against d one level deeper. It returns false without
// calling a once the depth limit has been hit anywhere in this match.
func (m *Matcher) Accept(a Acceptor, d *Descriptor) bool {
	if m.err != nil {
		return false
	}
	if a == nil {
		return m.Reject(CodeTypeMismatch, "want", "<nil>", "got", nameOf(d))
	}
	if m.depth >= m.opt.MaxDepth {
		m.err = &DepthError{Path: m.path.Pointer(), Limit: m.opt.MaxDepth}
		return m.Reject(CodeTooDeep, "limit", strconv.Itoa(m.opt.MaxDepth))
	}
	m.depth++
	ok := a.Accept(m, d)
	m.depth--
	return ok && m.err == nil
}

// Reject records an issue with code at the current path when explaining and
// always returns false. kv are key/value pairs interpolated into the message.
func (m *Matcher) Reject(code string, kv ...string) bool {
	if !m.collect {
		return false
	}
	data := make(map[string]string, len(kv)/2)
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i]] = kv[i+1]
		params[kv[i]] = kv[i+1]
	}
	m.issues = AppendIssues(m.issues, Issue{
		Path:    m.path.Pointer(),
		Code:    code,
		Message: i18n.T(code, data),
		Params:  params,
	})
	return false
}

// stop reports whether a failed check should end the current structure walk.
func (m *Matcher) stop() bool { return !m.collect || m.err != nil }

func (m *Matcher) field(name string, a Acceptor, d *Descriptor) bool {
	prev := m.path
	m.path = prev.Field(name)
	ok := m.Accept(a, d)
	m.path = prev
	return ok
}

func (m *Matcher) sameName(name string, d *Descriptor) bool {
	if d == nil || d.Name != name {
		return m.Reject(CodeNameMismatch, "want", name, "got", nameOf(d))
	}
	return true
}

func (m *Matcher) wrongKind(want KindTag, d *Descriptor) bool {
	return m.Reject(CodeKindMismatch, "name", d.Name, "want", want.String(), "got", d.Tag().String())
}

func (m *Matcher) matchDomain(name string, inner Acceptor, d *Descriptor) bool {
	if !m.sameName(name, d) {
		return false
	}
	dk, ok := asDomain(d.Kind)
	if !ok {
		return m.wrongKind(KindDomain, d)
	}
	return m.Accept(inner, dk.Inner)
}

// matchEnum accepts when every live variant is declared. Declared variants
// the live type lacks are fine, and the counts are never compared.
func (m *Matcher) matchEnum(name string, variants []string, d *Descriptor) bool {
	if !m.sameName(name, d) {
		return false
	}
	ek, ok := asEnum(d.Kind)
	if !ok {
		return m.wrongKind(KindEnum, d)
	}
	declared := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		declared[v] = struct{}{}
	}
	ok = true
	for _, v := range ek.Variants {
		if _, found := declared[v]; found {
			continue
		}
		ok = m.Reject(CodeUnknownVariant, "name", name, "variant", v)
		if m.stop() {
			return false
		}
	}
	return ok
}

// matchComposite requires at least as many live fields as declared ones and
// checks every live field that has a declared counterpart. Extra live fields
// pass. A declared field missing from the live type is only caught by the
// count floor.
func (m *Matcher) matchComposite(name string, fields []Field, d *Descriptor) bool {
	if !m.sameName(name, d) {
		return false
	}
	ck, ok := asComposite(d.Kind)
	if !ok {
		return m.wrongKind(KindComposite, d)
	}
	if len(ck.Fields) < len(fields) {
		return m.Reject(CodeTooFewFields, "name", name,
			"want", strconv.Itoa(len(fields)), "got", strconv.Itoa(len(ck.Fields)))
	}
	byName := make(map[string]Acceptor, len(fields))
	for _, f := range fields {
		if _, dup := byName[f.Name]; !dup {
			byName[f.Name] = f.Type
		}
	}
	ok = true
	for _, f := range ck.Fields {
		a, found := byName[f.Name]
		if !found {
			continue
		}
		if !m.field(f.Name, a, f.Type) {
			ok = false
			if m.stop() {
				return false
			}
		}
	}
	return ok
}

func asDomain(k Kind) (DomainKind, bool) {
	switch t := k.(type) {
	case DomainKind:
		return t, true
	case *DomainKind:
		if t != nil {
			return *t, true
		}
	}
	return DomainKind{}, false
}

func asEnum(k Kind) (EnumKind, bool) {
	switch t := k.(type) {
	case EnumKind:
		return t, true
	case *EnumKind:
		if t != nil {
			return *t, true
		}
	}
	return EnumKind{}, false
}

func asComposite(k Kind) (CompositeKind, bool) {
	switch t := k.(type) {
	case CompositeKind:
		return t, true
	case *CompositeKind:
		if t != nil {
			return *t, true
		}
	}
	return CompositeKind{}, false
}

func nameOf(d *Descriptor) string {
	if d == nil {
		return ""
	}
	return d.Name
}

// ---- Entry points ----

// Accepts reports whether d can carry values of the declared type a in
// direction dir. The error is non-nil only when the recursion guard trips
// (see ErrTooDeep); every other mismatch is a plain false.
func Accepts(a Acceptor, dir Direction, d *Descriptor, opts ...MatchOpt) (bool, error) {
	m := newMatcher(dir, false, opts)
	ok := m.Accept(a, d)
	return ok, m.err
}

// Explain runs the same match as Accepts but keeps going after the first
// rejection and returns every recorded reason. The boolean always equals the
// one Accepts would return for the same inputs.
func Explain(a Acceptor, dir Direction, d *Descriptor, opts ...MatchOpt) (bool, Issues, error) {
	m := newMatcher(dir, true, opts)
	ok := m.Accept(a, d)
	return ok, m.issues, m.err
}

// MatchesDomain reports whether d is a domain named name whose inner type is
// accepted by inner.
func MatchesDomain(name string, inner Acceptor, dir Direction, d *Descriptor) (bool, error) {
	return Accepts(NewDomainShape(name, inner), dir, d)
}

// MatchesEnum reports whether d is an enum named name whose variants are all
// among variants.
func MatchesEnum(name string, variants []string, d *Descriptor) bool {
	ok, _ := Accepts(NewEnumShape(name, variants...), Encode, d)
	return ok
}

// MatchesComposite reports whether d is a composite named name that provides
// at least len(fields) fields and whose same-named fields are accepted by the
// declared field types in direction dir.
func MatchesComposite(name string, fields []Field, dir Direction, d *Descriptor) (bool, error) {
	return Accepts(NewCompositeShape(name, fields...), dir, d)
}
