package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softString struct {
	core     *chainCore
	delegate check.StringAssert
}

func poisonedString(s *Session) *softString {
	return &softString{core: poisonedCore(s, FamilyString)}
}

func (p *softString) As(format string, args ...any) check.StringAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softString) WithFailMessage(format string, args ...any) check.StringAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softString) IsEqualTo(expected string) check.StringAssert {
	p.core.check("IsEqualTo", func() { p.delegate.IsEqualTo(expected) })
	return p
}

func (p *softString) IsNotEqualTo(expected string) check.StringAssert {
	p.core.check("IsNotEqualTo", func() { p.delegate.IsNotEqualTo(expected) })
	return p
}

func (p *softString) IsEmpty() check.StringAssert {
	p.core.check("IsEmpty", func() { p.delegate.IsEmpty() })
	return p
}

func (p *softString) IsNotEmpty() check.StringAssert {
	p.core.check("IsNotEmpty", func() { p.delegate.IsNotEmpty() })
	return p
}

func (p *softString) Contains(sub string) check.StringAssert {
	p.core.check("Contains", func() { p.delegate.Contains(sub) })
	return p
}

func (p *softString) DoesNotContain(sub string) check.StringAssert {
	p.core.check("DoesNotContain", func() { p.delegate.DoesNotContain(sub) })
	return p
}

func (p *softString) HasPrefix(prefix string) check.StringAssert {
	p.core.check("HasPrefix", func() { p.delegate.HasPrefix(prefix) })
	return p
}

func (p *softString) HasSuffix(suffix string) check.StringAssert {
	p.core.check("HasSuffix", func() { p.delegate.HasSuffix(suffix) })
	return p
}

func (p *softString) Matches(pattern string) check.StringAssert {
	p.core.check("Matches", func() { p.delegate.Matches(pattern) })
	return p
}

func (p *softString) HasLength(n int) check.StringAssert {
	p.core.check("HasLength", func() { p.delegate.HasLength(n) })
	return p
}

func (p *softString) Length() check.NumberAssert {
	out, ok := p.core.navigate("Length", func() any { return p.delegate.Length() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softString) AsJSON() check.JSONAssert {
	out, ok := p.core.navigate("AsJSON", func() any { return p.delegate.AsJSON() })
	if !ok {
		return poisonedJSON(p.core.session)
	}
	return &softJSON{core: p.core.spawn(FamilyJSON), delegate: out.(check.JSONAssert)}
}

func (p *softString) Value() string {
	if p.core.poisoned {
		return ""
	}
	return p.delegate.Value()
}
