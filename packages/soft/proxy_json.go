package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softJSON struct {
	core     *chainCore
	delegate check.JSONAssert
}

func poisonedJSON(s *Session) *softJSON {
	return &softJSON{core: poisonedCore(s, FamilyJSON)}
}

func (p *softJSON) As(format string, args ...any) check.JSONAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softJSON) WithFailMessage(format string, args ...any) check.JSONAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softJSON) UsingComparator(scope string, eq check.Comparator) check.JSONAssert {
	p.core.registerComparator(scope, eq)
	if !p.core.poisoned {
		p.delegate.UsingComparator(scope, eq)
	}
	return p
}

func (p *softJSON) Exists(path string) check.JSONAssert {
	p.core.check("Exists", func() { p.delegate.Exists(path) })
	return p
}

func (p *softJSON) DoesNotExist(path string) check.JSONAssert {
	p.core.check("DoesNotExist", func() { p.delegate.DoesNotExist(path) })
	return p
}

func (p *softJSON) IsObject() check.JSONAssert {
	p.core.check("IsObject", func() { p.delegate.IsObject() })
	return p
}

func (p *softJSON) IsArray() check.JSONAssert {
	p.core.check("IsArray", func() { p.delegate.IsArray() })
	return p
}

func (p *softJSON) EqualsValue(expected any) check.JSONAssert {
	p.core.check("EqualsValue", func() { p.delegate.EqualsValue(expected) })
	return p
}

func (p *softJSON) MatchesSchema(schema string) check.JSONAssert {
	p.core.check("MatchesSchema", func() { p.delegate.MatchesSchema(schema) })
	return p
}

func (p *softJSON) HasLength(n int) check.JSONAssert {
	p.core.check("HasLength", func() { p.delegate.HasLength(n) })
	return p
}

func (p *softJSON) Get(path string) check.JSONAssert {
	out, ok := p.core.navigate("Get", func() any { return p.delegate.Get(path) })
	if !ok {
		return poisonedJSON(p.core.session)
	}
	return &softJSON{core: p.core.spawn(FamilyJSON), delegate: out.(check.JSONAssert)}
}

func (p *softJSON) AsValue() check.ValueAssert {
	out, ok := p.core.navigate("AsValue", func() any { return p.delegate.AsValue() })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softJSON) AsString() check.StringAssert {
	out, ok := p.core.navigate("AsString", func() any { return p.delegate.AsString() })
	if !ok {
		return poisonedString(p.core.session)
	}
	return &softString{core: p.core.spawn(FamilyString), delegate: out.(check.StringAssert)}
}

func (p *softJSON) AsNumber() check.NumberAssert {
	out, ok := p.core.navigate("AsNumber", func() any { return p.delegate.AsNumber() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softJSON) AsSlice() check.SliceAssert {
	out, ok := p.core.navigate("AsSlice", func() any { return p.delegate.AsSlice() })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softJSON) Raw() string {
	if p.core.poisoned {
		return ""
	}
	return p.delegate.Raw()
}

func (p *softJSON) MustGet(path string) any {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.MustGet(path)
}
