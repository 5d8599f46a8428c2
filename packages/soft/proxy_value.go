package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

// softValue proxies check.ValueAssert. The poisoned tag on its core makes
// every call a no-op after a failed navigation.
type softValue struct {
	core     *chainCore
	delegate check.ValueAssert
}

func poisonedValue(s *Session) *softValue {
	return &softValue{core: poisonedCore(s, FamilyValue)}
}

func (p *softValue) As(format string, args ...any) check.ValueAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softValue) WithFailMessage(format string, args ...any) check.ValueAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softValue) UsingComparator(scope string, eq check.Comparator) check.ValueAssert {
	p.core.registerComparator(scope, eq)
	if !p.core.poisoned {
		p.delegate.UsingComparator(scope, eq)
	}
	return p
}

func (p *softValue) IsEqualTo(expected any) check.ValueAssert {
	p.core.check("IsEqualTo", func() { p.delegate.IsEqualTo(expected) })
	return p
}

func (p *softValue) IsNotEqualTo(expected any) check.ValueAssert {
	p.core.check("IsNotEqualTo", func() { p.delegate.IsNotEqualTo(expected) })
	return p
}

func (p *softValue) IsNil() check.ValueAssert {
	p.core.check("IsNil", func() { p.delegate.IsNil() })
	return p
}

func (p *softValue) IsNotNil() check.ValueAssert {
	p.core.check("IsNotNil", func() { p.delegate.IsNotNil() })
	return p
}

func (p *softValue) Satisfies(fn func(v any) error) check.ValueAssert {
	p.core.check("Satisfies", func() { p.delegate.Satisfies(fn) })
	return p
}

func (p *softValue) AsString() check.StringAssert {
	out, ok := p.core.navigate("AsString", func() any { return p.delegate.AsString() })
	if !ok {
		return poisonedString(p.core.session)
	}
	return &softString{core: p.core.spawn(FamilyString), delegate: out.(check.StringAssert)}
}

func (p *softValue) AsNumber() check.NumberAssert {
	out, ok := p.core.navigate("AsNumber", func() any { return p.delegate.AsNumber() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softValue) AsSlice() check.SliceAssert {
	out, ok := p.core.navigate("AsSlice", func() any { return p.delegate.AsSlice() })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softValue) AsMap() check.MapAssert {
	out, ok := p.core.navigate("AsMap", func() any { return p.delegate.AsMap() })
	if !ok {
		return poisonedMap(p.core.session)
	}
	return &softMap{core: p.core.spawn(FamilyMap), delegate: out.(check.MapAssert)}
}

func (p *softValue) AsError() check.ErrorAssert {
	out, ok := p.core.navigate("AsError", func() any { return p.delegate.AsError() })
	if !ok {
		return poisonedError(p.core.session)
	}
	return &softError{core: p.core.spawn(FamilyError), delegate: out.(check.ErrorAssert)}
}

func (p *softValue) AsTime() check.TimeAssert {
	out, ok := p.core.navigate("AsTime", func() any { return p.delegate.AsTime() })
	if !ok {
		return poisonedTime(p.core.session)
	}
	return &softTime{core: p.core.spawn(FamilyTime), delegate: out.(check.TimeAssert)}
}

func (p *softValue) Field(name string) check.ValueAssert {
	out, ok := p.core.navigate("Field", func() any { return p.delegate.Field(name) })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softValue) Value() any {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.Value()
}
