package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softMap struct {
	core     *chainCore
	delegate check.MapAssert
}

func poisonedMap(s *Session) *softMap {
	return &softMap{core: poisonedCore(s, FamilyMap)}
}

func (p *softMap) As(format string, args ...any) check.MapAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softMap) WithFailMessage(format string, args ...any) check.MapAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softMap) UsingComparator(scope string, eq check.Comparator) check.MapAssert {
	p.core.registerComparator(scope, eq)
	if !p.core.poisoned {
		p.delegate.UsingComparator(scope, eq)
	}
	return p
}

func (p *softMap) IsEmpty() check.MapAssert {
	p.core.check("IsEmpty", func() { p.delegate.IsEmpty() })
	return p
}

func (p *softMap) IsNotEmpty() check.MapAssert {
	p.core.check("IsNotEmpty", func() { p.delegate.IsNotEmpty() })
	return p
}

func (p *softMap) HasSize(n int) check.MapAssert {
	p.core.check("HasSize", func() { p.delegate.HasSize(n) })
	return p
}

func (p *softMap) ContainsKey(key string) check.MapAssert {
	p.core.check("ContainsKey", func() { p.delegate.ContainsKey(key) })
	return p
}

func (p *softMap) DoesNotContainKey(key string) check.MapAssert {
	p.core.check("DoesNotContainKey", func() { p.delegate.DoesNotContainKey(key) })
	return p
}

func (p *softMap) ContainsEntry(key string, value any) check.MapAssert {
	p.core.check("ContainsEntry", func() { p.delegate.ContainsEntry(key, value) })
	return p
}

func (p *softMap) Key(key string) check.ValueAssert {
	out, ok := p.core.navigate("Key", func() any { return p.delegate.Key(key) })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softMap) Keys() check.SliceAssert {
	out, ok := p.core.navigate("Keys", func() any { return p.delegate.Keys() })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softMap) MapValues() check.SliceAssert {
	out, ok := p.core.navigate("MapValues", func() any { return p.delegate.MapValues() })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softMap) Size() check.NumberAssert {
	out, ok := p.core.navigate("Size", func() any { return p.delegate.Size() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softMap) Entries() map[string]any {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.Entries()
}
