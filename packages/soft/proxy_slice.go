package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softSlice struct {
	core     *chainCore
	delegate check.SliceAssert
}

func poisonedSlice(s *Session) *softSlice {
	return &softSlice{core: poisonedCore(s, FamilySlice)}
}

func (p *softSlice) As(format string, args ...any) check.SliceAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softSlice) WithFailMessage(format string, args ...any) check.SliceAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softSlice) UsingComparator(scope string, eq check.Comparator) check.SliceAssert {
	p.core.registerComparator(scope, eq)
	if !p.core.poisoned {
		p.delegate.UsingComparator(scope, eq)
	}
	return p
}

func (p *softSlice) IsEmpty() check.SliceAssert {
	p.core.check("IsEmpty", func() { p.delegate.IsEmpty() })
	return p
}

func (p *softSlice) IsNotEmpty() check.SliceAssert {
	p.core.check("IsNotEmpty", func() { p.delegate.IsNotEmpty() })
	return p
}

func (p *softSlice) HasSize(n int) check.SliceAssert {
	p.core.check("HasSize", func() { p.delegate.HasSize(n) })
	return p
}

func (p *softSlice) Contains(expected any) check.SliceAssert {
	p.core.check("Contains", func() { p.delegate.Contains(expected) })
	return p
}

func (p *softSlice) DoesNotContain(expected any) check.SliceAssert {
	p.core.check("DoesNotContain", func() { p.delegate.DoesNotContain(expected) })
	return p
}

func (p *softSlice) ContainsExactly(expected ...any) check.SliceAssert {
	p.core.check("ContainsExactly", func() { p.delegate.ContainsExactly(expected...) })
	return p
}

func (p *softSlice) AllSatisfy(fn func(v any) error) check.SliceAssert {
	p.core.check("AllSatisfy", func() { p.delegate.AllSatisfy(fn) })
	return p
}

func (p *softSlice) First() check.ValueAssert {
	out, ok := p.core.navigate("First", func() any { return p.delegate.First() })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softSlice) Last() check.ValueAssert {
	out, ok := p.core.navigate("Last", func() any { return p.delegate.Last() })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softSlice) Element(i int) check.ValueAssert {
	out, ok := p.core.navigate("Element", func() any { return p.delegate.Element(i) })
	if !ok {
		return poisonedValue(p.core.session)
	}
	return &softValue{core: p.core.spawn(FamilyValue), delegate: out.(check.ValueAssert)}
}

func (p *softSlice) Size() check.NumberAssert {
	out, ok := p.core.navigate("Size", func() any { return p.delegate.Size() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softSlice) Filtered(keep func(v any) bool) check.SliceAssert {
	out, ok := p.core.navigate("Filtered", func() any { return p.delegate.Filtered(keep) })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softSlice) Extracting(field string) check.SliceAssert {
	out, ok := p.core.navigate("Extracting", func() any { return p.delegate.Extracting(field) })
	if !ok {
		return poisonedSlice(p.core.session)
	}
	return &softSlice{core: p.core.spawn(FamilySlice), delegate: out.(check.SliceAssert)}
}

func (p *softSlice) Values() []any {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.Values()
}

func (p *softSlice) MustFirst() any {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.MustFirst()
}
