package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softNumber struct {
	core     *chainCore
	delegate check.NumberAssert
}

func poisonedNumber(s *Session) *softNumber {
	return &softNumber{core: poisonedCore(s, FamilyNumber)}
}

func (p *softNumber) As(format string, args ...any) check.NumberAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softNumber) WithFailMessage(format string, args ...any) check.NumberAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softNumber) IsEqualTo(expected any) check.NumberAssert {
	p.core.check("IsEqualTo", func() { p.delegate.IsEqualTo(expected) })
	return p
}

func (p *softNumber) IsNotEqualTo(expected any) check.NumberAssert {
	p.core.check("IsNotEqualTo", func() { p.delegate.IsNotEqualTo(expected) })
	return p
}

func (p *softNumber) IsGreaterThan(expected any) check.NumberAssert {
	p.core.check("IsGreaterThan", func() { p.delegate.IsGreaterThan(expected) })
	return p
}

func (p *softNumber) IsGreaterThanOrEqualTo(expected any) check.NumberAssert {
	p.core.check("IsGreaterThanOrEqualTo", func() { p.delegate.IsGreaterThanOrEqualTo(expected) })
	return p
}

func (p *softNumber) IsLessThan(expected any) check.NumberAssert {
	p.core.check("IsLessThan", func() { p.delegate.IsLessThan(expected) })
	return p
}

func (p *softNumber) IsLessThanOrEqualTo(expected any) check.NumberAssert {
	p.core.check("IsLessThanOrEqualTo", func() { p.delegate.IsLessThanOrEqualTo(expected) })
	return p
}

func (p *softNumber) IsBetween(low, high any) check.NumberAssert {
	p.core.check("IsBetween", func() { p.delegate.IsBetween(low, high) })
	return p
}

func (p *softNumber) IsPositive() check.NumberAssert {
	p.core.check("IsPositive", func() { p.delegate.IsPositive() })
	return p
}

func (p *softNumber) IsNegative() check.NumberAssert {
	p.core.check("IsNegative", func() { p.delegate.IsNegative() })
	return p
}

func (p *softNumber) IsZero() check.NumberAssert {
	p.core.check("IsZero", func() { p.delegate.IsZero() })
	return p
}

func (p *softNumber) AsDecimal() check.DecimalAssert {
	out, ok := p.core.navigate("AsDecimal", func() any { return p.delegate.AsDecimal() })
	if !ok {
		return poisonedDecimal(p.core.session)
	}
	return &softDecimal{core: p.core.spawn(FamilyDecimal), delegate: out.(check.DecimalAssert)}
}

func (p *softNumber) Value() float64 {
	if p.core.poisoned {
		return 0
	}
	return p.delegate.Value()
}
