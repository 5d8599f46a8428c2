package soft

import (
	"github.com/shopspring/decimal"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

type softDecimal struct {
	core     *chainCore
	delegate check.DecimalAssert
}

func poisonedDecimal(s *Session) *softDecimal {
	return &softDecimal{core: poisonedCore(s, FamilyDecimal)}
}

func (p *softDecimal) As(format string, args ...any) check.DecimalAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softDecimal) WithFailMessage(format string, args ...any) check.DecimalAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softDecimal) IsEqualTo(expected decimal.Decimal) check.DecimalAssert {
	p.core.check("IsEqualTo", func() { p.delegate.IsEqualTo(expected) })
	return p
}

func (p *softDecimal) IsEqualByComparingTo(expected decimal.Decimal) check.DecimalAssert {
	p.core.check("IsEqualByComparingTo", func() { p.delegate.IsEqualByComparingTo(expected) })
	return p
}

func (p *softDecimal) IsGreaterThan(expected decimal.Decimal) check.DecimalAssert {
	p.core.check("IsGreaterThan", func() { p.delegate.IsGreaterThan(expected) })
	return p
}

func (p *softDecimal) IsLessThan(expected decimal.Decimal) check.DecimalAssert {
	p.core.check("IsLessThan", func() { p.delegate.IsLessThan(expected) })
	return p
}

func (p *softDecimal) IsPositive() check.DecimalAssert {
	p.core.check("IsPositive", func() { p.delegate.IsPositive() })
	return p
}

func (p *softDecimal) IsNegative() check.DecimalAssert {
	p.core.check("IsNegative", func() { p.delegate.IsNegative() })
	return p
}

func (p *softDecimal) IsZero() check.DecimalAssert {
	p.core.check("IsZero", func() { p.delegate.IsZero() })
	return p
}

func (p *softDecimal) AsNumber() check.NumberAssert {
	out, ok := p.core.navigate("AsNumber", func() any { return p.delegate.AsNumber() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softDecimal) Value() decimal.Decimal {
	if p.core.poisoned {
		return decimal.Decimal{}
	}
	return p.delegate.Value()
}
