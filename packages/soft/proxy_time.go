package soft

import (
	"time"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

type softTime struct {
	core     *chainCore
	delegate check.TimeAssert
}

func poisonedTime(s *Session) *softTime {
	return &softTime{core: poisonedCore(s, FamilyTime)}
}

func (p *softTime) As(format string, args ...any) check.TimeAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softTime) WithFailMessage(format string, args ...any) check.TimeAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softTime) IsEqualTo(expected time.Time) check.TimeAssert {
	p.core.check("IsEqualTo", func() { p.delegate.IsEqualTo(expected) })
	return p
}

func (p *softTime) IsBefore(expected time.Time) check.TimeAssert {
	p.core.check("IsBefore", func() { p.delegate.IsBefore(expected) })
	return p
}

func (p *softTime) IsAfter(expected time.Time) check.TimeAssert {
	p.core.check("IsAfter", func() { p.delegate.IsAfter(expected) })
	return p
}

func (p *softTime) IsBetween(start, end time.Time) check.TimeAssert {
	p.core.check("IsBetween", func() { p.delegate.IsBetween(start, end) })
	return p
}

func (p *softTime) IsZero() check.TimeAssert {
	p.core.check("IsZero", func() { p.delegate.IsZero() })
	return p
}

func (p *softTime) Unix() check.NumberAssert {
	out, ok := p.core.navigate("Unix", func() any { return p.delegate.Unix() })
	if !ok {
		return poisonedNumber(p.core.session)
	}
	return &softNumber{core: p.core.spawn(FamilyNumber), delegate: out.(check.NumberAssert)}
}

func (p *softTime) Value() time.Time {
	if p.core.poisoned {
		return time.Time{}
	}
	return p.delegate.Value()
}
