package soft

import "github.com/abdul-hamid-achik/softcheck/packages/check"

type softError struct {
	core     *chainCore
	delegate check.ErrorAssert
}

func poisonedError(s *Session) *softError {
	return &softError{core: poisonedCore(s, FamilyError)}
}

func (p *softError) As(format string, args ...any) check.ErrorAssert {
	p.core.describe(format, args...)
	return p
}

func (p *softError) WithFailMessage(format string, args ...any) check.ErrorAssert {
	p.core.overrideMessage(format, args...)
	return p
}

func (p *softError) HasMessage(expected string) check.ErrorAssert {
	p.core.check("HasMessage", func() { p.delegate.HasMessage(expected) })
	return p
}

func (p *softError) HasMessageContaining(sub string) check.ErrorAssert {
	p.core.check("HasMessageContaining", func() { p.delegate.HasMessageContaining(sub) })
	return p
}

func (p *softError) Is(target error) check.ErrorAssert {
	p.core.check("Is", func() { p.delegate.Is(target) })
	return p
}

func (p *softError) HasNoCause() check.ErrorAssert {
	p.core.check("HasNoCause", func() { p.delegate.HasNoCause() })
	return p
}

func (p *softError) Cause() check.ErrorAssert {
	out, ok := p.core.navigate("Cause", func() any { return p.delegate.Cause() })
	if !ok {
		return poisonedError(p.core.session)
	}
	return &softError{core: p.core.spawn(FamilyError), delegate: out.(check.ErrorAssert)}
}

func (p *softError) Message() check.StringAssert {
	out, ok := p.core.navigate("Message", func() any { return p.delegate.Message() })
	if !ok {
		return poisonedString(p.core.session)
	}
	return &softString{core: p.core.spawn(FamilyString), delegate: out.(check.StringAssert)}
}

func (p *softError) Value() error {
	if p.core.poisoned {
		return nil
	}
	return p.delegate.Value()
}
