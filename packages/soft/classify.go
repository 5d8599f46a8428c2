package soft

import "fmt"

// Kind is the dispatch class of one chained method call.
type Kind int

const (
	// KindCheck runs for its pass/fail side effect; a failure is recorded
	// and the chain continues on the same proxy.
	KindCheck Kind = iota
	// KindNavigation switches the object under test; a failure poisons the
	// branch.
	KindNavigation
	// KindTerminal returns a raw value; failures are not deferred.
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindCheck:
		return "check"
	case KindNavigation:
		return "navigation"
	case KindTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Family identifies an assertion family from packages/check.
type Family string

const (
	FamilyValue   Family = "Value"
	FamilyString  Family = "String"
	FamilyNumber  Family = "Number"
	FamilyDecimal Family = "Decimal"
	FamilySlice   Family = "Slice"
	FamilyMap     Family = "Map"
	FamilyError   Family = "Error"
	FamilyJSON    Family = "JSON"
	FamilyTime    Family = "Time"
)

// signature describes one contract method: the family of its declared return
// type ("" for a raw, non-assertion return) and whether the call yields a
// fresh object under test rather than the receiver.
type signature struct {
	returns Family
	fresh   bool
}

func self(f Family) signature { return signature{returns: f} }
func nav(f Family) signature  { return signature{returns: f, fresh: true} }

// signatures is the static classification table, one entry per contract
// method of every family.
var signatures = map[Family]map[string]signature{
	FamilyValue: {
		"As":              self(FamilyValue),
		"WithFailMessage": self(FamilyValue),
		"UsingComparator": self(FamilyValue),
		"IsEqualTo":       self(FamilyValue),
		"IsNotEqualTo":    self(FamilyValue),
		"IsNil":           self(FamilyValue),
		"IsNotNil":        self(FamilyValue),
		"Satisfies":       self(FamilyValue),
		"AsString":        nav(FamilyString),
		"AsNumber":        nav(FamilyNumber),
		"AsSlice":         nav(FamilySlice),
		"AsMap":           nav(FamilyMap),
		"AsError":         nav(FamilyError),
		"AsTime":          nav(FamilyTime),
		"Field":           nav(FamilyValue),
		"Value":           {},
	},
	FamilyString: {
		"As":              self(FamilyString),
		"WithFailMessage": self(FamilyString),
		"IsEqualTo":       self(FamilyString),
		"IsNotEqualTo":    self(FamilyString),
		"IsEmpty":         self(FamilyString),
		"IsNotEmpty":      self(FamilyString),
		"Contains":        self(FamilyString),
		"DoesNotContain":  self(FamilyString),
		"HasPrefix":       self(FamilyString),
		"HasSuffix":       self(FamilyString),
		"Matches":         self(FamilyString),
		"HasLength":       self(FamilyString),
		"Length":          nav(FamilyNumber),
		"AsJSON":          nav(FamilyJSON),
		"Value":           {},
	},
	FamilyNumber: {
		"As":                     self(FamilyNumber),
		"WithFailMessage":        self(FamilyNumber),
		"IsEqualTo":              self(FamilyNumber),
		"IsNotEqualTo":           self(FamilyNumber),
		"IsGreaterThan":          self(FamilyNumber),
		"IsGreaterThanOrEqualTo": self(FamilyNumber),
		"IsLessThan":             self(FamilyNumber),
		"IsLessThanOrEqualTo":    self(FamilyNumber),
		"IsBetween":              self(FamilyNumber),
		"IsPositive":             self(FamilyNumber),
		"IsNegative":             self(FamilyNumber),
		"IsZero":                 self(FamilyNumber),
		"AsDecimal":              nav(FamilyDecimal),
		"Value":                  {},
	},
	FamilyDecimal: {
		"As":                   self(FamilyDecimal),
		"WithFailMessage":      self(FamilyDecimal),
		"IsEqualTo":            self(FamilyDecimal),
		"IsEqualByComparingTo": self(FamilyDecimal),
		"IsGreaterThan":        self(FamilyDecimal),
		"IsLessThan":           self(FamilyDecimal),
		"IsPositive":           self(FamilyDecimal),
		"IsNegative":           self(FamilyDecimal),
		"IsZero":               self(FamilyDecimal),
		"AsNumber":             nav(FamilyNumber),
		"Value":                {},
	},
	FamilySlice: {
		"As":              self(FamilySlice),
		"WithFailMessage": self(FamilySlice),
		"UsingComparator": self(FamilySlice),
		"IsEmpty":         self(FamilySlice),
		"IsNotEmpty":      self(FamilySlice),
		"HasSize":         self(FamilySlice),
		"Contains":        self(FamilySlice),
		"DoesNotContain":  self(FamilySlice),
		"ContainsExactly": self(FamilySlice),
		"AllSatisfy":      self(FamilySlice),
		"First":           nav(FamilyValue),
		"Last":            nav(FamilyValue),
		"Element":         nav(FamilyValue),
		"Size":            nav(FamilyNumber),
		"Filtered":        nav(FamilySlice),
		"Extracting":      nav(FamilySlice),
		"Values":          {},
		"MustFirst":       {},
	},
	FamilyMap: {
		"As":                self(FamilyMap),
		"WithFailMessage":   self(FamilyMap),
		"UsingComparator":   self(FamilyMap),
		"IsEmpty":           self(FamilyMap),
		"IsNotEmpty":        self(FamilyMap),
		"HasSize":           self(FamilyMap),
		"ContainsKey":       self(FamilyMap),
		"DoesNotContainKey": self(FamilyMap),
		"ContainsEntry":     self(FamilyMap),
		"Key":               nav(FamilyValue),
		"Keys":              nav(FamilySlice),
		"MapValues":         nav(FamilySlice),
		"Size":              nav(FamilyNumber),
		"Entries":           {},
	},
	FamilyError: {
		"As":                   self(FamilyError),
		"WithFailMessage":      self(FamilyError),
		"HasMessage":           self(FamilyError),
		"HasMessageContaining": self(FamilyError),
		"Is":                   self(FamilyError),
		"HasNoCause":           self(FamilyError),
		"Cause":                nav(FamilyError),
		"Message":              nav(FamilyString),
		"Value":                {},
	},
	FamilyJSON: {
		"As":              self(FamilyJSON),
		"WithFailMessage": self(FamilyJSON),
		"UsingComparator": self(FamilyJSON),
		"Exists":          self(FamilyJSON),
		"DoesNotExist":    self(FamilyJSON),
		"IsObject":        self(FamilyJSON),
		"IsArray":         self(FamilyJSON),
		"EqualsValue":     self(FamilyJSON),
		"MatchesSchema":   self(FamilyJSON),
		"HasLength":       self(FamilyJSON),
		"Get":             nav(FamilyJSON),
		"AsValue":         nav(FamilyValue),
		"AsString":        nav(FamilyString),
		"AsNumber":        nav(FamilyNumber),
		"AsSlice":         nav(FamilySlice),
		"Raw":             {},
		"MustGet":         {},
	},
	FamilyTime: {
		"As":              self(FamilyTime),
		"WithFailMessage": self(FamilyTime),
		"IsEqualTo":       self(FamilyTime),
		"IsBefore":        self(FamilyTime),
		"IsAfter":         self(FamilyTime),
		"IsBetween":       self(FamilyTime),
		"IsZero":          self(FamilyTime),
		"Unix":            nav(FamilyNumber),
		"Value":           {},
	},
}

// classifySignature derives the dispatch kind of a method from its declared
// return family relative to the enclosing family, and from whether the call
// yields a fresh object. Precedence is check > navigation > terminal: a
// self-returning call that does not produce a new object is always a check,
// since chain continuity is the primary contract.
func classifySignature(enclosing Family, sig signature) Kind {
	switch {
	case sig.returns == "":
		return KindTerminal
	case sig.returns == enclosing && !sig.fresh:
		return KindCheck
	default:
		if _, known := signatures[sig.returns]; known {
			return KindNavigation
		}
		return KindTerminal
	}
}

// Classify reports the dispatch kind of a contract method. The second result
// is false for methods absent from the family's table.
func Classify(family Family, method string) (Kind, bool) {
	sig, ok := signatures[family][method]
	if !ok {
		return KindTerminal, false
	}
	return classifySignature(family, sig), true
}

// mustKind guards proxy dispatch: routing a method through the wrong helper
// is a wiring bug, not a runtime condition, so it fails fast.
func mustKind(family Family, method string, want Kind) {
	kind, ok := Classify(family, method)
	if !ok {
		panic(&ConfigurationError{Reason: fmt.Sprintf("unknown method %s.%s", family, method)})
	}
	if kind != want {
		panic(&ConfigurationError{Reason: fmt.Sprintf("method %s.%s is a %s call, dispatched as %s", family, method, kind, want)})
	}
}
