package pegrt

import (
	"bytes"
	"sort"
)

// RuleFunc parses one grammar rule at the cursor of ctx.
type RuleFunc func(ctx *Context) *Result

// Rule binds a rule name to its function.
type Rule struct {
	Name string
	Func RuleFunc
}

// Table is an immutable rule registry sorted by CompareRuleNames, used to
// invoke rules by name.
type Table struct {
	rules []Rule
	start string
}

// CompareRuleNames orders rule names by length first, then byte-wise.
// It returns -1, 0 or +1.
func CompareRuleNames(a, b []byte) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	}
	return bytes.Compare(a, b)
}

func compareRuleNameStrings(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// NewTable builds a registry from rules in any order. The first rule is
// the start rule. Duplicate names and rules without a function are rejected.
func NewTable(rules ...Rule) (*Table, error) {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	for _, rule := range sorted {
		if rule.Func == nil {
			return nil, errorNilRule(rule.Name)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareRuleNameStrings(sorted[i].Name, sorted[j].Name) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Name == sorted[i].Name {
			return nil, errorDuplicateRule(sorted[i].Name)
		}
	}

	table := &Table{rules: sorted}
	if len(rules) > 0 {
		table.start = rules[0].Name
	}
	return table, nil
}

// MustTable is like NewTable but panics on error.
// It is meant for package level grammar tables.
func MustTable(rules ...Rule) *Table {
	table, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return table
}

// Start returns the name of the start rule, empty for an empty table.
func (table *Table) Start() string {
	return table.start
}

// Len returns the number of rules.
func (table *Table) Len() int {
	return len(table.rules)
}

// Names returns the rule names in table order.
func (table *Table) Names() []string {
	names := make([]string, len(table.rules))
	for i := range table.rules {
		names[i] = table.rules[i].Name
	}
	return names
}

// Find looks up the rule called name.
func (table *Table) Find(name []byte) (RuleFunc, bool) {
	rule, ok := FindRule(table.rules, name)
	if !ok {
		return nil, false
	}
	return rule.Func, true
}

// FindRule binary searches rules, which must be sorted by CompareRuleNames,
// for the rule called name.
func FindRule(rules []Rule, name []byte) (*Rule, bool) {
	key := string(name)
	i, j := 0, len(rules)
	for i < j {
		m := i + (j-i)/2
		switch c := compareRuleNameStrings(key, rules[m].Name); {
		case c == 0:
			return &rules[m], true
		case c > 0:
			i = m + 1
		default:
			j = m
		}
	}
	return nil, false
}

// IsSorted tells if rules are in CompareRuleNames order without duplicates.
func IsSorted(rules []Rule) bool {
	for i := 1; i < len(rules); i++ {
		if compareRuleNameStrings(rules[i-1].Name, rules[i].Name) >= 0 {
			return false
		}
	}
	return true
}
