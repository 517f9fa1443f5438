package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests by name. As with "go test -run", a MustMatch pattern is split on
// "/" and each element is matched against the test path element at the same depth, so a
// pattern like "create/new" runs the "create" group and its "new user" subtest. A MustNotMatch
// pattern is matched against the whole path and excludes everything underneath a match.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustNotMatch.AnyMatch(id.String()) {
		return false
	}
	if !r.MustMatch.IsDefined() {
		return true
	}
	for _, p := range r.MustMatch.patterns {
		if p.matchesPath(id.Path) {
			return true
		}
	}
	return false
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type RegexList struct {
	patterns []pathPattern
}

type pathPattern struct {
	source   string
	whole    *regexp.Regexp
	elements []*regexp.Regexp
}

func (p pathPattern) matchesPath(path []string) bool {
	for i, name := range path {
		if i >= len(p.elements) {
			return true
		}
		if !p.elements[i].MatchString(name) {
			return false
		}
	}
	return true
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	whole, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p := pathPattern{source: value, whole: whole}
	for _, element := range strings.Split(value, "/") {
		rx, err := regexp.Compile(element)
		if err != nil {
			return fmt.Errorf("invalid regex element %q: %w", element, err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
