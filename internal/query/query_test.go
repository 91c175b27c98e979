package query

import (
	"reflect"
	"testing"

	"github.com/KELiON/raycast-search-projects/internal/project"
)

func projects(names ...string) []project.Project {
	out := make([]project.Project, len(names))
	for i, name := range names {
		out[i] = project.Project{ID: "/p/" + name, Name: name, Path: "/p/" + name}
	}
	return out
}

func applyNames(ranked []project.Project, term string) []string {
	result := Apply(ranked, term)
	out := make([]string, len(result))
	for i, p := range result {
		out[i] = p.Name
	}
	return out
}

func TestEmptyQueryKeepsRankedOrder(t *testing.T) {
	ranked := projects("zeta", "alpha", "mid")

	got := applyNames(ranked, "")
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSubsequenceMatch(t *testing.T) {
	ranked := projects("a1b2c3", "acb", "xyz")

	got := applyNames(ranked, "abc")
	want := []string{"a1b2c3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCaseInsensitive(t *testing.T) {
	ranked := projects("MyApp", "myapp-legacy", "other")

	upper := applyNames(ranked, "MYAPP")
	lower := applyNames(ranked, "myapp")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("Expected identical results for either case, got %v vs %v", upper, lower)
	}
	if len(upper) != 2 {
		t.Errorf("Expected 2 matches, got %v", upper)
	}
}

func TestExactMatchFirst(t *testing.T) {
	ranked := projects("abcd", "abc")

	got := applyNames(ranked, "abc")
	want := []string{"abc", "abcd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExactMatchIgnoresCase(t *testing.T) {
	ranked := projects("abcd", "ABC")

	got := applyNames(ranked, "abc")
	want := []string{"ABC", "abcd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSubstringBeforeScatteredMatch(t *testing.T) {
	// Both match the subsequence pattern, only the first contains "abc"
	// contiguously.
	ranked := projects("axybycz", "xabcydef")

	got := applyNames(ranked, "abc")
	want := []string{"xabcydef", "axybycz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTiesKeepRankedOrder(t *testing.T) {
	// All contain "app" literally; frecency order must survive.
	ranked := projects("webapp", "app-server", "happy")

	got := applyNames(ranked, "app")
	want := []string{"webapp", "app-server", "happy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRegexSpecialsAreEscaped(t *testing.T) {
	ranked := projects("my.app", "myxapp")

	got := applyNames(ranked, ".")
	want := []string{"my.app"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected literal dot match %v, got %v", want, got)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		query   string
		subpath string
		term    string
	}{
		{"", "", ""},
		{"abc", "", "abc"},
		{"mono/", "mono", ""},
		{"mono/core", "mono", "core"},
		{"a/b/c", "a/b", "c"},
	}

	for _, tc := range cases {
		subpath, term := Split(tc.query)
		if subpath != tc.subpath || term != tc.term {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
				tc.query, subpath, term, tc.subpath, tc.term)
		}
	}
}
