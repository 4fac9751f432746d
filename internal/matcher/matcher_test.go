package matcher

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, refs []string, engine Engine) Matcher {
	t.Helper()
	m, err := Build(refs, engine)
	require.NoError(t, err)
	return m
}

func TestBuild_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		refs  []string
		line  string
		match bool
	}{
		{"prefix", []string{"foo", "bar"}, "foobaz", true},
		{"no reference present", []string{"foo", "bar"}, "qux", false},
		{"second reference", []string{"foo", "bar"}, "barstool", true},
		{"suffix", []string{"foo"}, "xxfoo", true},
		{"whole line", []string{"foo"}, "foo", true},
		{"partial reference", []string{"foobar"}, "foo", false},
		{"empty line", []string{"foo"}, "", false},
		{"dot is literal", []string{"a.c"}, "abc", false},
		{"dot matches dot", []string{"a.c"}, "xa.cx", true},
		{"star is literal", []string{"a*"}, "aaa", false},
		{"parens are literal", []string{"(x)"}, "x", false},
		{"parens match parens", []string{"(x)"}, "f(x)", true},
		{"pipe is literal", []string{"a|b"}, "a", false},
		{"anchors are literal", []string{"^a$"}, "a", false},
		{"backslash is literal", []string{`\d`}, "7", false},
		{"backslash matches backslash", []string{`\d`}, `x\dy`, true},
		{"overlapping references", []string{"she", "hers", "his"}, "ushers", true},
		{"fail link needed", []string{"abcd", "bce"}, "abce", true},
		{"nested suffix reference", []string{"abcde", "cd"}, "abcdx", true},
		{"multibyte", []string{"日本"}, "こんにちは日本語", true},
		{"multibyte miss", []string{"日本"}, "日x本", false},
		{"carriage return is part of reference", []string{"foo\r"}, "foo", false},
	}

	for _, engine := range Engines {
		for _, tt := range tests {
			t.Run(string(engine)+"/"+tt.name, func(t *testing.T) {
				m := build(t, tt.refs, engine)
				assert.Equal(t, tt.match, m.Match(tt.line))
			})
		}
	}
}

func TestBuild_EmptySetMatchesNothing(t *testing.T) {
	for _, engine := range Engines {
		t.Run(string(engine), func(t *testing.T) {
			for _, refs := range [][]string{nil, {}} {
				m := build(t, refs, engine)
				assert.Equal(t, 0, m.Len())
				assert.False(t, m.Match(""))
				assert.False(t, m.Match("anything at all"))
			}
		})
	}
}

func TestBuild_EmptyReferenceMatchesEverything(t *testing.T) {
	// Not produced by the loader, but the empty string is a substring of
	// every line.
	for _, engine := range Engines {
		t.Run(string(engine), func(t *testing.T) {
			m := build(t, []string{"zzz", ""}, engine)
			assert.True(t, m.Match(""))
			assert.True(t, m.Match("abc"))
		})
	}
}

func TestBuild_Len(t *testing.T) {
	for _, engine := range Engines {
		m := build(t, []string{"a", "b", "a"}, engine)
		assert.Equal(t, 3, m.Len(), engine)
	}
}

func TestBuild_UnknownEngine(t *testing.T) {
	m, err := Build([]string{"foo"}, Engine("pcre"))
	assert.Nil(t, m)

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, Engine("pcre"), buildErr.Engine)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestBuild_MatchesSubstringOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []rune(`ab.*|日本\()`)
	randString := func(maxLen int) string {
		n := rng.Intn(maxLen + 1)
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	for round := 0; round < 500; round++ {
		refs := make([]string, 1+rng.Intn(30))
		for i := range refs {
			refs[i] = randString(8)
			if refs[i] == "" {
				refs[i] = "a"
			}
		}
		matchers := make(map[Engine]Matcher, len(Engines))
		for _, engine := range Engines {
			matchers[engine] = build(t, refs, engine)
		}

		for i := 0; i < 20; i++ {
			line := randString(40)
			want := false
			for _, r := range refs {
				if strings.Contains(line, r) {
					want = true
					break
				}
			}
			for engine, m := range matchers {
				if got := m.Match(line); got != want {
					t.Fatalf("%s: refs=%q line=%q: Match = %v, want %v", engine, refs, line, got, want)
				}
			}
		}
	}
}

func TestBuild_AhoCorasickLargeSet(t *testing.T) {
	refs := make([]string, 5000)
	for i := range refs {
		refs[i] = fmt.Sprintf("id-%05d;", i)
	}
	m := build(t, refs, EngineAhoCorasick)

	assert.Equal(t, 5000, m.Len())
	assert.True(t, m.Match("request id-04999; done"))
	assert.False(t, m.Match("request id-05000; done"))
	assert.False(t, m.Match("id-0499"))
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		input   string
		want    Engine
		wantErr bool
	}{
		{"regexp", EngineRegexp, false},
		{"ahocorasick", EngineAhoCorasick, false},
		{" AhoCorasick ", EngineAhoCorasick, false},
		{"REGEXP", EngineRegexp, false},
		{"", "", true},
		{"grep", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEngine(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownEngine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkMatch(b *testing.B) {
	refs := make([]string, 1000)
	for i := range refs {
		refs[i] = strings.Repeat(string(rune('a'+i%26)), 3) + "-" + string(rune('A'+i%26))
	}
	line := strings.Repeat("the quick brown fox jumps over the lazy dog ", 4)

	for _, engine := range Engines {
		m, err := Build(refs, engine)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(string(engine), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.Match(line)
			}
		})
	}
}
