package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vendorTarget = "../vendor/mishka.css"

func TestHasImport(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"double quotes", `@import "../vendor/mishka.css";`, true},
		{"single quotes", `@import '../vendor/mishka.css';`, true},
		{"url double", `@import url("../vendor/mishka.css");`, true},
		{"url single", `@import url('../vendor/mishka.css');`, true},
		{"url bare", `@import url(../vendor/mishka.css);`, true},
		{"url inner spaces", `@import url( "../vendor/mishka.css" );`, true},
		{"uppercase keyword", `@IMPORT "../vendor/mishka.css";`, true},
		{"mixed case keyword", `@Import url(../vendor/mishka.css);`, true},
		{"tabs after keyword", "@import\t\t\"../vendor/mishka.css\";", true},
		{"indented", "    @import \"../vendor/mishka.css\";", true},
		{"source modifier", `@import "../vendor/mishka.css" source(none);`, true},
		{"layer modifier", `@import url("../vendor/mishka.css") layer(components);`, true},
		{"no semicolon", `@import "../vendor/mishka.css"`, true},
		{"duplicate separators", `@import "../vendor//mishka.css";`, true},
		{"dot segment", `@import "../vendor/./mishka.css";`, true},
		{"second statement on line", `@import "a.css"; @import "../vendor/mishka.css";`, true},
		{"after closing brace on line", `.a{} @import "../vendor/mishka.css";`, true},
		{"among other content", "@import \"tailwindcss\";\n\n@import \"../vendor/mishka.css\";\nbody {}\n", true},
		{"unterminated quote", `@import "../vendor/mishka.css`, false},
		{"unterminated url", `@import url("../vendor/mishka.css";`, false},
		{"mismatched quotes", `@import "../vendor/mishka.css';`, false},
		{"different target", `@import "../vendor/other.css";`, false},
		{"prefix of target", `@import "../vendor/mishka.css.map";`, false},
		{"keyword without space", `@imports "../vendor/mishka.css";`, false},
		{"single line comment", `/* @import "../vendor/mishka.css"; */`, false},
		{"block comment", "/*\n@import \"../vendor/mishka.css\";\n*/\n", false},
		{"inside a string value", `.a { content: "@import '../vendor/mishka.css'"; }`, false},
		{"empty document", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasImport(tt.text, vendorTarget))
		})
	}
}

func TestHasImportBlankTarget(t *testing.T) {
	assert.False(t, HasImport(`@import "";`, ""))
	assert.False(t, HasImport(`@import "a.css";`, "   "))
}

func TestHasImportTrimsTarget(t *testing.T) {
	assert.True(t, HasImport(`@import "../vendor/mishka.css";`, "  ../vendor/mishka.css \n"))
	assert.True(t, HasImport(`@import " ../vendor/mishka.css ";`, vendorTarget))
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  ../vendor//a.css ", "../vendor/a.css"},
		{`..\vendor\a.css`, "../vendor/a.css"},
		{"./a.css", "a.css"},
		{"a/b/../c.css", "a/c.css"},
		{"tailwindcss", "tailwindcss"},
		{"https://cdn.example.com//x.css", "https://cdn.example.com/x.css"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTarget(tt.input))
		})
	}
}

func TestFindImports(t *testing.T) {
	text := "@import \"tailwindcss\";\n" +
		"@import url('a.css') layer(x);\n" +
		"@import \"b.css\"; @import 'c.css';\n" +
		"@import url(./d.css);\n" +
		"body { color: red; }\n"

	refs := FindImports(Parse(text))
	require.Len(t, refs, 5)

	expected := []struct {
		line       int
		target     string
		normalized string
		form       string
	}{
		{0, "tailwindcss", "tailwindcss", "double"},
		{1, "a.css", "a.css", "url-single"},
		{2, "b.css", "b.css", "double"},
		{2, "c.css", "c.css", "single"},
		{3, "./d.css", "d.css", "url-bare"},
	}

	for i, want := range expected {
		assert.Equal(t, want.line, refs[i].Line, "line of import %d", i)
		assert.Equal(t, want.target, refs[i].Target, "target of import %d", i)
		assert.Equal(t, want.normalized, refs[i].Normalized, "normalized target of import %d", i)
		assert.Equal(t, want.form, refs[i].Form, "form of import %d", i)
	}
}

func TestImportStatement(t *testing.T) {
	assert.Equal(t, `@import "../vendor/mishka.css";`, ImportStatement(vendorTarget))
	assert.Equal(t, `@import "a.css";`, ImportStatement("  a.css  "))
	assert.Equal(t, `@import 'we"ird.css';`, ImportStatement(`we"ird.css`))
	assert.Equal(t, `@import "it's.css";`, ImportStatement(`it's.css`))
	assert.Equal(t, `@import "a'b\"c.css";`, ImportStatement(`a'b"c.css`))
	assert.Equal(t, `@import "a\\'b.css";`, ImportStatement(`a\'b.css`))
	assert.Equal(t, `@import "..\vendor\a.css";`, ImportStatement(`..\vendor\a.css`))
}

func TestFindImportsUnescapesQuotes(t *testing.T) {
	refs := FindImports(Parse(`@import "a'b\"c.css"; @import 'x\'y.css';` + "\n"))
	require.Len(t, refs, 2)
	assert.Equal(t, `a'b"c.css`, refs[0].Target)
	assert.Equal(t, `x'y.css`, refs[1].Target)
}

func TestImportStatementIsDetected(t *testing.T) {
	targets := []string{
		vendorTarget,
		`we"ird.css`,
		`it's.css`,
		`a'b"c.css`,
		`a\'b.css`,
		`a\"b'.css`,
		`..\vendor\a.css`,
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			assert.True(t, HasImport(ImportStatement(target), target))
		})
	}
}
