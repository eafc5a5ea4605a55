//go:build property
// +build property

package stylesheet

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genDocument builds stylesheets from a pool of realistic lines.
func genDocument() gopter.Gen {
	return gen.SliceOfN(12, gen.OneConstOf(
		`@import "tailwindcss";`,
		`@import url('a.css');`,
		`@source "../lib";`,
		`@plugin "@tailwindcss/forms";`,
		`@custom-variant dark (&:where(.dark, .dark *));`,
		`/* comment */`,
		`/* @import "x.css"; */`,
		``,
		`.btn { color: rgba(0, 0, 0, 0.5); }`,
		`@layer base {`,
		`}`,
		`  padding: 1rem;`,
	)).Map(func(lines []string) string {
		return strings.Join(lines, "\n")
	})
}

func genTarget() gopter.Gen {
	return gen.RegexMatch(`^(\.\./)?[a-z]{1,8}/[a-z]{1,8}\.css$`)
}

func TestEnsureImportProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ensure import is idempotent", prop.ForAll(
		func(text, target string) bool {
			first := EnsureImport(text, target)
			second := EnsureImport(first.Text, target)
			return second.Status == StatusAlreadyExists && second.Text == first.Text
		},
		genDocument(),
		genTarget(),
	))

	properties.Property("ensure import makes the target detectable", prop.ForAll(
		func(text, target string) bool {
			return HasImport(EnsureImport(text, target).Text, target)
		},
		genDocument(),
		genTarget(),
	))

	properties.Property("ensure import only adds lines", prop.ForAll(
		func(text, target string) bool {
			result := EnsureImport(text, target)
			if result.Status == StatusAlreadyExists {
				return result.Text == text
			}
			if strings.TrimSpace(text) == "" {
				return true
			}

			// Every original line must survive in order.
			out := strings.Split(result.Text, "\n")
			j := 0
			for _, line := range strings.Split(text, "\n") {
				for j < len(out) && out[j] != line {
					j++
				}
				if j == len(out) {
					return false
				}
				j++
			}
			return true
		},
		genDocument(),
		genTarget(),
	))

	properties.TestingRun(t)
}

func TestThemeBlockProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genTheme := gen.RegexMatch(`^--[a-z]{1,6}: [a-z0-9]{1,6};$`).Map(func(decl string) string {
		return "@theme {\n  " + decl + "\n}"
	})

	properties.Property("replace theme is idempotent", prop.ForAll(
		func(text, theme string) bool {
			once := ReplaceThemeBlock(text, theme)
			return ReplaceThemeBlock(once, theme) == once
		},
		genDocument(),
		genTheme,
	))

	properties.Property("text around the block is preserved", prop.ForAll(
		func(before, after, theme string) bool {
			before += "\n"
			after = "\n" + after
			text := before + "@theme {\n  --old: rgb(1 2 3 / 50%);\n}" + after
			out := ReplaceThemeBlock(text, theme)
			return strings.HasPrefix(out, before) &&
				strings.HasSuffix(out, after) &&
				strings.Contains(out, theme) &&
				!strings.Contains(out, "--old")
		},
		genDocument(),
		genDocument(),
		genTheme,
	))

	properties.TestingRun(t)
}
