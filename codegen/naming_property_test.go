package codegen

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSanitizeTokenProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	valid := func(s string) bool {
		for _, r := range s {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
				return false
			}
		}
		return true
	}

	properties.Property("output contains only [a-z0-9_]", prop.ForAll(
		func(name string) bool {
			return valid(SanitizeToken(name, "output"))
		},
		gen.AnyString(),
	))

	properties.Property("output never starts or ends with underscore", prop.ForAll(
		func(name string) bool {
			s := SanitizeToken(name, "output")
			return !strings.HasPrefix(s, "_") && !strings.HasSuffix(s, "_")
		},
		gen.AnyString(),
	))

	properties.Property("output never contains a double underscore", prop.ForAll(
		func(name string) bool {
			return !strings.Contains(SanitizeToken(name, "output"), "__")
		},
		gen.AnyString(),
	))

	properties.Property("output is never empty when fallback is non-empty", prop.ForAll(
		func(name string) bool {
			return SanitizeToken(name, "output") != ""
		},
		gen.AnyString(),
	))

	properties.Property("sanitizing is idempotent", prop.ForAll(
		func(name string) bool {
			once := SanitizeToken(name, "output")
			return SanitizeToken(once, "output") == once
		},
		gen.AnyString(),
	))

	properties.Property("clean identifiers pass through unchanged", prop.ForAll(
		func(name string) bool {
			return SanitizeToken(name, "output") == name
		},
		gen.RegexMatch(`^[a-z][a-z0-9]{0,15}$`),
	))

	properties.TestingRun(t)
}
