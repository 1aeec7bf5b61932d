// Package spec loads and validates the callback table consumed by iupgen.
package spec

import (
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/go-iup/iup/pkg/callback"
	"github.com/go-iup/iup/pkg/errors"
)

// Table is the parsed callback table.
type Table struct {
	Package   string     `yaml:"package"`
	Callbacks []Callback `yaml:"callbacks"`
}

// Callback describes one native callback binding.
type Callback struct {
	// Name is the native callback name, e.g. "ACTION".
	Name string `yaml:"name"`
	// Ident is the exported Go identifier, e.g. "Action".
	Ident string `yaml:"ident"`
	// Doc is the doc comment body appended after the identifier.
	Doc string `yaml:"doc"`
	// Args lists the extra native arguments after the element handle.
	Args []Arg `yaml:"args"`
	// Result is "propagate" (closure returns iup.Result) or "none"
	// (closure returns nothing; dispatch reports iup.Default).
	Result string `yaml:"result"`
	// Role is "" or "destroy". The destroy callback is released last by
	// the teardown coordinator and invoked by it.
	Role string `yaml:"role"`
}

// Arg describes one extra native argument.
type Arg struct {
	Name string `yaml:"name"`
	// Native is the C-side type: int32, float64, or cstring.
	Native string `yaml:"native"`
	// Go is the closure-side type: int, float64, or string.
	Go string `yaml:"go"`
}

// argConversions maps a native argument type to its legal Go type.
var argConversions = map[string]string{
	"int32":   "int",
	"float64": "float64",
	"cstring": "string",
}

// Load reads and validates a callback table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks the table for the invariants the generated code relies
// on: unique names and idents, collision-free binding keys, exactly one
// destroy-role entry, and known argument conversions.
func (t *Table) Validate() error {
	if t.Package == "" {
		return configErr("callback table has no package name")
	}
	if len(t.Callbacks) == 0 {
		return configErr("callback table is empty")
	}

	names := make(map[string]bool)
	idents := make(map[string]bool)
	keys := make(map[string]bool)
	destroyCount := 0

	for _, cb := range t.Callbacks {
		if cb.Name == "" {
			return configErr("callback with empty name")
		}
		if names[cb.Name] {
			return configErr(fmt.Sprintf("callback %q declared twice", cb.Name))
		}
		names[cb.Name] = true

		key := callback.ReservedPrefix + cb.Name
		if keys[key] {
			return configErr(fmt.Sprintf("binding key %q derived for two callbacks", key))
		}
		keys[key] = true

		if !isExportedIdent(cb.Ident) {
			return configErr(fmt.Sprintf("callback %q: ident %q is not an exported Go identifier", cb.Name, cb.Ident))
		}
		if idents[cb.Ident] {
			return configErr(fmt.Sprintf("ident %q used twice", cb.Ident))
		}
		idents[cb.Ident] = true

		switch cb.Result {
		case "propagate", "none":
		default:
			return configErr(fmt.Sprintf("callback %q: unknown result mode %q", cb.Name, cb.Result))
		}

		switch cb.Role {
		case "":
		case "destroy":
			destroyCount++
			if cb.Result != "none" {
				return configErr(fmt.Sprintf("callback %q: destroy role requires result none", cb.Name))
			}
			if len(cb.Args) != 0 {
				return configErr(fmt.Sprintf("callback %q: destroy role takes no extra arguments", cb.Name))
			}
		default:
			return configErr(fmt.Sprintf("callback %q: unknown role %q", cb.Name, cb.Role))
		}

		for _, arg := range cb.Args {
			if arg.Name == "" {
				return configErr(fmt.Sprintf("callback %q: argument with empty name", cb.Name))
			}
			want, known := argConversions[arg.Native]
			if !known {
				return configErr(fmt.Sprintf("callback %q: unknown native type %q", cb.Name, arg.Native))
			}
			if arg.Go != want {
				return configErr(fmt.Sprintf("callback %q: native %s converts to Go %s, not %q", cb.Name, arg.Native, want, arg.Go))
			}
		}
	}

	if destroyCount != 1 {
		return configErr(fmt.Sprintf("callback table needs exactly one destroy-role entry, found %d", destroyCount))
	}
	return nil
}

// Destroy returns the destroy-role callback. Valid only after Validate.
func (t *Table) Destroy() *Callback {
	for i := range t.Callbacks {
		if t.Callbacks[i].Role == "destroy" {
			return &t.Callbacks[i]
		}
	}
	return nil
}

func configErr(msg string) error {
	return &errors.BindError{
		Op:   "iupgen.Validate",
		Kind: errors.KindConfig,
		Err:  fmt.Errorf("%s", msg),
	}
}

func isExportedIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
