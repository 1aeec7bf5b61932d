// Package gen renders the callback binding source emitted by iupgen.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"

	"github.com/go-iup/iup/cmd/iupgen/internal/spec"
)

// ModulePath reads the module path from go.mod in root.
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("go.mod in %s has no module path", root)
	}
	return path, nil
}

// dispatchTypes maps a native argument type to its trampoline parameter
// type. purego callbacks do not marshal strings, so cstring arrives as a
// raw pointer.
var dispatchTypes = map[string]string{
	"int32":   "int32",
	"float64": "float64",
	"cstring": "uintptr",
}

type fileView struct {
	Source    string
	Package   string
	Module    string
	Callbacks []callbackView
}

type callbackView struct {
	Name           string
	Ident          string
	Doc            string
	FuncType       string
	DispatchParams string
	CallArgs       string
	Propagate      bool
	Destroy        bool
}

// Render produces gofmt-formatted source for the callback table.
func Render(table *spec.Table, modPath, source string) ([]byte, error) {
	view := &fileView{
		Source:  source,
		Package: table.Package,
		Module:  modPath,
	}
	for _, cb := range table.Callbacks {
		view.Callbacks = append(view.Callbacks, buildCallback(cb))
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render callback bindings: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("rendered callback bindings do not parse: %w", err)
	}
	return src, nil
}

func buildCallback(cb spec.Callback) callbackView {
	funcParams := []string{"h iup.Handle"}
	dispatchParams := []string{"raw uintptr"}
	callArgs := []string{"iup.Wrap(ih)"}

	for _, arg := range cb.Args {
		funcParams = append(funcParams, arg.Name+" "+arg.Go)
		dispatchParams = append(dispatchParams, arg.Name+" "+dispatchTypes[arg.Native])
		callArgs = append(callArgs, convertArg(arg))
	}

	funcType := "func(" + strings.Join(funcParams, ", ") + ")"
	if cb.Result == "propagate" {
		funcType += " iup.Result"
	}

	return callbackView{
		Name:           cb.Name,
		Ident:          cb.Ident,
		Doc:            cb.Doc,
		FuncType:       funcType,
		DispatchParams: strings.Join(dispatchParams, ", "),
		CallArgs:       strings.Join(callArgs, ", "),
		Propagate:      cb.Result == "propagate",
		Destroy:        cb.Role == "destroy",
	}
}

// convertArg returns the expression that presents a trampoline parameter
// to the closure.
func convertArg(arg spec.Arg) string {
	switch arg.Native {
	case "int32":
		return "int(" + arg.Name + ")"
	case "cstring":
		return "native.GoString(" + arg.Name + ")"
	default:
		return arg.Name
	}
}

var fileTmpl = template.Must(template.New("callbacks").Parse(`// Code generated by iupgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ebitengine/purego"

	"{{.Module}}/pkg/iup"
	"{{.Module}}/pkg/native"
)
{{range .Callbacks}}
// {{.Ident}}Func handles the {{.Name}} callback.
type {{.Ident}}Func {{.FuncType}}

// {{.Ident}} {{.Doc}}
{{- if .Destroy}}
var {{.Ident}} = NewDestroy[{{.Ident}}Func]("{{.Name}}",
	func() uintptr { return purego.NewCallback(dispatch{{.Ident}}) },
	func(fn {{.Ident}}Func, ih native.Ihandle) { fn(iup.Wrap(ih)) },
)
{{- else}}
var {{.Ident}} = New[{{.Ident}}Func]("{{.Name}}", func() uintptr { return purego.NewCallback(dispatch{{.Ident}}) })
{{- end}}

// dispatch{{.Ident}}Binding breaks the initializer dependency between
// {{.Ident}} and its trampoline; init wires it before any dispatch can fire.
var dispatch{{.Ident}}Binding *Callback[{{.Ident}}Func]

func init() { dispatch{{.Ident}}Binding = {{.Ident}} }

func dispatch{{.Ident}}({{.DispatchParams}}) int32 {
	ih := native.Ihandle(raw)
	fn := dispatch{{.Ident}}Binding.Borrow(ih)
{{- if .Propagate}}
	return int32(fn({{.CallArgs}}))
{{- else}}
	fn({{.CallArgs}})
	return int32(iup.Default)
{{- end}}
}
{{end}}`))
