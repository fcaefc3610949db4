// Command variantgen renders the per-kind wrapper methods of package
// columnar, and the binary function dispatch table and n-ary expressions of
// package compute, from declarative YAML tables.
//
// It is invoked through go:generate directives:
//
//	go run ../../tools/variantgen -template variants -in variants.yaml -out variants_gen.go
package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("variantgen").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.go.tmpl"),
)

// Variants is the input of the variants template.
type Variants struct {
	Source  string   `yaml:"-"`
	Package string   `yaml:"package"`
	Imports []string `yaml:"imports"`
	Kinds   []Kind   `yaml:"kinds"`
}

// Kind describes one physical kind of package columnar.
type Kind struct {
	Name    string `yaml:"name"`
	String  string `yaml:"string"`
	Array   string `yaml:"array"`
	Builder string `yaml:"builder"`
	New     string `yaml:"new"`
	Owned   string `yaml:"owned"`
	Ref     string `yaml:"ref"`
	Type    string `yaml:"type"`
	Push    string `yaml:"push"`
}

// Dispatch is the input of the dispatch template.
type Dispatch struct {
	Source     string      `yaml:"-"`
	Package    string      `yaml:"package"`
	Signatures []Signature `yaml:"signatures"`
	Casts      []Cast      `yaml:"casts"`
}

// Signature binds a pair of operand kinds to the kind they are combined in.
type Signature struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Common string `yaml:"common"`
	Bind   string `yaml:"bind"`
}

// Cast binds a widening conversion between two kinds.
type Cast struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Bind string `yaml:"bind"`
}

// Nary is the input of the nary template.
type Nary struct {
	Source      string       `yaml:"-"`
	Package     string       `yaml:"package"`
	Expressions []Expression `yaml:"expressions"`
}

// Expression describes a generated expression of Arity arguments.
type Expression struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity"`
}

func main() {
	var (
		name = flag.String("template", "", "Template to render: variants, dispatch or nary.")
		in   = flag.String("in", "", "YAML table to read.")
		out  = flag.String("out", "", "Go file to write. Defaults to stdout.")
	)
	flag.Parse()

	if err := run(*name, *in, *out); err != nil {
		fmt.Fprintf(os.Stderr, "variantgen: %v\n", err)
		os.Exit(1)
	}
}

func run(name, in, out string) error {
	if in == "" {
		return errors.New("-in is required")
	}

	input, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	src, err := render(name, filepath.Base(in), input)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return errors.Wrap(os.WriteFile(out, src, 0o644), "writing output")
}

// render decodes input as the table of the named template and returns the
// formatted Go source rendered from it.
func render(name, source string, input []byte) ([]byte, error) {
	var table any
	switch name {
	case "variants":
		table = &Variants{Source: source}
	case "dispatch":
		table = &Dispatch{Source: source}
	case "nary":
		table = &Nary{Source: source}
	default:
		return nil, errors.Errorf("unknown template %q", name)
	}

	if err := yaml.Unmarshal(input, table); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", source)
	}
	if err := validate(table); err != nil {
		return nil, errors.Wrapf(err, "validating %s", source)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".go.tmpl", table); err != nil {
		return nil, errors.Wrapf(err, "executing template %s", name)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated source")
	}
	return src, nil
}

func validate(table any) error {
	switch t := table.(type) {
	case *Variants:
		if len(t.Kinds) == 0 {
			return errors.New("no kinds")
		}
		seen := make(map[string]struct{}, len(t.Kinds))
		for _, k := range t.Kinds {
			if k.Name == "" || k.Array == "" || k.Builder == "" || k.New == "" || k.Owned == "" || k.Ref == "" || k.Type == "" {
				return errors.Errorf("kind %q: missing field", k.Name)
			}
			if _, ok := seen[k.Name]; ok {
				return errors.Errorf("duplicate kind %q", k.Name)
			}
			seen[k.Name] = struct{}{}
		}

	case *Dispatch:
		type key struct{ left, right string }
		seen := make(map[key]struct{}, len(t.Signatures))
		for _, s := range t.Signatures {
			if s.Left == "" || s.Right == "" || s.Common == "" || s.Bind == "" {
				return errors.Errorf("signature %s, %s: missing field", s.Left, s.Right)
			}
			if _, ok := seen[key{s.Left, s.Right}]; ok {
				return errors.Errorf("duplicate signature %s, %s", s.Left, s.Right)
			}
			seen[key{s.Left, s.Right}] = struct{}{}
		}
		for _, c := range t.Casts {
			if c.From == "" || c.To == "" || c.Bind == "" {
				return errors.Errorf("cast %s to %s: missing field", c.From, c.To)
			}
		}

	case *Nary:
		seen := make(map[string]struct{}, len(t.Expressions))
		for _, e := range t.Expressions {
			if e.Name == "" {
				return errors.New("expression: missing name")
			}
			// Unary and binary expressions are written by hand.
			if e.Arity < 3 {
				return errors.Errorf("expression %q: arity %d is less than 3", e.Name, e.Arity)
			}
			if _, ok := seen[e.Name]; ok {
				return errors.Errorf("duplicate expression %q", e.Name)
			}
			seen[e.Name] = struct{}{}
		}
	}
	return nil
}
