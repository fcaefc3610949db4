package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/compute"
	"github.com/grafana/colexpr/pkg/datatype"
	"github.com/grafana/colexpr/pkg/memory"
	util_log "github.com/grafana/colexpr/pkg/util/log"
)

// Input is the document read from -input.file.
type Input struct {
	Expressions []ExpressionSpec `yaml:"expressions"`
}

// ExpressionSpec describes a single function call over literal columns.
type ExpressionSpec struct {
	Name     string       `yaml:"name"`
	Function string       `yaml:"function"`
	Args     []ColumnSpec `yaml:"args"`
}

// ColumnSpec is a column of a logical type. Null values are written as
// null. A constant column holds a single value repeated for as many rows as
// the other arguments have.
type ColumnSpec struct {
	Type     string `yaml:"type"`
	Values   []any  `yaml:"values"`
	Constant bool   `yaml:"constant"`
}

type result struct {
	name  string
	typ   datatype.Type
	array columnar.ArrayImpl
	alloc *memory.Allocator
}

// run evaluates every expression of input and writes the results to w in
// input order.
func run(w io.Writer, input []byte, concurrency int, reg prometheus.Registerer) error {
	var doc Input
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return errors.Wrap(err, "decoding input")
	}

	metrics := compute.NewMetrics(reg)
	results := make([]result, len(doc.Expressions))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, spec := range doc.Expressions {
		g.Go(func() error {
			res, err := evaluate(spec, metrics)
			if err != nil {
				return errors.Wrapf(err, "expression %d (%s)", i, spec.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var allocated, peak int
	for _, res := range results {
		fmt.Fprintf(w, "%s: %s = %s\n", res.name, res.typ, formatArray(res.array))
		allocated += res.alloc.Allocated()
		peak += res.alloc.Peak()
	}
	fmt.Fprintf(w, "allocated %s (peak %s)\n", humanize.Bytes(uint64(allocated)), humanize.Bytes(uint64(peak)))
	return nil
}

func evaluate(spec ExpressionSpec, metrics *compute.Metrics) (result, error) {
	fn, err := compute.ParseFunc(spec.Function)
	if err != nil {
		return result{}, err
	}
	if len(spec.Args) != fn.Arity() {
		return result{}, fmt.Errorf("%s: %w: got %d arguments, expected %d", fn, compute.ErrArity, len(spec.Args), fn.Arity())
	}

	alloc := memory.NewAllocator(nil)
	types := make([]datatype.Type, len(spec.Args))
	arrays := make([]columnar.ArrayImpl, len(spec.Args))
	rows := -1
	for i, col := range spec.Args {
		if types[i], err = datatype.Parse(col.Type); err != nil {
			return result{}, errors.Wrapf(err, "argument %d", i)
		}
		if col.Constant && len(col.Values) != 1 {
			return result{}, errors.Errorf("argument %d: constant column has %d values, expected 1", i, len(col.Values))
		}
		if arrays[i], err = buildColumn(alloc, types[i], col.Values); err != nil {
			return result{}, errors.Wrapf(err, "argument %d", i)
		}
		if !col.Constant && rows < 0 {
			rows = arrays[i].Len()
		}
	}
	if rows < 0 {
		rows = 1
	}

	args := make([]compute.Column, len(spec.Args))
	for i, col := range spec.Args {
		if !col.Constant {
			args[i] = compute.ArrayColumn(arrays[i])
			continue
		}
		if value, ok := arrays[i].Get(0); ok {
			args[i] = compute.ConstantColumn(value.ToOwned(), rows)
		} else {
			args[i] = compute.NullColumn(arrays[i].Kind(), rows)
		}
	}

	var (
		expr compute.Expression
		typ  datatype.Type
	)
	if fn.Arity() == 1 {
		if typ, err = compute.UnaryResultType(fn, types[0]); err != nil {
			return result{}, err
		}
		expr, err = compute.BuildUnary(fn, types[0])
	} else {
		if typ, err = compute.ResultType(fn, types[0], types[1]); err != nil {
			return result{}, err
		}
		expr, err = compute.Build(fn, types[0], types[1])
	}
	if err != nil {
		return result{}, err
	}

	out, err := compute.EvalColumns(compute.Instrument(expr, metrics), alloc, args)
	if err != nil {
		return result{}, err
	}

	name := spec.Name
	if name == "" {
		name = expr.String()
	}
	level.Debug(util_log.Logger).Log("msg", "evaluated expression", "name", name, "rows", out.Len(), "nulls", out.Nulls(), "allocated", alloc.Allocated())
	return result{name: name, typ: typ, array: out, alloc: alloc}, nil
}

// buildColumn converts YAML values into an array of the physical kind of
// typ.
func buildColumn(alloc *memory.Allocator, typ datatype.Type, values []any) (columnar.ArrayImpl, error) {
	builder := columnar.NewBuilderImpl(alloc, typ.Physical())
	builder.Grow(len(values))

	for i, v := range values {
		if v == nil {
			builder.AppendNull()
			continue
		}
		ref, err := scalarOf(typ.Physical(), v)
		if err != nil {
			return columnar.ArrayImpl{}, errors.Wrapf(err, "row %d", i)
		}
		if err := builder.Push(ref, true); err != nil {
			return columnar.ArrayImpl{}, errors.Wrapf(err, "row %d", i)
		}
	}
	return builder.Finish(), nil
}

func scalarOf(kind columnar.Kind, v any) (columnar.ScalarRefImpl, error) {
	switch kind {
	case columnar.KindInt16:
		n, err := integerOf(v, math.MinInt16, math.MaxInt16)
		return columnar.NewInt16Ref(int16(n)), err
	case columnar.KindInt32:
		n, err := integerOf(v, math.MinInt32, math.MaxInt32)
		return columnar.NewInt32Ref(int32(n)), err
	case columnar.KindInt64:
		n, err := integerOf(v, math.MinInt64, math.MaxInt64)
		return columnar.NewInt64Ref(n), err
	case columnar.KindFloat32:
		f, err := floatOf(v)
		return columnar.NewFloat32Ref(float32(f)), err
	case columnar.KindFloat64:
		f, err := floatOf(v)
		return columnar.NewFloat64Ref(f), err
	case columnar.KindBool:
		b, ok := v.(bool)
		if !ok {
			return columnar.ScalarRefImpl{}, fmt.Errorf("expected a boolean, got %T", v)
		}
		return columnar.NewBoolRef(b), nil
	case columnar.KindUTF8:
		s, ok := v.(string)
		if !ok {
			return columnar.ScalarRefImpl{}, fmt.Errorf("expected a string, got %T", v)
		}
		return columnar.NewUTF8Ref([]byte(s)), nil
	case columnar.KindDecimal:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		if err != nil {
			return columnar.ScalarRefImpl{}, errors.Wrap(err, "expected a decimal")
		}
		return columnar.NewDecimalRef(d), nil
	}
	return columnar.ScalarRefImpl{}, fmt.Errorf("unsupported column kind %s", kind)
}

func integerOf(v any, lo, hi int64) (int64, error) {
	var n int64
	switch v := v.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows", v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

func floatOf(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func formatArray(arr columnar.ArrayImpl) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range arr.Len() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v, ok := arr.Get(i)
		if !ok {
			sb.WriteString("null")
			continue
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
