package scenario

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/citymap/astar"
)

// ParseFile reads and decodes the scenario at path.
func ParseFile(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, xerrors.Errorf("scenario: failed to parse %s: %w", path, diagErrors(diags))
	}

	return decode(path, file.Body)
}

// Parse decodes src; filename is only used in diagnostics.
func Parse(filename string, src []byte) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, xerrors.Errorf("scenario: failed to parse %s: %w", filename, diagErrors(diags))
	}

	return decode(filename, file.Body)
}

func decode(name string, body hcl.Body) (*Scenario, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, xerrors.Errorf("scenario: failed to decode %s: %w", name, diagErrors(diags))
	}

	ctx, diags := evalLocals(content.Blocks.OfType(blockLocals))

	s := &Scenario{Name: name}
	for _, block := range content.Blocks {
		if block.Type == blockLocals {
			continue
		}
		step, stepDiags := decodeStep(block, ctx)
		diags = append(diags, stepDiags...)
		if !stepDiags.HasErrors() {
			s.Steps = append(s.Steps, step)
		}
	}
	if diags.HasErrors() {
		return nil, xerrors.Errorf("scenario: failed to decode %s: %w", name, diagErrors(diags))
	}

	return s, nil
}

// diagErrors collects every error diagnostic so that none is lost behind
// the summary line of hcl.Diagnostics.
func diagErrors(diags hcl.Diagnostics) error {
	var err error
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			err = multierror.Append(err, d)
		}
	}

	return err
}

// functions are the HCL functions available to expressions.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"min":   stdlib.MinFunc,
		"max":   stdlib.MaxFunc,
		"floor": stdlib.FloorFunc,
		"ceil":  stdlib.CeilFunc,
	}
}

// evalLocals evaluates every locals attribute in source order; an attribute
// sees the locals declared before it.
func evalLocals(blocks hcl.Blocks) (*hcl.EvalContext, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	locals := make(map[string]cty.Value)
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: functions(),
	}

	for _, b := range blocks {
		attrs, d := b.Body.JustAttributes()
		diags = append(diags, d...)

		ordered := make([]*hcl.Attribute, 0, len(attrs))
		for _, a := range attrs {
			ordered = append(ordered, a)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
		})

		for _, a := range ordered {
			if _, dup := locals[a.Name]; dup {
				diags = append(diags, errorDiag("Duplicate local value",
					fmt.Sprintf("A local value named %q was already declared.", a.Name), a.NameRange))
				continue
			}
			v, d := a.Expr.Value(ctx)
			diags = append(diags, d...)
			locals[a.Name] = v
			ctx.Variables["local"] = cty.ObjectVal(locals)
		}
	}

	return ctx, diags
}

func decodeStep(b *hcl.Block, ctx *hcl.EvalContext) (Step, hcl.Diagnostics) {
	step := Step{A: b.Labels[0], Range: b.DefRange}
	if len(b.Labels) > 1 {
		step.B = b.Labels[1]
	}

	var (
		diags  hcl.Diagnostics
		expect *string
	)
	switch b.Type {
	case blockCity:
		var body hclCity
		diags = gohcl.DecodeBody(b.Body, ctx, &body)
		step.Kind, expect = KindAddCity, body.ExpectError
		if !diags.HasErrors() {
			if len(body.At) != 2 {
				diags = append(diags, errorDiag("Invalid position",
					fmt.Sprintf("The at attribute needs exactly two numbers, got %d.", len(body.At)), b.DefRange))
			} else {
				step.X, step.Y = body.At[0], body.At[1]
			}
		}

	case blockRoad, blockRemoveCity, blockRemoveRoad:
		var body hclOp
		diags = gohcl.DecodeBody(b.Body, ctx, &body)
		step.Kind, expect = opKinds[b.Type], body.ExpectError

	case blockPath:
		var body hclPath
		diags = gohcl.DecodeBody(b.Body, ctx, &body)
		step.Kind, expect = KindPath, body.ExpectError
		step.ExpectLength = body.ExpectLength
		step.ExpectPaths = body.ExpectPath
		step.Print = body.Print
		step.Tolerance = DefaultTolerance
		if body.Tolerance != nil {
			if *body.Tolerance < 0 {
				diags = append(diags, errorDiag("Invalid tolerance", "The tolerance must not be negative.", b.DefRange))
			}
			step.Tolerance = *body.Tolerance
		}
		if body.Policy != nil {
			p, err := astar.ParsePolicy(*body.Policy)
			if err != nil {
				diags = append(diags, errorDiag("Invalid policy",
					fmt.Sprintf("Unknown relaxation policy %q; use \"relax\" or \"first-opened\".", *body.Policy), b.DefRange))
			}
			step.Policy = &p
		}
	}

	if expect != nil {
		if _, ok := errKinds[*expect]; !ok {
			diags = append(diags, errorDiag("Invalid expect_error",
				fmt.Sprintf("Unknown error kind %q.", *expect), b.DefRange))
		}
		step.ExpectError = *expect
	}

	return step, diags
}

var opKinds = map[string]Kind{
	blockRoad:       KindAddRoad,
	blockRemoveCity: KindRemoveCity,
	blockRemoveRoad: KindRemoveRoad,
}

func errorDiag(summary, detail string, rng hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	}
}
