// Package template evaluates the dynamic option expressions a screen
// config may carry. Options that reference entity state are re-evaluated
// against a fresh snapshot every frame; everything else is folded to a
// constant once at load time.
package template

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/DennisDane/geekmagic-go/internal/hass"
)

var errNeedsState = errors.New("template: expression depends on entity state")

// StaticContext returns an evaluation context where the state functions
// refuse to run. Expressions that evaluate cleanly against it are
// constant and never need re-resolving.
func StaticContext() *hcl.EvalContext {
	return &hcl.EvalContext{Functions: buildFunctions(nil, time.Time{})}
}

// Context returns an evaluation context bound to one snapshot. The clock
// is passed in so a whole frame shares a single notion of now.
func Context(snap *hass.Snapshot, now time.Time) *hcl.EvalContext {
	return &hcl.EvalContext{Functions: buildFunctions(snap, now)}
}

func buildFunctions(snap *hass.Snapshot, now time.Time) map[string]function.Function {
	return map[string]function.Function{
		"states":     statesFunc(snap),
		"state_attr": stateAttrFunc(snap),
		"is_state":   isStateFunc(snap),
		"now":        nowFunc(now),
		"upper":      stdlib.UpperFunc,
		"lower":      stdlib.LowerFunc,
		"format":     stdlib.FormatFunc,
	}
}

func statesFunc(snap *hass.Snapshot) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "entity_id", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if snap == nil {
				return cty.NilVal, errNeedsState
			}
			e, ok := snap.Get(args[0].AsString())
			if !ok {
				return cty.StringVal("unknown"), nil
			}
			return cty.StringVal(e.State), nil
		},
	})
}

func stateAttrFunc(snap *hass.Snapshot) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "entity_id", Type: cty.String},
			{Name: "attribute", Type: cty.String},
		},
		Type: func(args []cty.Value) (cty.Type, error) {
			return cty.DynamicPseudoType, nil
		},
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if snap == nil {
				return cty.NilVal, errNeedsState
			}
			e, ok := snap.Get(args[0].AsString())
			if !ok {
				return cty.NullVal(cty.DynamicPseudoType), nil
			}
			return attrValue(e.Attributes[args[1].AsString()]), nil
		},
	})
}

func isStateFunc(snap *hass.Snapshot) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "entity_id", Type: cty.String},
			{Name: "state", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if snap == nil {
				return cty.NilVal, errNeedsState
			}
			e, ok := snap.Get(args[0].AsString())
			return cty.BoolVal(ok && e.State == args[1].AsString()), nil
		},
	})
}

func nowFunc(now time.Time) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "format", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if now.IsZero() {
				return cty.NilVal, errNeedsState
			}
			return cty.StringVal(now.Format(args[0].AsString())), nil
		},
	})
}

// attrValue maps a decoded JSON attribute to a cty value.
func attrValue(v any) cty.Value {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case string:
		return cty.StringVal(t)
	case bool:
		return cty.BoolVal(t)
	case float64:
		return cty.NumberFloatVal(t)
	case int:
		return cty.NumberIntVal(int64(t))
	default:
		return cty.StringVal(fmt.Sprint(t))
	}
}

// Resolver evaluates dynamic expressions, logging failures instead of
// failing the frame. A widget with a broken expression falls back to its
// placeholder rather than taking the whole dashboard down.
type Resolver struct {
	log *slog.Logger
}

// NewResolver wires a logger for resolution diagnostics.
func NewResolver(log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{log: log}
}

// Resolve evaluates one expression against the given context. Failures
// are logged at debug level and reported as not-ok.
func (r *Resolver) Resolve(name string, expr hcl.Expression, ectx *hcl.EvalContext) (cty.Value, bool) {
	val, diags := expr.Value(ectx)
	if diags.HasErrors() {
		r.log.Debug("option expression failed to resolve",
			"option", name, "error", diags.Error())
		return cty.NilVal, false
	}
	if !val.IsKnown() || val.IsNull() {
		return cty.NilVal, false
	}
	return val, true
}

// ResolveAll evaluates a map of expressions, returning only those that
// resolved.
func (r *Resolver) ResolveAll(exprs map[string]hcl.Expression, ectx *hcl.EvalContext) map[string]cty.Value {
	if len(exprs) == 0 {
		return nil
	}
	out := make(map[string]cty.Value, len(exprs))
	for name, expr := range exprs {
		if val, ok := r.Resolve(name, expr, ectx); ok {
			out[name] = val
		}
	}
	return out
}

// AsString converts a resolved value to a string.
func AsString(v cty.Value) (string, bool) {
	if v.IsNull() || !v.IsKnown() {
		return "", false
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", false
	}
	return conv.AsString(), true
}

// AsNumber converts a resolved value to a float. Non-finite results are
// rejected so a division in a template can never draw NaN geometry.
func AsNumber(v cty.Value) (float64, bool) {
	if v.IsNull() || !v.IsKnown() {
		return 0, false
	}
	conv, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, false
	}
	f, _ := conv.AsBigFloat().Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// AsBool converts a resolved value to a bool.
func AsBool(v cty.Value) (bool, bool) {
	if v.IsNull() || !v.IsKnown() {
		return false, false
	}
	conv, err := convert.Convert(v, cty.Bool)
	if err != nil {
		return false, false
	}
	return conv.True(), true
}
