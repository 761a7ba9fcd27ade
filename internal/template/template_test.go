package template

import (
	"log/slog"
	"testing"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/DennisDane/geekmagic-go/internal/hass"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func testSnapshot() *hass.Snapshot {
	return hass.NewSnapshot(time.Now(),
		hass.Entity{
			EntityID: "sensor.office_temp",
			State:    "21.5",
			Attributes: map[string]any{
				"friendly_name": "Office",
				"battery":       float64(80),
			},
		},
		hass.Entity{EntityID: "light.desk", State: "on"},
	)
}

func TestStatesFunction(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	ectx := Context(testSnapshot(), time.Now())

	val, ok := r.Resolve("value", parseExpr(t, `states("sensor.office_temp")`), ectx)
	require.True(t, ok)
	require.Equal(t, "21.5", val.AsString())

	val, ok = r.Resolve("value", parseExpr(t, `states("sensor.missing")`), ectx)
	require.True(t, ok)
	require.Equal(t, "unknown", val.AsString())
}

func TestStateAttrFunction(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	ectx := Context(testSnapshot(), time.Now())

	val, ok := r.Resolve("label", parseExpr(t, `state_attr("sensor.office_temp", "friendly_name")`), ectx)
	require.True(t, ok)
	s, ok := AsString(val)
	require.True(t, ok)
	require.Equal(t, "Office", s)

	val, ok = r.Resolve("max", parseExpr(t, `state_attr("sensor.office_temp", "battery")`), ectx)
	require.True(t, ok)
	n, ok := AsNumber(val)
	require.True(t, ok)
	require.InDelta(t, 80, n, 1e-9)

	// Missing attribute resolves to null, which reports not-ok.
	_, ok = r.Resolve("x", parseExpr(t, `state_attr("sensor.office_temp", "nope")`), ectx)
	require.False(t, ok)
}

func TestIsStateFunction(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	ectx := Context(testSnapshot(), time.Now())

	val, ok := r.Resolve("on", parseExpr(t, `is_state("light.desk", "on")`), ectx)
	require.True(t, ok)
	require.True(t, val.True())

	val, ok = r.Resolve("off", parseExpr(t, `is_state("light.desk", "off")`), ectx)
	require.True(t, ok)
	require.False(t, val.True())

	val, ok = r.Resolve("gone", parseExpr(t, `is_state("sensor.missing", "on")`), ectx)
	require.True(t, ok)
	require.False(t, val.True())
}

func TestNowFunction(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	ectx := Context(testSnapshot(), now)

	val, ok := r.Resolve("t", parseExpr(t, `now("15:04")`), ectx)
	require.True(t, ok)
	require.Equal(t, "14:30", val.AsString())
}

func TestStaticContextRejectsStateFunctions(t *testing.T) {
	t.Parallel()

	ectx := StaticContext()

	_, diags := parseExpr(t, `states("sensor.office_temp")`).Value(ectx)
	require.True(t, diags.HasErrors())

	_, diags = parseExpr(t, `now("15:04")`).Value(ectx)
	require.True(t, diags.HasErrors())

	val, diags := parseExpr(t, `upper("hello")`).Value(ectx)
	require.False(t, diags.HasErrors())
	require.Equal(t, "HELLO", val.AsString())

	val, diags = parseExpr(t, `format("%.1f%%", 42.25)`).Value(ectx)
	require.False(t, diags.HasErrors())
	require.Equal(t, "42.2%", val.AsString())
}

func TestResolveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	ectx := Context(testSnapshot(), time.Now())

	// Unknown function: logged and skipped.
	_, ok := r.Resolve("bad", parseExpr(t, `no_such_fn("x")`), ectx)
	require.False(t, ok)

	out := r.ResolveAll(map[string]hcl.Expression{
		"good": parseExpr(t, `states("light.desk")`),
		"bad":  parseExpr(t, `no_such_fn("x")`),
	}, ectx)
	require.Len(t, out, 1)
	require.Equal(t, "on", out["good"].AsString())
}

func TestAsNumberRejectsNonFinite(t *testing.T) {
	t.Parallel()

	r := NewResolver(slog.Default())
	ectx := Context(testSnapshot(), time.Now())

	val, ok := r.Resolve("pct", parseExpr(t, `states("sensor.office_temp") * 2`), ectx)
	require.True(t, ok)
	n, ok := AsNumber(val)
	require.True(t, ok)
	require.InDelta(t, 43, n, 1e-9)

	_, ok = AsNumber(cty.StringVal("not a number"))
	require.False(t, ok)

	_, ok = AsNumber(cty.NullVal(cty.Number))
	require.False(t, ok)
}

func TestAsBool(t *testing.T) {
	t.Parallel()

	b, ok := AsBool(cty.True)
	require.True(t, ok)
	require.True(t, b)

	b, ok = AsBool(cty.StringVal("false"))
	require.True(t, ok)
	require.False(t, b)

	_, ok = AsBool(cty.StringVal("maybe"))
	require.False(t, ok)
}
