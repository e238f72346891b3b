package astjson

import (
	"testing"

	"github.com/HyperLuna/jexpr/ast"
	"github.com/HyperLuna/jexpr/certify"
	"github.com/stretchr/testify/require"
)

func TestDecodeBinary(t *testing.T) {
	// a + b as emitted by acorn
	input := `{
	  "type": "BinaryExpression",
	  "start": 0,
	  "loc": {"start": {"line": 1, "column": 0}},
	  "operator": "+",
	  "left": {"type": "Identifier", "start": 0, "name": "a"},
	  "right": {"type": "Identifier", "start": 4, "name": "b"}
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op)
	require.Equal(t, "a", bin.X.(*ast.Ident).Name)
	require.Equal(t, "b", bin.Y.(*ast.Ident).Name)
	require.Equal(t, 4, bin.Y.(*ast.Ident).NamePos.Char)
}

func TestDecodeProgramWrapper(t *testing.T) {
	input := `{
	  "type": "Program",
	  "body": [{
	    "type": "ExpressionStatement",
	    "expression": {"type": "Identifier", "name": "x"}
	  }]
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Equal(t, "x", expr.(*ast.Ident).Name)
}

func TestDecodeProgramMultipleStatements(t *testing.T) {
	input := `{
	  "type": "Program",
	  "body": [
	    {"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "x"}},
	    {"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "y"}}
	  ]
	}`
	_, err := Decode([]byte(input))
	require.Error(t, err)
	require.Contains(t, err.Error(), "single expression")
}

func TestDecodeLiterals(t *testing.T) {
	tests := []struct {
		input string
		value any
		raw   string
	}{
		{`{"type": "Literal", "value": 42, "raw": "42"}`, float64(42), "42"},
		{`{"type": "Literal", "value": "hi", "raw": "\"hi\""}`, "hi", `"hi"`},
		{`{"type": "Literal", "value": true, "raw": "true"}`, true, "true"},
		{`{"type": "Literal", "value": null, "raw": "null"}`, nil, "null"},
		{`{"type": "Literal", "value": {}, "raw": "/a+/g"}`, nil, "/a+/g"},
	}
	for _, tt := range tests {
		expr, err := Decode([]byte(tt.input))
		require.NoError(t, err)
		lit, ok := expr.(*ast.Literal)
		require.True(t, ok)
		require.Equal(t, tt.value, lit.Value)
		require.Equal(t, tt.raw, lit.Raw)
	}
}

func TestDecodeArrow(t *testing.T) {
	// (a, {b = 1, ...c}) => a + b
	input := `{
	  "type": "ArrowFunctionExpression",
	  "async": false,
	  "expression": true,
	  "params": [
	    {"type": "Identifier", "name": "a"},
	    {"type": "ObjectPattern", "properties": [
	      {
	        "type": "Property",
	        "key": {"type": "Identifier", "name": "b"},
	        "value": {
	          "type": "AssignmentPattern",
	          "left": {"type": "Identifier", "name": "b"},
	          "right": {"type": "Literal", "value": 1, "raw": "1"}
	        },
	        "shorthand": true,
	        "computed": false
	      },
	      {"type": "RestElement", "argument": {"type": "Identifier", "name": "c"}}
	    ]}
	  ],
	  "body": {
	    "type": "BinaryExpression",
	    "operator": "+",
	    "left": {"type": "Identifier", "name": "a"},
	    "right": {"type": "Identifier", "name": "b"}
	  }
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	arrow, ok := expr.(*ast.Arrow)
	require.True(t, ok)
	require.Len(t, arrow.Params, 2)
	pattern := arrow.Params[1].(*ast.ObjectPattern)
	require.Len(t, pattern.Props, 2)
	prop := pattern.Props[0].(*ast.Property)
	require.True(t, prop.Shorthand)
	_, ok = prop.Value.(*ast.Default)
	require.True(t, ok)
	_, ok = pattern.Props[1].(*ast.Rest)
	require.True(t, ok)
	_, ok = arrow.Body.(*ast.Binary)
	require.True(t, ok)
}

func TestDecodeArrowBlockBody(t *testing.T) {
	input := `{
	  "type": "ArrowFunctionExpression",
	  "params": [{"type": "Identifier", "name": "x"}],
	  "body": {"type": "BlockStatement", "body": []}
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	arrow := expr.(*ast.Arrow)
	_, ok := arrow.Body.(*ast.Block)
	require.True(t, ok)
}

func TestDecodeArrayHoles(t *testing.T) {
	input := `{
	  "type": "ArrayExpression",
	  "elements": [
	    {"type": "Literal", "value": 1, "raw": "1"},
	    null,
	    {"type": "Literal", "value": 3, "raw": "3"}
	  ]
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	arr := expr.(*ast.Array)
	require.Len(t, arr.Elts, 3)
	require.Nil(t, arr.Elts[1])
}

func TestDecodeTemplate(t *testing.T) {
	input := `{
	  "type": "TemplateLiteral",
	  "quasis": [
	    {"type": "TemplateElement", "value": {"raw": "n = ", "cooked": "n = "}, "tail": false},
	    {"type": "TemplateElement", "value": {"raw": "", "cooked": ""}, "tail": true}
	  ],
	  "expressions": [{"type": "Identifier", "name": "n"}]
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	tpl := expr.(*ast.Template)
	require.Len(t, tpl.Elements, 2)
	require.Equal(t, "n = ", tpl.Elements[0].Raw)
	require.True(t, tpl.Elements[1].Tail)
	require.Len(t, tpl.Exprs, 1)
}

func TestDecodeUnknownKind(t *testing.T) {
	input := `{"type": "WithStatement", "start": 3}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	unknown, ok := expr.(*ast.Unknown)
	require.True(t, ok)
	require.Equal(t, "WithStatement", unknown.TypeName)
	require.Equal(t, 3, unknown.From.Char)
}

func TestDecodePositionAtStartOfInput(t *testing.T) {
	// An offending node at offset zero, line one, column zero still
	// carries a reportable location.
	input := `{
	  "type": "Identifier",
	  "name": "loose",
	  "start": 0,
	  "loc": {"start": {"line": 1, "column": 0}}
	}`
	expr, err := Decode([]byte(input))
	require.NoError(t, err)
	require.True(t, expr.Pos().IsValid())

	_, err = certify.Certify(expr, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), `undefined variable "loose" (1:1)`)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	expr := &ast.Cond{
		Test: &ast.Binary{
			X:  &ast.Member{X: &ast.Ident{Name: "order"}, Prop: &ast.Ident{Name: "total"}},
			Op: ">",
			Y:  &ast.Literal{Value: float64(100), Raw: "100"},
		},
		Then: &ast.Literal{Value: "large", Raw: `"large"`},
		Else: &ast.Literal{Value: "small", Raw: `"small"`},
	}

	data, err := Encode(expr)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	cond, ok := back.(*ast.Cond)
	require.True(t, ok)
	require.Equal(t, expr.String(), cond.String())
}

func TestEncodeArrow(t *testing.T) {
	arrow := &ast.Arrow{
		Params: []ast.Expr{
			&ast.Default{
				Target: &ast.Ident{Name: "a"},
				Value:  &ast.Literal{Value: float64(1), Raw: "1"},
			},
		},
		Body: &ast.Ident{Name: "a"},
	}
	data, err := Encode(arrow)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, arrow.String(), back.String())
}

func TestEncodeRejectsBlockBody(t *testing.T) {
	_, err := Encode(&ast.Arrow{Body: &ast.Block{}})
	require.Error(t, err)
}

func TestEncodeRejectsUnsupported(t *testing.T) {
	_, err := Encode(&ast.Yield{})
	require.Error(t, err)
}
