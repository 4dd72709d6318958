// Package hclutil decodes HCL2 documents into generic maps and generates
// HCL2 from them.
//
// Decode mirrors the block shape used by generic HCL2 loaders: each block
// type maps to a slice of block bodies, with block labels nesting one map
// per label. Attribute expressions are evaluated as literals; expressions
// that need an evaluation context are kept as their source text.
package hclutil

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Decode parses an HCL2 document into a generic map.
func Decode(data string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(data), "input.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid hcl2 data: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("invalid hcl2 data: unexpected body type %T", file.Body)
	}
	return bodyToMap(body, []byte(data)), nil
}

func bodyToMap(body *hclsyntax.Body, src []byte) map[string]any {
	out := make(map[string]any)

	for name, attr := range body.Attributes {
		out[name] = exprToValue(attr.Expr, src)
	}

	for _, block := range body.Blocks {
		entry := bodyToMap(block.Body, src)

		// Labels nest innermost-first around the block body.
		nested := any(entry)
		for i := len(block.Labels) - 1; i >= 0; i-- {
			nested = map[string]any{block.Labels[i]: nested}
		}

		existing, _ := out[block.Type].([]any)
		out[block.Type] = append(existing, nested)
	}

	return out
}

func exprToValue(expr hclsyntax.Expression, src []byte) any {
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		// Not a literal; keep the raw expression text.
		rng := expr.Range()
		return strings.TrimSpace(string(rng.SliceBytes(src)))
	}
	return ctyToGo(val)
}

func ctyToGo(val cty.Value) any {
	if val.IsNull() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
		f, _ := bf.Float64()
		return f
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var list []any
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			list = append(list, ctyToGo(elem))
		}
		return list
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			m[k.AsString()] = ctyToGo(elem)
		}
		return m
	default:
		return val.GoString()
	}
}

// Encode renders a generic map as HCL2. Scalar and list values become
// attributes; map values become nested blocks. Keys are emitted in sorted
// order.
func Encode(m map[string]any) (string, error) {
	file := hclwrite.NewEmptyFile()
	if err := writeBody(file.Body(), m); err != nil {
		return "", err
	}
	return string(file.Bytes()), nil
}

func writeBody(body *hclwrite.Body, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := m[k].(type) {
		case map[string]any:
			block := body.AppendNewBlock(k, nil)
			if err := writeBody(block.Body(), v); err != nil {
				return err
			}
		default:
			val, err := goToCty(v)
			if err != nil {
				return fmt.Errorf("encoding attribute %q: %w", k, err)
			}
			body.SetAttributeValue(k, val)
		}
	}
	return nil
}

func goToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(val))
		for _, item := range val {
			elem, err := goToCty(item)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, elem)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, item := range val {
			elem, err := goToCty(item)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = elem
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}
