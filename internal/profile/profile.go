package profile

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/demandpbrtscene/internal/options"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Load reads the profile at path and returns its argument tokens.
func Load(path string) ([]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(src, path)
}

// Parse expands profile source into argument tokens. filename is only used
// in diagnostics.
func Parse(src []byte, filename string) ([]string, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", filename, diags)
	}

	var args []string
	for _, attr := range sortedAttributes(attrs) {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", attr.Name, filename, diags)
		}
		tokens, err := attributeTokens(attr.Name, val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", attr.NameRange, err)
		}
		args = append(args, tokens...)
	}
	return args, nil
}

// sortedAttributes returns attrs in source order.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NameRange.Start.Byte < out[j].NameRange.Start.Byte
	})
	return out
}

// attributeTokens converts one attribute into the tokens a user would have
// typed for it.
func attributeTokens(name string, val cty.Value) ([]string, error) {
	if val.IsNull() || !val.IsKnown() {
		return nil, fmt.Errorf("attribute %q has no value", name)
	}

	flag, ok := options.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown option %q", name)
	}

	if flag.Kind == options.BoolFlag {
		var on bool
		if err := gocty.FromCtyValue(val, &on); err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		if !on {
			return nil, nil
		}
		return []string{"--" + name}, nil
	}

	value, err := flagValue(flag, val)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	if flag.Kind == options.NextFlag {
		return []string{"--" + name, value}, nil
	}
	return []string{"--" + name + "=" + value}, nil
}

// flagValue renders an attribute as the value text of flag. Compound options
// also accept a list of numbers, joined with the flag's separator.
func flagValue(flag options.Flag, val cty.Value) (string, error) {
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return stringValue(val)
	}
	if flag.Separator == "" {
		return "", fmt.Errorf("expected a single value, got %s", ty.FriendlyName())
	}

	var parts []string
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		if elem.IsNull() || !elem.IsKnown() || elem.Type() != cty.Number {
			return "", fmt.Errorf("list elements must be numbers")
		}
		parts = append(parts, elem.AsBigFloat().Text('f', -1))
	}
	return strings.Join(parts, flag.Separator), nil
}

// stringValue renders a string or whole number attribute as option text.
func stringValue(val cty.Value) (string, error) {
	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		var n int64
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	default:
		return "", fmt.Errorf("expected a string or number, got %s", val.Type().FriendlyName())
	}
}
