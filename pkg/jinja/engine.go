// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jinja

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/errors"
)

// clockKey carries the clock used by arrow_now through the render context.
const clockKey = "winkit_clock"

var (
	rawBlock = regexp.MustCompile(`(?s)\{%-?\s*raw\s*-?%\}(.*?)\{%-?\s*endraw\s*-?%\}`)
	comment  = regexp.MustCompile(`(?s)\{#.*?#\}`)
	markup   = regexp.MustCompile(`(?s)\{\{.*?\}\}|\{%.*?%\}`)
)

func init() {
	// A Caser is stateful, so each call builds its own.
	title := func(s string) string { return cases.Title(language.English).String(s) }
	must(pongo2.ReplaceFilter("title", stringFilter(title)))
	for name, fn := range map[string]func(string) string{
		"snake":       strcase.ToSnake,
		"camel":       strcase.ToCamel,
		"lower_camel": strcase.ToLowerCamel,
		"kebab":       strcase.ToKebab,
	} {
		must(pongo2.RegisterFilter(name, stringFilter(fn)))
	}
	must(pongo2.RegisterTag("arrow_now", parseArrowNow))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func stringFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

// IsTemplated reports whether s contains template markup.
func IsTemplated(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

// Render renders a Jinja2 template with data as the top-level context.
//
// Output is never HTML escaped. {% raw %} blocks are emitted verbatim and
// {# #} comments may span lines. A reference to an unknown attribute of a
// top-level mapping, such as cookiecutter.missing, is an error. The clock
// drives the arrow_now tag; nil uses the wall clock.
func Render(name, text string, data map[string]any, clk clock.PassiveClock) (string, error) {
	if clk == nil {
		clk = clock.RealClock{}
	}

	var raws []string
	text = rawBlock.ReplaceAllStringFunc(text, func(m string) string {
		raws = append(raws, rawBlock.FindStringSubmatch(m)[1])
		return rawPlaceholder(len(raws) - 1)
	})
	text = comment.ReplaceAllString(text, "")

	if err := checkAttributes(text, data); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "undefined template variable", err,
			map[string]any{"template": name})
	}

	tpl, err := pongo2.FromString("{% autoescape off %}" + text + "{% endautoescape %}")
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to parse template", err,
			map[string]any{"template": name})
	}

	ctx := make(pongo2.Context, len(data)+1)
	for k, v := range data {
		ctx[k] = v
	}
	ctx[clockKey] = clk

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to render template", err,
			map[string]any{"template": name})
	}

	for i, raw := range raws {
		out = strings.ReplaceAll(out, rawPlaceholder(i), raw)
	}
	return out, nil
}

func rawPlaceholder(i int) string {
	return fmt.Sprintf("\x00raw%d\x00", i)
}

// checkAttributes looks for root.attr references inside template markup and
// fails when root is a mapping in data that has no attr key.
func checkAttributes(text string, data map[string]any) error {
	for root, v := range data {
		keys, ok := mappingKeys(v)
		if !ok {
			continue
		}
		ref := regexp.MustCompile(`(?:^|[^.\w])` + regexp.QuoteMeta(root) + `\.([A-Za-z_]\w*)`)
		for _, m := range markup.FindAllString(text, -1) {
			for _, sub := range ref.FindAllStringSubmatch(m, -1) {
				if !keys[sub[1]] {
					return fmt.Errorf("'%s' has no attribute '%s'", root, sub[1])
				}
			}
		}
	}
	return nil
}

func mappingKeys(v any) (map[string]bool, bool) {
	keys := make(map[string]bool)
	switch m := v.(type) {
	case map[string]any:
		for k := range m {
			keys[k] = true
		}
	case map[string]string:
		for k := range m {
			keys[k] = true
		}
	default:
		return nil, false
	}
	return keys, true
}

// arrowNowNode renders {% arrow_now 'tz' [+|- 'shift'] [, format] %}.
type arrowNowNode struct {
	position *pongo2.Token
	tz       string
	op       string
	offset   string
	format   pongo2.IEvaluator
}

func parseArrowNow(_ *pongo2.Parser, start *pongo2.Token, args *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	node := &arrowNowNode{position: start}

	tz := args.MatchType(pongo2.TokenString)
	if tz == nil {
		return nil, args.Error("arrow_now expects a quoted timezone.", nil)
	}
	node.tz = tz.Val

	if op := args.MatchOne(pongo2.TokenSymbol, "+", "-"); op != nil {
		offset := args.MatchType(pongo2.TokenString)
		if offset == nil {
			return nil, args.Error("arrow_now expects a quoted shift after '"+op.Val+"'.", nil)
		}
		node.op, node.offset = op.Val, offset.Val
	}

	if args.Match(pongo2.TokenSymbol, ",") != nil {
		format, err := args.ParseExpression()
		if err != nil {
			return nil, err
		}
		node.format = format
	}

	if args.Remaining() > 0 {
		return nil, args.Error("Malformed arrow_now tag.", nil)
	}
	return node, nil
}

func (n *arrowNowNode) Execute(ctx *pongo2.ExecutionContext, w pongo2.TemplateWriter) *pongo2.Error {
	clk, ok := ctx.Public[clockKey].(clock.PassiveClock)
	if !ok {
		clk = clock.RealClock{}
	}

	var format []string
	if n.format != nil {
		v, perr := n.format.Evaluate(ctx)
		if perr != nil {
			return perr
		}
		format = append(format, v.String())
	}

	var out string
	var err error
	if n.op == "" {
		out, err = ArrowNow(clk.Now(), n.tz, format...)
	} else {
		out, err = ArrowShift(clk.Now(), n.tz, n.op, n.offset, format...)
	}
	if err != nil {
		return ctx.OrigError(err, n.position)
	}
	if _, err := w.WriteString(out); err != nil {
		return ctx.OrigError(err, n.position)
	}
	return nil
}
