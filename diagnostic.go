// Copyright 2026 Blink Labs Software
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

package dcbor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatOption configures Format.
type FormatOption func(*formatConfig)

type formatConfig struct {
	tags *TagRegistry
}

// WithTagNames directs Format to render tagged items as NAME(content)
// using names registered in reg, falling back to TAG(content) for any tag
// reg does not recognize.
func WithTagNames(reg *TagRegistry) FormatOption {
	return func(c *formatConfig) {
		c.tags = reg
	}
}

// Format renders v in RFC 8949 §8 diagnostic notation. Absent
// WithTagNames, tagged items are rendered with names from the process-wide
// default registry, and numerically for tags it has no name for.
func Format(v Value, opts ...FormatOption) string {
	cfg := formatConfig{tags: defaultTagRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	var sb strings.Builder
	writeValue(&sb, v, &cfg)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, cfg *formatConfig) {
	switch v.Kind() {
	case KindUnsigned:
		fmt.Fprintf(sb, "%d", v.u)
	case KindNegative:
		bi, _ := v.BigInt()
		sb.WriteString(bi.String())
	case KindBytes:
		sb.WriteString("h'")
		for _, b := range v.b {
			fmt.Fprintf(sb, "%02x", b)
		}
		sb.WriteString("'")
	case KindText:
		sb.WriteString(strconv.Quote(v.s))
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e, cfg)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		first := true
		v.m.Range(func(k, val Value) bool {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			writeValue(sb, k, cfg)
			sb.WriteString(": ")
			writeValue(sb, val, cfg)
			return true
		})
		sb.WriteByte('}')
	case KindTagged:
		name := ""
		if cfg.tags != nil {
			if n, ok := cfg.tags.Name(v.tag); ok {
				name = n
			}
		}
		if name != "" {
			sb.WriteString(name)
		} else {
			fmt.Fprintf(sb, "%d", v.tag)
		}
		sb.WriteByte('(')
		writeValue(sb, *v.content, cfg)
		sb.WriteByte(')')
	case KindBool:
		if v.u != 0 {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNull:
		sb.WriteString("null")
	case KindFloat:
		sb.WriteString(formatFloat(v.f))
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
