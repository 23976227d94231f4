// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dtypes

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// Criterion is one entry of a TypeList. The implementations are Keyword and
// the values returned by Literal and Func.
type Criterion interface {
	Matches(dt arrow.DataType) bool
	String() string

	criterion()
}

type literal struct {
	typ arrow.DataType
}

// Literal returns a criterion matching exactly dt, compared in canonical
// form.
func Literal(dt arrow.DataType) Criterion { return literal{typ: Canonicalize(dt)} }

func (l literal) Matches(dt arrow.DataType) bool { return arrow.TypeEqual(l.typ, Canonicalize(dt)) }
func (literal) criterion()                       {}

func (l literal) String() string {
	if l.typ == nil {
		return "<nil>"
	}
	return TypeName(l.typ)
}

type funcCriterion struct {
	name string
	fn   Predicate
}

// Func returns a criterion delegating to fn. fn receives the canonical form
// of the matched type. A nil fn never matches.
func Func(fn Predicate) Criterion { return funcCriterion{name: "func", fn: fn} }

// NamedFunc is like Func with a name used by String.
func NamedFunc(name string, fn Predicate) Criterion { return funcCriterion{name: name, fn: fn} }

func (f funcCriterion) Matches(dt arrow.DataType) bool { return f.fn != nil && f.fn(dt) }
func (f funcCriterion) String() string                 { return f.name }
func (funcCriterion) criterion()                       {}

// TypeList is an allow or deny list of type criteria. A type is in the list
// if it matches any of its entries.
type TypeList []Criterion

// Contains is equivalent to InList(dt, l).
func (l TypeList) Contains(dt arrow.DataType) bool { return InList(dt, l) }

func (l TypeList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		if c == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

// InList reports whether dt matches any criterion of list. Literal entries
// are compared first; the remaining entries are then tried in order and the
// first match wins. Nil entries and unknown keywords never match, and an
// empty list contains nothing.
func InList(dt arrow.DataType, list TypeList) bool {
	dt = Canonicalize(dt)
	for _, c := range list {
		if lit, ok := c.(literal); ok && arrow.TypeEqual(lit.typ, dt) {
			return true
		}
	}

	for _, c := range list {
		switch c := c.(type) {
		case nil, literal:
		default:
			if c.Matches(dt) {
				return true
			}
		}
	}
	return false
}

// Filter combines an allow list and a deny list, as used by codecs to
// decide which column types they handle.
type Filter struct {
	// Allow lists the accepted types. An empty Allow accepts everything.
	Allow TypeList
	// Deny takes precedence over Allow.
	Deny TypeList
}

// Accepts reports whether dt is allowed and not denied.
func (f Filter) Accepts(dt arrow.DataType) bool {
	if len(f.Allow) > 0 && !InList(dt, f.Allow) {
		return false
	}
	return !InList(dt, f.Deny)
}
