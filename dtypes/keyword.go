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
	"github.com/apache/arrow-go/v18/arrow"
	"golang.org/x/exp/slices"
)

// Keyword is a symbolic category usable as a TypeList criterion.
//
// A Keyword outside the set below is valid but never matches, so a
// misspelled keyword in an allow list excludes types instead of failing.
type Keyword string

const (
	KeywordNumeric     Keyword = "numeric"
	KeywordAnyInt      Keyword = "anyint"
	KeywordSignedInt   Keyword = "signedint"
	KeywordUnsignedInt Keyword = "unsignedint"
	KeywordComplex     Keyword = "complex"
	KeywordAnyFloat    Keyword = "anyfloat"
	KeywordAnyBool     Keyword = "anybool"
	KeywordNullable    Keyword = "nullable"
	KeywordNonNullable Keyword = "nonnullable"
	KeywordObject      Keyword = "object"
)

var keywordPredicates = map[Keyword]Predicate{
	KeywordNumeric:     IsNumeric,
	KeywordAnyInt:      IsInt,
	KeywordSignedInt:   IsSignedInt,
	KeywordUnsignedInt: IsUnsignedInt,
	KeywordComplex:     IsComplex,
	KeywordAnyFloat:    IsFloat,
	KeywordAnyBool:     IsBoolean,
	KeywordNullable:    IsNullable,
	KeywordNonNullable: func(dt arrow.DataType) bool { return !IsNullable(dt) },
	KeywordObject:      IsObject,
}

var keywords = []Keyword{
	KeywordNumeric, KeywordAnyInt, KeywordSignedInt, KeywordUnsignedInt,
	KeywordComplex, KeywordAnyFloat, KeywordAnyBool, KeywordNullable,
	KeywordNonNullable, KeywordObject,
}

// Keywords lists the recognized keywords in a stable order.
var Keywords = slices.Clone(keywords)

// Known reports whether k is one of the recognized keywords.
func (k Keyword) Known() bool {
	_, ok := keywordPredicates[k]
	return ok
}

func (k Keyword) Matches(dt arrow.DataType) bool {
	pred, ok := keywordPredicates[k]
	return ok && pred(dt)
}

func (k Keyword) String() string { return string(k) }

func (Keyword) criterion() {}

// Categories returns the recognized keywords matching dt, in the order of
// Keywords.
func Categories(dt arrow.DataType) []Keyword {
	var out []Keyword
	for _, k := range keywords {
		if k.Matches(dt) {
			out = append(out, k)
		}
	}
	return out
}
