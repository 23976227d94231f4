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

package dtypes_test

import (
	"testing"

	"github.com/apache/arrow-dtypes/dtypes"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
)

var allTypes = []arrow.DataType{
	arrow.PrimitiveTypes.Int8, arrow.PrimitiveTypes.Uint64,
	dtypes.NullableInt32, dtypes.NullableUint16,
	arrow.FixedWidthTypes.Float16, arrow.PrimitiveTypes.Float64,
	arrow.FixedWidthTypes.Boolean, dtypes.Bool8, dtypes.NullableBoolean,
	dtypes.Complex128, arrow.BinaryTypes.String, arrow.BinaryTypes.Binary,
}

func TestInListEmpty(t *testing.T) {
	for _, dt := range allTypes {
		assert.False(t, dtypes.InList(dt, nil))
		assert.False(t, dtypes.InList(dt, dtypes.TypeList{}))
	}
}

func TestInListUnknownKeyword(t *testing.T) {
	list := dtypes.TypeList{dtypes.Keyword("bogus_keyword"), dtypes.Keyword("")}
	for _, dt := range allTypes {
		assert.NotPanics(t, func() { assert.False(t, dtypes.InList(dt, list)) })
	}
	assert.False(t, dtypes.Keyword("bogus_keyword").Known())
}

func TestInListNilEntriesIgnored(t *testing.T) {
	list := dtypes.TypeList{nil, dtypes.KeywordAnyFloat, nil}
	assert.True(t, dtypes.InList(arrow.PrimitiveTypes.Float32, list))
	assert.False(t, dtypes.InList(arrow.PrimitiveTypes.Int32, list))
	assert.Equal(t, "[<nil>, anyfloat, <nil>]", list.String())
}

func TestInListKeywords(t *testing.T) {
	tests := []struct {
		name     string
		dt       arrow.DataType
		list     dtypes.TypeList
		expected bool
	}{
		{"int32 anyint", arrow.PrimitiveTypes.Int32, dtypes.TypeList{dtypes.KeywordAnyInt}, true},
		{"int32 unsignedint", arrow.PrimitiveTypes.Int32, dtypes.TypeList{dtypes.KeywordUnsignedInt}, false},
		{"uint8 unsignedint or anyfloat", arrow.PrimitiveTypes.Uint8,
			dtypes.TypeList{dtypes.KeywordUnsignedInt, dtypes.KeywordAnyFloat}, true},
		{"float32 unsignedint or anyfloat", arrow.PrimitiveTypes.Float32,
			dtypes.TypeList{dtypes.KeywordUnsignedInt, dtypes.KeywordAnyFloat}, true},
		{"string unsignedint or anyfloat", arrow.BinaryTypes.String,
			dtypes.TypeList{dtypes.KeywordUnsignedInt, dtypes.KeywordAnyFloat}, false},
		{"int8 signedint", arrow.PrimitiveTypes.Int8, dtypes.TypeList{dtypes.KeywordSignedInt}, true},
		{"nullable int8 signedint", dtypes.NullableInt8, dtypes.TypeList{dtypes.KeywordSignedInt}, true},
		{"int64 numeric", arrow.PrimitiveTypes.Int64, dtypes.TypeList{dtypes.KeywordNumeric}, true},
		{"bool numeric", arrow.FixedWidthTypes.Boolean, dtypes.TypeList{dtypes.KeywordNumeric}, false},
		{"complex64 complex", dtypes.Complex64, dtypes.TypeList{dtypes.KeywordComplex}, true},
		{"bool8 anybool", dtypes.Bool8, dtypes.TypeList{dtypes.KeywordAnyBool}, true},
		{"float16 nullable", arrow.FixedWidthTypes.Float16, dtypes.TypeList{dtypes.KeywordNullable}, true},
		{"int16 nullable", arrow.PrimitiveTypes.Int16, dtypes.TypeList{dtypes.KeywordNullable}, false},
		{"int16 nonnullable", arrow.PrimitiveTypes.Int16, dtypes.TypeList{dtypes.KeywordNonNullable}, true},
		{"nullable uint16 nonnullable", dtypes.NullableUint16, dtypes.TypeList{dtypes.KeywordNonNullable}, false},
		{"nullable bool nonnullable", dtypes.NullableBoolean, dtypes.TypeList{dtypes.KeywordNonNullable}, true},
		{"utf8 object", arrow.BinaryTypes.String, dtypes.TypeList{dtypes.KeywordObject}, true},
		{"int32 object", arrow.PrimitiveTypes.Int32, dtypes.TypeList{dtypes.KeywordObject}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dtypes.InList(tt.dt, tt.list))
			assert.Equal(t, tt.expected, tt.list.Contains(tt.dt))
		})
	}
}

func TestInListLiterals(t *testing.T) {
	list := dtypes.TypeList{
		dtypes.Literal(arrow.PrimitiveTypes.Int32),
		dtypes.Literal(dtypes.NullableUint8),
		dtypes.Literal(&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.BinaryTypes.String}),
	}

	assert.True(t, dtypes.InList(arrow.PrimitiveTypes.Int32, list))
	assert.True(t, dtypes.InList(dtypes.NullableUint8, list))
	assert.True(t, dtypes.InList(arrow.BinaryTypes.String, list))
	assert.True(t, dtypes.InList(&arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Uint16, ValueType: arrow.PrimitiveTypes.Int32}, list))

	assert.False(t, dtypes.InList(arrow.PrimitiveTypes.Uint8, list))
	assert.False(t, dtypes.InList(dtypes.NullableInt32, list))
	assert.False(t, dtypes.InList(arrow.PrimitiveTypes.Int64, list))

	assert.Equal(t, "[int32, dtypes.nullable_uint8, utf8]", list.String())
}

func TestInListPredicates(t *testing.T) {
	assert.True(t, dtypes.InList(arrow.PrimitiveTypes.Float32, dtypes.TypeList{
		dtypes.Func(func(dt arrow.DataType) bool { return dtypes.IsFloat(dt) }),
	}))

	var seen []arrow.DataType
	spy := dtypes.NamedFunc("spy", func(dt arrow.DataType) bool {
		seen = append(seen, dt)
		return false
	})
	list := dtypes.TypeList{spy, dtypes.Func(dtypes.IsInt), spy}
	dict := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.PrimitiveTypes.Int16}

	assert.True(t, dtypes.InList(dict, list))
	// the first match stops the scan and predicates see the canonical type
	if assert.Len(t, seen, 1) {
		assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int16, seen[0]))
	}
	assert.Equal(t, "[spy, func, spy]", list.String())

	assert.False(t, dtypes.InList(arrow.PrimitiveTypes.Int8, dtypes.TypeList{dtypes.Func(nil)}))
}

func TestInListLiteralFastPath(t *testing.T) {
	calls := 0
	list := dtypes.TypeList{
		dtypes.Func(func(arrow.DataType) bool { calls++; return true }),
		dtypes.Literal(arrow.PrimitiveTypes.Int8),
	}

	assert.True(t, dtypes.InList(arrow.PrimitiveTypes.Int8, list))
	assert.Zero(t, calls)

	assert.True(t, dtypes.InList(arrow.PrimitiveTypes.Int16, list))
	assert.Equal(t, 1, calls)
}

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]dtypes.Keyword{dtypes.KeywordNumeric, dtypes.KeywordAnyInt, dtypes.KeywordSignedInt, dtypes.KeywordNullable},
		dtypes.Categories(dtypes.NullableInt32))
	assert.Equal(t,
		[]dtypes.Keyword{dtypes.KeywordNonNullable, dtypes.KeywordObject},
		dtypes.Categories(arrow.BinaryTypes.String))

	for _, k := range dtypes.Keywords {
		assert.True(t, k.Known(), k.String())
	}
}

func TestFilter(t *testing.T) {
	codec := dtypes.Filter{
		Allow: dtypes.TypeList{dtypes.KeywordNumeric, dtypes.KeywordAnyBool},
		Deny:  dtypes.TypeList{dtypes.KeywordNullable, dtypes.Literal(dtypes.Bool8)},
	}

	assert.True(t, codec.Accepts(arrow.PrimitiveTypes.Int32))
	assert.True(t, codec.Accepts(arrow.FixedWidthTypes.Boolean))
	assert.False(t, codec.Accepts(arrow.PrimitiveTypes.Float64))
	assert.False(t, codec.Accepts(dtypes.NullableInt32))
	assert.False(t, codec.Accepts(dtypes.Bool8))
	assert.False(t, codec.Accepts(arrow.BinaryTypes.String))

	var open dtypes.Filter
	for _, dt := range allTypes {
		assert.True(t, open.Accepts(dt))
	}

	denyOnly := dtypes.Filter{Deny: dtypes.TypeList{dtypes.KeywordObject}}
	assert.True(t, denyOnly.Accepts(dtypes.Complex64))
	assert.False(t, denyOnly.Accepts(arrow.BinaryTypes.Binary))
}
