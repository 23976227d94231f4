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
	"reflect"
	"testing"

	"github.com/apache/arrow-dtypes/dtypes"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
)

type category uint16

const (
	catFloat category = 1 << iota
	catInt
	catSigned
	catUnsigned
	catNumeric
	catComplex
	catBoolean
	catObject
	catNullable
	catExtension
)

func TestPredicates(t *testing.T) {
	const (
		signed      = catInt | catSigned | catNumeric
		unsigned    = catInt | catUnsigned | catNumeric
		float       = catFloat | catNumeric | catNullable
		nullableInt = catNullable | catExtension
	)

	tests := []struct {
		dt       arrow.DataType
		expected category
	}{
		{arrow.PrimitiveTypes.Int8, signed},
		{arrow.PrimitiveTypes.Int16, signed},
		{arrow.PrimitiveTypes.Int32, signed},
		{arrow.PrimitiveTypes.Int64, signed},
		{arrow.PrimitiveTypes.Uint8, unsigned},
		{arrow.PrimitiveTypes.Uint16, unsigned},
		{arrow.PrimitiveTypes.Uint32, unsigned},
		{arrow.PrimitiveTypes.Uint64, unsigned},
		{dtypes.NullableInt8, signed | nullableInt},
		{dtypes.NullableInt64, signed | nullableInt},
		{dtypes.NullableUint8, unsigned | nullableInt},
		{dtypes.NullableUint32, unsigned | nullableInt},
		{arrow.FixedWidthTypes.Float16, float},
		{arrow.PrimitiveTypes.Float32, float},
		{arrow.PrimitiveTypes.Float64, float},
		{arrow.FixedWidthTypes.Boolean, catBoolean},
		{dtypes.Bool8, catBoolean | catExtension},
		{dtypes.NullableBoolean, catBoolean | catExtension},
		{dtypes.Complex64, catComplex | catExtension},
		{dtypes.Complex128, catComplex | catExtension},
		{arrow.BinaryTypes.String, catObject},
		{arrow.BinaryTypes.LargeBinary, catObject},
		{arrow.BinaryTypes.StringView, catObject},
		{arrow.ListOf(arrow.PrimitiveTypes.Int32), catObject},
		{arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int8}), catObject},
		{arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Float32), 0},
		{&arrow.FixedSizeBinaryType{ByteWidth: 4}, 0},
		{arrow.FixedWidthTypes.Date32, 0},
		{&arrow.Decimal128Type{Precision: 10, Scale: 2}, 0},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.BinaryTypes.String}, catObject},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: dtypes.NullableInt16}, signed | nullableInt},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			got := map[string]bool{
				"float":     dtypes.IsFloat(tt.dt),
				"int":       dtypes.IsInt(tt.dt),
				"signed":    dtypes.IsSignedInt(tt.dt),
				"unsigned":  dtypes.IsUnsignedInt(tt.dt),
				"numeric":   dtypes.IsNumeric(tt.dt),
				"complex":   dtypes.IsComplex(tt.dt),
				"boolean":   dtypes.IsBoolean(tt.dt),
				"object":    dtypes.IsObject(tt.dt),
				"nullable":  dtypes.IsNullable(tt.dt),
				"extension": dtypes.IsExtensionType(tt.dt),
			}
			want := map[string]bool{
				"float":     tt.expected&catFloat != 0,
				"int":       tt.expected&catInt != 0,
				"signed":    tt.expected&catSigned != 0,
				"unsigned":  tt.expected&catUnsigned != 0,
				"numeric":   tt.expected&catNumeric != 0,
				"complex":   tt.expected&catComplex != 0,
				"boolean":   tt.expected&catBoolean != 0,
				"object":    tt.expected&catObject != 0,
				"nullable":  tt.expected&catNullable != 0,
				"extension": tt.expected&catExtension != 0,
			}
			assert.Equal(t, want, got)
			assert.Equal(t, !want["object"], dtypes.IsFixedSize(tt.dt))
		})
	}
}

func TestNilIsUnclassified(t *testing.T) {
	preds := []dtypes.Predicate{
		dtypes.IsFloat, dtypes.IsInt, dtypes.IsSignedInt, dtypes.IsUnsignedInt,
		dtypes.IsNumeric, dtypes.IsComplex, dtypes.IsBoolean, dtypes.IsObject,
		dtypes.IsNullable, dtypes.IsFixedSize, dtypes.IsExtensionType,
	}
	for _, p := range preds {
		assert.False(t, p(nil))
	}
}

func TestIsFixedSize(t *testing.T) {
	assert.False(t, dtypes.IsFixedSize(arrow.BinaryTypes.String))
	assert.False(t, dtypes.IsFixedSize(arrow.BinaryTypes.Binary))
	for _, dt := range dtypes.NumericTypes {
		assert.Truef(t, dtypes.IsFixedSize(dt), "%s", dt)
	}
}

type unregisteredType struct {
	arrow.ExtensionBase
}

func (unregisteredType) ArrayType() reflect.Type                  { return nil }
func (unregisteredType) ExtensionName() string                    { return "dtypes.test.unregistered" }
func (unregisteredType) Serialize() string                        { return "" }
func (unregisteredType) ExtensionEquals(arrow.ExtensionType) bool { return false }
func (unregisteredType) Deserialize(arrow.DataType, string) (arrow.ExtensionType, error) {
	return nil, nil
}

func TestUnregisteredExtensionClassifiedByStorage(t *testing.T) {
	ext := &unregisteredType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Int32}}

	assert.False(t, dtypes.IsExtensionType(ext))
	assert.True(t, dtypes.IsInt(ext))
	assert.True(t, dtypes.IsSignedInt(ext))
	assert.False(t, dtypes.IsNullable(ext))
	assert.False(t, dtypes.IsBoolean(ext))
}
