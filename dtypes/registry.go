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
	"fmt"

	"github.com/apache/arrow-dtypes/internal/debug"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/extensions"
	"golang.org/x/exp/slices"
)

// Nullable integer descriptors, paired one to one with the Arrow primitive
// integers of the same width and signedness.
var (
	NullableInt8   = newNullableIntType(arrow.PrimitiveTypes.Int8)
	NullableInt16  = newNullableIntType(arrow.PrimitiveTypes.Int16)
	NullableInt32  = newNullableIntType(arrow.PrimitiveTypes.Int32)
	NullableInt64  = newNullableIntType(arrow.PrimitiveTypes.Int64)
	NullableUint8  = newNullableIntType(arrow.PrimitiveTypes.Uint8)
	NullableUint16 = newNullableIntType(arrow.PrimitiveTypes.Uint16)
	NullableUint32 = newNullableIntType(arrow.PrimitiveTypes.Uint32)
	NullableUint64 = newNullableIntType(arrow.PrimitiveTypes.Uint64)
)

var (
	// NullableBoolean is a bit-packed boolean with a missing-value marker.
	NullableBoolean = NewNullableBooleanType()
	// Bool8 is a boolean stored as one byte per value.
	Bool8 = extensions.NewBool8Type()

	Complex64  = newComplexType(64)
	Complex128 = newComplexType(128)
)

var (
	floatTypes = []arrow.DataType{
		arrow.FixedWidthTypes.Float16,
		arrow.PrimitiveTypes.Float32,
		arrow.PrimitiveTypes.Float64,
	}

	unsignedIntTypes = []arrow.DataType{
		arrow.PrimitiveTypes.Uint8,
		arrow.PrimitiveTypes.Uint16,
		arrow.PrimitiveTypes.Uint32,
		arrow.PrimitiveTypes.Uint64,
	}
	signedIntTypes = []arrow.DataType{
		arrow.PrimitiveTypes.Int8,
		arrow.PrimitiveTypes.Int16,
		arrow.PrimitiveTypes.Int32,
		arrow.PrimitiveTypes.Int64,
	}
	intTypes = concat(unsignedIntTypes, signedIntTypes)

	nullableUnsignedIntTypes = []arrow.DataType{
		NullableUint8, NullableUint16, NullableUint32, NullableUint64,
	}
	nullableSignedIntTypes = []arrow.DataType{
		NullableInt8, NullableInt16, NullableInt32, NullableInt64,
	}
	// same order as intTypes: nullableIntTypes[i] is the nullable form of intTypes[i]
	nullableIntTypes = concat(nullableUnsignedIntTypes, nullableSignedIntTypes)

	numericTypes = concat(intTypes, nullableIntTypes, floatTypes)

	booleanTypes = []arrow.DataType{
		arrow.FixedWidthTypes.Boolean,
		Bool8,
		NullableBoolean,
	}

	complexTypes = []arrow.DataType{Complex64, Complex128}
)

// Category sets. These are copies of the internal registries: modifying
// them has no effect on classification.
var (
	FloatTypes               = slices.Clone(floatTypes)
	UnsignedIntTypes         = slices.Clone(unsignedIntTypes)
	SignedIntTypes           = slices.Clone(signedIntTypes)
	IntTypes                 = slices.Clone(intTypes)
	NullableUnsignedIntTypes = slices.Clone(nullableUnsignedIntTypes)
	NullableSignedIntTypes   = slices.Clone(nullableSignedIntTypes)
	NullableIntTypes         = slices.Clone(nullableIntTypes)
	NumericTypes             = slices.Clone(numericTypes)
	BooleanTypes             = slices.Clone(booleanTypes)
	ComplexTypes             = slices.Clone(complexTypes)
)

// typesByName resolves the names accepted by LookupType.
var typesByName = buildTypesByName()

var nameAliases = map[string]string{
	"string":  "utf8",
	"boolean": "bool",
	"double":  "float64",
}

func concat(sets ...[]arrow.DataType) []arrow.DataType {
	var out []arrow.DataType
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func indexOf(set []arrow.DataType, dt arrow.DataType) int {
	return slices.IndexFunc(set, func(t arrow.DataType) bool { return arrow.TypeEqual(t, dt) })
}

func inSet(set []arrow.DataType, dt arrow.DataType) bool { return indexOf(set, dt) >= 0 }

func init() {
	exts := []arrow.ExtensionType{NullableBoolean, Complex64, Complex128}
	for _, dt := range nullableIntTypes {
		exts = append(exts, dt.(arrow.ExtensionType))
	}
	// newer arrow releases register bool8 themselves
	if arrow.GetExtensionType(Bool8.ExtensionName()) == nil {
		exts = append(exts, Bool8)
	}
	for _, ext := range exts {
		if err := arrow.RegisterExtensionType(ext); err != nil {
			panic(fmt.Errorf("dtypes: registering %s: %w", ext.ExtensionName(), err))
		}
		debug.Log("registered extension type " + ext.ExtensionName())
	}

	debug.Assert(len(intTypes) == len(nullableIntTypes), "dtypes: nullable integer mapping is not total")
	for i, dt := range nullableIntTypes {
		debug.Assert(arrow.TypeEqual(dt.(arrow.ExtensionType).StorageType(), intTypes[i]),
			func() string { return fmt.Sprintf("dtypes: %s is not paired with its storage type", dt) })
		debug.Assert(indexOf(nullableIntTypes, dt) == i, "dtypes: nullable integer mapping is not a bijection")
	}
}

func buildTypesByName() map[string]arrow.DataType {
	out := make(map[string]arrow.DataType)
	known := concat(numericTypes, booleanTypes, complexTypes, []arrow.DataType{
		arrow.Null,
		arrow.BinaryTypes.String,
		arrow.BinaryTypes.LargeString,
		arrow.BinaryTypes.StringView,
		arrow.BinaryTypes.Binary,
		arrow.BinaryTypes.LargeBinary,
		arrow.BinaryTypes.BinaryView,
		arrow.FixedWidthTypes.Date32,
		arrow.FixedWidthTypes.Date64,
	})
	for _, dt := range known {
		out[TypeName(dt)] = dt
	}
	for alias, name := range nameAliases {
		out[alias] = out[name]
	}
	return out
}

// TypeName returns the name under which LookupType resolves dt: the
// extension name for extension types and the Arrow type name otherwise.
func TypeName(dt arrow.DataType) string {
	switch dt := dt.(type) {
	case nil:
		return ""
	case arrow.ExtensionType:
		return dt.ExtensionName()
	default:
		return dt.Name()
	}
}

// LookupType resolves a type descriptor by name, e.g. "int32", "float16",
// "utf8" or "dtypes.nullable_uint8".
func LookupType(name string) (arrow.DataType, bool) {
	dt, ok := typesByName[name]
	return dt, ok
}

// TypeNames returns the names accepted by LookupType, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typesByName))
	for name := range typesByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
