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
)

// Predicate reports whether a type descriptor belongs to some category.
type Predicate func(arrow.DataType) bool

// classified returns the type whose id Arrow's type traits should inspect:
// the canonical form of dt with extension types unwrapped to their storage.
// The boolean and complex extensions are categories of their own and are
// kept as is.
func classified(dt arrow.DataType) arrow.DataType {
	dt = Canonicalize(dt)
	for {
		ext, ok := dt.(arrow.ExtensionType)
		if !ok || inSet(booleanTypes, dt) || inSet(complexTypes, dt) {
			return dt
		}
		dt = Canonicalize(ext.StorageType())
	}
}

func classifiedID(dt arrow.DataType) (arrow.Type, bool) {
	if dt = classified(dt); dt == nil {
		return arrow.NULL, false
	}
	return dt.ID(), true
}

// IsFloat reports whether dt is a 16, 32 or 64 bit float.
func IsFloat(dt arrow.DataType) bool {
	id, ok := classifiedID(dt)
	return ok && arrow.IsFloating(id)
}

// IsInt reports whether dt is an integer, nullable or not.
func IsInt(dt arrow.DataType) bool {
	id, ok := classifiedID(dt)
	return ok && arrow.IsInteger(id)
}

func IsSignedInt(dt arrow.DataType) bool {
	id, ok := classifiedID(dt)
	return ok && arrow.IsSignedInteger(id)
}

func IsUnsignedInt(dt arrow.DataType) bool {
	id, ok := classifiedID(dt)
	return ok && arrow.IsUnsignedInteger(id)
}

// IsNumeric reports whether dt is a float or an integer, nullable or not.
// These are the members of NumericTypes.
func IsNumeric(dt arrow.DataType) bool { return IsFloat(dt) || IsInt(dt) }

func IsComplex(dt arrow.DataType) bool { return inSet(complexTypes, Canonicalize(dt)) }

// IsBoolean reports whether dt is one of BooleanTypes: the native bit-packed
// boolean, Bool8 or NullableBoolean.
func IsBoolean(dt arrow.DataType) bool { return inSet(booleanTypes, Canonicalize(dt)) }

// IsObject reports whether dt is a variable-length type, the Arrow
// counterpart of an object column: strings, binaries and nested types other
// than fixed size lists.
func IsObject(dt arrow.DataType) bool {
	id, ok := classifiedID(dt)
	if !ok {
		return false
	}

	switch id {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW,
		arrow.BINARY, arrow.LARGE_BINARY, arrow.BINARY_VIEW,
		arrow.LIST, arrow.LARGE_LIST, arrow.LIST_VIEW, arrow.LARGE_LIST_VIEW,
		arrow.MAP, arrow.STRUCT, arrow.SPARSE_UNION, arrow.DENSE_UNION:
		return true
	}
	return false
}

// IsNullable reports whether dt can represent a missing value: the nullable
// integers and the floats.
//
// Booleans are not reported as nullable, NullableBoolean included.
func IsNullable(dt arrow.DataType) bool {
	dt = Canonicalize(dt)
	return inSet(nullableIntTypes, dt) || inSet(floatTypes, dt)
}

// IsFixedSize reports whether every value of dt has the same width in
// memory, which holds for everything but object types.
func IsFixedSize(dt arrow.DataType) bool { return dt != nil && !IsObject(dt) }

// IsExtensionType reports whether dt is an extension type known to Arrow's
// extension type registry.
func IsExtensionType(dt arrow.DataType) bool {
	ext, ok := Canonicalize(dt).(arrow.ExtensionType)
	return ok && arrow.GetExtensionType(ext.ExtensionName()) != nil
}
