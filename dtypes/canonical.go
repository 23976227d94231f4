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
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	// ErrNoNullableEquivalent is returned when a descriptor is neither a
	// float nor an integer and so has no nullable counterpart.
	ErrNoNullableEquivalent = fmt.Errorf("dtypes: %w: no nullable equivalent", arrow.ErrKey)
	// ErrNoNonNullableEquivalent is the inverse of ErrNoNullableEquivalent.
	ErrNoNonNullableEquivalent = fmt.Errorf("dtypes: %w: no non-nullable equivalent", arrow.ErrKey)
)

// Typed is implemented by values that wrap a type descriptor, such as
// arrays, chunked arrays and scalars.
type Typed interface {
	DataType() arrow.DataType
}

// Canonicalize collapses parametrized wrappers to the descriptor they
// carry: a dictionary becomes its value type and a run-end encoded type its
// encoded values type. Every other type is returned unchanged.
//
// Canonicalize is idempotent.
func Canonicalize(dt arrow.DataType) arrow.DataType {
	for {
		switch t := dt.(type) {
		case *arrow.DictionaryType:
			dt = t.ValueType
		case *arrow.RunEndEncodedType:
			dt = t.Encoded()
		default:
			return dt
		}
	}
}

// DescriptorOf returns the canonical descriptor of v, which must be an
// arrow.DataType, an arrow.Field (or pointer to one) or a Typed value.
func DescriptorOf(v any) (arrow.DataType, error) {
	var dt arrow.DataType
	switch v := v.(type) {
	case arrow.DataType:
		dt = v
	case arrow.Field:
		dt = v.Type
	case *arrow.Field:
		if v != nil {
			dt = v.Type
		}
	case Typed:
		dt = v.DataType()
	default:
		return nil, fmt.Errorf("%w: dtypes: no type descriptor for %T", arrow.ErrType, v)
	}

	if dt = Canonicalize(dt); dt == nil {
		return nil, fmt.Errorf("%w: dtypes: %T has no data type", arrow.ErrType, v)
	}
	return dt, nil
}

// FieldDescriptor returns the canonical descriptor of a schema column. A
// plain integer column that is declared nullable is reported as the
// matching nullable integer.
func FieldDescriptor(f arrow.Field) arrow.DataType {
	dt := Canonicalize(f.Type)
	if f.Nullable {
		if i := indexOf(intTypes, dt); i >= 0 {
			return nullableIntTypes[i]
		}
	}
	return dt
}

// NullableEquivalent returns the form of dt able to represent a missing
// value. Floats and nullable integers are returned unchanged, a plain
// integer is mapped to the nullable integer of the same width and sign.
//
// Any other descriptor, booleans and objects included, fails with an error
// matching ErrNoNullableEquivalent and arrow.ErrKey.
func NullableEquivalent(dt arrow.DataType) (arrow.DataType, error) {
	dt = Canonicalize(dt)
	switch {
	case inSet(floatTypes, dt), inSet(nullableIntTypes, dt):
		return dt, nil
	}

	if i := indexOf(intTypes, dt); i >= 0 {
		return nullableIntTypes[i], nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoNullableEquivalent, typeString(dt))
}

// NonNullableEquivalent is the inverse of NullableEquivalent: a nullable
// integer is mapped to its storage integer, plain integers and floats are
// returned unchanged.
func NonNullableEquivalent(dt arrow.DataType) (arrow.DataType, error) {
	dt = Canonicalize(dt)
	switch {
	case inSet(floatTypes, dt), inSet(intTypes, dt):
		return dt, nil
	}

	if i := indexOf(nullableIntTypes, dt); i >= 0 {
		return intTypes[i], nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoNonNullableEquivalent, typeString(dt))
}

// MustNullableEquivalent is like NullableEquivalent but panics on error.
func MustNullableEquivalent(dt arrow.DataType) arrow.DataType {
	out, err := NullableEquivalent(dt)
	if err != nil {
		panic(err)
	}
	return out
}

// IsLookupError reports whether err is a failed nullable/non-nullable lookup.
func IsLookupError(err error) bool {
	return errors.Is(err, ErrNoNullableEquivalent) || errors.Is(err, ErrNoNonNullableEquivalent)
}

func typeString(dt arrow.DataType) string {
	if dt == nil {
		return "<nil>"
	}
	return dt.String()
}
