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
	"reflect"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/float16"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of Go types with a type descriptor.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex |
		~bool | ~string | ~[]byte | float16.Num
}

var float16Type = reflect.TypeOf(float16.Num{})

var kindMap = map[reflect.Kind]arrow.DataType{
	reflect.Bool:       arrow.FixedWidthTypes.Boolean,
	reflect.Int8:       arrow.PrimitiveTypes.Int8,
	reflect.Int16:      arrow.PrimitiveTypes.Int16,
	reflect.Int32:      arrow.PrimitiveTypes.Int32,
	reflect.Int64:      arrow.PrimitiveTypes.Int64,
	reflect.Uint8:      arrow.PrimitiveTypes.Uint8,
	reflect.Uint16:     arrow.PrimitiveTypes.Uint16,
	reflect.Uint32:     arrow.PrimitiveTypes.Uint32,
	reflect.Uint64:     arrow.PrimitiveTypes.Uint64,
	reflect.Float32:    arrow.PrimitiveTypes.Float32,
	reflect.Float64:    arrow.PrimitiveTypes.Float64,
	reflect.Complex64:  Complex64,
	reflect.Complex128: Complex128,
	reflect.String:     arrow.BinaryTypes.String,
	reflect.Slice:      arrow.BinaryTypes.Binary,
}

func init() {
	if strconv.IntSize == 32 {
		kindMap[reflect.Int] = arrow.PrimitiveTypes.Int32
		kindMap[reflect.Uint] = arrow.PrimitiveTypes.Uint32
		kindMap[reflect.Uintptr] = arrow.PrimitiveTypes.Uint32
	} else {
		kindMap[reflect.Int] = arrow.PrimitiveTypes.Int64
		kindMap[reflect.Uint] = arrow.PrimitiveTypes.Uint64
		kindMap[reflect.Uintptr] = arrow.PrimitiveTypes.Uint64
	}
}

// DescriptorFor returns the type descriptor of the Go type T, e.g.
// Int32 for int32 and Complex64 for complex64. Types defined on top of
// a scalar (type Celsius float32) map like their underlying type.
func DescriptorFor[T Scalar]() arrow.DataType {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ == float16Type {
		return arrow.FixedWidthTypes.Float16
	}
	return kindMap[typ.Kind()]
}

// NullableDescriptorFor returns the nullable equivalent of DescriptorFor[T].
func NullableDescriptorFor[T constraints.Integer | constraints.Float]() arrow.DataType {
	return MustNullableEquivalent(DescriptorFor[T]())
}
