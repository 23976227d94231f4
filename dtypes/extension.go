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
	"reflect"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

const extensionPrefix = "dtypes."

// NullableIntType is an integer type that carries a missing-value marker.
// Its storage is the plain Arrow integer of the same width and signedness.
type NullableIntType struct {
	arrow.ExtensionBase
}

func newNullableIntType(storage arrow.DataType) *NullableIntType {
	return &NullableIntType{ExtensionBase: arrow.ExtensionBase{Storage: storage}}
}

func (t *NullableIntType) ArrayType() reflect.Type { return reflect.TypeOf(NullableIntArray{}) }

func (t *NullableIntType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if !arrow.IsInteger(storageType.ID()) {
		return nil, fmt.Errorf("%w: invalid storage type for nullable integer: %s", arrow.ErrInvalid, storageType)
	}

	typ := newNullableIntType(storageType)
	if data != typ.Serialize() {
		return nil, fmt.Errorf("%w: type identifier did not match: '%s'", arrow.ErrInvalid, data)
	}
	return typ, nil
}

func (t *NullableIntType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *NullableIntType) ExtensionName() string {
	return extensionPrefix + "nullable_" + t.Storage.Name()
}

func (t *NullableIntType) Serialize() string { return t.ExtensionName() }

func (t *NullableIntType) String() string {
	return fmt.Sprintf("Nullable%s<storage=%s>", strings.ToUpper(t.Storage.Name()[:1])+t.Storage.Name()[1:], t.Storage)
}

// NullableIntArray holds the values of a NullableIntType column. Missing
// values are tracked by the validity bitmap of the storage array.
type NullableIntArray struct {
	array.ExtensionArrayBase
}

// NullableBooleanType is a boolean that carries a missing-value marker.
type NullableBooleanType struct {
	arrow.ExtensionBase
}

// NewNullableBooleanType returns a nullable boolean stored as native Arrow bits.
func NewNullableBooleanType() *NullableBooleanType {
	return &NullableBooleanType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.FixedWidthTypes.Boolean}}
}

func (t *NullableBooleanType) ArrayType() reflect.Type { return reflect.TypeOf(NullableBooleanArray{}) }

func (t *NullableBooleanType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != t.Serialize() {
		return nil, fmt.Errorf("%w: type identifier did not match: '%s'", arrow.ErrInvalid, data)
	}
	if !arrow.TypeEqual(storageType, arrow.FixedWidthTypes.Boolean) {
		return nil, fmt.Errorf("%w: invalid storage type for nullable boolean: %s", arrow.ErrInvalid, storageType)
	}
	return NewNullableBooleanType(), nil
}

func (t *NullableBooleanType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *NullableBooleanType) ExtensionName() string { return extensionPrefix + "nullable_bool" }

func (t *NullableBooleanType) Serialize() string { return t.ExtensionName() }

func (t *NullableBooleanType) String() string {
	return fmt.Sprintf("NullableBoolean<storage=%s>", t.Storage)
}

type NullableBooleanArray struct {
	array.ExtensionArrayBase
}

// ComplexType is a complex number made of two floats, real part first,
// stored as a fixed size binary of twice the float width.
type ComplexType struct {
	arrow.ExtensionBase
}

func newComplexType(bitWidth int) *ComplexType {
	return &ComplexType{ExtensionBase: arrow.ExtensionBase{
		Storage: &arrow.FixedSizeBinaryType{ByteWidth: bitWidth / 8}}}
}

// BitWidth returns the width of a whole value, i.e. 64 for complex64.
func (t *ComplexType) BitWidth() int {
	return t.Storage.(*arrow.FixedSizeBinaryType).BitWidth()
}

func (t *ComplexType) ArrayType() reflect.Type { return reflect.TypeOf(ComplexArray{}) }

func (t *ComplexType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	fsb, ok := storageType.(*arrow.FixedSizeBinaryType)
	if !ok || (fsb.ByteWidth != 8 && fsb.ByteWidth != 16) {
		return nil, fmt.Errorf("%w: invalid storage type for complex: %s", arrow.ErrInvalid, storageType)
	}

	typ := newComplexType(fsb.BitWidth())
	if data != typ.Serialize() {
		return nil, fmt.Errorf("%w: type identifier did not match: '%s'", arrow.ErrInvalid, data)
	}
	return typ, nil
}

func (t *ComplexType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *ComplexType) ExtensionName() string {
	return fmt.Sprintf("%scomplex%d", extensionPrefix, t.BitWidth())
}

func (t *ComplexType) Serialize() string { return t.ExtensionName() }

func (t *ComplexType) String() string {
	return fmt.Sprintf("Complex%d<storage=%s>", t.BitWidth(), t.Storage)
}

type ComplexArray struct {
	array.ExtensionArrayBase
}

var (
	_ arrow.ExtensionType  = (*NullableIntType)(nil)
	_ arrow.ExtensionType  = (*NullableBooleanType)(nil)
	_ arrow.ExtensionType  = (*ComplexType)(nil)
	_ array.ExtensionArray = (*NullableIntArray)(nil)
	_ array.ExtensionArray = (*NullableBooleanArray)(nil)
	_ array.ExtensionArray = (*ComplexArray)(nil)
)
