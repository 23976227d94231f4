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

// Package dtypes classifies and normalizes the scalar data types of columnar
// data and matches them against allow/deny lists.
//
// A type descriptor is an arrow.DataType. Integers come in two forms: the
// plain Arrow primitive integers, which cannot represent a missing value,
// and the nullable integer extension types defined here (NullableInt8 ...
// NullableUint64), which can. Floats are considered nullable since NaN
// encodes a missing value.
//
// Descriptors are classified by predicates (IsInt, IsFloat, IsNullable, ...)
// and matched against a TypeList, an ordered list of criteria combined by
// logical OR:
//
//	allow := dtypes.TypeList{
//		dtypes.KeywordAnyInt,
//		dtypes.Literal(arrow.PrimitiveTypes.Float32),
//		dtypes.Func(dtypes.IsBoolean),
//	}
//	if dtypes.InList(field.Type, allow) {
//		// ...
//	}
//
// The registries backing the predicates are built once when the package is
// initialized and never change afterwards, so every function in this package
// is safe for concurrent use.
package dtypes
