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
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/goccy/go-json"
)

// ParseCriterion resolves a single TypeList entry. Recognized keywords take
// precedence, then type names known to LookupType. Anything else becomes an
// unknown Keyword, which never matches.
func ParseCriterion(s string) Criterion {
	s = strings.TrimSpace(s)
	if k := Keyword(s); k.Known() {
		return k
	}
	if dt, ok := LookupType(s); ok {
		return Literal(dt)
	}
	return Keyword(s)
}

// ParseTypeList parses a comma separated list such as
// "anyint, float32, dtypes.nullable_int8". Empty entries are skipped.
func ParseTypeList(s string) TypeList {
	var list TypeList
	for _, entry := range strings.Split(s, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		list = append(list, ParseCriterion(entry))
	}
	return list
}

// MarshalJSON encodes the list as an array of keyword and type names.
// Predicate entries, and literals whose name LookupType cannot resolve,
// have no textual form and fail with arrow.ErrNotImplemented.
func (l TypeList) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(l))
	for _, c := range l {
		switch c := c.(type) {
		case Keyword:
			names = append(names, string(c))
		case literal:
			name := TypeName(c.typ)
			if dt, ok := LookupType(name); !ok || !arrow.TypeEqual(dt, c.typ) {
				return nil, fmt.Errorf("%w: dtypes: type %s has no registered name", arrow.ErrNotImplemented, typeString(c.typ))
			}
			names = append(names, name)
		default:
			return nil, fmt.Errorf("%w: dtypes: cannot marshal criterion %v", arrow.ErrNotImplemented, c)
		}
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes an array of names, resolved with ParseCriterion.
func (l *TypeList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("dtypes: invalid type list: %w", err)
	}

	list := make(TypeList, 0, len(names))
	for _, name := range names {
		list = append(list, ParseCriterion(name))
	}
	*l = list
	return nil
}

var (
	_ json.Marshaler   = TypeList(nil)
	_ json.Unmarshaler = (*TypeList)(nil)
)
