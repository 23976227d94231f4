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

// Command dtype-inspect classifies the columns of Arrow IPC and Parquet
// files and checks them against allow/deny type lists.
//
// Examples:
//
//	$> dtype-inspect --allow=numeric --deny=dtypes.nullable_int8 ./testdata/primitives.arrow
//	./testdata/primitives.arrow:
//	  - bools: type=bool, categories=[anybool nonnullable], rejected
//	  - int32s: type=dtypes.nullable_int32, categories=[numeric anyint signedint nullable], accepted
//	  - ids: type=int64, categories=[numeric anyint signedint nonnullable], nullable=dtypes.nullable_int64, accepted
//	  - float64s: type=float64, categories=[numeric anyfloat nullable], accepted
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/apache/arrow-dtypes/dtypes"
	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const usage = `Dtype Inspector.
Usage:
  dtype-inspect -h | --help
  dtype-inspect [--allow=<list>] [--deny=<list>] [--json] <file>...
Options:
  -h --help        Show this screen.
  --allow=<list>   Comma separated keywords and type names to accept.
  --deny=<list>    Comma separated keywords and type names to reject.
  --json           Print the report as JSON.`

func main() {
	log.SetPrefix("dtype-inspect: ")
	log.SetFlags(0)

	args, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatal(err)
	}

	allow, _ := args["--allow"].(string)
	deny, _ := args["--deny"].(string)
	filter := dtypes.Filter{
		Allow: dtypes.ParseTypeList(allow),
		Deny:  dtypes.ParseTypeList(deny),
	}
	for _, list := range []dtypes.TypeList{filter.Allow, filter.Deny} {
		for _, c := range list {
			if k, ok := c.(dtypes.Keyword); ok && !k.Known() {
				log.Printf("unknown keyword %q matches nothing", k)
			}
		}
	}

	files, _ := args["<file>"].([]string)
	reports, err := inspectFiles(context.Background(), files, filter)
	if err != nil {
		log.Fatal(err)
	}

	asJSON, _ := args["--json"].(bool)
	if err := writeReports(os.Stdout, reports, asJSON); err != nil {
		log.Fatal(err)
	}
}

func inspectFiles(ctx context.Context, files []string, filter dtypes.Filter) ([]fileReport, error) {
	reports := make([]fileReport, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, fname := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := readSchema(fname)
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			reports[i] = inspectSchema(fname, sc, filter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeReports(w io.Writer, reports []fileReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		fmt.Fprintf(w, "%s:\n", r.File)
		for _, c := range r.Columns {
			fmt.Fprintf(w, "  - %s: type=%s, categories=[%s]", c.Name, c.Type, strings.Join(c.Categories, " "))
			if c.NullableEquivalent != "" {
				fmt.Fprintf(w, ", nullable=%s", c.NullableEquivalent)
			}
			if c.Accepted {
				fmt.Fprintln(w, ", accepted")
			} else {
				fmt.Fprintln(w, ", rejected")
			}
		}
	}
	return nil
}
