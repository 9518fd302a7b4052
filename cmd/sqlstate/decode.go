/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/sqlstate"
)

var (
	decodeJSON    bool
	decodeLenient bool
)

// decoded is the JSON form of a decoded code.
type decoded struct {
	Input       string `json:"input"`
	Code        string `json:"code"`
	Class       string `json:"class"`
	ClassName   string `json:"class_name,omitempty"`
	Subclass    string `json:"subclass,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Known       bool   `json:"known"`
}

func describe(input string, st sqlstate.State) decoded {
	d := decoded{
		Input:       input,
		Code:        st.String(),
		Class:       st.Class().String(),
		ClassName:   st.Class().Name(),
		Category:    st.Category().String(),
		Description: st.Description(),
		Known:       st.Known(),
	}
	if sc, ok := st.Subclass(); ok {
		d.Subclass = sc.String()
	}
	return d
}

func runDecode(cmd *cobra.Command, args []string) error {
	parse := sqlstate.Parse
	if decodeLenient {
		parse = sqlstate.ParseLenient
	}

	out := make([]decoded, 0, len(args))
	for _, arg := range args {
		st, err := parse(arg)
		if err != nil {
			return fmt.Errorf("decode %q: %w", arg, err)
		}
		logger.Debug("decoded", zap.String("input", arg), zap.Stringer("state", st))
		out = append(out, describe(arg, st))
	}

	if decodeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCLASS\tSUBCLASS\tCATEGORY\tDESCRIPTION")
	for _, d := range out {
		sub := d.Subclass
		if sub == "" {
			sub = "-"
		}
		desc := d.Description
		if !d.Known {
			desc = "(unrecognized class)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Code, d.Class, sub, d.Category, desc)
	}
	return tw.Flush()
}
