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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
)

func runList(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if len(args) == 0 {
		fmt.Fprintln(tw, "CLASS\tCATEGORY\tSUBCLASSES\tNAME")
		for _, c := range class.All() {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c, category.Of(c), len(sqlstate.Subclasses(c)), c.Name())
		}
		return tw.Flush()
	}

	c, ok := class.Lookup(args[0])
	if !ok {
		return fmt.Errorf("list %q: %w", args[0], sqlstate.ErrUnknownClass)
	}
	fmt.Fprintln(tw, "CODE\tDESCRIPTION")
	base, err := sqlstate.Parse(string(c) + "000")
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "%s\t%s\n", base, base.Description())
	for _, st := range sqlstate.Subclasses(c) {
		fmt.Fprintf(tw, "%s\t%s\n", st, st.Description())
	}
	return tw.Flush()
}
