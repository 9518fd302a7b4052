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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/apis"
	"dirpx.dev/sqlstate/internal/config"
	"dirpx.dev/sqlstate/mapper"
)

var (
	rulesPath     string
	statusExplain bool
)

// loadMapper builds the mapper from the defaults, adjusted by the rules file
// at path when path is not empty.
func loadMapper(path string) (apis.Mapper, error) {
	if path == "" {
		return mapper.New()
	}
	rules, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded rules", zap.String("path", path))
	return rules.Mapper()
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := sqlstate.ParseLenient(args[0])
	if err != nil {
		return fmt.Errorf("status %q: %w", args[0], err)
	}
	m, err := loadMapper(rulesPath)
	if err != nil {
		return err
	}

	if statusExplain {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(st))
		return err
	}
	s := m.Status(st)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s http=%d grpc=%s\n", st, s.HTTP, strings.ToUpper(s.GRPC.String()))
	return err
}
