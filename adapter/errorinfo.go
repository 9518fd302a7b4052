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

package adapter

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"dirpx.dev/sqlstate"
)

// Domain is the google.rpc.ErrorInfo domain of sqlstate errors.
const Domain = "sqlstate"

// Metadata keys of the ErrorInfo built by ErrorInfo.
const (
	MetaClass    = "class"
	MetaSubclass = "subclass"
	MetaCategory = "category"
)

// ErrorInfo builds the google.rpc.ErrorInfo describing st: the code as
// reason, Domain as domain, and class, category and (when present) subclass
// as metadata. grpcx and httpx both attach it, so gRPC and HTTP clients read
// the same detail.
func ErrorInfo(st sqlstate.State) *errdetails.ErrorInfo {
	info := &errdetails.ErrorInfo{
		Reason: st.String(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaClass:    string(st.Class()),
			MetaCategory: st.Category().String(),
		},
	}
	if sc, ok := st.Subclass(); ok {
		info.Metadata[MetaSubclass] = string(sc)
	}
	return info
}
