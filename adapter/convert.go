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

// Package adapter converts sqlstate errors into the transport-neutral view
// types of package apis.
package adapter

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/apis"
)

// ToDescriptor converts an error together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the decoded code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e *sqlstate.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:       e.State.String(),
		Class:      string(e.State.Class()),
		Category:   e.State.Category().String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    message(e),
	}
	if sc, ok := e.State.Subclass(); ok {
		d.Subclass = string(sc)
	}
	return d
}

// ToView converts an error into a public ErrorView. This function performs
// no redaction; it exposes exactly what the error instance contains.
//
// Details are taken from the error's Details map (one Detail per key, in key
// order) followed by the details contributed by its causes (see Details).
func ToView(e *sqlstate.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:     e.State.String(),
		Category: e.State.Category().String(),
		Message:  message(e),
		Details:  Details(e),
	}
}

// View returns the public view of any error. An error in err's chain that
// implements apis.ViewProvider supplies its own view; otherwise the error is
// converted through sqlstate.AsError and ToView. It reports false when err
// carries neither.
func View(err error) (apis.ErrorView, bool) {
	if err == nil {
		return apis.ErrorView{}, false
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView(), true
	}
	if se, ok := sqlstate.AsError(err); ok {
		return ToView(se), true
	}
	return apis.ErrorView{}, false
}

// maxCauseDepth bounds the cause walk of Details.
const maxCauseDepth = 32

// Details flattens the error's details into view form. It returns nil when
// there is nothing to report.
//
// After the error's own Details map it walks the cause chain, following
// apis.CausedError and then Unwrap. Each cause that implements
// apis.DetailedError contributes its ErrorDetails; a cause that only
// implements apis.ViewProvider contributes the details of its view.
func Details(e *sqlstate.Error) []apis.Detail {
	if e == nil {
		return nil
	}
	var out []apis.Detail
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		out = append(out, apis.Detail{
			Type:  "extra",
			Field: k,
			Info:  map[string]string{"value": fmt.Sprint(e.Details[k])},
		})
	}
	cause := e.Cause
	for i := 0; cause != nil && i < maxCauseDepth; i++ {
		switch c := cause.(type) {
		case apis.DetailedError:
			out = append(out, c.ErrorDetails()...)
		case apis.ViewProvider:
			out = append(out, c.ErrorView().Details...)
		}
		cause = next(cause)
	}
	return out
}

// next returns the direct cause of err.
func next(err error) error {
	if ce, ok := err.(apis.CausedError); ok {
		return ce.Cause()
	}
	return errors.Unwrap(err)
}

func message(e *sqlstate.Error) string {
	if e.Message != "" {
		return e.Message
	}
	return e.State.Description()
}
