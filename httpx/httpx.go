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

// Package httpx writes sqlstate errors as HTTP responses.
//
// The body is a google.rpc.Status rendered with protojson, so HTTP and gRPC
// clients see the same shape:
//
//	{
//	  "code": 10,
//	  "message": "could not serialize access",
//	  "details": [{
//	    "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	    "reason": "40001",
//	    "domain": "sqlstate",
//	    "metadata": {"category": "exception", "class": "40", "subclass": "001"}
//	  }]
//	}
package httpx

import (
	"net/http"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/adapter"
	"dirpx.dev/sqlstate/apis"
)

// Meta carries extra context that the HTTP layer can add on top of
// sqlstate.Error. All fields are optional and typically come from request
// context, headers or router-level logic.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int32
	// Fields become a google.rpc.BadRequest detail.
	Fields []*errdetails.BadRequest_FieldViolation
}

// Writer is a thin adapter that knows how to turn a sqlstate.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes err as a google.rpc.Status and writes it to rw. The HTTP
// status and the gRPC code in the body are resolved via the Mapper.
//
// No redaction or filtering is performed here: whatever is present in the
// error and Meta is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err *sqlstate.Error, meta Meta) {
	if err == nil {
		return
	}
	st := w.Mapper.Status(err.State)
	w.write(rw, st, Body(err, st.GRPC, meta), meta)
}

// WriteError writes any error. Errors carrying a SQLSTATE (see
// sqlstate.AsError) are written like Write does; all others become a plain
// 500 with an INTERNAL status and the error text as message.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	if se, ok := sqlstate.AsError(err); ok {
		w.Write(rw, se, meta)
		return
	}
	body := &statuspb.Status{Code: int32(codes.Internal), Message: err.Error()}
	w.write(rw, apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}, body, meta)
}

func (w Writer) write(rw http.ResponseWriter, st apis.Status, body proto.Message, meta Meta) {
	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// protojson renders Any details with their @type, which encoding/json
	// can not do.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(body)
	_, _ = rw.Write(b)
}

// Body builds the google.rpc.Status written for err. It is exported for
// callers that embed the status in their own envelopes.
func Body(err *sqlstate.Error, code codes.Code, meta Meta) *statuspb.Status {
	msg := err.Message
	if msg == "" {
		msg = err.State.Description()
	}
	details := []proto.Message{adapter.ErrorInfo(err.State)}
	if meta.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: meta.RequestID})
	}
	if meta.RetryAfterSeconds > 0 {
		details = append(details, &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		})
	}
	if len(meta.Fields) > 0 {
		details = append(details, &errdetails.BadRequest{FieldViolations: meta.Fields})
	}

	out := &statuspb.Status{Code: int32(code), Message: msg}
	for _, d := range details {
		a, aerr := anypb.New(d)
		if aerr != nil {
			continue
		}
		out.Details = append(out.Details, a)
	}
	return out
}
