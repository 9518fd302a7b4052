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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
)

// defaultHTTP defines the library's built-in HTTP mappings for classes whose
// meaning is clear enough to expose to a client. Every other class falls back
// to the default of its category.
var defaultHTTP = map[class.Class]int{
	// 5xx: the database or the path to it is the problem.
	class.ConnectionException:  http.StatusServiceUnavailable, // Connection lost or refused; retrying may help.
	class.RemoteDatabaseAccess: http.StatusBadGateway,         // Remote database failed behind this service.
	class.FeatureNotSupported:  http.StatusNotImplemented,     // The server does not implement the requested feature.

	// 4xx: the request itself is at fault.
	class.DataException:                    http.StatusBadRequest, // Bad value: overflow, invalid format, division by zero.
	class.SyntaxErrorOrAccessRuleViolation: http.StatusBadRequest, // Statement does not parse or refers to missing objects.
	class.WithCheckOptionViolation:         http.StatusBadRequest, // Row does not satisfy the view's check option.

	class.InvalidCatalogName: http.StatusNotFound, // Catalog (database) does not exist.
	class.InvalidSchemaName:  http.StatusNotFound, // Schema does not exist.

	// Conflicts and concurrency.
	class.IntegrityConstraintViolation: http.StatusConflict, // Unique, foreign key or check constraint violated.
	class.TransactionRollback:          http.StatusConflict, // Serialization failure or deadlock; retry the transaction.
	class.InvalidTransactionState:      http.StatusConflict, // Transaction is in the wrong state for the statement.

	// AuthN / AuthZ.
	class.InvalidAuthorizationSpecification: http.StatusUnauthorized, // Bad user name or password.
	class.InvalidGrantor:                    http.StatusForbidden,    // Grantor may not grant the privilege.
	class.InvalidRoleSpecification:          http.StatusForbidden,    // Role does not exist or may not be used.
}

// defaultGRPC defines the library's built-in gRPC mappings, aligned with the
// classes of defaultHTTP.
var defaultGRPC = map[class.Class]codes.Code{
	class.ConnectionException:  codes.Unavailable,
	class.RemoteDatabaseAccess: codes.Unavailable,
	class.FeatureNotSupported:  codes.Unimplemented,

	class.DataException:                    codes.InvalidArgument,
	class.SyntaxErrorOrAccessRuleViolation: codes.InvalidArgument,
	class.WithCheckOptionViolation:         codes.InvalidArgument,

	class.InvalidCatalogName: codes.NotFound,
	class.InvalidSchemaName:  codes.NotFound,

	class.IntegrityConstraintViolation: codes.FailedPrecondition,
	class.TransactionRollback:          codes.Aborted, // gRPC guidance: retry at a higher level.
	class.InvalidTransactionState:      codes.FailedPrecondition,

	class.InvalidAuthorizationSpecification: codes.Unauthenticated,
	class.InvalidGrantor:                    codes.PermissionDenied,
	class.InvalidRoleSpecification:          codes.PermissionDenied,
}

// defaultCategoryHTTP covers every category, so a state always resolves.
var defaultCategoryHTTP = map[category.Category]int{
	category.Success:   http.StatusOK,
	category.Warning:   http.StatusOK,
	category.NoData:    http.StatusNotFound,
	category.Exception: http.StatusInternalServerError,
}

var defaultCategoryGRPC = map[category.Category]codes.Code{
	category.Success:   codes.OK,
	category.Warning:   codes.OK,
	category.NoData:    codes.NotFound,
	category.Exception: codes.Internal,
}
