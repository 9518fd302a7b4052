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

package class

// Completion classes
//
// These are the only classes that do not denote an exception condition.
const (
	// Success is "successful completion". It defines no subclasses.
	Success Class = "00"

	// Warning is "warning": the statement completed, but the server reports
	// a condition the caller may want to inspect.
	Warning Class = "01"

	// NoData is "no data": the statement completed without producing or
	// affecting any row.
	NoData Class = "02"
)

// SQL/Foundation exception classes (0x)
const (
	// DynamicSQLError is "dynamic SQL error".
	DynamicSQLError Class = "07"

	// ConnectionException is "connection exception".
	ConnectionException Class = "08"

	// TriggeredActionException is "triggered action exception".
	TriggeredActionException Class = "09"

	// FeatureNotSupported is "feature not supported".
	FeatureNotSupported Class = "0A"

	// InvalidTargetTypeSpecification is "invalid target type specification".
	InvalidTargetTypeSpecification Class = "0D"

	// InvalidSchemaNameListSpecification is "invalid schema name list
	// specification".
	InvalidSchemaNameListSpecification Class = "0E"

	// LocatorException is "locator exception".
	LocatorException Class = "0F"

	// ResignalWhenHandlerNotActive is "resignal when handler not active"
	// (SQL/PSM).
	ResignalWhenHandlerNotActive Class = "0K"

	// InvalidGrantor is "invalid grantor".
	InvalidGrantor Class = "0L"

	// InvalidSQLInvokedProcedureReference is "invalid SQL-invoked procedure
	// reference".
	InvalidSQLInvokedProcedureReference Class = "0M"

	// SQLXMLMappingError is "SQL/XML mapping error".
	SQLXMLMappingError Class = "0N"

	// InvalidRoleSpecification is "invalid role specification".
	InvalidRoleSpecification Class = "0P"

	// InvalidTransformGroupNameSpecification is "invalid transform group name
	// specification".
	InvalidTransformGroupNameSpecification Class = "0S"

	// TargetTableDisagreesWithCursorSpecification is "target table disagrees
	// with cursor specification".
	TargetTableDisagreesWithCursorSpecification Class = "0T"

	// AttemptToAssignToNonUpdatableColumn is "attempt to assign to
	// non-updatable column".
	AttemptToAssignToNonUpdatableColumn Class = "0U"

	// AttemptToAssignToOrderingColumn is "attempt to assign to ordering
	// column".
	AttemptToAssignToOrderingColumn Class = "0V"

	// ProhibitedStatementDuringTriggerExecution is "prohibited statement
	// encountered during trigger execution".
	ProhibitedStatementDuringTriggerExecution Class = "0W"

	// InvalidForeignServerSpecification is "invalid foreign server
	// specification" (SQL/MED).
	InvalidForeignServerSpecification Class = "0X"

	// PassthroughSpecificCondition is "pass-through specific condition"
	// (SQL/MED).
	PassthroughSpecificCondition Class = "0Y"

	// DiagnosticsException is "diagnostics exception".
	DiagnosticsException Class = "0Z"
)

// SQL/Foundation exception classes (1x to 4x)
const (
	// XQueryError is "XQuery error" (SQL/XML).
	XQueryError Class = "10"

	// CaseNotFoundForCaseStatement is "case not found for case statement"
	// (SQL/PSM).
	CaseNotFoundForCaseStatement Class = "20"

	// CardinalityViolation is "cardinality violation".
	CardinalityViolation Class = "21"

	// DataException is "data exception".
	DataException Class = "22"

	// IntegrityConstraintViolation is "integrity constraint violation".
	IntegrityConstraintViolation Class = "23"

	// InvalidCursorState is "invalid cursor state".
	InvalidCursorState Class = "24"

	// InvalidTransactionState is "invalid transaction state".
	InvalidTransactionState Class = "25"

	// InvalidSQLStatementName is "invalid SQL statement name".
	InvalidSQLStatementName Class = "26"

	// TriggeredDataChangeViolation is "triggered data change violation".
	TriggeredDataChangeViolation Class = "27"

	// InvalidAuthorizationSpecification is "invalid authorization
	// specification".
	InvalidAuthorizationSpecification Class = "28"

	// DependentPrivilegeDescriptorsExist is "dependent privilege descriptors
	// still exist".
	DependentPrivilegeDescriptorsExist Class = "2B"

	// InvalidCharsetName is "invalid character set name".
	InvalidCharsetName Class = "2C"

	// InvalidTransactionTermination is "invalid transaction termination".
	InvalidTransactionTermination Class = "2D"

	// InvalidConnectionName is "invalid connection name".
	InvalidConnectionName Class = "2E"

	// SQLRoutineException is "SQL routine exception".
	SQLRoutineException Class = "2F"

	// InvalidCollationName is "invalid collation name".
	InvalidCollationName Class = "2H"

	// InvalidSQLStatementIdentifier is "invalid SQL statement identifier".
	InvalidSQLStatementIdentifier Class = "30"

	// InvalidSQLDescriptorName is "invalid SQL descriptor name".
	InvalidSQLDescriptorName Class = "33"

	// InvalidCursorName is "invalid cursor name".
	InvalidCursorName Class = "34"

	// InvalidConditionNumber is "invalid condition number".
	InvalidConditionNumber Class = "35"

	// CursorSensitivityException is "cursor sensitivity exception".
	CursorSensitivityException Class = "36"

	// ExternalRoutineException is "external routine exception".
	ExternalRoutineException Class = "38"

	// ExternalRoutineInvocationException is "external routine invocation
	// exception".
	ExternalRoutineInvocationException Class = "39"

	// SavepointException is "savepoint exception".
	SavepointException Class = "3B"

	// AmbiguousCursorName is "ambiguous cursor name".
	AmbiguousCursorName Class = "3C"

	// InvalidCatalogName is "invalid catalog name".
	InvalidCatalogName Class = "3D"

	// InvalidSchemaName is "invalid schema name".
	InvalidSchemaName Class = "3F"

	// TransactionRollback is "transaction rollback".
	TransactionRollback Class = "40"

	// SyntaxErrorOrAccessRuleViolation is "syntax error or access rule
	// violation".
	SyntaxErrorOrAccessRuleViolation Class = "42"

	// WithCheckOptionViolation is "with check option violation".
	WithCheckOptionViolation Class = "44"

	// UnhandledUserDefinedException is "unhandled user-defined exception"
	// (SQL/PSM).
	UnhandledUserDefinedException Class = "45"

	// OLBSpecificError is "OLB-specific error" (SQL/OLB and SQL/JRT).
	OLBSpecificError Class = "46"
)

// Implementation-defined ranges reserved by other parts of the standard
const (
	// DatalinkException is "datalink exception" (SQL/MED).
	DatalinkException Class = "HW"

	// FDWSpecificCondition is "FDW-specific condition" (SQL/MED).
	FDWSpecificCondition Class = "HV"

	// CLISpecificCondition is "CLI-specific condition" (SQL/CLI, ODBC).
	CLISpecificCondition Class = "HY"

	// RemoteDatabaseAccess is "remote database access" (ISO/IEC 9579).
	RemoteDatabaseAccess Class = "HZ"
)

type entry struct {
	class Class
	name  string
}

// table is the authoritative class catalog, in the order the standard lists
// the classes. Every constant above appears exactly once.
var table = [...]entry{
	{Success, "successful completion"},
	{Warning, "warning"},
	{NoData, "no data"},
	{DynamicSQLError, "dynamic SQL error"},
	{ConnectionException, "connection exception"},
	{TriggeredActionException, "triggered action exception"},
	{FeatureNotSupported, "feature not supported"},
	{InvalidTargetTypeSpecification, "invalid target type specification"},
	{InvalidSchemaNameListSpecification, "invalid schema name list specification"},
	{LocatorException, "locator exception"},
	{ResignalWhenHandlerNotActive, "resignal when handler not active"},
	{InvalidGrantor, "invalid grantor"},
	{InvalidSQLInvokedProcedureReference, "invalid SQL-invoked procedure reference"},
	{SQLXMLMappingError, "SQL/XML mapping error"},
	{InvalidRoleSpecification, "invalid role specification"},
	{InvalidTransformGroupNameSpecification, "invalid transform group name specification"},
	{TargetTableDisagreesWithCursorSpecification, "target table disagrees with cursor specification"},
	{AttemptToAssignToNonUpdatableColumn, "attempt to assign to non-updatable column"},
	{AttemptToAssignToOrderingColumn, "attempt to assign to ordering column"},
	{ProhibitedStatementDuringTriggerExecution, "prohibited statement encountered during trigger execution"},
	{InvalidForeignServerSpecification, "invalid foreign server specification"},
	{PassthroughSpecificCondition, "pass-through specific condition"},
	{DiagnosticsException, "diagnostics exception"},
	{XQueryError, "XQuery error"},
	{CaseNotFoundForCaseStatement, "case not found for case statement"},
	{CardinalityViolation, "cardinality violation"},
	{DataException, "data exception"},
	{IntegrityConstraintViolation, "integrity constraint violation"},
	{InvalidCursorState, "invalid cursor state"},
	{InvalidTransactionState, "invalid transaction state"},
	{InvalidSQLStatementName, "invalid SQL statement name"},
	{TriggeredDataChangeViolation, "triggered data change violation"},
	{InvalidAuthorizationSpecification, "invalid authorization specification"},
	{DependentPrivilegeDescriptorsExist, "dependent privilege descriptors still exist"},
	{InvalidCharsetName, "invalid character set name"},
	{InvalidTransactionTermination, "invalid transaction termination"},
	{InvalidConnectionName, "invalid connection name"},
	{SQLRoutineException, "SQL routine exception"},
	{InvalidCollationName, "invalid collation name"},
	{InvalidSQLStatementIdentifier, "invalid SQL statement identifier"},
	{InvalidSQLDescriptorName, "invalid SQL descriptor name"},
	{InvalidCursorName, "invalid cursor name"},
	{InvalidConditionNumber, "invalid condition number"},
	{CursorSensitivityException, "cursor sensitivity exception"},
	{ExternalRoutineException, "external routine exception"},
	{ExternalRoutineInvocationException, "external routine invocation exception"},
	{SavepointException, "savepoint exception"},
	{AmbiguousCursorName, "ambiguous cursor name"},
	{InvalidCatalogName, "invalid catalog name"},
	{InvalidSchemaName, "invalid schema name"},
	{TransactionRollback, "transaction rollback"},
	{SyntaxErrorOrAccessRuleViolation, "syntax error or access rule violation"},
	{WithCheckOptionViolation, "with check option violation"},
	{UnhandledUserDefinedException, "unhandled user-defined exception"},
	{OLBSpecificError, "OLB-specific error"},
	{DatalinkException, "datalink exception"},
	{FDWSpecificCondition, "FDW-specific condition"},
	{CLISpecificCondition, "CLI-specific condition"},
	{RemoteDatabaseAccess, "remote database access"},
}

// byClass indexes table by class code. It is built once and never mutated.
var byClass = func() map[Class]int {
	m := make(map[Class]int, len(table))
	for i, e := range table {
		if _, dup := m[e.class]; dup {
			panic("sqlstate: duplicate class " + string(e.class))
		}
		m[e.class] = i
	}
	return m
}()

// All returns every known class in catalog order.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Class {
	out := make([]Class, len(table))
	for i, e := range table {
		out[i] = e.class
	}
	return out
}
