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

package sqlstate

import "dirpx.dev/sqlstate/class"

// Class-level states. Each one is the state with an absent subclass
// ("000" suffix) for the class of the same name.
var (
	Success                                     = classState(class.Success)
	Warning                                     = classState(class.Warning)
	NoData                                      = classState(class.NoData)
	DynamicSQLError                             = classState(class.DynamicSQLError)
	ConnectionException                         = classState(class.ConnectionException)
	TriggeredActionException                    = classState(class.TriggeredActionException)
	FeatureNotSupported                         = classState(class.FeatureNotSupported)
	InvalidTargetTypeSpecification              = classState(class.InvalidTargetTypeSpecification)
	InvalidSchemaNameListSpecification          = classState(class.InvalidSchemaNameListSpecification)
	LocatorException                            = classState(class.LocatorException)
	ResignalWhenHandlerNotActive                = classState(class.ResignalWhenHandlerNotActive)
	InvalidGrantor                              = classState(class.InvalidGrantor)
	InvalidSQLInvokedProcedureReference         = classState(class.InvalidSQLInvokedProcedureReference)
	SQLXMLMappingError                          = classState(class.SQLXMLMappingError)
	InvalidRoleSpecification                    = classState(class.InvalidRoleSpecification)
	InvalidTransformGroupNameSpecification      = classState(class.InvalidTransformGroupNameSpecification)
	TargetTableDisagreesWithCursorSpecification = classState(class.TargetTableDisagreesWithCursorSpecification)
	AttemptToAssignToNonUpdatableColumn         = classState(class.AttemptToAssignToNonUpdatableColumn)
	AttemptToAssignToOrderingColumn             = classState(class.AttemptToAssignToOrderingColumn)
	ProhibitedStatementDuringTriggerExecution   = classState(class.ProhibitedStatementDuringTriggerExecution)
	InvalidForeignServerSpecification           = classState(class.InvalidForeignServerSpecification)
	PassthroughSpecificCondition                = classState(class.PassthroughSpecificCondition)
	DiagnosticsException                        = classState(class.DiagnosticsException)
	XQueryError                                 = classState(class.XQueryError)
	CaseNotFoundForCaseStatement                = classState(class.CaseNotFoundForCaseStatement)
	CardinalityViolation                        = classState(class.CardinalityViolation)
	DataException                               = classState(class.DataException)
	IntegrityConstraintViolation                = classState(class.IntegrityConstraintViolation)
	InvalidCursorState                          = classState(class.InvalidCursorState)
	InvalidTransactionState                     = classState(class.InvalidTransactionState)
	InvalidSQLStatementName                     = classState(class.InvalidSQLStatementName)
	TriggeredDataChangeViolation                = classState(class.TriggeredDataChangeViolation)
	InvalidAuthorizationSpecification           = classState(class.InvalidAuthorizationSpecification)
	DependentPrivilegeDescriptorsExist          = classState(class.DependentPrivilegeDescriptorsExist)
	InvalidCharsetName                          = classState(class.InvalidCharsetName)
	InvalidTransactionTermination               = classState(class.InvalidTransactionTermination)
	InvalidConnectionName                       = classState(class.InvalidConnectionName)
	SQLRoutineException                         = classState(class.SQLRoutineException)
	InvalidCollationName                        = classState(class.InvalidCollationName)
	InvalidSQLStatementIdentifier               = classState(class.InvalidSQLStatementIdentifier)
	InvalidSQLDescriptorName                    = classState(class.InvalidSQLDescriptorName)
	InvalidCursorName                           = classState(class.InvalidCursorName)
	InvalidConditionNumber                      = classState(class.InvalidConditionNumber)
	CursorSensitivityException                  = classState(class.CursorSensitivityException)
	ExternalRoutineException                    = classState(class.ExternalRoutineException)
	ExternalRoutineInvocationException          = classState(class.ExternalRoutineInvocationException)
	SavepointException                          = classState(class.SavepointException)
	AmbiguousCursorName                         = classState(class.AmbiguousCursorName)
	InvalidCatalogName                          = classState(class.InvalidCatalogName)
	InvalidSchemaName                           = classState(class.InvalidSchemaName)
	TransactionRollback                         = classState(class.TransactionRollback)
	SyntaxErrorOrAccessRuleViolation            = classState(class.SyntaxErrorOrAccessRuleViolation)
	WithCheckOptionViolation                    = classState(class.WithCheckOptionViolation)
	UnhandledUserDefinedException               = classState(class.UnhandledUserDefinedException)
	OLBSpecificError                            = classState(class.OLBSpecificError)
	DatalinkException                           = classState(class.DatalinkException)
	FDWSpecificCondition                        = classState(class.FDWSpecificCondition)
	CLISpecificCondition                        = classState(class.CLISpecificCondition)
	RemoteDatabaseAccess                        = classState(class.RemoteDatabaseAccess)
)

// Class 01: warning.
var (
	WarningCursorOperationConflict                    = define(class.Warning, "001", "cursor operation conflict")
	WarningDisconnectError                            = define(class.Warning, "002", "disconnect error")
	WarningNullValueEliminatedInSetFunction           = define(class.Warning, "003", "null value eliminated in set function")
	WarningStringDataRightTruncation                  = define(class.Warning, "004", "string data, right truncation")
	WarningInsufficientItemDescriptorAreas            = define(class.Warning, "005", "insufficient item descriptor areas")
	WarningPrivilegeNotRevoked                        = define(class.Warning, "006", "privilege not revoked")
	WarningPrivilegeNotGranted                        = define(class.Warning, "007", "privilege not granted")
	WarningSearchConditionTooLongForInformationSchema = define(class.Warning, "009", "search condition too long for information schema")
	WarningQueryExpressionTooLongForInformationSchema = define(class.Warning, "00A", "query expression too long for information schema")
	WarningDefaultValueTooLongForInformationSchema    = define(class.Warning, "00B", "default value too long for information schema")
	WarningResultSetsReturned                         = define(class.Warning, "00C", "result sets returned")
	WarningAdditionalResultSetsReturned               = define(class.Warning, "00D", "additional result sets returned")
	WarningAttemptToReturnTooManyResultSets           = define(class.Warning, "00E", "attempt to return too many result sets")
	WarningStatementTooLongForInformationSchema       = define(class.Warning, "00F", "statement too long for information schema")
	WarningColumnCannotBeMapped                       = define(class.Warning, "010", "column cannot be mapped")
	WarningSQLJavaPathTooLongForInformationSchema     = define(class.Warning, "011", "SQL-Java path too long for information schema")
	WarningInvalidNumberOfConditions                  = define(class.Warning, "012", "invalid number of conditions")
	WarningArrayDataRightTruncation                   = define(class.Warning, "02F", "array data, right truncation")
)

// Class 02: no data.
var (
	NoDataNoAdditionalResultSetsReturned = define(class.NoData, "001", "no additional result sets returned")
)

// Class 07: dynamic SQL error.
var (
	DynamicSQLErrorUsingClauseDoesNotMatchDynamicParameterSpecifications = define(class.DynamicSQLError, "001", "using clause does not match dynamic parameter specifications")
	DynamicSQLErrorUsingClauseDoesNotMatchTargetSpecifications           = define(class.DynamicSQLError, "002", "using clause does not match target specifications")
	DynamicSQLErrorCursorSpecificationCannotBeExecuted                   = define(class.DynamicSQLError, "003", "cursor specification cannot be executed")
	DynamicSQLErrorUsingClauseRequiredForDynamicParameters               = define(class.DynamicSQLError, "004", "using clause required for dynamic parameters")
	DynamicSQLErrorPreparedStatementNotACursorSpecification              = define(class.DynamicSQLError, "005", "prepared statement not a cursor specification")
	DynamicSQLErrorRestrictedDataTypeAttributeViolation                  = define(class.DynamicSQLError, "006", "restricted data type attribute violation")
	DynamicSQLErrorUsingClauseRequiredForResultFields                    = define(class.DynamicSQLError, "007", "using clause required for result fields")
	DynamicSQLErrorInvalidDescriptorCount                                = define(class.DynamicSQLError, "008", "invalid descriptor count")
	DynamicSQLErrorInvalidDescriptorIndex                                = define(class.DynamicSQLError, "009", "invalid descriptor index")
	DynamicSQLErrorDataTypeTransformFunctionViolation                    = define(class.DynamicSQLError, "00B", "data type transform function violation")
	DynamicSQLErrorUndefinedDataValue                                    = define(class.DynamicSQLError, "00C", "undefined DATA value")
	DynamicSQLErrorInvalidDataTarget                                     = define(class.DynamicSQLError, "00D", "invalid DATA target")
	DynamicSQLErrorInvalidLevelValue                                     = define(class.DynamicSQLError, "00E", "invalid LEVEL value")
	DynamicSQLErrorInvalidDatetimeIntervalCode                           = define(class.DynamicSQLError, "00F", "invalid DATETIME_INTERVAL_CODE")
)

// Class 08: connection exception.
var (
	ConnectionExceptionSQLClientUnableToEstablishSQLConnection       = define(class.ConnectionException, "001", "SQL-client unable to establish SQL-connection")
	ConnectionExceptionConnectionNameInUse                           = define(class.ConnectionException, "002", "connection name in use")
	ConnectionExceptionConnectionDoesNotExist                        = define(class.ConnectionException, "003", "connection does not exist")
	ConnectionExceptionSQLServerRejectedEstablishmentOfSQLConnection = define(class.ConnectionException, "004", "SQL-server rejected establishment of SQL-connection")
	ConnectionExceptionConnectionFailure                             = define(class.ConnectionException, "006", "connection failure")
	ConnectionExceptionTransactionResolutionUnknown                  = define(class.ConnectionException, "007", "transaction resolution unknown")
)

// Class 0A: feature not supported.
var (
	FeatureNotSupportedMultipleServerTransactions = define(class.FeatureNotSupported, "001", "multiple server transactions")
)

// Class 0F: locator exception.
var (
	LocatorExceptionInvalidSpecification = define(class.LocatorException, "001", "invalid specification")
)

// Class 0N: SQL/XML mapping error.
var (
	SQLXMLMappingErrorUnmappableXMLName   = define(class.SQLXMLMappingError, "001", "unmappable XML name")
	SQLXMLMappingErrorInvalidXMLCharacter = define(class.SQLXMLMappingError, "002", "invalid XML character")
)

// Class 0W: prohibited statement encountered during trigger execution.
var (
	ProhibitedStatementDuringTriggerExecutionModifyTableModifiedByDataChangeDeltaTable = define(class.ProhibitedStatementDuringTriggerExecution, "001", "modify table modified by data change delta table")
)

// Class 0Y: pass-through specific condition.
var (
	PassthroughSpecificConditionInvalidCursorOption     = define(class.PassthroughSpecificCondition, "001", "invalid cursor option")
	PassthroughSpecificConditionInvalidCursorAllocation = define(class.PassthroughSpecificCondition, "002", "invalid cursor allocation")
)

// Class 0Z: diagnostics exception.
var (
	DiagnosticsExceptionMaximumNumberOfStackedDiagnosticsAreasExceeded = define(class.DiagnosticsException, "001", "maximum number of stacked diagnostics areas exceeded")
	DiagnosticsExceptionStackedDiagnosticsAccessedWithoutActiveHandler = define(class.DiagnosticsException, "002", "stacked diagnostics accessed without active handler")
)

// Class 22: data exception.
var (
	DataExceptionStringDataRightTruncation                       = define(class.DataException, "001", "string data, right truncation")
	DataExceptionNullValueNoIndicatorParameter                   = define(class.DataException, "002", "null value, no indicator parameter")
	DataExceptionNumericValueOutOfRange                          = define(class.DataException, "003", "numeric value out of range")
	DataExceptionNullValueNotAllowed                             = define(class.DataException, "004", "null value not allowed")
	DataExceptionErrorInAssignment                               = define(class.DataException, "005", "error in assignment")
	DataExceptionInvalidIntervalFormat                           = define(class.DataException, "006", "invalid interval format")
	DataExceptionInvalidDatetimeFormat                           = define(class.DataException, "007", "invalid datetime format")
	DataExceptionDatetimeFieldOverflow                           = define(class.DataException, "008", "datetime field overflow")
	DataExceptionInvalidTimeZoneDisplacementValue                = define(class.DataException, "009", "invalid time zone displacement value")
	DataExceptionEscapeCharacterConflict                         = define(class.DataException, "00B", "escape character conflict")
	DataExceptionInvalidUseOfEscapeCharacter                     = define(class.DataException, "00C", "invalid use of escape character")
	DataExceptionInvalidEscapeOctet                              = define(class.DataException, "00D", "invalid escape octet")
	DataExceptionNullValueInArrayTarget                          = define(class.DataException, "00E", "null value in array target")
	DataExceptionZeroLengthCharacterString                       = define(class.DataException, "00F", "zero-length character string")
	DataExceptionMostSpecificTypeMismatch                        = define(class.DataException, "00G", "most specific type mismatch")
	DataExceptionSequenceGeneratorLimitExceeded                  = define(class.DataException, "00H", "sequence generator limit exceeded")
	DataExceptionNonidenticalNotationsWithTheSameName            = define(class.DataException, "00J", "nonidentical notations with the same name")
	DataExceptionNonidenticalUnparsedEntitiesWithTheSameName     = define(class.DataException, "00K", "nonidentical unparsed entities with the same name")
	DataExceptionNotAnXMLDocument                                = define(class.DataException, "00L", "not an XML document")
	DataExceptionInvalidXMLDocument                              = define(class.DataException, "00M", "invalid XML document")
	DataExceptionInvalidXMLContent                               = define(class.DataException, "00N", "invalid XML content")
	DataExceptionIntervalValueOutOfRange                         = define(class.DataException, "00P", "interval value out of range")
	DataExceptionMultisetValueOverflow                           = define(class.DataException, "00Q", "multiset value overflow")
	DataExceptionInvalidComment                                  = define(class.DataException, "00S", "invalid comment")
	DataExceptionInvalidProcessingInstruction                    = define(class.DataException, "00T", "invalid processing instruction")
	DataExceptionNotAnXQueryDocumentNode                         = define(class.DataException, "00U", "not an XQuery document node")
	DataExceptionInvalidXQueryContextItem                        = define(class.DataException, "00V", "invalid XQuery context item")
	DataExceptionXQuerySerializationError                        = define(class.DataException, "00W", "XQuery serialization error")
	DataExceptionInvalidIndicatorParameterValue                  = define(class.DataException, "010", "invalid indicator parameter value")
	DataExceptionSubstringError                                  = define(class.DataException, "011", "substring error")
	DataExceptionDivisionByZero                                  = define(class.DataException, "012", "division by zero")
	DataExceptionInvalidPrecedingOrFollowingSizeInWindowFunction = define(class.DataException, "013", "invalid preceding or following size in window function")
	DataExceptionInvalidArgumentForNtileFunction                 = define(class.DataException, "014", "invalid argument for NTILE function")
	DataExceptionIntervalFieldOverflow                           = define(class.DataException, "015", "interval field overflow")
	DataExceptionInvalidArgumentForNthValueFunction              = define(class.DataException, "016", "invalid argument for NTH_VALUE function")
	DataExceptionInvalidDataSpecifiedForDatalink                 = define(class.DataException, "017", "invalid data specified for datalink")
	DataExceptionInvalidCharacterValueForCast                    = define(class.DataException, "018", "invalid character value for cast")
	DataExceptionInvalidEscapeCharacter                          = define(class.DataException, "019", "invalid escape character")
	DataExceptionNullArgumentPassedToDatalinkConstructor         = define(class.DataException, "01A", "null argument passed to datalink constructor")
	DataExceptionInvalidRegularExpression                        = define(class.DataException, "01B", "invalid regular expression")
	DataExceptionNullRowNotPermittedInTable                      = define(class.DataException, "01C", "null row not permitted in table")
	DataExceptionDatalinkValueExceedsMaximumLength               = define(class.DataException, "01D", "datalink value exceeds maximum length")
	DataExceptionInvalidArgumentForNaturalLogarithm              = define(class.DataException, "01E", "invalid argument for natural logarithm")
	DataExceptionInvalidArgumentForPowerFunction                 = define(class.DataException, "01F", "invalid argument for power function")
	DataExceptionInvalidArgumentForWidthBucketFunction           = define(class.DataException, "01G", "invalid argument for width bucket function")
	DataExceptionInvalidRowVersion                               = define(class.DataException, "01H", "invalid row version")
	DataExceptionXQuerySequenceCannotBeValidated                 = define(class.DataException, "01J", "XQuery sequence cannot be validated")
	DataExceptionXQueryDocumentNodeCannotBeValidated             = define(class.DataException, "01K", "XQuery document node cannot be validated")
	DataExceptionNoXMLSchemaFound                                = define(class.DataException, "01L", "no XML schema found")
	DataExceptionElementNamespaceNotDeclared                     = define(class.DataException, "01M", "element namespace not declared")
	DataExceptionGlobalElementNotDeclared                        = define(class.DataException, "01N", "global element not declared")
	DataExceptionNoXMLElementWithTheSpecifiedQName               = define(class.DataException, "01P", "no XML element with the specified QName")
	DataExceptionNoXMLElementWithTheSpecifiedNamespace           = define(class.DataException, "01Q", "no XML element with the specified namespace")
	DataExceptionValidationFailure                               = define(class.DataException, "01R", "validation failure")
	DataExceptionInvalidXQueryRegularExpression                  = define(class.DataException, "01S", "invalid XQuery regular expression")
	DataExceptionInvalidXQueryOptionFlag                         = define(class.DataException, "01T", "invalid XQuery option flag")
	DataExceptionAttemptToReplaceAZeroLengthString               = define(class.DataException, "01U", "attempt to replace a zero-length string")
	DataExceptionInvalidXQueryReplacementString                  = define(class.DataException, "01V", "invalid XQuery replacement string")
	DataExceptionInvalidRowCountInFetchFirstClause               = define(class.DataException, "01W", "invalid row count in fetch first clause")
	DataExceptionInvalidRowCountInResultOffsetClause             = define(class.DataException, "01X", "invalid row count in result offset clause")
	DataExceptionInvalidPeriodValue                              = define(class.DataException, "020", "invalid period value")
	DataExceptionCharacterNotInRepertoire                        = define(class.DataException, "021", "character not in repertoire")
	DataExceptionIndicatorOverflow                               = define(class.DataException, "022", "indicator overflow")
	DataExceptionInvalidParameterValue                           = define(class.DataException, "023", "invalid parameter value")
	DataExceptionUnterminatedCString                             = define(class.DataException, "024", "unterminated C string")
	DataExceptionInvalidEscapeSequence                           = define(class.DataException, "025", "invalid escape sequence")
	DataExceptionStringDataLengthMismatch                        = define(class.DataException, "026", "string data, length mismatch")
	DataExceptionTrimError                                       = define(class.DataException, "027", "trim error")
	DataExceptionNoncharacterInUCSString                         = define(class.DataException, "029", "noncharacter in UCS string")
	DataExceptionNullValueInFieldReference                       = define(class.DataException, "02A", "null value in field reference")
	DataExceptionNullValueSubstitutedForMutatorSubjectParameter  = define(class.DataException, "02D", "null value substituted for mutator subject parameter")
	DataExceptionArrayElementError                               = define(class.DataException, "02E", "array element error")
	DataExceptionArrayDataRightTruncation                        = define(class.DataException, "02F", "array data, right truncation")
	DataExceptionInvalidRepeatArgumentInASampleClause            = define(class.DataException, "02G", "invalid repeat argument in a sample clause")
	DataExceptionInvalidSampleSize                               = define(class.DataException, "02H", "invalid sample size")
	DataExceptionInvalidArgumentForRowPatternNavigationOperation = define(class.DataException, "02J", "invalid argument for row pattern navigation operation")
	DataExceptionSkipToNonExistentRow                            = define(class.DataException, "02K", "skip to non-existent row")
	DataExceptionSkipToFirstRowOfMatch                           = define(class.DataException, "02L", "skip to first row of match")
	DataExceptionDuplicateJSONObjectKeyValue                     = define(class.DataException, "030", "duplicate JSON object key value")
	DataExceptionInvalidArgumentForSQLJSONDatetimeFunction       = define(class.DataException, "031", "invalid argument for SQL/JSON datetime function")
	DataExceptionInvalidJSONText                                 = define(class.DataException, "032", "invalid JSON text")
	DataExceptionInvalidSQLJSONSubscript                         = define(class.DataException, "033", "invalid SQL/JSON subscript")
	DataExceptionMoreThanOneSQLJSONItem                          = define(class.DataException, "034", "more than one SQL/JSON item")
	DataExceptionNoSQLJSONItem                                   = define(class.DataException, "035", "no SQL/JSON item")
	DataExceptionNonNumericSQLJSONItem                           = define(class.DataException, "036", "non-numeric SQL/JSON item")
	DataExceptionNonUniqueKeysInAJSONObject                      = define(class.DataException, "037", "non-unique keys in a JSON object")
	DataExceptionSingletonSQLJSONItemRequired                    = define(class.DataException, "038", "singleton SQL/JSON item required")
	DataExceptionSQLJSONArrayNotFound                            = define(class.DataException, "039", "SQL/JSON array not found")
	DataExceptionSQLJSONMemberNotFound                           = define(class.DataException, "03A", "SQL/JSON member not found")
	DataExceptionSQLJSONNumberNotFound                           = define(class.DataException, "03B", "SQL/JSON number not found")
	DataExceptionSQLJSONObjectNotFound                           = define(class.DataException, "03C", "SQL/JSON object not found")
	DataExceptionTooManyJSONArrayElements                        = define(class.DataException, "03D", "too many JSON array elements")
	DataExceptionTooManyJSONObjectMembers                        = define(class.DataException, "03E", "too many JSON object members")
	DataExceptionSQLJSONScalarRequired                           = define(class.DataException, "03F", "SQL/JSON scalar required")
)

// Class 23: integrity constraint violation.
var (
	IntegrityConstraintViolationRestrictViolation = define(class.IntegrityConstraintViolation, "001", "restrict violation")
)

// Class 25: invalid transaction state.
var (
	InvalidTransactionStateActiveSQLTransaction                            = define(class.InvalidTransactionState, "001", "active SQL-transaction")
	InvalidTransactionStateBranchTransactionAlreadyActive                  = define(class.InvalidTransactionState, "002", "branch transaction already active")
	InvalidTransactionStateInappropriateAccessModeForBranchTransaction     = define(class.InvalidTransactionState, "003", "inappropriate access mode for branch transaction")
	InvalidTransactionStateInappropriateIsolationLevelForBranchTransaction = define(class.InvalidTransactionState, "004", "inappropriate isolation level for branch transaction")
	InvalidTransactionStateNoActiveSQLTransactionForBranchTransaction      = define(class.InvalidTransactionState, "005", "no active SQL-transaction for branch transaction")
	InvalidTransactionStateReadOnlySQLTransaction                          = define(class.InvalidTransactionState, "006", "read-only SQL-transaction")
	InvalidTransactionStateSchemaAndDataStatementMixingNotSupported        = define(class.InvalidTransactionState, "007", "schema and data statement mixing not supported")
	InvalidTransactionStateHeldCursorRequiresSameIsolationLevel            = define(class.InvalidTransactionState, "008", "held cursor requires same isolation level")
)

// Class 27: triggered data change violation.
var (
	TriggeredDataChangeViolationModifyTableModifiedByDataChangeDeltaTable = define(class.TriggeredDataChangeViolation, "001", "modify table modified by data change delta table")
)

// Class 2F: SQL routine exception.
var (
	SQLRoutineExceptionModifyingSQLDataNotPermitted      = define(class.SQLRoutineException, "002", "modifying SQL-data not permitted")
	SQLRoutineExceptionProhibitedSQLStatementAttempted   = define(class.SQLRoutineException, "003", "prohibited SQL-statement attempted")
	SQLRoutineExceptionReadingSQLDataNotPermitted        = define(class.SQLRoutineException, "004", "reading SQL-data not permitted")
	SQLRoutineExceptionFunctionExecutedNoReturnStatement = define(class.SQLRoutineException, "005", "function executed no return statement")
)

// Class 36: cursor sensitivity exception.
var (
	CursorSensitivityExceptionRequestRejected = define(class.CursorSensitivityException, "001", "request rejected")
	CursorSensitivityExceptionRequestFailed   = define(class.CursorSensitivityException, "002", "request failed")
)

// Class 38: external routine exception.
var (
	ExternalRoutineExceptionContainingSQLNotPermitted       = define(class.ExternalRoutineException, "001", "containing SQL not permitted")
	ExternalRoutineExceptionModifyingSQLDataNotPermitted    = define(class.ExternalRoutineException, "002", "modifying SQL-data not permitted")
	ExternalRoutineExceptionProhibitedSQLStatementAttempted = define(class.ExternalRoutineException, "003", "prohibited SQL-statement attempted")
	ExternalRoutineExceptionReadingSQLDataNotPermitted      = define(class.ExternalRoutineException, "004", "reading SQL-data not permitted")
)

// Class 39: external routine invocation exception.
var (
	ExternalRoutineInvocationExceptionNullValueNotAllowed = define(class.ExternalRoutineInvocationException, "004", "null value not allowed")
)

// Class 3B: savepoint exception.
var (
	SavepointExceptionInvalidSpecification = define(class.SavepointException, "001", "invalid specification")
	SavepointExceptionTooMany              = define(class.SavepointException, "002", "too many")
)

// Class 40: transaction rollback.
var (
	TransactionRollbackSerializationFailure         = define(class.TransactionRollback, "001", "serialization failure")
	TransactionRollbackIntegrityConstraintViolation = define(class.TransactionRollback, "002", "integrity constraint violation")
	TransactionRollbackStatementCompletionUnknown   = define(class.TransactionRollback, "003", "statement completion unknown")
	TransactionRollbackTriggeredActionException     = define(class.TransactionRollback, "004", "triggered action exception")
)

// Class 46: OLB-specific error.
var (
	OLBSpecificErrorInvalidURL                     = define(class.OLBSpecificError, "001", "invalid URL")
	OLBSpecificErrorInvalidJARName                 = define(class.OLBSpecificError, "002", "invalid JAR name")
	OLBSpecificErrorInvalidClassDeletion           = define(class.OLBSpecificError, "003", "invalid class deletion")
	OLBSpecificErrorInvalidReplacement             = define(class.OLBSpecificError, "005", "invalid replacement")
	OLBSpecificErrorAttemptToReplaceUninstalledJAR = define(class.OLBSpecificError, "00A", "attempt to replace uninstalled JAR")
	OLBSpecificErrorAttemptToRemoveUninstalledJAR  = define(class.OLBSpecificError, "00B", "attempt to remove uninstalled JAR")
	OLBSpecificErrorInvalidJARRemoval              = define(class.OLBSpecificError, "00C", "invalid JAR removal")
	OLBSpecificErrorInvalidPath                    = define(class.OLBSpecificError, "00D", "invalid path")
	OLBSpecificErrorSelfReferencingPath            = define(class.OLBSpecificError, "00E", "self-referencing path")
	OLBSpecificErrorInvalidJARNameInPath           = define(class.OLBSpecificError, "102", "invalid JAR name in path")
	OLBSpecificErrorUnresolvedClassName            = define(class.OLBSpecificError, "103", "unresolved class name")
	OLBSpecificErrorUnsupportedFeature             = define(class.OLBSpecificError, "110", "unsupported feature")
	OLBSpecificErrorInvalidClassDeclaration        = define(class.OLBSpecificError, "120", "invalid class declaration")
	OLBSpecificErrorInvalidColumnName              = define(class.OLBSpecificError, "121", "invalid column name")
	OLBSpecificErrorInvalidNumberOfColumns         = define(class.OLBSpecificError, "122", "invalid number of columns")
	OLBSpecificErrorInvalidProfileState            = define(class.OLBSpecificError, "130", "invalid profile state")
)

// Class HW: datalink exception.
var (
	DatalinkExceptionExternalFileNotLinked           = define(class.DatalinkException, "001", "external file not linked")
	DatalinkExceptionExternalFileAlreadyLinked       = define(class.DatalinkException, "002", "external file already linked")
	DatalinkExceptionReferencedFileDoesNotExist      = define(class.DatalinkException, "003", "referenced file does not exist")
	DatalinkExceptionInvalidWriteToken               = define(class.DatalinkException, "004", "invalid write token")
	DatalinkExceptionInvalidDatalinkConstruction     = define(class.DatalinkException, "005", "invalid datalink construction")
	DatalinkExceptionInvalidWritePermissionForUpdate = define(class.DatalinkException, "006", "invalid write permission for update")
	DatalinkExceptionReferencedFileNotValid          = define(class.DatalinkException, "007", "referenced file not valid")
)

// Class HV: FDW-specific condition.
var (
	FDWSpecificConditionMemoryAllocationError             = define(class.FDWSpecificCondition, "001", "memory allocation error")
	FDWSpecificConditionDynamicParameterValueNeeded       = define(class.FDWSpecificCondition, "002", "dynamic parameter value needed")
	FDWSpecificConditionInvalidDataType                   = define(class.FDWSpecificCondition, "004", "invalid data type")
	FDWSpecificConditionColumnNameNotFound                = define(class.FDWSpecificCondition, "005", "column name not found")
	FDWSpecificConditionInvalidDataTypeDescriptors        = define(class.FDWSpecificCondition, "006", "invalid data type descriptors")
	FDWSpecificConditionInvalidColumnName                 = define(class.FDWSpecificCondition, "007", "invalid column name")
	FDWSpecificConditionInvalidColumnNumber               = define(class.FDWSpecificCondition, "008", "invalid column number")
	FDWSpecificConditionInvalidUseOfNullPointer           = define(class.FDWSpecificCondition, "009", "invalid use of null pointer")
	FDWSpecificConditionInvalidStringFormat               = define(class.FDWSpecificCondition, "00A", "invalid string format")
	FDWSpecificConditionInvalidHandle                     = define(class.FDWSpecificCondition, "00B", "invalid handle")
	FDWSpecificConditionInvalidOptionIndex                = define(class.FDWSpecificCondition, "00C", "invalid option index")
	FDWSpecificConditionInvalidOptionName                 = define(class.FDWSpecificCondition, "00D", "invalid option name")
	FDWSpecificConditionOptionNameNotFound                = define(class.FDWSpecificCondition, "00J", "option name not found")
	FDWSpecificConditionReplyHandle                       = define(class.FDWSpecificCondition, "00K", "reply handle")
	FDWSpecificConditionUnableToCreateExecution           = define(class.FDWSpecificCondition, "00L", "unable to create execution")
	FDWSpecificConditionUnableToCreateReply               = define(class.FDWSpecificCondition, "00M", "unable to create reply")
	FDWSpecificConditionUnableToEstablishConnection       = define(class.FDWSpecificCondition, "00N", "unable to establish connection")
	FDWSpecificConditionNoSchemas                         = define(class.FDWSpecificCondition, "00P", "no schemas")
	FDWSpecificConditionSchemaNotFound                    = define(class.FDWSpecificCondition, "00Q", "schema not found")
	FDWSpecificConditionTableNotFound                     = define(class.FDWSpecificCondition, "00R", "table not found")
	FDWSpecificConditionFunctionSequenceError             = define(class.FDWSpecificCondition, "010", "function sequence error")
	FDWSpecificConditionLimitOnNumberOfHandlesExceeded    = define(class.FDWSpecificCondition, "014", "limit on number of handles exceeded")
	FDWSpecificConditionInconsistentDescriptorInformation = define(class.FDWSpecificCondition, "021", "inconsistent descriptor information")
	FDWSpecificConditionInvalidAttributeValue             = define(class.FDWSpecificCondition, "024", "invalid attribute value")
	FDWSpecificConditionInvalidStringLengthOrBufferLength = define(class.FDWSpecificCondition, "090", "invalid string length or buffer length")
	FDWSpecificConditionInvalidDescriptorFieldIdentifier  = define(class.FDWSpecificCondition, "091", "invalid descriptor field identifier")
)

// Class HY: CLI-specific condition.
var (
	CLISpecificConditionMemoryAllocationError                              = define(class.CLISpecificCondition, "001", "memory allocation error")
	CLISpecificConditionInvalidDataTypeInApplicationDescriptor             = define(class.CLISpecificCondition, "003", "invalid data type in application descriptor")
	CLISpecificConditionInvalidDataType                                    = define(class.CLISpecificCondition, "004", "invalid data type")
	CLISpecificConditionAssociatedStatementIsNotPrepared                   = define(class.CLISpecificCondition, "007", "associated statement is not prepared")
	CLISpecificConditionOperationCanceled                                  = define(class.CLISpecificCondition, "008", "operation canceled")
	CLISpecificConditionInvalidUseOfNullPointer                            = define(class.CLISpecificCondition, "009", "invalid use of null pointer")
	CLISpecificConditionFunctionSequenceError                              = define(class.CLISpecificCondition, "010", "function sequence error")
	CLISpecificConditionAttributeCannotBeSetNow                            = define(class.CLISpecificCondition, "011", "attribute cannot be set now")
	CLISpecificConditionInvalidTransactionOperationCode                    = define(class.CLISpecificCondition, "012", "invalid transaction operation code")
	CLISpecificConditionMemoryManagementError                              = define(class.CLISpecificCondition, "013", "memory management error")
	CLISpecificConditionLimitOnNumberOfHandlesExceeded                     = define(class.CLISpecificCondition, "014", "limit on number of handles exceeded")
	CLISpecificConditionInvalidUseOfAutomaticallyAllocatedDescriptorHandle = define(class.CLISpecificCondition, "017", "invalid use of automatically-allocated descriptor handle")
	CLISpecificConditionServerDeclinedTheCancellationRequest               = define(class.CLISpecificCondition, "018", "server declined the cancellation request")
	CLISpecificConditionNonStringDataCannotBeSentInPieces                  = define(class.CLISpecificCondition, "019", "non-string data cannot be sent in pieces")
	CLISpecificConditionAttemptToConcatenateANullValue                     = define(class.CLISpecificCondition, "020", "attempt to concatenate a null value")
	CLISpecificConditionInconsistentDescriptorInformation                  = define(class.CLISpecificCondition, "021", "inconsistent descriptor information")
	CLISpecificConditionInvalidAttributeValue                              = define(class.CLISpecificCondition, "024", "invalid attribute value")
	CLISpecificConditionNonStringDataCannotBeUsedWithStringRoutine         = define(class.CLISpecificCondition, "055", "non-string data cannot be used with string routine")
	CLISpecificConditionInvalidStringLengthOrBufferLength                  = define(class.CLISpecificCondition, "090", "invalid string length or buffer length")
	CLISpecificConditionInvalidDescriptorFieldIdentifier                   = define(class.CLISpecificCondition, "091", "invalid descriptor field identifier")
	CLISpecificConditionInvalidAttributeIdentifier                         = define(class.CLISpecificCondition, "092", "invalid attribute identifier")
	CLISpecificConditionInvalidDatalinkValue                               = define(class.CLISpecificCondition, "093", "invalid datalink value")
	CLISpecificConditionInvalidFunctionIDSpecified                         = define(class.CLISpecificCondition, "095", "invalid FunctionId specified")
	CLISpecificConditionInvalidInformationType                             = define(class.CLISpecificCondition, "096", "invalid information type")
	CLISpecificConditionColumnTypeOutOfRange                               = define(class.CLISpecificCondition, "097", "column type out of range")
	CLISpecificConditionScopeOutOfRange                                    = define(class.CLISpecificCondition, "098", "scope out of range")
	CLISpecificConditionNullableTypeOutOfRange                             = define(class.CLISpecificCondition, "099", "nullable type out of range")
	CLISpecificConditionInvalidRetrievalCode                               = define(class.CLISpecificCondition, "103", "invalid retrieval code")
	CLISpecificConditionInvalidLengthPrecisionValue                        = define(class.CLISpecificCondition, "104", "invalid LengthPrecision value")
	CLISpecificConditionInvalidParameterMode                               = define(class.CLISpecificCondition, "105", "invalid parameter mode")
	CLISpecificConditionInvalidFetchOrientation                            = define(class.CLISpecificCondition, "106", "invalid fetch orientation")
	CLISpecificConditionRowValueOutOfRange                                 = define(class.CLISpecificCondition, "107", "row value out of range")
	CLISpecificConditionInvalidCursorPosition                              = define(class.CLISpecificCondition, "108", "invalid cursor position")
	CLISpecificConditionOptionalFeatureNotImplemented                      = define(class.CLISpecificCondition, "C00", "optional feature not implemented")
)

// Class HZ: remote database access.
var (
	RemoteDatabaseAccessAttributeNotPermitted                             = define(class.RemoteDatabaseAccess, "010", "attribute not permitted")
	RemoteDatabaseAccessAuthenticationFailure                             = define(class.RemoteDatabaseAccess, "020", "authentication failure")
	RemoteDatabaseAccessDuplicateRequestIdent                             = define(class.RemoteDatabaseAccess, "030", "duplicate request ident")
	RemoteDatabaseAccessEncodingNotSupported                              = define(class.RemoteDatabaseAccess, "040", "encoding not supported")
	RemoteDatabaseAccessFeatureNotSupportedMultipleServerTransactions     = define(class.RemoteDatabaseAccess, "050", "feature not supported, multiple server transactions")
	RemoteDatabaseAccessInvalidAttributeType                              = define(class.RemoteDatabaseAccess, "060", "invalid attribute type")
	RemoteDatabaseAccessInvalidFetchCount                                 = define(class.RemoteDatabaseAccess, "070", "invalid fetch count")
	RemoteDatabaseAccessInvalidMessageType                                = define(class.RemoteDatabaseAccess, "080", "invalid message type")
	RemoteDatabaseAccessInvalidOperationSequence                          = define(class.RemoteDatabaseAccess, "090", "invalid operation sequence")
	RemoteDatabaseAccessInvalidTransactionOperationCode                   = define(class.RemoteDatabaseAccess, "0A0", "invalid transaction operation code")
	RemoteDatabaseAccessMismatchBetweenDescriptorAndRow                   = define(class.RemoteDatabaseAccess, "0B0", "mismatch between descriptor and row")
	RemoteDatabaseAccessNoConnectionHandleAvailable                       = define(class.RemoteDatabaseAccess, "0C0", "no connection handle available")
	RemoteDatabaseAccessNumberOfValuesDoesNotMatchNumberOfItemDescriptors = define(class.RemoteDatabaseAccess, "0D0", "number of values does not match number of item descriptors")
	RemoteDatabaseAccessTransactionCannotCommit                           = define(class.RemoteDatabaseAccess, "0E0", "transaction cannot commit")
	RemoteDatabaseAccessTransactionStateUnknown                           = define(class.RemoteDatabaseAccess, "0F0", "transaction state unknown")
	RemoteDatabaseAccessTransportFailure                                  = define(class.RemoteDatabaseAccess, "0G0", "transport failure")
	RemoteDatabaseAccessUnexpectedParameterDescriptor                     = define(class.RemoteDatabaseAccess, "0H0", "unexpected parameter descriptor")
	RemoteDatabaseAccessUnexpectedRowDescriptor                           = define(class.RemoteDatabaseAccess, "0I0", "unexpected row descriptor")
	RemoteDatabaseAccessUnexpectedRows                                    = define(class.RemoteDatabaseAccess, "0J0", "unexpected rows")
	RemoteDatabaseAccessVersionNotSupported                               = define(class.RemoteDatabaseAccess, "0K0", "version not supported")
	RemoteDatabaseAccessTCPIPError                                        = define(class.RemoteDatabaseAccess, "0L0", "TCP/IP error")
	RemoteDatabaseAccessTLSAlert                                          = define(class.RemoteDatabaseAccess, "0M0", "TLS alert")
)
