package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// User errors
	CodeUserIDEmpty        Code = "USER_ID_EMPTY"
	CodeUserFirstNameEmpty Code = "USER_FIRST_NAME_EMPTY"
	CodeUserLastNameEmpty  Code = "USER_LAST_NAME_EMPTY"
	CodeUserAgeOutOfRange  Code = "USER_AGE_OUT_OF_RANGE"
	CodeUserAlreadyExists  Code = "USER_ALREADY_EXISTS"
	CodeUserNotFound       Code = "USER_NOT_FOUND"

	// Search errors
	CodePredicateNil Code = "PREDICATE_NIL"

	// Subscriber errors
	CodeSubscriberNil      Code = "SUBSCRIBER_NIL"
	CodeSubscriberNotFound Code = "SUBSCRIBER_NOT_FOUND"

	// Replication errors
	CodeReplicaReadOnly    Code = "REPLICA_READ_ONLY"
	CodeNotCoordinator     Code = "NOT_COORDINATOR"
	CodeReplicationFailed  Code = "REPLICATION_FAILED"
	CodeReplicaInvalid     Code = "REPLICA_INVALID"
	CodeWriteQuorumInvalid Code = "WRITE_QUORUM_INVALID"
)

// Field names attached to validation failures.
const (
	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldAge       = "age"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeUserIDEmpty,
		CodeUserFirstNameEmpty,
		CodeUserLastNameEmpty,
		CodeUserAgeOutOfRange,
		CodePredicateNil,
		CodeSubscriberNil,
		CodeReplicaInvalid,
		CodeWriteQuorumInvalid:
		return codes.InvalidArgument

	case CodeUserAlreadyExists:
		return codes.AlreadyExists

	case CodeUserNotFound,
		CodeSubscriberNotFound:
		return codes.NotFound

	case CodeReplicaReadOnly:
		return codes.PermissionDenied

	case CodeNotCoordinator:
		return codes.FailedPrecondition

	case CodeReplicationFailed:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}

// Field returns the record field a validation code refers to, or "" when the
// code is not tied to a single field.
func (c Code) Field() string {
	switch c {
	case CodeUserIDEmpty:
		return FieldID
	case CodeUserFirstNameEmpty:
		return FieldFirstName
	case CodeUserLastNameEmpty:
		return FieldLastName
	case CodeUserAgeOutOfRange:
		return FieldAge
	default:
		return ""
	}
}
