package minio

import "fmt"

// Storage error codes.
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeConnection     = "CONNECTION"
	ErrCodePermission     = "PERMISSION"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
)

// StorageError is the error type returned by all MinIO operations.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("minio %s: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("minio %s: %s", e.Code, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates a StorageError for invalid request input.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// NewConnectionError creates a StorageError for connection failures.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

// NewBucketNotFoundError creates a StorageError for a missing bucket.
func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucketName)}
}

// NewObjectNotFoundError creates a StorageError for a missing object.
func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", objectName)}
}

// IsObjectNotFound reports whether err is an object-not-found storage error.
func IsObjectNotFound(err error) bool {
	storageErr, ok := err.(*StorageError)
	return ok && storageErr.Code == ErrCodeObjectNotFound
}
