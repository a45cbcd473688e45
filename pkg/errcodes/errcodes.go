package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	InvalidPlateFormat  failure.ErrorCode = "InvalidPlateFormat"
	InvalidTailNumber   failure.ErrorCode = "InvalidTailNumber"
	UnknownProvince     failure.ErrorCode = "UnknownProvince"
	InvalidKeypadState  failure.ErrorCode = "InvalidKeypadState"
	IncompletePlate     failure.ErrorCode = "IncompletePlate"
	ComputationError    failure.ErrorCode = "ComputationError"
	UnknownPhoneProfile failure.ErrorCode = "UnknownPhoneProfile"
)
