package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allErrorCodes = []ErrorCode{
	AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat, AuthInvalidToken, AuthForbidden,
	ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange, ValidationInvalidDate,
	TransactionNotFound, TransactionInvalidID, TransactionInvalidType, TransactionInvalidPrice,
	TransactionValidationFailed, TransactionNotOwned,
	HistoryNotFound, HistoryInvalidID, HistoryValidationFailed,
	SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemConfigurationError,
	SystemUnexpectedError, SystemRateLimitExceeded,
}

func TestGetErrorMessage_KnownCodes(t *testing.T) {
	cases := map[ErrorCode]string{
		AuthMissingToken:        "Authorization token is required",
		AuthExpiredToken:        "Authorization token has expired",
		ValidationInvalidDate:   "Invalid date format or range",
		TransactionInvalidType:  "Transaction type must be purchase or sale",
		TransactionNotOwned:     "Transaction belongs to another user",
		HistoryNotFound:         "Search record not found",
		SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
	}

	for code, want := range cases {
		assert.Equal(t, want, GetErrorMessage(code), string(code))
	}
}

func TestGetErrorMessage_UnknownCode(t *testing.T) {
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("LEDGER_999")))
}

func TestEveryCodeHasAMessage(t *testing.T) {
	for _, code := range allErrorCodes {
		msg := GetErrorMessage(code)
		assert.NotEmpty(t, msg, string(code))
		assert.NotEqual(t, "An error occurred", msg, "%s is missing a registered message", code)
	}
}

func TestCodesFollowPrefixConvention(t *testing.T) {
	prefixes := []string{"AUTH_", "VALIDATION_", "TRANSACTION_", "HISTORY_", "SYSTEM_"}

	for _, code := range allErrorCodes {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "code %s does not follow the PREFIX_NNN convention", code)
	}
}

func TestCodesAreUnique(t *testing.T) {
	seen := make(map[ErrorCode]bool)
	for _, code := range allErrorCodes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestIsValidErrorCode(t *testing.T) {
	for _, code := range allErrorCodes {
		assert.True(t, IsValidErrorCode(code), string(code))
	}
	assert.False(t, IsValidErrorCode(ErrorCode("AUTH_999")))
	assert.False(t, IsValidErrorCode(ErrorCode("")))
}
