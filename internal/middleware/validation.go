package middleware

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v3"
)

// MaxQueryLen caps the search string. The Data API itself tolerates longer
// q parameters but nothing useful comes back past this.
const MaxQueryLen = 256

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateQueryString checks that a search string is usable: trimmed,
// non-empty, within length limits, and free of control characters.
// Returns the cleaned string, or an error message.
func ValidateQueryString(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "query_string is required"
	}
	if len(q) > MaxQueryLen {
		return "", "query_string must be at most 256 characters"
	}
	for _, r := range q {
		if unicode.IsControl(r) {
			return "", "query_string contains control characters"
		}
	}
	return q, ""
}
