package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchErrorMessage(t *testing.T) {
	err := NewNetwork("myket", "failed to fetch URL", io.ErrUnexpectedEOF)
	assert.Equal(t, "[network] myket: failed to fetch URL - unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, err.IsRetryable())

	status := NewStatus("cafebazaar", 404)
	assert.Equal(t, "[status] cafebazaar: unexpected status code: 404", status.Error())
	assert.False(t, status.IsRetryable())
}

func TestIsType(t *testing.T) {
	rateLimited := NewRateLimit("myket", 429, "60")
	wrapped := fmt.Errorf("listing: %w", rateLimited)

	assert.True(t, IsType(rateLimited, ErrorTypeRateLimit))
	assert.True(t, IsType(wrapped, ErrorTypeRateLimit))
	assert.False(t, IsType(wrapped, ErrorTypeStatus))
	assert.False(t, IsType(io.EOF, ErrorTypeNetwork))
	assert.False(t, IsType(nil, ErrorTypeNetwork))
}

func TestRetryable(t *testing.T) {
	timeout := NewNetwork("myket", "failed to fetch URL", io.ErrUnexpectedEOF)

	assert.True(t, Retryable(timeout))
	assert.True(t, Retryable(fmt.Errorf("image: %w", timeout)))
	assert.False(t, Retryable(NewRateLimit("myket", 429, "")))
	assert.False(t, Retryable(NewStatus("cafebazaar", 500)))
	assert.False(t, Retryable(io.EOF))
	assert.False(t, Retryable(nil))
}
