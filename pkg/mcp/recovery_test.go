package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{ timeout bool }

func (e *timeoutErr) Error() string   { return "net error" }
func (e *timeoutErr) Timeout() bool   { return e.timeout }
func (e *timeoutErr) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RecoveryAction
	}{
		{"nil", nil, NoRetry},
		{"context canceled", context.Canceled, NoRetry},
		{"deadline exceeded", context.DeadlineExceeded, NoRetry},
		{"net timeout", &timeoutErr{timeout: true}, NoRetry},
		{"net non-timeout", &timeoutErr{}, RetryNewSession},
		{"eof", io.EOF, RetryNewSession},
		{"unexpected eof", io.ErrUnexpectedEOF, RetryNewSession},
		{"connection refused", errors.New("dial tcp: connection refused"), RetryNewSession},
		{"broken pipe", fmt.Errorf("write: %w", errors.New("broken pipe")), RetryNewSession},
		{"jsonrpc invalid params", errors.New("jsonrpc2: Invalid Params"), NoRetry},
		{"method not found", errors.New("Method not found"), NoRetry},
		{"unknown", errors.New("something odd"), NoRetry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}
