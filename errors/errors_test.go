package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{Method: "wallet:getBalance", Duration: 30 * time.Second}

	assert.Equal(t, "Request timeout", err.Error())
	assert.True(t, err.Timeout())

	var timeoutErr *TimeoutError
	require.True(t, stdErrors.As(error(err), &timeoutErr))
	assert.Equal(t, "wallet:getBalance", timeoutErr.Method)
	assert.Equal(t, 30*time.Second, timeoutErr.Duration)
}

func TestRemoteError(t *testing.T) {
	err := &RemoteError{Method: "storage:set", Message: "quota exceeded"}

	// Host-supplied text is reported verbatim.
	assert.Equal(t, "quota exceeded", err.Error())

	var remoteErr *RemoteError
	require.True(t, stdErrors.As(error(err), &remoteErr))
	assert.Equal(t, "storage:set", remoteErr.Method)
}

func TestSendError(t *testing.T) {
	base := fmt.Errorf("channel gone")
	err := &SendError{Method: "app:ready", Err: base}

	assert.Equal(t, "send app:ready failed: channel gone", err.Error())
	assert.True(t, stdErrors.Is(err, base))
}

func TestSentinels(t *testing.T) {
	assert.EqualError(t, ErrClosed, "bridge closed")
	assert.EqualError(t, ErrNoTrustedAncestor, "no trusted ancestor established")
	assert.EqualError(t, ErrNotEmbedded, "not embedded in a wallet host")
}
