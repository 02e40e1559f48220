package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

type stubCaller struct {
	method string
	result json.RawMessage
	err    error
}

func (s *stubCaller) Call(_ context.Context, method string, _ any) (json.RawMessage, error) {
	s.method = method
	return s.result, s.err
}

func TestProfile(t *testing.T) {
	caller := &stubCaller{result: json.RawMessage(`{
		"id": "u-1",
		"username": "ada",
		"displayName": "Ada L."
	}`)}
	c := New(caller)

	p, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, methods.UserGetProfile, caller.method)
	assert.Equal(t, "u-1", p.ID)
	assert.Equal(t, "ada", p.Username)
	assert.Equal(t, "Ada L.", p.DisplayName)
}

func TestProfileError(t *testing.T) {
	caller := &stubCaller{err: assert.AnError}
	c := New(caller)

	_, err := c.Profile(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
