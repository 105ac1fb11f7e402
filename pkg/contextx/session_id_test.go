package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dri_index/pkg/contextx"
)

func TestSessionID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testSessionIDEmpty contextx.SessionID

	testSessionIDNotEmpty := contextx.SessionID("test-session-id")

	sessionID, err := contextx.SessionIDFromContext(ctx)
	rq.Equal(testSessionIDEmpty, sessionID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "session id: no value in context")

	ctx = contextx.WithSessionID(ctx, testSessionIDNotEmpty)

	sessionID, err = contextx.SessionIDFromContext(ctx)
	rq.Equal(testSessionIDNotEmpty, sessionID)
	rq.NoError(err)
}
