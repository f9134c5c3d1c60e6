package requestid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	ctx := WithID(context.Background(), "req-1")
	assert.Equal(t, "req-1", FromContext(ctx))
	assert.Equal(t, "req-1", Ensure(ctx))

	assert.Empty(t, FromContext(context.Background()))
	minted := Ensure(context.Background())
	_, err := uuid.Parse(minted)
	require.NoError(t, err)
	assert.NotEqual(t, minted, Ensure(context.Background()))
}
