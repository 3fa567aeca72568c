package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/model"
)

func TestOpenStore_IsolatedAndEmpty(t *testing.T) {
	a := OpenStore(t)
	b := OpenStore(t)

	require.NoError(t, a.CreateUser(context.Background(), userFixture("u-1", "alice")))

	n, err := a.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = b.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func userFixture(id, username string) model.User {
	return model.User{ID: id, Username: username, PasswordHash: "hash"}
}
