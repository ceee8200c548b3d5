package credentials

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_SamePasswordDifferentDigests(t *testing.T) {
	m := NewManager(bcrypt.MinCost)

	h1, err := m.Hash("my-password")
	require.NoError(t, err)
	h2, err := m.Hash("my-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt must salt every digest")
	assert.True(t, m.Verify("my-password", h1))
	assert.True(t, m.Verify("my-password", h2))
}

func TestVerify_WrongPassword(t *testing.T) {
	m := NewManager(bcrypt.MinCost)

	h, err := m.Hash("my-password")
	require.NoError(t, err)

	assert.False(t, m.Verify("not-my-password", h))
	assert.False(t, m.Verify("", h))
	assert.False(t, m.Verify("my-password", []byte("not-a-bcrypt-digest")))
}

func TestNewManager_OutOfRangeCostFallsBack(t *testing.T) {
	m := NewManager(1000)

	h, err := m.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost(h)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewSessionToken_UniqueAndOpaque(t *testing.T) {
	m := NewManager(bcrypt.MinCost)

	t1 := m.NewSessionToken()
	t2 := m.NewSessionToken()

	assert.NotEmpty(t, t1)
	assert.NotEqual(t, t1, t2)

	_, err := uuid.Parse(t1)
	assert.NoError(t, err)
}
