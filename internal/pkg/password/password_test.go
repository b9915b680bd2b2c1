package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-passphrase")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passphrase", hash)

	assert.True(t, Verify(hash, "s3cret-passphrase"))
	assert.False(t, Verify(hash, "wrong-passphrase"))
}
