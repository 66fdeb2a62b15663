package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_MigrateKeepsSecret(t *testing.T) {
	identity, err := NewIdentity("ATS1000", "jdelacruz4567", "s3cr3t", Location{LCP: "LCP01", HardwareSerial: "ZTEG0001"})
	require.NoError(t, err)

	identity.Migrate("jdelacruz4567lcp02", "ZTEG0002")

	assert.Equal(t, "jdelacruz4567lcp02", identity.Username())
	assert.Equal(t, "s3cr3t", identity.Secret())
	assert.Equal(t, "ZTEG0002", identity.Location().HardwareSerial)
	assert.Equal(t, "LCP01", identity.Location().LCP)
}

func TestIdentity_ClearLocation(t *testing.T) {
	identity, err := NewIdentity("ATS1000", "user", "pw", Location{LCP: "L", NAP: "N", Port: "1", VLAN: "100", IPAddress: "10.1.1.1", HardwareSerial: "S"})
	require.NoError(t, err)

	identity.ClearLocation()

	assert.Equal(t, Location{}, identity.Location())
	assert.Equal(t, "user", identity.Username())
}

func TestIdentity_Credentials(t *testing.T) {
	identity, err := NewIdentity("0001", "", "", Location{})
	require.NoError(t, err)
	assert.False(t, identity.HasUsername())
	assert.False(t, identity.HasSecret())

	identity.SetCredentials("new", "pw")
	assert.True(t, identity.HasUsername())
	assert.True(t, identity.HasSecret())

	_, err = NewIdentity("", "u", "p", Location{})
	assert.Error(t, err)
}
