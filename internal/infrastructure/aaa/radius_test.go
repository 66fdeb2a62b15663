package aaa

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"

	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const testRadiusSecret = "radsecret"

func startNAS(t *testing.T, handler radius.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &radius.PacketServer{
		Handler:      handler,
		SecretSource: radius.StaticSecretSource([]byte(testRadiusSecret)),
	}
	go func() { _ = server.Serve(pc) }()
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })

	return pc.LocalAddr().String()
}

func radiusSettings(addr string) setting.AAASettings {
	return setting.AAASettings{
		Host:           "aaa.local",
		TimeoutSeconds: 1,
		DisconnectMode: setting.DisconnectModeRADIUS,
		RadiusSecret:   testRadiusSecret,
		RadiusNASAddr:  addr,
	}
}

func TestClient_KillSessionRADIUSAck(t *testing.T) {
	var gotUser string
	addr := startNAS(t, func(w radius.ResponseWriter, r *radius.Request) {
		gotUser = rfc2865.UserName_GetString(r.Packet)
		_ = w.Write(r.Response(radius.CodeDisconnectACK))
	})

	client := NewClient(logger.NewNopLogger())
	err := client.KillSession(context.Background(), radiusSettings(addr), "jdelacruz")

	require.NoError(t, err)
	assert.Equal(t, "jdelacruz", gotUser)
}

func TestClient_KillSessionRADIUSNak(t *testing.T) {
	addr := startNAS(t, func(w radius.ResponseWriter, r *radius.Request) {
		_ = w.Write(r.Response(radius.CodeDisconnectNAK))
	})

	client := NewClient(logger.NewNopLogger())
	err := client.KillSession(context.Background(), radiusSettings(addr), "jdelacruz")

	var rejected *DisconnectRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "jdelacruz", rejected.Username)
}
