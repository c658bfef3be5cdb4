package websocket_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xws "golang.org/x/net/websocket"

	ws "github.com/robomotive/diffbase.go/pkg/l1/comm/websocket"
)

func TestPacketRoundTrip(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(xws.Handler(func(conn *xws.Conn) {
		rw := ws.New(conn)
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				close(done)
				return
			}
			if err = rw.WritePacket(pkt); err != nil {
				close(done)
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, err := xws.Dial(url, "", srv.URL)
	require.NoError(t, err)

	rw := ws.New(conn)
	require.NoError(t, rw.WritePacket([]byte{0x01, 0x02, 0x03}))
	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, pkt)

	require.NoError(t, rw.Close())
	<-done
}
