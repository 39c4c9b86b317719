package serve

import (
	"io"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"
	"testing"

	"github.com/kriswebdev/basexml"
	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/server"
	"github.com/stretchr/testify/require"
)

func Test_NewServer(t *testing.T) {
	cmd := &Command{Codec: args.Codec{Compact: true, Workers: 2}, MaxBodySize: 1024}
	srv := cmd.NewServer()

	require.Equal(t, server.DefaultAddress, srv.Address)
	require.Equal(t, int64(1024), srv.MaxBodySize)
	require.Equal(t, 2, srv.Workers)
	require.True(t, srv.Encoding.Compact())

	srv = (&Command{Listen: ":9999"}).NewServer()
	require.Equal(t, ":9999", srv.Address)
	require.Equal(t, int64(server.DefaultMaxBodySize), srv.MaxBodySize)
}

func Test_Run(t *testing.T) {
	cmd := &Command{Listen: "127.0.0.1:0"}
	srv := cmd.NewServer()
	interrupted := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Run(srv, interrupted)
	}()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, time.Second*5, 10*time.Millisecond)

	res, err := http.Post(srv.String()+"/encode", "application/octet-stream", strings.NewReader("ABCDE"))
	require.NoError(t, err)
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	require.Equal(t, basexml.Encode([]byte("ABCDE")), data)

	interrupted <- syscall.SIGTERM
	require.NoError(t, <-done)
}

func Test_Run_ListenFailure(t *testing.T) {
	cmd := &Command{Listen: "256.0.0.1:http-nope"}
	require.Error(t, cmd.Run(cmd.NewServer(), make(chan os.Signal)))
}
