package conn

import (
	"bytes"
	"crypto/md5"
	"io"
	"net"
	"testing"
	"time"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/rdx/ftp"
	"github.com/nabbar/rudex/rdx/loss"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.ListenUDP("udp", &net.UDPAddr{})
	if err != nil {
		t.Fatalf("find free port: %v", err)
	}
	defer l.Close()
	return l.LocalAddr().(*net.UDPAddr).Port
}

func noLoss() *loss.Injector { return loss.New(0, 1) }

func TestFileTransferNoLossRoundTrips(t *testing.T) {
	port := freePort(t)
	content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 5000) // > one window

	serverErr := make(chan error, 1)
	serverMD5 := make(chan string, 1)

	go func() {
		sock, err := AcceptServer(port, noLoss(), noLoss(), rlog.New(io.Discard, rlog.InfoLevel), quietEventLog())
		if err != nil {
			serverErr <- err
			return
		}
		defer sock.Close()

		sink := ftp.NewFileSink(t.TempDir() + "/out.bin")
		if err := sock.RecvFile(sink.Write); err != nil {
			serverErr <- err
			return
		}
		sink.Close()
		serverMD5 <- sink.MD5()
		serverErr <- nil
	}()

	time.Sleep(20 * time.Millisecond) // give the server a moment to bind

	client, err := DialClient("127.0.0.1", port, noLoss(), noLoss(), rlog.New(io.Discard, rlog.InfoLevel), quietEventLog())
	if err != nil {
		t.Fatalf("DialClient: %v", err)
	}
	defer client.Close()

	stream := ftp.BuildStream("in.bin", content)
	if err := client.SendFile(stream); err != nil {
		t.Fatalf("SendFile: %v", err)
	}

	select {
	case err := <-serverErr:
		if err != nil {
			t.Fatalf("server: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for server")
	}

	want := md5.Sum(content)
	got := <-serverMD5
	if got != hexString(want[:]) {
		t.Fatalf("md5 mismatch: got %s", got)
	}
}

func hexString(b []byte) string {
	const hex = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hex[c>>4]
		out[i*2+1] = hex[c&0xf]
	}
	return string(out)
}

func quietEventLog() *rlog.EventLog {
	ev, _ := rlog.OpenEventLog("")
	return ev
}
