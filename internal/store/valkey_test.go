package store

import (
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/config"
)

// newTestValkey はminiredisに接続したValkeyClientを生成する
func newTestValkey(t *testing.T) (*miniredis.Miniredis, *ValkeyClient) {
	t.Helper()

	mr := miniredis.RunT(t)

	host, port, err := net.SplitHostPort(mr.Addr())
	if err != nil {
		t.Fatalf("miniredisアドレスの分解に失敗: %v", err)
	}

	cfg := &config.Config{
		RedisHost: host,
		RedisPort: port,
	}

	vc, err := NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("ValkeyClientの生成に失敗: %v", err)
	}
	t.Cleanup(func() { _ = vc.Close() })

	return mr, vc
}

func TestNewValkeyClient_ConnectionFailure(t *testing.T) {
	cfg := &config.Config{
		RedisHost: "127.0.0.1",
		RedisPort: "1", // 接続不能なポート
	}

	if _, err := NewValkeyClient(cfg); err == nil {
		t.Error("接続失敗を期待したがエラーなし")
	}
}
