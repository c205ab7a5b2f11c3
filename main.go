// Package main はNR SAモード制御デーモンのエントリーポイント。
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/config"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/line"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/modem"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/store"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式）
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})).With("app", "nrsa-policyd")
	slog.SetDefault(logger)

	slog.Info("nrsa-policyd起動開始",
		"modem_api_url", cfg.ModemAPIURL,
		"slot_count", cfg.SlotCount,
	)

	// 3. Valkeyクライアント初期化
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("Valkey接続失敗",
			"event_id", "VALKEY_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("Valkey接続完了", "addr", cfg.ValkeyAddr())

	// 4. Modem Agentクライアント初期化
	modemClient := modem.NewClient(cfg)

	// 5. Store層生成
	carrierStore := store.NewCarrierConfigStore(valkeyClient)
	lineStore := store.NewLineStore(valkeyClient)
	callStore := store.NewCallStateStore(valkeyClient)

	// 6. イベント購読開始
	notifs, err := store.SubscribeNotifications(context.Background(), valkeyClient)
	if err != nil {
		slog.Error("イベント購読失敗",
			"event_id", "VALKEY_SUB_ERR",
			"error", err,
		)
		os.Exit(1)
	}

	// 7. 回線Manager起動
	manager := line.NewManager(cfg, lineStore, carrierStore, callStore, modemClient, notifs)
	if err := manager.Start(context.Background()); err != nil {
		slog.Error("回線Manager起動失敗", "error", err)
		os.Exit(1)
	}

	slog.Info("nrsa-policyd起動完了")

	// 8. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("シグナル受信、シャットダウン開始", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := manager.Shutdown(ctx); err != nil {
		slog.Warn("シャットダウンエラー", "error", err)
	}

	slog.Info("nrsa-policyd停止完了")
}

// logLevel は設定文字列をslog.Levelに変換する。
func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
