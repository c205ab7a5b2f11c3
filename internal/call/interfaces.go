package call

//go:generate mockgen -destination=../mocks/call_mocks.go -package=mocks github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call Reader,Notifier

import "context"

// Reader は通話スロットの現在状態への同期読み取りアクセスを定義する。
// グローバルな通話状態参照ではなく、回線ごとに明示的に注入される。
type Reader interface {
	// ReadStates はフォアグラウンド/バックグラウンド通話の現在状態を返す。
	ReadStates(ctx context.Context, slot int) (foreground State, background State, err error)
}

// Notifier は通話状態変化通知の購読管理を定義する。
// Register/Unregisterは冪等であり、既に目的の状態であれば何もしない。
type Notifier interface {
	// RegisterForCallStateChanged は指定スロットの通話状態変化通知を購読する。
	RegisterForCallStateChanged(slot int)
	// UnregisterForCallStateChanged は指定スロットの購読を解除する。
	UnregisterForCallStateChanged(slot int)
}
