package modem

//go:generate mockgen -destination=../mocks/modem_mocks.go -package=mocks github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/modem Controller

import "context"

// Controller はModem Agentとの通信インターフェースを定義する
type Controller interface {
	// SetN1Mode は指定スロットのN1モード（NR SA許可）を設定する
	SetN1Mode(ctx context.Context, slot int, allowed bool) error
	// QueryVonr は指定スロットのVoNR有効状態を取得する
	QueryVonr(ctx context.Context, slot int) (bool, error)
}
