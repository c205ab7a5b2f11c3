package engine

//go:generate mockgen -destination=../mocks/mocks.go -package=mocks github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/engine ConfigSource,ModemPort

import (
	"context"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/nrsa"
)

// ConfigSource はキャリア設定への同期読み取りアクセスを定義する。
type ConfigSource interface {
	// GetConfig は指定された加入者IDに対応するNR SA関連設定を取得する。
	GetConfig(ctx context.Context, subID int) (*nrsa.CarrierConfig, error)
}

// ModemPort はモデムへのコマンド発行を定義する。
// いずれの操作も呼び出し元をブロックしてはならない。
// QueryVonrEnabledの応答は後続イベントとしてEngine.CompleteVonrQueryに配送される。
type ModemPort interface {
	// SetNrSaDisabled はNR SAの無効化/許可をモデムに指示する。
	SetNrSaDisabled(slot int, disabled bool)
	// QueryVonrEnabled はVoNR有効状態を非同期に問い合わせる。
	// seqは応答の陳腐化判定に用いるシーケンス番号。
	QueryVonrEnabled(slot int, seq uint64)
}
