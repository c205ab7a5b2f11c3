package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call"
)

// callStateStore はcall.Readerインターフェースの実装。
// 通話スタックがスロット単位で書き込む現在状態ハッシュを読み取る。
type callStateStore struct {
	vc *ValkeyClient
}

// NewCallStateStore は新しい通話状態ストアを生成する。
func NewCallStateStore(vc *ValkeyClient) call.Reader {
	return &callStateStore{vc: vc}
}

// ReadStates はフォアグラウンド/バックグラウンド通話の現在状態を返す。
// キーやフィールドが存在しない場合、および未知の状態値はIDLE扱い。
func (s *callStateStore) ReadStates(ctx context.Context, slot int) (call.State, call.State, error) {
	key := KeyPrefixCall + strconv.Itoa(slot)
	result, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return call.StateIdle, call.StateIdle, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	return parseCallState(result[FieldForeground]), parseCallState(result[FieldBackground]), nil
}

// parseCallState は状態文字列をcall.Stateに変換する。
func parseCallState(s string) call.State {
	if !call.IsValidState(s) {
		return call.StateIdle
	}
	return call.State(s)
}
