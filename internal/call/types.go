// Package call は通話スタックから読み取る通話状態の語彙を定義する。
package call

// State は通話スロットの詳細状態を表す。
type State string

// 通話状態の定数
const (
	StateIdle         State = "IDLE"
	StateActive       State = "ACTIVE"
	StateHolding      State = "HOLDING"
	StateDialing      State = "DIALING"
	StateAlerting     State = "ALERTING"
	StateIncoming     State = "INCOMING"
	StateWaiting      State = "WAITING"
	StateDisconnected State = "DISCONNECTED"
)

// IsActive は通話が確立済み状態かどうかを判定する。
func (s State) IsActive() bool {
	return s == StateActive
}

// validStates は有効なState一覧
var validStates = map[State]struct{}{
	StateIdle:         {},
	StateActive:       {},
	StateHolding:      {},
	StateDialing:      {},
	StateAlerting:     {},
	StateIncoming:     {},
	StateWaiting:      {},
	StateDisconnected: {},
}

// IsValidState は文字列が有効なStateかどうかを判定する。
func IsValidState(s string) bool {
	_, ok := validStates[State(s)]
	return ok
}
