package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CarrierEvent はcarrier:eventsチャネルのペイロードを表す。
type CarrierEvent struct {
	Slot           int `json:"slot"`
	SubscriptionID int `json:"sub_id"`
}

// CallEvent はcall:eventsチャネルのペイロードを表す。
// ペイロードは通知のみで、現在状態はcall:{slot}ハッシュから読み取る。
type CallEvent struct {
	Slot int `json:"slot"`
}

// 回線状態の定数（line:eventsのstateフィールド）
const (
	LineStateUp   = "up"
	LineStateDown = "down"
)

// LineEvent はline:eventsチャネルのペイロードを表す。
type LineEvent struct {
	Slot  int    `json:"slot"`
	State string `json:"state"`
}

// Notifications は外部コラボレータからのPub/Subイベント購読を保持する。
type Notifications struct {
	pubsub *redis.PubSub
}

// SubscribeNotifications は全イベントチャネルの購読を開始する。
func SubscribeNotifications(ctx context.Context, vc *ValkeyClient) (*Notifications, error) {
	pubsub := vc.Client().Subscribe(ctx,
		ChannelCarrierEvents,
		ChannelIMSEvents,
		ChannelCallEvents,
		ChannelLineEvents,
	)

	// 購読確立の確認
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: subscribe failed: %v", ErrValkeyUnavailable, err)
	}

	return &Notifications{pubsub: pubsub}, nil
}

// Channel は受信メッセージのチャネルを返す。
func (n *Notifications) Channel() <-chan *redis.Message {
	return n.pubsub.Channel()
}

// Close は購読を解除する。
func (n *Notifications) Close() error {
	return n.pubsub.Close()
}

// ParseCarrierEvent はcarrier:eventsペイロードをパースする。
func ParseCarrierEvent(payload string) (*CarrierEvent, error) {
	var ev CarrierEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return nil, fmt.Errorf("carrier event parse error: %w", err)
	}
	return &ev, nil
}

// ParseCallEvent はcall:eventsペイロードをパースする。
func ParseCallEvent(payload string) (*CallEvent, error) {
	var ev CallEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return nil, fmt.Errorf("call event parse error: %w", err)
	}
	return &ev, nil
}

// ParseLineEvent はline:eventsペイロードをパースする。
func ParseLineEvent(payload string) (*LineEvent, error) {
	var ev LineEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return nil, fmt.Errorf("line event parse error: %w", err)
	}
	if ev.State != LineStateUp && ev.State != LineStateDown {
		return nil, fmt.Errorf("line event parse error: unknown state %q", ev.State)
	}
	return &ev, nil
}
