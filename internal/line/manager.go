package line

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/config"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/engine"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/ims"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/logging"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/modem"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/store"
)

// Manager は全スロットの回線Runnerを管理し、Pub/Subイベントを各回線へ
// 振り分ける。call.Notifierの実装でもあり、通話状態通知の購読有無を
// スロット単位で保持する。
type Manager struct {
	cfg     *config.Config
	lines   store.LineStore
	configs engine.ConfigSource
	calls   call.Reader
	modem   modem.Controller
	notifs  *store.Notifications

	mu       sync.Mutex
	runners  map[int]*Runner
	callSubs map[int]bool

	stopped chan struct{}
}

// NewManager は新しいManagerを生成する。
func NewManager(cfg *config.Config, lines store.LineStore, configs engine.ConfigSource, calls call.Reader, mc modem.Controller, notifs *store.Notifications) *Manager {
	return &Manager{
		cfg:      cfg,
		lines:    lines,
		configs:  configs,
		calls:    calls,
		modem:    mc,
		notifs:   notifs,
		runners:  make(map[int]*Runner),
		callSubs: make(map[int]bool),
		stopped:  make(chan struct{}),
	}
}

// Start はプロビジョニング済み回線を起動し、イベント振り分けを開始する。
func (m *Manager) Start(ctx context.Context) error {
	lines, err := m.lines.ActiveLines(ctx, m.cfg.SlotCount)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		m.bringUp(ln)
	}

	go m.loop()
	return nil
}

// Shutdown は全回線を終了し、イベント振り分けを停止する。
// 各回線のTeardownによりNR SA許可が無条件に指示される。
func (m *Manager) Shutdown(ctx context.Context) error {
	// 購読解除によりloopが終了する
	if err := m.notifs.Close(); err != nil {
		slog.Warn("イベント購読解除失敗", "error", err)
	}

	select {
	case <-m.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}

	m.mu.Lock()
	runners := make([]*Runner, 0, len(m.runners))
	for _, r := range m.runners {
		runners = append(runners, r)
	}
	m.runners = make(map[int]*Runner)
	m.mu.Unlock()

	for _, r := range runners {
		r.Stop()
	}
	return nil
}

// RegisterForCallStateChanged はcall.Notifierの実装。冪等。
func (m *Manager) RegisterForCallStateChanged(slot int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callSubs[slot] = true
}

// UnregisterForCallStateChanged はcall.Notifierの実装。冪等。
func (m *Manager) UnregisterForCallStateChanged(slot int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.callSubs, slot)
}

// loop はPub/Subメッセージを受信し、回線Runnerへ振り分ける。
func (m *Manager) loop() {
	defer close(m.stopped)

	for msg := range m.notifs.Channel() {
		m.route(msg)
	}
}

// route は1件のメッセージをチャネル名で分岐して処理する。
// ペイロード不正は警告を出して読み飛ばす。
func (m *Manager) route(msg *redis.Message) {
	switch msg.Channel {
	case store.ChannelCarrierEvents:
		ev, err := store.ParseCarrierEvent(msg.Payload)
		if err != nil {
			slog.Warn("キャリアイベント不正", "event_id", "EVENT_PARSE_ERR", "channel", msg.Channel, "error", err)
			return
		}
		m.routeCarrier(ev)

	case store.ChannelIMSEvents:
		var ev ims.Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			slog.Warn("IMSイベント不正", "event_id", "EVENT_PARSE_ERR", "channel", msg.Channel, "error", err)
			return
		}
		m.routeIMS(&ev)

	case store.ChannelCallEvents:
		ev, err := store.ParseCallEvent(msg.Payload)
		if err != nil {
			slog.Warn("通話イベント不正", "event_id", "EVENT_PARSE_ERR", "channel", msg.Channel, "error", err)
			return
		}
		m.routeCall(ev)

	case store.ChannelLineEvents:
		ev, err := store.ParseLineEvent(msg.Payload)
		if err != nil {
			slog.Warn("回線イベント不正", "event_id", "EVENT_PARSE_ERR", "channel", msg.Channel, "error", err)
			return
		}
		m.routeLine(ev)
	}
}

// routeCarrier はキャリア設定変更を該当回線へ届ける。
// スロットと加入者IDの両方が一致する場合のみ配送する。
func (m *Manager) routeCarrier(ev *store.CarrierEvent) {
	m.mu.Lock()
	r, ok := m.runners[ev.Slot]
	m.mu.Unlock()

	if !ok || r.subID != ev.SubscriptionID {
		return
	}
	r.PostCarrierConfigChanged()
}

// routeIMS はIMSイベントを加入者IDで該当回線へ届ける。
func (m *Manager) routeIMS(ev *ims.Event) {
	m.mu.Lock()
	var target *Runner
	for _, r := range m.runners {
		if r.subID == ev.SubscriptionID {
			target = r
			break
		}
	}
	m.mu.Unlock()

	if target == nil {
		return
	}

	switch ev.Kind {
	case ims.EventKindRegistered:
		target.PostRegistered(ev.Technology, ev.FeatureTags)
	case ims.EventKindUnregistered:
		target.PostUnregistered(ev.Technology)
	case ims.EventKindCapability:
		target.PostCapability(ev.Capabilities)
	default:
		slog.Warn("未知のIMSイベント種別", "event_id", "EVENT_PARSE_ERR", "kind", ev.Kind)
	}
}

// routeCall は通話状態変化を購読中の回線にのみ届ける。
func (m *Manager) routeCall(ev *store.CallEvent) {
	m.mu.Lock()
	subscribed := m.callSubs[ev.Slot]
	r, ok := m.runners[ev.Slot]
	m.mu.Unlock()

	if !subscribed || !ok {
		return
	}
	r.PostCallStateChanged()
}

// routeLine は回線アップ/ダウンを処理する。
func (m *Manager) routeLine(ev *store.LineEvent) {
	if ev.State == store.LineStateDown {
		m.tearDown(ev.Slot)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ValkeyCommandTimeout)
	defer cancel()

	ln, err := m.lines.GetLine(ctx, ev.Slot)
	if err != nil {
		slog.Warn("回線情報読み込み失敗",
			"event_id", "LINE_READ_ERR",
			"slot", ev.Slot,
			"error", err,
		)
		return
	}
	m.bringUp(ln)
}

// bringUp は回線を起動する。同一スロットに既存回線がある場合、
// 同一加入者なら何もせず、別加入者なら入れ替える。
func (m *Manager) bringUp(ln *store.Line) {
	m.mu.Lock()
	existing, ok := m.runners[ln.Slot]
	if ok && existing.subID == ln.SubscriptionID {
		m.mu.Unlock()
		return
	}
	delete(m.runners, ln.Slot)
	m.mu.Unlock()

	if ok {
		existing.Stop()
	}

	r := NewRunner(ln, m.cfg.LogMaskIMSI, m.configs, m.calls, m, m.modem)

	m.mu.Lock()
	m.runners[ln.Slot] = r
	m.mu.Unlock()

	r.Start()
	slog.Info("回線起動",
		"event_id", "LINE_UP",
		"slot", ln.Slot,
		"sub_id", ln.SubscriptionID,
		"imsi", logging.MaskIMSI(ln.IMSI, m.cfg.LogMaskIMSI),
	)
}

// tearDown は回線を終了する。
func (m *Manager) tearDown(slot int) {
	m.mu.Lock()
	r, ok := m.runners[slot]
	delete(m.runners, slot)
	m.mu.Unlock()

	if !ok {
		return
	}

	r.Stop()
	slog.Info("回線終了",
		"event_id", "LINE_DOWN",
		"slot", slot,
		"sub_id", r.subID,
	)
}

// Runner は診断用に指定スロットのRunnerを返す。
func (m *Manager) Runner(slot int) (*Runner, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.runners[slot]
	return r, ok
}
