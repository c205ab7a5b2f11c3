// Package line は回線ごとの直列イベントループと回線管理を提供する。
package line

import (
	"context"
	"log/slog"
	"sync"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/config"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/engine"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/ims"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/modem"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/store"
)

// eventKind はイベントループで処理するイベント種別を表す。
type eventKind int

const (
	evCarrierConfig eventKind = iota
	evCapability
	evRegistered
	evUnregistered
	evCallState
	evVonrResult
)

// event はイベントループに投入される1件のイベントを表す。
type event struct {
	kind         eventKind
	capabilities int
	tech         ims.Technology
	featureTags  []string
	vonrSeq      uint64
	vonrEnabled  bool
	vonrErr      error
}

// Runner は1回線分の直列実行コンテキストを提供する。
// 全イベントを単一goroutineで到着順に処理するため、Engineは内部ロック不要。
// engine.ModemPortの実装でもあり、モデムへの往復は別goroutineで行い、
// 完了を同じイベントループへ再投入する。
type Runner struct {
	slot  int
	subID int

	eng   *engine.Engine
	modem modem.Controller

	events  chan event
	done    chan struct{}
	stopped chan struct{}

	stopOnce sync.Once
	cmdWG    sync.WaitGroup
}

// NewRunner は指定回線のRunnerとEngineを生成する。
func NewRunner(ln *store.Line, maskIMSI bool, configs engine.ConfigSource, calls call.Reader, notifier call.Notifier, mc modem.Controller) *Runner {
	r := &Runner{
		slot:    ln.Slot,
		subID:   ln.SubscriptionID,
		modem:   mc,
		events:  make(chan event, config.EventQueueDepth),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	r.eng = engine.NewEngine(ln.Slot, ln.SubscriptionID, ln.IMSI, maskIMSI, configs, calls, notifier, r)
	return r
}

// Start はイベントループを起動する。
// 起動時にキャリア設定変更イベントを1件合成し、初回の設定読み込みを行う。
func (r *Runner) Start() {
	go r.loop()
	r.PostCarrierConfigChanged()
}

// Stop はイベントループを停止する。
// 停止時にEngine.Teardownをループ上で実行し、飛行中のモデムコマンドの
// 完了を待ってから戻る。
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
	<-r.stopped
	r.cmdWG.Wait()
}

// PostCarrierConfigChanged はキャリア設定変更イベントを投入する。
func (r *Runner) PostCarrierConfigChanged() {
	r.post(event{kind: evCarrierConfig})
}

// PostCapability はMMTEL機能更新イベントを投入する。
func (r *Runner) PostCapability(capabilities int) {
	r.post(event{kind: evCapability, capabilities: capabilities})
}

// PostRegistered はIMS登録イベントを投入する。
func (r *Runner) PostRegistered(tech ims.Technology, featureTags []string) {
	r.post(event{kind: evRegistered, tech: tech, featureTags: featureTags})
}

// PostUnregistered はIMS登録解除イベントを投入する。
func (r *Runner) PostUnregistered(tech ims.Technology) {
	r.post(event{kind: evUnregistered, tech: tech})
}

// PostCallStateChanged は通話状態変化イベントを投入する。
func (r *Runner) PostCallStateChanged() {
	r.post(event{kind: evCallState})
}

// IsWifiRegistered は診断用にWi-Fi登録状態を返す。
// イベントループ停止後の参照は不定のため、テスト/診断用途に限る。
func (r *Runner) IsWifiRegistered() bool {
	return r.eng.IsWifiRegistered()
}

// IsCallOngoing は診断用に通話中状態を返す。
func (r *Runner) IsCallOngoing() bool {
	return r.eng.IsCallOngoing()
}

// SetNrSaDisabled はengine.ModemPortの実装。
// モデムへのコマンド送信を別goroutineで行い、呼び出し元をブロックしない。
// 失敗はログに記録するのみで、再試行は行わない。
func (r *Runner) SetNrSaDisabled(slot int, disabled bool) {
	r.cmdWG.Add(1)
	go func() {
		defer r.cmdWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), config.ModemRequestTimeout)
		defer cancel()
		if err := r.modem.SetN1Mode(ctx, slot, !disabled); err != nil {
			slog.Warn("N1モード設定コマンド失敗",
				"event_id", "NRSA_CMD_ERR",
				"slot", slot,
				"disabled", disabled,
				"error", err,
			)
		}
	}()
}

// QueryVonrEnabled はengine.ModemPortの実装。
// VoNR問い合わせを別goroutineで行い、完了を同じイベントループへ投入する。
func (r *Runner) QueryVonrEnabled(slot int, seq uint64) {
	r.cmdWG.Add(1)
	go func() {
		defer r.cmdWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), config.ModemRequestTimeout)
		defer cancel()
		enabled, err := r.modem.QueryVonr(ctx, slot)
		r.post(event{kind: evVonrResult, vonrSeq: seq, vonrEnabled: enabled, vonrErr: err})
	}()
}

// post はイベントをループに投入する。
// 停止後は捨て、キュー満杯時は警告を出して捨てる（後続イベントが現在値を
// 再読取するため、取りこぼしは次のイベントで回復する）。
func (r *Runner) post(ev event) {
	select {
	case <-r.done:
		return
	default:
	}

	select {
	case r.events <- ev:
	default:
		slog.Warn("イベントキュー満杯のため破棄",
			"event_id", "NRSA_EVENT_DROP",
			"slot", r.slot,
			"sub_id", r.subID,
			"kind", int(ev.kind),
		)
	}
}

// loop はイベントを到着順に処理する。
func (r *Runner) loop() {
	defer close(r.stopped)

	ctx := context.Background()

	for {
		select {
		case <-r.done:
			r.eng.Teardown()
			return
		case ev := <-r.events:
			r.dispatch(ctx, ev)
		}
	}
}

// dispatch は1件のイベントをEngineへ引き渡す。
func (r *Runner) dispatch(ctx context.Context, ev event) {
	switch ev.kind {
	case evCarrierConfig:
		r.eng.OnCarrierConfigChanged(ctx)
	case evCapability:
		r.eng.UpdateCapability(ev.capabilities)
	case evRegistered:
		r.eng.OnRegistered(ev.tech, ev.featureTags)
	case evUnregistered:
		r.eng.OnUnregistered(ev.tech)
	case evCallState:
		r.eng.OnCallStateChanged(ctx)
	case evVonrResult:
		r.eng.CompleteVonrQuery(ev.vonrSeq, ev.vonrEnabled, ev.vonrErr)
	}
}
