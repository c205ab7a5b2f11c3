// Package engine は回線ごとのNR SAモード制御エンジンを提供する。
//
// Engineの全メソッドは所属回線のイベントループ（internal/line.Runner）から
// 直列に呼び出される前提であり、内部ロックを持たない。
package engine

import (
	"context"
	"log/slog"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/ims"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/logging"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/nrsa"
)

// Engine は1回線分のNR SAモード制御状態を保持する。
type Engine struct {
	slot       int
	subID      int
	maskedIMSI string

	configs  ConfigSource
	calls    call.Reader
	notifier call.Notifier
	modem    ModemPort

	// キャリア設定（最後に読み取りに成功した値）
	cfg nrsa.CarrierConfig

	// トラッカー状態
	voiceCapable bool
	overWifi     bool
	featureTags  []string
	callOngoing  bool

	// VoNR問い合わせ状態
	vonrEnabled  bool
	vonrFresh    bool
	vonrInFlight bool
	querySeq     uint64

	// モデムに最後に要求した無効化状態
	currentlyDisabled bool

	// 通話状態リスナーの購読有無
	callListenerBound bool
}

// NewEngine は指定回線のEngineを生成する。
// 初期状態ではキャリア設定未読のためPolicyNone相当として動作する。
// 初回のキャリア設定読み込みはRunnerが起動時にOnCarrierConfigChangedを
// 合成することで行われる。
func NewEngine(slot, subID int, imsi string, maskIMSI bool, cs ConfigSource, cr call.Reader, cn call.Notifier, mp ModemPort) *Engine {
	return &Engine{
		slot:       slot,
		subID:      subID,
		maskedIMSI: logging.MaskIMSI(imsi, maskIMSI),
		configs:    cs,
		calls:      cr,
		notifier:   cn,
		modem:      mp,
	}
}

// OnCarrierConfigChanged はキャリア設定変更通知を処理する。
// 設定を再読込し、通話リスナー購読を調整したうえで必ず再評価する。
// 読み込みに失敗した場合は直前の設定を維持する。
func (e *Engine) OnCarrierConfigChanged(ctx context.Context) {
	cfg, err := e.configs.GetConfig(ctx, e.subID)
	if err != nil {
		slog.Warn("キャリア設定読み込み失敗",
			"event_id", "NRSA_CFG_READ_ERR",
			"slot", e.slot,
			"sub_id", e.subID,
			"error", err,
		)
	} else {
		e.cfg = *cfg
		slog.Info("キャリア設定再読込",
			"event_id", "NRSA_CFG_RELOAD",
			"slot", e.slot,
			"sub_id", e.subID,
			"disable_policy", e.cfg.DisablePolicy.String(),
			"sa_available", e.cfg.SaAvailable(),
		)
	}

	e.reconcileCallListener()
	e.invalidateVonr()
	e.evaluate()
}

// UpdateCapability はMMTEL機能ビットマスク更新を処理する。
// 値が変化しない場合も強制的に再評価する。
func (e *Engine) UpdateCapability(capabilities int) {
	e.voiceCapable = ims.HasVoice(capabilities)
	e.evaluate()
}

// OnRegistered はIMS登録イベントを処理する。
func (e *Engine) OnRegistered(tech ims.Technology, featureTags []string) {
	e.overWifi = tech == ims.TechIWLAN
	e.featureTags = featureTags
	e.invalidateVonr()
	e.evaluate()
}

// OnUnregistered はIMS登録解除イベントを処理する。
// IWLAN以外の技術に対する登録解除はoverWifiフラグを変更しない。
func (e *Engine) OnUnregistered(tech ims.Technology) {
	if tech == ims.TechIWLAN {
		e.overWifi = false
		e.featureTags = nil
		e.invalidateVonr()
	}
	e.evaluate()
}

// OnCallStateChanged は通話状態変化通知を処理する。
// 通話スロットの現在状態を読み取り、必ず再評価する。
// 読み取りに失敗した場合は直前の通話状態を維持する。
func (e *Engine) OnCallStateChanged(ctx context.Context) {
	fg, bg, err := e.calls.ReadStates(ctx, e.slot)
	if err != nil {
		slog.Warn("通話状態読み取り失敗",
			"event_id", "NRSA_CALL_READ_ERR",
			"slot", e.slot,
			"sub_id", e.subID,
			"error", err,
		)
	} else {
		ongoing := fg.IsActive() || bg.IsActive()
		if ongoing != e.callOngoing {
			e.callOngoing = ongoing
			e.invalidateVonr()
		}
	}
	e.evaluate()
}

// CompleteVonrQuery はVoNR問い合わせの応答を処理する。
// シーケンス番号が最新と一致しない応答は陳腐化したものとして破棄する。
func (e *Engine) CompleteVonrQuery(seq uint64, enabled bool, err error) {
	if seq != e.querySeq {
		slog.Debug("VoNR応答破棄（シーケンス不一致）",
			"event_id", "VONR_RESULT_STALE",
			"slot", e.slot,
			"sub_id", e.subID,
			"seq", seq,
			"latest_seq", e.querySeq,
		)
		return
	}

	e.vonrInFlight = false

	if err != nil {
		slog.Warn("VoNR問い合わせ失敗",
			"event_id", "VONR_QUERY_ERR",
			"slot", e.slot,
			"sub_id", e.subID,
			"seq", seq,
			"error", err,
		)
		// 再発行は次の評価契機に委ねる
		return
	}

	e.vonrEnabled = enabled
	e.vonrFresh = true
	slog.Debug("VoNR応答適用",
		"event_id", "VONR_RESULT",
		"slot", e.slot,
		"sub_id", e.subID,
		"seq", seq,
		"enabled", enabled,
	)
	e.evaluate()
}

// Teardown は回線終了時の後始末を行う。
// 通話リスナーを解除し、直前の状態にかかわらずNR SA許可を無条件に指示する。
// ポリシー制御の終了後にユーザー制限状態を残さないためのフェイルセーフ。
func (e *Engine) Teardown() {
	if e.callListenerBound {
		e.notifier.UnregisterForCallStateChanged(e.slot)
		e.callListenerBound = false
	}

	e.modem.SetNrSaDisabled(e.slot, false)
	e.currentlyDisabled = false
	e.vonrFresh = false
	e.vonrInFlight = false
	e.voiceCapable = false
	e.overWifi = false
	e.featureTags = nil
	e.callOngoing = false

	slog.Info("NR SAモード制御終了",
		"event_id", "NRSA_TEARDOWN",
		"slot", e.slot,
		"sub_id", e.subID,
		"imsi", e.maskedIMSI,
	)
}

// IsWifiRegistered はIMS音声サービスがWi-Fi経由で登録中かどうかを返す。
func (e *Engine) IsWifiRegistered() bool {
	return e.overWifi
}

// IsCallOngoing は通話が進行中かどうかを返す。
func (e *Engine) IsCallOngoing() bool {
	return e.callOngoing
}

// reconcileCallListener は現在のポリシーに応じて通話リスナー購読を調整する。
// 既に目的の状態であれば何もしない。
func (e *Engine) reconcileCallListener() {
	needs := nrsa.NeedsCallTracking(e.cfg.DisablePolicy, e.cfg.SaAvailable())

	if needs && !e.callListenerBound {
		e.notifier.RegisterForCallStateChanged(e.slot)
		e.callListenerBound = true
		slog.Info("通話状態リスナー登録",
			"event_id", "NRSA_CALL_LISTENER_REG",
			"slot", e.slot,
			"sub_id", e.subID,
		)
		return
	}

	if !needs && e.callListenerBound {
		e.notifier.UnregisterForCallStateChanged(e.slot)
		e.callListenerBound = false
		// リスナー解除後は通話なし扱いに戻す
		e.callOngoing = false
		slog.Info("通話状態リスナー解除",
			"event_id", "NRSA_CALL_LISTENER_UNREG",
			"slot", e.slot,
			"sub_id", e.subID,
		)
	}
}

// invalidateVonr はキャッシュ済みVoNR応答を無効化する。
// 飛行中の問い合わせがある場合はシーケンスを進めて応答を陳腐化させ、
// 次の評価で新しい問い合わせを発行できる状態に戻す。
func (e *Engine) invalidateVonr() {
	e.vonrFresh = false
	if e.vonrInFlight {
		e.querySeq++
		e.vonrInFlight = false
	}
}

// inputs は判定用の入力スナップショットを生成する。
func (e *Engine) inputs() nrsa.Inputs {
	return nrsa.Inputs{
		VoiceCapable: e.voiceCapable,
		SaAvailable:  e.cfg.SaAvailable(),
		OverWifi:     e.overWifi,
		CallOngoing:  e.callOngoing,
		VonrEnabled:  e.vonrEnabled,
		VonrKnown:    e.vonrFresh,
	}
}

// evaluate は現在状態から無効化要否を再判定し、変化時のみモデムへ指示する。
func (e *Engine) evaluate() {
	verdict := nrsa.Decide(e.cfg.DisablePolicy, e.inputs())

	if verdict == nrsa.VerdictNeedVonr {
		e.issueVonrQuery()
		// 応答到着まで判定を保留（現在のモードを維持）
		return
	}

	desired := verdict == nrsa.VerdictDisable
	if desired == e.currentlyDisabled {
		return
	}

	e.currentlyDisabled = desired
	e.modem.SetNrSaDisabled(e.slot, desired)
	slog.Info("NR SAモード変更指示",
		"event_id", "NRSA_MODE_CHANGE",
		"slot", e.slot,
		"sub_id", e.subID,
		"imsi", e.maskedIMSI,
		"disabled", desired,
		"disable_policy", e.cfg.DisablePolicy.String(),
	)
}

// issueVonrQuery はVoNR状態の非同期問い合わせを発行する。
// 既に問い合わせが飛行中の場合は何もしない。
func (e *Engine) issueVonrQuery() {
	if e.vonrInFlight {
		return
	}
	e.querySeq++
	e.vonrInFlight = true
	e.modem.QueryVonrEnabled(e.slot, e.querySeq)
	slog.Debug("VoNR問い合わせ発行",
		"event_id", "VONR_QUERY_ISSUED",
		"slot", e.slot,
		"sub_id", e.subID,
		"seq", e.querySeq,
	)
}
