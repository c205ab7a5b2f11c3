package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/call"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/ims"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/mocks"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/nrsa"
	"go.uber.org/mock/gomock"
)

// テスト用定数
const (
	testSlot  = 0
	testSubID = 101
	testIMSI  = "440101234567890"
)

// testRig はEngineとコラボレータのモック一式を保持する
type testRig struct {
	eng      *Engine
	configs  *mocks.MockConfigSource
	calls    *mocks.MockReader
	notifier *mocks.MockNotifier
	modem    *mocks.MockModemPort
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	ctrl := gomock.NewController(t)

	r := &testRig{
		configs:  mocks.NewMockConfigSource(ctrl),
		calls:    mocks.NewMockReader(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		modem:    mocks.NewMockModemPort(ctrl),
	}
	r.eng = NewEngine(testSlot, testSubID, testIMSI, true, r.configs, r.calls, r.notifier, r.modem)
	return r
}

// saConfig はSA提供ありのキャリア設定を返す
func saConfig(p nrsa.DisablePolicy) *nrsa.CarrierConfig {
	return &nrsa.CarrierConfig{
		DisablePolicy:  p,
		NrAvailability: []int{nrsa.NrAvailabilityNSA, nrsa.NrAvailabilitySA},
	}
}

// noSaConfig はSA提供なしのキャリア設定を返す
func noSaConfig(p nrsa.DisablePolicy) *nrsa.CarrierConfig {
	return &nrsa.CarrierConfig{
		DisablePolicy:  p,
		NrAvailability: []int{nrsa.NrAvailabilityNSA},
	}
}

// loadConfig はキャリア設定変更通知1回分を駆動する
func (r *testRig) loadConfig(cfg *nrsa.CarrierConfig) {
	r.configs.EXPECT().GetConfig(gomock.Any(), testSubID).Return(cfg, nil)
	r.eng.OnCarrierConfigChanged(context.Background())
}

// driveCallState は通話状態変化通知1回分を駆動する
func (r *testRig) driveCallState(fg, bg call.State) {
	r.calls.EXPECT().ReadStates(gomock.Any(), testSlot).Return(fg, bg, nil)
	r.eng.OnCallStateChanged(context.Background())
}

// --- ポリシー別の判定テスト ---

func TestEngine_PolicyNone_NeverDisables(t *testing.T) {
	r := newTestRig(t)

	// NONEではリスナー登録もモデムコマンドも発生しない
	r.loadConfig(saConfig(nrsa.PolicyNone))
	r.eng.UpdateCapability(ims.CapabilityVoice | ims.CapabilitySMS)
	r.eng.OnRegistered(ims.TechIWLAN, []string{"+g.3gpp.icsi-ref"})

	if !r.eng.IsWifiRegistered() {
		t.Error("IsWifiRegistered() = false, want true")
	}
}

func TestEngine_WFCCall_DisableAfterSecondEvent(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)

	// Wi-Fi登録のみではまだ無効化しない
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// 通話開始で初めて1回だけ無効化
	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	// 通話終了で1回だけ再許可
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.driveCallState(call.StateIdle, call.StateIdle)
}

func TestEngine_WFCCall_BackgroundCallCounts(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// バックグラウンドスロットの通話でも無効化する
	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateHolding, call.StateActive)
}

func TestEngine_WFCCall_CapabilityLossReenables(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	// 音声機能喪失で再許可（機能更新は値が同じでも必ず再評価する）
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.UpdateCapability(ims.CapabilitySMS)
}

func TestEngine_WFCCall_WifiLossReenables(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.OnUnregistered(ims.TechIWLAN)
}

func TestEngine_WFCCall_SaWithdrawnReenables(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	// SA提供が取り下げられると監視不要となり、リスナー解除と再許可が走る
	r.notifier.EXPECT().UnregisterForCallStateChanged(testSlot).Times(1)
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.loadConfig(noSaConfig(nrsa.PolicyWFCCall))
}

func TestEngine_WFCRegistered_TracksRegistrationOnly(t *testing.T) {
	r := newTestRig(t)

	// このポリシーでは通話リスナー登録は発生しない
	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))
	r.eng.UpdateCapability(ims.CapabilityVoice)

	// 通話なしでもWi-Fi登録だけで無効化
	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.OnUnregistered(ims.TechIWLAN)
}

func TestEngine_UnregisterOtherTech_KeepsWifiFlag(t *testing.T) {
	r := newTestRig(t)

	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))
	r.eng.UpdateCapability(ims.CapabilityVoice)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// IWLAN以外の登録解除はWi-Fi登録フラグを変更しない
	r.eng.OnUnregistered(ims.TechLTE)

	if !r.eng.IsWifiRegistered() {
		t.Error("LTE登録解除後にIsWifiRegistered() = false, want true")
	}
}

// --- リスナー購読の遷移テスト ---

func TestEngine_ListenerTransitions_ExactlyOnce(t *testing.T) {
	r := newTestRig(t)

	// 監視不要 → 必要: 登録はちょうど1回
	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))

	// 同一ポリシーの再通知では追加の登録なし
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))

	// 必要 → 不要: 解除はちょうど1回
	r.notifier.EXPECT().UnregisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))

	// 再通知では追加の解除なし
	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))
}

func TestEngine_PolicyNone_ListenerNotRegistered(t *testing.T) {
	r := newTestRig(t)

	// NONEでは登録されない（notifierに期待を設定しないことで検証）
	r.loadConfig(saConfig(nrsa.PolicyNone))
}

// --- VoNR問い合わせテスト ---

// driveToVonrQuery はVoNR問い合わせ発行直前までの状態を作る
func (r *testRig) driveToVonrQuery(t *testing.T, seq uint64) {
	t.Helper()
	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCallVonrDisabled))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// 3条件成立 + VoNR未確定 → 問い合わせ発行、判定は保留
	r.modem.EXPECT().QueryVonrEnabled(testSlot, seq).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)
}

func TestEngine_VonrDisabled_Disables(t *testing.T) {
	r := newTestRig(t)
	r.driveToVonrQuery(t, 1)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.CompleteVonrQuery(1, false, nil)
}

func TestEngine_VonrEnabled_KeepsSa(t *testing.T) {
	r := newTestRig(t)
	r.driveToVonrQuery(t, 1)

	// VoNR有効なら無効化コマンドは発行されない
	r.eng.CompleteVonrQuery(1, true, nil)
}

func TestEngine_VonrStaleResponse_Discarded(t *testing.T) {
	r := newTestRig(t)
	r.driveToVonrQuery(t, 1)

	// 飛行中に登録イベントが割り込むとシーケンスが進み、再問い合わせが走る
	r.modem.EXPECT().QueryVonrEnabled(testSlot, uint64(3)).Times(1)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// 旧シーケンスの応答は破棄され、コマンドは発行されない
	r.eng.CompleteVonrQuery(1, false, nil)

	// 最新シーケンスの応答のみ適用される
	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.CompleteVonrQuery(3, false, nil)
}

func TestEngine_VonrQueryError_RetriesOnNextEvaluation(t *testing.T) {
	r := newTestRig(t)
	r.driveToVonrQuery(t, 1)

	// 問い合わせ失敗はコマンドを発行せず、次の評価契機で再発行する
	r.eng.CompleteVonrQuery(1, false, errors.New("modem unavailable"))

	r.modem.EXPECT().QueryVonrEnabled(testSlot, uint64(2)).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)
}

func TestEngine_VonrAwayFromWifi_Reenables(t *testing.T) {
	r := newTestRig(t)
	r.driveToVonrQuery(t, 1)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.CompleteVonrQuery(1, false, nil)

	// VoNR無効による無効化中でも、Wi-Fiから離れれば再許可する
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.OnUnregistered(ims.TechIWLAN)
}

// --- 冪等性テスト ---

func TestEngine_NoRedundantCommands(t *testing.T) {
	r := newTestRig(t)

	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))
	r.eng.UpdateCapability(ims.CapabilityVoice)

	// 無効化コマンドは状態が変化した1回のみ
	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// 同じ登録イベントの再通知では再発行しない
	r.eng.OnRegistered(ims.TechIWLAN, nil)
	r.eng.UpdateCapability(ims.CapabilityVoice)
}

// --- Teardownテスト ---

func TestEngine_Teardown_WhileDisabled(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	// Teardownはリスナーを解除し、無条件に許可を指示する
	r.notifier.EXPECT().UnregisterForCallStateChanged(testSlot).Times(1)
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.Teardown()
}

func TestEngine_Teardown_WhileEnabled(t *testing.T) {
	r := newTestRig(t)

	r.loadConfig(saConfig(nrsa.PolicyNone))

	// 無効化していなくても許可コマンドは必ず発行される
	r.modem.EXPECT().SetNrSaDisabled(testSlot, false).Times(1)
	r.eng.Teardown()
}

// --- キャリア設定エラーテスト ---

func TestEngine_ConfigReadError_KeepsPrevious(t *testing.T) {
	r := newTestRig(t)

	r.loadConfig(saConfig(nrsa.PolicyWFCRegistered))
	r.eng.UpdateCapability(ims.CapabilityVoice)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	// 読み込み失敗時は直前の設定を維持し、余計なコマンドを出さない
	r.configs.EXPECT().GetConfig(gomock.Any(), testSubID).Return(nil, errors.New("valkey down"))
	r.eng.OnCarrierConfigChanged(context.Background())
}

// --- 通話状態読み取りエラーテスト ---

func TestEngine_CallReadError_KeepsPreviousCallState(t *testing.T) {
	r := newTestRig(t)

	r.notifier.EXPECT().RegisterForCallStateChanged(testSlot).Times(1)
	r.loadConfig(saConfig(nrsa.PolicyWFCCall))
	r.eng.UpdateCapability(ims.CapabilityVoice)
	r.eng.OnRegistered(ims.TechIWLAN, nil)

	r.modem.EXPECT().SetNrSaDisabled(testSlot, true).Times(1)
	r.driveCallState(call.StateActive, call.StateIdle)

	// 読み取り失敗時は通話中扱いを維持し、誤って再許可しない
	r.calls.EXPECT().ReadStates(gomock.Any(), testSlot).Return(call.StateIdle, call.StateIdle, errors.New("valkey down"))
	r.eng.OnCallStateChanged(context.Background())

	if !r.eng.IsCallOngoing() {
		t.Error("読み取り失敗後にIsCallOngoing() = false, want true")
	}
}

// --- 診断用参照テスト ---

func TestEngine_Introspection(t *testing.T) {
	r := newTestRig(t)

	r.loadConfig(saConfig(nrsa.PolicyNone))

	if r.eng.IsWifiRegistered() || r.eng.IsCallOngoing() {
		t.Error("初期状態で登録済み/通話中と報告された")
	}

	r.eng.OnRegistered(ims.TechIWLAN, nil)
	if !r.eng.IsWifiRegistered() {
		t.Error("IWLAN登録後にIsWifiRegistered() = false")
	}

	r.eng.OnRegistered(ims.TechLTE, nil)
	if r.eng.IsWifiRegistered() {
		t.Error("LTE登録後にIsWifiRegistered() = true")
	}
}
