// Package nrsa はNR SAモード制御の判定ロジックを提供する。
package nrsa

// DisablePolicy はキャリア設定で指定されるNR SA無効化ポリシーを表す。
type DisablePolicy int

// NR SA無効化ポリシーの定数（キャリア設定の整数値に対応）
const (
	// PolicyNone は無効化を行わない
	PolicyNone DisablePolicy = 0
	// PolicyWFCCall はWFC通話中に無効化する
	PolicyWFCCall DisablePolicy = 1
	// PolicyWFCCallVonrDisabled はVoNR無効かつWFC通話中に無効化する
	PolicyWFCCallVonrDisabled DisablePolicy = 2
	// PolicyWFCRegistered はWFC登録中に無効化する
	PolicyWFCRegistered DisablePolicy = 3
)

// IsValid は既知のポリシー値かどうかを判定する。
func (p DisablePolicy) IsValid() bool {
	return p >= PolicyNone && p <= PolicyWFCRegistered
}

// String はポリシー名を返す。
func (p DisablePolicy) String() string {
	switch p {
	case PolicyNone:
		return "NONE"
	case PolicyWFCCall:
		return "DISABLE_ON_WFC_CALL"
	case PolicyWFCCallVonrDisabled:
		return "DISABLE_ON_WFC_CALL_IF_VONR_DISABLED"
	case PolicyWFCRegistered:
		return "DISABLE_ON_WFC_REGISTERED"
	default:
		return "UNKNOWN"
	}
}

// NR利用可能性フラグの定数（キャリア設定のnr_availability配列要素）
const (
	// NrAvailabilityNSA はNSA構成でのNR利用可を表す
	NrAvailabilityNSA = 1
	// NrAvailabilitySA はSA構成でのNR利用可を表す
	NrAvailabilitySA = 2
)

// CarrierConfig はキャリア設定から読み取るNR SA関連の設定値を表す。
type CarrierConfig struct {
	DisablePolicy  DisablePolicy
	NrAvailability []int
}

// SaAvailable はキャリアがNR SAを提供しているかどうかを返す。
func (c *CarrierConfig) SaAvailable() bool {
	for _, v := range c.NrAvailability {
		if v == NrAvailabilitySA {
			return true
		}
	}
	return false
}

// Inputs は判定に用いる入力の現在値を表す。
type Inputs struct {
	VoiceCapable bool
	SaAvailable  bool
	OverWifi     bool
	CallOngoing  bool
	VonrEnabled  bool
	// VonrKnown はVonrEnabledが有効な（新鮮な）応答かどうかを表す
	VonrKnown bool
}

// Verdict は判定結果を表す。
type Verdict int

const (
	// VerdictAllow はNR SAを許可する
	VerdictAllow Verdict = iota
	// VerdictDisable はNR SAを無効化する
	VerdictDisable
	// VerdictNeedVonr はVoNR状態の問い合わせ完了まで判定を保留する
	VerdictNeedVonr
)

// String は判定結果名を返す。
func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "ALLOW"
	case VerdictDisable:
		return "DISABLE"
	case VerdictNeedVonr:
		return "NEED_VONR"
	default:
		return "UNKNOWN"
	}
}
