package nrsa

// Decide はポリシーと現在の入力からNR SAの無効化要否を判定する。
// 純粋関数であり、入力以外の状態を参照しない。
//
// PolicyWFCCallVonrDisabledでWFC通話中の3条件が成立していても
// VoNR状態が未確定の場合はVerdictNeedVonrを返し、推測で判定しない。
func Decide(p DisablePolicy, in Inputs) Verdict {
	switch p {
	case PolicyWFCCall:
		if in.VoiceCapable && in.SaAvailable && in.OverWifi && in.CallOngoing {
			return VerdictDisable
		}
		return VerdictAllow

	case PolicyWFCCallVonrDisabled:
		if !(in.VoiceCapable && in.SaAvailable && in.OverWifi && in.CallOngoing) {
			return VerdictAllow
		}
		if !in.VonrKnown {
			return VerdictNeedVonr
		}
		if !in.VonrEnabled {
			return VerdictDisable
		}
		return VerdictAllow

	case PolicyWFCRegistered:
		if in.VoiceCapable && in.SaAvailable && in.OverWifi {
			return VerdictDisable
		}
		return VerdictAllow

	default:
		// PolicyNoneおよび未知のポリシー値は無効化しない
		return VerdictAllow
	}
}

// NeedsCallTracking は通話状態の監視が必要なポリシーかどうかを判定する。
// SAが提供されていない場合は監視不要。
func NeedsCallTracking(p DisablePolicy, saAvailable bool) bool {
	if !saAvailable {
		return false
	}
	return p == PolicyWFCCall || p == PolicyWFCCallVonrDisabled
}
