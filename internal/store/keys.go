package store

// Valkeyキープレフィックス
const (
	KeyPrefixCarrier = "carrier:" // キャリア設定（加入者ID単位）
	KeyPrefixLine    = "line:"    // 回線プロビジョニング（スロット単位）
	KeyPrefixCall    = "call:"    // 通話スロット現在状態（スロット単位）
)

// Pub/Subチャネル名
const (
	ChannelCarrierEvents = "carrier:events" // キャリア設定変更通知
	ChannelIMSEvents     = "ims:events"     // IMS登録/機能イベント
	ChannelCallEvents    = "call:events"    // 通話状態変化通知
	ChannelLineEvents    = "line:events"    // 回線アップ/ダウン通知
)

// キャリア設定ハッシュのフィールド名
const (
	FieldDisablePolicy  = "nrsa_disable_policy"
	FieldNrAvailability = "nr_availability"
)

// 通話状態ハッシュのフィールド名
const (
	FieldForeground = "foreground"
	FieldBackground = "background"
)
