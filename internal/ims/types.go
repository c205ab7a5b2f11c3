// Package ims はIMSスタックから受信するイベントの語彙を定義する。
package ims

// Technology はIMS登録の無線アクセス技術を表す。
type Technology int

// IMS登録技術の定数
const (
	TechLTE      Technology = 0
	TechIWLAN    Technology = 1
	TechCrossSIM Technology = 2
	TechNR       Technology = 3
)

// String は技術名を返す。
func (t Technology) String() string {
	switch t {
	case TechLTE:
		return "LTE"
	case TechIWLAN:
		return "IWLAN"
	case TechCrossSIM:
		return "CROSS_SIM"
	case TechNR:
		return "NR"
	default:
		return "UNKNOWN"
	}
}

// MMTEL機能のビットマスク定数
const (
	CapabilityVoice = 1 << 0
	CapabilityVideo = 1 << 1
	CapabilityUT    = 1 << 2
	CapabilitySMS   = 1 << 3
)

// HasVoice はビットマスクに音声機能が含まれるかを判定する。
func HasVoice(capabilities int) bool {
	return capabilities&CapabilityVoice != 0
}

// IMSイベント種別（ims:eventsチャネルのkindフィールド）
const (
	EventKindRegistered   = "registered"
	EventKindUnregistered = "unregistered"
	EventKindCapability   = "capability"
)

// Event はims:eventsチャネルで配信されるイベントのペイロードを表す。
type Event struct {
	Kind           string     `json:"kind"`
	SubscriptionID int        `json:"sub_id"`
	Technology     Technology `json:"technology,omitempty"`
	FeatureTags    []string   `json:"feature_tags,omitempty"`
	Capabilities   int        `json:"capabilities,omitempty"`
}
