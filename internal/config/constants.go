package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
)

// Modem Agent接続設定
const (
	ModemConnectTimeout = 2 * time.Second
	ModemRequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "modem-agent"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// 回線イベントループ設定
const (
	EventQueueDepth = 32
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
