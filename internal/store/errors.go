package store

import "errors"

// センチネルエラー
var (
	// ErrValkeyUnavailable はValkeyへのアクセスに失敗した場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrConfigNotFound はキャリア設定が存在しない場合のエラー
	ErrConfigNotFound = errors.New("carrier config not found")

	// ErrConfigInvalid はキャリア設定の内容が不正な場合のエラー
	ErrConfigInvalid = errors.New("carrier config invalid")

	// ErrLineNotFound は回線プロビジョニングが存在しない場合のエラー
	ErrLineNotFound = errors.New("line not found")
)
