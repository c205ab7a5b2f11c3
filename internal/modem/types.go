package modem

// n1ModeRequest はN1モード設定リクエストのボディを表す
type n1ModeRequest struct {
	Allowed bool `json:"allowed"`
}

// vonrResponseJSON はVoNR状態レスポンスのパース用内部構造体
type vonrResponseJSON struct {
	Enabled bool `json:"enabled"`
}

// ProblemDetails はRFC 7807エラーレスポンスを表す
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
