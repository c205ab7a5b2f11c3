package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/engine"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/nrsa"
)

// carrierConfigStore はengine.ConfigSourceインターフェースの実装。
type carrierConfigStore struct {
	vc *ValkeyClient
}

// NewCarrierConfigStore は新しいキャリア設定ストアを生成する。
func NewCarrierConfigStore(vc *ValkeyClient) engine.ConfigSource {
	return &carrierConfigStore{vc: vc}
}

// GetConfig は指定された加入者IDに対応するNR SA関連設定を取得する。
func (s *carrierConfigStore) GetConfig(ctx context.Context, subID int) (*nrsa.CarrierConfig, error) {
	key := KeyPrefixCarrier + strconv.Itoa(subID)
	result, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	// キーが存在しない場合、HGetAllは空mapを返す
	if len(result) == 0 {
		return nil, ErrConfigNotFound
	}

	cfg := &nrsa.CarrierConfig{}

	// nrsa_disable_policyフィールドの取得
	// 不正値・未知のポリシー値はNONE扱い
	policyVal, ok := result[FieldDisablePolicy]
	if ok {
		n, err := strconv.Atoi(policyVal)
		if err == nil && nrsa.DisablePolicy(n).IsValid() {
			cfg.DisablePolicy = nrsa.DisablePolicy(n)
		}
	}

	// nr_availabilityフィールドのJSONデシリアライズ
	availJSON, ok := result[FieldNrAvailability]
	if ok && availJSON != "" {
		var avail []int
		if err := json.Unmarshal([]byte(availJSON), &avail); err != nil {
			return nil, fmt.Errorf("%w: nr_availability JSON parse error: %v", ErrConfigInvalid, err)
		}
		cfg.NrAvailability = avail
	} else {
		cfg.NrAvailability = []int{}
	}

	return cfg, nil
}
