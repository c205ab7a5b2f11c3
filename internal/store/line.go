package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Line はスロットにプロビジョニングされた回線情報を表す。
type Line struct {
	Slot           int
	SubscriptionID int
	IMSI           string
}

// LineStore は回線プロビジョニング情報へのアクセスを定義する。
type LineStore interface {
	// GetLine は指定スロットの回線情報を取得する。
	GetLine(ctx context.Context, slot int) (*Line, error)
	// ActiveLines は全スロットを走査し、プロビジョニング済み回線一覧を返す。
	ActiveLines(ctx context.Context, slotCount int) ([]*Line, error)
}

// lineStore はLineStoreインターフェースの実装。
type lineStore struct {
	vc *ValkeyClient
}

// NewLineStore は新しいLineStoreを生成する。
func NewLineStore(vc *ValkeyClient) LineStore {
	return &lineStore{vc: vc}
}

// GetLine は指定スロットの回線情報を取得する。
func (s *lineStore) GetLine(ctx context.Context, slot int) (*Line, error) {
	key := KeyPrefixLine + strconv.Itoa(slot)
	result, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(result) == 0 {
		return nil, ErrLineNotFound
	}

	subID, err := strconv.Atoi(result["sub_id"])
	if err != nil {
		return nil, fmt.Errorf("%w: sub_id parse error: %v", ErrConfigInvalid, err)
	}

	return &Line{
		Slot:           slot,
		SubscriptionID: subID,
		IMSI:           result["imsi"],
	}, nil
}

// ActiveLines は全スロットを走査し、プロビジョニング済み回線一覧を返す。
// 未プロビジョニングのスロットは読み飛ばす。
func (s *lineStore) ActiveLines(ctx context.Context, slotCount int) ([]*Line, error) {
	lines := make([]*Line, 0, slotCount)
	for slot := 0; slot < slotCount; slot++ {
		line, err := s.GetLine(ctx, slot)
		if err != nil {
			if errors.Is(err, ErrLineNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
