package services

import (
	"time"

	"github.com/LouisLau-art/indie-board/internal/models"
)

// VoteWindow 同一身份对同一产品的投票冷却窗口。
const VoteWindow = 24 * time.Hour

// VoteAllowed 判断本次投票是否放行。
// prior 是该 (产品, 身份) 的历史投票；只要存在一票满足
// votedAt > now-24h 就拒绝。严格大于：恰好满 24 小时的旧票不再拦截。
// 产品是否存在由调用方先行确认，不属于这里的判定。
func VoteAllowed(now time.Time, prior []models.Vote) bool {
	cutoff := now.Add(-VoteWindow)
	for _, v := range prior {
		if v.VotedAt.After(cutoff) {
			return false
		}
	}
	return true
}
