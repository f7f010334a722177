package services

import (
	"strings"

	"github.com/LouisLau-art/indie-board/internal/models"
	"github.com/LouisLau-art/indie-board/internal/utils"
)

// ConflictKind 冲突类型。
type ConflictKind int

const (
	// ConflictTitle 标题重复（忽略大小写）
	ConflictTitle ConflictKind = iota
	// ConflictURL 根标识重复（同一个站点/仓库）
	ConflictURL
)

// Conflict 新提交与已有产品的碰撞结果。
type Conflict struct {
	Kind     ConflictKind
	Existing models.Product
}

// FindConflict 在现有产品中查找与候选提交冲突的条目。
// 先按折叠后的标题比对，再按 URL 根标识比对，标题冲突优先；
// 均按现有产品的存储顺序取第一个命中。未命中返回 nil。
//
// 全量线性扫描。产品总量很小且没有分页，这里不值得建索引。
func FindConflict(candidateTitle, candidateURL string, existing []models.Product) *Conflict {
	titleLower := strings.ToLower(strings.TrimSpace(candidateTitle))
	for _, p := range existing {
		if strings.ToLower(strings.TrimSpace(p.Title)) == titleLower {
			return &Conflict{Kind: ConflictTitle, Existing: p}
		}
	}

	// 比较的是提交 URL 与库内 URL 各自的根标识，
	// 所以这里要对每条库内 URL 再做一次归一化。
	rootIdentity, _ := utils.NormalizeURL(candidateURL)
	for _, p := range existing {
		storedRoot, _ := utils.NormalizeURL(p.URL)
		if storedRoot == rootIdentity {
			return &Conflict{Kind: ConflictURL, Existing: p}
		}
	}

	return nil
}
