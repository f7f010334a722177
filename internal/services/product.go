package services

import (
	"errors"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/LouisLau-art/indie-board/internal/models"
	"github.com/LouisLau-art/indie-board/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ProductService 提交与投票两条工作流的编排层。
// 存储句柄由构造时注入，包内不持有任何全局状态。
type ProductService struct {
	db *gorm.DB
	// sanitizer 剥掉标题里的 HTML 标签，只保留纯文本
	sanitizer *bluemonday.Policy
	// dedupDisabled 开启后跳过归一化与查重，URL 原样入库（兼容旧部署行为）
	dedupDisabled bool
}

func NewProductService(db *gorm.DB, dedupDisabled bool) *ProductService {
	return &ProductService{
		db:            db,
		sanitizer:     bluemonday.StrictPolicy(),
		dedupDisabled: dedupDisabled,
	}
}

// ListProducts 返回按票数降序的全部产品。每次都读库，不做缓存。
func (s *ProductService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("votes DESC, created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Submit 处理新产品提交：校验 -> 归一化 -> 查重 -> 入库。
// 查重和插入在同一事务里完成，防止两笔相同提交并发通过检查。
func (s *ProductService) Submit(title, rawURL string) (*models.Product, error) {
	title = strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(title)))
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "请输入产品名称"}
	}

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &ValidationError{Field: "url", Message: "请输入产品链接"}
	}
	if u, err := url.Parse(rawURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Field: "url", Message: "URL 格式无效"}
	}

	storedURL := rawURL
	if !s.dedupDisabled {
		_, storedURL = utils.NormalizeURL(rawURL)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if !s.dedupDisabled {
		var existing []models.Product
		if err := tx.Order("id ASC").Find(&existing).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		// 查重用的是提交的原始 URL，归一化在比较时进行
		if conflict := FindConflict(title, rawURL, existing); conflict != nil {
			tx.Rollback()
			if conflict.Kind == ConflictTitle {
				return nil, newTitleConflict(conflict.Existing)
			}
			return nil, newURLConflict(conflict.Existing)
		}
	}

	product := models.Product{
		Title: title,
		URL:   storedURL,
		Votes: 0,
	}
	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CastVote 处理投票：查产品 -> 过限流闸门 -> 记票并加一。
// 窗口检查、插票、计数更新放在同一事务，保证不会出现
// 只写了票没加计数（或反过来）的中间状态，也防止并发双投。
func (s *ProductService) CastVote(productID uint, identity string, now time.Time) (*models.Product, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ProductID: productID}
		}
		return nil, err
	}

	var prior []models.Vote
	if err := tx.Where("product_id = ? AND ip = ?", productID, identity).Find(&prior).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if !VoteAllowed(now, prior) {
		tx.Rollback()
		return nil, &RateLimitError{ProductID: productID}
	}

	vote := models.Vote{
		ProductID: productID,
		IP:        identity,
		VotedAt:   now,
	}
	if err := tx.Create(&vote).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 返回更新后的产品（仍在事务内读，保证和本次加一一致）
	if err := tx.First(&product, productID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &product, nil
}
