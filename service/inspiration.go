package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/MaTrix986/inspiration-collector/models"

	"gorm.io/gorm"
)

// InspirationService 灵感记录的增删改查
type InspirationService struct {
	db   *gorm.DB
	meta *MetaService
}

func NewInspirationService(db *gorm.DB) *InspirationService {
	return &InspirationService{db: db, meta: NewMetaService(db)}
}

// Meta 暴露标签/分类注册表，给列表接口凑筛选项用
func (s *InspirationService) Meta() *MetaService {
	return s.meta
}

// CreateInput 创建记录的字段
type CreateInput struct {
	Title    string
	Content  string
	ImageURL string
	IsPublic bool
	Tags     []string
	Category string
}

// UpdateInput 更新记录的字段，nil 表示这次没传、保持原值
type UpdateInput struct {
	Title    *string
	Content  *string
	ImageURL *string
	IsPublic *bool
	Tags     *[]string
	Category *string
}

// ListResult 分页结果
type ListResult struct {
	Items      []models.Inspiration `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// Create 新建一条灵感，归属写死为创建者，之后任何更新都改不了
func (s *InspirationService) Create(ownerID string, in CreateInput) (*models.Inspiration, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidf("标题是必填项")
	}

	ins := models.Inspiration{
		OwnerID:   NormalizeID(ownerID),
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		IsPublic:  in.IsPublic,
		ViewCount: 0,
		Category:  in.Category,
	}
	ins.SetTagList(in.Tags)

	if err := s.db.Create(&ins).Error; err != nil {
		return nil, storagef("创建灵感", err)
	}

	// 补登标签和分类。记录本身已经落库，这一步失败只会留下缺口，不回滚
	if err := s.meta.EnsureAll(in.Tags, in.Category); err != nil {
		log.Println("⚠️ 标签/分类补登失败: ", err)
	}

	return &ins, nil
}

// List 按归属分页查询。page、pageSize 都从 1 起；
// 翻过了头就返回空列表，总数和总页数照常给，不算错误
func (s *InspirationService) List(ownerID string, page, pageSize int, f Filters) (*ListResult, error) {
	if page < 1 || pageSize < 1 {
		return nil, invalidf("分页参数非法: page=%d, pageSize=%d", page, pageSize)
	}

	owner := NormalizeID(ownerID)
	scope := func(db *gorm.DB) *gorm.DB {
		return applyFilters(db, owner, f)
	}

	var total int64
	if err := s.db.Model(&models.Inspiration{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, storagef("统计灵感数量", err)
	}

	items := make([]models.Inspiration, 0, pageSize)
	err := s.db.Model(&models.Inspiration{}).Scopes(scope).
		Order(orderClause(f)).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error
	if err != nil {
		return nil, storagef("查询灵感列表", err)
	}

	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// Get 只按 id 取记录，不做可见性判断，View 才做
func (s *InspirationService) Get(id int64) (*models.Inspiration, error) {
	var ins models.Inspiration
	if err := s.db.First(&ins, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storagef("查询灵感", err)
	}
	return &ins, nil
}

// View 带权限的读取。返回的 counted 表示这次读有没有计浏览数，
// 计了数的调用方可以再去发热度事件
func (s *InspirationService) View(id int64, callerID string) (ins *models.Inspiration, counted bool, err error) {
	ins, err = s.Get(id)
	if err != nil {
		return nil, false, err
	}

	allowed, countView := canView(ins, callerID)
	if !allowed {
		return nil, false, ErrForbidden
	}

	if countView {
		// 原子自增，并且不能碰 updated_at（浏览不是修改）
		err = s.db.Model(&models.Inspiration{}).Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
		if err != nil {
			return nil, false, storagef("更新浏览数", err)
		}
		ins.ViewCount++
	}

	return ins, countView, nil
}

// Update 只有主人能改。查不到或者不是主人，统一报“不存在”。
// 只更新这次传了的字段，owner 和创建时间永远不动，updated_at 永远刷新
func (s *InspirationService) Update(id int64, ownerID string, in UpdateInput) (*models.Inspiration, error) {
	var ins models.Inspiration
	err := s.db.First(&ins, "id = ? AND owner_id = ?", id, NormalizeID(ownerID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storagef("查询灵感", err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, invalidf("标题是必填项")
		}
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsPublic != nil {
		updates["is_public"] = *in.IsPublic
	}
	if in.Tags != nil {
		tmp := models.Inspiration{}
		tmp.SetTagList(*in.Tags)
		updates["tags"] = tmp.Tags
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}

	if err := s.db.Model(&ins).Updates(updates).Error; err != nil {
		return nil, storagef("更新灵感", err)
	}

	if in.Tags != nil || in.Category != nil {
		var tags []string
		if in.Tags != nil {
			tags = *in.Tags
		}
		var category string
		if in.Category != nil {
			category = *in.Category
		}
		if err := s.meta.EnsureAll(tags, category); err != nil {
			log.Println("⚠️ 标签/分类补登失败: ", err)
		}
	}

	// 回读一次，拿数据库里的最终状态
	if err := s.db.First(&ins, "id = ?", id).Error; err != nil {
		return nil, storagef("查询灵感", err)
	}
	return &ins, nil
}

// Delete 只有主人能删。返回有没有真的删掉；不是主人的和不存在的一样返回 false
func (s *InspirationService) Delete(id int64, ownerID string) (bool, error) {
	res := s.db.Where("id = ? AND owner_id = ?", id, NormalizeID(ownerID)).
		Delete(&models.Inspiration{})
	if res.Error != nil {
		return false, storagef("删除灵感", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetByIDs 按 id 集合取公开记录，热度榜页面用，保持传入顺序
func (s *InspirationService) GetByIDs(ids []int64) ([]models.Inspiration, error) {
	if len(ids) == 0 {
		return []models.Inspiration{}, nil
	}
	var rows []models.Inspiration
	if err := s.db.Where("id IN ? AND is_public = ?", ids, true).Find(&rows).Error; err != nil {
		return nil, storagef("查询灵感", err)
	}
	byID := make(map[int64]models.Inspiration, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	out := make([]models.Inspiration, 0, len(rows))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// MigrateOwnerIDs 启动时把历史遗留的各种 owner_id 写法统一重写成标准形式，
// 之后的查询就不用再兼容旧写法
func MigrateOwnerIDs(db *gorm.DB) error {
	var owners []string
	if err := db.Model(&models.Inspiration{}).Distinct().Pluck("owner_id", &owners).Error; err != nil {
		return storagef("扫描 owner_id", err)
	}
	for _, o := range owners {
		n := NormalizeID(o)
		if n == o {
			continue
		}
		if err := db.Model(&models.Inspiration{}).Where("owner_id = ?", o).
			UpdateColumn("owner_id", n).Error; err != nil {
			return storagef("重写 owner_id", err)
		}
		log.Printf("✅ owner_id 归一化: %q -> %q", o, n)
	}
	return nil
}
