package service

import (
	"github.com/MaTrix986/inspiration-collector/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetaService 维护全局的标签 / 分类引用表。
// 条目只增不删：最后一条用某标签的记录删了，标签留着也没关系。
type MetaService struct {
	db *gorm.DB
}

func NewMetaService(db *gorm.DB) *MetaService {
	return &MetaService{db: db}
}

// EnsureTag 标签不存在就建，存在就当没事发生。
// 靠 name 唯一索引 + 条件插入一步到位，两个请求同时引用同一个新标签也只会留一行，
// 撞了唯一索引不算错误。
func (s *MetaService) EnsureTag(name string) error {
	if name == "" {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Tag{Name: name}).Error
	if err != nil {
		return storagef("创建标签", err)
	}
	return nil
}

// EnsureCategory 同 EnsureTag
func (s *MetaService) EnsureCategory(name string) error {
	if name == "" {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Category{Name: name}).Error
	if err != nil {
		return storagef("创建分类", err)
	}
	return nil
}

// EnsureAll 记录写入后补登它引用到的标签和分类
func (s *MetaService) EnsureAll(tags []string, category string) error {
	for _, t := range tags {
		if err := s.EnsureTag(t); err != nil {
			return err
		}
	}
	return s.EnsureCategory(category)
}

// AllTags 全部标签名，给前端筛选框用
func (s *MetaService) AllTags() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Tag{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, storagef("查询标签", err)
	}
	return names, nil
}

// AllCategories 全部分类名
func (s *MetaService) AllCategories() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Category{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, storagef("查询分类", err)
	}
	return names, nil
}
