package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MaTrix986/inspiration-collector/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "5f1b7c4e-9d3a-4b2c-8e1f-6a7b8c9d0e1f"
	ownerB = "0a1b2c3d-4e5f-6789-abcd-ef0123456789"
)

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerA, CreateInput{Title: ""})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(ownerA, CreateInput{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateDefaultsAndRegistry(t *testing.T) {
	db := newTestDB(t)
	svc := NewInspirationService(db)

	ins, err := svc.Create(ownerA, CreateInput{
		Title:    "配色灵感",
		Content:  "低饱和度的蓝",
		IsPublic: true,
		Tags:     []string{"设计", "UI"},
		Category: "前端开发",
	})
	require.NoError(t, err)

	assert.NotZero(t, ins.ID)
	assert.Equal(t, ownerA, ins.OwnerID)
	assert.EqualValues(t, 0, ins.ViewCount)
	assert.Equal(t, []string{"设计", "UI"}, ins.TagList())
	assert.False(t, ins.CreatedAt.IsZero())
	assert.False(t, ins.UpdatedAt.IsZero())

	// 引用到的标签和分类要被补登进全局表
	tags, err := svc.Meta().AllTags()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"设计", "UI"}, tags)

	categories, err := svc.Meta().AllCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"前端开发"}, categories)
}

// owner 在创建时写死，之后怎么更新都不会变
func TestOwnerImmutable(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)

	title := "B"
	content := "改过的内容"
	pub := true
	tags := []string{"x"}
	category := "c"
	updated, err := svc.Update(ins.ID, ownerA, UpdateInput{
		Title:    &title,
		Content:  &content,
		IsPublic: &pub,
		Tags:     &tags,
		Category: &category,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerA, updated.OwnerID)
	assert.WithinDuration(t, ins.CreatedAt, updated.CreatedAt, time.Millisecond)
}

// 创建时传各种写法的 owner，落库的都是标准形式
func TestCreateNormalizesOwner(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create("URN:UUID:"+ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)
	assert.Equal(t, ownerA, ins.OwnerID)
}

// 老数据里 owner_id 写法五花八门，启动迁移之后按任意写法查都能查全
func TestMigrateOwnerIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewInspirationService(db)

	// 模拟历史上不同写入路径留下的三种写法
	legacy := []string{
		ownerA,
		"{" + ownerA + "}",
		"5F1B7C4E-9D3A-4B2C-8E1F-6A7B8C9D0E1F",
	}
	for i, o := range legacy {
		row := models.Inspiration{OwnerID: o, Title: fmt.Sprintf("旧记录%d", i), Tags: "[]"}
		require.NoError(t, db.Create(&row).Error)
	}

	require.NoError(t, MigrateOwnerIDs(db))

	result, err := svc.List(ownerA, 1, 10, Filters{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)

	// 用另一种写法查同一个人，结果一样
	result, err = svc.List("urn:uuid:"+ownerA, 1, 10, Filters{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)
}

func TestListOwnerScoping(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerA, CreateInput{Title: "我的"})
	require.NoError(t, err)
	_, err = svc.Create(ownerB, CreateInput{Title: "别人的"})
	require.NoError(t, err)

	result, err := svc.List(ownerA, 1, 10, Filters{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "我的", result.Items[0].Title)

	for _, item := range result.Items {
		assert.Equal(t, NormalizeID(ownerA), NormalizeID(item.OwnerID))
	}
}

// 搜索条件只能缩小范围，绝不能把归属限制顶掉
func TestSearchCannotEscapeOwnerScope(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerB, CreateInput{Title: "golang tips"})
	require.NoError(t, err)

	result, err := svc.List(ownerA, 1, 10, Filters{Search: "golang"})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 0, result.Total)
}

func TestListSearchFilter(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerA, CreateInput{Title: "Golang 并发模式", Content: "channel 的用法"})
	require.NoError(t, err)
	_, err = svc.Create(ownerA, CreateInput{Title: "配色", Content: "低饱和度 GOLANG 风"})
	require.NoError(t, err)
	_, err = svc.Create(ownerA, CreateInput{Title: "无关记录"})
	require.NoError(t, err)

	// 标题或内容命中都算，大小写无关
	result, err := svc.List(ownerA, 1, 10, Filters{Search: "golang"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)
}

func TestListTagFilterExactMembership(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerA, CreateInput{Title: "A", Tags: []string{"golang", "web"}})
	require.NoError(t, err)
	_, err = svc.Create(ownerA, CreateInput{Title: "B", Tags: []string{"go"}})
	require.NoError(t, err)

	// "go" 不能匹配到 "golang"
	result, err := svc.List(ownerA, 1, 10, Filters{Tag: "go"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "B", result.Items[0].Title)

	result, err = svc.List(ownerA, 1, 10, Filters{Tag: "golang"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "A", result.Items[0].Title)
}

func TestListCategoryFilter(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.Create(ownerA, CreateInput{Title: "A", Category: "前端开发"})
	require.NoError(t, err)
	_, err = svc.Create(ownerA, CreateInput{Title: "B", Category: "后端开发"})
	require.NoError(t, err)
	_, err = svc.Create(ownerA, CreateInput{Title: "C"})
	require.NoError(t, err)

	result, err := svc.List(ownerA, 1, 10, Filters{Category: "前端开发"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "A", result.Items[0].Title)
}

func TestListSort(t *testing.T) {
	db := newTestDB(t)
	svc := NewInspirationService(db)

	for _, title := range []string{"banana", "apple", "cherry"} {
		_, err := svc.Create(ownerA, CreateInput{Title: title})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	// 默认：创建时间倒序
	result, err := svc.List(ownerA, 1, 10, Filters{})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "cherry", result.Items[0].Title)
	assert.Equal(t, "banana", result.Items[2].Title)

	// 标题升序
	result, err = svc.List(ownerA, 1, 10, Filters{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "apple", result.Items[0].Title)
	assert.Equal(t, "cherry", result.Items[2].Title)

	// 浏览数倒序
	require.NoError(t, db.Model(&models.Inspiration{}).Where("title = ?", "apple").
		UpdateColumn("view_count", 5).Error)
	result, err = svc.List(ownerA, 1, 10, Filters{SortBy: "viewCount", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "apple", result.Items[0].Title)

	// 白名单之外的排序列回落到创建时间
	result, err = svc.List(ownerA, 1, 10, Filters{SortBy: "owner_id; DROP TABLE"})
	require.NoError(t, err)
	assert.Equal(t, "cherry", result.Items[0].Title)
}

// 创建时间完全相同时按 id 倒序破平局，分页顺序才稳定
func TestListSortTieBreak(t *testing.T) {
	db := newTestDB(t)
	svc := NewInspirationService(db)

	now := time.Now()
	for _, title := range []string{"first", "second"} {
		row := models.Inspiration{OwnerID: ownerA, Title: title, Tags: "[]", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, db.Create(&row).Error)
	}

	result, err := svc.List(ownerA, 1, 10, Filters{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "second", result.Items[0].Title)
	assert.Greater(t, result.Items[0].ID, result.Items[1].ID)
}

func TestListPagination(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ownerA, CreateInput{Title: "记录"})
		require.NoError(t, err)
	}

	result, err := svc.List(ownerA, 1, 2, Filters{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.EqualValues(t, 5, result.Total)
	assert.Equal(t, 3, result.TotalPages)

	result, err = svc.List(ownerA, 3, 2, Filters{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)

	// 翻过了头：空列表，总数照常，不算错误
	result, err = svc.List(ownerA, 4, 2, Filters{})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 5, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestListRejectsBadPagination(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, err := svc.List(ownerA, 0, 10, Filters{})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.List(ownerA, 1, 0, Filters{})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.List(ownerA, -1, -5, Filters{})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestViewOwnerDoesNotCount(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A", IsPublic: true})
	require.NoError(t, err)

	got, counted, err := svc.View(ins.ID, ownerA)
	require.NoError(t, err)
	assert.False(t, counted)
	assert.EqualValues(t, 0, got.ViewCount)

	// 换种写法的同一个人，照样不计数
	got, counted, err = svc.View(ins.ID, "URN:UUID:"+ownerA)
	require.NoError(t, err)
	assert.False(t, counted)
	assert.EqualValues(t, 0, got.ViewCount)
}

func TestViewPublicByOtherCounts(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A", IsPublic: true})
	require.NoError(t, err)
	before := ins.UpdatedAt

	got, counted, err := svc.View(ins.ID, ownerB)
	require.NoError(t, err)
	assert.True(t, counted)
	assert.EqualValues(t, 1, got.ViewCount)

	got, counted, err = svc.View(ins.ID, ownerB)
	require.NoError(t, err)
	assert.True(t, counted)
	assert.EqualValues(t, 2, got.ViewCount)

	// 浏览不是修改，updated_at 不许动
	fresh, err := svc.Get(ins.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, before, fresh.UpdatedAt, time.Millisecond)
}

func TestViewPrivateByOtherForbidden(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A", IsPublic: false})
	require.NoError(t, err)

	_, _, err = svc.View(ins.ID, ownerB)
	assert.ErrorIs(t, err, ErrForbidden)

	// 浏览数不能涨
	fresh, err := svc.Get(ins.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, fresh.ViewCount)
}

func TestViewMissingNotFound(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	_, _, err := svc.View(12345, ownerA)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{
		Title:    "原标题",
		Content:  "原内容",
		Category: "原分类",
		Tags:     []string{"原标签"},
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	title := "新标题"
	updated, err := svc.Update(ins.ID, ownerA, UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "原内容", updated.Content)
	assert.Equal(t, "原分类", updated.Category)
	assert.Equal(t, []string{"原标签"}, updated.TagList())
	assert.True(t, updated.UpdatedAt.After(ins.UpdatedAt))
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)

	empty := "  "
	_, err = svc.Update(ins.ID, ownerA, UpdateInput{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalid)
}

// 改别人的记录报“不存在”，不报“无权限”，不暴露记录存在
func TestUpdateByOtherMasksAsNotFound(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)

	title := "B"
	_, err = svc.Update(ins.ID, ownerB, UpdateInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestUpdateRegistersNewTags(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)

	tags := []string{"新标签"}
	category := "新分类"
	_, err = svc.Update(ins.ID, ownerA, UpdateInput{Tags: &tags, Category: &category})
	require.NoError(t, err)

	allTags, err := svc.Meta().AllTags()
	require.NoError(t, err)
	assert.Contains(t, allTags, "新标签")

	allCategories, err := svc.Meta().AllCategories()
	require.NoError(t, err)
	assert.Contains(t, allCategories, "新分类")
}

func TestDelete(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A"})
	require.NoError(t, err)

	// 别人删不掉，表现和不存在一样
	removed, err := svc.Delete(ins.ID, ownerB)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = svc.Delete(ins.ID, ownerA)
	require.NoError(t, err)
	assert.True(t, removed)

	// 再删一次就是没了
	removed, err = svc.Delete(ins.ID, ownerA)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.Get(ins.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// 删了记录，标签和分类留着，引用表只增不删
func TestDeleteLeavesRegistryAlone(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create(ownerA, CreateInput{Title: "A", Tags: []string{"孤儿标签"}, Category: "孤儿分类"})
	require.NoError(t, err)

	removed, err := svc.Delete(ins.ID, ownerA)
	require.NoError(t, err)
	require.True(t, removed)

	tags, err := svc.Meta().AllTags()
	require.NoError(t, err)
	assert.Contains(t, tags, "孤儿标签")
}

func TestGetByIDsOnlyPublic(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	pub, err := svc.Create(ownerA, CreateInput{Title: "公开", IsPublic: true})
	require.NoError(t, err)
	priv, err := svc.Create(ownerA, CreateInput{Title: "私有", IsPublic: false})
	require.NoError(t, err)

	items, err := svc.GetByIDs([]int64{priv.ID, pub.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pub.ID, items[0].ID)
}

// spec 里的端到端场景
func TestEndToEnd(t *testing.T) {
	svc := NewInspirationService(newTestDB(t))

	ins, err := svc.Create("u1", CreateInput{
		Title:    "A",
		IsPublic: false,
		Tags:     []string{"x"},
		Category: "c",
	})
	require.NoError(t, err)

	// u1 能看到且只有这一条
	result, err := svc.List("u1", 1, 10, Filters{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, ins.ID, result.Items[0].ID)

	// u2 一条都看不到
	result, err = svc.List("u2", 1, 10, Filters{})
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	// u2 直接读私有记录：403
	_, _, err = svc.View(ins.ID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	// u2 改：404
	title := "B"
	_, err = svc.Update(ins.ID, "u2", UpdateInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	// u1 删：成功，之后读不到
	removed, err := svc.Delete(ins.ID, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, _, err = svc.View(ins.ID, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
