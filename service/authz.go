package service

import "github.com/MaTrix986/inspiration-collector/models"

// canView 读取判定：
//   - 主人看自己的，放行，不计浏览
//   - 公开记录别人也能看，但要计一次浏览
//   - 私有记录别人不能看（403，会暴露记录存在但不暴露内容）
//
// 改和删不走这里：不是主人的统一报“不存在”，连记录存不存在都不告诉你。
// 这个不对称是故意的，两条路径的信息隐藏要求不一样。
func canView(ins *models.Inspiration, callerID string) (allowed bool, countView bool) {
	if NormalizeID(ins.OwnerID) == NormalizeID(callerID) {
		return true, false
	}
	if ins.IsPublic {
		return true, true
	}
	return false, false
}
