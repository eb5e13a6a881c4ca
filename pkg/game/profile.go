package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Profile 玩家档案：历史最佳成绩
// 只保存终局结果，不保存进行中的对局
type Profile struct {
	BestScore   int    `yaml:"bestScore"`
	BestLevel   int    `yaml:"bestLevel"`
	GamesPlayed int    `yaml:"gamesPlayed"`
	LastSession string `yaml:"lastSession"` // 最近一局的会话ID
	LastScore   int    `yaml:"lastScore"`
}

// ProfileManager 档案管理器
// 负责档案的加载、保存和终局记录
type ProfileManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	profile      *Profile
}

// 存储路径常量
const (
	profileObject   = "profile"
	profileProperty = "local"
)

// NewProfileManager 创建档案管理器并尝试加载已保存的档案
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存档案）
//
// 返回：
//   - *ProfileManager: 档案管理器实例
func NewProfileManager(gdataManager *gdata.Manager) *ProfileManager {
	pm := &ProfileManager{
		gdataManager: gdataManager,
		profile:      &Profile{},
	}

	if err := pm.Load(); err != nil {
		// 加载失败不是致命错误，使用空档案
		log.Printf("[ProfileManager] Warning: Failed to load profile: %v (starting fresh)", err)
	}

	return pm
}

// Load 从 gdata 加载档案
// gdataManager 为 nil 或档案不存在时使用空档案
func (pm *ProfileManager) Load() error {
	if pm.gdataManager == nil {
		pm.profile = &Profile{}
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		pm.profile = &Profile{}
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		pm.profile = &Profile{}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var loaded Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		pm.profile = &Profile{}
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	pm.profile = &loaded
	log.Printf("[ProfileManager] Profile loaded: best score %d over %d games", loaded.BestScore, loaded.GamesPlayed)
	return nil
}

// Save 保存档案到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (pm *ProfileManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// Record 记录一局终局结果
// 注意：仅修改内存中的档案，需调用 Save() 方法持久化
//
// 返回：
//   - bool: 是否刷新了最佳分数
func (pm *ProfileManager) Record(result Result) bool {
	p := pm.profile
	p.GamesPlayed++
	p.LastSession = result.SessionID.String()
	p.LastScore = result.Score

	newBest := result.Score > p.BestScore
	if newBest {
		p.BestScore = result.Score
	}
	if result.Level > p.BestLevel {
		p.BestLevel = result.Level
	}
	return newBest
}

// GetProfile 获取当前档案
func (pm *ProfileManager) GetProfile() *Profile {
	return pm.profile
}
