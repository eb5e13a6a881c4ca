package systems

import (
	"math"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
	"github.com/gonewx/skydefense/pkg/utils"
)

// EmplacementSystem 炮台的瞄准与开火
// 所有操作由玩家输入驱动，不参与每帧更新
type EmplacementSystem struct {
	em    *ecs.EntityManager
	rules *config.Rules
	rng   utils.RandomSource
}

// NewEmplacementSystem 创建炮台系统
func NewEmplacementSystem(em *ecs.EntityManager, rules *config.Rules, rng utils.RandomSource) *EmplacementSystem {
	return &EmplacementSystem{
		em:    em,
		rules: rules,
		rng:   rng,
	}
}

// Aim 设置炮台瞄准点
//
// 瞄准点总是被记录；只有目标在炮台上方（targetY < y）时才有效，
// 有效时重新计算炮管方位角 atan(dx/dy)。无效时保持上一次的方位角。
func (s *EmplacementSystem) Aim(id ecs.EntityID, targetX, targetY float64) {
	emp, ok := ecs.GetComponent[*components.EmplacementComponent](s.em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}

	emp.TargetX = targetX
	emp.TargetY = targetY
	if targetY-pos.Y < 0 {
		emp.Bearing = math.Atan((targetX - pos.X) / (targetY - pos.Y))
		emp.TargetValid = true
	} else {
		emp.TargetValid = false
	}
}

// AimAll 让所有存活炮台瞄准同一点
func (s *EmplacementSystem) AimAll(targetX, targetY float64) {
	for _, id := range EntitiesOfKind(s.em, components.KindEmplacement) {
		s.Aim(id, targetX, targetY)
	}
}

// Fire 指定炮台向 (targetX, targetY) 发射一枚炮弹（无散布）
// 炮台瞄准无效或炮弹数量已达上限时不发射
//
// 返回:
//   - ecs.EntityID: 新炮弹ID
//   - bool: 是否发射
func (s *EmplacementSystem) Fire(id ecs.EntityID, targetX, targetY float64) (ecs.EntityID, bool) {
	if !s.em.IsAlive(id) {
		return ecs.InvalidEntity, false
	}
	return s.fire(id, targetX, targetY, 0)
}

// FireAll 所有瞄准有效的炮台齐射
// 第 i 个炮台的目标在每个轴上偏移 i × (rand(width)×8 - width×4)，
// 炮弹半径为炮管宽度的一半；达到炮弹上限后剩余炮台不再发射
//
// 返回:
//   - []ecs.EntityID: 本次发射的炮弹
func (s *EmplacementSystem) FireAll(targetX, targetY float64) []ecs.EntityID {
	fired := make([]ecs.EntityID, 0)
	for i, id := range EntitiesOfKind(s.em, components.KindEmplacement) {
		if shell, ok := s.fire(id, targetX, targetY, i); ok {
			fired = append(fired, shell)
		}
	}
	return fired
}

func (s *EmplacementSystem) fire(id ecs.EntityID, targetX, targetY float64, index int) (ecs.EntityID, bool) {
	emp, ok := ecs.GetComponent[*components.EmplacementComponent](s.em, id)
	if !ok || !emp.TargetValid {
		return ecs.InvalidEntity, false
	}
	if CountKind(s.em, components.KindShell) >= s.rules.Shell.MaxCount {
		return ecs.InvalidEntity, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return ecs.InvalidEntity, false
	}

	width := emp.BarrelWidth
	if index > 0 {
		targetX += float64(index) * s.scatter(width)
		targetY += float64(index) * s.scatter(width)
	}
	return entities.NewShell(s.em, s.rules, pos.X, pos.Y, targetX, targetY, width/2), true
}

// scatter 单轴散布量：rand(width) × factor - width × factor / 2
func (s *EmplacementSystem) scatter(width float64) float64 {
	factor := s.rules.Shell.BlastFactor
	return float64(s.rng.Intn(int(width)))*factor - width*factor/2
}

// SetBarrelWidth 设置炮管宽度，不做校验
func (s *EmplacementSystem) SetBarrelWidth(id ecs.EntityID, width float64) {
	if emp, ok := ecs.GetComponent[*components.EmplacementComponent](s.em, id); ok {
		emp.BarrelWidth = width
	}
}

// ToggleBarrelWidth 强化切换：所有炮台的炮管宽度在 w 与 PowerupBarrelWidthSum - w 之间切换
func (s *EmplacementSystem) ToggleBarrelWidth() {
	for _, id := range EntitiesOfKind(s.em, components.KindEmplacement) {
		if emp, ok := ecs.GetComponent[*components.EmplacementComponent](s.em, id); ok {
			emp.BarrelWidth = config.PowerupBarrelWidthSum - emp.BarrelWidth
		}
	}
}
