package game

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/systems"
)

// EntityView 实体的只读快照
// 渲染和界面只通过视图读取模拟状态，修改快照不会影响模拟
type EntityView struct {
	ID     ecs.EntityID
	Kind   components.EntityKind
	X, Y   float64
	Radius float64

	// 弹体
	StartX, StartY   float64
	TargetX, TargetY float64

	// 炮台
	AimX, AimY  float64
	AimValid    bool
	Bearing     float64
	BarrelWidth float64

	// 区域效果
	TimeAlive float64
	MaxRadius float64
}

// Strongholds 所有存活据点（创建顺序）
func (s *Simulation) Strongholds() []EntityView {
	return s.viewsOfKind(components.KindStronghold)
}

// Emplacements 所有存活炮台（创建顺序）
func (s *Simulation) Emplacements() []EntityView {
	return s.viewsOfKind(components.KindEmplacement)
}

// Missiles 所有存活导弹（创建顺序）
func (s *Simulation) Missiles() []EntityView {
	return s.viewsOfKind(components.KindMissile)
}

// Flyers 所有存活飞碟（创建顺序）
func (s *Simulation) Flyers() []EntityView {
	return s.viewsOfKind(components.KindFlyer)
}

// Shells 所有存活炮弹（创建顺序）
func (s *Simulation) Shells() []EntityView {
	return s.viewsOfKind(components.KindShell)
}

// BlastEffects 所有存活爆炸（创建顺序）
func (s *Simulation) BlastEffects() []EntityView {
	return s.viewsOfKind(components.KindBlast)
}

// Defenders 据点和炮台
func (s *Simulation) Defenders() []EntityView {
	return s.viewsMatching(components.EntityKind.IsDefender)
}

// Threats 导弹和飞碟
func (s *Simulation) Threats() []EntityView {
	return s.viewsMatching(components.EntityKind.IsThreat)
}

// Projectiles 导弹、飞碟和炮弹
func (s *Simulation) Projectiles() []EntityView {
	return s.viewsMatching(components.EntityKind.IsProjectile)
}

// AreaEffects 所有区域效果
func (s *Simulation) AreaEffects() []EntityView {
	return s.viewsMatching(components.EntityKind.IsAreaEffect)
}

func (s *Simulation) viewsOfKind(kind components.EntityKind) []EntityView {
	return s.viewsMatching(func(k components.EntityKind) bool { return k == kind })
}

func (s *Simulation) viewsMatching(match func(components.EntityKind) bool) []EntityView {
	ids := systems.EntitiesMatching(s.em, match)
	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		views = append(views, s.view(id))
	}
	return views
}

func (s *Simulation) view(id ecs.EntityID) EntityView {
	v := EntityView{ID: id}
	if kind, ok := systems.EntityKindOf(s.em, id); ok {
		v.Kind = kind
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id); ok {
		v.X, v.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		v.Radius = col.Radius
	}
	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.em, id); ok {
		v.StartX, v.StartY = proj.StartX, proj.StartY
		v.TargetX, v.TargetY = proj.TargetX, proj.TargetY
		v.Bearing = proj.Bearing
	}
	if emp, ok := ecs.GetComponent[*components.EmplacementComponent](s.em, id); ok {
		v.AimX, v.AimY = emp.TargetX, emp.TargetY
		v.AimValid = emp.TargetValid
		v.Bearing = emp.Bearing
		v.BarrelWidth = emp.BarrelWidth
	}
	if area, ok := ecs.GetComponent[*components.AreaEffectComponent](s.em, id); ok {
		v.MaxRadius = area.MaxRadius
	}
	if life, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id); ok {
		v.TimeAlive = life.CurrentLifetime
	}
	return v
}
