package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
	"github.com/gonewx/skydefense/pkg/systems"
	"github.com/gonewx/skydefense/pkg/utils"
)

// Options 模拟的外部依赖
// 所有字段都可省略：默认规则、以当前时间为种子的随机源、系统时钟
type Options struct {
	Rules  *config.Rules
	Random utils.RandomSource
	Clock  TimeSource
	// OnGameOver 进入终局时调用（在清理之后）
	OnGameOver func(Result)
}

// Result 一局游戏的终局快照
type Result struct {
	SessionID uuid.UUID
	Score     int
	Level     int
	// Ticks 本局执行的 Tick 次数
	Ticks int
	// Elapsed 本局模拟的总时长（秒，不含暂停）
	Elapsed float64
}

// Simulation 模拟上下文
//
// 持有实体管理器、所有系统以及分数、等级、状态机。
// 单线程使用：同一时刻只有一个驱动方调用 Tick，渲染和界面只读取视图。
type Simulation struct {
	em    *ecs.EntityManager
	rules *config.Rules
	rng   utils.RandomSource
	clock TimeSource

	difficulty  *systems.DifficultyEngine
	physics     *systems.PhysicsSystem
	lifecycle   *systems.LifecycleSystem
	spawn       *systems.SpawnSystem
	flyers      *systems.FlyerSystem
	missiles    *systems.MissileSystem
	shells      *systems.ShellSystem
	lifetime    *systems.LifetimeSystem
	blasts      *systems.BlastSystem
	emplacement *systems.EmplacementSystem

	onGameOver func(Result)

	state     State
	score     int
	level     int
	sessionID uuid.UUID
	ticks     int
	elapsed   float64
	result    *Result
	// lastTime Advance 使用的时间基准
	lastTime float64
}

// NewSimulation 创建处于 Initializing 状态的模拟
func NewSimulation(opts Options) *Simulation {
	rules := opts.Rules
	if rules == nil {
		rules = config.DefaultRules()
	}
	rng := opts.Random
	if rng == nil {
		rng = utils.NewRandomSource(uint64(time.Now().UnixNano()))
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	em := ecs.NewEntityManager()
	difficulty := systems.NewDifficultyEngine(rules)
	physics := systems.NewPhysicsSystem(em, rules.ArrivalTolerance)
	lifecycle := systems.NewLifecycleSystem(em, rules)

	return &Simulation{
		em:          em,
		rules:       rules,
		rng:         rng,
		clock:       clock,
		difficulty:  difficulty,
		physics:     physics,
		lifecycle:   lifecycle,
		spawn:       systems.NewSpawnSystem(em, rules, rng, difficulty),
		flyers:      systems.NewFlyerSystem(em, rules, rng, physics, lifecycle, difficulty),
		missiles:    systems.NewMissileSystem(em, physics, lifecycle),
		shells:      systems.NewShellSystem(em, physics, lifecycle),
		lifetime:    systems.NewLifetimeSystem(em),
		blasts:      systems.NewBlastSystem(em, physics, lifecycle),
		emplacement: systems.NewEmplacementSystem(em, rules, rng),
		onGameOver:  opts.OnGameOver,
		state:       StateInitializing,
		level:       1,
	}
}

// Start 开始新的一局
// 清空所有实体，重置分数和等级，生成初始防御方，进入 Running
func (s *Simulation) Start() {
	s.Cleanup()

	s.score = 0
	s.level = 1
	s.ticks = 0
	s.elapsed = 0
	s.result = nil
	s.sessionID = uuid.New()

	strongholds, emplacements := entities.SpawnInitialDefenders(s.em, s.rules)
	s.lastTime = s.clock.Now()
	s.state = StateRunning

	log.Printf("[Simulation] Session %s started: %d strongholds, %d emplacements",
		s.sessionID, len(strongholds), len(emplacements))
}

// Cleanup 销毁所有实体，不触发销毁回调
func (s *Simulation) Cleanup() {
	s.lifecycle.Cleanup()
}

// Tick 推进一帧，只在 Running 状态下生效
//
// 顺序:
//  1. 飞碟生成  2. 导弹生成
//  3. 飞碟运动与开火  4. 导弹碰撞与运动
//  5. 炮弹运动与引爆  6. 区域效果计时
//  7. 爆炸碰撞计分与过期移除  8. 更新等级
//  9. 终局判定
//
// dt 可以为 0 或很大，均只应用一次
func (s *Simulation) Tick(dt float64) {
	if s.state != StateRunning {
		return
	}

	scale := s.difficulty.LevelScale(s.level)

	s.spawn.Update(scale)
	s.flyers.Update(dt, scale)
	s.missiles.Update(dt)
	s.shells.Update(dt)
	s.lifetime.Update(dt)
	s.score += s.blasts.Update()

	if level := s.difficulty.LevelForScore(s.score); level != s.level {
		log.Printf("[Simulation] Level up: %d -> %d (score %d)", s.level, level, s.score)
		s.level = level
	}

	s.em.RemoveMarkedEntities()
	s.ticks++
	s.elapsed += dt

	if systems.CountKind(s.em, components.KindEmplacement) == 0 ||
		systems.CountKind(s.em, components.KindStronghold) == 0 {
		s.gameOver()
	}
}

// Advance 从时间来源读取经过的时间并执行一次 Tick
// 非 Running 状态下只更新时间基准
func (s *Simulation) Advance() {
	now := s.clock.Now()
	dt := now - s.lastTime
	s.lastTime = now
	s.Tick(dt)
}

func (s *Simulation) gameOver() {
	result := Result{
		SessionID: s.sessionID,
		Score:     s.score,
		Level:     s.level,
		Ticks:     s.ticks,
		Elapsed:   s.elapsed,
	}
	s.result = &result

	s.Cleanup()
	s.state = StateGameOver

	log.Printf("[Simulation] Session %s over: score %d, level %d, %.1fs",
		result.SessionID, result.Score, result.Level, result.Elapsed)

	if s.onGameOver != nil {
		s.onGameOver(result)
	}
}

// Pause 暂停（仅 Running 有效）
func (s *Simulation) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume 继续（仅 Paused 有效）
// 重置时间基准，暂停期间的时间不计入模拟
func (s *Simulation) Resume() {
	if s.state == StatePaused {
		s.lastTime = s.clock.Now()
		s.state = StateRunning
	}
}

// Toggle 单键菜单：开始 / 暂停 / 继续 / 重新开始
func (s *Simulation) Toggle() {
	switch s.state {
	case StateInitializing, StateGameOver:
		s.Start()
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// AimAll 所有炮台瞄准 (x, y)
func (s *Simulation) AimAll(x, y float64) {
	s.emplacement.AimAll(x, y)
}

// Fire 指定炮台向 (x, y) 发射炮弹
// 瞄准无效、达到炮弹上限或不在 Running 状态时不发射
func (s *Simulation) Fire(id ecs.EntityID, x, y float64) (ecs.EntityID, bool) {
	if s.state != StateRunning {
		return ecs.InvalidEntity, false
	}
	return s.emplacement.Fire(id, x, y)
}

// FireAll 所有瞄准有效的炮台向 (x, y) 齐射（带散布）
//
// 返回:
//   - int: 发射的炮弹数量
func (s *Simulation) FireAll(x, y float64) int {
	if s.state != StateRunning {
		return 0
	}
	return len(s.emplacement.FireAll(x, y))
}

// ToggleBarrelWidth 强化切换所有炮台的炮管宽度
func (s *Simulation) ToggleBarrelWidth() {
	s.emplacement.ToggleBarrelWidth()
}

// Score 当前分数
func (s *Simulation) Score() int { return s.score }

// Level 当前等级
func (s *Simulation) Level() int { return s.level }

// State 当前状态
func (s *Simulation) State() State { return s.state }

// IsGameOver 是否处于终局
func (s *Simulation) IsGameOver() bool { return s.state == StateGameOver }

// Result 最近一局的终局快照；尚未结束过时 ok 为 false
func (s *Simulation) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// SessionID 当前局的会话ID（Start 之前为零值）
func (s *Simulation) SessionID() uuid.UUID { return s.sessionID }

// Rules 模拟规则
func (s *Simulation) Rules() *config.Rules { return s.rules }
