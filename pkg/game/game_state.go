package game

// State 模拟的状态机状态
//
//	Initializing → Running ⇄ Paused
//	Running → GameOver → Running（重新开始）
type State int

const (
	// StateInitializing 尚未开始，等待 Start
	StateInitializing State = iota
	// StateRunning 正常运行，Tick 推进模拟
	StateRunning
	// StatePaused 暂停，Tick 不做任何事
	StatePaused
	// StateGameOver 终局，结果快照可通过 Result 读取
	StateGameOver
)

// String 返回状态名称，用于日志和界面
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
