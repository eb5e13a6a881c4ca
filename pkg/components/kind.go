package components

// EntityKind 标识实体的具体类型
// 每个实体有且只有一种类型；分类（防御方、威胁、弹体、区域效果）由类型推导，
// 不单独维护列表
type EntityKind int

const (
	// KindStronghold 据点：需要保护的目标，无行为
	KindStronghold EntityKind = iota
	// KindEmplacement 炮台：瞄准并发射炮弹
	KindEmplacement
	// KindMissile 导弹：飞向某个防御方的威胁弹体
	KindMissile
	// KindFlyer 飞碟：横穿屏幕并发射导弹的威胁弹体
	KindFlyer
	// KindShell 炮弹：玩家发射，到达目标后爆炸
	KindShell
	// KindBlast 爆炸：半径随时间扩张的区域效果
	KindBlast
)

// String 返回类型名称，用于日志
func (k EntityKind) String() string {
	switch k {
	case KindStronghold:
		return "stronghold"
	case KindEmplacement:
		return "emplacement"
	case KindMissile:
		return "missile"
	case KindFlyer:
		return "flyer"
	case KindShell:
		return "shell"
	case KindBlast:
		return "blast"
	default:
		return "unknown"
	}
}

// IsDefender 据点和炮台属于防御方
func (k EntityKind) IsDefender() bool {
	return k == KindStronghold || k == KindEmplacement
}

// IsThreat 导弹和飞碟属于威胁
func (k EntityKind) IsThreat() bool {
	return k == KindMissile || k == KindFlyer
}

// IsProjectile 所有按固定方位角飞行的实体
func (k EntityKind) IsProjectile() bool {
	return k.IsThreat() || k == KindShell
}

// IsAreaEffect 有时限的区域效果
func (k EntityKind) IsAreaEffect() bool {
	return k == KindBlast
}

// KindComponent 标记实体类型
type KindComponent struct {
	Kind EntityKind
}
