package components

// ZombieKind 僵尸变体
// 所有变体共用同一套更新与战斗逻辑，只有出生参数不同
type ZombieKind int

const (
	// ZombieNormal 普通僵尸
	ZombieNormal ZombieKind = iota
	// ZombieFast 快速僵尸：出生速度额外加成
	ZombieFast
)

// String 返回变体名称（日志与快照使用）
func (k ZombieKind) String() string {
	switch k {
	case ZombieNormal:
		return "normal"
	case ZombieFast:
		return "fast"
	default:
		return "unknown"
	}
}

// ZombieComponent 僵尸数据
//
// TimeOnCursor 同时累计手电筒照射（每帧 +1）和子弹伤害（每发 +RequiredTime/4），
// 达到 RequiredTime 即死亡。RequiredTime 在出生后不再变化。
type ZombieComponent struct {
	Kind   ZombieKind
	Radius float64
	// Speed 出生时确定的水平速度（像素/帧，向右）
	Speed float64

	// Attacking 是否正在攻击建筑物（攻击时不移动）
	Attacking bool
	// AttackTimer 距上次造成伤害经过的帧数
	AttackTimer int

	TimeOnCursor float64
	RequiredTime float64
}

// IsDead 照射量达到阈值即死亡
func (z *ZombieComponent) IsDead() bool {
	return z.TimeOnCursor >= z.RequiredTime
}

// LeadingEdge 返回僵尸前沿的 x 坐标（僵尸向右前进）
func (z *ZombieComponent) LeadingEdge(x float64) float64 {
	return x + z.Radius
}

// Remaining 剩余生命比例 [0, 1]，供血条渲染使用
func (z *ZombieComponent) Remaining() float64 {
	r := 1 - z.TimeOnCursor/z.RequiredTime
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
