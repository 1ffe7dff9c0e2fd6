package config

import (
	"fmt"
	"os"

	"github.com/decker502/fencewatch/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSimConfigPath 嵌入配置文件路径
const DefaultSimConfigPath = "data/sim_config.yaml"

// SimConfig 模拟核心的全部可调参数
//
// 配置文件位置: data/sim_config.yaml
// 时间单位统一为"帧"（tick），标称 30 帧/秒。
type SimConfig struct {
	TicksPerSecond int `yaml:"ticksPerSecond"`

	Field     FieldConfig     `yaml:"field"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Economy   EconomyConfig   `yaml:"economy"`
	Zombie    ZombieConfig    `yaml:"zombie"`
	Melee     MeleeConfig     `yaml:"melee"`
	Fence     FenceConfig     `yaml:"fence"`
	Turret    TurretConfig    `yaml:"turret"`
	Station   StationConfig   `yaml:"station"`
	Drone     DroneConfig     `yaml:"drone"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Waves     WaveConfig      `yaml:"waves"`
}

// FieldConfig 场地与网格
type FieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TilesWide int     `yaml:"tilesWide"`
	TilesHigh int     `yaml:"tilesHigh"`

	// HeaderHeight 顶部商店栏高度，点击此区域用于选择槽位
	HeaderHeight float64 `yaml:"headerHeight"`
	// HeaderWidthRatio 商店栏总宽度占场地宽度的比例
	HeaderWidthRatio float64 `yaml:"headerWidthRatio"`
	// SlotWidthRatio 单个槽位在均分宽度中所占比例
	SlotWidthRatio float64 `yaml:"slotWidthRatio"`
}

// PointerConfig 手电筒光标
type PointerConfig struct {
	// SampleWidth/SampleHeight 外部追踪器的坐标空间
	SampleWidth  float64 `yaml:"sampleWidth"`
	SampleHeight float64 `yaml:"sampleHeight"`
	// Smoothing 指数平滑系数 α
	Smoothing float64 `yaml:"smoothing"`
}

// EconomyConfig 阳光经济
type EconomyConfig struct {
	StartingSun int `yaml:"startingSun"`
	// Costs 槽位价格：0=炮塔 1=治疗站 2=无人机
	Costs []int `yaml:"costs"`
	// KillReward 手电筒或子弹击杀奖励
	KillReward int `yaml:"killReward"`
	// ErrorTicks 阳光不足提示持续帧数
	ErrorTicks int `yaml:"errorTicks"`
}

// ZombieConfig 僵尸出生与属性
type ZombieConfig struct {
	SpawnX       float64 `yaml:"spawnX"`
	SpawnMinY    int     `yaml:"spawnMinY"`
	SpawnMaxY    int     `yaml:"spawnMaxY"`
	Radius       float64 `yaml:"radius"`
	SpeedMin     float64 `yaml:"speedMin"`
	SpeedMax     float64 `yaml:"speedMax"`
	SpeedPerWave float64 `yaml:"speedPerWave"`
	FastBonus    float64 `yaml:"fastBonus"`
	// FastOdds 每次出生有 1/FastOdds 概率为快速僵尸
	FastOdds int `yaml:"fastOdds"`
	// RequiredTime 死亡所需的手电筒照射量
	RequiredTime float64 `yaml:"requiredTime"`
	// BulletDivisor 子弹伤害 = RequiredTime / BulletDivisor
	BulletDivisor float64 `yaml:"bulletDivisor"`
}

// MeleeConfig 近战判定
type MeleeConfig struct {
	// Band 建筑物 x 坐标两侧的判定宽度
	Band float64 `yaml:"band"`
	// AttackInterval 每隔多少帧造成一次伤害
	AttackInterval int `yaml:"attackInterval"`
	Damage         int `yaml:"damage"`
}

// FenceConfig 围栏（基地）
type FenceConfig struct {
	// OffsetFromRight 围栏中心距场地右边缘的距离
	OffsetFromRight float64 `yaml:"offsetFromRight"`
	HalfWidth       float64 `yaml:"halfWidth"`
	Top             float64 `yaml:"top"`
	Height          float64 `yaml:"height"`
	BaseHealth      int     `yaml:"baseHealth"`
}

// TurretConfig 炮塔与子弹
type TurretConfig struct {
	MaxHealth    float64 `yaml:"maxHealth"`
	FireInterval int     `yaml:"fireInterval"`
	MuzzleOffset float64 `yaml:"muzzleOffset"`
	BulletSpeed  float64 `yaml:"bulletSpeed"`
}

// StationConfig 治疗站
type StationConfig struct {
	Health   float64 `yaml:"health"`
	HealRate float64 `yaml:"healRate"`
	// HealRadiusTiles 治疗半径（以格子宽度为单位）
	HealRadiusTiles float64 `yaml:"healRadiusTiles"`

	// 以下为脉冲动画参数，不影响玩法
	PulseMin     float64 `yaml:"pulseMin"`
	PulseMax     float64 `yaml:"pulseMax"`
	PulseHealing float64 `yaml:"pulseHealing"`
	PulseIdle    float64 `yaml:"pulseIdle"`
}

// DroneConfig 无人机空袭
type DroneConfig struct {
	StartY       float64 `yaml:"startY"`
	DescentSpeed float64 `yaml:"descentSpeed"`
	Size         float64 `yaml:"size"`
	Shrink       float64 `yaml:"shrink"`
	MinSize      float64 `yaml:"minSize"`

	BlastStartRadius float64 `yaml:"blastStartRadius"`
	BlastGrowth      float64 `yaml:"blastGrowth"`
	BlastMaxRadius   float64 `yaml:"blastMaxRadius"`
}

// ExplosionConfig 装饰性爆炸特效
type ExplosionConfig struct {
	StartRadius float64 `yaml:"startRadius"`
	Growth      float64 `yaml:"growth"`
	MaxRadius   float64 `yaml:"maxRadius"`
}

// WaveConfig 波次与关卡
type WaveConfig struct {
	Duration        int     `yaml:"duration"`
	WavesPerLevel   int     `yaml:"wavesPerLevel"`
	MaxLevels       int     `yaml:"maxLevels"`
	BaseSpawnChance float64 `yaml:"baseSpawnChance"`
	SpawnChanceStep float64 `yaml:"spawnChanceStep"`
}

// DefaultSimConfig 返回与 data/sim_config.yaml 一致的默认配置
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		TicksPerSecond: 30,
		Field: FieldConfig{
			Width:            1512,
			Height:           1000,
			TilesWide:        20,
			TilesHigh:        10,
			HeaderHeight:     90,
			HeaderWidthRatio: 0.75,
			SlotWidthRatio:   0.55,
		},
		Pointer: PointerConfig{
			SampleWidth:  1920,
			SampleHeight: 1080,
			Smoothing:    0.25,
		},
		Economy: EconomyConfig{
			StartingSun: 670,
			Costs:       []int{100, 150, 50},
			KillReward:  10,
			ErrorTicks:  120,
		},
		Zombie: ZombieConfig{
			SpawnX:        -200,
			SpawnMinY:     100,
			SpawnMaxY:     750,
			Radius:        30,
			SpeedMin:      4.0,
			SpeedMax:      6.0,
			SpeedPerWave:  0.35,
			FastBonus:     2,
			FastOdds:      6,
			RequiredTime:  30,
			BulletDivisor: 4,
		},
		Melee: MeleeConfig{
			Band:           40,
			AttackInterval: 30,
			Damage:         1,
		},
		Fence: FenceConfig{
			OffsetFromRight: 180,
			HalfWidth:       40,
			Top:             100,
			Height:          650,
			BaseHealth:      25,
		},
		Turret: TurretConfig{
			MaxHealth:    5,
			FireInterval: 60,
			MuzzleOffset: 35,
			BulletSpeed:  -4,
		},
		Station: StationConfig{
			Health:          5,
			HealRate:        0.025,
			HealRadiusTiles: 1.1,
			PulseMin:        5,
			PulseMax:        70,
			PulseHealing:    4,
			PulseIdle:       0.5,
		},
		Drone: DroneConfig{
			StartY:           900,
			DescentSpeed:     5,
			Size:             80,
			Shrink:           5,
			MinSize:          10,
			BlastStartRadius: 5,
			BlastGrowth:      2,
			BlastMaxRadius:   40,
		},
		Explosion: ExplosionConfig{
			StartRadius: 10,
			Growth:      4,
			MaxRadius:   42,
		},
		Waves: WaveConfig{
			Duration:        600,
			WavesPerLevel:   3,
			MaxLevels:       5,
			BaseSpawnChance: 0.005,
			SpawnChanceStep: 0.003,
		},
	}
}

// LoadSimConfig 从嵌入资源加载模拟配置
//
// 参数:
//   - path: 嵌入路径（如 "data/sim_config.yaml"）
//
// 返回:
//   - *SimConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sim config %s: %w", path, err)
	}
	return ParseSimConfig(data)
}

// LoadSimConfigFile 从磁盘加载模拟配置（用于命令行覆盖）
func LoadSimConfigFile(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sim config file %s: %w", path, err)
	}
	return ParseSimConfig(data)
}

// ParseSimConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseSimConfig(data []byte) (*SimConfig, error) {
	cfg := DefaultSimConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sim config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *SimConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}

	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", f.Width, f.Height)
	}
	if f.TilesWide <= 0 || f.TilesHigh <= 0 {
		return fmt.Errorf("tile grid must be positive, got %dx%d", f.TilesWide, f.TilesHigh)
	}
	if f.HeaderHeight < 0 || f.HeaderHeight >= f.Height {
		return fmt.Errorf("headerHeight %.1f out of range [0, %.1f)", f.HeaderHeight, f.Height)
	}

	if c.Pointer.SampleWidth <= 0 || c.Pointer.SampleHeight <= 0 {
		return fmt.Errorf("pointer sample space must be positive, got %.1fx%.1f",
			c.Pointer.SampleWidth, c.Pointer.SampleHeight)
	}
	if c.Pointer.Smoothing <= 0 || c.Pointer.Smoothing > 1 {
		return fmt.Errorf("pointer smoothing must be in (0, 1], got %.3f", c.Pointer.Smoothing)
	}

	if c.Economy.StartingSun < 0 {
		return fmt.Errorf("startingSun cannot be negative, got %d", c.Economy.StartingSun)
	}
	if len(c.Economy.Costs) != SlotCount {
		return fmt.Errorf("economy costs must list %d slots, got %d", SlotCount, len(c.Economy.Costs))
	}
	for i, cost := range c.Economy.Costs {
		if cost < 0 {
			return fmt.Errorf("slot %d cost cannot be negative, got %d", i, cost)
		}
	}

	z := c.Zombie
	if z.SpawnMinY > z.SpawnMaxY {
		return fmt.Errorf("zombie spawn range invalid: min(%d) > max(%d)", z.SpawnMinY, z.SpawnMaxY)
	}
	if z.SpeedMin > z.SpeedMax {
		return fmt.Errorf("zombie speed range invalid: min(%.2f) > max(%.2f)", z.SpeedMin, z.SpeedMax)
	}
	if z.Radius <= 0 || z.RequiredTime <= 0 || z.BulletDivisor <= 0 {
		return fmt.Errorf("zombie radius, requiredTime and bulletDivisor must be positive")
	}
	if z.FastOdds <= 0 {
		return fmt.Errorf("zombie fastOdds must be positive, got %d", z.FastOdds)
	}

	if c.Melee.AttackInterval <= 0 {
		return fmt.Errorf("melee attackInterval must be positive, got %d", c.Melee.AttackInterval)
	}
	if c.Fence.BaseHealth <= 0 {
		return fmt.Errorf("fence baseHealth must be positive, got %d", c.Fence.BaseHealth)
	}
	if c.Turret.MaxHealth <= 0 || c.Turret.FireInterval <= 0 {
		return fmt.Errorf("turret maxHealth and fireInterval must be positive")
	}
	if c.Station.PulseMin > c.Station.PulseMax {
		return fmt.Errorf("station pulse range invalid: min(%.1f) > max(%.1f)",
			c.Station.PulseMin, c.Station.PulseMax)
	}

	d := c.Drone
	if d.BlastStartRadius > d.BlastMaxRadius {
		return fmt.Errorf("drone blast range invalid: start(%.1f) > max(%.1f)", d.BlastStartRadius, d.BlastMaxRadius)
	}
	if d.DescentSpeed <= 0 || d.Shrink <= 0 || d.BlastGrowth <= 0 {
		return fmt.Errorf("drone descentSpeed, shrink and blastGrowth must be positive")
	}
	if c.Explosion.Growth <= 0 {
		return fmt.Errorf("explosion growth must be positive, got %.1f", c.Explosion.Growth)
	}

	w := c.Waves
	if w.Duration <= 0 || w.WavesPerLevel <= 0 || w.MaxLevels <= 0 {
		return fmt.Errorf("waves duration, wavesPerLevel and maxLevels must be positive")
	}
	if w.BaseSpawnChance < 0 || w.SpawnChanceStep < 0 {
		return fmt.Errorf("spawn chances cannot be negative")
	}

	return nil
}

// Cost 返回槽位价格，无效槽位返回 -1
func (c *SimConfig) Cost(slot int) int {
	if slot < 0 || slot >= len(c.Economy.Costs) {
		return -1
	}
	return c.Economy.Costs[slot]
}
