package ecs

import (
	"testing"
)

// ========== 辅助函数：创建测试数据 ==========

// setupBenchmarkField 模拟一帧的场地：count 个移动实体，其中每 4 个有一个带速度
func setupBenchmarkField(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i), Y: float64(i % 10)})
		if i%4 == 0 {
			AddComponent(em, id, &testVelocityComponent{VX: 1})
		}
	}
	return em
}

// BenchmarkGetEntitiesWith2 有序查询（每帧每个系统至少一次）
func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := setupBenchmarkField(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}

// BenchmarkSystemUpdate 模拟一个系统的更新循环：查询、读组件、写回
func BenchmarkSystemUpdate(b *testing.B) {
	em := setupBenchmarkField(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em) {
			pos, _ := GetComponent[*testPositionComponent](em, id)
			vel, _ := GetComponent[*testVelocityComponent](em, id)
			pos.X += vel.VX
		}
	}
}

// BenchmarkDestroyAndCleanup 每帧销毁并清理一批实体
func BenchmarkDestroyAndCleanup(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := setupBenchmarkField(200)
		b.StartTimer()

		for _, id := range GetEntitiesWith1[*testVelocityComponent](em) {
			em.DestroyEntity(id)
		}
		em.RemoveMarkedEntities()
	}
}
