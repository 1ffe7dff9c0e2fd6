package entities

import (
	"testing"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// TestNewExplosion 测试爆炸特效创建
func TestNewExplosion(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewExplosion(em, config.DefaultSimConfig(), 10, 20)

	e, ok := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !ok {
		t.Fatal("Explosion should have ExplosionComponent")
	}
	if e.Radius != 10 || e.Growth != 4 || e.MaxRadius != 42 || e.Life != 0 {
		t.Errorf("Unexpected explosion data %+v", e)
	}
	if e.Done() {
		t.Error("New explosion should not be done")
	}
}
