package entity

import (
	"fmt"

	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/prefabs"
)

// ReloadTuning re-reads prefabPath and swaps the weapon, ai and ai_weapon
// tuning of every living entity built from it. Ammo, state and position are
// kept. It returns how many entities were updated.
func ReloadTuning(w *ecs.World, prefabPath string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("reload tuning: load %q: %w", prefabPath, err)
	}

	var tuning struct {
		weapon   *weaponSpec
		ai       *aiSpec
		aiWeapon *aiWeaponSpec
	}
	if raw, ok := spec.Components["weapon"]; ok {
		s, err := prefabs.DecodeComponentSpec[weaponSpec](raw)
		if err != nil {
			return 0, fmt.Errorf("reload tuning: %q: decode weapon spec: %w", prefabPath, err)
		}
		tuning.weapon = &s
	}
	if raw, ok := spec.Components["ai"]; ok {
		s, err := prefabs.DecodeComponentSpec[aiSpec](raw)
		if err != nil {
			return 0, fmt.Errorf("reload tuning: %q: decode ai spec: %w", prefabPath, err)
		}
		tuning.ai = &s
	}
	if raw, ok := spec.Components["ai_weapon"]; ok {
		s, err := prefabs.DecodeComponentSpec[aiWeaponSpec](raw)
		if err != nil {
			return 0, fmt.Errorf("reload tuning: %q: decode ai_weapon spec: %w", prefabPath, err)
		}
		tuning.aiWeapon = &s
	}

	var updated int
	var firstErr error
	ecs.ForEach(w, component.PrefabComponent.Kind(), func(e ecs.Entity, p *component.Prefab) {
		if p.Path != prefabPath || firstErr != nil {
			return
		}
		touched := false
		if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok && tuning.weapon != nil {
			cfg, err := weaponConfigFromSpec(*tuning.weapon)
			if err != nil {
				firstErr = err
				return
			}
			weapon.SetConfig(cfg)
			touched = true
		}
		if ai, ok := ecs.Get(w, e, component.AIComponent.Kind()); ok && tuning.ai != nil {
			cfg, err := aiConfigFromSpec(*tuning.ai)
			if err != nil {
				firstErr = err
				return
			}
			ai.SetConfig(cfg)
			touched = true
		}
		if handler, ok := ecs.Get(w, e, component.AIWeaponComponent.Kind()); ok && tuning.aiWeapon != nil {
			handler.SetConfig(aiWeaponConfigFromSpec(*tuning.aiWeapon))
			touched = true
		}
		if touched {
			updated++
		}
	})
	if firstErr != nil {
		return updated, fmt.Errorf("reload tuning: %q: %w", prefabPath, firstErr)
	}
	return updated, nil
}
