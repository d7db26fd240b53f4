package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/charamake/server/internal/data"
)

// Engine wraps a single gopher-lua VM for appearance script execution.
// Scripts run once at load time; the VM is not reachable from other
// goroutines afterwards.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger

	npcs []data.NPCAppearance
}

// NewEngine creates a Lua engine and runs all appearance scripts from the
// given directory. Scripts call npc_appearance{...} to register extra NPC
// appearance entries on top of the YAML table.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("npc_appearance", vm.NewFunction(e.luaNPCAppearance))

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load appearance scripts: %w", err)
	}
	return e, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// NPCAppearances returns every entry the scripts registered.
func (e *Engine) NPCAppearances() []data.NPCAppearance {
	return e.npcs
}

// loadDir runs all .lua files in a directory. Missing directories are
// skipped so hosts without scripts need no empty folder.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// luaNPCAppearance implements the npc_appearance{...} registration call.
// Expected shape:
//
//	npc_appearance{ npc_id = 9001, clan = 11, sex = 1,
//	                customize = { hair_style = 250, eye_color = 12 } }
func (e *Engine) luaNPCAppearance(vm *lua.LState) int {
	t := vm.CheckTable(1)

	npcID := int32(lua.LVAsNumber(t.RawGetString("npc_id")))
	if npcID == 0 {
		vm.ArgError(1, "npc_appearance requires npc_id")
		return 0
	}
	entry := data.NPCAppearance{
		NpcID:     npcID,
		Clan:      int(lua.LVAsNumber(t.RawGetString("clan"))),
		Sex:       int(lua.LVAsNumber(t.RawGetString("sex"))),
		Customize: make(map[data.MenuKind]byte),
	}

	if cust, ok := t.RawGetString("customize").(*lua.LTable); ok {
		var badKey bool
		cust.ForEach(func(k, v lua.LValue) {
			key, ok := k.(lua.LString)
			if !ok {
				badKey = true
				return
			}
			entry.Customize[data.MenuKind(key)] = byte(lua.LVAsNumber(v))
		})
		if badKey {
			vm.ArgError(1, "customize keys must be menu kind strings")
			return 0
		}
	}

	e.npcs = append(e.npcs, entry)
	return 0
}
