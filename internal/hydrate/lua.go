package hydrate

import (
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// LuaEngine runs Lua-scripted actions on a single shared interpreter state.
// Scripts are compiled once at hydration and invoked per execution; the
// state is serialized by a mutex since lua.LState is not goroutine-safe.
type LuaEngine struct {
	mu sync.Mutex
	L  *lua.LState
}

// NewLuaEngine creates a Lua interpreter for scripted actions.
func NewLuaEngine() *LuaEngine {
	return &LuaEngine{
		L: lua.NewState(),
	}
}

// Close releases the interpreter. No actions may run afterwards.
func (e *LuaEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// Factory returns an action factory for the "lua" action type.
//
// Descriptor form:
//
//	{"type": "lua", "script": "print('hello')"}
//
// The script is compiled at hydration, so syntax errors surface during
// descriptor loading rather than on first execution.
func (e *LuaEngine) Factory() Factory {
	return func(spec gjson.Result) (Action, error) {
		script := spec.Get("script").String()
		if script == "" {
			return nil, fmt.Errorf("lua action: script cannot be empty")
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.L == nil {
			return nil, fmt.Errorf("lua action: engine is closed")
		}
		fn, err := e.L.LoadString(script)
		if err != nil {
			return nil, fmt.Errorf("lua action: %w", err)
		}

		return func() error {
			e.mu.Lock()
			defer e.mu.Unlock()
			if e.L == nil {
				return fmt.Errorf("lua action: engine is closed")
			}
			if err := e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
				return fmt.Errorf("lua action: %w", err)
			}
			return nil
		}, nil
	}
}
