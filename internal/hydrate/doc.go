// Package hydrate turns declarative command descriptors into executable
// palette commands.
//
// A descriptor file is a JSON array of commands, each naming an action by
// a string type tag:
//
//	[
//	  {
//	    "id": "build.test",
//	    "title": "Run Tests",
//	    "keywords": ["make", "check"],
//	    "category": "Build",
//	    "action": {"type": "exec", "argv": ["make", "test"]}
//	  },
//	  {
//	    "id": "greet",
//	    "title": "Greet",
//	    "action": {"type": "lua", "script": "print('hello')"}
//	  }
//	]
//
// The Registry is an explicit mapping from action type tag to a Factory
// producing a zero-argument action; it is populated at startup, not
// discovered by reflection. Hydrating a descriptor whose action type has no
// registered factory is an error — this is the only descriptor-level
// anomaly callers need to handle, and it fires at load time, never during
// search or execution.
//
// # Usage
//
//	reg := hydrate.NewRegistry()
//	reg.Register("exec", hydrate.ExecFactory)
//
//	engine := hydrate.NewLuaEngine()
//	defer engine.Close()
//	reg.Register("lua", engine.Factory())
//
//	cmds, err := reg.HydrateAll(data, "descriptor:commands.json")
//	if err != nil {
//	    return err
//	}
//	pal.RegisterAll(cmds)
package hydrate
