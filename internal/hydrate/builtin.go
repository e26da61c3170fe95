package hydrate

import (
	"fmt"
	"os/exec"

	"github.com/tidwall/gjson"
)

// ExecFactory builds actions that run a subprocess.
//
// Descriptor form:
//
//	{"type": "exec", "argv": ["make", "test"], "dir": "."}
//
// argv must be non-empty; dir is optional. Stdout and stderr are discarded;
// a non-zero exit becomes the action's error.
func ExecFactory(spec gjson.Result) (Action, error) {
	var argv []string
	for _, arg := range spec.Get("argv").Array() {
		argv = append(argv, arg.String())
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("exec action: argv cannot be empty")
	}
	dir := spec.Get("dir").String()

	return func() error {
		cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv comes from the user's own descriptor file
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("exec %s: %w", argv[0], err)
		}
		return nil
	}, nil
}
