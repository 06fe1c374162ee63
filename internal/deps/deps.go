package deps

import (
	"os/exec"
	"runtime"
)

type Dependency struct {
	Name       string
	Command    string
	Required   bool
	InstallCmd map[string]string
}

type MissingDep struct {
	Dependency
}

var dependencies = []Dependency{
	{
		Name:     "node",
		Command:  "node",
		Required: true,
		InstallCmd: map[string]string{
			"darwin": "brew install node",
			"linux":  "sudo apt install nodejs",
		},
	},
	{
		// only needed for .ts files
		Name:     "ts-node",
		Command:  "ts-node",
		Required: false,
		InstallCmd: map[string]string{
			"darwin": "npm install -g ts-node typescript",
			"linux":  "npm install -g ts-node typescript",
		},
	},
}

func Check() []MissingDep {
	missing := []MissingDep{}
	for _, dep := range dependencies {
		if _, err := exec.LookPath(dep.Command); err != nil {
			missing = append(missing, MissingDep{dep})
		}
	}
	return missing
}

func InstallHint(dep MissingDep) string {
	goos := runtime.GOOS
	if cmd, ok := dep.InstallCmd[goos]; ok {
		return cmd
	}
	return "install " + dep.Name + " via your package manager"
}
