package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at link time with -ldflags
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the release tag, branch, or vcs revision, in that
// order of preference
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// Map returns version and build metadata for the named executable
func Map(execName string) map[string]string {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return metadata
	}
	if info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	var goos, goarch string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				metadata["hash"] = s.Value
			}
		case "vcs.time":
			if s.Value != "" {
				metadata["build_time"] = s.Value
			}
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		}
	}
	if goos != "" && goarch != "" {
		metadata["platform"] = goos + "/" + goarch
	}
	return metadata
}

// JSON returns the version metadata as indented JSON
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Map(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
