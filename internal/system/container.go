package system

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strings"
)

// Files whose mere presence means we run inside a container
var containerMarkers = []string{
	".dockerenv",        // docker
	"run/.containerenv", // podman
}

// Substrings of a cgroup path that only show up inside containers
var cgroupHints = []string{
	"docker",
	"kubepods",
	"containerd",
	"libpod",
	"lxc",
	"podman",
}

var containerIDPattern = regexp.MustCompile(`[0-9a-f]{64}`)

// DetectContainer guesses whether we are inside an OS-level container.
// Unreadable sources count as absent.
func (r *Reader) DetectContainer() bool {
	for _, marker := range containerMarkers {
		if _, err := os.Stat(r.path(marker)); err == nil {
			return true
		}
	}

	for _, cgroup := range []string{"proc/1/cgroup", "proc/self/cgroup"} {
		data, err := os.ReadFile(r.path(cgroup))
		if err != nil {
			continue
		}
		if hasCgroupHint(data) {
			return true
		}
	}

	return false
}

func hasCgroupHint(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		// Format: hierarchy-ID:controller-list:cgroup-path
		parts := strings.SplitN(scanner.Text(), ":", 3)
		if len(parts) != 3 {
			continue
		}
		path := strings.ToLower(parts[2])
		for _, hint := range cgroupHints {
			if strings.Contains(path, hint) {
				return true
			}
		}
	}
	return false
}

// ContainerID returns our container's id from the cgroup path,
// falling back to the hostname which docker sets to the short id
func (r *Reader) ContainerID() string {
	if data, err := os.ReadFile(r.path("proc/self/cgroup")); err == nil {
		if id := containerIDPattern.Find(data); id != nil {
			return string(id)
		}
	}

	if r.Hostname != nil {
		if name, err := r.Hostname(); err == nil {
			return name
		}
	}

	return ""
}
