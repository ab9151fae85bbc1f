package ci

import (
	"bytes"
	"strings"
	"testing"

	docker "github.com/fsouza/go-dockerclient"
)

// fakeDockerClient records calls and plays back configured exit codes.
type fakeDockerClient struct {
	localImages map[string]bool
	exitCodes   map[string]int

	pulled  []string
	created []string
	cmds    [][]string
	binds   [][]string
	removed []string
}

func newFakeDockerClient() *fakeDockerClient {
	return &fakeDockerClient{
		localImages: make(map[string]bool),
		exitCodes:   make(map[string]int),
	}
}

func (f *fakeDockerClient) ListImages(opts docker.ListImagesOptions) ([]docker.APIImages, error) {
	if f.localImages[opts.Filter] {
		return []docker.APIImages{{ID: "local"}}, nil
	}
	return nil, nil
}

func (f *fakeDockerClient) PullImage(opts docker.PullImageOptions, auth docker.AuthConfiguration) error {
	image := opts.Repository + ":" + opts.Tag
	f.pulled = append(f.pulled, image)
	f.localImages[image] = true
	return nil
}

func (f *fakeDockerClient) CreateContainer(opts docker.CreateContainerOptions) (*docker.Container, error) {
	f.created = append(f.created, opts.Config.Image)
	f.cmds = append(f.cmds, opts.Config.Cmd)
	if opts.HostConfig != nil {
		f.binds = append(f.binds, opts.HostConfig.Binds)
	}
	return &docker.Container{ID: opts.Config.Image, Config: opts.Config}, nil
}

func (f *fakeDockerClient) StartContainer(id string, hostConfig *docker.HostConfig) error {
	return nil
}

func (f *fakeDockerClient) WaitContainer(id string) (int, error) {
	return f.exitCodes[id], nil
}

func (f *fakeDockerClient) Logs(opts docker.LogsOptions) error {
	return nil
}

func (f *fakeDockerClient) RemoveContainer(opts docker.RemoveContainerOptions) error {
	f.removed = append(f.removed, opts.ID)
	return nil
}

func TestOrchestrator_Run(t *testing.T) {
	targets := []Target{
		{OSType: "almalinux", OSVersion: "8"},
		{OSType: "almalinux", OSVersion: "9"},
	}

	t.Run("all targets passing", func(t *testing.T) {
		client := newFakeDockerClient()
		var out bytes.Buffer
		orch := NewOrchestrator(client, "/repo/src", "ci/run-tests.sh", &out)

		if err := orch.Run(targets); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.pulled) != 2 {
			t.Errorf("expected 2 pulls, got %v", client.pulled)
		}
		if len(client.created) != 2 {
			t.Errorf("expected 2 containers, got %v", client.created)
		}
		if len(client.removed) != 2 {
			t.Errorf("expected containers to be removed, got %v", client.removed)
		}
	})

	t.Run("nonzero entry point exit fails the build", func(t *testing.T) {
		client := newFakeDockerClient()
		client.exitCodes["almalinux:9"] = 3
		var out bytes.Buffer
		orch := NewOrchestrator(client, "/repo/src", "ci/run-tests.sh", &out)

		err := orch.Run(targets)
		if err == nil {
			t.Fatal("expected error when a target fails")
		}
		if !strings.Contains(err.Error(), "almalinux:9") {
			t.Errorf("expected the failing target in the error, got %v", err)
		}
		// The first target still ran to completion
		if len(client.created) != 2 {
			t.Errorf("expected both targets to run, got %v", client.created)
		}
	})

	t.Run("local image is not pulled", func(t *testing.T) {
		client := newFakeDockerClient()
		client.localImages["almalinux:8"] = true
		var out bytes.Buffer
		orch := NewOrchestrator(client, "/repo/src", "ci/run-tests.sh", &out)

		if err := orch.Run(targets[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.pulled) != 0 {
			t.Errorf("expected no pulls, got %v", client.pulled)
		}
	})

	t.Run("no targets selected is a pass", func(t *testing.T) {
		client := newFakeDockerClient()
		var out bytes.Buffer
		orch := NewOrchestrator(client, "/repo/src", "ci/run-tests.sh", &out)

		if err := orch.Run(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.pulled)+len(client.created) != 0 {
			t.Error("expected no Docker activity")
		}
	})

	t.Run("entry point receives the OS version as its argument", func(t *testing.T) {
		client := newFakeDockerClient()
		var out bytes.Buffer
		orch := NewOrchestrator(client, "/repo/src", "ci/run-tests.sh", &out)

		if err := orch.Run(targets); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.cmds) != 2 {
			t.Fatalf("expected 2 container commands, got %d", len(client.cmds))
		}
		for i, want := range []string{"8", "9"} {
			cmd := client.cmds[i]
			if len(cmd) != 3 || cmd[1] != "/repo/ci/run-tests.sh" || cmd[2] != want {
				t.Errorf("unexpected command for target %d: %v", i, cmd)
			}
		}
		if len(client.binds) != 2 || client.binds[0][0] != "/repo/src:/repo:rw" {
			t.Errorf("expected the repository mounted read-write, got %v", client.binds)
		}
	})
}
