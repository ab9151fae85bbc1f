package ci

import (
	"fmt"
	"io"
	"strings"

	docker "github.com/fsouza/go-dockerclient"
)

// DockerClient is the subset of the Docker API the orchestrator uses.
// *docker.Client satisfies it; tests substitute a fake.
type DockerClient interface {
	ListImages(opts docker.ListImagesOptions) ([]docker.APIImages, error)
	PullImage(opts docker.PullImageOptions, auth docker.AuthConfiguration) error
	CreateContainer(opts docker.CreateContainerOptions) (*docker.Container, error)
	StartContainer(id string, hostConfig *docker.HostConfig) error
	WaitContainer(id string) (int, error)
	Logs(opts docker.LogsOptions) error
	RemoveContainer(opts docker.RemoveContainerOptions) error
}

// Orchestrator replays the test suite inside each target's container image.
// The repository is mounted read-write and the in-container entry point is
// invoked with the OS version as its only argument; a nonzero exit from the
// entry point fails the target.
type Orchestrator struct {
	client     DockerClient
	repoPath   string
	entryPoint string
	out        io.Writer
}

// NewOrchestrator creates an Orchestrator running entryPoint (a path
// relative to repoPath) inside each target image.
func NewOrchestrator(client DockerClient, repoPath, entryPoint string, out io.Writer) *Orchestrator {
	return &Orchestrator{
		client:     client,
		repoPath:   repoPath,
		entryPoint: entryPoint,
		out:        out,
	}
}

const containerRepoPath = "/repo"

// Run executes every target in order and returns an error naming the
// targets whose entry point exited nonzero. Targets run independently; one
// failing does not stop the rest.
func (o *Orchestrator) Run(targets []Target) error {
	if len(targets) == 0 {
		fmt.Fprintln(o.out, "No CI targets selected")
		return nil
	}

	var failed []string
	for _, target := range targets {
		fmt.Fprintf(o.out, "=== %s %s ===\n", target.OSType, target.OSVersion)
		if err := o.runTarget(target); err != nil {
			fmt.Fprintf(o.out, "target %s:%s failed: %v\n", target.OSType, target.OSVersion, err)
			failed = append(failed, target.Image())
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("CI failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

func (o *Orchestrator) runTarget(target Target) error {
	if err := o.ensureImage(target.Image()); err != nil {
		return err
	}

	container, err := o.client.CreateContainer(docker.CreateContainerOptions{
		Config: &docker.Config{
			Image:      target.Image(),
			Cmd:        []string{"/bin/bash", containerRepoPath + "/" + o.entryPoint, target.OSVersion},
			WorkingDir: containerRepoPath,
		},
		HostConfig: &docker.HostConfig{
			Binds: []string{o.repoPath + ":" + containerRepoPath + ":rw"},
		},
	})
	if err != nil {
		return fmt.Errorf("create container for %s: %w", target.Image(), err)
	}
	defer func() {
		_ = o.client.RemoveContainer(docker.RemoveContainerOptions{ID: container.ID, Force: true})
	}()

	if err := o.client.StartContainer(container.ID, nil); err != nil {
		return fmt.Errorf("start container for %s: %w", target.Image(), err)
	}

	exitCode, err := o.client.WaitContainer(container.ID)
	if err != nil {
		return fmt.Errorf("wait for container %s: %w", container.ID, err)
	}

	if logErr := o.client.Logs(docker.LogsOptions{
		Container:    container.ID,
		OutputStream: o.out,
		ErrorStream:  o.out,
		Stdout:       true,
		Stderr:       true,
	}); logErr != nil {
		fmt.Fprintf(o.out, "could not fetch logs for %s: %v\n", container.ID, logErr)
	}

	if exitCode != 0 {
		return fmt.Errorf("entry point exited with code %d", exitCode)
	}
	return nil
}

// ensureImage pulls the image unless it is already available locally.
func (o *Orchestrator) ensureImage(image string) error {
	images, err := o.client.ListImages(docker.ListImagesOptions{Filter: image})
	if err == nil && len(images) > 0 {
		fmt.Fprintf(o.out, "Found image %s locally\n", image)
		return nil
	}

	repository, tag := parseImage(image)
	fmt.Fprintf(o.out, "Pulling image %s\n", image)
	if err := o.client.PullImage(docker.PullImageOptions{
		Repository: repository,
		Tag:        tag,
	}, docker.AuthConfiguration{}); err != nil {
		return fmt.Errorf("pull image %s: %w", image, err)
	}
	return nil
}

func parseImage(image string) (repository, tag string) {
	if idx := strings.LastIndex(image, ":"); idx > 0 && !strings.Contains(image[idx:], "/") {
		return image[:idx], image[idx+1:]
	}
	return image, "latest"
}
