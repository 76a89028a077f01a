// Where: internal/dbprovision/dbprovision.go
// What: Local dev database provisioning via the Docker SDK.
// Why: Start the database container the generated compose file describes,
//      so the project works before the user ever runs docker compose.
package dbprovision

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// ProjectLabel marks containers created by the scaffolder.
const ProjectLabel = "dev.stackforge.project"

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// ContainerName returns the dev database container name for a project.
func ContainerName(project string) string {
	return project + "-db"
}

// EnsureDatabase makes sure the project's dev database container exists and
// is running. It is idempotent: an existing container is started, a missing
// one is pulled and created.
func EnsureDatabase(ctx context.Context, cli DockerClient, project string, db scaffold.DatabaseSettings) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}
	if db.Image == "" {
		return fmt.Errorf("database %q has no container image", db.Provider)
	}

	if _, err := cli.Ping(ctx); err != nil {
		return fmt.Errorf("docker daemon unreachable: %w", err)
	}

	name := ContainerName(project)
	existing, err := findContainer(ctx, cli, name)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.State == "running" {
			return nil
		}
		return cli.ContainerStart(ctx, existing.ID, container.StartOptions{})
	}

	reader, err := cli.ImagePull(ctx, db.Image, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull %s: %w", db.Image, err)
	}
	// Drain the pull stream; the daemon finishes the pull only once it is read.
	_, _ = io.Copy(io.Discard, reader)
	_ = reader.Close()

	config, hostConfig, err := containerSpec(name, project, db)
	if err != nil {
		return err
	}

	created, err := cli.ContainerCreate(ctx, config, hostConfig, nil, nil, name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

func findContainer(ctx context.Context, cli DockerClient, name string) (*container.Summary, error) {
	nameFilter := filters.NewArgs()
	nameFilter.Add("name", name)

	containers, err := cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: nameFilter,
	})
	if err != nil {
		return nil, err
	}
	for _, ctr := range containers {
		for _, n := range ctr.Names {
			if strings.TrimPrefix(n, "/") == name {
				found := ctr
				return &found, nil
			}
		}
	}
	return nil, nil
}

func containerSpec(name, project string, db scaffold.DatabaseSettings) (*container.Config, *container.HostConfig, error) {
	var env []string
	var containerPort nat.Port
	switch db.Provider {
	case scaffold.DatabasePostgres:
		env = []string{
			"POSTGRES_USER=" + db.User,
			"POSTGRES_PASSWORD=" + db.Password,
			"POSTGRES_DB=" + db.Name,
		}
		containerPort = nat.Port("5432/tcp")
	case scaffold.DatabaseMySQL:
		env = []string{
			"MYSQL_ROOT_PASSWORD=" + db.Password,
			"MYSQL_DATABASE=" + db.Name,
		}
		containerPort = nat.Port("3306/tcp")
	default:
		return nil, nil, fmt.Errorf("database %q cannot run in a container", db.Provider)
	}

	config := &container.Config{
		Image: db.Image,
		Env:   env,
		Labels: map[string]string{
			ProjectLabel: project,
		},
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{
				{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%d", db.Port)},
			},
		},
		RestartPolicy: container.RestartPolicy{Name: container.RestartPolicyUnlessStopped},
	}
	return config, hostConfig, nil
}
