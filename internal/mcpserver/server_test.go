package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsServer(t *testing.T) {
	server, err := New("v1.0.0-test", testDataset())
	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNew_RequiresTable(t *testing.T) {
	_, err := New("v1.0.0-test", Dataset{Path: "missing.csv"})
	assert.Error(t, err)
}

func TestRun_RefusesWithoutTable(t *testing.T) {
	serverTransport, _ := mcp.NewInMemoryTransports()
	err := Run(context.Background(), "v1.0.0-test", Dataset{}, serverTransport)
	assert.Error(t, err)
}

func TestRun_WithInMemoryTransport(t *testing.T) {
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, "v1.0.0-test", testDataset(), serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "v1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck // best-effort close in test

	result, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, result.Tools, 7)

	cancel()
}

func TestServer_ListsTools(t *testing.T) {
	server, err := New("v1.0.0-test", testDataset())
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "v1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck // best-effort close in test

	result, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
		require.NotNil(t, tool.Annotations, tool.Name)
		assert.True(t, tool.Annotations.ReadOnlyHint, tool.Name)
	}
	for _, want := range []string{"summary", "countries", "yearly_counts", "country_counts", "geo_points", "proportions", "dashboard"} {
		assert.True(t, names[want], "should have %s tool", want)
	}

	cancel()
}

func TestServer_CallTool(t *testing.T) {
	server, err := New("v1.0.0-test", testDataset())
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = server.Run(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck // best-effort close in test

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "country_counts",
		Arguments: map[string]any{"countries": "USA"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, `"country": "USA"`)
}
