package server

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolDefinitions_Annotations(t *testing.T) {
	image, err := generateBoardImageTool()
	require.NoError(t, err)

	for _, tool := range []*mcp.Tool{guessNextMoveTool(), isLegalMoveTool(), image} {
		t.Run(tool.Name, func(t *testing.T) {
			require.NotNil(t, tool.Annotations)
			assert.True(t, tool.Annotations.ReadOnlyHint)
			assert.NotEmpty(t, tool.Annotations.Title)
			assert.NotEmpty(t, tool.Description)

			// Only the engine tool reaches outside the process.
			require.NotNil(t, tool.Annotations.OpenWorldHint)
			assert.Equal(t, tool.Name == ToolGuessNextMove, *tool.Annotations.OpenWorldHint)
		})
	}
}

func TestGenerateBoardImageTool_Schema(t *testing.T) {
	tool, err := generateBoardImageTool()
	require.NoError(t, err)

	schema, ok := tool.InputSchema.(*jsonschema.Schema)
	require.True(t, ok, "input schema is %T", tool.InputSchema)

	assert.Equal(t, []string{"fen"}, schema.Required)
	require.Contains(t, schema.Properties, "perspective")
	assert.Equal(t, []any{"white", "black"}, schema.Properties["perspective"].Enum)
	require.Contains(t, schema.Properties, "highlight_move")
	assert.NotEmpty(t, schema.Properties["fen"].Description)
}

func TestInputSchemas_Required(t *testing.T) {
	guess, err := jsonschema.For[GuessNextMoveInput](nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fen"}, guess.Required)

	legal, err := jsonschema.For[IsLegalMoveInput](nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fen", "move"}, legal.Required)

	out, err := jsonschema.For[GuessNextMoveOutput](nil)
	require.NoError(t, err)
	assert.Empty(t, out.Required, "move is omitted when there is none")
}
