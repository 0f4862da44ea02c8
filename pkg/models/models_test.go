package models

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"haiku", "claude-haiku-4-5-20251001"},
		{"sonnet", "claude-sonnet-4-5-20250929"},
		{"opus", "claude-opus-4-5-20251101"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := ResolveAlias(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// repeated lookups return the same value
			again, err := ResolveAlias(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestResolveAlias_NotFound(t *testing.T) {
	for _, alias := range []string{"gpt4", "", "Opus", " opus", "claude-opus-4-5-20251101"} {
		t.Run(fmt.Sprintf("%q", alias), func(t *testing.T) {
			got, err := ResolveAlias(alias)
			assert.Empty(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotFound))

			var nf *NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, KindAlias, nf.Kind)
			assert.Equal(t, alias, nf.Key)
			assert.Equal(t, []string{"haiku", "opus", "sonnet"}, nf.Valid)
		})
	}
}

func TestDefaultModelFor(t *testing.T) {
	got, err := DefaultModelFor("claude")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5-20251101", got)

	_, err = DefaultModelFor("openai")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `provider not found: "openai"`)
	assert.Contains(t, err.Error(), "valid: claude")
}

func TestIsValidAgentModel(t *testing.T) {
	assert.True(t, IsValidAgentModel("opus"))
	assert.True(t, IsValidAgentModel("haiku"))
	assert.True(t, IsValidAgentModel("sonnet"))
	assert.True(t, IsValidAgentModel("GLM-4.7"))

	assert.False(t, IsValidAgentModel("gpt4"))
	assert.False(t, IsValidAgentModel("glm-4.7"))
	assert.False(t, IsValidAgentModel(""))
	// canonical identifiers are not themselves agent models
	assert.False(t, IsValidAgentModel("claude-opus-4-5-20251101"))
}

func TestEveryAliasIsAnAgentModel(t *testing.T) {
	for alias := range Aliases() {
		assert.True(t, IsValidAgentModel(alias), alias)
	}
}

func TestParseAgentModel(t *testing.T) {
	m, err := ParseAgentModel("sonnet")
	require.NoError(t, err)
	assert.Equal(t, Sonnet, m)
	assert.True(t, m.IsAlias())
	assert.Equal(t, "claude-sonnet-4-5-20250929", m.Canonical())

	m, err = ParseAgentModel("GLM-4.7")
	require.NoError(t, err)
	assert.False(t, m.IsAlias())
	assert.Equal(t, "GLM-4.7", m.Canonical())

	_, err = ParseAgentModel("gpt4")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, KindAgentModel, nf.Kind)
	assert.Equal(t, []string{"GLM-4.7", "haiku", "opus", "sonnet"}, nf.Valid)
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := Aliases()
	a["opus"] = "tampered"
	delete(a, "haiku")

	d := DefaultModels()
	d["claude"] = "tampered"

	names := AliasNames()
	names[0] = "tampered"

	got, err := ResolveAlias("opus")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5-20251101", got)

	_, err = ResolveAlias("haiku")
	assert.NoError(t, err)

	got, err = DefaultModelFor("claude")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5-20251101", got)
	assert.Equal(t, []string{"haiku", "opus", "sonnet"}, AliasNames())
}

func TestListings(t *testing.T) {
	assert.Equal(t, []string{"claude"}, Providers())
	assert.Equal(t, []AgentModel{GLM47, Haiku, Opus, Sonnet}, AgentModels())
	assert.Len(t, Aliases(), 3)
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := ResolveAlias("haiku")
				assert.NoError(t, err)
				assert.Equal(t, "claude-haiku-4-5-20251001", id)
				assert.True(t, IsValidAgentModel("GLM-4.7"))
				_ = Aliases()
			}
		}()
	}
	wg.Wait()
}

func TestNotFoundError_NoValidList(t *testing.T) {
	err := &NotFoundError{Kind: KindProvider, Key: "x"}
	assert.Equal(t, `provider not found: "x"`, err.Error())
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrNotFound))
}
