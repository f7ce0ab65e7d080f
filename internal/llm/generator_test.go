package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
)

type stubBackend struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubBackend) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestGenerator_Success(t *testing.T) {
	backend := &stubBackend{reply: "```\na,b\n1,2\n```"}
	g := NewGenerator(backend, 20000, nil)

	res, err := g.Generate(context.Background(), testRequest("doc text"))
	require.NoError(t, err)
	assert.False(t, res.Empty)
	assert.Equal(t, "a,b\n1,2", res.Content)
	assert.Equal(t, "```\na,b\n1,2\n```", res.RawReply)
	require.Len(t, backend.prompts, 1)
}

func TestGenerator_EmptyReplyIsNotAnError(t *testing.T) {
	backend := &stubBackend{reply: ""}
	g := NewGenerator(backend, 20000, nil)

	res, err := g.Generate(context.Background(), testRequest("doc text"))
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Empty(t, res.Content)
}

func TestGenerator_ProseReplyIsEmpty(t *testing.T) {
	backend := &stubBackend{reply: "I could not find any relevant data."}
	g := NewGenerator(backend, 20000, nil)

	res, err := g.Generate(context.Background(), testRequest("doc text"))
	require.NoError(t, err)
	assert.True(t, res.Empty)
}

func TestGenerator_BackendErrorWrapped(t *testing.T) {
	cause := errors.New("boom")
	backend := &stubBackend{err: cause}
	g := NewGenerator(backend, 20000, nil)

	_, err := g.Generate(context.Background(), testRequest("doc text"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
}

func TestGenerator_SingleAttemptOnly(t *testing.T) {
	backend := &stubBackend{err: errors.New("unreachable")}
	g := NewGenerator(backend, 20000, nil)

	_, _ = g.Generate(context.Background(), testRequest("doc text"))
	assert.Len(t, backend.prompts, 1)
}

func TestGenerator_AppliesCeilingToOutboundPrompt(t *testing.T) {
	backend := &stubBackend{reply: "a,b\n1,2"}
	g := NewGenerator(backend, 50, nil)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'z'
	}
	_, err := g.Generate(context.Background(), testRequest(string(long)))
	require.NoError(t, err)
	require.Len(t, backend.prompts, 1)
	assert.NotContains(t, backend.prompts[0], string(long[:51]))
	assert.Contains(t, backend.prompts[0], string(long[:50]))
}
