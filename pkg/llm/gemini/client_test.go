package gemini

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/venskie03/fokus/pkg/llm"
)

type fakeModels struct {
	responses []*genai.GenerateContentResponse
	err       error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContentStream(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = cfg
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, r := range f.responses {
			if !yield(r, nil) {
				return
			}
		}
		if f.err != nil {
			yield(nil, f.err)
		}
	}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(text, genai.RoleModel)}},
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	require.Error(t, err)
}

func TestNewClient_DefaultModel(t *testing.T) {
	c := newClient(&fakeModels{}, Config{})
	assert.Equal(t, DefaultModel, c.Model())
	assert.True(t, c.IsConfigured())
}

func TestStream_YieldsChunkText(t *testing.T) {
	fake := &fakeModels{responses: []*genai.GenerateContentResponse{
		textResponse(`{"summary":"a",`),
		{},
		textResponse(`"key_points":[],"action_items":[]}`),
	}}
	c := newClient(fake, Config{Model: "gemini-test", WebSearch: true, ThinkingBudget: DynamicThinkingBudget})

	got, err := llm.Collect(c.Stream(context.Background(), llm.Request{
		SystemInstruction: "reply in JSON",
		Prompt:            "plan my day",
	}))
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"a","key_points":[],"action_items":[]}`, got)

	assert.Equal(t, "gemini-test", fake.gotModel)
	require.Len(t, fake.gotContents, 1)
	assert.Equal(t, string(genai.RoleUser), fake.gotContents[0].Role)
	assert.Equal(t, "plan my day", fake.gotContents[0].Parts[0].Text)

	require.NotNil(t, fake.gotConfig.SystemInstruction)
	assert.Equal(t, "reply in JSON", fake.gotConfig.SystemInstruction.Parts[0].Text)
	require.Len(t, fake.gotConfig.Tools, 1)
	assert.NotNil(t, fake.gotConfig.Tools[0].GoogleSearch)
	require.NotNil(t, fake.gotConfig.ThinkingConfig)
	assert.Equal(t, int32(-1), *fake.gotConfig.ThinkingConfig.ThinkingBudget)
}

func TestStream_WebSearchDisabled(t *testing.T) {
	fake := &fakeModels{responses: []*genai.GenerateContentResponse{textResponse("ok")}}
	c := newClient(fake, Config{})

	_, err := llm.Collect(c.Stream(context.Background(), llm.Request{Prompt: "hi"}))
	require.NoError(t, err)
	assert.Empty(t, fake.gotConfig.Tools)
	assert.Nil(t, fake.gotConfig.SystemInstruction)
}

func TestStream_PropagatesError(t *testing.T) {
	boom := errors.New("429 resource exhausted")
	fake := &fakeModels{responses: []*genai.GenerateContentResponse{textResponse("partial")}, err: boom}
	c := newClient(fake, Config{})

	got, err := llm.Collect(c.Stream(context.Background(), llm.Request{Prompt: "hi"}))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}
