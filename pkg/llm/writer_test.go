package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
)

// chatServer replies with the given contents in order, repeating the last one
func chatServer(t *testing.T, contents ...string) (*httptest.Server, *int32, *openai.ChatCompletionRequest) {
	t.Helper()
	var calls int32
	var lastReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))

		n := int(atomic.AddInt32(&calls, 1)) - 1
		if n >= len(contents) {
			n = len(contents) - 1
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: contents[n]}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, &calls, &lastReq
}

func testConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    url + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   500,
	}
}

func testListing() domain.Provider {
	return domain.Provider{
		ID:          "p1",
		Name:        "山田クリニック",
		NameRomaji:  "Yamada Clinic",
		Address:     "東京都渋谷区1-2-3",
		Description: "古い説明文",
		Specialties: []string{"内科", "小児科"},
	}
}

func TestWriter_Rewrite(t *testing.T) {
	server, calls, req := chatServer(t, `"渋谷駅から徒歩5分の内科・小児科クリニックです。"`)
	w := NewWriter(testConfig(server.URL))

	text, err := w.Rewrite(context.Background(), testListing(), domain.SectionDescription)
	require.NoError(t, err)
	assert.Equal(t, "渋谷駅から徒歩5分の内科・小児科クリニックです。", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, defaultSystemPrompt, req.Messages[0].Content)
	assert.Contains(t, req.Messages[1].Content, "- Name: 山田クリニック")
	assert.Contains(t, req.Messages[1].Content, "- Specialties: 内科, 小児科")
	assert.Contains(t, req.Messages[1].Content, "Current description:\n古い説明文")
	assert.Contains(t, req.Messages[1].Content, "Task: Write a fresh description")
}

func TestWriter_Rewrite_SanitizesOutput(t *testing.T) {
	server, _, _ := chatServer(t, `<p>Family clinic in <b>Shibuya</b></p><script>alert(1)</script>`)
	w := NewWriter(testConfig(server.URL))

	text, err := w.Rewrite(context.Background(), testListing(), domain.SectionSEOSummary)
	require.NoError(t, err)
	assert.Equal(t, "<p>Family clinic in <b>Shibuya</b></p>", text)
}

func TestWriter_Rewrite_EmptyResponses(t *testing.T) {
	t.Run("retries until text", func(t *testing.T) {
		server, calls, _ := chatServer(t, "   ", `""`, "summary text")
		w := NewWriter(testConfig(server.URL))
		text, err := w.Rewrite(context.Background(), testListing(), domain.SectionSpecialtiesSummary)
		require.NoError(t, err)
		assert.Equal(t, "summary text", text)
		assert.Equal(t, int32(3), atomic.LoadInt32(calls))
	})

	t.Run("gives up", func(t *testing.T) {
		server, calls, _ := chatServer(t, "<script>only script</script>")
		w := NewWriter(testConfig(server.URL))
		_, err := w.Rewrite(context.Background(), testListing(), domain.SectionDescription)
		require.ErrorIs(t, err, errEmptyResponse)
		assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(calls))
	})
}

func TestWriter_Rewrite_Errors(t *testing.T) {
	t.Run("unknown section", func(t *testing.T) {
		w := NewWriter(testConfig("http://127.0.0.1:1"))
		_, err := w.Rewrite(context.Background(), testListing(), domain.SectionNameRomaji)
		require.EqualError(t, err, `section "name_romaji" can't be rewritten`)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer server.Close()
		w := NewWriter(testConfig(server.URL))
		_, err := w.Rewrite(context.Background(), testListing(), domain.SectionDescription)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm request for description")
	})
}

func TestWriter_CustomSystemPrompt(t *testing.T) {
	server, _, req := chatServer(t, "ok")
	cfg := testConfig(server.URL)
	cfg.SystemPrompt = "custom prompt"
	w := NewWriter(cfg)

	_, err := w.Rewrite(context.Background(), testListing(), domain.SectionDescription)
	require.NoError(t, err)
	assert.Equal(t, "custom prompt", req.Messages[0].Content)
}

func TestWriter_BuildPrompt_TruncatesLongText(t *testing.T) {
	w := NewWriter(testConfig("http://localhost"))
	p := testListing()
	long := make([]rune, 1500)
	for i := range long {
		long[i] = 'あ'
	}
	p.Description = string(long)

	prompt := w.buildPrompt(p, domain.SectionDescription, sectionInstructions[domain.SectionDescription])
	assert.Contains(t, prompt, string(long[:1000])+"...")
	assert.NotContains(t, prompt, string(long[:1001]))
}
