package views

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPOC(t *testing.T, api *fakePOCAPI) *POCBuilder {
	t.Helper()
	v := NewPOCBuilder(api)
	v.Mount(context.Background())
	t.Cleanup(v.Unmount)
	return v
}

func TestPOCBuilder_CreateDemo(t *testing.T) {
	api := &fakePOCAPI{demo: &models.DemoPOC{
		Success:   true,
		POCID:     "POC_20240501_100000",
		Structure: map[string]any{"poc_dir": "pocs/demo_user/POC_1", "files": []any{"poc_desc.md", "frontend/"}},
	}}
	v := newPOC(t, api)

	require.ErrorIs(t, v.CreateDemo(context.Background(), "  "), forms.ErrInvalid)
	assert.Equal(t, "Description is required", v.State().Error)

	require.NoError(t, v.CreateDemo(context.Background(), "todo app"))

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "POC_20240501_100000")
	assert.Contains(t, out, "poc_desc.md")
}

func TestPOCBuilder_CreateDemo_ServerReportedError(t *testing.T) {
	api := &fakePOCAPI{demo: &models.DemoPOC{Success: false, Error: "OpenAI key missing"}}
	v := newPOC(t, api)

	require.NoError(t, v.CreateDemo(context.Background(), "todo app"))
	assert.Equal(t, "OpenAI key missing", v.State().Error)
}

func TestPOCBuilder_ChatTracksConversation(t *testing.T) {
	api := &fakePOCAPI{
		docs: []models.Document{{ID: 4, Filename: "brief.pdf"}},
		chat: &models.ChatResponse{
			Response:       "What is the goal?",
			ConversationID: "conv-1",
			AgentState:     map[string]any{"requirements": map[string]any{"goal": "crm"}},
			NextAction:     "clarify",
		},
		result: &models.POCResult{POCID: "p1", POCName: "crm", Directory: "/pocs/p1", Files: []string{"phase_1_frontend.md"}},
	}
	v := newPOC(t, api)
	ctx := context.Background()

	require.ErrorIs(t, v.Generate(ctx), forms.ErrInvalid, "nothing to generate before chatting")

	require.NoError(t, v.LoadDocuments(ctx))
	require.NoError(t, v.Chat(ctx, "build a crm"))
	require.NoError(t, v.Chat(ctx, "for sales teams"))

	require.Len(t, api.chatReq, 2)
	assert.Equal(t, []int64{4}, api.chatReq[0].DocumentIDs)
	assert.Nil(t, api.chatReq[0].ConversationHistory)
	assert.Equal(t, "conv-1", api.chatReq[1].ConversationHistory["conversation_id"])
	assert.Len(t, v.Turns(), 2)

	require.NoError(t, v.Generate(ctx))
	assert.Equal(t, map[string]any{"goal": "crm"}, api.genReq)
	assert.Equal(t, "POC 'crm' generated", v.State().Success)
}

func TestPOCBuilder_Documents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes"), 0o600))

	api := &fakePOCAPI{docs: []models.Document{{ID: 1, Filename: "a.txt"}, {ID: 2, Filename: "b.txt"}}}
	v := newPOC(t, api)
	ctx := context.Background()

	require.NoError(t, v.LoadDocuments(ctx))
	require.NoError(t, v.Upload(ctx, path))
	assert.Equal(t, "# notes", api.uploads["notes.md"])
	assert.Len(t, v.Documents(), 3)

	require.NoError(t, v.DeleteDocument(ctx, 1, func(string) bool { return true }))
	docs := v.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, int64(2), docs[0].ID)

	require.NoError(t, v.DeleteDocument(ctx, 2, func(string) bool { return false }))
	assert.Len(t, v.Documents(), 2)
}

func TestPOCBuilder_Download(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	api := &fakePOCAPI{zip: []byte("PK\x03\x04data")}
	v := newPOC(t, api)
	path := filepath.Join(dir, "p1.zip")
	require.NoError(t, v.Download(ctx, "p1", path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, api.zip, b)
	assert.Contains(t, v.State().Success, path)

	failing := newPOC(t, &fakePOCAPI{err: client.ErrNotFound})
	bad := filepath.Join(dir, "missing.zip")
	require.ErrorIs(t, failing.Download(ctx, "nope", bad), client.ErrNotFound)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err), "partial file removed")
	assert.Equal(t, "Failed to download POC", failing.State().Error)
}

func TestPOCBuilder_FailedDownloadKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "important.zip")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0o600))

	v := newPOC(t, &fakePOCAPI{err: client.ErrNotFound})
	require.ErrorIs(t, v.Download(context.Background(), "nope", path), client.ErrNotFound)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(b))
}

func TestPOCBuilder_Update(t *testing.T) {
	api := &fakePOCAPI{chat: &models.ChatResponse{
		Response:       "Anything else?",
		ConversationID: "conv-2",
		AgentState:     map[string]any{"requirements": map[string]any{"goal": "crm v2"}},
	}}
	v := newPOC(t, api)
	ctx := context.Background()

	require.ErrorIs(t, v.Update(ctx, "p1"), forms.ErrInvalid)
	assert.Equal(t, "Chat with the agent before updating a POC", v.State().Error)
	assert.Empty(t, api.updates)

	require.NoError(t, v.Chat(ctx, "add reports"))
	require.NoError(t, v.Update(ctx, "p1"))
	assert.Equal(t, map[string]any{"goal": "crm v2"}, api.updates["p1"])
	assert.Equal(t, "POC 'p1' updated in /pocs/p1", v.State().Success)

	api.err = client.ErrNotFound
	require.ErrorIs(t, v.Update(ctx, "gone"), client.ErrNotFound)
	assert.Equal(t, "Failed to update POC", v.State().Error)
}

func TestPOCBuilder_ListAndFiles(t *testing.T) {
	api := &fakePOCAPI{
		pocs:  []models.POCSummary{{POCID: "p1", POCName: "crm"}},
		files: &models.POCFiles{POCID: "p1", Directory: "/pocs/p1", Files: []string{"README.md"}},
	}
	v := newPOC(t, api)
	ctx := context.Background()

	require.NoError(t, v.LoadPOCs(ctx))
	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "crm")

	require.NoError(t, v.ShowFiles(ctx, "p1"))
	buf.Reset()
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "README.md")
}
