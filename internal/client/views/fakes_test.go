package views

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
	"github.com/dmitrijs2005/bootlang/internal/client/session"
	"github.com/dmitrijs2005/bootlang/internal/logging"
	"github.com/stretchr/testify/require"
)

func loggedIn(t *testing.T, admin bool) *session.Auth {
	t.Helper()
	ctx := context.Background()
	a := session.NewAuth(session.NewStore(slots.NewMemoryRepository(), logging.Nop()), logging.Nop())
	require.NoError(t, a.Init(ctx))
	require.NoError(t, a.Login(ctx, "abc", &models.User{ID: 1, Username: "root", IsAdmin: admin}))
	return a
}

type fakeAdminAPI struct {
	mu sync.Mutex

	users     []models.User
	listErr   error
	createErr error
	deleteErr error
	resetErr  error

	// when set, ListUsers signals started and waits for release or ctx
	started chan struct{}
	release chan struct{}

	listCalls  int
	creates    []client.CreateUserRequest
	deletes    []int64
	resetCalls int
}

func (f *fakeAdminAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	f.listCalls++
	started, release := f.started, f.release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeAdminAPI) CreateUser(_ context.Context, req client.CreateUserRequest) (*client.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.users = append(f.users, models.User{ID: int64(len(f.users) + 10), Username: req.Username, IsAdmin: req.IsAdmin})
	return &client.Result{Success: true, Message: "User created"}, nil
}

func (f *fakeAdminAPI) DeleteUser(_ context.Context, id int64) (*client.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	var kept []models.User
	for _, u := range f.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return &client.Result{Success: true, Message: "User deleted successfully"}, nil
}

func (f *fakeAdminAPI) ResetPassword(context.Context, int64, string) (*client.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetCalls++
	if f.resetErr != nil {
		return nil, f.resetErr
	}
	return &client.Result{Success: true, Message: "Password reset successfully"}, nil
}

type fakePOCAPI struct {
	demo    *models.DemoPOC
	docs    []models.Document
	chatReq []models.ChatRequest
	chat    *models.ChatResponse
	genReq  map[string]any
	result  *models.POCResult
	pocs    []models.POCSummary
	files   *models.POCFiles
	zip     []byte
	err     error
	uploads map[string]string
	updates map[string]map[string]any
}

func (f *fakePOCAPI) CreateDemoPOC(context.Context, string) (*models.DemoPOC, error) {
	return f.demo, f.err
}

func (f *fakePOCAPI) UploadDocument(_ context.Context, name string, r io.Reader) (*models.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(r)
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[name] = string(b)
	return &models.Document{ID: 99, Filename: name, FileType: "md"}, nil
}

func (f *fakePOCAPI) ListDocuments(context.Context) ([]models.Document, error) { return f.docs, f.err }

func (f *fakePOCAPI) DeleteDocument(context.Context, int64) (string, error) {
	return "Document deleted", f.err
}

func (f *fakePOCAPI) Chat(_ context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.chatReq = append(f.chatReq, req)
	return f.chat, f.err
}

func (f *fakePOCAPI) GeneratePOC(_ context.Context, reqs map[string]any) (*models.POCResult, error) {
	f.genReq = reqs
	return f.result, f.err
}

func (f *fakePOCAPI) ListPOCs(context.Context) ([]models.POCSummary, error) { return f.pocs, f.err }

func (f *fakePOCAPI) POCFiles(context.Context, string) (*models.POCFiles, error) {
	return f.files, f.err
}

func (f *fakePOCAPI) DownloadPOC(_ context.Context, _ string, w io.Writer) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := io.Copy(w, bytes.NewReader(f.zip))
	return n, err
}

func (f *fakePOCAPI) UpdatePOC(_ context.Context, pocID string, reqs map[string]any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.updates == nil {
		f.updates = map[string]map[string]any{}
	}
	f.updates[pocID] = reqs
	return "/pocs/" + pocID, nil
}

func strPtr(s string) *string { return &s }
