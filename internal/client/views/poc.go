package views

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/filex"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

type POCAPI interface {
	CreateDemoPOC(ctx context.Context, description string) (*models.DemoPOC, error)
	UploadDocument(ctx context.Context, filename string, r io.Reader) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id int64) (string, error)
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	GeneratePOC(ctx context.Context, requirements map[string]any) (*models.POCResult, error)
	ListPOCs(ctx context.Context) ([]models.POCSummary, error)
	POCFiles(ctx context.Context, pocID string) (*models.POCFiles, error)
	DownloadPOC(ctx context.Context, pocID string, w io.Writer) (int64, error)
	UpdatePOC(ctx context.Context, pocID string, requirements map[string]any) (string, error)
}

// ChatTurn is one prompt and the agent's answer.
type ChatTurn struct {
	Prompt   string
	Response string
}

// POCBuilder combines the quick demo builder and the chat builder.
type POCBuilder struct {
	Base
	api POCAPI

	demo    *models.DemoPOC
	docs    []models.Document
	turns   []ChatTurn
	last    *models.ChatResponse
	result  *models.POCResult
	pocs    []models.POCSummary
	files   *models.POCFiles
	section string
}

func NewPOCBuilder(api POCAPI) *POCBuilder {
	return &POCBuilder{api: api}
}

// run is the shared gate for actions whose result is stored by apply.
func (v *POCBuilder) run(ctx context.Context, section, fallback string, call func(ctx context.Context) (func(s *State), error)) error {
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}
	apply, err := call(cctx)
	if ferr := v.Finish(op, func(s *State) {
		v.section = section
		if err != nil {
			s.Error = ErrorText(err, fallback)
			return
		}
		if apply != nil {
			apply(s)
		}
	}); ferr != nil {
		return ferr
	}
	return err
}

// CreateDemo asks the scaffold builder for a POC structure.
func (v *POCBuilder) CreateDemo(ctx context.Context, description string) error {
	description = strings.TrimSpace(description)
	if err := forms.Validate(forms.DemoPOC{Description: description}); err != nil {
		v.Fail(err.Error())
		return err
	}
	return v.run(ctx, "demo", "Failed to create POC", func(ctx context.Context) (func(*State), error) {
		res, err := v.api.CreateDemoPOC(ctx, description)
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			v.demo = res
			if res.Error != "" {
				s.Error = res.Error
			}
		}, nil
	})
}

func (v *POCBuilder) LoadDocuments(ctx context.Context) error {
	return v.run(ctx, "docs", "Failed to load documents", func(ctx context.Context) (func(*State), error) {
		docs, err := v.api.ListDocuments(ctx)
		if err != nil {
			return nil, err
		}
		return func(*State) { v.docs = docs }, nil
	})
}

// Upload sends the file at path and appends it to the document list.
func (v *POCBuilder) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		v.Fail(fmt.Sprintf("Cannot open %s", path))
		return err
	}
	defer f.Close()

	name := path[strings.LastIndexAny(path, `/\`)+1:]
	return v.run(ctx, "docs", "Failed to upload document", func(ctx context.Context) (func(*State), error) {
		doc, err := v.api.UploadDocument(ctx, name, f)
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			v.docs = append(v.docs, *doc)
			s.Success = fmt.Sprintf("Uploaded %s", doc.Filename)
		}, nil
	})
}

func (v *POCBuilder) DeleteDocument(ctx context.Context, id int64, confirm Confirm) error {
	if confirm != nil && !confirm(fmt.Sprintf("Delete document %d?", id)) {
		return nil
	}
	return v.run(ctx, "docs", "Failed to delete document", func(ctx context.Context) (func(*State), error) {
		msg, err := v.api.DeleteDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			v.docs = lo.Reject(v.docs, func(d models.Document, _ int) bool { return d.ID == id })
			s.Success = msg
		}, nil
	})
}

// Chat sends one turn. All loaded documents are attached, and the agent
// state of the previous turn is sent back as conversation history.
func (v *POCBuilder) Chat(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if err := forms.Validate(forms.ChatPrompt{Prompt: prompt}); err != nil {
		v.Fail(err.Error())
		return err
	}

	req := models.ChatRequest{Prompt: prompt}
	v.Do(func() {
		req.DocumentIDs = lo.Map(v.docs, func(d models.Document, _ int) int64 { return d.ID })
		if v.last != nil {
			req.ConversationHistory = map[string]any{
				"conversation_id": v.last.ConversationID,
				"agent_state":     v.last.AgentState,
			}
		}
	})

	return v.run(ctx, "chat", "Failed to process message", func(ctx context.Context) (func(*State), error) {
		resp, err := v.api.Chat(ctx, req)
		if err != nil {
			return nil, err
		}
		return func(*State) {
			v.last = resp
			v.turns = append(v.turns, ChatTurn{Prompt: prompt, Response: resp.Response})
		}, nil
	})
}

// requirements returns what the last chat turn collected, or nil before
// the first turn.
func (v *POCBuilder) requirements() map[string]any {
	var reqs map[string]any
	v.Do(func() {
		if v.last == nil {
			return
		}
		if r, ok := v.last.AgentState["requirements"].(map[string]any); ok {
			reqs = r
		} else {
			reqs = v.last.AgentState
		}
	})
	return reqs
}

// Generate builds a POC from the requirements collected in the chat.
func (v *POCBuilder) Generate(ctx context.Context) error {
	reqs := v.requirements()
	if reqs == nil {
		v.Fail("Chat with the agent before generating a POC")
		return forms.ErrInvalid
	}

	return v.run(ctx, "result", "Failed to generate POC", func(ctx context.Context) (func(*State), error) {
		res, err := v.api.GeneratePOC(ctx, reqs)
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			v.result = res
			s.Success = fmt.Sprintf("POC '%s' generated", res.POCName)
		}, nil
	})
}

// Update regenerates an existing POC from the current chat requirements.
func (v *POCBuilder) Update(ctx context.Context, pocID string) error {
	reqs := v.requirements()
	if reqs == nil {
		v.Fail("Chat with the agent before updating a POC")
		return forms.ErrInvalid
	}

	return v.run(ctx, "", "Failed to update POC", func(ctx context.Context) (func(*State), error) {
		dir, err := v.api.UpdatePOC(ctx, pocID, reqs)
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			s.Success = fmt.Sprintf("POC '%s' updated in %s", pocID, dir)
		}, nil
	})
}

func (v *POCBuilder) LoadPOCs(ctx context.Context) error {
	return v.run(ctx, "list", "Failed to load POCs", func(ctx context.Context) (func(*State), error) {
		pocs, err := v.api.ListPOCs(ctx)
		if err != nil {
			return nil, err
		}
		return func(*State) { v.pocs = pocs }, nil
	})
}

func (v *POCBuilder) ShowFiles(ctx context.Context, pocID string) error {
	return v.run(ctx, "files", "Failed to load files", func(ctx context.Context) (func(*State), error) {
		files, err := v.api.POCFiles(ctx, pocID)
		if err != nil {
			return nil, err
		}
		return func(*State) { v.files = files }, nil
	})
}

// Download saves the POC archive to path. A failed download leaves any
// existing file at path untouched.
func (v *POCBuilder) Download(ctx context.Context, pocID, path string) error {
	return v.run(ctx, "", "Failed to download POC", func(ctx context.Context) (func(*State), error) {
		n, err := filex.ReplaceFile(path, func(w io.Writer) (int64, error) {
			return v.api.DownloadPOC(ctx, pocID, w)
		})
		if err != nil {
			return nil, err
		}
		return func(s *State) {
			s.Success = fmt.Sprintf("Saved %s (%s)", path, humanize.Bytes(uint64(n)))
		}, nil
	})
}

func (v *POCBuilder) Turns() []ChatTurn {
	var out []ChatTurn
	v.Do(func() { out = append(out, v.turns...) })
	return out
}

func (v *POCBuilder) Documents() []models.Document {
	var out []models.Document
	v.Do(func() { out = append(out, v.docs...) })
	return out
}

// Render writes the banners and the section touched by the last action.
func (v *POCBuilder) Render(w io.Writer) error {
	var b strings.Builder
	RenderTitle(&b, "POC Builder")
	RenderState(&b, v.State())

	v.Do(func() {
		switch v.section {
		case "demo":
			if v.demo != nil && v.demo.POCID != "" {
				fmt.Fprintf(&b, "POC ID: %s\n", v.demo.POCID)
				writeStructure(&b, v.demo.Structure)
			}
		case "docs":
			if len(v.docs) == 0 {
				b.WriteString("No documents uploaded.\n")
				break
			}
			rows := lo.Map(v.docs, func(d models.Document, _ int) []string {
				return []string{strconv.FormatInt(d.ID, 10), d.Filename, d.FileType, HumanTime(d.CreatedAt)}
			})
			RenderTable(&b, []string{"ID", "Filename", "Type", "Uploaded"}, rows)
		case "chat":
			for _, t := range v.turns {
				fmt.Fprintf(&b, "> %s\n%s\n\n", t.Prompt, t.Response)
			}
			if v.last != nil && v.last.NextAction != "" {
				fmt.Fprintf(&b, "Next: %s\n", v.last.NextAction)
			}
		case "result":
			if v.result != nil {
				fmt.Fprintf(&b, "%s (%s)\nDirectory: %s\n", v.result.POCName, v.result.POCID, v.result.Directory)
				for _, f := range v.result.Files {
					fmt.Fprintf(&b, "  %s\n", f)
				}
			}
		case "list":
			if len(v.pocs) == 0 {
				b.WriteString("No POCs yet.\n")
				break
			}
			rows := lo.Map(v.pocs, func(p models.POCSummary, _ int) []string {
				return []string{p.POCID, p.POCName, OrDash(p.Description), HumanTime(p.CreatedAt)}
			})
			RenderTable(&b, []string{"POC ID", "Name", "Description", "Created"}, rows)
		case "files":
			if v.files != nil {
				fmt.Fprintf(&b, "%s\n", v.files.Directory)
				for _, f := range v.files.Files {
					fmt.Fprintf(&b, "  %s\n", f)
				}
			}
		}
	})

	_, err := io.WriteString(w, b.String())
	return err
}

func writeStructure(b *strings.Builder, m map[string]any) {
	keys := lo.Keys(m)
	sort.Strings(keys)
	for _, k := range keys {
		switch val := m[k].(type) {
		case []any:
			fmt.Fprintf(b, "%s:\n", k)
			for _, item := range val {
				fmt.Fprintf(b, "  %v\n", item)
			}
		default:
			fmt.Fprintf(b, "%s: %v\n", k, val)
		}
	}
}
