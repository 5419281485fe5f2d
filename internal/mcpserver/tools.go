package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list-catalog",
			mcp.WithDescription("List the selectable project types or budget ranges, in display order"),
			mcp.WithString("kind", mcp.Required(),
				mcp.Description("Which catalog to list"),
				mcp.Enum(string(catalog.KindProjectType), string(catalog.KindBudget)),
			),
		),
		s.handleListCatalog,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("submit-inquiry",
			mcp.WithDescription("Submit a contact inquiry. projectType and budget must be catalog ids from list-catalog"),
			mcp.WithString("projectType", mcp.Required(), mcp.Description("Project type id")),
			mcp.WithString("budget", mcp.Required(), mcp.Description("Budget range id")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Contact name")),
			mcp.WithString("email", mcp.Required(), mcp.Description("Contact email")),
			mcp.WithString("message", mcp.Required(), mcp.Description("What the project is about")),
		),
		s.handleSubmitInquiry,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-inquiries",
			mcp.WithDescription("List received inquiries, oldest first"),
		),
		s.handleListInquiries,
	)
}

func (s *Server) handleListCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}
	kind, ok := args["kind"].(string)
	if !ok || kind == "" {
		return mcp.NewToolResultError("missing 'kind' parameter"), nil
	}

	entries, err := catalog.List(catalog.Kind(kind))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal catalog: %v", err)), nil
	}
	log.Debug("list-catalog kind=%s (%d entries)", kind, len(entries))
	return mcp.NewToolResultText(string(out)), nil
}

// handleSubmitInquiry walks a fresh wizard through every step, so the same
// transition rules apply as in the interactive form.
func (s *Server) handleSubmitInquiry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	str := func(key string) string {
		v, _ := args[key].(string)
		return v
	}

	w := inquiry.New()
	if err := w.SelectProjectType(str("projectType")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := w.SelectBudget(str("budget")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, set := range []struct {
		fn  func(string) error
		key string
	}{
		{w.SetName, "name"},
		{w.SetEmail, "email"},
		{w.SetMessage, "message"},
	} {
		if err := set.fn(str(set.key)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("setting %s: %v", set.key, err)), nil
		}
	}

	var notice string
	err := w.Submit(ctx, s.store, inquiry.NotifierFunc(func(msg string) { notice = msg }))
	if err != nil {
		log.Warn("submit-inquiry rejected: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug("submit-inquiry accepted")
	return mcp.NewToolResultText(notice), nil
}

func (s *Server) handleListInquiries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inquiries, err := s.store.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list inquiries: %v", err)), nil
	}
	if len(inquiries) == 0 {
		return mcp.NewToolResultText("No inquiries"), nil
	}

	lines := make([]string, 0, len(inquiries))
	for _, inq := range inquiries {
		lines = append(lines, fmt.Sprintf("[%s] %s <%s> %s/%s %s: %s",
			shortID(inq.ID),
			inq.Name,
			inq.Email,
			inq.ProjectType,
			inq.Budget,
			inq.CreatedAt.Format("2006-01-02 15:04"),
			oneLine(inq.Message),
		))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
