package cvserver

import (
	"context"

	"github.com/FrankGoortani/cv-mcp/cv"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

type noArgs struct{}

type searchArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"The search term to look for in the CV"`
}

type companyArgs struct {
	Company string `json:"company" jsonschema:"required" jsonschema_description:"Company name to get experience for"`
}

type techStackArgs struct {
	Category string `json:"category,omitempty" jsonschema_description:"Optional category to filter technologies (e.g., 'cloud', 'languages', 'frameworks')"`
}

type resumeLink struct {
	ResumeLink string `json:"resumeLink"`
}

type pictureLink struct {
	PictureLink string `json:"pictureLink"`
}

// static returns a no-argument tool that always answers v.
func static(name, desc string, v any) mcpservice.StaticTool {
	return mcpservice.NewTool(name, func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[noArgs]) error {
		return w.WriteJSON(v)
	}, mcpservice.WithToolDescription(desc))
}

// NewTools registers the CV tools against data.
func NewTools(data *cv.CV) *mcpservice.ToolsContainer {
	return mcpservice.NewToolsContainer(
		static("get_profile", "Get Frank Goortani's profile information", data.Profile),
		static("get_skills", "Get Frank Goortani's skills", data.Skills),
		static("get_interests", "Get Frank Goortani's interests", data.Interests),
		static("get_education", "Get Frank Goortani's education history", data.Education),
		static("get_links", "Get Frank Goortani's professional links", data.Links),
		static("get_startups", "Get Frank Goortani's startup experience", data.Startups),

		mcpservice.NewTool("search_cv", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[searchArgs]) error {
			q := r.Args().Query
			w.Log(mcp.LoggingLevelInfo, "Starting CV search", map[string]any{"query": q})
			res := data.Search(q, func(done, total int) {
				_ = w.SendProgress(float64(done), float64(total))
			})
			w.Log(mcp.LoggingLevelInfo, "Finished CV search", map[string]any{"matches": len(res.Matches)})
			return w.WriteJSON(res)
		}, mcpservice.WithToolDescription("Search Frank Goortani's CV for specific terms")),

		mcpservice.NewTool("get_company_experience", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[companyArgs]) error {
			return w.WriteJSON(data.CompanyExperience(r.Args().Company))
		}, mcpservice.WithToolDescription("Get Frank Goortani's experience at a specific company")),

		static("get_resume_link", "Get the link to Frank Goortani's resume PDF", resumeLink{ResumeLink: data.Resume.URL}),
		static("get_profile_picture", "Get the link to Frank Goortani's profile picture", pictureLink{PictureLink: data.Picture.URL}),

		mcpservice.NewTool("get_tech_stack", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[techStackArgs]) error {
			if stack, ok := data.CategoryStack(r.Args().Category); ok {
				return w.WriteJSON(stack)
			}
			return w.WriteJSON(data.FullStack())
		}, mcpservice.WithToolDescription("Get Frank Goortani's technology stack based on keywords")),
	)
}
