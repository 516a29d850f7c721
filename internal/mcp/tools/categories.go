package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/internal/repository"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// ListCategoriesResult pairs category names with dataset metadata
type ListCategoriesResult struct {
	Categories []string            `json:"categories" jsonschema:"Known category names, sorted"`
	Metadata   repository.Metadata `json:"metadata" jsonschema:"Current dataset metadata"`
}

// DeleteCategoryParams defines the arguments for the delete_category tool
type DeleteCategoryParams struct {
	Category string `json:"category" jsonschema:"Category to delete"`
}

type categoriesTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithListCategories registers the list_categories tool
func WithListCategories(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := categoriesTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_categories",
			Description: "List dataset categories with record counts",
		}, handler.list)
	}
}

// WithDeleteCategory registers the delete_category tool
func WithDeleteCategory(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := categoriesTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "delete_category",
			Description: "Delete one category and rebuild the full table from the rest",
		}, handler.delete)
	}
}

func (t categoriesTool) list(ctx context.Context, req *sdkmcp.CallToolRequest, params *struct{}) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req
	_ = params

	result := ListCategoriesResult{
		Categories: t.dataset.Categories(),
		Metadata:   t.dataset.Metadata(),
	}

	msg := fmt.Sprintf("%d categories, %d records total", len(result.Categories), result.Metadata.TotalRecords)
	return textResult(msg), result, nil
}

func (t categoriesTool) delete(ctx context.Context, req *sdkmcp.CallToolRequest, params *DeleteCategoryParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.Category == "" {
		return nil, nil, fmt.Errorf("category is required")
	}

	before := len(t.dataset.Categories())

	if err := t.dataset.DeleteCategory(ctx, params.Category); err != nil {
		if t.logger != nil {
			t.logger.Error("delete_category failed", "category", params.Category, "err", err)
		}
		return nil, nil, err
	}

	msg := fmt.Sprintf("Category %q deleted, %d records remain", params.Category, t.dataset.TotalRecords())
	if len(t.dataset.Categories()) == before {
		msg = fmt.Sprintf("Category %q not found, nothing deleted", params.Category)
	}
	return textResult(msg), t.dataset.Metadata(), nil
}
