package category

import "github.com/danielgtaylor/huma/v2"

type categoryService interface {
	categoryCreator
	categoryLister
	categoryUpdater
	categoryDeleter
}

// Register mounts every category endpoint on api.
func Register(api huma.API, svc categoryService) {
	NewCreateCategoryHandler(svc).Register(api)
	NewListCategoriesHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
}
