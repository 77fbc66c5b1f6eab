package goal

import "github.com/danielgtaylor/huma/v2"

type goalService interface {
	goalCreator
	goalLister
	goalUpdater
	goalDeleter
}

func Register(api huma.API, svc goalService) {
	NewCreateGoalHandler(svc).Register(api)
	NewListGoalsHandler(svc).Register(api)
	NewUpdateGoalHandler(svc).Register(api)
	NewDeleteGoalHandler(svc).Register(api)
}
